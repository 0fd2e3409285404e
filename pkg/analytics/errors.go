package analytics

import "errors"

// Common sentinel errors
var (
	// ErrNoPath is returned by point-to-point shortest-path queries when the
	// target is unreachable from the source.
	ErrNoPath = errors.New("no path between nodes")

	// ErrDisconnected is returned by whole-graph metrics that are undefined
	// on graphs with more than one connected component.
	ErrDisconnected = errors.New("graph is not connected")

	// ErrInvalidSampleSize is returned when a negative betweenness sample
	// size is requested.
	ErrInvalidSampleSize = errors.New("invalid sample size")
)
