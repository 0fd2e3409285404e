package loader

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tburke/sociograph/pkg/graph"
	"github.com/tburke/sociograph/pkg/logging"
	"github.com/tburke/sociograph/pkg/metrics"
)

// ErrMalformedPair indicates an input record that could not be parsed
// into a pair of node IDs.
var ErrMalformedPair = errors.New("malformed node pair")

// EdgeSource yields node pairs until io.EOF.
type EdgeSource interface {
	// Next returns the next pair. io.EOF signals a clean end of input.
	// A recoverable record error unwraps to ErrMalformedPair; the source
	// stays usable afterwards.
	Next() (u, v graph.NodeID, err error)
	Close() error
	Name() string
}

// byteCounter is implemented by sources that can report read volume.
type byteCounter interface {
	BytesRead() int64
}

// Options controls a load run
type Options struct {
	// SkipInvalid counts and drops self-loops and malformed records
	// instead of failing the run
	SkipInvalid bool
	Logger      logging.Logger
	Metrics     *metrics.Registry
}

// Stats describes a completed load run
type Stats struct {
	EdgesLoaded  int
	EdgesSkipped int
	BytesRead    int64
	Duration     time.Duration
}

// Load drains an edge source into the graph
func Load(g *graph.Graph, src EdgeSource, opts Options) (*Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	logger = logger.With(logging.Component("loader"), logging.String("source", src.Name()))

	timer := logging.StartTimer(logger, "Graph load finished")
	start := time.Now()
	stats := &Stats{}

	for {
		u, v, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if opts.SkipInvalid && errors.Is(err, ErrMalformedPair) {
				stats.EdgesSkipped++
				logger.Debug("Skipping malformed record", logging.Error(err))
				continue
			}
			stats.Duration = time.Since(start)
			timer.EndError(err)
			record(opts.Metrics, src, "error", stats)
			return stats, fmt.Errorf("reading edge source: %w", err)
		}

		if err := g.AddEdge(u, v); err != nil {
			if opts.SkipInvalid && graph.IsSelfLoop(err) {
				stats.EdgesSkipped++
				logger.Debug("Skipping self-loop", logging.NodeID(int64(u)))
				continue
			}
			stats.Duration = time.Since(start)
			timer.EndError(err)
			record(opts.Metrics, src, "error", stats)
			return stats, err
		}
		stats.EdgesLoaded++
	}

	stats.Duration = time.Since(start)
	if c, ok := src.(byteCounter); ok {
		stats.BytesRead = c.BytesRead()
	}

	timer.End()
	logger.Info("Graph loaded",
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("skipped", stats.EdgesSkipped))
	record(opts.Metrics, src, "success", stats)

	return stats, nil
}

func record(reg *metrics.Registry, src EdgeSource, status string, stats *Stats) {
	if reg == nil {
		return
	}
	reg.RecordLoad(src.Name(), status, stats.Duration, stats.EdgesLoaded, stats.EdgesSkipped)
	if stats.BytesRead > 0 {
		reg.LoaderBytesRead.Add(float64(stats.BytesRead))
	}
}
