package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrSelfLoop     = errors.New("self-loop rejected")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "Neighbors", "AddEdge")
	Node    NodeID // Node involved (if applicable)
	Other   NodeID // Second node for edge operations
	HasPair bool   // Whether Other is meaningful
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.HasPair {
		return fmt.Sprintf("%s (%d, %d): %v", e.Op, e.Node, e.Other, e.Cause)
	}
	return fmt.Sprintf("%s node %d: %v", e.Op, e.Node, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// NodeNotFoundError creates a not-found error for the given operation.
func NodeNotFoundError(op string, id NodeID) error {
	return &GraphError{Op: op, Node: id, Cause: ErrNodeNotFound}
}

// selfLoopError creates a self-loop rejection error.
func selfLoopError(id NodeID) error {
	return &GraphError{Op: "AddEdge", Node: id, Other: id, HasPair: true, Cause: ErrSelfLoop}
}

// IsNotFound returns true if the error is a node not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound)
}

// IsSelfLoop returns true if the error is a rejected self-loop.
func IsSelfLoop(err error) bool {
	return errors.Is(err, ErrSelfLoop)
}
