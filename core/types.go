// Package core: Vertex type, traversal state lifecycle, sentinel errors.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to an operation.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNilMatrix indicates that a nil adjacency or weight matrix was provided.
	ErrNilMatrix = errors.New("core: matrix is nil")

	// ErrInvalidStructure indicates a structurally invalid graph definition:
	// non-square matrix, vertex-count mismatch, non-binary adjacency entries,
	// or asymmetry when the graph is declared undirected.
	ErrInvalidStructure = errors.New("core: invalid graph structure")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// VertexState enumerates the three observable traversal states of a vertex.
type VertexState int

const (
	// StateInitial: unmarked, not in process — the resting state.
	StateInitial VertexState = iota

	// StateActive: unmarked, in process — used only during cycle/SCC search.
	StateActive

	// StateReady: marked, not in process — terminal for a traversal.
	StateReady
)

// Vertex represents a node in the graph.
//
// Index uniquely identifies this Vertex within its Graph and spans
// [0, n) contiguously. Adjacency holds back-references into the owning
// graph's vertex array (not ownership) and always mirrors the vertex's
// adjacency-matrix row.
//
// Marked, InProcess, Distance, and Predecessor are transient traversal
// fields: algorithms reset and mutate them freely; topology never moves.
type Vertex struct {
	// Index is the position of this vertex in the graph's vertex array.
	Index int

	// Name is a human-readable label; it carries no structural meaning.
	Name string

	// Adjacency lists the vertices this vertex has an edge to, in
	// ascending index order.
	Adjacency []*Vertex

	// Marked flags the vertex as fully processed by a traversal.
	Marked bool

	// InProcess flags the vertex as on the active search path
	// (cycle/SCC detection only).
	InProcess bool

	// Distance is the tentative or final path distance from a source.
	Distance float64

	// Predecessor is the vertex this one was reached from, or nil.
	Predecessor *Vertex
}

// State reports the vertex's traversal state. The combination
// marked ∧ inProcess violates the lifecycle and panics: it can only be
// produced by a bug in a traversal, never by user input.
func (v *Vertex) State() VertexState {
	switch {
	case v.Marked && v.InProcess:
		panic(fmt.Sprintf("core: vertex %d is marked and in process", v.Index))
	case v.Marked:
		return StateReady
	case v.InProcess:
		return StateActive
	default:
		return StateInitial
	}
}

// Activate transitions initial → active. Asserts the lifecycle.
func (v *Vertex) Activate() {
	if v.Marked {
		panic(fmt.Sprintf("core: vertex %d cannot re-enter active from ready", v.Index))
	}
	v.InProcess = true
}

// Finish transitions the vertex to ready (terminal). Asserts the lifecycle.
func (v *Vertex) Finish() {
	v.InProcess = false
	v.Marked = true
	_ = v.State() // lifecycle assertion
}

// ResetState returns the vertex to the initial traversal state with an
// infinite tentative distance and no predecessor.
func (v *Vertex) ResetState() {
	v.Marked = false
	v.InProcess = false
	v.Distance = math.Inf(1)
	v.Predecessor = nil
}
