// Package hashimoto: oriented-edge enumeration and the fixed and
// modifiable non-backtracking matrix constructions.

package hashimoto

import (
	"errors"
	"fmt"

	"github.com/velikar/spectra/core"
	"github.com/velikar/spectra/matrix"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was provided.
	ErrNilGraph = errors.New("hashimoto: graph is nil")

	// ErrNoEdges indicates the graph has no oriented edges, so no
	// Hashimoto matrix exists.
	ErrNoEdges = errors.New("hashimoto: graph has no oriented edges")
)

// OrientedEdge is a directed edge instance Tail→Head.
type OrientedEdge struct {
	Tail int
	Head int
}

// OrientedEdges enumerates the oriented edge instances of g, ignoring
// self-loops.
//
// For an undirected graph the labeling is canonical: ids [0, m) are the
// forward edges (Tail < Head) in row-major order and id k+m is the
// mirror of id k, so edge k and edge k+m are mutual reverses. Directed
// graphs enumerate all oriented edges in row-major order.
// Errors: ErrNilGraph, ErrNoEdges.
// Complexity: O(n²).
func OrientedEdges(g *core.Graph) ([]OrientedEdge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	var edges []OrientedEdge
	var i, j int

	if g.Undirected() {
		// 1. Forward half: tail < head, row-major
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if ok, _ := g.HasEdge(i, j); ok {
					edges = append(edges, OrientedEdge{Tail: i, Head: j})
				}
			}
		}
		// 2. Mirrored half: id k+m reverses id k
		m := len(edges)
		for k := 0; k < m; k++ {
			edges = append(edges, OrientedEdge{Tail: edges[k].Head, Head: edges[k].Tail})
		}
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue // self-loops carry no non-backtracking walk
				}
				if ok, _ := g.HasEdge(i, j); ok {
					edges = append(edges, OrientedEdge{Tail: i, Head: j})
				}
			}
		}
	}

	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	return edges, nil
}

// NonBacktracking builds the fixed Hashimoto matrix of g together with
// the oriented-edge labeling it is indexed by.
// B[k][l] = 1 iff Head(k) == Tail(l) and Tail(k) != Head(l).
// Errors: ErrNilGraph, ErrNoEdges.
// Complexity: O(E²) over E oriented edges.
func NonBacktracking(g *core.Graph) (*matrix.Dense, []OrientedEdge, error) {
	edges, err := OrientedEdges(g)
	if err != nil {
		return nil, nil, err
	}

	e := len(edges)
	b, err := matrix.NewDense(e, e)
	if err != nil {
		return nil, nil, fmt.Errorf("hashimoto: %w", err)
	}
	var k, l int
	for k = 0; k < e; k++ {
		for l = 0; l < e; l++ {
			// connect k→l iff the walk continues without immediate backtrack
			if edges[k].Head == edges[l].Tail && edges[k].Tail != edges[l].Head {
				_ = b.Set(k, l, 1)
			}
		}
	}

	return b, edges, nil
}

// Modifiable is the Hashimoto matrix in its virtually-removable form.
//
// Instead of storing per-entry closures over a removed node id, it keeps
// the plain matrix B plus the linking vertex of each row — the head of
// edge k, which is the vertex every nonzero entry in row k walks
// through. Removing node i then reduces to the comparison
// link[k] == i at evaluation time.
type Modifiable struct {
	order int // vertex count of the source graph
	edges []OrientedEdge
	b     *matrix.Dense
	link  []int // link[k] = Head(edges[k])
}

// NewModifiable constructs the modifiable Hashimoto matrix of g.
// Errors: ErrNilGraph, ErrNoEdges.
// Complexity: O(E²).
func NewModifiable(g *core.Graph) (*Modifiable, error) {
	b, edges, err := NonBacktracking(g)
	if err != nil {
		return nil, err
	}
	link := make([]int, len(edges))
	for k, e := range edges {
		link[k] = e.Head
	}

	return &Modifiable{order: g.Order(), edges: edges, b: b, link: link}, nil
}

// Size returns the oriented-edge count E (the matrix dimension).
func (m *Modifiable) Size() int { return len(m.edges) }

// Edges returns the oriented-edge labeling the matrix is indexed by.
func (m *Modifiable) Edges() []OrientedEdge {
	out := make([]OrientedEdge, len(m.edges))
	copy(out, m.edges)

	return out
}

// Evaluate materializes the Hashimoto matrix with node removed virtually
// deleted: every row whose linking vertex equals removed is zeroed.
// Evaluating at -1 — or any id outside [0, n) — reproduces the full
// matrix exactly, entrywise.
// Complexity: O(E²).
func (m *Modifiable) Evaluate(removed int) *matrix.Dense {
	out := m.b.Clone()
	if removed < 0 || removed >= m.order {
		return out // non-existent node: nothing to remove
	}
	e := len(m.edges)
	var k, l int
	for k = 0; k < e; k++ {
		if m.link[k] != removed {
			continue
		}
		for l = 0; l < e; l++ {
			_ = out.Set(k, l, 0)
		}
	}

	return out
}
