// Package dfs: strongly connected components, Tarjan's algorithm in an
// explicit work-stack formulation (no language-level recursion).

package dfs

import (
	"fmt"

	"github.com/velikar/spectra/core"
)

// sccState carries the Tarjan bookkeeping for one run.
type sccState struct {
	g       *core.Graph
	index   []int // discovery index per vertex, -1 = undiscovered
	lowlink []int
	onStack []bool
	stack   []int // Tarjan's component stack
	counter int
	comps   [][]int // member lists in completion order
}

// sccFrame is one entry of the explicit DFS stack.
type sccFrame struct {
	v    int
	next int // position of the next neighbor to explore
}

// StronglyConnectedComponents discovers the strongly connected
// components reachable from start (Tarjan) and returns one induced
// subgraph per component, in completion order, with member vertices in
// ascending index order re-indexed contiguously from 0.
// Errors: ErrNilGraph, core.ErrVertexNotFound, subgraph construction failures.
// Complexity: O(V + E) discovery plus O(Σk²) subgraph builds.
func StronglyConnectedComponents(g *core.Graph, start int) ([]*core.Graph, error) {
	// 1. Validate and prepare bookkeeping
	if err := validate(g, start); err != nil {
		return nil, err
	}
	n := g.Order()
	s := &sccState{
		g:       g,
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range s.index {
		s.index[i] = -1
	}

	// 2. Tarjan from the start vertex only (components reachable from it)
	s.strongConnect(start)

	// 3. Materialize each component as a re-indexed subgraph
	out := make([]*core.Graph, 0, len(s.comps))
	for _, members := range s.comps {
		sub, err := g.Subgraph(members)
		if err != nil {
			return nil, fmt.Errorf("dfs: scc subgraph: %w", err)
		}
		out = append(out, sub)
	}

	return out, nil
}

// strongConnect runs the iterative Tarjan descent from root.
func (s *sccState) strongConnect(root int) {
	s.discover(root)
	work := []sccFrame{{v: root}}

	for len(work) > 0 {
		top := &work[len(work)-1]
		v, _ := s.g.VertexAt(top.v)

		if top.next < len(v.Adjacency) {
			w := v.Adjacency[top.next].Index
			top.next++

			if s.index[w] == -1 {
				// Tree edge: descend
				s.discover(w)
				work = append(work, sccFrame{v: w})
			} else if s.onStack[w] {
				// Back/cross edge into the current component stack
				if s.index[w] < s.lowlink[top.v] {
					s.lowlink[top.v] = s.index[w]
				}
			}

			continue
		}

		// Frame exhausted: fold the lowlink into the parent, pop roots
		work = work[:len(work)-1]
		if len(work) > 0 {
			parent := &work[len(work)-1]
			if s.lowlink[top.v] < s.lowlink[parent.v] {
				s.lowlink[parent.v] = s.lowlink[top.v]
			}
		}
		if s.lowlink[top.v] == s.index[top.v] {
			s.popComponent(top.v)
		}
	}
}

// discover assigns the next discovery index to v and pushes it onto the
// component stack.
func (s *sccState) discover(v int) {
	s.index[v] = s.counter
	s.lowlink[v] = s.counter
	s.counter++
	s.onStack[v] = true
	s.stack = append(s.stack, v)
}

// popComponent pops the finished component rooted at v off the stack and
// records its members in ascending index order for determinism.
func (s *sccState) popComponent(v int) {
	var members []int
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[w] = false
		members = append(members, w)
		if w == v {
			break
		}
	}
	// ascending order keeps subgraph vertex labeling deterministic
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if members[j] < members[i] {
				members[i], members[j] = members[j], members[i]
			}
		}
	}
	s.comps = append(s.comps, members)
}
