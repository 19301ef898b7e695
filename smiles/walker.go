package smiles

// Visitor receives the structured event sequence a Walker produces from a
// depth-first traversal of an Adjacency list. Implementations are free to
// ignore events they don't care about (Writer uses all of them; a
// fingerprint extractor might only look at Extend).
type Visitor interface {
	Root(atomIdx int, atom Atom)
	Extend(fromIdx, toIdx int, atom Atom, bond Bond)
	BranchOpen()
	BranchClose()
	RingOpen(atomIdx, digit int, bond BondKind)
	RingClose(atomIdx, digit int, bond BondKind)
	Disconnect()
}

// ringDigits allocates and frees ring-closure digits, always picking the
// smallest free one: [1..9] first, then [10..99] via %NN, per §4.G.
type ringDigits struct {
	used [100]bool
}

func (r *ringDigits) alloc() int {
	for d := 1; d <= 9; d++ {
		if !r.used[d] {
			r.used[d] = true
			return d
		}
	}
	for d := 10; d <= 99; d++ {
		if !r.used[d] {
			r.used[d] = true
			return d
		}
	}
	// Resource policy (§5) bounds the digit space at 100; a graph needing
	// more simultaneously open rings than that is outside the modeled
	// envelope. Reusing 99 beats panicking for a caller who hits this.
	return 99
}

func (r *ringDigits) free(d int) {
	r.used[d] = false
}

// ringEvent is one ring-open or ring-close callback an atom must fire
// during emission. pairID links an open event to its matching close event
// so pass 2 can assign the digit number at the moment the open actually
// fires (true emission order), rather than precomputing it in pass 1.
type ringEvent struct {
	pairID int
	bond   BondKind
	open   bool
}

// classifyGraph is the result of pass 1: for every atom, the tree-edge
// targets to descend into during emission (in bond-list order) and the
// ring events it must fire. Computing this ahead of emission is what lets
// the Writer (or any Visitor) know, before recursing, which of an atom's
// remaining neighbors is the *last* one, so every earlier one gets
// wrapped in a branch and the last continues the main chain.
type classifyGraph struct {
	treeChildren [][]int
	treeBonds    [][]Bond
	ringAt       [][]ringEvent
	isRoot       []bool
}

// classify performs pass 1: an iterative, lazily-checked depth-first walk
// of every connected component (component roots are the lowest-index atom
// not yet visited). Because it marks an atom visited at the moment it is
// first reached and only then continues scanning that atom's remaining
// bonds, it resolves tree-vs-ring classification exactly as a full
// recursive DFS would, unlike checking every bond's visited-state in one
// upfront snapshot, which would misclassify ring edges discovered before
// their true tree path completes.
func classify(adj *Adjacency) (*classifyGraph, error) {
	n := adj.Len()
	g := &classifyGraph{
		treeChildren: make([][]int, n),
		treeBonds:    make([][]Bond, n),
		ringAt:       make([][]ringEvent, n),
		isRoot:       make([]bool, n),
	}
	visited := make(map[int]int, n) // atom -> the atom it was discovered from (-1 for a component root)
	pairSeen := make(map[[2]int]int) // unordered atom pair -> pairID
	nextPairID := 0

	for i := range adj.Atoms {
		for _, bond := range adj.Atoms[i].Bonds {
			if bond.Target < 0 || bond.Target >= n {
				return nil, &IncompleteAdjacencyError{AtomIndex: i, Reason: "bond target out of range"}
			}
			twin := false
			for _, back := range adj.Atoms[bond.Target].Bonds {
				twin = twin || back.Target == i
			}
			if !twin {
				return nil, &IncompleteAdjacencyError{AtomIndex: i, Reason: "bond lacks its reciprocal twin"}
			}
		}
	}

	type frame struct {
		atom  int
		bondI int
	}

	for root := 0; root < n; root++ {
		if _, ok := visited[root]; ok {
			continue
		}
		g.isRoot[root] = true
		visited[root] = -1
		stack := []frame{{atom: root, bondI: 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			atom := top.atom
			bonds := adj.Atoms[atom].Bonds
			if top.bondI >= len(bonds) {
				stack = stack[:len(stack)-1]
				continue
			}
			bond := bonds[top.bondI]
			top.bondI++

			if bond.Target < 0 || bond.Target >= n {
				return nil, &IncompleteAdjacencyError{AtomIndex: atom, Reason: "bond target out of range"}
			}
			if _, seen := visited[bond.Target]; !seen {
				visited[bond.Target] = atom
				g.treeChildren[atom] = append(g.treeChildren[atom], bond.Target)
				g.treeBonds[atom] = append(g.treeBonds[atom], bond)
				stack = append(stack, frame{atom: bond.Target, bondI: 0})
				continue
			}
			if parent, ok := visited[atom]; ok && parent == bond.Target {
				continue // the tree edge we were reached through, not a ring
			}

			key := [2]int{atom, bond.Target}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if _, already := pairSeen[key]; already {
				continue // reciprocal bond entry of a ring edge already classified
			}
			pairSeen[key] = nextPairID
			id := nextPairID
			nextPairID++
			g.ringAt[bond.Target] = append(g.ringAt[bond.Target], ringEvent{pairID: id, bond: bond.Kind.Complement(), open: true})
			g.ringAt[atom] = append(g.ringAt[atom], ringEvent{pairID: id, bond: bond.Kind, open: false})
		}
	}
	return g, nil
}

// Walk traverses adjacency depth-first, calling visitor for every root,
// extend, branch, and ring event, per §4.G. Root selection is the lowest-
// index unvisited atom of each connected component; neighbor order within
// an atom follows Atom.Bonds, preserving stereo-relevant ordering.
func Walk(adjacency *Adjacency, visitor Visitor) error {
	n := adjacency.Len()
	if n == 0 {
		return nil
	}
	g, err := classify(adjacency)
	if err != nil {
		return err
	}

	digits := &ringDigits{}
	digitOf := make(map[int]int)
	first := true

	var emit func(atom int) error
	emit = func(atom int) error {
		for _, ev := range g.ringAt[atom] {
			if ev.open {
				d := digits.alloc()
				digitOf[ev.pairID] = d
				visitor.RingOpen(atom, d, ev.bond)
			} else {
				d := digitOf[ev.pairID]
				digits.free(d)
				delete(digitOf, ev.pairID)
				visitor.RingClose(atom, d, ev.bond)
			}
		}
		children := g.treeChildren[atom]
		for i, child := range children {
			last := i == len(children)-1
			if !last {
				visitor.BranchOpen()
			}
			visitor.Extend(atom, child, adjacency.Atoms[child], g.treeBonds[atom][i])
			if err := emit(child); err != nil {
				return err
			}
			if !last {
				visitor.BranchClose()
			}
		}
		return nil
	}

	for root := 0; root < n; root++ {
		if !g.isRoot[root] {
			continue
		}
		if !first {
			visitor.Disconnect()
		}
		first = false
		visitor.Root(root, adjacency.Atoms[root])
		if err := emit(root); err != nil {
			return err
		}
	}
	return nil
}

// Walker wraps an Adjacency so repeated Walk calls (e.g. against several
// visitors) don't need to re-pass it.
type Walker struct {
	adj *Adjacency
}

// NewWalker creates a Walker over adjacency, which must already be
// finalized by Builder.Build.
func NewWalker(adjacency *Adjacency) *Walker {
	return &Walker{adj: adjacency}
}

// Walk runs Walk(w.adj, visitor).
func (w *Walker) Walk(visitor Visitor) error {
	return Walk(w.adj, visitor)
}
