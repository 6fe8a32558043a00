package sat

// ImplicationGraph records, for each currently assigned variable, the
// decision level and polarity it was assigned at, and a reason graph of
// which antecedent variables forced it. Unlike Interpretation, a single
// ImplicationGraph instance is shared, by pointer, across the whole search:
// it is kept consistent across backjumps by Tidy rather than snapshotted.
//
// The reason graph is stored as per-variable predecessor lists rather than
// the dense n×n boolean matrix of the original design — equivalent
// semantics, O(|F|) space instead of O(n^2).
type ImplicationGraph struct {
	decisionLevel []int     // decisionLevel[v], 0 if unassigned or not yet set
	parity        []Literal // parity[v], the signed literal for v on the trail, 0 if unassigned
	pred          [][]int   // pred[v] lists the variables with an edge into v
	lastAtom      int       // variable of the most recently implied literal

	visited  ResetSet // scratch visited set for FindReason, reused across calls
	worklist *Queue[int]
}

// NewImplicationGraph returns an empty graph over variables 1..n.
func NewImplicationGraph(n int) *ImplicationGraph {
	g := &ImplicationGraph{
		decisionLevel: make([]int, n+1),
		parity:        make([]Literal, n+1),
		pred:          make([][]int, n+1),
		worklist:      NewQueue[int](16),
	}
	g.visited.Expand() // index 0, unused
	for v := 1; v <= n; v++ {
		g.visited.Expand()
	}
	return g
}

// SetDecision records l as assigned at decision level d. The search calls it
// for branching decisions and for the literal flipped by a backjump; literals
// forced by unit propagation get their level from Span instead, and no parity
// is recorded for them.
func (g *ImplicationGraph) SetDecision(l Literal, d int) {
	v := l.Var()
	g.decisionLevel[v] = d
	g.parity[v] = l
}

// DecisionLevel returns the decision level recorded for variable v.
func (g *ImplicationGraph) DecisionLevel(v int) int {
	return g.decisionLevel[v]
}

// Parity returns the signed literal recorded for variable v (0 if none).
func (g *ImplicationGraph) Parity(v int) Literal {
	return g.parity[v]
}

// LastAtom returns the variable of the most recently implied literal, the
// starting point for FindReason's reverse traversal.
func (g *ImplicationGraph) LastAtom() int {
	return g.lastAtom
}

// Connect adds an edge from variable u to variable v ("u helped force v")
// and records v as the most recently implied variable.
func (g *ImplicationGraph) Connect(u, v int) {
	g.pred[v] = append(g.pred[v], u)
	g.lastAtom = v
}

// Span is called when clause c becomes unit (forcing the variable `target`)
// or fully falsified (then target is the most recently implied variable).
// Every other literal in c is connected as an antecedent of target, and
// target's decision level is set to the maximum decision level among those
// antecedents.
func (g *ImplicationGraph) Span(c Clause, target int) {
	maxLevel := 0
	for _, l := range c {
		if l.Var() == target {
			continue
		}
		g.Connect(l.Var(), target)
		if lvl := g.decisionLevel[l.Var()]; lvl > maxLevel {
			maxLevel = lvl
		}
	}
	g.decisionLevel[target] = maxLevel
}

// Clear removes all edges touching v, both its own predecessor list and every
// occurrence of v in other variables' predecessor lists, and resets its
// decision level and parity.
func (g *ImplicationGraph) Clear(v int) {
	g.pred[v] = nil
	for u, preds := range g.pred {
		kept := preds[:0]
		for _, p := range preds {
			if p != v {
				kept = append(kept, p)
			}
		}
		g.pred[u] = kept
	}
	g.decisionLevel[v] = 0
	g.parity[v] = 0
}

// Tidy clears every variable not present on trail. It is invoked after a
// backjump pops part of the trail, to purge stale reason metadata for
// variables that are no longer assigned. Calling Tidy twice in succession
// with the same trail is equivalent to calling it once: the second call
// clears an already-empty set of stale variables.
func (g *ImplicationGraph) Tidy(trail []Literal) {
	onTrail := make([]bool, len(g.decisionLevel))
	for _, l := range trail {
		onTrail[l.Var()] = true
	}
	for v := 1; v < len(g.decisionLevel); v++ {
		if !onTrail[v] {
			g.Clear(v)
		}
	}
}

// FindReason performs conflict analysis: starting from lastAtom, it follows
// predecessor edges backward and collects every reachable variable with no
// predecessor of its own (a "source", i.e. a decision). It returns the two
// sources with the highest decision levels, high first (decisionLevel[high]
// >= decisionLevel[low]). If fewer than two sources are reachable, it
// returns (0, 0, false): no backjump is possible and the search branch is a
// dead end.
func (g *ImplicationGraph) FindReason() (high, low int, ok bool) {
	g.visited.Clear()
	g.worklist.Clear()
	g.worklist.Push(g.lastAtom)
	g.visited.Add(g.lastAtom)

	var sources []int
	for !g.worklist.IsEmpty() {
		x := g.worklist.Pop()
		preds := g.pred[x]
		if len(preds) == 0 {
			sources = append(sources, x)
			continue
		}
		for _, p := range preds {
			if !g.visited.Contains(p) {
				g.visited.Add(p)
				g.worklist.Push(p)
			}
		}
	}

	if len(sources) < 2 {
		return 0, 0, false
	}

	high, low = sources[0], sources[1]
	if g.decisionLevel[low] > g.decisionLevel[high] {
		high, low = low, high
	}
	for _, s := range sources[2:] {
		switch {
		case g.decisionLevel[s] > g.decisionLevel[high]:
			high, low = s, high
		case g.decisionLevel[s] > g.decisionLevel[low]:
			low = s
		}
	}
	return high, low, true
}
