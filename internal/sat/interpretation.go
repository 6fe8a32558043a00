package sat

// Interpretation is a partial assignment over a Formula's variables. It is
// logically immutable: Assign and Pop return a new Interpretation rather than
// mutating the receiver, so that two Interpretation values obtained by
// branching from a common ancestor never alias each other's trail or
// remaining-variable bookkeeping. This is what lets the recursive search
// engine in solver.go backjump deep inside one branch without corrupting an
// ancestor branch's own view of the world once control returns to it.
type Interpretation struct {
	trail     []Literal
	remaining []bool // size n+1; remaining[0] is unused
}

// NewInterpretation returns the empty interpretation over variables 1..n.
func NewInterpretation(n int) Interpretation {
	remaining := make([]bool, n+1)
	for v := 1; v <= n; v++ {
		remaining[v] = true
	}
	return Interpretation{remaining: remaining}
}

// Assign returns a new Interpretation with l appended to the trail and
// Var(l) removed from the remaining set. l.Var() must currently be
// unassigned.
func (in Interpretation) Assign(l Literal) Interpretation {
	trail := make([]Literal, len(in.trail)+1)
	copy(trail, in.trail)
	trail[len(in.trail)] = l

	remaining := make([]bool, len(in.remaining))
	copy(remaining, in.remaining)
	remaining[l.Var()] = false

	return Interpretation{trail: trail, remaining: remaining}
}

// Pop returns a new Interpretation with the last trail literal removed and
// its variable restored to the remaining set. The trail must be non-empty.
func (in Interpretation) Pop() Interpretation {
	last := in.trail[len(in.trail)-1]

	trail := make([]Literal, len(in.trail)-1)
	copy(trail, in.trail[:len(in.trail)-1])

	remaining := make([]bool, len(in.remaining))
	copy(remaining, in.remaining)
	remaining[last.Var()] = true

	return Interpretation{trail: trail, remaining: remaining}
}

// FirstAtom returns the smallest-indexed unassigned variable. It panics if
// every variable is already assigned: the search loop always checks
// Satisfies/ConflictingClause before calling FirstAtom, and a total
// assignment is guaranteed to do one or the other, so reaching an exhausted
// remaining set here is an internal invariant violation.
func (in Interpretation) FirstAtom() int {
	for v := 1; v < len(in.remaining); v++ {
		if in.remaining[v] {
			return v
		}
	}
	panic("sat: FirstAtom called with no remaining variable (NoRemainingAtom)")
}

// State returns True if l is on the trail, False if its negation is, and
// Unknown if neither is (i.e. Var(l) is unassigned).
func (in Interpretation) State(l Literal) LBool {
	for _, d := range in.trail {
		if d == l {
			return True
		}
		if d == -l {
			return False
		}
	}
	return Unknown
}

func (in Interpretation) clauseSatisfied(c Clause) bool {
	for _, l := range c {
		if in.State(l) == True {
			return true
		}
	}
	return false
}

func (in Interpretation) clauseFalsified(c Clause) bool {
	for _, l := range c {
		if in.State(l) != False {
			return false
		}
	}
	return true
}

// Satisfies reports whether every clause of f has a literal on the trail.
func (in Interpretation) Satisfies(f Formula) bool {
	for _, c := range f.Clauses {
		if !in.clauseSatisfied(c) {
			return false
		}
	}
	return true
}

// ConflictingClause returns the first clause of f that is fully falsified
// under this interpretation, if any.
func (in Interpretation) ConflictingClause(f Formula) (Clause, bool) {
	for _, c := range f.Clauses {
		if in.clauseFalsified(c) {
			return c, true
		}
	}
	return nil, false
}

// unitLiteral returns the clause's forcing literal if the clause has exactly
// one unassigned literal and every other literal is false; the sentinel
// literal 0 otherwise.
func (in Interpretation) unitLiteral(c Clause) Literal {
	var unit Literal
	unassigned := 0
	for _, l := range c {
		switch in.State(l) {
		case True:
			return 0
		case Unknown:
			unassigned++
			unit = l
			if unassigned > 1 {
				return 0
			}
		}
	}
	if unassigned == 1 {
		return unit
	}
	return 0
}

// UnitClause scans f in clause order, and within each clause in literal
// order, for the first clause that is unit under this interpretation. It
// returns the forcing literal and the clause that forced it (the clause must
// be reported so the caller can record reasons via ImplicationGraph.Span).
func (in Interpretation) UnitClause(f Formula) (Literal, Clause, bool) {
	for _, c := range f.Clauses {
		if l := in.unitLiteral(c); l != 0 {
			return l, c, true
		}
	}
	return 0, nil, false
}

// Back returns the most recently assigned literal. The trail must be
// non-empty.
func (in Interpretation) Back() Literal {
	return in.trail[len(in.trail)-1]
}

// Len returns the number of literals on the trail.
func (in Interpretation) Len() int {
	return len(in.trail)
}

// Trail returns the trail in assignment order. The caller must not mutate
// the returned slice.
func (in Interpretation) Trail() []Literal {
	return in.trail
}

// ExportModel returns the total assignment represented by this
// interpretation's trail. The caller is responsible for ensuring the trail
// is total (every variable 1..n assigned) before relying on the result as a
// SAT witness.
func (in Interpretation) ExportModel() map[int]bool {
	model := make(map[int]bool, len(in.trail))
	for _, l := range in.trail {
		model[l.Var()] = l.IsPositive()
	}
	return model
}
