package sat

import (
	"fmt"
	"io"
	"time"
)

// Options configures a Solver's tracing and nothing else: there is no
// restart policy, no clause-activity decay, and no cancellation API beyond
// abandoning the Solver object, so there is no equivalent of a CDCL solver's
// ClauseDecay/VariableDecay/MaxConflicts/Timeout knobs to expose.
type Options struct {
	// Trace, if non-nil, receives the advisory trace lines gated by the
	// three flags below. A nil Trace with any flag set is a no-op: nothing
	// is written.
	Trace io.Writer

	// TraceDecisions emits "split on <var>" each time the search branches.
	TraceDecisions bool
	// TracePropagations emits "found unit <lit>" each time a unit clause
	// forces an assignment.
	TracePropagations bool
	// TraceBackjumps emits "backjump on <high>, <low>" each time conflict
	// analysis picks a non-chronological backjump target.
	TraceBackjumps bool
}

// DefaultOptions disables all tracing.
var DefaultOptions = Options{}

// Solver decides the satisfiability of a single Formula. A Solver is not
// safe for concurrent use and owns all of its state: nothing is shared
// between Solver instances.
type Solver struct {
	formula Formula
	graph   *ImplicationGraph
	model   Interpretation // valid only after CheckSat returns Sat
	solved  bool
	status  Status

	opts Options

	// Search statistics, observational only: nothing below is consulted by
	// search() to change control flow (there are no restarts).
	TotalDecisions    int64
	TotalPropagations int64
	TotalConflicts    int64
	TotalBackjumps    int64
	backjumpSpan      EMA
	startTime         time.Time
	elapsed           time.Duration
}

// NewSolver returns a Solver for the given formula, configured with opts.
func NewSolver(f Formula, opts Options) *Solver {
	return &Solver{
		formula:      f,
		graph:        NewImplicationGraph(f.NumVars),
		opts:         opts,
		backjumpSpan: NewEMA(0.95),
	}
}

// NewDefaultSolver returns a Solver configured with DefaultOptions. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver(f Formula) *Solver {
	return NewSolver(f, DefaultOptions)
}

// CheckSat runs the search and returns Sat or Unsat. It must be called at
// most once per Solver.
func (s *Solver) CheckSat() Status {
	s.startTime = time.Now()
	defer func() { s.elapsed = time.Since(s.startTime) }()

	ok := s.search(NewInterpretation(s.formula.NumVars), 0, 0)
	s.solved = true
	if ok {
		s.status = Sat
	} else {
		s.status = Unsat
	}
	return s.status
}

// Elapsed returns the wall-clock duration of the last CheckSat call.
func (s *Solver) Elapsed() time.Duration {
	return s.elapsed
}

// BackjumpSpan returns the exponential moving average of the decision-level
// distance (DecisionLevel(high) - DecisionLevel(low)) jumped by each
// backjump so far. It is 0 if no backjump has occurred yet.
func (s *Solver) BackjumpSpan() float64 {
	return s.backjumpSpan.Val()
}

// GetModel returns the satisfying assignment found by CheckSat, covering
// every variable 1..NumVars. It must only be called after CheckSat returned
// Sat.
func (s *Solver) GetModel() map[int]bool {
	return s.model.ExportModel()
}

func (s *Solver) trace(format string, args ...any) {
	if s.opts.Trace == nil {
		return
	}
	fmt.Fprintf(s.opts.Trace, format+"\n", args...)
}

// search implements the DPLL loop: decisions, unit
// propagation to fixpoint, conflict detection, and non-chronological
// backjumping driven by the ImplicationGraph. decisionLit is 0 unless in
// came from a branching decision (as opposed to a propagation or a
// backjump's flip), in which case it is recorded at decisionLevel before
// anything else runs.
//
// Propagation and backjump continuations are trampolined with the for loop
// below rather than recursing again, so recursion depth tracks the number
// of true decision splits (step 5) rather than the total number of trail
// pushes; only the two-way branch at the bottom of this function recurses.
func (s *Solver) search(in Interpretation, decisionLit Literal, decisionLevel int) bool {
	for {
		if decisionLit != 0 {
			s.graph.SetDecision(decisionLit, decisionLevel)
		}

		if in.Satisfies(s.formula) {
			s.model = s.completeAssignment(in)
			return true
		}

		if c, conflict := in.ConflictingClause(s.formula); conflict {
			s.TotalConflicts++
			s.graph.Span(c, s.graph.LastAtom())

			high, low, ok := s.graph.FindReason()
			if !ok {
				return false
			}

			s.TotalBackjumps++
			s.backjumpSpan.Add(float64(s.graph.DecisionLevel(high) - s.graph.DecisionLevel(low)))
			if s.opts.TraceBackjumps {
				s.trace("backjump on %d, %d", high, low)
			}

			dStar := s.graph.DecisionLevel(low)
			for in.Len() > 0 && s.graph.DecisionLevel(in.Back().Var()) > dStar {
				in = in.Pop()
			}

			newLit := s.graph.Parity(high).Negate()
			s.graph.Tidy(in.Trail())
			in = in.Assign(newLit)
			s.graph.Connect(low, high)
			s.graph.SetDecision(newLit, dStar)

			decisionLit = 0
			decisionLevel = dStar
			continue
		}

		if lit, c, unit := in.UnitClause(s.formula); unit {
			s.TotalPropagations++
			if s.opts.TracePropagations {
				s.trace("found unit %d", lit)
			}
			s.graph.Span(c, lit.Var())
			in = in.Assign(lit)
			decisionLit = 0
			continue // decisionLevel carried unchanged across propagation
		}

		v := in.FirstAtom()
		s.TotalDecisions++
		if s.opts.TraceDecisions {
			s.trace("split on %d", v)
		}

		pos := Literal(v)
		if s.search(in.Assign(pos), pos, decisionLevel+1) {
			return true
		}

		neg := Literal(-v)
		return s.search(in.Assign(neg), neg, decisionLevel+1)
	}
}

// completeAssignment extends in arbitrarily (positive phase) to cover every
// variable, for the case where satisfies(formula) became true before every
// variable was forced (e.g. a variable absent from every clause).
func (s *Solver) completeAssignment(in Interpretation) Interpretation {
	for {
		allAssigned := true
		for v := 1; v <= s.formula.NumVars; v++ {
			if in.State(Literal(v)) == Unknown {
				allAssigned = false
				in = in.Assign(Literal(v))
				break
			}
		}
		if allAssigned {
			return in
		}
	}
}
