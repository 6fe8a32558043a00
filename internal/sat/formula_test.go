package sat

import "testing"

func TestNewFormula_Valid(t *testing.T) {
	f, err := NewFormula(3, []Clause{{1, -2}, {2, 3, -1}})
	if err != nil {
		t.Fatalf("NewFormula returned error: %v", err)
	}
	if f.NumVars != 3 {
		t.Errorf("NumVars = %d, want 3", f.NumVars)
	}
	if len(f.Clauses) != 2 {
		t.Errorf("len(Clauses) = %d, want 2", len(f.Clauses))
	}
}

func TestNewFormula_EmptyClause(t *testing.T) {
	if _, err := NewFormula(2, []Clause{{}}); err == nil {
		t.Error("NewFormula with an empty clause: got nil error, want non-nil")
	}
}

func TestNewFormula_ZeroLiteral(t *testing.T) {
	if _, err := NewFormula(2, []Clause{{0}}); err == nil {
		t.Error("NewFormula with literal 0: got nil error, want non-nil")
	}
}

func TestNewFormula_OutOfRange(t *testing.T) {
	tests := []Clause{{3}, {-3}, {0}}
	for _, c := range tests {
		if _, err := NewFormula(2, []Clause{c}); err == nil {
			t.Errorf("NewFormula with clause %v: got nil error, want non-nil", c)
		}
	}
}

func TestNewFormula_NoClauses(t *testing.T) {
	f, err := NewFormula(5, nil)
	if err != nil {
		t.Fatalf("NewFormula returned error: %v", err)
	}
	if !NewInterpretation(f.NumVars).Satisfies(f) {
		t.Error("empty formula should be satisfied by the empty interpretation")
	}
}
