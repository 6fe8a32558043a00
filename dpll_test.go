package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhartert/dpll/internal/dimacs"
	"github.com/rhartert/dpll/internal/sat"
)

// This test suite evaluates the end-to-end behavior of the solver by running
// it over a set of DIMACS instances with known outcomes (see testdataDir).
//
// Unlike a CDCL solver that enumerates every model, CheckSat reports a single
// verdict and (on SAT) a single witness model, so each test case is paired
// with an ".expect" file containing exactly "SAT" or "UNSAT" rather than a
// full set of golden models.
var testdataDir = "testdata"

type testCase struct {
	instanceName string
	instanceFile string
	expectFile   string
}

// listTestCases returns the list of test cases contained in the file tree
// rooted in the given directory.
func listTestCases(dir string) ([]testCase, error) {
	var testCases []testCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".cnf") {
			return nil // not an instance file
		}
		testCases = append(testCases, testCase{
			instanceName: d.Name(),
			instanceFile: path,
			expectFile:   path + ".expect",
		})
		return nil
	})
	return testCases, err
}

func readExpectedStatus(path string) (sat.Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return sat.Unsat, err
	}
	switch s := strings.TrimSpace(string(b)); s {
	case "SAT":
		return sat.Sat, nil
	case "UNSAT":
		return sat.Unsat, nil
	default:
		return sat.Unsat, fmt.Errorf("unrecognized expected status %q", s)
	}
}

// TestCheckSat_Scenarios verifies that the solver reaches the expected
// verdict for a set of DIMACS instances, and that every SAT verdict comes
// with a witness model that actually satisfies the instance. Test cases are
// evaluated in parallel.
func TestCheckSat_Scenarios(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("error listing test cases: %s", err)
	}
	if len(testCases) == 0 {
		t.Fatal("no test cases found")
	}

	for i := 0; i < len(testCases); i++ {
		tc := testCases[i]
		t.Run(tc.instanceName, func(t *testing.T) {
			t.Parallel()

			want, err := readExpectedStatus(tc.expectFile)
			if err != nil {
				t.Fatalf("error reading expected status: %s", err)
			}

			formula, err := dimacs.LoadFormula(tc.instanceFile, false)
			if err != nil {
				t.Fatalf("error loading instance: %s", err)
			}

			s := sat.NewDefaultSolver(formula)
			got := s.CheckSat()

			if got != want {
				t.Errorf("CheckSat() = %v, want %v", got, want)
			}
			if got == sat.Sat {
				model := s.GetModel()
				for v := 1; v <= formula.NumVars; v++ {
					if _, ok := model[v]; !ok {
						t.Errorf("model missing variable %d", v)
					}
				}
				for _, c := range formula.Clauses {
					satisfied := false
					for _, l := range c {
						if model[l.Var()] == l.IsPositive() {
							satisfied = true
							break
						}
					}
					if !satisfied {
						t.Errorf("model %v does not satisfy clause %v", model, c)
					}
				}
			}
		})
	}
}
