// Package dimacs adapts the core solver (internal/sat) to DIMACS CNF input.
// The DIMACS grammar itself is out of scope for the core solver: this
// package is a thin Builder around the real external
// github.com/rhartert/dimacs reader, not a hand-rolled parser.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/rhartert/dpll/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadFormula parses the DIMACS CNF file at filename and returns the
// corresponding sat.Formula.
func LoadFormula(filename string, gzipped bool) (sat.Formula, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return sat.Formula{}, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return sat.Formula{}, fmt.Errorf("error parsing DIMACS instance %q: %w", filename, err)
	}

	return sat.NewFormula(b.numVars, b.clauses)
}

// builder implements github.com/rhartert/dimacs's Builder interface,
// translating its plain-int literal convention directly into sat.Literal
// (this package's raw signed-integer encoding needs no translation, unlike the
// teacher's v*2-packed literal space).
type builder struct {
	numVars int
	clauses []sat.Clause
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instance of type %q is not supported", problem)
	}
	b.numVars = nVars
	b.clauses = make([]sat.Clause, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make(sat.Clause, len(tmpClause))
	for i, l := range tmpClause {
		clause[i] = sat.Literal(l)
	}
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}
