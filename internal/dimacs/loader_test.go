package dimacs

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rhartert/dpll/internal/sat"
)

var wantFormula = sat.Formula{
	NumVars: 3,
	Clauses: []sat.Clause{
		{1, 2},
		{-1, 3, -2},
	},
}

func TestLoadFormula_cnf(t *testing.T) {
	got, err := LoadFormula("testdata/test_instance.cnf", false)
	if err != nil {
		t.Fatalf("LoadFormula(): want no error, got %s", err)
	}
	if diff := cmp.Diff(wantFormula, got); diff != "" {
		t.Errorf("LoadFormula(): mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFormula_gzip(t *testing.T) {
	got, err := LoadFormula("testdata/test_instance.cnf.gz", true)
	if err != nil {
		t.Fatalf("LoadFormula(): want no error, got %s", err)
	}
	if diff := cmp.Diff(wantFormula, got); diff != "" {
		t.Errorf("LoadFormula(): mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFormula_noFile(t *testing.T) {
	if _, err := LoadFormula("testdata/does_not_exist.cnf", false); err == nil {
		t.Error("LoadFormula(): want error, got none")
	}
}

func TestLoadFormula_gzipFlagMismatch(t *testing.T) {
	if _, err := LoadFormula("testdata/test_instance.cnf", true); err == nil {
		t.Error("LoadFormula() on a plain file with gzipped=true: want error, got none")
	}
}

func TestParseModels(t *testing.T) {
	models, err := ParseModels("testdata/test_instance.models")
	if err != nil {
		t.Fatalf("ParseModels(): want no error, got %s", err)
	}
	want := [][]bool{
		{true, true, false},
		{true, false, true},
	}
	if diff := cmp.Diff(want, models); diff != "" {
		t.Errorf("ParseModels(): mismatch (-want +got):\n%s", diff)
	}
}
