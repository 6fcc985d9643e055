package main

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gosat/cdcl/internal/parsers"
	"github.com/gosat/cdcl/internal/sat"
)

// This test suite checks the solver end to end by enumerating, for every
// instance under testdataDir, the exact set of models and comparing it
// against a pre-computed set.
//
// Each test case is a pair of files:
//
//   - An instance file with a valid DIMACS CNF problem, ".cnf" extension.
//   - A models file listing one model per line, using the same literals as
//     the instance, with the same name plus a ".models" extension. A model
//     file with no lines means the instance is unsatisfiable.
var testdataDir = "testdata"

type testCase struct {
	instanceName string
	instanceFile string
	modelsFile   string
}

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
			modelsFile:   path + ".models",
		})
		return nil
	})
	return testCases, err
}

// toString returns a binary string representation of model, e.g.
// [true, false, false] becomes "100".
func toString(model []bool) string {
	s := make([]byte, len(model))
	for i, b := range model {
		s[i] = '0'
		if b {
			s[i] = '1'
		}
	}
	return string(s)
}

func toSet(models [][]bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAll returns every model of s's instance by repeatedly solving and
// blocking the last model found with a clause forbidding it.
func solveAll(s *sat.Solver) [][]bool {
	for s.Solve() == sat.True {
		model := s.Models[len(s.Models)-1]
		blocking := make([]sat.Literal, len(model))
		for i, b := range model {
			if b { // literals are flipped: forbid repeating this exact model
				blocking[i] = sat.NegativeLiteral(sat.Variable(i))
			} else {
				blocking[i] = sat.PositiveLiteral(sat.Variable(i))
			}
		}
		if err := s.AddClause(blocking); err != nil {
			break
		}
	}
	return s.Models
}

func TestSolveAll(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("error listing test cases: %s", err)
	}

	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.instanceName, func(t *testing.T) {
			t.Parallel()

			want, err := parsers.ReadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("model parsing error: %s", err)
			}

			s := sat.NewDefaultSolver()
			if err := parsers.LoadDIMACS(tc.instanceFile, false, false, s); err != nil {
				t.Fatalf("instance parsing error: %s", err)
			}

			got := solveAll(s)

			if len(got) != len(want) {
				t.Errorf("incorrect number of models: got %d, want %d", len(got), len(want))
			}
			if !cmp.Equal(toSet(got), toSet(want)) {
				t.Errorf("model mismatch: got %v, want %v", toSet(got), toSet(want))
			}
		})
	}
}
