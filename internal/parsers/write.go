package parsers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gosat/cdcl/internal/sat"
)

// WriteModel writes model, indexed by 0-based sat.Variable, to path as one
// line of 1-based signed integers terminated by 0 — the same convention
// ReadModels expects back.
func WriteModel(path string, model []bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeModel(f, model)
}

func writeModel(w io.Writer, model []bool) error {
	bw := bufio.NewWriter(w)
	for i, b := range model {
		if i > 0 {
			bw.WriteByte(' ')
		}
		n := i + 1
		if !b {
			n = -n
		}
		bw.WriteString(strconv.Itoa(n))
	}
	bw.WriteString(" 0\n")
	return bw.Flush()
}

// WriteSimplified writes clauses (as currently held by the solver, e.g.
// after Preprocess) to path as a DIMACS CNF file with numVars as the
// declared variable count. Variable numbering is unchanged from the input
// file: eliminated variables simply no longer appear in any clause, rather
// than the slots being compacted out, so no separate remapping table is
// needed to interpret the output.
func WriteSimplified(path string, numVars int, clauses [][]sat.Literal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeSimplified(f, numVars, clauses)
}

func writeSimplified(w io.Writer, numVars int, clauses [][]sat.Literal) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses))
	for _, clause := range clauses {
		for _, l := range clause {
			n := int(l.VarID()) + 1
			if !l.IsPositive() {
				n = -n
			}
			fmt.Fprintf(bw, "%d ", n)
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}
