package cassowary

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig formats values the way Dump wants them: no pointer addresses
// cluttering the output (those are
// meaningless across runs and would make golden-file style debugging
// output non-reproducible).
var dumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a human-readable snapshot of the solver's objective, tableau,
// infeasibility work-list, variable table, edit table, and constraint table
// to w. The format is not part of this package's stable surface and may
// change between releases; it exists for interactive debugging only.
func (s *Solver) Dump(w io.Writer) {
	fmt.Fprintln(w, "Objective")
	fmt.Fprintln(w, "---------")
	dumpRow(w, s.objective)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tableau")
	fmt.Fprintln(w, "-------")
	for _, sym := range s.sortedBasics() {
		fmt.Fprintf(w, "%s | ", sym)
		dumpRow(w, s.rows[sym])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Infeasible")
	fmt.Fprintln(w, "----------")
	for _, sym := range s.infeasible {
		fmt.Fprintln(w, sym)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Variables")
	fmt.Fprintln(w, "---------")
	for v, sym := range s.varSymbols {
		fmt.Fprintf(w, "%s = %s\n", v.Name, dumpConfig.Sprintf("%v", s.val(sym)))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Edit Variables")
	fmt.Fprintln(w, "--------------")
	for v := range s.edits {
		fmt.Fprintln(w, v.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Constraints")
	fmt.Fprintln(w, "-----------")
	for c := range s.constraints {
		dumpConstraint(w, c)
	}
}

// Dumps is Dump rendered to a string, for use in tests and logging.
func (s *Solver) Dumps() string {
	var b strings.Builder
	s.Dump(&b)
	return b.String()
}

func dumpRow(w io.Writer, row *Row) {
	if row == nil {
		fmt.Fprintln(w)
		return
	}
	for _, sym := range row.symbols() {
		fmt.Fprintf(w, " + %s * %s", dumpConfig.Sprintf("%v", row.Cells[sym]), sym)
	}
	fmt.Fprintln(w)
}

func dumpConstraint(w io.Writer, c *Constraint) {
	for _, t := range c.Expr.Terms {
		fmt.Fprintf(w, "%s * %s + ", dumpConfig.Sprintf("%v", t.Coef), t.Var.Name)
	}
	fmt.Fprintf(w, "%s %s 0 | strength = %s\n",
		dumpConfig.Sprintf("%v", c.Expr.Constant), c.Op, dumpConfig.Sprintf("%v", float64(c.Strength)))
}
