package cassowary

import "sort"

// Row is a sparse linear combination: a constant plus a mapping from Symbol
// to coefficient. It is the solver's one hot data structure — every
// tableau entry, the objective, and the artificial row during
// addWithArtificialVariable are all Rows.
//
// Cells whose coefficient is within epsilon of zero are pruned immediately,
// never left lying around for a later check to skip.
type Row struct {
	Constant float64
	Cells    map[Symbol]float64
}

// NewRow returns an empty row with the given constant.
func NewRow(constant float64) *Row {
	return &Row{Constant: constant, Cells: make(map[Symbol]float64)}
}

// clone returns a deep copy of r.
func (r *Row) clone() *Row {
	cells := make(map[Symbol]float64, len(r.Cells))
	for s, c := range r.Cells {
		cells[s] = c
	}
	return &Row{Constant: r.Constant, Cells: cells}
}

// symbols returns the row's symbols in ascending packed-integer order — kind
// first, then id — which is the frozen tie-break order for every pivot
// selection in this package. Sorting on demand, rather than maintaining an
// ordered slice, keeps Insert/Remove O(1) amortized; sorting only happens on
// the (much rarer) path that chooses a pivot.
func (r *Row) symbols() []Symbol {
	out := make([]Symbol, 0, len(r.Cells))
	for s := range r.Cells {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// coefficient returns the coefficient of s in r, or 0 if absent.
func (r *Row) coefficient(s Symbol) float64 { return r.Cells[s] }

// has reports whether s has a (nonzero) cell in r.
func (r *Row) has(s Symbol) bool {
	_, ok := r.Cells[s]
	return ok
}

// Insert adds coef to symbol's cell, creating it if absent and deleting it
// if the result is within epsilon of zero.
func (r *Row) Insert(symbol Symbol, coef float64) {
	next := r.Cells[symbol] + coef
	if nearZero(next) {
		delete(r.Cells, symbol)
		return
	}
	r.Cells[symbol] = next
}

// InsertRow merges other into r scaled by scale: r.Constant += other.Constant
// * scale, and every cell of other is inserted into r with its coefficient
// scaled.
func (r *Row) InsertRow(other *Row, scale float64) {
	r.Constant += other.Constant * scale
	for s, c := range other.Cells {
		r.Insert(s, c*scale)
	}
}

// Remove deletes symbol's cell, if present.
func (r *Row) Remove(symbol Symbol) { delete(r.Cells, symbol) }

// ReverseSign negates the constant and every cell's coefficient.
func (r *Row) ReverseSign() {
	r.Constant = -r.Constant
	for s, c := range r.Cells {
		r.Cells[s] = -c
	}
}

// SolveFor divides the row by -coefficient(basic) and removes basic's cell,
// so the row now expresses basic's value as a linear function of the
// remaining symbols. Precondition: basic has a nonzero coefficient in r.
func (r *Row) SolveFor(basic Symbol) {
	coef := -1.0 / r.Cells[basic]
	delete(r.Cells, basic)

	r.Constant *= coef
	for s, c := range r.Cells {
		r.Cells[s] = c * coef
	}
}

// SolveForPair pivots r, substituting lhs with rhs: it inserts lhs with
// coefficient -1, then solves for rhs.
func (r *Row) SolveForPair(lhs, rhs Symbol) {
	r.Insert(lhs, -1.0)
	r.SolveFor(rhs)
}

// Substitute replaces symbol in r with other, if present: symbol's cell is
// removed and other is merged in, scaled by symbol's former coefficient.
func (r *Row) Substitute(symbol Symbol, other *Row) {
	coef, ok := r.Cells[symbol]
	if !ok {
		return
	}
	delete(r.Cells, symbol)
	r.InsertRow(other, coef)
}
