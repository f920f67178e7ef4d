package cassowary

// Operator is the relational operator of a Constraint.
type Operator uint8

const (
	OpLessThanOrEqual Operator = iota
	OpGreaterThanOrEqual
	OpEqual
)

func (o Operator) String() string {
	switch o {
	case OpLessThanOrEqual:
		return "<="
	case OpGreaterThanOrEqual:
		return ">="
	case OpEqual:
		return "=="
	default:
		return "?"
	}
}

// Constraint is an immutable (Expression, Operator, Strength) triple.
// Construction reduces the expression: terms referencing the same Variable
// are merged by summing coefficients, in order of each variable's first
// appearance, and the strength is clipped into [0, Required].
//
// Constraint identity for the solver's bookkeeping (HasConstraint,
// RemoveConstraint) is by pointer, not by value — two separately constructed
// Constraints with identical contents are distinct constraints, just as two
// Variables with the same name are distinct variables.
type Constraint struct {
	Expr     Expression
	Op       Operator
	Strength Strength
}

// NewConstraint reduces expr and clips strength, returning a new Constraint.
func NewConstraint(expr Expression, op Operator, strength Strength) *Constraint {
	return &Constraint{Expr: reduce(expr), Op: op, Strength: ClipStrength(strength)}
}

// AtStrength returns a new Constraint with the same expression and operator
// but a different (clipped) strength. The receiver is left unmodified.
func (c *Constraint) AtStrength(strength Strength) *Constraint {
	return &Constraint{Expr: c.Expr, Op: c.Op, Strength: ClipStrength(strength)}
}

// Violated reports whether c's expression fails its relational operator
// against the current Variable values.
func (c *Constraint) Violated() bool {
	v := c.Expr.Value()
	switch c.Op {
	case OpEqual:
		return !nearZero(v)
	case OpGreaterThanOrEqual:
		return v < 0
	case OpLessThanOrEqual:
		return v > 0
	default:
		return false
	}
}

// reduce merges terms that reference the same Variable by summing their
// coefficients, preserving each variable's first-occurrence order, and
// drops the (optional, solver-tolerated) resulting zero-coefficient terms.
func reduce(expr Expression) Expression {
	order := make([]*Variable, 0, len(expr.Terms))
	sums := make(map[*Variable]float64, len(expr.Terms))
	for _, t := range expr.Terms {
		if _, seen := sums[t.Var]; !seen {
			order = append(order, t.Var)
		}
		sums[t.Var] += t.Coef
	}

	terms := make([]Term, 0, len(order))
	for _, v := range order {
		coef := sums[v]
		if nearZero(coef) {
			continue
		}
		terms = append(terms, Term{Var: v, Coef: coef})
	}
	return Expression{Terms: terms, Constant: expr.Constant}
}
