package cassowary

// Variable is a named, mutable numeric cell. Two Variables with the same
// Name are distinct: identity is by reference (pointer), never by name or
// value, mirroring the kiwi reference implementation's shared, reference-
// counted BasicVariable. The solver writes Value only from UpdateVariables;
// everything else is free to read it at any time.
type Variable struct {
	Name    string
	Value   float64
	Context interface{}
}

// NewVariable returns a fresh Variable handle with the given name.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

// T builds a Term applying coef to v. Named after the reference
// implementation's operator*, the closest a host without operator
// overloading gets to `coef * variable`.
func (v *Variable) T(coef float64) Term { return Term{Var: v, Coef: coef} }

// Plus builds an Expression equal to v + other.
func (v *Variable) Plus(other *Variable) Expression {
	return NewExpression(0, v.T(1), other.T(1))
}

// Minus builds an Expression equal to v - other.
func (v *Variable) Minus(other *Variable) Expression {
	return NewExpression(0, v.T(1), other.T(-1))
}

// Times builds an Expression equal to coef * v.
func (v *Variable) Times(coef float64) Expression { return NewExpression(0, v.T(coef)) }

// Eq builds a required Constraint v == val. Use Constraint.AtStrength to
// soften it.
func (v *Variable) Eq(val float64) *Constraint { return v.T(1).Eq(val) }

// Le builds a required Constraint v <= val.
func (v *Variable) Le(val float64) *Constraint { return v.T(1).Le(val) }

// Ge builds a required Constraint v >= val.
func (v *Variable) Ge(val float64) *Constraint { return v.T(1).Ge(val) }

// Term is a (Variable, coefficient) pair; the coefficient is always a real
// number regardless of what the variable's value represents.
type Term struct {
	Var  *Variable
	Coef float64
}

// Value returns Coef * Var.Value.
func (t Term) Value() float64 { return t.Coef * t.Var.Value }

// Plus builds an Expression equal to t + e.
func (t Term) Plus(e Expression) Expression { return e.Plus(NewExpression(0, t)) }

// Eq builds a required Constraint t == val.
func (t Term) Eq(val float64) *Constraint {
	return NewConstraint(NewExpression(-val, t), OpEqual, Required)
}

// Le builds a required Constraint t <= val.
func (t Term) Le(val float64) *Constraint {
	return NewConstraint(NewExpression(-val, t), OpLessThanOrEqual, Required)
}

// Ge builds a required Constraint t >= val.
func (t Term) Ge(val float64) *Constraint {
	return NewConstraint(NewExpression(-val, t), OpGreaterThanOrEqual, Required)
}

// Expression is an ordered sequence of Terms plus an additive constant.
// Its semantic value is Constant + Σ term.Coef * term.Var.Value.
//
// Expression is a value type: every operation below returns a fresh
// Expression rather than mutating the receiver, so callers can build up
// constraints from shared sub-expressions without aliasing surprises.
type Expression struct {
	Terms    []Term
	Constant float64
}

// NewExpression builds an Expression from a constant and zero or more terms.
func NewExpression(constant float64, terms ...Term) Expression {
	cp := make([]Term, len(terms))
	copy(cp, terms)
	return Expression{Terms: cp, Constant: constant}
}

// Value evaluates the expression against the current Variable values.
func (e Expression) Value() float64 {
	v := e.Constant
	for _, t := range e.Terms {
		v += t.Value()
	}
	return v
}

func (e Expression) clone() Expression {
	cp := make([]Term, len(e.Terms))
	copy(cp, e.Terms)
	return Expression{Terms: cp, Constant: e.Constant}
}

// Plus builds a fresh Expression equal to e + other.
func (e Expression) Plus(other Expression) Expression {
	out := e.clone()
	out.Constant += other.Constant
	out.Terms = append(out.Terms, other.Terms...)
	return out
}

// Minus builds a fresh Expression equal to e - other.
func (e Expression) Minus(other Expression) Expression {
	out := e.clone()
	out.Constant -= other.Constant
	for _, t := range other.Terms {
		out.Terms = append(out.Terms, Term{Var: t.Var, Coef: -t.Coef})
	}
	return out
}

// Times builds a fresh Expression equal to coef * e.
func (e Expression) Times(coef float64) Expression {
	out := Expression{Terms: make([]Term, len(e.Terms)), Constant: e.Constant * coef}
	for i, t := range e.Terms {
		out.Terms[i] = Term{Var: t.Var, Coef: t.Coef * coef}
	}
	return out
}

// Eq builds a required Constraint e == val.
func (e Expression) Eq(val float64) *Constraint {
	return NewConstraint(e.Minus(NewExpression(val)), OpEqual, Required)
}

// Le builds a required Constraint e <= val.
func (e Expression) Le(val float64) *Constraint {
	return NewConstraint(e.Minus(NewExpression(val)), OpLessThanOrEqual, Required)
}

// Ge builds a required Constraint e >= val.
func (e Expression) Ge(val float64) *Constraint {
	return NewConstraint(e.Minus(NewExpression(val)), OpGreaterThanOrEqual, Required)
}
