package cassowary

import "fmt"

// DuplicateConstraintError is returned by AddConstraint when Constraint is
// already present in the solver.
type DuplicateConstraintError struct {
	Constraint *Constraint
}

func (e *DuplicateConstraintError) Error() string {
	return "cassowary: constraint has already been added to the solver"
}

// UnknownConstraintError is returned by RemoveConstraint when Constraint is
// not present in the solver.
type UnknownConstraintError struct {
	Constraint *Constraint
}

func (e *UnknownConstraintError) Error() string {
	return "cassowary: constraint has not been added to the solver"
}

// DuplicateEditVariableError is returned by AddEditVariable when Variable is
// already registered as editable.
type DuplicateEditVariableError struct {
	Variable *Variable
}

func (e *DuplicateEditVariableError) Error() string {
	return "cassowary: variable has already been added as an edit variable"
}

// UnknownEditVariableError is returned by RemoveEditVariable and
// SuggestValue when Variable is not registered as editable.
type UnknownEditVariableError struct {
	Variable *Variable
}

func (e *UnknownEditVariableError) Error() string {
	return "cassowary: variable has not been added as an edit variable"
}

// BadRequiredStrengthError is returned where the API forbids Strength
// Required, e.g. AddEditVariable.
type BadRequiredStrengthError struct{}

func (e *BadRequiredStrengthError) Error() string {
	return "cassowary: required strength cannot be used in this context"
}

// UnsatisfiableConstraintError is returned by AddConstraint when adding
// Constraint would make the required constraint set infeasible. The solver's
// state is unchanged when this error is returned.
type UnsatisfiableConstraintError struct {
	Constraint *Constraint
}

func (e *UnsatisfiableConstraintError) Error() string {
	return "cassowary: constraint cannot be satisfied"
}

// InternalSolverError signals a violated invariant: an unbounded objective,
// or a dual-optimization step with no entering candidate. It always
// indicates a bug in this package rather than in caller input.
type InternalSolverError struct {
	Msg string
}

func (e *InternalSolverError) Error() string {
	return fmt.Sprintf("cassowary: internal solver error: %s", e.Msg)
}
