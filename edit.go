package cassowary

// AddEditVariable registers v as editable at the given strength, which must
// be non-required: a soft equality v == 0 is installed to pin it, and the
// last suggested value is recorded as 0.
// Returns BadRequiredStrengthError if strength is Required, or
// DuplicateEditVariableError if v is already registered.
func (s *Solver) AddEditVariable(v *Variable, strength Strength) error {
	if strength == Required {
		return &BadRequiredStrengthError{}
	}
	if s.HasEditVariable(v) {
		return &DuplicateEditVariableError{Variable: v}
	}

	pin := NewConstraint(NewExpression(0, v.T(1)), OpEqual, strength)
	if err := s.AddConstraint(pin); err != nil {
		return err
	}

	s.edits[v] = EditInfo{Tag: s.constraints[pin], Constraint: pin, Value: 0}
	return nil
}

// RemoveEditVariable unregisters v, removing its pinning constraint.
// Returns UnknownEditVariableError if v was never registered.
func (s *Solver) RemoveEditVariable(v *Variable) error {
	info, ok := s.edits[v]
	if !ok {
		return &UnknownEditVariableError{Variable: v}
	}
	delete(s.edits, v)
	return s.RemoveConstraint(info.Constraint)
}

// SuggestValue updates v's pinned target to value and restores feasibility
// via dual optimization. Returns UnknownEditVariableError if v was never
// registered as editable.
func (s *Solver) SuggestValue(v *Variable, value float64) error {
	info, ok := s.edits[v]
	if !ok {
		return &UnknownEditVariableError{Variable: v}
	}

	delta := value - info.Value
	info.Value = value
	s.edits[v] = info

	switch {
	case s.bumpIfBasic(info.Tag.Marker, -delta):
	case s.bumpIfBasic(info.Tag.Other, delta):
	default:
		for basic, row := range s.rows {
			if coef, ok := row.Cells[info.Tag.Marker]; ok {
				s.applyDelta(basic, row, coef*delta)
			}
		}
	}

	return s.dualOptimize()
}

// bumpIfBasic adjusts sym's row constant by delta if sym is currently basic,
// queuing it as infeasible if the result goes negative. Reports whether sym
// was basic (and therefore handled).
func (s *Solver) bumpIfBasic(sym Symbol, delta float64) bool {
	row, ok := s.rows[sym]
	if !ok {
		return false
	}
	row.Constant += delta
	if row.Constant < 0 {
		s.infeasible = append(s.infeasible, sym)
	}
	return true
}

// applyDelta adds delta to row's constant, queuing basic as infeasible if
// the result goes negative and basic isn't External (External symbols are
// never restricted to non-negative values, so they never need to be
// re-pivoted for feasibility).
func (s *Solver) applyDelta(basic Symbol, row *Row, delta float64) {
	if nearZero(delta) {
		return
	}
	row.Constant += delta
	if row.Constant >= 0 || basic.Kind() == External {
		return
	}
	s.infeasible = append(s.infeasible, basic)
}
