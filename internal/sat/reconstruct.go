package sat

// pushReconstruction records lits (a clause that mentioned v, about to be
// deleted) as an elimination record: a copy of lits with v's literal moved
// to the last position, so extendModel can later recover it.
func (sp *Simplifier) pushReconstruction(v Variable, lits []Literal) {
	group := append([]Literal(nil), lits...)
	for i, l := range group {
		if l.VarID() == v {
			group[i], group[len(group)-1] = group[len(group)-1], group[i]
			break
		}
	}
	sp.s.reconstruction = append(sp.s.reconstruction, group)
}

// extendModel walks the reconstruction stack in reverse. For each record,
// if every literal but the last is false under the current model, the
// clause is not yet satisfied and the last literal's variable must be set
// to make it true. Otherwise the clause is already satisfied by another
// literal and the record imposes no constraint, so the variable (which may
// have an arbitrary value from an ordinary decision, or a value already
// fixed by another record for the same variable) is left untouched.
//
// At most one record per eliminated variable can ever demand a value: if a
// clause from the positive side and one from the negative side both needed
// their literal set, their resolvent (added to the formula when the
// variable was eliminated) would be false under this model, contradicting
// that the model satisfies the simplified formula.
func (s *Solver) extendModel(model []bool) {
	for i := len(s.reconstruction) - 1; i >= 0; i-- {
		group := s.reconstruction[i]
		last := group[len(group)-1]

		satisfiedElsewhere := false
		for _, l := range group[:len(group)-1] {
			if litTrue(model, l) {
				satisfiedElsewhere = true
				break
			}
		}

		if !satisfiedElsewhere {
			model[last.VarID()] = last.IsPositive()
		}
	}
}

func litTrue(model []bool, l Literal) bool {
	return model[l.VarID()] == l.IsPositive()
}
