package sat

import "strings"

// newClause prepares a clause for insertion into the solver. For original
// (non-learnt) clauses it also performs tautology/duplicate-literal removal
// and root-level simplification against the current assignment. It returns
// the allocated ClauseRef (NoClauseRef if the clause collapsed to a unit
// fact or a trivially-true clause) and false only if adding the clause
// makes the formula immediately unsatisfiable.
func (s *Solver) newClause(tmpLiterals []Literal, learnt bool) (ClauseRef, bool) {
	size := len(tmpLiterals)

	if !learnt {
		seen := map[Literal]struct{}{}
		for i := size - 1; i >= 0; i-- {
			if _, ok := seen[tmpLiterals[i].Opposite()]; ok {
				return NoClauseRef, true // tautology
			}
			if _, ok := seen[tmpLiterals[i]]; ok {
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
				continue
			}
			seen[tmpLiterals[i]] = struct{}{}

			switch s.trail.value(tmpLiterals[i]) {
			case True:
				return NoClauseRef, true
			case False:
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
			}
		}
		tmpLiterals = tmpLiterals[:size]
	}

	switch size {
	case 0:
		return NoClauseRef, false
	case 1:
		return NoClauseRef, s.enqueue(tmpLiterals[0], NoClauseRef)
	default:
		ref := s.arena.Alloc(tmpLiterals, learnt)
		c := s.arena.Clause(ref)

		if learnt {
			// Watch the literal assigned at the highest decision level
			// besides the asserting literal at position 0, so that
			// backjumping doesn't immediately re-trigger propagation on it.
			maxLevel, wl := -1, 1
			for i := 1; i < len(c.literals); i++ {
				if lvl := s.trail.level[c.literals[i].VarID()]; lvl > maxLevel {
					maxLevel, wl = lvl, i
				}
			}
			c.literals[wl], c.literals[1] = c.literals[1], c.literals[wl]
		}

		s.watchClause(ref, c)
		return ref, true
	}
}

func (s *Solver) watchClause(ref ClauseRef, c *clauseBody) {
	s.watch(c.literals[0].Opposite(), ref, c.literals[1])
	s.watch(c.literals[1].Opposite(), ref, c.literals[0])
}

// clauseLocked reports whether ref is the antecedent of its own first
// literal's assignment, i.e. removing it would invalidate the trail.
func (s *Solver) clauseLocked(ref ClauseRef) bool {
	c := s.arena.Clause(ref)
	return s.trail.reason[c.literals[0].VarID()] == ref
}

// deleteClause unwatches and frees ref. Callers are responsible for
// removing ref from whatever ClauseRef vector (constraints/learnts/
// occurrence lists) referenced it.
func (s *Solver) deleteClause(ref ClauseRef) {
	c := s.arena.Clause(ref)
	if len(c.literals) >= 2 {
		s.unwatch(c.literals[0].Opposite(), ref)
		s.unwatch(c.literals[1].Opposite(), ref)
	}
	s.arena.Free(ref)
}

// simplifyClause strips literals assigned False at level 0 and reports
// true if the clause is already satisfied at level 0 (in which case the
// caller should delete it instead of keeping the stripped form).
func simplifyClause(s *Solver, c *clauseBody) bool {
	k := 0
	for _, lit := range c.literals {
		switch s.trail.value(lit) {
		case True:
			return true
		case False:
			// drop
		default:
			c.literals[k] = lit
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// propagateClause is invoked when literal l has just become true, making
// the clause's watched literal l.Opposite() false. It restores the
// two-watched-literal invariant, or enqueues/conflicts if the clause has
// become unit/false. Returns false only when a conflict was found and the
// caller must stop the propagation loop; it returns true both when the
// clause is satisfied or unit and when a new watch was installed
// elsewhere.
func propagateClause(s *Solver, ref ClauseRef, l Literal) bool {
	c := s.arena.Clause(ref)

	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if s.trail.value(c.literals[0]) == True {
		s.watch(l, ref, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if s.trail.value(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], opp
			s.watch(c.literals[1].Opposite(), ref, c.literals[0])
			return true
		}
	}
	for i := 2; i < c.prevPos; i++ {
		if s.trail.value(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], opp
			s.watch(c.literals[1].Opposite(), ref, c.literals[0])
			return true
		}
	}

	// All of literals[1:] are False: literals[0] must become true, or the
	// clause is conflicting.
	s.watch(l, ref, c.literals[0])
	return s.enqueue(c.literals[0], ref)
}

// explainConflict appends the negation of every literal of ref (the
// conflicting clause) to out and returns the extended slice.
func explainConflict(c *clauseBody, out []Literal) []Literal {
	out = out[:0]
	for _, l := range c.literals {
		out = append(out, l.Opposite())
	}
	return out
}

// explainAssign appends the negation of every literal but the first
// (ref's asserted literal) to out and returns the extended slice.
func explainAssign(c *clauseBody, out []Literal) []Literal {
	out = out[:0]
	for _, l := range c.literals[1:] {
		out = append(out, l.Opposite())
	}
	return out
}

func clauseString(c *clauseBody) string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
