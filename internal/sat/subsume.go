package sat

// subsumeCheck compares two clauses (pre-screened by their abstraction
// signatures) and reports which of three outcomes applies:
//   - subsumes: every literal of a appears in b, so b is redundant.
//   - strengthens: a subsumes b except for exactly one literal that
//     appears negated in b (self-subsuming resolution); removing that
//     literal from b is sound.
//   - neither: a and b are unrelated for this purpose.
func subsumeCheck(a []Literal, sigA uint32, b []Literal, sigB uint32) (subsumes bool, strengthenLit Literal, strengthens bool) {
	if sigA&^sigB != 0 || len(a) > len(b) {
		return false, 0, false
	}

	flipped := false
	var flip Literal
	for _, la := range a {
		found := false
		for _, lb := range b {
			if la == lb {
				found = true
				break
			}
			if la == lb.Opposite() {
				if flipped {
					return false, 0, false
				}
				flipped, flip, found = true, lb, true
				break
			}
		}
		if !found {
			return false, 0, false
		}
	}
	if !flipped {
		return true, 0, false
	}
	return false, flip, true
}

// backwardSubsume tests ref against every other clause sharing its
// least-occurring variable, removing subsumed clauses and strengthening
// self-subsuming ones (which are re-queued for another round, since
// strengthening can expose further subsumptions).
func (sp *Simplifier) backwardSubsume(ref ClauseRef) {
	s := sp.s
	c := s.arena.Clause(ref)
	if len(c.literals) == 0 {
		return
	}

	best := c.literals[0].VarID()
	bestCount := sp.occ.nOcc[PositiveLiteral(best)] + sp.occ.nOcc[NegativeLiteral(best)]
	for _, l := range c.literals[1:] {
		v := l.VarID()
		if cnt := sp.occ.nOcc[PositiveLiteral(v)] + sp.occ.nOcc[NegativeLiteral(v)]; cnt < bestCount {
			best, bestCount = v, cnt
		}
	}

	candidates := append([]ClauseRef(nil), sp.occ.occurrencesOf(s.arena, best)...)
	for _, other := range candidates {
		if other == ref || s.arena.IsDeleted(other) || s.arena.IsDeleted(ref) {
			continue
		}
		oc := s.arena.Clause(other)
		subsumes, flip, strengthens := subsumeCheck(c.literals, c.abstraction, oc.literals, oc.abstraction)
		switch {
		case subsumes:
			sp.removeClause(other)
		case strengthens:
			sp.strengthen(other, flip)
		}
	}
}

// removeClause deletes ref entirely: it was found subsumed by another
// clause and so contributes nothing the subsuming clause doesn't already
// enforce.
func (sp *Simplifier) removeClause(ref ClauseRef) {
	s := sp.s
	c := s.arena.Clause(ref)
	sp.occ.removeClause(c.literals)
	s.stats.ClausesLiterals -= int64(len(c.literals))
	sp.removeFromConstraints(ref)
	s.deleteClause(ref)
}

// strengthen removes lit from ref's literal list (self-subsuming
// resolution). A clause reduced to a single literal becomes a unit fact
// instead of staying in the database; one reduced to empty means the
// formula is unsatisfiable.
func (sp *Simplifier) strengthen(ref ClauseRef, lit Literal) {
	s := sp.s
	c := s.arena.Clause(ref)

	if len(c.literals) >= 2 {
		s.unwatch(c.literals[0].Opposite(), ref)
		s.unwatch(c.literals[1].Opposite(), ref)
	}

	k := 0
	for _, l := range c.literals {
		if l == lit {
			continue
		}
		c.literals[k] = l
		k++
	}
	c.literals = c.literals[:k]
	sp.occ.removeLit(lit)
	s.stats.ClausesLiterals--

	switch len(c.literals) {
	case 0:
		s.unsat = true
	case 1:
		unit := c.literals[0]
		sp.removeFromConstraints(ref)
		s.arena.Free(ref)
		if !s.enqueue(unit, NoClauseRef) {
			s.unsat = true
		}
	default:
		c.prevPos = 2
		s.watchClause(ref, c)
		sp.pushSub(ref)
	}
}

func (sp *Simplifier) removeFromConstraints(ref ClauseRef) {
	cs := sp.s.db.constraints
	for i, r := range cs {
		if r == ref {
			cs[i] = cs[len(cs)-1]
			sp.s.db.constraints = cs[:len(cs)-1]
			return
		}
	}
}
