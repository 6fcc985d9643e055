package sat

// eliminateOne pops variables from the elimination heap, lowest cost
// (posOcc*negOcc) first, until one is actually eliminated or the heap
// empties. Variables that became frozen, already eliminated, or assigned
// since being queued are simply skipped.
func (sp *Simplifier) eliminateOne(opts Options) bool {
	s := sp.s
	for {
		next, ok := sp.elimHeap.Pop()
		if !ok {
			return false
		}
		v := Variable(next.Elem)
		if s.eliminated[v] || s.frozen[v] || s.trail.varValue(v) != Unknown {
			continue
		}
		if sp.tryEliminate(v, opts.Grow, opts.ClauseLim) {
			return true
		}
	}
}

// tryEliminate attempts to resolve v out of the formula entirely: every
// clause containing v is paired with every clause containing ¬v, and the
// pair is replaced by their resolvent (dropped if tautological). The
// attempt is abandoned — leaving v's clauses untouched — if the resolvent
// count or any single resolvent's size would blow up past the configured
// bounds.
func (sp *Simplifier) tryEliminate(v Variable, grow int, clauseLim int) bool {
	s := sp.s
	occs := sp.occ.occurrencesOf(s.arena, v)

	var posRefs, negRefs []ClauseRef
	for _, ref := range occs {
		for _, l := range s.arena.Clause(ref).literals {
			if l.VarID() != v {
				continue
			}
			if l.IsPositive() {
				posRefs = append(posRefs, ref)
			} else {
				negRefs = append(negRefs, ref)
			}
			break
		}
	}

	if len(posRefs) == 0 || len(negRefs) == 0 {
		// Pure literal: no resolvents needed, v's clauses (all of one
		// polarity) are removed and v is left unconstrained during
		// search, then fixed up by the reconstruction stack.
		return sp.eliminatePure(v, posRefs, negRefs)
	}

	if len(posRefs)*len(negRefs) > len(posRefs)+len(negRefs)+grow {
		return false
	}

	resolvents := make([][]Literal, 0, len(posRefs)*len(negRefs))
	for _, cp := range posRefs {
		for _, cn := range negRefs {
			resolvent, tautology := resolve(s.arena.Clause(cp).literals, s.arena.Clause(cn).literals, v)
			if tautology {
				continue
			}
			if clauseLim > 0 && len(resolvent) > clauseLim {
				return false
			}
			resolvents = append(resolvents, resolvent)
		}
	}
	if len(resolvents) > len(posRefs)+len(negRefs)+grow {
		return false
	}

	for _, ref := range posRefs {
		sp.pushReconstruction(v, s.arena.Clause(ref).literals)
	}
	for _, ref := range negRefs {
		sp.pushReconstruction(v, s.arena.Clause(ref).literals)
	}
	for _, ref := range posRefs {
		sp.removeClause(ref)
	}
	for _, ref := range negRefs {
		sp.removeClause(ref)
	}

	for _, lits := range resolvents {
		ref, ok := s.newClause(lits, false)
		if !ok {
			s.unsat = true
			return true
		}
		if ref != NoClauseRef {
			c := s.arena.Clause(ref)
			s.db.constraints = append(s.db.constraints, ref)
			s.stats.ClausesLiterals += int64(len(c.literals))
			sp.occ.addClause(ref, c.literals)
			sp.pushSub(ref)
		}
	}

	s.eliminated[v] = true
	return true
}

// eliminatePure handles a variable occurring in only one polarity: its
// clauses are satisfiable by fixing v, so they are dropped outright (not
// resolved); each of v's reconstruction records sets v to satisfy its
// clause when the clause's other literals are all false in the model.
func (sp *Simplifier) eliminatePure(v Variable, posRefs, negRefs []ClauseRef) bool {
	refs := posRefs
	if len(refs) == 0 {
		refs = negRefs
	}
	if len(refs) == 0 {
		return false // v appears nowhere; nothing to eliminate
	}
	s := sp.s
	for _, ref := range refs {
		sp.pushReconstruction(v, s.arena.Clause(ref).literals)
	}
	for _, ref := range refs {
		sp.removeClause(ref)
	}
	s.eliminated[v] = true
	return true
}

// resolve computes the resolvent of a and b on variable v: the union of
// their literals minus v's, deduplicated. tautology is true if the
// resolvent would contain both a literal and its negation.
func resolve(a, b []Literal, v Variable) ([]Literal, bool) {
	out := make([]Literal, 0, len(a)+len(b)-2)
	seen := map[Literal]bool{}
	for _, l := range a {
		if l.VarID() == v {
			continue
		}
		if seen[l.Opposite()] {
			return nil, true
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, l := range b {
		if l.VarID() == v {
			continue
		}
		if seen[l.Opposite()] {
			return nil, true
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out, false
}
