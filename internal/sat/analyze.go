package sat

// analyze performs first-UIP conflict analysis starting from the given
// conflicting clause. It returns the learnt clause (literal 0 is the
// asserting literal, to be watched at position 0 by newClause) and the
// level to backjump to.
func (s *Solver) analyze(confl ClauseRef) ([]Literal, int) {
	// pathC counts literals at the current decision level that have not yet
	// been resolved away. Reaching 0 means the single remaining seen
	// literal at that level is the first UIP.
	pathC := 0

	s.tmpLearnts = s.tmpLearnts[:0]
	s.tmpLearnts = append(s.tmpLearnts, -1) // reserved for the UIP

	nextIdx := len(s.trail.lits) - 1
	l := Literal(-1) // -1 marks "explain the conflict itself"
	s.seenVar.Clear()
	backtrackLevel := 0

	for {
		var reason []Literal
		if l == -1 {
			reason = explainConflict(s.arena.Clause(confl), s.tmpReason)
		} else {
			reason = explainAssign(s.arena.Clause(confl), s.tmpReason)
		}
		s.tmpReason = reason

		for _, q := range reason {
			v := q.VarID()
			if s.seenVar.Contains(int(v)) {
				continue
			}
			s.seenVar.Add(int(v))

			if lvl := s.trail.level[v]; lvl > 0 {
				s.order.bumpScore(v)
			}

			if s.trail.level[v] == s.trail.decisionLevel() {
				pathC++
				continue
			}

			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if lvl := s.trail.level[v]; lvl > backtrackLevel {
				backtrackLevel = lvl
			}
		}

		// Select the next seen literal on the trail, walking backwards
		// without undoing any assignment.
		for {
			l = s.trail.lits[nextIdx]
			nextIdx--
			v := l.VarID()
			confl = s.trail.reason[v]
			if s.seenVar.Contains(int(v)) {
				break
			}
		}

		pathC--
		if pathC <= 0 {
			break
		}
	}

	s.tmpLearnts[0] = l.Opposite()
	return s.minimize(s.tmpLearnts), backtrackLevel
}

// minimize strips literals from a freshly derived learnt clause (literal 0
// untouched) that are redundant: implied by other literals already in (or
// resolved into) the clause. Mode None skips minimization entirely.
func (s *Solver) minimize(learnt []Literal) []Literal {
	before := len(learnt)

	if s.opts.CCMinMode != CCMinNone {
		out := learnt[:1]
		for _, lit := range learnt[1:] {
			var redundant bool
			if s.opts.CCMinMode == CCMinDeep {
				redundant = s.litRedundantDeep(lit)
			} else {
				redundant = s.litRedundantLocal(lit)
			}
			if !redundant {
				out = append(out, lit)
			}
		}
		learnt = out
	}

	s.stats.TotLiterals += int64(before)
	s.stats.DelLiterals += int64(before - len(learnt))
	return learnt
}

// litRedundantLocal reports whether l's antecedent clause consists entirely
// of literals already seen during analysis (or true at level 0), without
// recursing into those antecedents' own antecedents.
func (s *Solver) litRedundantLocal(l Literal) bool {
	reason := s.trail.reason[l.VarID()]
	if reason == NoClauseRef {
		return false // decision literal: never redundant
	}
	for _, lit := range explainAssign(s.arena.Clause(reason), s.tmpReason) {
		v := lit.VarID()
		if s.trail.level[v] == 0 {
			continue
		}
		if !s.seenVar.Contains(int(v)) {
			return false
		}
	}
	return true
}

// litRedundantDeep recursively walks l's antecedent chain, the same check
// as litRedundantLocal applied transitively. Variables marked seen while
// pursuing a chain that ultimately fails (hits a decision literal) are
// unmarked again, since a tentative mark must not make an unrelated literal
// look redundant later in this same minimization pass.
func (s *Solver) litRedundantDeep(l Literal) bool {
	mark := len(s.tmpAnalyzeToClear)
	s.tmpAnalyzeStack = append(s.tmpAnalyzeStack[:0], l)

	for len(s.tmpAnalyzeStack) > 0 {
		cur := s.tmpAnalyzeStack[len(s.tmpAnalyzeStack)-1]
		s.tmpAnalyzeStack = s.tmpAnalyzeStack[:len(s.tmpAnalyzeStack)-1]

		reason := s.trail.reason[cur.VarID()]
		if reason == NoClauseRef {
			s.unmarkSince(mark)
			return false
		}

		for _, lit := range explainAssign(s.arena.Clause(reason), s.tmpReason) {
			v := lit.VarID()
			if s.trail.level[v] == 0 || s.seenVar.Contains(int(v)) {
				continue
			}
			if s.trail.reason[v] == NoClauseRef {
				s.unmarkSince(mark)
				return false
			}
			s.seenVar.Add(int(v))
			s.tmpAnalyzeToClear = append(s.tmpAnalyzeToClear, v)
			s.tmpAnalyzeStack = append(s.tmpAnalyzeStack, lit)
		}
	}
	return true
}

// unmarkSince reverts seenVar marks added (and recorded into
// tmpAnalyzeToClear) since the given mark.
func (s *Solver) unmarkSince(mark int) {
	for _, v := range s.tmpAnalyzeToClear[mark:] {
		s.seenVar.addedAt[v] = 0
	}
	s.tmpAnalyzeToClear = s.tmpAnalyzeToClear[:mark]
}
