package sat

import "sort"

// clauseDB owns the ClauseRef vectors for original and learnt clauses plus
// the clause-activity bumping/decay state. The clause bodies themselves
// live in the Solver's Arena; clauseDB only ever holds references.
type clauseDB struct {
	constraints []ClauseRef
	learnts     []ClauseRef

	clauseInc   float64
	clauseDecay float64
}

func newClauseDB(decay float64) *clauseDB {
	return &clauseDB{
		clauseInc:   1,
		clauseDecay: decay,
	}
}

func (db *clauseDB) numConstraints() int { return len(db.constraints) }
func (db *clauseDB) numLearnts() int     { return len(db.learnts) }

// addClause adds an original (non-learnt) clause. Returns false if the
// clause made the formula immediately unsatisfiable.
func (s *Solver) addClause(lits []Literal) bool {
	if s.trail.decisionLevel() != 0 {
		panic("AddClause called above decision level 0")
	}
	ref, ok := s.newClause(lits, false)
	if ref != NoClauseRef {
		s.db.constraints = append(s.db.constraints, ref)
		s.stats.ClausesLiterals += int64(len(s.arena.Clause(ref).literals))
	}
	if !ok {
		s.unsat = true
	}
	return ok
}

// learnClause installs a freshly derived learnt clause and immediately
// enqueues its asserting literal (position 0) with the clause (or
// NoClauseRef, if the clause collapsed to a unit fact) as antecedent.
func (s *Solver) learnClause(lits []Literal) {
	ref, _ := s.newClause(lits, true)
	s.enqueue(lits[0], ref)
	if ref != NoClauseRef {
		s.db.learnts = append(s.db.learnts, ref)
		s.bumpClauseActivity(ref)
		s.stats.LearntsLiterals += int64(len(s.arena.Clause(ref).literals))
	}
}

func (s *Solver) bumpClauseActivity(ref ClauseRef) {
	db := s.db
	c := s.arena.Clause(ref)
	c.activity += db.clauseInc
	if c.activity > 1e20 {
		db.clauseInc *= 1e-20
		for _, r := range db.learnts {
			s.arena.Clause(r).activity *= 1e-20
		}
	}
}

func (s *Solver) decayClauseActivity() {
	s.db.clauseInc /= s.db.clauseDecay
}

// reduceLearnts halves the learnt-clause set, keeping every binary clause,
// every locked clause (it is some variable's antecedent) and, among the
// non-exempt upper half by activity, any clause whose activity has not
// fallen below the dynamic threshold clauseInc/len(learnts).
func (s *Solver) reduceLearnts() {
	db := s.db
	learnts := db.learnts

	sort.Slice(learnts, func(i, j int) bool {
		a, b := s.arena.Clause(learnts[i]), s.arena.Clause(learnts[j])
		if (len(a.literals) == 2) != (len(b.literals) == 2) {
			return len(b.literals) == 2
		}
		return a.activity < b.activity
	})

	lim := db.clauseInc / float64(len(learnts))
	half := len(learnts) / 2

	k := 0
	for i, ref := range learnts {
		c := s.arena.Clause(ref)
		exempt := len(c.literals) <= 2 || s.clauseLocked(ref)
		if exempt || (i >= half && c.activity >= lim) {
			learnts[k] = ref
			k++
			continue
		}
		s.stats.LearntsLiterals -= int64(len(c.literals))
		s.deleteClause(ref)
	}
	db.learnts = learnts[:k]
}

// removeSatisfied drops clauses with any literal true at level 0 from refs,
// and strips level-0-false literals from position 2 onward (positions 0/1
// stay put: in a clause that is not satisfied, the two-watched-literal
// invariant guarantees they are Undef after level-0 propagation).
func removeSatisfied(s *Solver, refs []ClauseRef, literalTotal *int64) []ClauseRef {
	k := 0
	for _, ref := range refs {
		c := s.arena.Clause(ref)
		satisfied := false
		for _, l := range c.literals {
			if s.trail.value(l) == True {
				satisfied = true
				break
			}
		}
		if satisfied {
			*literalTotal -= int64(len(c.literals))
			s.deleteClause(ref)
			continue
		}
		before := len(c.literals)
		j := 2
		for i := 2; i < len(c.literals); i++ {
			if s.trail.value(c.literals[i]) == False {
				continue
			}
			c.literals[j] = c.literals[i]
			j++
		}
		c.literals = c.literals[:j]
		*literalTotal -= int64(before - j)

		refs[k] = ref
		k++
	}
	return refs[:k]
}

// simplifyLevel0 runs at decision level 0 between search runs: it drops
// clauses satisfied by the level-0 assignment, always for learnts and,
// when RemoveSatisfied is set, for originals too (mirroring the original
// Rust port's clause_db.rs, which scopes the setting to originals only).
func (s *Solver) simplifyLevel0() {
	s.db.learnts = removeSatisfied(s, s.db.learnts, &s.stats.LearntsLiterals)
	if s.opts.RemoveSatisfied {
		s.db.constraints = removeSatisfied(s, s.db.constraints, &s.stats.ClausesLiterals)
	}
}
