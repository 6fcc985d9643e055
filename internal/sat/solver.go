package sat

import "math/rand"

// Solver holds every piece of mutable state for one CDCL search: the
// clause arena, the assignment trail, the watch lists, the clause
// database, the variable-order heap, and the scratch buffers reused across
// hot-loop calls to avoid per-call allocation.
type Solver struct {
	arena   *Arena
	trail   *trail
	watches *watchLists
	db      *clauseDB
	order   *varOrder
	seenVar *ResetSet

	// Per-variable state outliving any one Preprocess call: frozen
	// variables are never eliminated, eliminated variables have had all
	// their clauses replaced by resolvents, and reconstruction records how
	// to recover their value once a model over the surviving variables is
	// found.
	frozen         []bool
	eliminated     []bool
	reconstruction [][]Literal

	opts   Options
	stats  Stats
	budget Budget
	rng    *rand.Rand

	unsat bool

	Models [][]bool

	// Scratch buffers reused across calls; see the field comments in the
	// reference implementation this is adapted from for why: resizing a
	// slice is cheaper than allocating a fresh one on every conflict.
	tmpLearnts        []Literal
	tmpReason         []Literal
	tmpAnalyzeStack   []Literal
	tmpAnalyzeToClear []Variable
}

// NewSolver returns a solver configured with the given options.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		arena:   NewArena(),
		trail:   newTrail(),
		watches: newWatchLists(),
		db:      newClauseDB(opts.ClauseDecay),
		seenVar: &ResetSet{},
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.RandomSeed)),
	}
	s.order = newVarOrder(opts, s.rng)
	return s
}

// NewDefaultSolver returns a solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// Clauses returns a copy of every original clause currently in the
// database. After a Preprocess call this reflects the simplified set
// (subsumed clauses gone, strengthened clauses shortened, eliminated
// variables' clauses replaced by resolvents).
func (s *Solver) Clauses() [][]Literal {
	out := make([][]Literal, len(s.db.constraints))
	for i, ref := range s.db.constraints {
		out[i] = append([]Literal(nil), s.arena.Clause(ref).literals...)
	}
	return out
}

func (s *Solver) NumVariables() int    { return s.trail.numVars() }
func (s *Solver) NumAssigns() int      { return s.trail.numAssigned() }
func (s *Solver) NumConstraints() int  { return s.db.numConstraints() }
func (s *Solver) NumLearnts() int      { return s.db.numLearnts() }
func (s *Solver) Stats() Stats         { return s.stats }
func (s *Solver) VarValue(v Variable) LBool { return s.trail.varValue(v) }
func (s *Solver) LitValue(l Literal) LBool  { return s.trail.value(l) }

// AddVariable registers a new variable and returns its identifier.
func (s *Solver) AddVariable() Variable {
	v := s.trail.newVar(s.opts.DefaultPolarity)
	s.watches.newVar()
	s.order.addVar()
	s.seenVar.Expand()
	s.frozen = append(s.frozen, false)
	s.eliminated = append(s.eliminated, false)
	return v
}

// Freeze marks v as ineligible for elimination: the simplifier will never
// resolve it away, so its value in any returned model is meaningful even
// when the caller has no surrounding clause forcing a particular value.
func (s *Solver) Freeze(v Variable) {
	s.frozen[v] = true
}

// AddClause adds an original clause. It must only be called at decision
// level 0.
func (s *Solver) AddClause(lits []Literal) error {
	if s.trail.decisionLevel() != 0 {
		panic("AddClause called above decision level 0")
	}
	s.addClause(lits)
	return nil
}

func (s *Solver) enqueue(l Literal, antecedent ClauseRef) bool {
	return s.trail.assign(l, antecedent)
}

func (s *Solver) assume(l Literal) bool {
	s.trail.newDecisionLevel()
	return s.enqueue(l, NoClauseRef)
}

// cancelUntil pops the trail back to level, reinserting every unassigned
// variable into the decision heap with its saved phase.
func (s *Solver) cancelUntil(level int) {
	s.trail.cancelUntil(level, func(l Literal) {
		v := l.VarID()
		s.order.reinsert(v, s.trail.polarity[v])
	})
}

// Preprocess runs the simplifier once over the current (root-level) clause
// set: level-0 propagation and clause simplification, then, if enabled,
// subsumption/self-subsumption and bounded variable elimination.
func (s *Solver) Preprocess() bool {
	if s.unsat {
		return false
	}
	if confl := s.propagate(); confl != NoClauseRef {
		s.unsat = true
		return false
	}
	s.simplifyLevel0()
	if s.unsat {
		return false
	}
	if !s.opts.UseElim {
		return true
	}
	sp := newSimplifier(s)
	sp.run(s.opts)
	return !s.unsat
}

// Solve runs to completion with no budget.
func (s *Solver) Solve() LBool {
	return s.SolveLimited(Budget{MaxConflicts: -1, MaxPropagations: -1, Timeout: -1})
}

// SolveLimited runs the CDCL search loop until a verdict is reached or the
// given budget is exceeded, in which case it returns Unknown with the
// solver left in a consistent level-0 state, ready for a later call.
func (s *Solver) SolveLimited(budget Budget) LBool {
	s.budget = budget
	s.budget.start()

	if s.unsat {
		return False
	}

	var restart RestartPolicy
	if s.opts.Luby {
		restart = lubyRestart{base: s.opts.RestartFirst}
	} else {
		restart = geometricRestart{first: s.opts.RestartFirst, inc: s.opts.RestartInc}
	}

	maxLearnts := float64(s.db.numConstraints()) * s.opts.LearntSizeFactor
	if maxLearnts < 1 {
		maxLearnts = 1
	}

	status := Unknown
	for run := int64(0); status == Unknown; run++ {
		status = s.search(restart.conflictBudget(run), int(maxLearnts))
		maxLearnts *= s.opts.LearntSizeInc

		if status == Unknown && s.budget.exceeded(s.stats) {
			break
		}
	}
	return status
}

// search runs one restart's worth of CDCL loop: propagate, learn on
// conflict, otherwise simplify/reduce/decide. It returns True/False on a
// conclusive verdict, or Unknown when the conflict budget for this run (or
// the solver's overall Budget) is exhausted.
func (s *Solver) search(confBudget int64, maxLearnts int) LBool {
	if s.unsat {
		return False
	}
	s.stats.Restarts++
	conflictCount := int64(0)

	for {
		if s.budget.exceeded(s.stats) {
			s.cancelUntil(0)
			return Unknown
		}

		if confl := s.propagate(); confl != NoClauseRef {
			s.stats.Conflicts++
			conflictCount++

			if s.trail.decisionLevel() == 0 {
				s.unsat = true
				return False
			}

			learnt, backtrack := s.analyze(confl)
			s.cancelUntil(backtrack)

			if len(learnt) == 1 {
				s.enqueue(learnt[0], NoClauseRef)
			} else {
				s.learnClause(learnt)
			}

			s.decayClauseActivity()
			s.order.decayScores()
			continue
		}

		// No conflict.
		if s.trail.decisionLevel() == 0 {
			s.simplifyLevel0()
		}

		if s.db.numLearnts()-s.trail.numAssigned() >= maxLearnts {
			s.reduceLearnts()
		}

		if s.arena.NeedsGC(s.opts.GCFrac) {
			s.collectGarbage()
		}

		if conflictCount >= confBudget {
			s.cancelUntil(0)
			return Unknown
		}

		v, ok := s.pickBranchVariable()
		if !ok {
			s.saveModel()
			s.cancelUntil(0)
			return True
		}

		s.stats.Decisions++
		s.assume(s.pickPolarity(v))
	}
}

func (s *Solver) saveModel() {
	model := make([]bool, s.trail.numVars())
	for v := range model {
		lb := s.trail.varValue(Variable(v))
		if lb == Unknown {
			panic("not a model")
		}
		model[v] = lb == True
	}
	// Eliminated variables were left in the decision heap and so hold some
	// arbitrary value at this point (no surviving clause constrains them);
	// extendModel walks the removed clauses in reverse elimination order
	// and sets an eliminated variable only where a removed clause is not
	// already satisfied by its other literals.
	if len(s.reconstruction) > 0 {
		s.extendModel(model)
	}
	s.Models = append(s.Models, model)
}

// collectGarbage compacts the clause arena, relocating every live
// ClauseRef held by the clause database, the trail's antecedents, and the
// watch lists in one pass.
func (s *Solver) collectGarbage() {
	dst := NewArena()
	reloc := func(ref ClauseRef) ClauseRef {
		if ref == NoClauseRef {
			return NoClauseRef
		}
		return s.arena.RelocTo(dst, ref)
	}

	for i, ref := range s.db.constraints {
		s.db.constraints[i] = reloc(ref)
	}
	for i, ref := range s.db.learnts {
		s.db.learnts[i] = reloc(ref)
	}
	for v := range s.trail.reason {
		s.trail.reason[v] = reloc(s.trail.reason[v])
	}
	for lit, list := range s.watches.lists {
		k := 0
		for _, w := range list {
			if s.arena.IsDeleted(w.clause) {
				continue
			}
			w.clause = reloc(w.clause)
			list[k] = w
			k++
		}
		s.watches.lists[lit] = list[:k]
		s.watches.dirty[lit] = false
	}

	s.arena = dst
}
