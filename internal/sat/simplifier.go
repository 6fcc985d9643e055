package sat

import "github.com/rhartert/yagh"

// Simplifier performs bounded variable elimination, subsumption, and
// self-subsuming resolution over a solver's original clauses. It exists
// only for the duration of one Preprocess call — a composed-in component
// rather than a distinct solver variant, per the "shared engine plus
// optional component" design — but its effects (deleted, strengthened, and
// added clauses, plus the reconstruction stack) persist on the Solver
// after it's discarded.
type Simplifier struct {
	s *Solver

	occ      *occLists
	elimHeap *yagh.IntMap[int] // keyed by Variable, priority = posOcc*negOcc

	subQueue *Queue[ClauseRef]
	inQueue  []bool // indexed by ClauseRef, avoids duplicate subQueue entries
}

func newSimplifier(s *Solver) *Simplifier {
	sp := &Simplifier{
		s:        s,
		occ:      newOccLists(),
		elimHeap: yagh.New[int](0),
		subQueue: NewQueue[ClauseRef](128),
	}

	n := s.trail.numVars()
	for v := 0; v < n; v++ {
		sp.occ.newVar()
		sp.elimHeap.GrowBy(1)
	}

	for _, ref := range s.db.constraints {
		c := s.arena.Clause(ref)
		sp.occ.addClause(ref, c.literals)
		sp.pushSub(ref)
	}

	for v := Variable(0); int(v) < n; v++ {
		if !s.frozen[v] && !s.eliminated[v] {
			sp.elimHeap.Put(int(v), sp.occ.cost(v))
		}
	}

	return sp
}

func (sp *Simplifier) pushSub(ref ClauseRef) {
	for int(ref) >= len(sp.inQueue) {
		sp.inQueue = append(sp.inQueue, false)
	}
	if sp.inQueue[ref] {
		return
	}
	sp.inQueue[ref] = true
	sp.subQueue.Push(ref)
}

// run drains the subsumption queue, eliminates one variable, and repeats:
// each elimination's resolvents re-enter the subsumption queue, and
// strengthening during subsumption can lower a variable's elimination
// cost, so the two phases keep feeding each other until both are dry.
func (sp *Simplifier) run(opts Options) {
	if !opts.UseElim {
		sp.subsumeAll()
		return
	}
	for {
		sp.subsumeAll()
		if sp.s.unsat {
			return
		}
		if !sp.eliminateOne(opts) {
			return
		}
	}
}

func (sp *Simplifier) subsumeAll() {
	for sp.subQueue.Size() > 0 {
		ref := sp.subQueue.Pop()
		sp.inQueue[ref] = false
		if sp.s.arena.IsDeleted(ref) {
			continue
		}
		sp.backwardSubsume(ref)
		if sp.s.unsat {
			return
		}
	}
}
