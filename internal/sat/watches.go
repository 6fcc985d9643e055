package sat

// watcher is one entry of a literal's watch list: the clause to revisit
// when the watched literal becomes true, and a "blocker" literal that, if
// already true, lets propagation skip loading the clause entirely.
type watcher struct {
	clause  ClauseRef
	blocker Literal
}

// watchLists holds, per literal, the clauses watching it, plus a dirty
// flag enabling lazy removal of entries for deleted clauses.
type watchLists struct {
	lists []([]watcher) // indexed by Literal
	dirty []bool        // indexed by Literal

	// tmp is a scratch buffer reused across propagate() calls to avoid
	// allocating a new slice on every watched literal.
	tmp []watcher
}

func newWatchLists() *watchLists {
	return &watchLists{}
}

func (w *watchLists) newVar() {
	w.lists = append(w.lists, nil, nil)
	w.dirty = append(w.dirty, false, false)
}

func (s *Solver) watch(watched Literal, ref ClauseRef, blocker Literal) {
	w := s.watches
	w.lists[watched] = append(w.lists[watched], watcher{clause: ref, blocker: blocker})
}

func (s *Solver) unwatch(watched Literal, ref ClauseRef) {
	// Lazy removal: just mark the list dirty. cleanWatchList compacts it
	// the next time the list is iterated by propagation.
	s.watches.dirty[watched] = true
}

// cleanWatchList drops entries referencing deleted clauses from the watch
// list of l, if it was marked dirty.
func (s *Solver) cleanWatchList(l Literal) {
	w := s.watches
	if !w.dirty[l] {
		return
	}
	list := w.lists[l]
	k := 0
	for _, e := range list {
		if !s.arena.IsDeleted(e.clause) {
			list[k] = e
			k++
		}
	}
	w.lists[l] = list[:k]
	w.dirty[l] = false
}

// propagate drains the propagation queue, applying BCP via the
// two-watched-literal scheme. It returns the conflicting ClauseRef, or
// NoClauseRef if the queue emptied without conflict. On conflict the queue
// is flushed so the caller sees an empty queue before deciding on
// backjumping.
//
// w.lists[l] is truncated to length zero before the scan, and every
// watcher that should keep watching l — whether re-appended by this loop
// or by propagateClause calling s.watch(l, ...) on l's behalf — is
// appended through the same w.lists[l] slice. A local copy of that slice
// header would shadow those appends and silently drop watchers; the
// scratch buffer w.tmp, not a second handle on w.lists[l], is what holds
// the pre-scan snapshot.
func (s *Solver) propagate() ClauseRef {
	w := s.watches
	for {
		l, ok := s.trail.dequeue()
		if !ok {
			break
		}
		s.stats.Propagations++

		s.cleanWatchList(l)

		w.tmp = append(w.tmp[:0], w.lists[l]...)
		w.lists[l] = w.lists[l][:0]

		for read := 0; read < len(w.tmp); read++ {
			e := w.tmp[read]

			if s.trail.value(e.blocker) == True {
				w.lists[l] = append(w.lists[l], e)
				continue
			}

			if propagateClause(s, e.clause, l) {
				// propagateClause re-appended this watcher itself (via
				// s.watch) if the clause is still watching l; nothing
				// left to do with this slot.
				continue
			}

			// Conflicting: keep remaining (unprocessed) watchers, flush
			// the queue, and report the clause.
			w.lists[l] = append(w.lists[l], w.tmp[read+1:]...)
			s.trail.flush()
			return e.clause
		}
	}
	return NoClauseRef
}
