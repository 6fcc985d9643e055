package sat

// trail holds the solver's assignment state: a truth value and decision
// level per variable, an antecedent clause per variable, and the
// append-only sequence of assigned literals in the order they were
// assigned. qHead is the index of the next trail literal to propagate; it
// advances monotonically and is only ever reset by cancelUntil, never
// decremented directly.
//
// Invariant: a variable is Unknown iff it does not appear on the trail.
type trail struct {
	assigns []LBool     // indexed by Literal; assigns[l] and assigns[l.Opposite()] are kept consistent
	level   []int       // indexed by Variable; -1 if unassigned
	reason  []ClauseRef // indexed by Variable; NoClauseRef if unassigned or a decision

	lits     []Literal // the trail itself, in assignment order
	trailLim []int     // trail length at the start of each decision level
	qHead    int       // index into lits of the next literal to propagate

	polarity []LBool // last known / preferred polarity per variable, for phase saving
}

func newTrail() *trail {
	return &trail{}
}

func (t *trail) numVars() int {
	return len(t.level)
}

func (t *trail) numAssigned() int {
	return len(t.lits)
}

func (t *trail) decisionLevel() int {
	return len(t.trailLim)
}

// newVar appends an Unknown slot for a fresh variable and returns it.
func (t *trail) newVar(polarityHint bool) Variable {
	v := Variable(t.numVars())
	t.assigns = append(t.assigns, Unknown, Unknown)
	t.level = append(t.level, -1)
	t.reason = append(t.reason, NoClauseRef)
	t.polarity = append(t.polarity, Lift(polarityHint))
	return v
}

func (t *trail) value(l Literal) LBool {
	return t.assigns[l]
}

func (t *trail) varValue(v Variable) LBool {
	return t.assigns[PositiveLiteral(v)]
}

// assign records l as true with the given antecedent (NoClauseRef for a
// decision or a level-0 unit fact). Returns false if the variable was
// already assigned to the opposite value (a conflict at enqueue time).
func (t *trail) assign(l Literal, antecedent ClauseRef) bool {
	switch t.value(l) {
	case False:
		return false
	case True:
		return true
	}
	v := l.VarID()
	t.assigns[l] = True
	t.assigns[l.Opposite()] = False
	t.level[v] = t.decisionLevel()
	t.reason[v] = antecedent
	t.lits = append(t.lits, l)
	return true
}

// newDecisionLevel records the current trail length as the boundary for a
// new decision level.
func (t *trail) newDecisionLevel() {
	t.trailLim = append(t.trailLim, len(t.lits))
}

// dequeue returns the next literal to propagate, advancing qHead, or false
// if the queue is empty (qHead caught up with the trail).
func (t *trail) dequeue() (Literal, bool) {
	if t.qHead >= len(t.lits) {
		return 0, false
	}
	l := t.lits[t.qHead]
	t.qHead++
	return l, true
}

// flush empties the propagation queue without undoing any assignment, used
// when a conflict is found mid-propagation.
func (t *trail) flush() {
	t.qHead = len(t.lits)
}

// undoOne pops the last trail literal, resetting the variable to Unknown
// and saving its polarity for phase saving.
func (t *trail) undoOne() Literal {
	l := t.lits[len(t.lits)-1]
	v := l.VarID()
	t.polarity[v] = t.assigns[l]
	t.assigns[l] = Unknown
	t.assigns[l.Opposite()] = Unknown
	t.reason[v] = NoClauseRef
	t.level[v] = -1
	t.lits = t.lits[:len(t.lits)-1]
	return l
}

// cancelUntil pops the trail back to the boundary of level, calling undo
// for every popped literal.
func (t *trail) cancelUntil(level int, undo func(Literal)) {
	for t.decisionLevel() > level {
		boundary := t.trailLim[len(t.trailLim)-1]
		for len(t.lits) > boundary {
			undo(t.undoOne())
		}
		t.trailLim = t.trailLim[:len(t.trailLim)-1]
	}
	if t.qHead > len(t.lits) {
		t.qHead = len(t.lits)
	}
}
