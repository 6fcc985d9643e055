package sat

// occLists holds, per variable, the ClauseRef of every original clause
// containing that variable (either polarity), with a dirty flag enabling
// lazy removal of deleted clauses — mirrors the watch lists' compaction
// scheme but keyed by Variable instead of Literal.
type occLists struct {
	lists []([]ClauseRef) // indexed by Variable
	dirty []bool

	// nOcc is the live occurrence count per literal, used both to compute
	// elimination cost (posOcc*negOcc) and to pick the cheaper polarity to
	// resolve on during backward subsumption.
	nOcc []int // indexed by Literal
}

func newOccLists() *occLists {
	return &occLists{}
}

func (o *occLists) newVar() {
	o.lists = append(o.lists, nil)
	o.dirty = append(o.dirty, false)
	o.nOcc = append(o.nOcc, 0, 0)
}

func (o *occLists) addClause(ref ClauseRef, lits []Literal) {
	for _, l := range lits {
		v := l.VarID()
		o.lists[v] = append(o.lists[v], ref)
		o.nOcc[l]++
	}
}

// removeClause records that ref no longer contains the given literals
// (smudging their variables' occurrence lists and decrementing counts, but
// not compacting eagerly).
func (o *occLists) removeClause(lits []Literal) {
	for _, l := range lits {
		o.dirty[l.VarID()] = true
		o.nOcc[l]--
	}
}

// removeLit records that a single literal was struck from a clause during
// self-subsuming resolution, without the clause itself being deleted.
func (o *occLists) removeLit(l Literal) {
	o.dirty[l.VarID()] = true
	o.nOcc[l]--
}

// occurrencesOf returns the (compacted) list of clauses still containing v.
func (o *occLists) occurrencesOf(arena *Arena, v Variable) []ClauseRef {
	if o.dirty[v] {
		list := o.lists[v]
		k := 0
		for _, ref := range list {
			if !arena.IsDeleted(ref) {
				list[k] = ref
				k++
			}
		}
		o.lists[v] = list[:k]
		o.dirty[v] = false
	}
	return o.lists[v]
}

func (o *occLists) cost(v Variable) int {
	return o.nOcc[PositiveLiteral(v)] * o.nOcc[NegativeLiteral(v)]
}
