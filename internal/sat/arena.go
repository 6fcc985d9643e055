package sat

// ClauseRef is a stable index into a clause Arena. It remains valid for the
// lifetime of the arena generation that produced it; a garbage collection
// pass replaces the arena and every ClauseRef must be translated through
// Arena.RelocTo before use in the new generation.
type ClauseRef int32

// NoClauseRef is the sentinel ClauseRef used for "no antecedent" / "no
// resolving clause" / "not yet relocated".
const NoClauseRef ClauseRef = -1

// clauseOverhead approximates the fixed per-clause bookkeeping cost (in
// "literal units") counted towards Arena.size/wasted so that clauses with
// few literals still contribute meaningfully to the GC trigger.
const clauseOverhead = 3

// clauseBody is the literal content and metadata owned by the Arena.
// Exactly one clauseBody backs each ClauseRef for the life of an arena
// generation.
type clauseBody struct {
	literals []Literal

	learnt      bool
	deleted     bool
	protected   bool
	activity    float64
	abstraction uint32 // signature over var-index mod 32, originals only
	lbd         uint32

	// prevPos remembers where the last watch-swap search for clause
	// propagation left off, to avoid re-scanning from position 2 every time.
	prevPos int

	// relocTo is set once during a GC pass the first time this clause is
	// copied into the destination arena; it makes RelocTo idempotent.
	relocTo ClauseRef
}

func footprint(nLits int) int {
	return nLits + clauseOverhead
}

// Arena owns clause bodies and hands out stable ClauseRef indices.
type Arena struct {
	clauses []*clauseBody
	size    int // total live+wasted footprint
	wasted  int // footprint of freed-but-not-collected clauses
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc copies lits into a new clause body and returns its ClauseRef.
// Original (non-learnt) clauses get a 32-bit abstraction signature used to
// screen subsumption candidates; learnt clauses start with zero activity.
func (a *Arena) Alloc(lits []Literal, learnt bool) ClauseRef {
	body := &clauseBody{
		literals: append([]Literal(nil), lits...),
		learnt:   learnt,
		prevPos:  2,
		relocTo:  NoClauseRef,
	}
	if !learnt {
		body.abstraction = signatureOf(lits)
	}
	ref := ClauseRef(len(a.clauses))
	a.clauses = append(a.clauses, body)
	a.size += footprint(len(lits))
	return ref
}

func signatureOf(lits []Literal) uint32 {
	var sig uint32
	for _, l := range lits {
		sig |= 1 << (uint32(l.VarID()) % 32)
	}
	return sig
}

// Clause returns the clause body backing ref. The returned pointer is only
// valid until the next garbage collection (Solver.collectGarbage).
func (a *Arena) Clause(ref ClauseRef) *clauseBody {
	return a.clauses[ref]
}

// Free marks ref deleted and adds its footprint to the wasted counter. The
// clause slot stays addressable (IsDeleted probes it) until the next GC.
func (a *Arena) Free(ref ClauseRef) {
	c := a.clauses[ref]
	if c.deleted {
		return
	}
	c.deleted = true
	a.wasted += footprint(len(c.literals))
	c.literals = nil
}

// IsDeleted reports whether ref has been freed.
func (a *Arena) IsDeleted(ref ClauseRef) bool {
	return a.clauses[ref].deleted
}

// NeedsGC reports whether the wasted/size ratio has crossed gcFrac.
func (a *Arena) NeedsGC(gcFrac float64) bool {
	return a.size > 0 && float64(a.wasted) > gcFrac*float64(a.size)
}

// RelocTo copies the live clause at ref into dst, returning its new
// ClauseRef. If ref was already relocated during this GC pass (by an
// earlier caller holding the same ref from a different owning structure),
// the previously assigned ClauseRef is returned instead: relocation is
// idempotent within one GC pass.
func (a *Arena) RelocTo(dst *Arena, ref ClauseRef) ClauseRef {
	c := a.clauses[ref]
	if c.relocTo != NoClauseRef {
		return c.relocTo
	}
	newRef := dst.Alloc(c.literals, c.learnt)
	nc := dst.Clause(newRef)
	nc.activity = c.activity
	nc.abstraction = c.abstraction
	nc.lbd = c.lbd
	nc.protected = c.protected
	c.relocTo = newRef
	return newRef
}
