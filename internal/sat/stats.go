package sat

// Stats holds the counters the solver exposes to its caller plus a pair of
// internal running totals kept for the clause-edit bookkeeping in
// clausedb.go (debited/credited around any mutation that changes a live
// clause's literal count, so they never need a recomputing pass).
type Stats struct {
	Restarts        int64
	Conflicts       int64
	Decisions       int64
	RandomDecisions int64
	Propagations    int64

	// TotLiterals/DelLiterals track conflict-clause minimization: literals
	// present before minimization, and how many were removed by it.
	TotLiterals int64
	DelLiterals int64

	ClausesLiterals int64
	LearntsLiterals int64
}
