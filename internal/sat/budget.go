package sat

import "time"

// Budget bounds a single Solve/SolveLimited call. Negative fields mean
// unlimited. Budgets are checked between CDCL loop iterations; a solver
// whose budget is exceeded cancels to level 0 and returns Unknown,
// remaining fully usable for a subsequent call.
type Budget struct {
	MaxConflicts    int64
	MaxPropagations int64
	Timeout         time.Duration

	startTime time.Time
}

func (b *Budget) start() {
	b.startTime = time.Now()
}

func (b *Budget) exceeded(stats Stats) bool {
	if b.MaxConflicts >= 0 && stats.Conflicts >= b.MaxConflicts {
		return true
	}
	if b.MaxPropagations >= 0 && stats.Propagations >= b.MaxPropagations {
		return true
	}
	if b.Timeout >= 0 && time.Since(b.startTime) >= b.Timeout {
		return true
	}
	return false
}
