package sat

import "time"

// CCMinMode selects how aggressively learnt clauses are minimized during
// conflict analysis.
type CCMinMode int8

const (
	CCMinNone CCMinMode = iota
	CCMinLocal
	CCMinDeep
)

// PhaseSavingMode selects how aggressively the solver remembers a
// variable's last assigned value for its next decision.
type PhaseSavingMode int8

const (
	PhaseSavingNone PhaseSavingMode = iota
	PhaseSavingLimited
	PhaseSavingFull
)

// Options configures a Solver. See DefaultOptions for the values MiniSat-
// lineage solvers ship with.
type Options struct {
	// Variable heuristic.
	VarDecay        float64
	RandomVarFreq   float64
	RandomSeed      int64
	DefaultPolarity bool
	PhaseSaving     PhaseSavingMode

	// Clause heuristic.
	ClauseDecay     float64
	RemoveSatisfied bool

	CCMinMode CCMinMode

	// Restart.
	Luby         bool
	RestartFirst float64
	RestartInc   float64

	// Learnt-clause reduction schedule.
	LearntSizeFactor           float64
	LearntSizeInc              float64
	LearntSizeAdjustStartConfl int64
	LearntSizeAdjustInc        float64

	// Clause arena.
	GCFrac float64

	// Simplifier.
	UseAsymm       bool
	UseRCheck      bool
	UseElim        bool
	Grow           int
	ClauseLim      int
	SubsumptionLim int

	// Budget (negative means unlimited).
	MaxConflicts    int64
	MaxPropagations int64
	Timeout         time.Duration
}

var DefaultOptions = Options{
	VarDecay:        0.95,
	RandomVarFreq:   0,
	RandomSeed:      91648253,
	DefaultPolarity: false,
	PhaseSaving:     PhaseSavingFull,

	ClauseDecay:     0.999,
	RemoveSatisfied: true,

	CCMinMode: CCMinDeep,

	Luby:         true,
	RestartFirst: 100,
	RestartInc:   2,

	LearntSizeFactor:           1.0 / 3.0,
	LearntSizeInc:              1.1,
	LearntSizeAdjustStartConfl: 100,
	LearntSizeAdjustInc:        1.5,

	GCFrac: 0.20,

	UseAsymm:       false,
	UseRCheck:      false,
	UseElim:        true,
	Grow:           0,
	ClauseLim:      20,
	SubsumptionLim: 1000,

	MaxConflicts:    -1,
	MaxPropagations: -1,
	Timeout:         -1,
}
