package sat

import (
	"math/rand"

	"github.com/rhartert/yagh"
)

// varOrder maintains the set of undecided variables ordered by VSIDS
// activity, plus phase-saving state for branching polarity.
type varOrder struct {
	order *yagh.IntMap[float64]

	scores     []float64
	scoreInc   float64
	scoreDecay float64

	phases          []LBool
	phaseSaving     bool
	defaultPolarity LBool

	randomVarFreq float64
	rng           *rand.Rand
}

func newVarOrder(opts Options, rng *rand.Rand) *varOrder {
	return &varOrder{
		order:           yagh.New[float64](0),
		scoreInc:        1,
		scoreDecay:      opts.VarDecay,
		phaseSaving:     opts.PhaseSaving != PhaseSavingNone,
		defaultPolarity: Lift(opts.DefaultPolarity),
		randomVarFreq:   opts.RandomVarFreq,
		rng:             rng,
	}
}

// addVar registers a freshly created variable with zero activity.
func (vo *varOrder) addVar() {
	v := len(vo.phases)
	vo.scores = append(vo.scores, 0)
	vo.phases = append(vo.phases, vo.defaultPolarity)
	vo.order.GrowBy(1)
	vo.order.Put(v, 0)
}

// reinsert puts v back among the candidates for selection, e.g. after
// backtracking unassigns it. val is the value v held before being
// unassigned, saved for phase-saving if enabled.
func (vo *varOrder) reinsert(v Variable, val LBool) {
	if vo.phaseSaving {
		vo.phases[v] = val
	}
	if !vo.order.Contains(int(v)) {
		vo.order.Put(int(v), -vo.scores[v])
	}
}

// bumpScore increases v's activity, rescaling every variable's activity and
// the increment itself if v's activity would otherwise overflow.
func (vo *varOrder) bumpScore(v Variable) {
	newScore := vo.scores[v] + vo.scoreInc
	vo.scores[v] = newScore
	if vo.order.Contains(int(v)) {
		vo.order.Put(int(v), -newScore)
	}
	if newScore > 1e100 {
		vo.rescale()
	}
}

func (vo *varOrder) rescale() {
	vo.scoreInc *= 1e-100
	for v, sc := range vo.scores {
		rescaled := sc * 1e-100
		vo.scores[v] = rescaled
		if vo.order.Contains(v) {
			vo.order.Put(v, -rescaled)
		}
	}
}

func (vo *varOrder) decayScores() {
	vo.scoreInc /= vo.scoreDecay
	if vo.scoreInc > 1e100 {
		vo.rescale()
	}
}

// pickBranchVariable pops the highest-activity still-undecided variable, or
// reports false once every variable is assigned.
func (s *Solver) pickBranchVariable() (Variable, bool) {
	vo := s.order
	for {
		next, ok := vo.order.Pop()
		if !ok {
			return 0, false
		}
		v := Variable(next.Elem)
		if s.trail.varValue(v) == Unknown {
			return v, true
		}
	}
}

// pickPolarity returns the literal to assign for a freshly picked decision
// variable: a uniformly random polarity with probability randomVarFreq,
// otherwise the saved/default phase.
func (s *Solver) pickPolarity(v Variable) Literal {
	vo := s.order
	if vo.randomVarFreq > 0 && vo.rng.Float64() < vo.randomVarFreq {
		s.stats.RandomDecisions++
		if vo.rng.Intn(2) == 0 {
			return PositiveLiteral(v)
		}
		return NegativeLiteral(v)
	}
	if vo.phases[v] == False {
		return NegativeLiteral(v)
	}
	return PositiveLiteral(v)
}
