package score

import (
	"math"

	"github.com/katalvlaran/strokematch/direction"
	"github.com/katalvlaran/strokematch/dtw"
)

// Thresholds.
const (
	ExcellentMin  = 0.85
	GoodMin       = 0.70
	DevelopingMin = 0.50

	// DirectionMin is the consistency below which a non-RTL stroke is flagged.
	DirectionMin = 0.6

	ThreeStarMin = 0.95
	TwoStarMin   = 0.85
	OneStarMin   = 0.70

	PointsPerStar = 50
)

// Reward is the progress award for one attempt.
type Reward struct {
	Stars  int `json:"stars"`
	Points int `json:"points"`
}

// Score maps an alignment to [0,1]. An empty path scores 0.
func Score(r dtw.Result) float64 {
	if len(r.Path) == 0 {
		return 0
	}
	s := 1 - 2*r.Cost/float64(len(r.Path))
	if math.IsNaN(s) {
		return 0
	}

	return clamp(s)
}

// Classify assigns a tier from a score and a direction assessment.
func Classify(s float64, d direction.Assessment) Tier {
	switch {
	case !d.RightToLeft && d.Consistency < DirectionMin:
		return DirectionWarning
	case s >= ExcellentMin:
		return Excellent
	case s >= GoodMin:
		return Good
	case s >= DevelopingMin:
		return Developing
	default:
		return NeedsPractice
	}
}

// Stars returns 0..3.
func Stars(s float64) int {
	switch {
	case s >= ThreeStarMin:
		return 3
	case s >= TwoStarMin:
		return 2
	case s >= OneStarMin:
		return 1
	default:
		return 0
	}
}

// RewardFor computes stars and points: round(100·s) + 50 per star.
func RewardFor(s float64) Reward {
	stars := Stars(s)

	return Reward{
		Stars:  stars,
		Points: int(math.Round(clamp(s)*100)) + stars*PointsPerStar,
	}
}

func clamp(s float64) float64 {
	return math.Max(0, math.Min(1, s))
}
