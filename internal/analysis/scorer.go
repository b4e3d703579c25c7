package analysis

import (
	"calsdt/domain/element"
	"calsdt/domain/phone"
)

const (
	adjacencyShare     = 0.4
	compatibilityShare = 0.6
)

// Score is the score breakdown of an accepted number
type Score struct {
	Adjacency     int     `json:"adjacency"`
	Compatibility float64 `json:"compatibility"`
	Final         float64 `json:"final"`
}

// AdjacencyScore sums the relation matrix over the nine consecutive digit
// pairs, row = earlier digit, column = later digit.
func AdjacencyScore(d phone.Digits) int {
	total := 0
	for i := 0; i+1 < len(d); i++ {
		total += element.Relation(element.Classify(d[i]), element.Classify(d[i+1]))
	}
	return total
}

// CompatibilityScore sums the role weight of every digit's element
func CompatibilityScore(d phone.Digits, roles element.Roles, w Weights) float64 {
	total := 0.0
	for _, v := range d {
		total += w.For(roles.RoleOf(element.Classify(v)))
	}
	return total
}

// FinalScore combines the parts: 0.4*adjacency + 0.6*compatibility in
// compatibility mode, adjacency alone in absolute-balance mode.
func FinalScore(mode Mode, adjacency int, compatibility float64) float64 {
	if mode == ModeAbsoluteBalance {
		return float64(adjacency)
	}
	return adjacencyShare*float64(adjacency) + compatibilityShare*compatibility
}

// Scorer computes scores for one config
type Scorer struct {
	mode    Mode
	roles   element.Roles
	weights Weights
}

// NewScorer binds the mode, menh roles and weights of cfg
func NewScorer(cfg Config) Scorer {
	return Scorer{
		mode:    cfg.Mode,
		roles:   element.RolesFor(cfg.UserMenh),
		weights: cfg.Weights,
	}
}

// Score scores transformed digits. Compatibility is left at zero in
// absolute-balance mode.
func (s Scorer) Score(transformed phone.Digits) Score {
	sc := Score{Adjacency: AdjacencyScore(transformed)}
	if s.mode != ModeAbsoluteBalance {
		sc.Compatibility = CompatibilityScore(transformed, s.roles, s.weights)
	}
	sc.Final = FinalScore(s.mode, sc.Adjacency, sc.Compatibility)
	return sc
}
