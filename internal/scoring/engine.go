// Package scoring turns clash outcomes and the lexical analysis of the
// user's speech into BP team scores. Matter comes from won clashes, manner
// and method from the user's own analysis; the three teams the user cannot
// be scored on draw plausible filler values from an injected RNG so a round
// replayed with the same seed scores identically.
package scoring

import (
	"math/rand"
	"sort"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
	"github.com/saminadamn/bp-debate-simulator/internal/clash"
)

// Score is one team's adjudication scores. Total is uncapped.
type Score struct {
	Matter float64 `json:"matter"`
	Manner float64 `json:"manner"`
	Method float64 `json:"method"`
	Total  float64 `json:"total"`
}

// Metrics are the six performance axes reported for the user's speech, each
// capped at 10.
type Metrics struct {
	AverageArgumentQuality  float64 `json:"averageArgumentQuality"`
	ClashEngagement         float64 `json:"clashEngagement"`
	StructuralCoherence     float64 `json:"structuralCoherence"`
	EvidenceUsage           float64 `json:"evidenceUsage"`
	RhetoricalEffectiveness float64 `json:"rhetoricalEffectiveness"`
	StrategicAwareness      float64 `json:"strategicAwareness"`
}

// Engine scores one round. Not safe for concurrent use; callers build one
// per request with a per-round seed.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine drawing filler scores from the given seed.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// TeamScores computes all four teams' scores. Matter accrues per clash to
// the leading bench's team nearest the user: the user's own team when their
// bench leads, the team directly opposite otherwise.
func (e *Engine) TeamScores(clashes []clash.Point, a analysis.SpeechAnalysis, userRole bp.Role) map[bp.Team]Score {
	userTeam := userRole.Team()

	scores := map[bp.Team]Score{
		bp.OG: {}, bp.OO: {}, bp.CG: {}, bp.CO: {},
	}

	for _, c := range clashes {
		winner := userTeam
		if c.Leader != userRole.Side() {
			winner = userTeam.Opposing()
		}
		s := scores[winner]
		s.Matter += float64(c.Weight)
		scores[winner] = s
	}

	for _, team := range bp.Teams {
		s := scores[team]
		if team == userTeam {
			s.Manner = cap10(a.QualityScore)
			s.Method = cap10((a.StructureScore + a.ClashScore) / 2)
		} else {
			s.Manner = 5 + e.rng.Float64()*3
			s.Method = 5 + e.rng.Float64()*3
		}
		s.Total = s.Matter + s.Manner + s.Method
		scores[team] = s
	}

	return scores
}

// Ranking orders teams by total, descending. Ties keep the fixed
// OG, OO, CG, CO order.
func Ranking(scores map[bp.Team]Score) []bp.Team {
	ranked := make([]bp.Team, len(bp.Teams))
	copy(ranked, bp.Teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]].Total > scores[ranked[j]].Total
	})
	return ranked
}

// PerformanceMetrics derives the six reported axes from the user's analysis.
func PerformanceMetrics(a analysis.SpeechAnalysis) Metrics {
	return Metrics{
		AverageArgumentQuality:  cap10(a.QualityScore),
		ClashEngagement:         cap10(a.ClashScore),
		StructuralCoherence:     cap10(a.StructureScore),
		EvidenceUsage:           cap10(a.EvidenceScore),
		RhetoricalEffectiveness: cap10((a.ImpactScore + a.QualityScore) / 2),
		StrategicAwareness:      cap10((a.ClashScore + a.StructureScore) / 2),
	}
}

func cap10(v float64) float64 {
	if v > 10 {
		return 10
	}
	return v
}
