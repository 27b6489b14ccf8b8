// Package adjudicator runs one full adjudication: locate the user's
// speech, analyze it, identify the round's clashes, score and rank the
// four teams, and render feedback. Every adjudication carries a round ID;
// the scoring RNG is seeded from it so a stored round can be re-scored
// identically.
package adjudicator

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
	"github.com/saminadamn/bp-debate-simulator/internal/clash"
	"github.com/saminadamn/bp-debate-simulator/internal/feedback"
	"github.com/saminadamn/bp-debate-simulator/internal/scoring"
)

// Methodology describes the scoring approach in every adjudication
// payload.
const Methodology = "Matrix-based scoring system analyzing argument structure, evidence, clash engagement, and strategic awareness"

// Result is one complete adjudication.
type Result struct {
	RoundID            string                    `json:"roundId"`
	Ranking            []bp.Team                 `json:"ranking"`
	Clashes            []clash.Point             `json:"clashes"`
	TeamScores         map[bp.Team]scoring.Score `json:"teamScores"`
	PerformanceMetrics scoring.Metrics           `json:"performanceMetrics"`
	Feedback           string                    `json:"feedback"`
	Improvements       []string                  `json:"improvements"`
	Methodology        string                    `json:"methodology"`
}

// Adjudicate scores a finished round. The user's speech is the explicit
// one when given, otherwise the first non-AI speech matching userRole,
// otherwise any non-AI speech. Without any user speech the default
// adjudication is returned.
func Adjudicate(motion string, speeches []bp.Speech, userRole bp.Role, explicit *bp.Speech) Result {
	userSpeech, ok := resolveUserSpeech(speeches, userRole, explicit)
	if !ok {
		return DefaultResult()
	}

	roundID := uuid.New()

	a := analysis.Analyze(userSpeech.Content)

	all := speeches
	if explicit != nil && !containsSpeech(speeches, *explicit) {
		all = append(append([]bp.Speech{}, speeches...), *explicit)
	}
	gov := analysis.ProfileSide(bp.BySide(all, bp.Government), motion)
	opp := analysis.ProfileSide(bp.BySide(all, bp.Opposition), motion)
	clashes := clash.IdentifyAll(motion, gov, opp)

	engine := scoring.NewEngine(seedFrom(roundID))
	scores := engine.TeamScores(clashes, a, userRole)
	ranking := scoring.Ranking(scores)

	return Result{
		RoundID:            roundID.String(),
		Ranking:            ranking,
		Clashes:            clashes,
		TeamScores:         scores,
		PerformanceMetrics: scoring.PerformanceMetrics(a),
		Feedback:           feedback.Adjudication(motion, a, ranking, userRole),
		Improvements:       feedback.Improvements(a),
		Methodology:        Methodology,
	}
}

// DefaultResult is the fixed payload returned when no user speech can be
// located at all.
func DefaultResult() Result {
	return Result{
		RoundID: uuid.New().String(),
		Ranking: []bp.Team{bp.OG, bp.OO, bp.CG, bp.CO},
		Clashes: []clash.Point{},
		TeamScores: map[bp.Team]scoring.Score{
			bp.OG: {Total: 20},
			bp.OO: {Total: 18},
			bp.CG: {Total: 16},
			bp.CO: {Total: 14},
		},
		PerformanceMetrics: scoring.Metrics{
			AverageArgumentQuality:  5,
			ClashEngagement:         5,
			StructuralCoherence:     5,
			EvidenceUsage:           5,
			RhetoricalEffectiveness: 5,
			StrategicAwareness:      5,
		},
		Feedback:     "Unable to analyze speech properly. Please try again.",
		Improvements: []string{"Ensure your speech is properly recorded and transcribed"},
		Methodology:  Methodology,
	}
}

func resolveUserSpeech(speeches []bp.Speech, userRole bp.Role, explicit *bp.Speech) (bp.Speech, bool) {
	if explicit != nil && explicit.Content != "" {
		return *explicit, true
	}
	return bp.FindUserSpeech(speeches, userRole)
}

func containsSpeech(speeches []bp.Speech, s bp.Speech) bool {
	for _, sp := range speeches {
		if sp.Role == s.Role && sp.Content == s.Content && sp.IsAI == s.IsAI {
			return true
		}
	}
	return false
}

// seedFrom folds the round ID into the scoring seed.
func seedFrom(id uuid.UUID) int64 {
	return int64(binary.BigEndian.Uint64(id[:8]))
}
