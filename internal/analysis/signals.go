// Package analysis turns a raw speech transcript into lexical signals and
// typed argument signals. Everything here is deterministic keyword matching;
// there is no model call and no state, so the same transcript always produces
// the same analysis.
package analysis

import (
	"regexp"
	"strings"
)

// SpeechAnalysis is the lexical profile of one transcript. Component scores
// are fixed per flag; QualityScore is their mean capped at 10.
type SpeechAnalysis struct {
	WordCount     int     `json:"wordCount"`
	ArgumentCount int     `json:"argumentCount"`
	HasStructure  bool    `json:"hasStructure"`
	HasEvidence   bool    `json:"hasEvidence"`
	HasWeighing   bool    `json:"hasWeighing"`
	HasRebuttal   bool    `json:"hasRebuttal"`

	StructureScore float64 `json:"structureScore"`
	EvidenceScore  float64 `json:"evidenceScore"`
	ImpactScore    float64 `json:"impactScore"`
	ClashScore     float64 `json:"clashScore"`
	QualityScore   float64 `json:"qualityScore"`
}

var (
	structureWords = []string{"first", "second", "third", "argument", "premise", "explanation", "conclusion"}
	evidenceWords  = []string{"example", "study", "research", "data", "evidence", "statistics", "according to"}
	weighingWords  = []string{"impact", "because", "therefore", "matters", "important", "significant", "crucial"}
	clashWords     = []string{"however", "opposition", "they argue", "they claim", "but", "although", "despite"}

	argumentMarker = regexp.MustCompile(`\b(first|second|third|argument|premise)\b`)
)

// Analyze scores a transcript against the four fixed keyword sets. It never
// fails; an empty transcript degrades to the floor scores.
func Analyze(text string) SpeechAnalysis {
	lower := strings.ToLower(text)

	a := SpeechAnalysis{
		WordCount:    len(strings.Fields(text)),
		HasStructure: containsAny(lower, structureWords),
		HasEvidence:  containsAny(lower, evidenceWords),
		HasWeighing:  containsAny(lower, weighingWords),
		HasRebuttal:  containsAny(lower, clashWords),
	}

	a.ArgumentCount = len(argumentMarker.FindAllString(lower, -1))
	if a.ArgumentCount < 1 {
		a.ArgumentCount = 1
	}

	a.StructureScore = scoreFor(a.HasStructure, 8, 4)
	a.EvidenceScore = scoreFor(a.HasEvidence, 7, 3)
	a.ImpactScore = scoreFor(a.HasWeighing, 7, 4)
	a.ClashScore = scoreFor(a.HasRebuttal, 8, 3)
	a.QualityScore = cap10((a.StructureScore + a.EvidenceScore + a.ImpactScore + a.ClashScore) / 4)

	return a
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func scoreFor(hit bool, yes, no float64) float64 {
	if hit {
		return yes
	}
	return no
}

func cap10(v float64) float64 {
	if v > 10 {
		return 10
	}
	return v
}
