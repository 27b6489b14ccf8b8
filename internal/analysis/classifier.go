package analysis

import (
	"regexp"
	"strings"
)

// ArgumentSignal is one classified argument pulled from a transcript. Fields
// that the transcript does not support are filled with generic fallbacks so
// downstream templates always have complete prose to work with.
type ArgumentSignal struct {
	Category  string  `json:"category"`
	Claim     string  `json:"claim"`
	Mechanism string  `json:"mechanism"`
	Evidence  string  `json:"evidence"`
	Impact    string  `json:"impact"`
	Weighing  string  `json:"weighing"`
	Strength  float64 `json:"strength"`
}

// Classifier turns a transcript into typed argument signals. The keyword
// implementation is the only one; the interface keeps the seam for a model
// backed classifier.
type Classifier interface {
	Classify(text string) []ArgumentSignal
}

// KeywordClassifier classifies by keyword containment. It emits at most one
// signal per category and nothing for categories the transcript never touches.
type KeywordClassifier struct{}

var categoryTriggers = []struct {
	category string
	words    []string
}{
	{"economic", []string{"economic", "economy", "cost", "money", "financial", "market"}},
	{"rights", []string{"right", "freedom", "liberty", "autonomy"}},
	{"social", []string{"social", "society", "community", "culture"}},
	{"practical", []string{"implement", "enforce", "practical", "feasible"}},
}

var (
	mechanismWords = []string{"how", "through", "by", "mechanism", "works"}
	evidenceCue    = []string{"study", "research", "example", "data", "evidence", "statistics"}
	impactCue      = []string{"impact", "result", "lead", "cause", "effect", "consequence"}
	weighingCue    = []string{"important", "matters", "crucial", "significant", "therefore"}
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Classify emits one signal per category whose trigger words appear in text.
func (KeywordClassifier) Classify(text string) []ArgumentSignal {
	lower := strings.ToLower(text)
	sentences := splitSentences(text)

	var out []ArgumentSignal
	for _, ct := range categoryTriggers {
		if !containsAny(lower, ct.words) {
			continue
		}
		out = append(out, ArgumentSignal{
			Category:  ct.category,
			Claim:     firstSentenceWith(sentences, ct.words, "This policy raises a significant "+ct.category+" question."),
			Mechanism: firstSentenceWith(sentences, mechanismWords, "The policy operates through its core provisions."),
			Evidence:  firstSentenceWith(sentences, evidenceCue, "Comparable policies provide supporting evidence."),
			Impact:    firstSentenceWith(sentences, impactCue, "The effects reach everyone the policy touches."),
			Weighing:  firstSentenceWith(sentences, weighingCue, "This consideration should weigh heavily in the round."),
			Strength:  SignalStrength(lower),
		})
	}
	return out
}

// SignalStrength scores how well supported a stretch of lowered text is.
// Base 5, bonuses for evidence and reasoning markers, capped at 10.
func SignalStrength(lower string) float64 {
	s := 5.0
	if strings.Contains(lower, "evidence") || strings.Contains(lower, "study") {
		s += 2
	}
	if strings.Contains(lower, "example") || strings.Contains(lower, "case") {
		s++
	}
	if strings.Contains(lower, "because") || strings.Contains(lower, "therefore") {
		s++
	}
	if strings.Contains(lower, "important") || strings.Contains(lower, "crucial") {
		s++
	}
	return cap10(s)
}

func splitSentences(text string) []string {
	raw := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// firstSentenceWith returns the first sentence containing any of the words,
// or the fallback when none match.
func firstSentenceWith(sentences, words []string, fallback string) string {
	for _, s := range sentences {
		if containsAny(strings.ToLower(s), words) {
			return ensurePeriod(s)
		}
	}
	return fallback
}

func ensurePeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
