package analysis

import (
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// Contribution is one typed argument found in a speech: the slot it feeds
// (framework, mechanism, impact, stakeholder), the sentence that carried it,
// and a keyword-derived strength.
type Contribution struct {
	Type     string  `json:"type"`
	Role     bp.Role `json:"role"`
	Content  string  `json:"content"`
	Strength float64 `json:"strength"`
}

// Themes are the sub-types a bench actually touched, keyed by slot. Used to
// pick which canned clash fires for a slot.
type Themes struct {
	Frameworks   []string `json:"frameworks"`
	Mechanisms   []string `json:"mechanisms"`
	Stakeholders []string `json:"stakeholders"`
	Impacts      []string `json:"impacts"`
	Evidence     []string `json:"evidence"`
}

// SideProfile is everything clash identification needs about one bench.
type SideProfile struct {
	Contributions []Contribution `json:"contributions"`
	Themes        Themes         `json:"themes"`
}

// ProfileSide analyzes every speech delivered by one bench.
func ProfileSide(speeches []bp.Speech, motion string) SideProfile {
	var p SideProfile
	for _, s := range speeches {
		p.Contributions = append(p.Contributions, ExtractContributions(s.Content, s.Role)...)
	}
	p.Themes = ExtractThemes(speeches, motion)
	return p
}

var contributionTriggers = []struct {
	typ      string
	triggers []string
	fallback string
}{
	{"framework", []string{"define", "framework", "understand"}, "Framework argument identified"},
	{"mechanism", []string{"mechanism", "implement", "enforce", "work"}, "Mechanism argument identified"},
	{"impact", []string{"impact", "harm", "benefit", "consequence"}, "Impact argument identified"},
	{"stakeholder", []string{"people", "community", "vulnerable", "affected"}, "Stakeholder argument identified"},
}

// ExtractContributions pulls the typed arguments out of one speech. A speech
// with none of the trigger words contributes nothing.
func ExtractContributions(content string, role bp.Role) []Contribution {
	lower := strings.ToLower(content)
	sentences := splitSentences(content)

	var out []Contribution
	for _, ct := range contributionTriggers {
		if !containsAny(lower, ct.triggers) {
			continue
		}
		out = append(out, Contribution{
			Type:     ct.typ,
			Role:     role,
			Content:  firstSentenceRaw(sentences, ct.triggers, ct.fallback),
			Strength: SignalStrength(lower),
		})
	}
	return out
}

// ExtractThemes scans a bench's speeches for the sub-types each clash slot
// distinguishes between.
func ExtractThemes(speeches []bp.Speech, motion string) Themes {
	var t Themes
	motionLower := strings.ToLower(motion)

	for _, s := range speeches {
		content := strings.ToLower(s.Content)

		if containsAny(content, []string{"define", "framework", "understand"}) {
			switch {
			case strings.Contains(motionLower, "ban"):
				t.Frameworks = append(t.Frameworks, "prohibition_scope")
			case strings.Contains(motionLower, "tax"):
				t.Frameworks = append(t.Frameworks, "economic_intervention")
			case strings.Contains(motionLower, "require"):
				t.Frameworks = append(t.Frameworks, "regulatory_mandate")
			default:
				t.Frameworks = append(t.Frameworks, "policy_framework")
			}
		}

		if containsAny(content, []string{"mechanism", "how", "implement"}) {
			if strings.Contains(content, "enforce") {
				t.Mechanisms = append(t.Mechanisms, "enforcement")
			}
			if strings.Contains(content, "incentive") {
				t.Mechanisms = append(t.Mechanisms, "incentives")
			}
			if strings.Contains(content, "market") {
				t.Mechanisms = append(t.Mechanisms, "market_effects")
			}
			if strings.Contains(content, "institution") {
				t.Mechanisms = append(t.Mechanisms, "institutional")
			}
		}

		if strings.Contains(content, "student") {
			t.Stakeholders = append(t.Stakeholders, "students")
		}
		if strings.Contains(content, "business") || strings.Contains(content, "company") {
			t.Stakeholders = append(t.Stakeholders, "businesses")
		}
		if strings.Contains(content, "vulnerable") || strings.Contains(content, "marginalized") {
			t.Stakeholders = append(t.Stakeholders, "vulnerable_populations")
		}
		if strings.Contains(content, "future") || strings.Contains(content, "generation") {
			t.Stakeholders = append(t.Stakeholders, "future_generations")
		}
		if strings.Contains(content, "community") {
			t.Stakeholders = append(t.Stakeholders, "communities")
		}

		if strings.Contains(content, "harm") || strings.Contains(content, "damage") {
			t.Impacts = append(t.Impacts, "harm_prevention")
		}
		if strings.Contains(content, "benefit") || strings.Contains(content, "improve") {
			t.Impacts = append(t.Impacts, "positive_outcomes")
		}
		if strings.Contains(content, "right") || strings.Contains(content, "freedom") {
			t.Impacts = append(t.Impacts, "rights_impacts")
		}
		if strings.Contains(content, "economic") || strings.Contains(content, "cost") {
			t.Impacts = append(t.Impacts, "economic_impacts")
		}
		if strings.Contains(content, "social") || strings.Contains(content, "society") {
			t.Impacts = append(t.Impacts, "social_impacts")
		}

		if strings.Contains(content, "study") || strings.Contains(content, "research") {
			t.Evidence = append(t.Evidence, "empirical_studies")
		}
		if strings.Contains(content, "example") || strings.Contains(content, "case") {
			t.Evidence = append(t.Evidence, "case_studies")
		}
		if strings.Contains(content, "data") || strings.Contains(content, "statistics") {
			t.Evidence = append(t.Evidence, "statistical_data")
		}
		if strings.Contains(content, "expert") || strings.Contains(content, "authority") {
			t.Evidence = append(t.Evidence, "expert_opinion")
		}
	}

	return t
}

// ByType filters contributions to the given slot types.
func ByType(contribs []Contribution, types ...string) []Contribution {
	var out []Contribution
	for _, c := range contribs {
		for _, t := range types {
			if c.Type == t {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// TotalStrength sums contribution strengths.
func TotalStrength(contribs []Contribution) float64 {
	var sum float64
	for _, c := range contribs {
		sum += c.Strength
	}
	return sum
}

// HasTheme reports whether a sub-type was raised.
func HasTheme(themes []string, sub string) bool {
	for _, t := range themes {
		if t == sub {
			return true
		}
	}
	return false
}

// firstSentenceRaw is firstSentenceWith without the trailing-period fixup;
// contribution content mirrors the transcript sentence as spoken.
func firstSentenceRaw(sentences, words []string, fallback string) string {
	for _, s := range sentences {
		if containsAny(strings.ToLower(s), words) {
			return s
		}
	}
	return fallback
}
