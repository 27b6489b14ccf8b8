package speech

import "strings"

// POI timing window in seconds: points are only offered between the first
// and sixth minute of a speech.
const (
	poiWindowStart = 60
	poiWindowEnd   = 360
)

var poiTemplates = map[string][]string{
	"beginner": {
		"Can you give us a specific example of that?",
		"How do you know that's actually true?",
		"What about people who disagree with you?",
		"Isn't that just your opinion?",
		"Can you prove that will really happen?",
	},
	"intermediate": {
		"What evidence do you have that this mechanism would work in practice?",
		"How do you respond to the concern that this could harm vulnerable populations?",
		"Can you clarify how this addresses the root cause rather than symptoms?",
		"What safeguards prevent the abuse you've just described?",
		"How do you weigh this against competing moral principles?",
	},
	"advanced": {
		"How do you account for the endogeneity problem in your causal analysis?",
		"What's your response to the democratic legitimacy concerns this raises?",
		"How do you address the path dependence issues with institutional change?",
		"Can you reconcile this with the empirical evidence from natural experiments?",
		"How do you resolve the tension between your normative and consequentialist claims?",
	},
}

// POI returns a point of information against the live transcript, or
// ("", false) when the speaker is outside the POI window. Transcript
// content overrides the template pool; otherwise a template is drawn at
// the caller's skill level, defaulting to intermediate.
func (g *Generator) POI(transcript string, timeSpoken int, skillLevel string) (string, bool) {
	if timeSpoken < poiWindowStart || timeSpoken > poiWindowEnd {
		return "", false
	}

	templates, ok := poiTemplates[skillLevel]
	if !ok {
		templates = poiTemplates["intermediate"]
	}

	lower := strings.ToLower(transcript)
	advanced := skillLevel == "advanced"

	if strings.Contains(lower, "example") {
		if advanced {
			return "Is that example representative, or are you cherry-picking supportive cases?", true
		}
		return "Can you give us a different example that proves the same point?", true
	}

	if strings.Contains(lower, "evidence") || strings.Contains(lower, "study") {
		if advanced {
			return "What's the methodology behind that study, and how do you address selection bias?", true
		}
		return "Where does that evidence come from?", true
	}

	return templates[g.rng.Intn(len(templates))], true
}
