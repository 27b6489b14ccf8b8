package analysis

import (
	"testing"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

func TestExtractContributions(t *testing.T) {
	content := "We define prohibition narrowly. The mechanism works through licensing. This harms vulnerable people in every community."
	got := ExtractContributions(content, bp.PM)

	types := map[string]bool{}
	for _, c := range got {
		types[c.Type] = true
		if c.Role != bp.PM {
			t.Errorf("contribution role = %s, want PM", c.Role)
		}
		if c.Strength < 1 || c.Strength > 10 {
			t.Errorf("strength %v out of range", c.Strength)
		}
	}
	for _, want := range []string{"framework", "mechanism", "impact", "stakeholder"} {
		if !types[want] {
			t.Errorf("missing %s contribution in %v", want, got)
		}
	}

	if got := ExtractContributions("nothing relevant here", bp.LO); got != nil {
		t.Errorf("expected no contributions, got %v", got)
	}
}

func TestExtractContributionsPicksCarryingSentence(t *testing.T) {
	content := "Opening pleasantries. We must understand the scope of this policy. Closing remarks."
	got := ExtractContributions(content, bp.LO)
	if len(got) != 1 || got[0].Type != "framework" {
		t.Fatalf("got %v, want single framework contribution", got)
	}
	if got[0].Content != "We must understand the scope of this policy" {
		t.Errorf("content = %q", got[0].Content)
	}
}

func TestExtractThemesMotionFamilies(t *testing.T) {
	speech := func(content string) []bp.Speech {
		return []bp.Speech{{Role: bp.PM, Content: content}}
	}
	frameworkSpeech := "We define the policy as follows."

	tests := []struct {
		motion string
		want   string
	}{
		{"This house would ban gambling", "prohibition_scope"},
		{"This house would tax sugar", "economic_intervention"},
		{"This house would require vaccination", "regulatory_mandate"},
		{"This house supports open borders", "policy_framework"},
	}
	for _, tt := range tests {
		got := ExtractThemes(speech(frameworkSpeech), tt.motion)
		if len(got.Frameworks) != 1 || got.Frameworks[0] != tt.want {
			t.Errorf("motion %q: frameworks = %v, want [%s]", tt.motion, got.Frameworks, tt.want)
		}
	}
}

func TestExtractThemesSubTypes(t *testing.T) {
	speeches := []bp.Speech{
		{Role: bp.PM, Content: "The mechanism is simple: we enforce it through fines, and market incentives do the rest."},
		{Role: bp.DPM, Content: "This protects vulnerable people and future generations from harm."},
		{Role: bp.MG, Content: "A recent study and clear data back this up."},
	}
	got := ExtractThemes(speeches, "This house would ban gambling")

	for _, sub := range []string{"enforcement", "incentives", "market_effects"} {
		if !HasTheme(got.Mechanisms, sub) {
			t.Errorf("mechanisms missing %s: %v", sub, got.Mechanisms)
		}
	}
	for _, sub := range []string{"vulnerable_populations", "future_generations"} {
		if !HasTheme(got.Stakeholders, sub) {
			t.Errorf("stakeholders missing %s: %v", sub, got.Stakeholders)
		}
	}
	if !HasTheme(got.Impacts, "harm_prevention") {
		t.Errorf("impacts missing harm_prevention: %v", got.Impacts)
	}
	for _, sub := range []string{"empirical_studies", "statistical_data"} {
		if !HasTheme(got.Evidence, sub) {
			t.Errorf("evidence missing %s: %v", sub, got.Evidence)
		}
	}
}

func TestClassifyCategories(t *testing.T) {
	text := "The economic cost is huge. This matters because freedom is at stake. Society will adapt. We can implement this because a study proves it is feasible."
	got := KeywordClassifier{}.Classify(text)

	want := map[string]bool{"economic": true, "rights": true, "social": true, "practical": true}
	for _, sig := range got {
		if !want[sig.Category] {
			t.Errorf("unexpected category %s", sig.Category)
		}
		delete(want, sig.Category)
		if sig.Claim == "" || sig.Mechanism == "" || sig.Evidence == "" || sig.Impact == "" || sig.Weighing == "" {
			t.Errorf("category %s has empty field: %+v", sig.Category, sig)
		}
	}
	for missing := range want {
		t.Errorf("missing category %s", missing)
	}

	if got := (KeywordClassifier{}).Classify("completely neutral words"); got != nil {
		t.Errorf("neutral text should classify to nothing, got %v", got)
	}
}
