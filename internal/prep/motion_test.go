package prep

import (
	"strings"
	"testing"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

func TestAnalyzeMotionFamilies(t *testing.T) {
	tests := []struct {
		motion string
		want   []string
	}{
		{"This house would ban smoking", []string{"prohibition", "policy"}},
		{"This house would tax carbon emissions heavily", []string{"economic", "policy"}},
		{"Require all websites to verify identity", []string{"regulation"}},
		{"Legalize all recreational drugs", []string{"liberalization"}},
		{"Protect the climate through conservation efforts", []string{"environmental"}},
		{"Reform the curriculum in every school", []string{"education"}},
		// Keyword matching is substring-based ("plain" carries "ai",
		// "unmatched" carries "un"), so the neutral fixture avoids both.
		{"Reward honest politicians", []string{"policy"}},
	}
	for _, tt := range tests {
		got := AnalyzeMotion(tt.motion)
		if len(got.Types) != len(tt.want) {
			t.Errorf("%q: types = %v, want %v", tt.motion, got.Types, tt.want)
			continue
		}
		for i := range tt.want {
			if got.Types[i] != tt.want[i] {
				t.Errorf("%q: types = %v, want %v", tt.motion, got.Types, tt.want)
				break
			}
		}
	}
}

func TestAnalyzeMotionStakeholders(t *testing.T) {
	a := AnalyzeMotion("This house would ban social media for students")
	for _, want := range []string{"Government/State", "Citizens/Public", "Students", "Teachers", "Media Companies", "Platform Users"} {
		found := false
		for _, s := range a.Stakeholders {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("stakeholders missing %q: %v", want, a.Stakeholders)
		}
	}

	// Universal stakeholders only for a motion with no keyword matches.
	plain := AnalyzeMotion("Reward honest politicians")
	if len(plain.Stakeholders) != 2 {
		t.Errorf("plain motion stakeholders = %v", plain.Stakeholders)
	}
}

func TestAnalyzeMotionTensions(t *testing.T) {
	a := AnalyzeMotion("This house would ban capitalism")
	has := func(want string) bool {
		for _, tn := range a.Tensions {
			if tn == want {
				return true
			}
		}
		return false
	}
	if !has("Individual Liberty vs Collective Harm Prevention") {
		t.Errorf("prohibition tension missing: %v", a.Tensions)
	}
	if !has("Free Markets vs State Control") {
		t.Errorf("capitalism tension missing: %v", a.Tensions)
	}
	// "this house would" pulls in the policy fallback pair.
	if !has("Status Quo Problems vs Policy Risks") {
		t.Errorf("policy fallback tension missing: %v", a.Tensions)
	}
}

func TestImplementationContextPrecedence(t *testing.T) {
	a := AnalyzeMotion("Ban the trade of ivory")
	if !strings.Contains(a.Context, "black market") {
		t.Errorf("prohibition context expected, got %q", a.Context)
	}

	plain := AnalyzeMotion("Reward honest politicians")
	if !strings.Contains(plain.Context, "institutional capacity") {
		t.Errorf("policy fallback context expected, got %q", plain.Context)
	}
}

func TestCaseTheoryByFamilyAndBench(t *testing.T) {
	banGov := CaseTheory(bp.PM, AnalyzeMotion("This house would ban gambling"))
	if !strings.Contains(banGov, "This prohibition is necessary") {
		t.Errorf("gov prohibition theory = %q", banGov)
	}
	banOpp := CaseTheory(bp.LO, AnalyzeMotion("This house would ban gambling"))
	if !strings.Contains(banOpp, "infringes on fundamental liberties") {
		t.Errorf("opp prohibition theory = %q", banOpp)
	}

	// Prohibition outranks economic when both match.
	both := CaseTheory(bp.PM, AnalyzeMotion("Ban the sugar tax"))
	if !strings.Contains(both, "This prohibition is necessary") {
		t.Errorf("family precedence: %q", both)
	}

	def := CaseTheory(bp.OW, AnalyzeMotion("Reward honest politicians"))
	if !strings.Contains(def, "fails to genuinely solve underlying problems") {
		t.Errorf("default opp theory = %q", def)
	}
}
