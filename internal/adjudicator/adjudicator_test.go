package adjudicator

import (
	"strings"
	"testing"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

func roundSpeeches() []bp.Speech {
	return []bp.Speech{
		{Role: bp.PM, Content: "We define the framework and will implement enforcement. The benefit is clear.", IsAI: true},
		{Role: bp.LO, Content: "However, the vulnerable people affected will suffer harm because of the cost.", IsAI: false},
		{Role: bp.DPM, Content: "Extending with evidence from a study of the market.", IsAI: true},
	}
}

func TestAdjudicateFullRound(t *testing.T) {
	res := Adjudicate("This house would ban gambling", roundSpeeches(), bp.LO, nil)

	if res.RoundID == "" {
		t.Fatal("missing round ID")
	}
	if len(res.Ranking) != 4 {
		t.Fatalf("ranking = %v", res.Ranking)
	}
	if len(res.Clashes) != 3 {
		t.Errorf("adjudication should always carry 3 clashes, got %d", len(res.Clashes))
	}
	if len(res.TeamScores) != 4 {
		t.Errorf("team scores = %v", res.TeamScores)
	}
	for team, s := range res.TeamScores {
		if s.Total != s.Matter+s.Manner+s.Method {
			t.Errorf("%s: total %v != %v+%v+%v", team, s.Total, s.Matter, s.Manner, s.Method)
		}
	}
	if !strings.Contains(res.Feedback, "ADJUDICATION FEEDBACK") {
		t.Errorf("feedback header missing")
	}
	if !strings.Contains(res.Feedback, "← YOUR TEAM") {
		t.Errorf("feedback should mark the user's team")
	}
	if len(res.Improvements) == 0 {
		t.Errorf("improvements empty")
	}
	if res.Methodology != Methodology {
		t.Errorf("methodology = %q", res.Methodology)
	}

	// Ranking order matches the score totals.
	for i := 0; i < len(res.Ranking)-1; i++ {
		if res.TeamScores[res.Ranking[i]].Total < res.TeamScores[res.Ranking[i+1]].Total {
			t.Errorf("ranking not sorted by total: %v", res.Ranking)
		}
	}
}

func TestAdjudicateExplicitSpeechWins(t *testing.T) {
	explicit := bp.Speech{Role: bp.MG, Content: "First argument: the evidence matters. However they claim otherwise.", IsAI: false}
	res := Adjudicate("motion", roundSpeeches(), bp.MG, &explicit)

	// The explicit speech scores every axis, so the generic fallback
	// improvements appear instead of the weakness drills.
	if res.Improvements[0] != "Continue practicing advanced techniques like comparative weighing" {
		t.Errorf("improvements = %v", res.Improvements)
	}
	if !strings.Contains(res.Feedback, "Your Role: Member of Government") {
		t.Errorf("feedback should use the explicit role")
	}
}

func TestAdjudicateFallsBackToAnyHumanSpeech(t *testing.T) {
	// No speech for OW, but the LO human speech exists.
	res := Adjudicate("motion", roundSpeeches(), bp.OW, nil)
	if res.Feedback == "Unable to analyze speech properly. Please try again." {
		t.Errorf("fallback human speech should be analyzed")
	}
}

func TestAdjudicateDefaultWhenNoHumanSpeech(t *testing.T) {
	speeches := []bp.Speech{{Role: bp.PM, Content: "ai only", IsAI: true}}
	res := Adjudicate("motion", speeches, bp.LO, nil)

	if res.Feedback != "Unable to analyze speech properly. Please try again." {
		t.Fatalf("expected default adjudication, got %q", res.Feedback)
	}
	want := []bp.Team{bp.OG, bp.OO, bp.CG, bp.CO}
	for i, team := range want {
		if res.Ranking[i] != team {
			t.Errorf("default ranking = %v", res.Ranking)
			break
		}
	}
	if res.TeamScores[bp.OG].Total != 20 || res.TeamScores[bp.CO].Total != 14 {
		t.Errorf("default totals = %v", res.TeamScores)
	}
	if res.PerformanceMetrics.ClashEngagement != 5 {
		t.Errorf("default metrics = %+v", res.PerformanceMetrics)
	}
	if len(res.Clashes) != 0 {
		t.Errorf("default adjudication carries no clashes")
	}
}
