package analysis

import (
	"reflect"
	"testing"
)

func TestAnalyzeScoresKeywordFlags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want SpeechAnalysis
	}{
		{
			name: "empty transcript floors everything",
			text: "",
			want: SpeechAnalysis{
				WordCount: 0, ArgumentCount: 1,
				StructureScore: 4, EvidenceScore: 3, ImpactScore: 4, ClashScore: 3,
				QualityScore: 3.5,
			},
		},
		{
			name: "all four signal families",
			text: "First, the evidence from a recent study matters because the impact is significant. However, they argue otherwise.",
			want: SpeechAnalysis{
				WordCount: 17, ArgumentCount: 1,
				HasStructure: true, HasEvidence: true, HasWeighing: true, HasRebuttal: true,
				StructureScore: 8, EvidenceScore: 7, ImpactScore: 7, ClashScore: 8,
				QualityScore: 7.5,
			},
		},
		{
			name: "rebuttal only",
			text: "However, the government's position fails on its own terms.",
			want: SpeechAnalysis{
				WordCount: 9, ArgumentCount: 1,
				HasRebuttal:    true,
				StructureScore: 4, EvidenceScore: 3, ImpactScore: 4, ClashScore: 8,
				QualityScore: 4.75,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Analyze() = %+v\nwant        %+v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	text := "First argument: the study shows significant harm. Therefore we should act. However, critics disagree."
	a := Analyze(text)
	for i := 0; i < 3; i++ {
		if b := Analyze(text); !reflect.DeepEqual(a, b) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, a, b)
		}
	}
}

func TestArgumentCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"no markers here", 1},
		{"First point. Second point. Third point.", 3},
		{"My argument rests on one premise.", 2},
		{"firstly, markers must be whole words", 1},
	}
	for _, tt := range tests {
		if got := Analyze(tt.text).ArgumentCount; got != tt.want {
			t.Errorf("ArgumentCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSignalStrength(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"base", "plain assertion", 5},
		{"evidence bonus", "the evidence shows", 7},
		{"everything stacks and caps", "evidence from a study, for example a case, because it is therefore important and crucial", 10},
		{"reasoning only", "because therefore", 6},
	}
	for _, tt := range tests {
		if got := SignalStrength(tt.text); got != tt.want {
			t.Errorf("%s: SignalStrength = %v, want %v", tt.name, got, tt.want)
		}
	}
}
