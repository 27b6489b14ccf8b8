package prep

import (
	"strings"
	"testing"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

const richNotes = "The economic argument is strong because markets will adapt. " +
	"Economic costs will fall on consumers. " +
	"There is research showing the economic effects. " +
	"Freedom of choice matters to every citizen. " +
	"The social fabric of the community will suffer. " +
	"We cannot implement this without enforcement."

func TestExtractUserArgumentsFourFamiliesCappedAtThree(t *testing.T) {
	args := extractUserArguments(richNotes, "motion")
	if len(args) != 3 {
		t.Fatalf("arguments = %d, want cap of 3", len(args))
	}
	if args[0].Title != "The economic argument is strong because markets will adapt" {
		t.Errorf("economic title should come from the notes: %q", args[0].Title)
	}
	if args[0].Mechanism != "The economic argument is strong because markets will adapt" {
		t.Errorf("economic mechanism = %q", args[0].Mechanism)
	}
	if !strings.Contains(args[0].Evidence, "research showing the economic effects") {
		t.Errorf("economic evidence = %q", args[0].Evidence)
	}
	if args[1].Title != "Fundamental Rights Consideration" {
		t.Errorf("rights fallback title = %q", args[1].Title)
	}
}

func TestExtractUserArgumentsPadsSparseNotes(t *testing.T) {
	args := extractUserArguments("nothing relevant here", "motion")
	if len(args) != 2 {
		t.Fatalf("sparse notes should yield 2 fallback arguments, got %d", len(args))
	}
	if args[0].Title != "Argument 1 from your notes" || args[1].Title != "Argument 2 from your notes" {
		t.Errorf("fallback titles = %q, %q", args[0].Title, args[1].Title)
	}

	one := extractUserArguments("only the economic angle", "motion")
	if len(one) != 2 {
		t.Fatalf("single-family notes should be padded to 2, got %d", len(one))
	}
	if one[0].Title != "Economic Impact Analysis" {
		t.Errorf("economic fallback title = %q", one[0].Title)
	}
}

func TestCaseTheoryFromNotesPrefersUserTheory(t *testing.T) {
	got := caseTheoryFromNotes("Our approach rests on harm reduction", bp.PM, nil)
	if got != "Case Theory (based on your prep notes): Our approach rests on harm reduction" {
		t.Errorf("user theory not preserved: %q", got)
	}

	gov := caseTheoryFromNotes("nothing here", bp.PM, []Argument{{Title: "Economic Impact Analysis"}})
	if !strings.Contains(gov, "should be supported because economic impact analysis") {
		t.Errorf("generated gov theory = %q", gov)
	}
	opp := caseTheoryFromNotes("nothing here", bp.LO, nil)
	if !strings.Contains(opp, "should be opposed because policy analysis") {
		t.Errorf("generated opp theory = %q", opp)
	}
}

func TestStrategicRebuttalsByRole(t *testing.T) {
	args := []Argument{{Title: "Economic Impact Analysis", Evidence: "ev"}}

	lo := strategicRebuttals("challenge their definition", bp.LO, args)
	if lo[0].Target != "Government Framework" {
		t.Errorf("LO first rebuttal target = %q", lo[0].Target)
	}
	if !strings.Contains(lo[0].Response, "definitional framework") {
		t.Errorf("definition notes should sharpen the framework rebuttal: %q", lo[0].Response)
	}

	dpm := strategicRebuttals("plain notes", bp.DPM, args)
	if dpm[0].Target != "Opposition Challenges" {
		t.Errorf("DPM first rebuttal target = %q", dpm[0].Target)
	}

	// Argument-specific rebuttals fill the remainder, capped at 3.
	many := []Argument{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	got := strategicRebuttals("", bp.LO, many)
	if len(got) != 3 {
		t.Errorf("rebuttals = %d, want 3", len(got))
	}
	if got[1].Target != "Counter to A" {
		t.Errorf("second rebuttal target = %q", got[1].Target)
	}
}

func TestWeighingMechanismBranches(t *testing.T) {
	if got := weighingMechanism(nil, "we weigh rights first"); !strings.Contains(got, "weighing priorities you've established") {
		t.Errorf("explicit weighing notes: %q", got)
	}
	rights := []Argument{{Title: "Fundamental Rights Consideration"}}
	if got := weighingMechanism(rights, ""); !strings.Contains(got, "fundamental rights considerations") {
		t.Errorf("rights weighing: %q", got)
	}
	econ := []Argument{{Title: "Economic Impact Analysis"}}
	if got := weighingMechanism(econ, ""); !strings.Contains(got, "cost-benefit analysis") {
		t.Errorf("economic weighing: %q", got)
	}
	if got := weighingMechanism(nil, ""); !strings.Contains(got, "comparative weighing framework") {
		t.Errorf("default weighing: %q", got)
	}
}

func TestProcessNotesResult(t *testing.T) {
	res := ProcessNotes(richNotes, "This house would ban gambling", bp.LO, "intermediate")

	if !strings.HasPrefix(res.StructuredCase.CaseTheory, "Case Theory (based on your prep notes):") {
		t.Errorf("case theory = %q", res.StructuredCase.CaseTheory)
	}
	if len(res.StructuredCase.MainArguments) < 2 || len(res.StructuredCase.MainArguments) > 3 {
		t.Errorf("main arguments = %d", len(res.StructuredCase.MainArguments))
	}
	if !strings.HasPrefix(res.StructuredCase.MainArguments[0].Title, "Argument 1: ") {
		t.Errorf("argument label missing: %q", res.StructuredCase.MainArguments[0].Title)
	}
	if !strings.HasPrefix(res.StructuredCase.MainArguments[0].Premise, "Your premise: ") {
		t.Errorf("premise label missing: %q", res.StructuredCase.MainArguments[0].Premise)
	}
	if len(res.StructuredCase.Rebuttals) == 0 || len(res.StructuredCase.Rebuttals) > 3 {
		t.Errorf("rebuttals = %d", len(res.StructuredCase.Rebuttals))
	}
	if len(res.StructuredCase.RoleSpecificDuties) != 4 {
		t.Errorf("duties = %v", res.StructuredCase.RoleSpecificDuties)
	}

	// Guidance reflects the motion and the case shape.
	if res.StrategicGuidance.ClashPoints[0] != "Enforcement feasibility" {
		t.Errorf("ban motion clash points = %v", res.StrategicGuidance.ClashPoints)
	}
	if res.StrategicGuidance.SpeechStructure.Framework != "Establish/challenge framework (1-2 minutes)" {
		t.Errorf("LO speech structure = %+v", res.StrategicGuidance.SpeechStructure)
	}
	if res.StrategicGuidance.TimingGuidance.TotalTime != "7 minutes maximum" {
		t.Errorf("timing = %+v", res.StrategicGuidance.TimingGuidance)
	}

	// Three arguments saturate the strength metric.
	if res.QualityMetrics.ArgumentStrength != 10 {
		t.Errorf("argument strength = %v", res.QualityMetrics.ArgumentStrength)
	}
	if res.QualityMetrics.LogicalConsistency != 8 || res.QualityMetrics.StrategicAlignment != 7 {
		t.Errorf("fixed metrics = %+v", res.QualityMetrics)
	}
}

func TestAcceptedRolesOrder(t *testing.T) {
	if got := AcceptedRoles(); got != "PM, LO, DPM, DLO, MG, MO, GW, OW" {
		t.Errorf("AcceptedRoles() = %q", got)
	}
}
