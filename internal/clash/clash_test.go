package clash

import (
	"testing"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

func profile(speeches ...bp.Speech) analysis.SideProfile {
	return analysis.ProfileSide(speeches, "This house would ban gambling")
}

func TestIdentifyAllAlwaysThreePoints(t *testing.T) {
	pts := IdentifyAll("This house would ban gambling", analysis.SideProfile{}, analysis.SideProfile{})
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	for _, p := range pts {
		if p.Weight < 1 || p.Weight > 10 {
			t.Errorf("%s: weight %d out of [1,10]", p.Title, p.Weight)
		}
		if p.Title == "" || p.Description == "" || p.GovPosition == "" || p.OppPosition == "" || p.Reasoning == "" {
			t.Errorf("%s: incomplete point %+v", p.Title, p)
		}
	}
	if pts[0].Title != "Prohibition Scope and Justification" || pts[0].Weight != 9 {
		t.Errorf("ban motion framework point = %q weight %d", pts[0].Title, pts[0].Weight)
	}
}

func TestFrameworkMotionFamilies(t *testing.T) {
	tests := []struct {
		motion string
		title  string
		weight int
	}{
		{"This house would ban gambling", "Prohibition Scope and Justification", 9},
		{"This house would prohibit smoking", "Prohibition Scope and Justification", 9},
		{"This house would tax sugar", "Economic Intervention Philosophy", 8},
		{"This house would subsidize rail", "Economic Intervention Philosophy", 8},
		{"This house would require voting", "Regulatory Authority vs Individual Autonomy", 8},
		{"This house would mandate vaccines", "Regulatory Authority vs Individual Autonomy", 8},
		{"This house supports open borders", "Policy Approach and State Role", 7},
	}
	for _, tt := range tests {
		pts := IdentifyAll(tt.motion, analysis.SideProfile{}, analysis.SideProfile{})
		if pts[0].Title != tt.title || pts[0].Weight != tt.weight {
			t.Errorf("motion %q: got %q weight %d, want %q weight %d",
				tt.motion, pts[0].Title, pts[0].Weight, tt.title, tt.weight)
		}
	}
}

func TestMechanismSubTypeSelection(t *testing.T) {
	gov := profile(bp.Speech{Role: bp.PM, Content: "The mechanism works because we enforce it with inspections."})
	pts := IdentifyAll("This house supports open borders", gov, analysis.SideProfile{})
	if pts[1].Title != "Implementation Feasibility and Enforcement" || pts[1].Weight != 8 {
		t.Errorf("mechanism point = %q weight %d", pts[1].Title, pts[1].Weight)
	}
}

func TestImpactSlotPrefersVulnerablePopulations(t *testing.T) {
	opp := profile(bp.Speech{Role: bp.LO, Content: "This harms vulnerable people and tramples their rights."})
	pts := IdentifyAll("This house supports open borders", analysis.SideProfile{}, opp)
	if pts[2].Title != "Vulnerable Population Impact Analysis" || pts[2].Weight != 9 {
		t.Errorf("impact point = %q weight %d", pts[2].Title, pts[2].Weight)
	}
}

func TestLeaderByStrengthTieGoesToOpposition(t *testing.T) {
	strong := "We define this carefully, with evidence from a study, because it is crucial."
	weak := "We define it simply."

	gov := profile(bp.Speech{Role: bp.PM, Content: strong})
	opp := profile(bp.Speech{Role: bp.LO, Content: weak})
	pts := IdentifyAll("This house would ban gambling", gov, opp)
	if pts[0].Leader != bp.Government {
		t.Errorf("stronger government framework: leader = %s", pts[0].Leader)
	}

	// Same contribution both sides: exact tie resolves against government.
	tie := IdentifyAll("This house would ban gambling", profile(bp.Speech{Role: bp.PM, Content: weak}), profile(bp.Speech{Role: bp.LO, Content: weak}))
	if tie[0].Leader != bp.Opposition {
		t.Errorf("tied framework strength: leader = %s, want Opposition", tie[0].Leader)
	}

	// No signals at all is a 0-0 tie.
	empty := IdentifyAll("This house would ban gambling", analysis.SideProfile{}, analysis.SideProfile{})
	for _, p := range empty {
		if p.Leader != bp.Opposition {
			t.Errorf("%s: empty-round leader = %s, want Opposition", p.Title, p.Leader)
		}
	}
}

func TestIdentifySignificantSkipsEmptySlots(t *testing.T) {
	if pts := IdentifySignificant("This house would ban gambling", analysis.SideProfile{}, analysis.SideProfile{}); len(pts) != 0 {
		t.Fatalf("no signals should mean no points, got %d", len(pts))
	}

	opp := profile(bp.Speech{Role: bp.LO, Content: "However, we must understand what the government proposes."})
	pts := IdentifySignificant("This house would ban gambling", analysis.SideProfile{}, opp)
	if len(pts) != 1 {
		t.Fatalf("got %d points, want only the framework slot", len(pts))
	}
	if pts[0].Title != "Prohibition Scope and Justification" {
		t.Errorf("title = %q", pts[0].Title)
	}
	if pts[0].StrategicImportance != 9 {
		t.Errorf("strategicImportance = %d, want 9", pts[0].StrategicImportance)
	}
	if pts[0].Leader != bp.Opposition {
		t.Errorf("leader = %s, want Opposition", pts[0].Leader)
	}
	if len(pts) > 3 {
		t.Errorf("points exceed 3")
	}
}
