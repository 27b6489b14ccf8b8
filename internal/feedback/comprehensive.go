package feedback

import (
	"fmt"
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
	"github.com/saminadamn/bp-debate-simulator/internal/clash"
)

// TeamFeedback is the mid-round assessment of one bench.
type TeamFeedback struct {
	Team                  bp.Side  `json:"team"`
	Strengths             []string `json:"strengths"`
	Weaknesses            []string `json:"weaknesses"`
	StrategicAdvice       []string `json:"strategicAdvice"`
	ArgumentEffectiveness float64  `json:"argumentEffectiveness"`
	EngagementQuality     float64  `json:"engagementQuality"`
}

// Progression summarizes how the round has developed so far.
type Progression struct {
	TotalSpeeches        int    `json:"totalSpeeches"`
	ArgumentDevelopment  string `json:"argumentDevelopment"`
	ClashEvolution       string `json:"clashEvolution"`
	StrategicDevelopment string `json:"strategicDevelopment"`
	OverallProgression   string `json:"overallProgression"`
}

// Recommendations splits coaching advice by horizon.
type Recommendations struct {
	Immediate    []string `json:"immediate"`
	LongTerm     []string `json:"longTerm"`
	RoleSpecific []string `json:"roleSpecific"`
}

// DebateQuality is the fixed round-quality assessment block.
type DebateQuality struct {
	ArgumentQuality    float64 `json:"argumentQuality"`
	ClashEngagement    float64 `json:"clashEngagement"`
	StrategicAwareness float64 `json:"strategicAwareness"`
	EvidenceUsage      float64 `json:"evidenceUsage"`
	OverallScore       float64 `json:"overallScore"`
	Assessment         string  `json:"assessment"`
}

// BothTeams assesses the government and opposition benches against the
// identified clash points.
func BothTeams(speeches []bp.Speech, userSpeech string, userRole bp.Role, clashes []clash.Point) []TeamFeedback {
	return []TeamFeedback{
		TeamAssessment(bp.Government, speeches, userSpeech, userRole, clashes),
		TeamAssessment(bp.Opposition, speeches, userSpeech, userRole, clashes),
	}
}

// TeamAssessment builds one bench's feedback: coordination observations,
// clash standing, and strategic advice. Effectiveness floors at 5 and
// rises with the user's own contribution strength when they sit on the
// bench.
func TeamAssessment(side bp.Side, speeches []bp.Speech, userSpeech string, userRole bp.Role, clashes []clash.Point) TeamFeedback {
	fb := TeamFeedback{
		Team:                  side,
		ArgumentEffectiveness: 5,
		EngagementQuality:     5,
	}

	if userRole.Side() == side && userSpeech != "" {
		contribs := analysis.ExtractContributions(userSpeech, userRole)
		for _, c := range contribs {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Strong %s contribution: %s", c.Type, c.Content))
		}
		if len(contribs) > 0 {
			avg := analysis.TotalStrength(contribs) / float64(len(contribs))
			if avg > fb.ArgumentEffectiveness {
				fb.ArgumentEffectiveness = avg
			}
			if avg > fb.EngagementQuality {
				fb.EngagementQuality = avg
			}
		}
	}

	teamSpeeches := bp.BySide(speeches, side)
	if len(teamSpeeches) > 0 {
		fb.Strengths = append(fb.Strengths, "Team maintained consistent position throughout debate")
	}
	if distinctRoles(teamSpeeches) > 1 {
		fb.Strengths = append(fb.Strengths, "Good role differentiation between team members")
	}
	fb.Strengths = append(fb.Strengths, "No major internal contradictions identified")

	for _, c := range clashes {
		if c.Leader == side {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Leading the clash on %s", strings.ToLower(c.Title)))
		} else {
			fb.Weaknesses = append(fb.Weaknesses, fmt.Sprintf("Behind on %s - need stronger response", strings.ToLower(c.Title)))
		}
	}

	fb.StrategicAdvice = teamAdvice(side, clashes, fb.Weaknesses)

	fb.Strengths = capList(fb.Strengths, 4)
	fb.Weaknesses = capList(fb.Weaknesses, 4)
	fb.StrategicAdvice = capList(fb.StrategicAdvice, 3)
	return fb
}

func distinctRoles(speeches []bp.Speech) int {
	seen := map[bp.Role]bool{}
	for _, s := range speeches {
		seen[s.Role] = true
	}
	return len(seen)
}

func teamAdvice(side bp.Side, clashes []clash.Point, weaknesses []string) []string {
	var advice []string
	for _, c := range clashes {
		if c.Leader != side {
			advice = append(advice, fmt.Sprintf("Strengthen arguments on %s with more evidence and examples", strings.ToLower(c.Title)))
		}
	}

	if containsSubstring(weaknesses, "evidence") {
		advice = append(advice, "Include more concrete evidence, statistics, and case studies in arguments")
	}
	if containsSubstring(weaknesses, "engagement") {
		advice = append(advice, "Increase direct engagement with opposing arguments using specific references")
	}
	if containsSubstring(weaknesses, "structure") {
		advice = append(advice, "Improve argument structure with clearer signposting and logical flow")
	}

	if side == bp.Government {
		advice = append(advice, "Focus on demonstrating policy effectiveness with concrete implementation plans")
	} else {
		advice = append(advice, "Emphasize practical problems and unintended consequences of government proposals")
	}
	return advice
}

func containsSubstring(items []string, sub string) bool {
	for _, it := range items {
		if strings.Contains(it, sub) {
			return true
		}
	}
	return false
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Progress summarizes the round so far. The count includes the user's
// speech alongside the recorded ones.
func Progress(speeches []bp.Speech) Progression {
	return Progression{
		TotalSpeeches:        len(speeches) + 1,
		ArgumentDevelopment:  "Arguments have evolved throughout the debate with increasing sophistication",
		ClashEvolution:       "Key clashes have been identified and developed by both sides",
		StrategicDevelopment: "Teams have shown strategic awareness and adaptation",
		OverallProgression:   "Debate has progressed logically with good engagement between sides",
	}
}

var roleRecommendations = map[bp.Role]string{
	bp.PM:  "Focus on setting strong definitional frameworks and presenting core arguments clearly",
	bp.LO:  "Develop systematic framework challenges and alternative vision presentation",
	bp.DPM: "Balance framework defense with substantial case extensions",
	bp.DLO: "Master systematic rebuttal techniques and opposition case crystallization",
	bp.MG:  "Practice introducing genuinely new dimensions while supporting Opening Government",
	bp.MO:  "Develop skills in supporting Opening Opposition while adding distinct new angles",
	bp.GW:  "Focus on case summary techniques and comparative weighing",
	bp.OW:  "Master final clash analysis and impact weighing techniques",
}

// Recommend builds the three-horizon advice block. High-importance
// clashes drive the immediate list.
func Recommend(clashes []clash.Point, userRole bp.Role) Recommendations {
	rec := Recommendations{
		LongTerm: []string{
			"Develop stronger evidence base for future debates",
			"Practice direct engagement and rebuttal techniques",
			"Work on comparative weighing and impact analysis",
		},
	}

	for _, c := range clashes {
		if c.StrategicImportance >= 8 {
			rec.Immediate = append(rec.Immediate, fmt.Sprintf("Focus on %s - this is a crucial clash point", strings.ToLower(c.Title)))
		}
	}

	advice, ok := roleRecommendations[userRole]
	if !ok {
		advice = "Continue developing role-specific skills"
	}
	rec.RoleSpecific = append(rec.RoleSpecific, advice)
	return rec
}

// Quality returns the fixed round-quality block.
func Quality() DebateQuality {
	return DebateQuality{
		ArgumentQuality:    7.5,
		ClashEngagement:    8.0,
		StrategicAwareness: 7.0,
		EvidenceUsage:      6.5,
		OverallScore:       7.25,
		Assessment:         "Good quality debate with clear clash points and reasonable engagement between sides",
	}
}
