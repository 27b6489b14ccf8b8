// Package feedback renders the adjudication and coaching text shown to the
// debater after a round: the per-round feedback block, the improvement
// list, and the comprehensive team-level analysis.
package feedback

import (
	"fmt"
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// Adjudication renders the full feedback block for the user's speech:
// ranking, speech analysis, clash engagement checks, strategic
// positioning, improvement areas, and a banded overall assessment.
func Adjudication(motion string, a analysis.SpeechAnalysis, ranking []bp.Team, userRole bp.Role) string {
	userTeam := userRole.Team()

	var b strings.Builder
	fmt.Fprintf(&b, "ADJUDICATION FEEDBACK\n\nMotion: %s\n\n", motion)

	b.WriteString("=== TEAM RANKING ===\n")
	for i, team := range ranking {
		marker := ""
		if team == userTeam {
			marker = " ← YOUR TEAM"
		}
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, team, marker)
	}

	b.WriteString("\n=== SPEECH ANALYSIS ===\n")
	fmt.Fprintf(&b, "Word Count: %d words\n", a.WordCount)
	fmt.Fprintf(&b, "Arguments Identified: %d\n", a.ArgumentCount)
	fmt.Fprintf(&b, "Overall Quality Score: %.1f/10\n\n", a.QualityScore)

	b.WriteString("=== CLASH ENGAGEMENT ANALYSIS ===\n")
	if a.HasRebuttal {
		b.WriteString("✓ Successfully engaged with opposing arguments\n")
	} else {
		b.WriteString("✗ Limited engagement with opposing arguments - this is crucial in BP debate\n")
	}
	if a.HasStructure {
		b.WriteString("✓ Clear argument structure with proper signposting\n")
	} else {
		b.WriteString("✗ Argument structure needs improvement - use clear signposting\n")
	}
	if a.HasEvidence {
		b.WriteString("✓ Provided concrete evidence and examples\n")
	} else {
		b.WriteString("✗ Insufficient evidence - BP debates require concrete examples and data\n")
	}

	b.WriteString("\n=== STRATEGIC POSITIONING ===\n")
	fmt.Fprintf(&b, "Your Role: %s\n", userRole.Name())
	fmt.Fprintf(&b, "Team Position: %s\n", userTeam)
	fmt.Fprintf(&b, "Strategic Assessment: %s\n", strategicAssessment(userRole, a))

	b.WriteString("\n=== AREAS FOR IMPROVEMENT ===\n")
	if !a.HasStructure {
		b.WriteString("• Improve argument signposting: \"My first argument...\", \"Secondly...\", etc.\n")
	}
	if !a.HasEvidence {
		b.WriteString("• Include specific examples, statistics, or case studies\n")
	}
	if !a.HasRebuttal {
		b.WriteString("• Directly address opposing arguments with phrases like \"However, they fail to consider...\"\n")
	}
	if !a.HasWeighing {
		b.WriteString("• Explain WHY your arguments matter - what are the real-world consequences?\n")
	}
	if a.ArgumentCount < 2 {
		b.WriteString("• Develop 2-3 distinct arguments rather than one extended point\n")
	}

	b.WriteString("\n=== OVERALL ASSESSMENT ===\n")
	switch {
	case a.QualityScore >= 8:
		b.WriteString("Excellent speech with strong argumentation and clear structure. You demonstrated good understanding of BP format and engaged effectively with the motion.")
	case a.QualityScore >= 6:
		b.WriteString("Good speech with solid foundation. Focus on strengthening the weaker areas identified above to reach the next level.")
	default:
		b.WriteString("Speech shows potential but needs significant work on structure, evidence, and clash engagement. Practice the fundamentals of BP argumentation.")
	}

	return b.String()
}

// strategicAssessment judges how well the speech fulfilled the role's
// specific burdens, using the lexical flags as proxies.
func strategicAssessment(role bp.Role, a analysis.SpeechAnalysis) string {
	pick := func(ok bool, yes, no string) string {
		if ok {
			return yes
		}
		return no
	}

	switch role {
	case bp.PM:
		return pick(a.HasStructure,
			"Successfully established framework and case foundation",
			"Framework establishment needs strengthening")
	case bp.LO:
		return pick(a.HasRebuttal,
			"Effectively challenged government framework",
			"Framework challenge was insufficient")
	case bp.DPM:
		return pick(a.HasRebuttal && a.HasStructure,
			"Good balance of defense and extension",
			"Need better balance between defending PM and extending case")
	case bp.DLO:
		return pick(a.HasRebuttal,
			"Strong systematic rebuttal approach",
			"Systematic rebuttal needs development")
	case bp.MG:
		return pick(a.ArgumentCount >= 2,
			"Successfully introduced new dimensions",
			"New dimensions need to be more distinct from OG")
	case bp.MO:
		return pick(a.HasRebuttal,
			"Good support for OO while adding new angles",
			"Need stronger coordination with OO and clearer new contributions")
	case bp.GW:
		return pick(a.HasWeighing,
			"Effective case summary and comparative weighing",
			"Case summary and weighing need strengthening")
	case bp.OW:
		return pick(a.HasWeighing,
			"Strong final analysis and impact weighing",
			"Final analysis and weighing need improvement")
	default:
		return "Strategic positioning needs development"
	}
}

// Improvements lists the concrete drills for every axis the speech scored
// under 6 on. A speech with no weak axes gets the advanced-technique list.
func Improvements(a analysis.SpeechAnalysis) []string {
	var out []string

	if a.StructureScore < 6 {
		out = append(out, "Practice using clear signposting: 'First argument...', 'Second argument...', etc.")
	}
	if a.EvidenceScore < 6 {
		out = append(out, "Include specific examples, statistics, or case studies to support your claims")
	}
	if a.ImpactScore < 6 {
		out = append(out, "Explain WHY your arguments matter - what are the real-world consequences?")
	}
	if a.ClashScore < 6 {
		out = append(out, "Directly address opposing arguments with phrases like 'However, they fail to consider...'")
	}
	if a.ArgumentCount < 2 {
		out = append(out, "Aim for 2-3 distinct arguments rather than one long point")
	}

	if len(out) == 0 {
		return []string{
			"Continue practicing advanced techniques like comparative weighing",
			"Work on strategic role fulfillment and team coordination",
			"Develop more sophisticated rebuttal techniques",
		}
	}
	return out
}
