// Package clash identifies the points of direct disagreement between the two
// benches. A round has at most three, one per slot: framework, mechanism,
// impact/stakeholder. Slot content is picked from a fixed catalogue keyed on
// the motion wording and the sub-types the benches actually raised; the
// leader of each point is whichever bench argued it with more total strength,
// with exact ties going to Opposition.
package clash

import (
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// Point is one identified clash.
type Point struct {
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	GovPosition         string  `json:"govPosition"`
	OppPosition         string  `json:"oppPosition"`
	Analysis            string  `json:"analysis"`
	Reasoning           string  `json:"reasoning"`
	Leader              bp.Side `json:"currentLeader"`
	Weight              int     `json:"weight"`
	StrategicImportance int     `json:"strategicImportance"`
}

// IdentifyAll returns exactly three points, one per slot. Slots with no
// signals from either bench still fire their default clash; an adjudication
// always has a full clash matrix to score from.
func IdentifyAll(motion string, gov, opp analysis.SideProfile) []Point {
	return []Point{
		frameworkPoint(motion, gov, opp),
		mechanismPoint(gov, opp),
		impactPoint(gov, opp),
	}
}

// IdentifySignificant returns only the slots at least one bench engaged
// with: zero to three points, in slot order.
func IdentifySignificant(motion string, gov, opp analysis.SideProfile) []Point {
	var out []Point
	govFw := analysis.ByType(gov.Contributions, "framework")
	oppFw := analysis.ByType(opp.Contributions, "framework")
	if len(govFw)+len(oppFw) > 0 {
		p := frameworkPoint(motion, gov, opp)
		p.Reasoning = leaderReasoning(p.Leader,
			"Government has provided clearer definitional framework with stronger justification",
			"Opposition has successfully challenged government framework and provided compelling alternatives")
		out = append(out, p)
	}

	govMech := analysis.ByType(gov.Contributions, "mechanism")
	oppMech := analysis.ByType(opp.Contributions, "mechanism")
	if len(govMech)+len(oppMech) > 0 {
		p := mechanismPoint(gov, opp)
		p.Reasoning = leaderReasoning(p.Leader,
			"Government has provided detailed implementation plans with evidence of feasibility",
			"Opposition has identified critical implementation flaws that government cannot address")
		out = append(out, p)
	}

	govImp := analysis.ByType(gov.Contributions, "impact", "stakeholder")
	oppImp := analysis.ByType(opp.Contributions, "impact", "stakeholder")
	if len(govImp)+len(oppImp) > 0 {
		p := impactPoint(gov, opp)
		p.Reasoning = leaderReasoning(p.Leader,
			"Government has provided compelling evidence of positive impacts with concrete examples",
			"Opposition has demonstrated significant harms that outweigh claimed benefits")
		out = append(out, p)
	}

	return out
}

// leaderFor sums each bench's strength in the slot. Strictly greater
// government strength takes the point; anything else, ties included, goes
// to Opposition.
func leaderFor(gov, opp []analysis.Contribution) bp.Side {
	if analysis.TotalStrength(gov) > analysis.TotalStrength(opp) {
		return bp.Government
	}
	return bp.Opposition
}

func leaderReasoning(leader bp.Side, govWins, oppWins string) string {
	if leader == bp.Government {
		return govWins
	}
	return oppWins
}

func frameworkPoint(motion string, gov, opp analysis.SideProfile) Point {
	p := Point{
		Title:               "Policy Approach and State Role",
		Description:         "Disagreement over whether this issue requires active government intervention",
		GovPosition:         "Active government intervention is necessary to address significant problems",
		OppPosition:         "Current approaches are adequate or government intervention will create more problems than it solves",
		Analysis:            "This clash establishes the fundamental justification for any policy change",
		Reasoning:           "Government argues active intervention is necessary; Opposition argues current approaches are sufficient or intervention will backfire",
		Weight:              7,
		StrategicImportance: 9,
	}

	motionLower := strings.ToLower(motion)
	switch {
	case strings.Contains(motionLower, "ban") || strings.Contains(motionLower, "prohibit"):
		p.Title = "Prohibition Scope and Justification"
		p.Description = "Fundamental disagreement over whether prohibition is the appropriate policy response and how broadly it should be defined"
		p.GovPosition = "Prohibition is clearly definable, enforceable, and necessary to prevent significant harms"
		p.OppPosition = "Prohibition is either too broad/vague to implement fairly or unjustified given less restrictive alternatives"
		p.Analysis = "This clash is central because it determines whether the policy can even be implemented as intended"
		p.Reasoning = "Government argues prohibition is necessary and clearly definable; Opposition challenges both the scope of prohibition and whether it's justified as a policy tool"
		p.Weight = 9
	case strings.Contains(motionLower, "tax") || strings.Contains(motionLower, "subsidize"):
		p.Title = "Economic Intervention Philosophy"
		p.Description = "Core disagreement over whether market intervention improves or distorts economic outcomes"
		p.GovPosition = "Market failures require government intervention to achieve optimal outcomes"
		p.OppPosition = "Government intervention distorts markets and creates worse outcomes than market solutions"
		p.Analysis = "This philosophical clash underlies all specific arguments about implementation and effects"
		p.Reasoning = "Government argues market failures justify intervention; Opposition argues intervention creates worse distortions"
		p.Weight = 8
	case strings.Contains(motionLower, "require") || strings.Contains(motionLower, "mandate"):
		p.Title = "Regulatory Authority vs Individual Autonomy"
		p.Description = "Fundamental tension between collective regulation and individual choice"
		p.GovPosition = "Collective action problems justify regulatory mandates that override individual preferences"
		p.OppPosition = "Individual autonomy and choice should be preserved except in cases of direct harm to others"
		p.Analysis = "This clash determines the legitimacy of the entire policy approach"
		p.Reasoning = "Government argues collective action problems require mandates; Opposition argues individual autonomy should be preserved"
		p.Weight = 8
	}

	p.Leader = leaderFor(
		analysis.ByType(gov.Contributions, "framework"),
		analysis.ByType(opp.Contributions, "framework"))
	return p
}

func mechanismPoint(gov, opp analysis.SideProfile) Point {
	p := Point{
		Title:               "Policy Effectiveness and Practical Outcomes",
		Description:         "Core disagreement over whether the policy will work as intended in practice",
		GovPosition:         "Policy mechanisms are sound and will achieve the intended outcomes",
		OppPosition:         "Policy will fail to achieve its goals due to practical implementation problems",
		Analysis:            "This clash addresses the fundamental question of whether the policy will work",
		Reasoning:           "Government argues policy mechanisms will achieve stated goals; Opposition argues practical implementation will fail",
		Weight:              7,
		StrategicImportance: 8,
	}

	switch {
	case hasEither(gov.Themes.Mechanisms, opp.Themes.Mechanisms, "enforcement"):
		p.Title = "Implementation Feasibility and Enforcement"
		p.Description = "Direct disagreement over whether the policy can be effectively implemented and enforced"
		p.GovPosition = "Implementation mechanisms are well-designed, enforceable, and will achieve policy goals"
		p.OppPosition = "Implementation will fail due to enforcement challenges, creating perverse incentives and wasting resources"
		p.Analysis = "This clash is crucial because policy effectiveness depends entirely on successful implementation"
		p.Reasoning = "Government claims implementation mechanisms are robust; Opposition argues enforcement will fail or create perverse incentives"
		p.Weight = 8
	case hasEither(gov.Themes.Mechanisms, opp.Themes.Mechanisms, "incentives"):
		p.Title = "Behavioral Incentives and Unintended Consequences"
		p.Description = "Disagreement over how the policy will actually change behavior and what secondary effects will occur"
		p.GovPosition = "Policy creates proper incentives that will drive desired behavioral changes"
		p.OppPosition = "Policy creates perverse incentives that will produce opposite or harmful behavioral responses"
		p.Analysis = "This mechanism clash determines whether the policy will achieve its stated objectives"
		p.Reasoning = "Government argues incentives will produce desired behavioral changes; Opposition argues perverse incentives will undermine goals"
		p.Weight = 8
	case hasEither(gov.Themes.Mechanisms, opp.Themes.Mechanisms, "market_effects"):
		p.Title = "Market Dynamics and Economic Effects"
		p.Description = "Fundamental disagreement over how the policy will affect market functioning and economic outcomes"
		p.GovPosition = "Policy corrects market failures and improves overall economic efficiency"
		p.OppPosition = "Policy distorts market signals and reduces economic efficiency and innovation"
		p.Analysis = "This clash determines the economic consequences of the policy"
		p.Reasoning = "Government argues policy corrects market failures; Opposition argues it distorts efficient market operations"
	}

	p.Leader = leaderFor(
		analysis.ByType(gov.Contributions, "mechanism"),
		analysis.ByType(opp.Contributions, "mechanism"))
	return p
}

func impactPoint(gov, opp analysis.SideProfile) Point {
	p := Point{
		Title:               "Cost-Benefit Analysis and Proportionality",
		Description:         "Disagreement over whether the policy's benefits justify its costs and restrictions",
		GovPosition:         "Policy benefits clearly outweigh the costs and any negative side effects",
		OppPosition:         "Policy costs and negative consequences outweigh any theoretical benefits",
		Analysis:            "This clash requires weighing competing values and assessing proportionality of policy responses",
		Reasoning:           "Government argues benefits clearly outweigh costs; Opposition argues costs exceed benefits",
		Weight:              7,
		StrategicImportance: 8,
	}

	switch {
	case hasEither(gov.Themes.Stakeholders, opp.Themes.Stakeholders, "vulnerable_populations"):
		p.Title = "Vulnerable Population Impact Analysis"
		p.Description = "Direct disagreement over whether the policy helps or harms the most vulnerable members of society"
		p.GovPosition = "Policy provides crucial protections and benefits for vulnerable populations who cannot protect themselves"
		p.OppPosition = "Policy disproportionately burdens vulnerable populations while benefiting those who are already privileged"
		p.Analysis = "This clash is critical because vulnerable population impacts often determine the moral legitimacy of policies"
		p.Reasoning = "Government argues policy protects vulnerable populations; Opposition argues it disproportionately harms them"
		p.Weight = 9
	case hasEither(gov.Themes.Impacts, opp.Themes.Impacts, "rights_impacts"):
		p.Title = "Individual Rights vs Collective Benefits"
		p.Description = "Fundamental tension between protecting individual rights and achieving collective goods"
		p.GovPosition = "Collective benefits and harm prevention justify reasonable restrictions on individual rights"
		p.OppPosition = "Individual rights are fundamental and cannot be sacrificed for speculative collective benefits"
		p.Analysis = "This clash represents a core philosophical disagreement about the relationship between individual and collective interests"
		p.Reasoning = "Government argues collective benefits justify individual restrictions; Opposition argues individual rights cannot be sacrificed"
		p.Weight = 8
	case hasEither(gov.Themes.Stakeholders, opp.Themes.Stakeholders, "future_generations"):
		p.Title = "Intergenerational Justice and Long-term Consequences"
		p.Description = "Disagreement over how to weigh present costs against future benefits or harms"
		p.GovPosition = "Policy is necessary to protect future generations from serious long-term harms"
		p.OppPosition = "Policy imposes certain present costs for speculative future benefits, unfairly burdening current generations"
		p.Analysis = "This clash involves complex questions about intergenerational responsibility and temporal weighing"
		p.Reasoning = "Government argues policy protects future generations; Opposition argues it imposes unjustified costs on current generations"
	}

	p.Leader = leaderFor(
		analysis.ByType(gov.Contributions, "impact", "stakeholder"),
		analysis.ByType(opp.Contributions, "impact", "stakeholder"))
	return p
}

func hasEither(gov, opp []string, sub string) bool {
	return analysis.HasTheme(gov, sub) || analysis.HasTheme(opp, sub)
}
