package prep

import (
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// Strategy is the strategic brief for one of the eight roles: its
// positioning, the burdens it must discharge, and the clashes it is
// expected to fight.
type Strategy struct {
	Position      string
	Burdens       []string
	Opportunities []string
	Clashes       []string
}

var roleStrategies = map[bp.Role]Strategy{
	bp.PM: {
		Position:      "Framework Setter and Case Establisher",
		Burdens:       []string{"Define motion scope", "Establish case theory", "Present core arguments for the policy's necessity and benefits"},
		Opportunities: []string{"Set favorable definitions", "Frame key tensions", "Establish burden of proof for the Government", "Highlight the urgent need for change"},
		Clashes:       []string{"Definitional disputes", "Framework challenges", "Core case attacks on problem identification or solution effectiveness"},
	},
	bp.LO: {
		Position:      "Framework Challenger and Opposition Establisher",
		Burdens:       []string{"Challenge government framework (if unfair)", "Present an alternative vision (e.g., status quo or counter-proposal)", "Establish core arguments against the policy"},
		Opportunities: []string{"Redefine motion scope (if necessary)", "Challenge underlying assumptions of the motion or Government's case", "Present a counter-framework or alternative perspective"},
		Clashes:       []string{"Definitional challenges", "Framework critique", "Alternative approaches vs. the proposed policy", "Critique of problem identification and solution viability"},
	},
	bp.DPM: {
		Position:      "Framework Defender and Case Extender",
		Burdens:       []string{"Defend government framework and definitions", "Respond systematically to opposition's arguments", "Extend government case with new, substantive arguments or deeper analysis"},
		Opportunities: []string{"Reinforce key definitions and principles established by PM", "Address opposition concerns directly and rebuild attacked arguments", "Add new layers of analysis or impacts to the government's case"},
		Clashes:       []string{"Framework defense", "Opposition rebuttals on government's core arguments", "Case extensions and their comparative importance"},
	},
	bp.DLO: {
		Position:      "Systematic Rebuttal and Opposition Extension",
		Burdens:       []string{"Deliver comprehensive, systematic rebuttal of government's entire case (PM & DPM)", "Extend opposition case with new arguments or deeper analysis", "Crystallize key clashes and explain why Opposition is winning them"},
		Opportunities: []string{"Dismantle government responses to LO's attacks", "Strengthen opposition arguments by adding new impacts or examples", "Identify government contradictions or unfulfilled burdens"},
		Clashes:       []string{"Government response failures", "Opposition extensions", "Clash crystallization and comparative analysis"},
	},
	bp.MG: {
		Position:      "New Dimension Introducer and OG Supporter",
		Burdens:       []string{"Support Opening Government's core principles without repetition", "Introduce new, distinct dimensions of analysis or argument", "Extend the debate's scope with fresh perspectives"},
		Opportunities: []string{"Bring genuinely fresh perspectives or unique impacts (e.g., specific stakeholders, long-term effects)", "Address unexplored angles or neglected aspects of the motion", "Strengthen the government bench by providing additional layers of advocacy"},
		Clashes:       []string{"New dimensional analysis vs. opposition's responses", "Bench coordination and coherence", "Addressing points OG might have missed"},
	},
	bp.MO: {
		Position:      "Opposition Supporter and New Angle Provider",
		Burdens:       []string{"Support Opening Opposition's core principles without repetition", "Introduce new, distinct opposition angles of critique or impact", "Respond directly to Closing Government's extensions and arguments"},
		Opportunities: []string{"Strengthen the opposition bench coordination and synergy", "Counter CG extensions with specific rebuttals and alternative analyses", "Add fresh critique or identify systemic flaws not yet explored"},
		Clashes:       []string{"CG response and new arguments", "Opposition coordination and unique contributions", "New angle development and its impact on the round"},
	},
	bp.GW: {
		Position:      "Government Summarizer and Final Weigher",
		Burdens:       []string{"Summarize the entire government case coherently, integrating OG and CG contributions", "Deliver final, strategic rebuttals to the most important opposition arguments", "Provide comparative weighing of the round, explaining why government wins"},
		Opportunities: []string{"Synthesize government arguments into a compelling narrative", "Identify and refute the opposition's 'best case' arguments", "Offer clear impact weighing (e.g., magnitude, scope, probability, reversibility)", "Frame the round through government's lens"},
		Clashes:       []string{"Case summary and coherent narrative", "Final rebuttals and refutations", "Comparative analysis and impact weighing"},
	},
	bp.OW: {
		Position:      "Opposition Summarizer and Final Analyst",
		Burdens:       []string{"Summarize the entire opposition case coherently, integrating OO and MO contributions", "Analyze final clashes systematically, highlighting government's failures", "Provide impact weighing, explaining why opposition wins"},
		Opportunities: []string{"Synthesize opposition arguments into a powerful counter-narrative", "Deliver definitive critique of the government's entire model and case", "Offer clear comparative impact weighing from the opposition's perspective", "Frame the round through opposition's lens"},
		Clashes:       []string{"Case summary and coherent critique", "Final clash analysis and government's failures", "Impact comparison and why opposition's harms/principles outweigh"},
	},
}

// acceptedRoleOrder is the enumeration order used in validation messages.
var acceptedRoleOrder = []bp.Role{bp.PM, bp.LO, bp.DPM, bp.DLO, bp.MG, bp.MO, bp.GW, bp.OW}

// AcceptedRoles lists the role codes a request may carry, comma-joined
// for error messages.
func AcceptedRoles() string {
	codes := make([]string, len(acceptedRoleOrder))
	for i, r := range acceptedRoleOrder {
		codes[i] = string(r)
	}
	return strings.Join(codes, ", ")
}

// StrategyFor returns the strategic brief for a role. Unknown roles fall
// back to the PM brief.
func StrategyFor(role bp.Role) Strategy {
	if s, ok := roleStrategies[role]; ok {
		return s
	}
	return roleStrategies[bp.PM]
}

var roleDuties = map[bp.Role][]string{
	bp.PM:  {"Define motion scope", "Establish government framework", "Present core government arguments", "Set debate tone"},
	bp.LO:  {"Challenge government definitions", "Present alternative framework", "Establish opposition case", "Identify government weaknesses"},
	bp.DPM: {"Defend government framework", "Address opposition challenges", "Extend government arguments", "Reinforce PM's case"},
	bp.DLO: {"Systematic government rebuttal", "Extend opposition arguments", "Crystallize key clashes", "Strengthen opposition case"},
	bp.MG:  {"Support Opening Government", "Introduce new dimensions", "Extend debate scope", "Avoid contradicting OG"},
	bp.MO:  {"Support Opening Opposition", "Counter Closing Government", "Add new opposition angles", "Strengthen opposition bench"},
	bp.GW:  {"Summarize government case", "Final opposition rebuttals", "Comparative weighing", "Close for government"},
	bp.OW:  {"Summarize opposition case", "Final government rebuttals", "Impact weighing", "Close for opposition"},
}

// Duties returns the role's checklist of in-round obligations.
func Duties(role bp.Role) []string {
	if d, ok := roleDuties[role]; ok {
		out := make([]string, len(d))
		copy(out, d)
		return out
	}
	return []string{"Fulfill role responsibilities"}
}

var strategicPriorities = map[bp.Role][]string{
	bp.PM:  {"Set favorable definitions", "Establish strong case theory", "Present core arguments clearly"},
	bp.LO:  {"Challenge government framework", "Present alternative vision", "Establish opposition credibility"},
	bp.DPM: {"Defend PM's framework", "Address opposition concerns", "Extend government case"},
	bp.DLO: {"Systematic government rebuttal", "Extend opposition case", "Crystallize key clashes"},
	bp.MG:  {"Support OG framework", "Introduce new dimensions", "Strengthen government bench"},
	bp.MO:  {"Support OO case", "Counter CG extensions", "Add fresh opposition angles"},
	bp.GW:  {"Summarize government case", "Final opposition rebuttals", "Comparative weighing"},
	bp.OW:  {"Summarize opposition case", "Final clash analysis", "Impact weighing"},
}

// Priorities returns the role's top strategic priorities for the round.
func Priorities(role bp.Role) []string {
	if p, ok := strategicPriorities[role]; ok {
		out := make([]string, len(p))
		copy(out, p)
		return out
	}
	return []string{"Execute role effectively"}
}
