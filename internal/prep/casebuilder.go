package prep

import (
	"fmt"
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// Argument is one structured argument recovered from the debater's prep
// notes: their own premise, mechanism, evidence, impact, and weighing,
// labelled for the speech.
type Argument struct {
	Title     string `json:"title"`
	Premise   string `json:"premise"`
	Mechanism string `json:"mechanism"`
	Evidence  string `json:"evidence"`
	Impact    string `json:"impact"`
	Weighing  string `json:"weighing"`
}

// Rebuttal is a prepared response to an expected opposing line.
type Rebuttal struct {
	Target   string `json:"target"`
	Response string `json:"response"`
	Evidence string `json:"evidence"`
}

// StructuredCase is the full case assembled from prep notes for one role.
type StructuredCase struct {
	CaseTheory         string     `json:"caseTheory"`
	MainArguments      []Argument `json:"mainArguments"`
	Rebuttals          []Rebuttal `json:"rebuttals"`
	StrategicFramework string     `json:"strategicFramework"`
	RoleSpecificDuties []string   `json:"roleSpecificDuties"`
	WeighingMechanism  string     `json:"weighingMechanism"`
}

// SpeechStructure sketches how the speech should be paced section by
// section.
type SpeechStructure struct {
	Opening    string `json:"opening"`
	Framework  string `json:"framework"`
	Arguments  string `json:"arguments"`
	Rebuttals  string `json:"rebuttals"`
	Conclusion string `json:"conclusion"`
}

// TimingGuidance is the fixed BP speech timing advice.
type TimingGuidance struct {
	TotalTime     string `json:"totalTime"`
	ProtectedTime string `json:"protectedTime"`
	POIWindow     string `json:"poiWindow"`
	Pacing        string `json:"pacing"`
}

// Guidance is the strategic layer around the structured case.
type Guidance struct {
	StrategicPriorities []string        `json:"strategicPriorities"`
	ClashPoints         []string        `json:"clashPoints"`
	SpeechStructure     SpeechStructure `json:"speechStructure"`
	TimingGuidance      TimingGuidance  `json:"timingGuidance"`
}

// QualityMetrics scores the assembled case on a 1-10 scale per axis.
type QualityMetrics struct {
	ArgumentStrength        float64 `json:"argumentStrength"`
	LogicalConsistency      float64 `json:"logicalConsistency"`
	EvidenceQuality         float64 `json:"evidenceQuality"`
	StrategicAlignment      float64 `json:"strategicAlignment"`
	OriginalityPreservation float64 `json:"originalityPreservation"`
}

// CaseResult is the complete response to a prep-notes processing request.
type CaseResult struct {
	StructuredCase     StructuredCase `json:"structuredCase"`
	StrategicGuidance  Guidance       `json:"strategicGuidance"`
	RoleSpecificDuties []string       `json:"roleSpecificDuties"`
	QualityMetrics     QualityMetrics `json:"qualityMetrics"`
}

// argumentTypes are the four families a note can carry arguments in, in
// extraction order.
var argumentTypes = []struct {
	name     string
	triggers []string
}{
	{"economic", []string{"economic", "cost", "money"}},
	{"rights", []string{"right", "freedom", "liberty"}},
	{"social", []string{"social", "community", "society"}},
	{"practical", []string{"implement", "practical", "enforce"}},
}

var fallbackArgumentTitles = map[string]string{
	"economic":  "Economic Impact Analysis",
	"rights":    "Fundamental Rights Consideration",
	"social":    "Social Cohesion Effects",
	"practical": "Implementation Feasibility",
}

// ProcessNotes turns raw prep notes into a structured, role-appropriate
// case with strategic guidance and quality metrics.
func ProcessNotes(notes, motion string, role bp.Role, skillLevel string) CaseResult {
	userArgs := extractUserArguments(notes, motion)
	theory := caseTheoryFromNotes(notes, role, userArgs)
	mainArgs := labelArguments(userArgs)
	rebuttals := strategicRebuttals(notes, role, userArgs)
	framework := strategicFramework(role, uniqueContributions(notes, role))
	weighing := weighingMechanism(userArgs, notes)
	duties := Duties(role)

	structured := StructuredCase{
		CaseTheory:         theory,
		MainArguments:      mainArgs,
		Rebuttals:          rebuttals,
		StrategicFramework: framework,
		RoleSpecificDuties: duties,
		WeighingMechanism:  weighing,
	}

	return CaseResult{
		StructuredCase:     structured,
		StrategicGuidance:  strategicGuidance(role, structured, motion),
		RoleSpecificDuties: Duties(role),
		QualityMetrics:     assessCaseQuality(structured),
	}
}

// extractUserArguments scans the notes for each argument family and
// keeps the debater's own sentences where they exist. Sparse notes are
// padded with fallback arguments so the case always carries at least two.
func extractUserArguments(notes, motion string) []Argument {
	lower := strings.ToLower(notes)
	var args []Argument

	for _, at := range argumentTypes {
		if !containsAnyOf(lower, at.triggers) {
			continue
		}
		args = append(args, Argument{
			Title:     extractArgumentTitle(notes, at.name),
			Premise:   extractSentenceWith(notes, at.name, []string{"will", "should"}, fmt.Sprintf("The user's %s premise from their preparation notes", at.name)),
			Mechanism: extractSentenceWith(notes, at.name, []string{"because", "through", "mechanism", "how"}, fmt.Sprintf("The mechanism operates through the user's identified %s pathway", at.name)),
			Evidence:  extractSentenceWith(notes, at.name, []string{"example", "evidence", "study", "research", "data"}, fmt.Sprintf("Evidence supporting the user's %s argument as outlined in their notes", at.name)),
			Impact:    extractSentenceWith(notes, at.name, []string{"impact", "consequence", "result", "effect"}, fmt.Sprintf("The %s impact as identified in the user's analysis", at.name)),
			Weighing:  extractSentenceWith(notes, at.name, []string{"important", "crucial", "matters", "priority"}, fmt.Sprintf("This %s consideration is weighted according to the user's strategic priorities", at.name)),
		})
	}

	if len(args) == 0 {
		args = append(args, fallbackArgument(1))
	}
	if len(args) == 1 {
		args = append(args, fallbackArgument(2))
	}
	if len(args) > 3 {
		args = args[:3]
	}
	return args
}

func containsAnyOf(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func extractArgumentTitle(notes, argType string) string {
	for _, sentence := range splitNoteSentences(notes) {
		lower := strings.ToLower(sentence)
		if strings.Contains(lower, argType) && (strings.Contains(lower, "argument") || strings.Contains(lower, "because")) {
			trimmed := strings.TrimSpace(sentence)
			if len(trimmed) > 60 {
				return trimmed[:60] + "..."
			}
			return trimmed
		}
	}
	if title, ok := fallbackArgumentTitles[argType]; ok {
		return title
	}
	return "Core Argument"
}

// extractSentenceWith returns the first sentence mentioning the argument
// type together with one of the cue words, or the fallback.
func extractSentenceWith(notes, argType string, cues []string, fallback string) string {
	for _, sentence := range splitNoteSentences(notes) {
		lower := strings.ToLower(sentence)
		if !strings.Contains(lower, argType) {
			continue
		}
		for _, cue := range cues {
			if strings.Contains(lower, cue) {
				return strings.TrimSpace(sentence)
			}
		}
	}
	return fallback
}

func splitNoteSentences(notes string) []string {
	return strings.FieldsFunc(notes, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

func fallbackArgument(index int) Argument {
	ordinal := "secondary"
	if index == 1 {
		ordinal = "primary"
	}
	return Argument{
		Title:     fmt.Sprintf("Argument %d from your notes", index),
		Premise:   fmt.Sprintf("Your %s premise as outlined in preparation", ordinal),
		Mechanism: "The mechanism you identified in your prep notes",
		Evidence:  "Evidence and examples from your preparation",
		Impact:    "Impact analysis from your notes",
		Weighing:  "Weighing considerations from your preparation",
	}
}

// caseTheoryFromNotes prefers the debater's own stated theory (a
// sentence carrying "because", "theory", or "approach") over a generated
// one.
func caseTheoryFromNotes(notes string, role bp.Role, userArgs []Argument) string {
	var theory string
	for _, sentence := range splitNoteSentences(notes) {
		lower := strings.ToLower(sentence)
		if strings.Contains(lower, "because") || strings.Contains(lower, "theory") || strings.Contains(lower, "approach") {
			theory = strings.TrimSpace(sentence)
			break
		}
	}

	if theory == "" {
		primary := "policy analysis"
		if len(userArgs) > 0 && userArgs[0].Title != "" {
			primary = userArgs[0].Title
		}
		if role.IsGovernment() {
			theory = fmt.Sprintf("This motion should be supported because %s demonstrates clear benefits that outweigh concerns", strings.ToLower(primary))
		} else {
			theory = fmt.Sprintf("This motion should be opposed because %s reveals fundamental problems that cannot be adequately addressed", strings.ToLower(primary))
		}
	}

	return "Case Theory (based on your prep notes): " + theory
}

func labelArguments(args []Argument) []Argument {
	out := make([]Argument, len(args))
	for i, arg := range args {
		out[i] = Argument{
			Title:     fmt.Sprintf("Argument %d: %s", i+1, arg.Title),
			Premise:   "Your premise: " + arg.Premise,
			Mechanism: "Your mechanism: " + arg.Mechanism,
			Evidence:  "Your evidence: " + arg.Evidence,
			Impact:    "Your impact analysis: " + arg.Impact,
			Weighing:  "Your weighing: " + arg.Weighing,
		}
	}
	return out
}

func strategicRebuttals(notes string, role bp.Role, userArgs []Argument) []Rebuttal {
	var rebuttals []Rebuttal
	lower := strings.ToLower(notes)

	if role == bp.LO || role == bp.DLO {
		response := "Challenge the government's framework using the approach you've developed in your prep notes"
		if strings.Contains(lower, "definition") || strings.Contains(lower, "framework") {
			response = "Based on your notes, challenge the government's definitional framework as outlined in your preparation"
		}
		rebuttals = append(rebuttals, Rebuttal{
			Target:   "Government Framework",
			Response: response,
			Evidence: "Evidence from your prep notes supporting your framework rebuttal approach",
		})
	}

	if role == bp.DPM || role == bp.GW {
		response := "Respond to opposition challenges using your prepared defense strategy"
		if strings.Contains(lower, "response") || strings.Contains(lower, "counter") {
			response = "Address opposition concerns using the counter-arguments you've prepared in your notes"
		}
		rebuttals = append(rebuttals, Rebuttal{
			Target:   "Opposition Challenges",
			Response: response,
			Evidence: "Evidence from your prep notes supporting your opposition rebuttal approach",
		})
	}

	for _, arg := range userArgs {
		var response string
		if role.IsGovernment() {
			response = fmt.Sprintf("Counter the opposition's challenge to your %s using your prepared responses", strings.ToLower(arg.Title))
		} else {
			response = fmt.Sprintf("Challenge the government's %s using your critical analysis from prep notes", strings.ToLower(arg.Title))
		}
		rebuttals = append(rebuttals, Rebuttal{
			Target:   "Counter to " + arg.Title,
			Response: response,
			Evidence: "Supporting evidence from your notes: " + arg.Evidence,
		})
	}

	if len(rebuttals) > 3 {
		rebuttals = rebuttals[:3]
	}
	return rebuttals
}

// uniqueContributions names what the notes suggest this debater brings
// that nobody else on the bench will.
func uniqueContributions(notes string, role bp.Role) []string {
	lower := strings.ToLower(notes)
	var contributions []string

	if role == bp.LO && strings.Contains(lower, "challenge") {
		contributions = append(contributions, "Framework challenge approach")
	}
	if role == bp.DPM && strings.Contains(lower, "extend") {
		contributions = append(contributions, "Case extension strategy")
	}
	if (role == bp.MG || role == bp.MO) && strings.Contains(lower, "new") {
		contributions = append(contributions, "New dimensional analysis")
	}
	if strings.Contains(lower, "stakeholder") {
		contributions = append(contributions, "Stakeholder analysis approach")
	}
	if strings.Contains(lower, "alternative") {
		contributions = append(contributions, "Alternative solution framework")
	}
	return contributions
}

var roleFrameworks = map[bp.Role]string{
	bp.PM:  "Establish clear definitions and framework while presenting your strongest arguments as outlined in your prep notes",
	bp.LO:  "Challenge the government framework and establish your alternative approach based on your prepared critique",
	bp.DPM: "Defend the PM's framework while extending the case with your additional arguments from prep notes",
	bp.DLO: "Systematically rebut government responses while extending opposition case using your prepared analysis",
	bp.MG:  "Support OG while introducing your unique dimensional analysis as prepared in your notes",
	bp.MO:  "Support OO while adding your distinct opposition angles from your preparation",
	bp.GW:  "Summarize government case and provide final weighing using your prepared comparative analysis",
	bp.OW:  "Summarize opposition case and provide final impact analysis based on your prepared framework",
}

func strategicFramework(role bp.Role, contributions []string) string {
	base, ok := roleFrameworks[role]
	if !ok {
		base = "Execute your role-specific strategy"
	}
	if len(contributions) > 0 {
		return base + " Focus on: " + strings.Join(contributions, ", ")
	}
	return base
}

func weighingMechanism(userArgs []Argument, notes string) string {
	lower := strings.ToLower(notes)
	if strings.Contains(lower, "weigh") || strings.Contains(lower, "priority") || strings.Contains(lower, "important") {
		return "Use the weighing priorities you've established in your prep notes to compare arguments"
	}

	for _, arg := range userArgs {
		if strings.Contains(strings.ToLower(arg.Title), "rights") {
			return "Weigh fundamental rights considerations against practical outcomes as outlined in your notes"
		}
	}
	for _, arg := range userArgs {
		if strings.Contains(strings.ToLower(arg.Title), "economic") {
			return "Use cost-benefit analysis and economic impact weighing from your preparation"
		}
	}
	return "Apply the comparative weighing framework you've developed in your prep notes"
}

func strategicGuidance(role bp.Role, structured StructuredCase, motion string) Guidance {
	return Guidance{
		StrategicPriorities: Priorities(role),
		ClashPoints:         expectedClashPoints(motion),
		SpeechStructure:     speechStructure(role, structured),
		TimingGuidance: TimingGuidance{
			TotalTime:     "7 minutes maximum",
			ProtectedTime: "First and last minute - no POIs",
			POIWindow:     "Minutes 2-6 - accept 1-2 POIs maximum",
			Pacing:        "Aim for 5-6 minutes to allow for questions",
		},
	}
}

func expectedClashPoints(motion string) []string {
	lower := strings.ToLower(motion)
	switch {
	case strings.Contains(lower, "ban"):
		return []string{"Enforcement feasibility", "Individual liberty vs collective harm", "Alternative solutions"}
	case strings.Contains(lower, "tax"):
		return []string{"Economic efficiency", "Distributional justice", "Implementation costs"}
	default:
		return []string{"Policy effectiveness", "Stakeholder impacts", "Unintended consequences"}
	}
}

func speechStructure(role bp.Role, structured StructuredCase) SpeechStructure {
	framework := "Brief framework reference"
	if role == bp.PM || role == bp.LO {
		framework = "Establish/challenge framework (1-2 minutes)"
	}
	rebuttals := "Minimal rebuttal"
	if len(structured.Rebuttals) > 0 {
		rebuttals = "Address opposing arguments (1-2 minutes)"
	}
	return SpeechStructure{
		Opening:    "Thank you Chair, brief role introduction",
		Framework:  framework,
		Arguments:  fmt.Sprintf("Present %d main arguments (3-4 minutes)", len(structured.MainArguments)),
		Rebuttals:  rebuttals,
		Conclusion: "Summarize and weigh (30 seconds)",
	}
}

func assessCaseQuality(structured StructuredCase) QualityMetrics {
	evidenceCount := 0
	for _, arg := range structured.MainArguments {
		if len(arg.Evidence) > 50 {
			evidenceCount++
		}
	}
	return QualityMetrics{
		ArgumentStrength:        minMetric(float64(len(structured.MainArguments)*2 + 4)),
		LogicalConsistency:      8,
		EvidenceQuality:         minMetric(float64(evidenceCount*3 + 4)),
		StrategicAlignment:      7,
		OriginalityPreservation: 8,
	}
}

func minMetric(v float64) float64 {
	if v > 10 {
		return 10
	}
	return v
}
