package speech

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// EngagementAnalysis lists the hooks a speaker can engage with: claims to
// reference, arguments to rebut or extend, and live clash points.
type EngagementAnalysis struct {
	DirectReferences []string `json:"directReferences"`
	Rebuttals        []string `json:"rebuttals"`
	Extensions       []string `json:"extensions"`
	ClashPoints      []string `json:"clashPoints"`
}

// EngagementQuality scores how much a generated speech actually engages.
type EngagementQuality struct {
	DirectReferences  int     `json:"directReferences"`
	RebuttalsIncluded int     `json:"rebuttalsIncluded"`
	ClashEngagement   float64 `json:"clashEngagement"`
	OverallScore      float64 `json:"overallScore"`
}

// EngagedResult bundles an engagement-aware speech with its analysis.
type EngagedResult struct {
	Speech             string             `json:"speech"`
	EngagementAnalysis EngagementAnalysis `json:"engagementAnalysis"`
	DebateState        string             `json:"debateState"`
	EngagementQuality  EngagementQuality  `json:"engagementQuality"`
	ClashPoints        []string           `json:"clashPoints"`
}

var argumentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)first argument[^.]*\.?`),
	regexp.MustCompile(`(?i)second argument[^.]*\.?`),
	regexp.MustCompile(`(?i)third argument[^.]*\.?`),
	regexp.MustCompile(`(?i)my argument is[^.]*\.?`),
	regexp.MustCompile(`(?i)i argue that[^.]*\.?`),
	regexp.MustCompile(`(?i)the reason is[^.]*\.?`),
}

var topicArguments = []struct {
	words []string
	label string
}{
	{[]string{"economic"}, "economic argument"},
	{[]string{"rights", "freedom"}, "rights argument"},
	{[]string{"social", "community"}, "social argument"},
	{[]string{"practical", "implementation"}, "practical argument"},
	{[]string{"environment", "climate"}, "environmental argument"},
}

// ExtractKeyArguments pulls up to five argument handles out of a speech:
// explicit argument markers first, then topic labels.
func ExtractKeyArguments(content string) []string {
	var args []string
	for _, pattern := range argumentPatterns {
		for _, m := range pattern.FindAllString(content, -1) {
			args = append(args, strings.TrimSpace(m))
		}
	}

	lower := strings.ToLower(content)
	for _, topic := range topicArguments {
		for _, w := range topic.words {
			if strings.Contains(lower, w) {
				args = append(args, topic.label)
				break
			}
		}
	}

	if len(args) > 5 {
		args = args[:5]
	}
	return args
}

// ExtractKeyClaims returns up to three sentences that carry strong claims.
func ExtractKeyClaims(content string) []string {
	var claims []string
	for _, s := range regexp.MustCompile(`[.!?]+`).Split(content, -1) {
		s = strings.TrimSpace(s)
		lower := strings.ToLower(s)
		if len(lower) > 20 &&
			(strings.Contains(lower, "will") || strings.Contains(lower, "must") ||
				strings.Contains(lower, "should") || strings.Contains(lower, "because") ||
				strings.Contains(lower, "therefore")) {
			claims = append(claims, s)
		}
		if len(claims) == 3 {
			break
		}
	}
	return claims
}

func areClashing(a, b string) bool {
	al, bl := strings.ToLower(a), strings.ToLower(b)
	if strings.Contains(al, "economic") && strings.Contains(bl, "economic") {
		return true
	}
	rights := func(s string) bool { return strings.Contains(s, "rights") || strings.Contains(s, "freedom") }
	if rights(al) && rights(bl) {
		return true
	}
	practical := func(s string) bool { return strings.Contains(s, "practical") || strings.Contains(s, "implementation") }
	if practical(al) && practical(bl) {
		return true
	}
	return false
}

// AnalyzeEngagement scans the previous AI speeches for reference, rebuttal,
// extension and clash opportunities relative to the current speaker.
func AnalyzeEngagement(previous []bp.Speech, userSpeech string, current bp.Role) EngagementAnalysis {
	var ea EngagementAnalysis

	userArgs := ExtractKeyArguments(userSpeech)

	for _, s := range previous {
		if !s.IsAI || s.Role == current {
			continue
		}
		speechArgs := ExtractKeyArguments(s.Content)

		for _, claim := range ExtractKeyClaims(s.Content) {
			ea.DirectReferences = append(ea.DirectReferences, fmt.Sprintf("%s claimed: %q", s.Role, claim))
		}

		if s.Role.Side() != current.Side() {
			for _, arg := range speechArgs {
				ea.Rebuttals = append(ea.Rebuttals, fmt.Sprintf("Counter %s's argument about %s", s.Role, arg))
			}
		} else {
			for _, arg := range speechArgs {
				ea.Extensions = append(ea.Extensions, fmt.Sprintf("Extend %s's point about %s", s.Role, arg))
			}
		}

		for _, userArg := range userArgs {
			for _, speechArg := range speechArgs {
				if areClashing(userArg, speechArg) {
					ea.ClashPoints = append(ea.ClashPoints, fmt.Sprintf("Clash between user's %s and %s's %s", userArg, s.Role, speechArg))
				}
			}
		}
	}

	return ea
}

// DebateState renders a plain-text summary of where the round stands.
func DebateState(motion string, previous []bp.Speech, userSpeech string, current bp.Role) string {
	var b strings.Builder
	b.WriteString("DEBATE STATE SUMMARY:\n\n")
	fmt.Fprintf(&b, "Motion: %s\n\n", motion)

	writeSide := func(header string, speeches []bp.Speech, fallback string) {
		if len(speeches) == 0 {
			return
		}
		b.WriteString(header + "\n")
		for _, s := range speeches {
			points := ExtractKeyArguments(s.Content)
			if len(points) > 2 {
				points = points[:2]
			}
			line := strings.Join(points, ", ")
			if line == "" {
				line = fallback
			}
			fmt.Fprintf(&b, "- %s: %s\n", s.Role, line)
		}
		b.WriteString("\n")
	}

	writeSide("GOVERNMENT POSITION:", bp.BySide(previous, bp.Government), "Core government arguments")
	writeSide("OPPOSITION POSITION:", bp.BySide(previous, bp.Opposition), "Core opposition arguments")

	userPoints := ExtractKeyArguments(userSpeech)
	if len(userPoints) > 2 {
		userPoints = userPoints[:2]
	}
	line := strings.Join(userPoints, ", ")
	if line == "" {
		line = "Your key arguments"
	}
	fmt.Fprintf(&b, "YOUR CONTRIBUTION (%s):\n", strings.ToUpper(string(current.Side())))
	fmt.Fprintf(&b, "- %s: %s\n\n", current.Name(), line)
	fmt.Fprintf(&b, "CURRENT SPEAKER: %s\n", current.Name())

	return b.String()
}

var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)the prime minister`),
	regexp.MustCompile(`(?i)the leader of opposition`),
	regexp.MustCompile(`(?i)the deputy`),
	regexp.MustCompile(`(?i)the member of`),
	regexp.MustCompile(`(?i)they argued`),
	regexp.MustCompile(`(?i)they claimed`),
}

var rebuttalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)however`),
	regexp.MustCompile(`(?i)but`),
	regexp.MustCompile(`(?i)fails because`),
	regexp.MustCompile(`(?i)ignores`),
	regexp.MustCompile(`(?i)overlooks`),
}

func countMatches(s string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		n += len(p.FindAllString(s, -1))
	}
	return n
}

// AssessEngagementQuality scores a generated speech against the engagement
// opportunities that were available.
func AssessEngagementQuality(generated string, ea EngagementAnalysis) EngagementQuality {
	references := countMatches(generated, referencePatterns)
	rebuttals := countMatches(generated, rebuttalPatterns)
	clashEngagement := minf(10, float64(len(ea.ClashPoints))*2+4)

	return EngagementQuality{
		DirectReferences:  references,
		RebuttalsIncluded: rebuttals,
		ClashEngagement:   clashEngagement,
		OverallScore:      minf(10, (float64(references)+float64(rebuttals)+clashEngagement)/3),
	}
}

// NewClashPoints lists up to three clashes the generated speech opens
// against the user's arguments.
func NewClashPoints(generated, userSpeech string) []string {
	var out []string
	userArgs := ExtractKeyArguments(userSpeech)
	for _, speechArg := range ExtractKeyArguments(generated) {
		for _, userArg := range userArgs {
			if areClashing(speechArg, userArg) {
				out = append(out, fmt.Sprintf("New clash: %s vs %s", speechArg, userArg))
			}
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// EngagedSpeech builds an engagement-aware speech and its full analysis.
func (g *Generator) EngagedSpeech(role bp.Role, ctx Context) EngagedResult {
	ea := AnalyzeEngagement(ctx.Previous, ctx.UserSpeech, role)
	state := DebateState(ctx.Motion, ctx.Previous, ctx.UserSpeech, role)

	var text string
	if build, ok := g.engaged[role]; ok {
		text = build(ctx, ea)
	} else {
		text = genericEngagedSpeech(role, ctx, ea)
	}

	return EngagedResult{
		Speech:             text,
		EngagementAnalysis: ea,
		DebateState:        state,
		EngagementQuality:  AssessEngagementQuality(text, ea),
		ClashPoints:        NewClashPoints(text, ctx.UserSpeech),
	}
}
