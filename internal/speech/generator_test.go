package speech

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

func newTestGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(1)))
}

func testContext() Context {
	userSpeech := "First argument: the economic cost is too high. Therefore this ban must fail."
	return Context{
		Motion:        "This house would ban gambling",
		UserRole:      bp.PM,
		UserSpeech:    userSpeech,
		UserArguments: analysis.KeywordClassifier{}.Classify(userSpeech),
		SkillLevel:    "intermediate",
	}
}

func TestSpeechForEveryRole(t *testing.T) {
	g := newTestGenerator()
	ctx := testContext()

	for _, role := range bp.AllRoles() {
		text := g.Speech(role, ctx)
		if text == "" {
			t.Fatalf("%s: empty speech", role)
		}
		if !strings.HasPrefix(text, "Thank you, Chair.") {
			t.Errorf("%s: speech missing standard opening", role)
		}
		if !strings.Contains(text, "Thank you.") {
			t.Errorf("%s: speech missing closing", role)
		}
	}
}

func TestSpeechUnknownRoleFallsBack(t *testing.T) {
	g := newTestGenerator()
	text := g.Speech(bp.Role("XX"), testContext())
	if !strings.Contains(text, "This house would ban gambling") {
		t.Errorf("generic speech should quote the motion: %q", text)
	}
}

func TestPMSpeechMotionFraming(t *testing.T) {
	g := newTestGenerator()
	text := g.Speech(bp.PM, testContext())
	if !strings.Contains(text, "comprehensive prohibition") {
		t.Errorf("ban motion should trigger prohibition framing")
	}
	for _, section := range []string{"**First Argument:", "**Second Argument:", "**Third Argument:"} {
		if !strings.Contains(text, section) {
			t.Errorf("PM speech missing section %q", section)
		}
	}
}

func TestLOSpeechEngagesUserArguments(t *testing.T) {
	g := newTestGenerator()
	ctx := testContext()
	text := g.Speech(bp.LO, ctx)

	if !strings.Contains(text, "**Rebuttal 1:") {
		t.Errorf("LO speech should rebut user arguments")
	}
	// Economic user argument: rebuttal names the category.
	if !strings.Contains(text, "Economic Argument") {
		t.Errorf("LO rebuttal should name the economic argument")
	}

	// Without user arguments the rebuttal section degrades to a fallback.
	empty := ctx
	empty.UserArguments = nil
	text = g.Speech(bp.LO, empty)
	if !strings.Contains(text, "lack empirical support") {
		t.Errorf("LO speech without arguments should use fallback rebuttal")
	}
}

func TestFrameworkFor(t *testing.T) {
	ctx := testContext()
	fw := FrameworkFor(bp.LO, ctx)
	if fw.CaseTheory != "Challenge enforcement feasibility and propose harm reduction alternatives" {
		t.Errorf("LO case theory for ban motion = %q", fw.CaseTheory)
	}
	if len(fw.Burdens) != 3 {
		t.Errorf("LO burdens = %v", fw.Burdens)
	}
	// Economic user argument adds its clash point.
	found := false
	for _, c := range fw.ClashPoints {
		if c == "Economic impact analysis" {
			found = true
		}
	}
	if !found {
		t.Errorf("LO clash points missing economic entry: %v", fw.ClashPoints)
	}

	mg := FrameworkFor(bp.MG, ctx)
	if len(mg.Extensions) == 0 {
		t.Errorf("MG framework should carry extensions")
	}
}

func TestEngagedSpeechResult(t *testing.T) {
	g := newTestGenerator()
	ctx := testContext()
	ctx.Previous = []bp.Speech{
		{Role: bp.PM, Content: "First argument: the economic case is clear because markets will adapt.", IsAI: true},
	}

	res := g.EngagedSpeech(bp.LO, ctx)
	if res.Speech == "" {
		t.Fatal("empty engaged speech")
	}
	if len(res.EngagementAnalysis.DirectReferences) == 0 {
		t.Errorf("PM claim should produce a direct reference")
	}
	if len(res.EngagementAnalysis.Rebuttals) == 0 {
		t.Errorf("opposing AI speech should produce rebuttal opportunities")
	}
	if !strings.Contains(res.DebateState, "DEBATE STATE SUMMARY:") {
		t.Errorf("missing debate state header")
	}
	if res.EngagementQuality.OverallScore < 0 || res.EngagementQuality.OverallScore > 10 {
		t.Errorf("overall engagement score %v out of range", res.EngagementQuality.OverallScore)
	}
	if len(res.ClashPoints) > 3 {
		t.Errorf("clash points exceed 3: %v", res.ClashPoints)
	}
}

func TestExtractKeyArgumentsAndClaims(t *testing.T) {
	content := "First argument: this is about economic freedom. I argue that communities will suffer. Short."
	args := ExtractKeyArguments(content)
	if len(args) == 0 || len(args) > 5 {
		t.Fatalf("args = %v", args)
	}

	claims := ExtractKeyClaims(content)
	if len(claims) == 0 || len(claims) > 3 {
		t.Fatalf("claims = %v", claims)
	}
	for _, c := range claims {
		if len(c) <= 20 {
			t.Errorf("claim too short to be strong: %q", c)
		}
	}
}
