package speech

import (
	"fmt"
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

type engagedFunc func(Context, EngagementAnalysis) string

// argAt returns the nth extracted user argument, or the fallback when the
// user gave fewer handles than the template needs.
func argAt(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

func topUserArgs(userSpeech string) []string {
	args := ExtractKeyArguments(userSpeech)
	if len(args) > 2 {
		args = args[:2]
	}
	return args
}

func directRebuttals(refs []string) string {
	if len(refs) == 0 {
		return "The Prime Minister's arguments lack the foundation necessary to support this motion."
	}
	if len(refs) > 2 {
		refs = refs[:2]
	}
	lines := make([]string, len(refs))
	for i, ref := range refs {
		lines[i] = ref + " - but this analysis is fundamentally flawed because..."
	}
	return strings.Join(lines, "\n\n")
}

func engagedRebuttals(userArgs []string) string {
	if len(userArgs) == 0 {
		return "The PM's arguments lack empirical support and ignore crucial implementation challenges."
	}
	var b strings.Builder
	for i, arg := range userArgs {
		fmt.Fprintf(&b, "\n**Rebuttal %d: %s**\n", i+1, arg)
		b.WriteString("The PM's argument fails because it ignores crucial counterevidence and relies on unsubstantiated assumptions.\n")
	}
	return b.String()
}

func oppositionResponse(refs []string) string {
	if len(refs) > 2 {
		refs = refs[:2]
	}
	lines := make([]string, len(refs))
	for i, ref := range refs {
		lines[i] = fmt.Sprintf("Regarding %s: This challenge misunderstands our core mechanism...", ref)
	}
	return strings.Join(lines, "\n\n")
}

func pick(options []string, i int, fallback string) string {
	if i-1 < len(options) {
		return options[i-1]
	}
	return fallback
}

func oppositionArgumentTitle(i int) string {
	return pick([]string{"Enforcement Impossibility", "Stakeholder Harm Analysis", "Superior Alternatives"}, i, fmt.Sprintf("Opposition Argument %d", i))
}

func govExtensionTitle(i int) string {
	return pick([]string{"International Competitiveness", "Long-term Sustainability", "Stakeholder Empowerment"}, i, fmt.Sprintf("Government Extension %d", i))
}

func oppExtensionTitle(i int) string {
	return pick([]string{"Democratic Legitimacy Crisis", "Intergenerational Justice", "Cultural Impact Analysis"}, i, fmt.Sprintf("Opposition Extension %d", i))
}

func userCentralClaim(userSpeech string) string {
	claims := ExtractKeyClaims(userSpeech)
	if len(claims) > 0 {
		return claims[0]
	}
	return "theoretical benefits without concrete evidence"
}

func buildLOEngaged(ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	return fmt.Sprintf(`Thank you, Chair. As Leader of the Opposition, I rise to fundamentally challenge the motion: "%s"

**DIRECT RESPONSE TO PRIME MINISTER**

The Prime Minister just argued %s, but I'm afraid their analysis contains critical flaws that undermine their entire case.

%s

**SYSTEMATIC CHALLENGE TO GOVERNMENT FRAMEWORK**

Let me address the PM's core arguments directly:
%s
**OPPOSITION CASE: WHY THIS MOTION FAILS**

Beyond merely responding to the government, I present three fundamental reasons why this motion is not just wrong, but actively harmful:

**First Opposition Argument: %s**

This directly contradicts the PM's claim that %s. The mechanism actually operates in reverse...

**Second Opposition Argument: %s**

While the PM focused on %s, they ignored the practical reality that...

**Third Opposition Argument: %s**

The PM's entire framework fails because...

**WEIGHING AND CONCLUSION**

The Prime Minister asks us to accept their vision based on %s, but we have demonstrated concrete, measurable harms that will result.

The fundamental clash here is clear: they believe policy intervention will solve complex social problems, while we have shown such interventions create more problems than they solve.

For these reasons, we firmly oppose this motion.

Thank you.`,
		ctx.Motion,
		argAt(userArgs, 0, "for this motion"),
		directRebuttals(ea.DirectReferences),
		engagedRebuttals(userArgs),
		oppositionArgumentTitle(1),
		argAt(userArgs, 0, "their policy will work"),
		oppositionArgumentTitle(2),
		argAt(userArgs, 1, "theoretical benefits"),
		oppositionArgumentTitle(3),
		userCentralClaim(ctx.UserSpeech))
}

func buildDPMEngaged(ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	return fmt.Sprintf(`Thank you, Chair. As Deputy Prime Minister, I rise to reinforce our framework while directly addressing the Leader of Opposition's challenges.

**DEFENDING THE PRIME MINISTER'S CASE**

The Leader of Opposition attempted to undermine the PM's arguments about %s, but their challenges fail for several critical reasons:

The opposition's challenges ignore the practical realities of implementation and the documented success of similar policies.

**SYSTEMATIC RESPONSE TO OPPOSITION CHALLENGES**

Let me address each of the LO's specific attacks:

%s

**EXTENDING THE GOVERNMENT CASE**

Beyond defending our position, I present additional substantive material that strengthens our case:

**Government Extension 1: %s**

This builds on the PM's argument about %s by demonstrating...

**Government Extension 2: %s**

While the PM established %s, I want to extend this analysis to show...

**STRATEGIC ANALYSIS OF OPPOSITION APPROACH**

The Opposition's strategy is clear: they want to focus on theoretical problems while ignoring practical solutions while ignoring the concrete benefits and safeguards we've outlined.

This approach fails because it fundamentally misunderstands the balance between individual concerns and collective welfare.

**CONCLUSION**

The Opposition has failed to address our core arguments while we have demonstrated both the necessity and feasibility of this motion.

Our case stands stronger than ever.

Thank you.`,
		argAt(userArgs, 0, "our core case"),
		oppositionResponse(ea.DirectReferences),
		govExtensionTitle(1),
		argAt(userArgs, 0, "our first point"),
		govExtensionTitle(2),
		argAt(userArgs, 1, "our framework"))
}

func buildDLOEngaged(ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	return fmt.Sprintf(`Thank you, Chair. As Deputy Leader of Opposition, I will systematically dismantle the government's responses while extending our opposition case.

**GOVERNMENT RESPONSES FAIL**

The Deputy Prime Minister claimed to address our concerns about %s, but their responses are fundamentally inadequate:

Their framework defense ignores practical implementation realities and fails to address our core concerns.

**SYSTEMATIC REBUTTAL OF GOVERNMENT CASE**

Let me address the government's arguments systematically:

Each government argument fails systematic analysis and relies on unsubstantiated assumptions.

**EXTENDING THE OPPOSITION CASE**

Building upon the Leader of Opposition's foundation, I present additional analysis:

**Opposition Extension 1: %s**

This deepens our analysis of why the PM's argument about %s fails...

**Opposition Extension 2: %s**

Beyond the LO's critique of %s, I demonstrate...

**CRYSTALLIZING THE CLASH**

The fundamental clash in this debate is now clear: between the government's technocratic faith and our evidence-based analysis of implementation realities

The government wants us to believe technical solutions can solve complex social problems, but this ignores the political and social context that determines policy success.

**CONCLUSION**

The government's case crumbles under systematic analysis. They have failed to address our core concerns while we have demonstrated why this motion is fundamentally flawed.

Thank you.`,
		argAt(userArgs, 0, "their policy"),
		oppExtensionTitle(1),
		argAt(userArgs, 0, "their first point"),
		oppExtensionTitle(2),
		argAt(userArgs, 1, "government framework"))
}

func buildMGEngaged(ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	return fmt.Sprintf(`Thank you, Chair. As Member of Government, I bring a fresh perspective while supporting the Opening Government's framework.

**SUPPORTING OPENING GOVERNMENT**

The Opening Government established a solid foundation with their arguments about %s and %s.

I want to reinforce their analysis by providing additional evidence and extending their impact analysis.

**RESPONDING TO OPENING OPPOSITION**

The Opening Opposition raised concerns, but they fail to account for crucial dimensions that I will now explore:

The opposition's concerns actually highlight additional problems they hadn't considered

**NEW GOVERNMENT DIMENSION: Intergenerational Justice and Future Sustainability**

This angle is crucial because the Opening Government couldn't fully explore the long-term consequences for future generations in their time.

**CG Argument 1: Future-focused analysis 1**

This extends beyond the PM's focus on %s to demonstrate...

**CG Argument 2: Future-focused analysis 2**

While the DPM addressed %s, I want to show how...

**CLOSING GOVERNMENT STRATEGY**

As Closing Government, we occupy a unique position. We can see both the Opening Government's framework and the Opposition's concerns, allowing us to present a more complete analysis.

The Opposition bench has focused on immediate implementation concerns, but they've missed the broader strategic implications.

**CONCLUSION**

Together with the Opening Government, we present a comprehensive case that addresses both immediate concerns and long-term implications.

Thank you.`,
		argAt(userArgs, 0, "core policy benefits"),
		argAt(userArgs, 1, "implementation strategy"),
		argAt(userArgs, 0, "immediate benefits"),
		argAt(userArgs, 1, "opposition concerns"))
}

func buildMOEngaged(ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	return fmt.Sprintf(`Thank you, Chair. As Member of Opposition, I stand with the Opening Opposition while bringing crucial new analysis.

**SUPPORTING OPENING OPPOSITION**

The Opening Opposition correctly identified the fundamental flaws in this motion. The LO's argument about %s and the DLO's extension regarding %s form a solid foundation.

I reinforce their analysis by strengthening their core arguments with additional analysis.

**RESPONDING TO CLOSING GOVERNMENT**

The Member of Government attempted to introduce new dimensions, but their new dimensions actually reinforce our concerns.

Their argument about long-term benefits actually strengthens our case because...

**NEW OPPOSITION DIMENSION: Cultural and Community Impact**

This critical angle hasn't been fully explored: the disruption to existing social structures.

**CO Argument 1: Community impact analysis 1**

This builds on the OO's analysis of %s by demonstrating...

**CO Argument 2: Community impact analysis 2**

Beyond the Opening Opposition's critique of %s, I show how...

**CLOSING OPPOSITION STRATEGY**

As Closing Opposition, we must demonstrate why even the government's extended case fails to justify this motion.

The government bench has tried to expand their case with new dimensions, but they cannot escape the fundamental problems we've identified.

**CONCLUSION**

The government bench, despite their attempts to shore up their case, has failed to address the core issues we've raised.

Thank you.`,
		argAt(userArgs, 0, "policy failure"),
		argAt(userArgs, 1, "implementation problems"),
		argAt(userArgs, 0, "government failure"),
		argAt(userArgs, 1, "policy framework"))
}

func buildGWEngaged(ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	return fmt.Sprintf(`Thank you, Chair. As Government Whip, I have the privilege of summarizing our case and providing final analysis.

**GOVERNMENT CASE SUMMARY**

Throughout this debate, the government bench has presented a comprehensive case:

The Prime Minister established %s and demonstrated %s.

The Deputy Prime Minister reinforced this by defending our framework and extending our analysis while addressing opposition concerns.

The Member of Government extended our case with crucial new dimensions of analysis, showing dimensions the Opening Government couldn't fully explore.

**FINAL RESPONSE TO OPPOSITION**

Let me address the opposition's arguments systematically:

Their concerns are either manageable through proper implementation or outweighed by clear benefits

**COMPARATIVE WEIGHING**

When we weigh the arguments presented by both sides:

The government has provided concrete mechanisms while the opposition relies on speculative harms

**FINAL GOVERNMENT ARGUMENTS**

Even accepting opposition concerns, the benefits clearly justify this policy

**CONCLUSION**

Chair, this debate has demonstrated that %s is not just beneficial, but essential.

The opposition's concerns are either manageable or outweighed by the significant benefits we've outlined.

The choice is clear. We must support this motion.

Thank you.`,
		argAt(userArgs, 0, "our core framework"),
		argAt(userArgs, 1, "policy necessity"),
		strings.ToLower(ctx.Motion))
}

func buildOWEngaged(ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	return fmt.Sprintf(`Thank you, Chair. As Opposition Whip, I will summarize our case and demonstrate why this motion must be rejected.

**OPPOSITION CASE SUMMARY**

The opposition bench has presented a devastating critique:

The Leader of Opposition showed %s and established %s.

The Deputy Leader systematically dismantled government responses by systematically dismantling government responses.

The Member of Opposition brought crucial new analysis showing additional dimensions of harm.

**GOVERNMENT CASE FAILURES**

Despite their attempts, the government has failed to address our core concerns:

They have not provided adequate evidence, their mechanisms are unsound, and their responses are superficial

**FINAL CLASH ANALYSIS**

The fundamental clash in this debate is between government faith in technocratic solutions and our evidence-based analysis.

**IMPACT WEIGHING**

When we consider the real-world impacts:

The harms we've identified are concrete and immediate, while government benefits are speculative and distant

**FINAL OPPOSITION ARGUMENTS**

The government has failed to meet their burden of proof while we have demonstrated measurable harms

**CONCLUSION**

Chair, this motion is fundamentally flawed. The government has failed to meet their burden of proof while we have demonstrated significant harms.

We urge you to reject this motion.

Thank you.`,
		argAt(userArgs, 0, "fundamental policy flaws"),
		argAt(userArgs, 1, "our alternative framework"))
}

func genericEngagedSpeech(role bp.Role, ctx Context, ea EngagementAnalysis) string {
	userArgs := topUserArgs(ctx.UserSpeech)

	engagement := "Previous speakers have raised important points that I will address"
	if len(ea.DirectReferences) > 0 {
		refs := ea.DirectReferences
		if len(refs) > 2 {
			refs = refs[:2]
		}
		engagement = strings.Join(refs, "\n\n")
	}

	conclusion := "For these reasons, we oppose this motion"
	if role.IsGovernment() {
		conclusion = "For these reasons, we support this motion"
	}

	return fmt.Sprintf(`Thank you, Chair. As %s, I will engage directly with the arguments presented.

**DIRECT ENGAGEMENT WITH PREVIOUS SPEAKERS**

%s

**MY CONTRIBUTION TO THE DEBATE**

As %s, I contribute %s to this debate

**CONCLUSION**

%s

Thank you.`, role.Name(), engagement, role.Name(), strings.Join(userArgs, " and "), conclusion)
}
