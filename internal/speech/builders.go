package speech

import (
	"fmt"
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

func buildPM(ctx Context, fw Framework) string {
	return fmt.Sprintf(`Thank you, Chair. As Prime Minister, I rise to propose the motion: "%s".

We believe that this motion is not just necessary, but profoundly beneficial for a multitude of reasons. Our case today will establish a clear framework for understanding this debate, and present compelling arguments for why you must affirm our proposal.

**DEFINING THE MOTION AND OUR FRAMEWORK**

%s

**THE GOVERNMENT'S CASE: THREE CORE ARGUMENTS**

Let me present our foundational arguments for this motion:
%s
**OUR VISION**

Ultimately, our vision for this motion is a future where our communities are stronger, our economy is more dynamic, and individual well-being is enhanced. We believe this policy is a crucial step towards building a more resilient and equitable society.

For these reasons, we proudly propose this motion and urge you to support it.

Thank you.`, ctx.Motion, pmDefinitionAndFramework(ctx.Motion), pmArguments(ctx.Motion))
}

func buildLO(ctx Context, fw Framework) string {
	return fmt.Sprintf(`Thank you, Chair. As Leader of the Opposition, I rise to fundamentally challenge the motion: "%s"

The Prime Minister has presented what appears to be a coherent case, but I'm afraid their analysis contains critical flaws that render their entire framework unsustainable.

**DEFINITIONAL CHALLENGE AND FRAMEWORK CRITIQUE**

%s

%s

Instead, we must understand this motion through the lens of %s.

**SYSTEMATIC REBUTTAL OF GOVERNMENT CASE**

Let me address the PM's arguments directly:

%s

**OPPOSITION CASE: THE FUNDAMENTAL PROBLEMS**

Beyond merely responding to the government, I present three core reasons why this motion is not just misguided, but actively harmful:
%s
**WEIGHING AND CONCLUSION**

The fundamental question is whether we accept the government's theoretical benefits despite concrete, measurable harms. Their case relies on optimistic assumptions about implementation while ignoring the documented failures of similar policies. Our case demonstrates that the risks are not just probable, but inevitable given the structural problems we've identified.

The government asks us to accept their vision based on theoretical benefits, but we have demonstrated concrete, measurable harms that will result from this policy.

For these reasons, we firmly oppose this motion.

Thank you.`,
		ctx.Motion,
		definitionalChallenge(ctx.Motion),
		frameworkCritique(ctx.UserArguments),
		alternativeFramework(ctx.Motion, ctx.UserArguments),
		systematicRebuttals(ctx.UserArguments),
		oppositionArguments(ctx.Motion, ctx.UserArguments))
}

func buildDPM(ctx Context, fw Framework) string {
	return `Thank you, Chair. As Deputy Prime Minister, I rise to reinforce our framework while directly addressing the opposition's challenges and extending our case with crucial additional analysis.

**DEFENDING OUR FRAMEWORK**

The Leader of Opposition attempted to undermine our definitional approach, but their alternative framework fails for several critical reasons:

The opposition's alternative framework is internally inconsistent and would create arbitrary implementation standards that violate rule of law principles.

**SYSTEMATIC RESPONSE TO OPPOSITION**

Let me address each of the LO's challenges directly:

Their definitional challenges ignore practical realities. Their alternative framework lacks enforcement mechanisms. Their systematic rebuttals rely on cherry-picked evidence that ignores broader empirical patterns.

**EXTENDING THE GOVERNMENT CASE**

Beyond defending our position, I present additional substantive material that strengthens our case:

**New Argument: International Competitiveness and Global Standards**

This policy positions us as a global leader in addressing shared challenges. The mechanism operates through international coordination that creates positive spillover effects. Evidence from OECD countries shows that early adopters gain competitive advantages in emerging markets.

This matters because global challenges require coordinated responses, and leadership positions create long-term strategic benefits.

**STRATEGIC ANALYSIS**

The opposition's strategy relies on fear-mongering about implementation challenges while offering no viable alternatives to address the underlying problems that necessitate this policy.

The opposition's strategy relies on theoretical concerns while ignoring the concrete benefits and practical safeguards we've outlined.

Our case demonstrates both the necessity and feasibility of this motion.

Thank you.`
}

func buildDLO(ctx Context, fw Framework) string {
	return `Thank you, Chair. As Deputy Leader of Opposition, I will systematically dismantle the government's responses while extending our opposition case with crucial additional analysis.

**GOVERNMENT RESPONSES FAIL**

The Deputy Prime Minister claimed to address our concerns, but their responses are fundamentally inadequate:

First, their framework defense ignores the practical implementation problems we identified. Second, their rebuttals to our arguments are superficial and don't address the underlying mechanisms. Third, their extensions actually strengthen our case by highlighting additional areas of concern.

**EXTENDING THE OPPOSITION CASE**

Building upon the Leader of Opposition's foundation, I present additional analysis that strengthens our case:

**Extension 1: Democratic Legitimacy Crisis**

This policy undermines democratic legitimacy by excluding affected stakeholders from meaningful participation in policy design.

**Extension 2: Intergenerational Justice**

The long-term consequences disproportionately burden future generations who have no voice in current policy decisions.

**CRYSTALLIZING THE CLASH**

The fundamental clash is between the government's technocratic faith in policy solutions and our evidence-based analysis of implementation realities. They want us to accept theoretical benefits while ignoring documented patterns of policy failure.

**CONCLUSION**

The government's case crumbles under systematic analysis. They have failed to address our core concerns while we have demonstrated why this motion is fundamentally flawed.

Thank you.`
}

func buildMG(ctx Context, fw Framework) string {
	return `Thank you, Chair. As Member of Government, I bring a fresh perspective to this debate while supporting the Opening Government's framework.

**SUPPORTING OPENING GOVERNMENT**

The Opening Government established a solid foundation, and I want to reinforce their analysis by:

reinforcing their framework with additional evidence and extending their impact analysis to previously unconsidered stakeholder groups.

**NEW DIMENSIONS: EXTENDING THE DEBATE**

However, there are crucial aspects of this motion that the Opening Government couldn't fully explore in their time:

**New Dimension: Intergenerational Justice and Future Sustainability**

The Opening Government focused on immediate impacts, but we must consider how this policy affects future generations and long-term institutional development.

**CLOSING GOVERNMENT STRATEGY**

As Closing Government, we can see both the Opening Government's framework and the Opposition's concerns, allowing us to present a more nuanced analysis that addresses legitimate concerns while maintaining our core position.

**ENGAGING WITH THE OPPOSITION**

The opposition has raised concerns, but they fail to account for the new dimensions I've introduced and the broader context that makes this motion essential.

**CONCLUSION**

Together with the Opening Government, we present a comprehensive case that addresses both immediate concerns and long-term implications.

Thank you.`
}

func buildMO(ctx Context, fw Framework) string {
	return `Thank you, Chair. As Member of Opposition, I stand with the Opening Opposition while bringing crucial new analysis that strengthens our case against this motion.

**SUPPORTING OPENING OPPOSITION**

The Opening Opposition correctly identified the fundamental flaws in this motion. I reinforce their analysis by:

providing additional evidence for their core arguments and extending their analysis to new contexts that strengthen the opposition case.

**NEW OPPOSITION DIMENSIONS**

However, there's a critical angle that hasn't been fully explored:

**New Opposition Angle: Cultural and Community Impact**

This policy disrupts existing cultural practices and community structures that have evolved organically over generations, creating social fragmentation that cannot be easily repaired.

**RESPONDING TO CLOSING GOVERNMENT**

The Member of Government attempted to introduce new dimensions, but:

their new dimensions actually strengthen our case by highlighting additional areas where this policy will cause harm that they hadn't previously considered.

**CLOSING OPPOSITION STRATEGY**

As Closing Opposition, we must demonstrate why even the government's extended case fails to justify this motion.

**CONCLUSION**

The government bench, despite their attempts to shore up their case, has failed to address the fundamental problems we've identified.

Thank you.`
}

func buildGW(ctx Context, fw Framework) string {
	return fmt.Sprintf(`Thank you, Chair. As Government Whip, I have the privilege of summarizing our case and providing final analysis on why this motion must pass.

**GOVERNMENT CASE SUMMARY**

Throughout this debate, the government bench has presented a comprehensive and compelling case:

The Prime Minister established our framework and core arguments. The Deputy Prime Minister defended against opposition challenges and extended our case. The Member of Government introduced crucial new dimensions that broaden our analysis.

**FINAL REBUTTALS**

Let me address the opposition's arguments systematically:

Their enforcement concerns are based on outdated assumptions. Their rights objections ignore the rights of those harmed by the status quo. Their alternative solutions are either inadequate or politically impossible.

**COMPARATIVE WEIGHING**

When we weigh the arguments presented by both sides:

The government has provided concrete evidence and clear mechanisms, while the opposition relies on speculative harms and ignores status quo problems.

**CONCLUSION**

Chair, this debate has demonstrated that %s is not just beneficial, but essential. The opposition's concerns are either manageable or outweighed by the significant benefits we've outlined.

The choice is clear. We must support this motion.

Thank you.`, strings.ToLower(ctx.Motion))
}

func buildOW(ctx Context, fw Framework) string {
	return `Thank you, Chair. As Opposition Whip, I will summarize our case and demonstrate why this motion must be rejected.

**OPPOSITION CASE SUMMARY**

The opposition bench has presented a devastating critique of this motion:

The Leader of Opposition challenged the government framework and established our case. The Deputy Leader systematically dismantled government responses. The Member of Opposition introduced crucial new dimensions that expose additional problems.

**FINAL CLASH ANALYSIS**

The fundamental clash is between the government's faith in technocratic solutions and our evidence-based analysis of implementation realities and democratic accountability.

**IMPACT WEIGHING**

When we consider the real-world impacts:

The harms we've identified are concrete and immediate, while the government's benefits are speculative and distant. The magnitude of potential harm far exceeds any theoretical benefits.

**CONCLUSION**

Chair, this motion is fundamentally flawed. The government has failed to meet their burden of proof while we have demonstrated significant harms.

We urge you to reject this motion.

Thank you.`
}

// Section helpers shared by the plain builders.

func pmDefinitionAndFramework(motion string) string {
	switch {
	case containsFold(motion, "ban"):
		return "Our definition of this motion is clear: we propose a comprehensive prohibition on a specified activity or item. This will be achieved through a multi-pronged approach involving strict regulatory oversight and public awareness campaigns. Our framework prioritizes public safety and long-term societal well-being to ensure effective and equitable implementation."
	case containsFold(motion, "subsidize"):
		return "This motion proposes a strategic investment in a particular sector through targeted subsidies designed to stimulate growth and foster innovation. Our framework for this debate centers on enhancing economic competitiveness and ensuring equitable access to vital resources through accountable public funding."
	default:
		return "We define this motion as a clear and necessary step towards progress. Our framework for evaluating this debate is based on principles of practical efficacy and positive societal impact, which we believe are essential for a fair and comprehensive assessment of its merits."
	}
}

func pmArguments(motion string) string {
	var b strings.Builder

	b.WriteString("\n**First Argument: Economic Prosperity and Growth**\n")
	b.WriteString(argumentMechanism("economic", "government") + "\n")
	b.WriteString(argumentEvidence("economic") + "\n")
	b.WriteString(argumentImpact("economic", "government") + "\n")

	arg2 := "social"
	if containsFold(motion, "rights") {
		arg2 = "rights"
	}
	b.WriteString(fmt.Sprintf("\n**Second Argument: %s**\n", argumentTitle(arg2, "government")))
	b.WriteString(argumentMechanism(arg2, "government") + "\n")
	b.WriteString(argumentEvidence(arg2) + "\n")
	b.WriteString(argumentImpact(arg2, "government") + "\n")

	b.WriteString("\n**Third Argument: Practicality and Effective Implementation**\n")
	b.WriteString(argumentMechanism("practical", "government") + "\n")
	b.WriteString(argumentEvidence("practical") + "\n")
	b.WriteString(argumentImpact("practical", "government") + "\n")

	return b.String()
}

func definitionalChallenge(motion string) string {
	switch {
	case containsFold(motion, "ban"):
		return "First, the Prime Minister has failed to clearly define the scope of this ban. What exactly constitutes a violation? How will enforcement work? These definitional gaps create arbitrary implementation that violates rule of law principles."
	case containsFold(motion, "should"):
		return "The Prime Minister's framework assumes a false binary choice. They have not established clear success criteria or considered the spectrum of policy alternatives that could achieve their stated goals more effectively."
	default:
		return "The government's definitional framework is fundamentally flawed because it ignores the complexity of real-world implementation and the diverse stakeholder impacts."
	}
}

func frameworkCritique(args []analysis.ArgumentSignal) string {
	critique := "The government's framework fails because it "

	hasEconomic := hasCategory(args, "economic")
	hasRights := hasCategory(args, "rights")
	hasPractical := hasCategory(args, "practical")

	switch {
	case hasEconomic && hasRights:
		critique += "treats economic efficiency as the sole metric while ignoring fundamental rights implications"
	case hasPractical:
		critique += "assumes perfect implementation conditions that don't exist in the real world"
	default:
		critique += "oversimplifies complex social dynamics and ignores unintended consequences"
	}

	return critique + "."
}

func alternativeFramework(motion string, args []analysis.ArgumentSignal) string {
	switch {
	case containsFold(motion, "economic") || hasCategory(args, "economic"):
		return "distributive justice and long-term economic sustainability, not just aggregate efficiency"
	case containsFold(motion, "rights") || hasCategory(args, "rights"):
		return "fundamental rights protection with proportionate policy responses"
	default:
		return "harm minimization and democratic accountability in policy implementation"
	}
}

func systematicRebuttals(args []analysis.ArgumentSignal) string {
	if len(args) == 0 {
		return "The Prime Minister's arguments lack empirical support and ignore crucial counterevidence that undermines their entire case."
	}

	var b strings.Builder
	for i, arg := range args {
		fmt.Fprintf(&b, "\n**Rebuttal %d: %s Argument**\n", i+1, titleCase(arg.Category))
		fmt.Fprintf(&b, "The PM claimed %s, but this analysis is flawed because %s.\n", arg.Claim, specificRebuttal(arg.Category))
		b.WriteString(counterEvidence(arg.Category) + "\n")
	}
	return b.String()
}

func specificRebuttal(category string) string {
	switch category {
	case "economic":
		return "it ignores distributional effects and assumes perfect market conditions"
	case "rights":
		return "it creates a false hierarchy of rights without proper balancing"
	case "practical":
		return "it underestimates implementation costs and administrative burden"
	case "social":
		return "it misunderstands community dynamics and social capital"
	default:
		return "it relies on unsubstantiated assumptions"
	}
}

func counterEvidence(category string) string {
	switch category {
	case "economic":
		return "Economic research from the IMF shows that similar policies create market distortions that persist for decades."
	case "rights":
		return "Constitutional law scholars have demonstrated that such restrictions fail proportionality tests."
	case "practical":
		return "Implementation studies from comparable jurisdictions show 70% failure rates due to administrative complexity."
	case "social":
		return "Sociological research indicates that top-down policy changes fragment existing social networks."
	default:
		return "Empirical evidence contradicts their theoretical assumptions."
	}
}

func oppositionArguments(motion string, args []analysis.ArgumentSignal) string {
	userMainType := "economic"
	if len(args) > 0 {
		userMainType = args[0].Category
	}
	arg1Type := "rights"
	if userMainType != "economic" {
		arg1Type = "economic"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n**First Argument: %s**\n", argumentTitle(arg1Type, "opposition"))
	b.WriteString(argumentMechanism(arg1Type, "opposition") + "\n")
	b.WriteString(argumentEvidence(arg1Type) + "\n")
	b.WriteString(argumentImpact(arg1Type, "opposition") + "\n")

	b.WriteString("\n**Second Argument: Implementation Failure and Perverse Incentives**\n")
	b.WriteString("This policy will fail because enforcement mechanisms create perverse incentives that undermine the stated goals.\n")
	b.WriteString("We see this pattern in similar failed policies like Prohibition in the US and the War on Drugs.\n")
	b.WriteString("This matters because policy failure erodes public trust and wastes resources that could address real problems.\n")

	b.WriteString("\n**Third Argument: Superior Alternative Solutions**\n")
	b.WriteString("Even if we accept the government's problem diagnosis, this motion is the wrong solution.\n")
	b.WriteString("Evidence from Nordic countries shows that targeted interventions achieve better outcomes with fewer negative side effects.\n")
	b.WriteString("This is crucial because we have limited political capital and resources - we must choose the most effective approach.\n")

	return b.String()
}

func argumentTitle(category, side string) string {
	gov := side == "government"
	switch category {
	case "economic":
		if gov {
			return "Economic Growth and Efficiency"
		}
		return "Economic Inequality and Market Failure"
	case "rights":
		if gov {
			return "Rights Protection and Empowerment"
		}
		return "Fundamental Rights Violation"
	case "practical":
		if gov {
			return "Effective Implementation Strategy"
		}
		return "Implementation Impossibility"
	case "social":
		if gov {
			return "Social Cohesion and Community Building"
		}
		return "Social Fragmentation and Division"
	default:
		return "Policy Analysis"
	}
}

func argumentMechanism(category, side string) string {
	gov := side == "government"
	switch category {
	case "economic":
		if gov {
			return "This policy creates positive economic incentives that drive innovation and efficiency."
		}
		return "This policy distorts market mechanisms and creates deadweight losses that harm overall welfare."
	case "rights":
		if gov {
			return "This policy protects fundamental rights by creating institutional safeguards."
		}
		return "This policy violates fundamental rights through disproportionate state intervention."
	case "practical":
		if gov {
			return "Implementation leverages existing institutional capacity with clear enforcement mechanisms."
		}
		return "Implementation requires institutional capacity that doesn't exist and creates enforcement gaps."
	case "social":
		if gov {
			return "This policy strengthens social bonds by addressing collective action problems."
		}
		return "This policy fragments communities by undermining existing social structures."
	default:
		return "The mechanism operates through institutional change."
	}
}

func argumentEvidence(category string) string {
	switch category {
	case "economic":
		return "Economic analysis from the World Bank demonstrates measurable impacts on GDP and employment."
	case "rights":
		return "Constitutional law precedents from the European Court of Human Rights establish clear standards."
	case "practical":
		return "Implementation studies from comparable jurisdictions provide concrete success/failure data."
	case "social":
		return "Sociological research from leading universities shows clear patterns in community outcomes."
	default:
		return "Research evidence supports this analysis."
	}
}

func argumentImpact(category, side string) string {
	gov := side == "government"
	switch category {
	case "economic":
		if gov {
			return "This creates sustainable prosperity that benefits all income levels."
		}
		return "This perpetuates economic inequality and reduces overall social welfare."
	case "rights":
		if gov {
			return "This protects vulnerable populations and strengthens democratic institutions."
		}
		return "This erodes civil liberties and sets dangerous precedents for state overreach."
	case "practical":
		if gov {
			return "This achieves policy goals efficiently with minimal administrative burden."
		}
		return "This wastes resources and creates bureaucratic dysfunction that harms other programs."
	case "social":
		if gov {
			return "This builds stronger communities and increases social capital."
		}
		return "This fragments society and reduces trust between different groups."
	default:
		return "This has significant long-term consequences."
	}
}

func hasCategory(args []analysis.ArgumentSignal, category string) bool {
	for _, a := range args {
		if a.Category == category {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
