package prep

import (
	"fmt"
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// frameworkArgument is one templated argument in the preparation notes:
// claim, mechanism, evidence, impact, and weighing, ready to be filled
// with the debater's own material.
type frameworkArgument struct {
	Title     string
	Claim     string
	Mechanism string
	Evidence  string
	Impact    string
	Weighing  string
}

// StructuredNotes renders the full strategic preparation document for a
// motion and role, folding the debater's raw notes into it. Callers
// validate the role first; unknown roles render with the PM strategy.
func StructuredNotes(motion string, role bp.Role, notes string) string {
	analysis := AnalyzeMotion(motion)
	strategy := StrategyFor(role)
	framework := argumentFramework(motion, role, notes, analysis)

	return fmt.Sprintf(`STRATEGIC PREPARATION NOTES
---
### Motion: %s
### Role: %s (%s)
### Strategic Position: %s

---
### MOTION ANALYSIS
* **Type(s)**: %s
* **Key Stakeholders**: %s
* **Core Tensions**: %s
* **Implementation Context**: %s

---
### ROLE-SPECIFIC STRATEGY
* **Primary Burdens**: %s
* **Strategic Opportunities**: %s
* **Key Clashes to Engage**: %s

---
### ARGUMENT FRAMEWORK
%s

---
### ANTICIPATED OPPOSITION
%s

---
### EVIDENCE AND EXAMPLES
%s

---
### STRATEGIC REMINDERS
%s

---
### YOUR ORIGINAL NOTES
%s

---
### QUALITY CHECK
✓ Motion-specific arguments that cannot be transplanted to other debates
✓ Role-appropriate strategic positioning and burden fulfillment
✓ Concrete, contextual examples tied directly to motion subject matter
✓ Proactive engagement with likely opposition arguments
✓ Clear prioritization of strongest arguments for this specific round
`,
		motion, role.Name(), role.Team().Name(), strategy.Position,
		titleCaseJoin(analysis.Types), strings.Join(analysis.Stakeholders, ", "),
		strings.Join(analysis.Tensions, ", "), analysis.Context,
		strings.Join(strategy.Burdens, ", "), strings.Join(strategy.Opportunities, ", "),
		strings.Join(strategy.Clashes, ", "),
		framework,
		anticipatedOpposition(role),
		relevantEvidence(motion, analysis),
		strategicReminders(role),
		notes)
}

func titleCaseJoin(types []string) string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = strings.ToUpper(t[:1]) + t[1:]
	}
	return strings.Join(out, ", ")
}

func argumentFramework(motion string, role bp.Role, notes string, analysis MotionAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Case Theory**: %s\n\n", CaseTheory(role, analysis))

	for i, arg := range motionArguments(role, analysis) {
		fmt.Fprintf(&b, "**Argument %d: %s**\n", i+1, arg.Title)
		fmt.Fprintf(&b, "* **Claim**: %s\n", arg.Claim)
		fmt.Fprintf(&b, "* **Mechanism/Reasoning**: %s\n", arg.Mechanism)
		fmt.Fprintf(&b, "* **Evidence/Examples**: %s\n", arg.Evidence)
		fmt.Fprintf(&b, "* **Impact**: %s\n", arg.Impact)
		fmt.Fprintf(&b, "* **Weighing**: %s\n\n", arg.Weighing)
	}

	if len(strings.TrimSpace(notes)) > 50 {
		b.WriteString(`*Consider how specific points from your "Original Notes" below can enrich these arguments with concrete details and examples.*`)
	}
	return b.String()
}

// motionArguments builds the three templated arguments for the bench:
// core problem, stakeholder impact, and systemic implications.
func motionArguments(role bp.Role, analysis MotionAnalysis) []frameworkArgument {
	gov := role.IsGovernment()
	args := make([]frameworkArgument, 0, 3)

	primaryTension := "the core tension"
	if len(analysis.Tensions) > 0 {
		primaryTension = analysis.Tensions[0]
	}

	if gov {
		args = append(args, frameworkArgument{
			Title:     "Addressing the Root Cause of [Core Problem/Tension]",
			Claim:     fmt.Sprintf("This policy directly and effectively mitigates the significant underlying problem identified by %s.", primaryTension),
			Mechanism: "The proposed mechanisms (e.g., funding, regulation, ban) are specifically designed to target the systemic failures that create this problem, ensuring a durable solution.",
			Evidence:  "[Cite studies, expert consensus, or successful comparable policies from your notes] that demonstrate the severity of the problem and the effectiveness of this type of solution.",
			Impact:    "This leads to measurable improvements in [e.g., public health, economic stability, environmental quality], improving the welfare of countless individuals and preventing future crises.",
			Weighing:  "The sheer **magnitude** and **irreversibility** of the problem necessitate this direct intervention; inaction guarantees continued harm.",
		})
	} else {
		args = append(args, frameworkArgument{
			Title:     "Fundamental Flaws: Ineffectiveness & Unintended Consequences",
			Claim:     "This policy is fundamentally flawed in its design and implementation, destined to fail its stated goals and create significant, unforeseen negative consequences.",
			Mechanism: "The proposed mechanisms are either impractical, insufficient to address the scale of the problem, or will be circumvented by market/social forces, leading to adverse reactions.",
			Evidence:  "[Cite historical precedents or expert analyses from your notes] demonstrating how similar top-down approaches have failed, leading to black markets, resource waste, or public discontent.",
			Impact:    "This will worsen the initial problem, divert crucial resources, erode public trust, and create new social/economic harms that did not exist before.",
			Weighing:  "The **high probability of failure** and the **severity of unintended harms** mean this policy is actively counterproductive, making it worse than the status quo.",
		})
	}

	primaryStakeholder := "key populations"
	if len(analysis.Stakeholders) > 2 {
		primaryStakeholder = analysis.Stakeholders[1]
	}
	coreValue := "Individual Rights"
	if len(analysis.Tensions) > 0 {
		coreValue = strings.SplitN(analysis.Tensions[0], " vs ", 2)[0]
	}

	if gov {
		args = append(args, frameworkArgument{
			Title:     fmt.Sprintf("Delivering Tangible Benefits for %s", primaryStakeholder),
			Claim:     fmt.Sprintf("This policy will bring substantial and equitable benefits to %s, directly improving their well-being and opportunities.", strings.ToLower(primaryStakeholder)),
			Mechanism: "Specific provisions within the policy (e.g., funding streams, protective regulations, access initiatives) are precisely designed to uplift, protect, or empower this group.",
			Evidence:  stakeholderEvidence(primaryStakeholder, true),
			Impact:    "This translates into improved quality of life, greater economic opportunity, enhanced safety, or strengthened fundamental rights for a crucial segment of society.",
			Weighing:  fmt.Sprintf("The **direct and significant benefits** to %s are morally compelling and justify the policy's implementation, showing its **scope** of positive reach.", strings.ToLower(primaryStakeholder)),
		})
	} else {
		args = append(args, frameworkArgument{
			Title:     fmt.Sprintf("Disproportionate Harms & Erosion of %s", coreValue),
			Claim:     fmt.Sprintf("This policy will disproportionately burden and actively harm %s, while simultaneously eroding core values like %s.", strings.ToLower(primaryStakeholder), coreValue),
			Mechanism: fmt.Sprintf("The policy's implementation ignores the specific circumstances of %s and actively undermines principles of %s through overreach or unintended side effects.", strings.ToLower(primaryStakeholder), coreValue),
			Evidence:  stakeholderEvidence(primaryStakeholder, false),
			Impact:    "This leads to reduced welfare, diminished autonomy, increased vulnerability, and sets a dangerous precedent for future infringements on fundamental liberties/economic freedoms.",
			Weighing:  "The **severity of harm** to vulnerable populations combined with the **erosion of critical principles** means the policy is fundamentally unjust and indefensible, regardless of theoretical benefits.",
		})
	}

	if gov {
		args = append(args, frameworkArgument{
			Title:     "Fostering Long-Term Stability & Systemic Progress",
			Claim:     "Beyond immediate effects, this policy fosters long-term stability, systemic progress, and sets a positive precedent for future governance.",
			Mechanism: "The policy addresses systemic issues, promotes institutional reform, or incentivizes innovation that will yield compounding benefits over time.",
			Evidence:  "[Cite long-term trend analysis, historical examples of successful systemic reforms, or future projections from your notes] demonstrating the enduring positive impact.",
			Impact:    "This creates a more resilient society/economy/environment, enhances international standing, or fundamentally shifts the paradigm towards a more desirable future.",
			Weighing:  "The **long-term transformational benefits** and the **precedential value** of this policy are crucial for shaping a better future and outweigh short-term adjustments.",
		})
	} else {
		args = append(args, frameworkArgument{
			Title:     "Viable & Superior Alternatives / Slippery Slope",
			Claim:     "Not only is this policy flawed, but viable and superior alternative solutions exist that address the problem more effectively and without the associated harms, or this policy represents a dangerous slippery slope.",
			Mechanism: "Alternatives (e.g., market-based solutions, targeted social programs, public awareness campaigns) could achieve the desired goals through less intrusive, more efficient, or ethically superior means.",
			Evidence:  "[Cite examples of successful alternatives from other jurisdictions or historical contexts, or expert critiques] that propose better ways to solve the problem without the policy's drawbacks.",
			Impact:    "Adopting this policy closes off more effective paths, wastes resources on a failing endeavor, and risks incrementally eroding freedoms or stability that society values.",
			Weighing:  "The **availability of superior alternatives** (or the **danger of the slippery slope**) makes this policy unnecessary and ultimately harmful, demonstrating its **redundancy and risk**.",
		})
	}

	return args
}

var stakeholderEvidenceMap = map[string]caseTheoryPair{
	"Students": {
		gov: "Educational research consistently shows improved learning outcomes, reduced stress, and increased engagement in contexts where similar policies were implemented.",
		opp: "Student surveys and anecdotal evidence highlight increased anxiety, reduced autonomy, and a stifling of creativity under comparable policy frameworks.",
	},
	"Businesses": {
		gov: "Economic analyses project long-term competitiveness gains, increased market stability, and innovation benefits resulting from this policy's environment, citing specific industry reports.",
		opp: "Industry impact studies forecast significant compliance costs, reduced operational flexibility, and a dampening effect on investment and job creation, leading to job losses.",
	},
	"Healthcare Providers": {
		gov: "Medical association reports and pilot program results indicate improved patient outcomes, enhanced service delivery efficiency, and greater job satisfaction for providers.",
		opp: "Surveys among healthcare professionals reveal increased administrative burdens, potential for burnout, and concerns about compromised patient care quality due to new regulations.",
	},
	"Environmental Groups": {
		gov: "Independent environmental impact assessments and ecological models predict measurable improvements in air/water quality, biodiversity, and ecosystem health, citing specific scientific studies.",
		opp: "Environmental justice studies and expert critiques point to disproportionate negative impacts on vulnerable communities or highlight the policy's insufficient scope to address the real crisis, leading to greenwashing.",
	},
	"Workers": {
		gov: "Labor market analyses suggest new job creation, improved working conditions, enhanced worker protections, and increased wage growth in sectors affected by this policy.",
		opp: "Union reports and economic forecasts warn of job displacement, wage stagnation, or reduced worker rights due to automation or increased regulatory burden.",
	},
	"Consumers": {
		gov: "Consumer protection agencies and market research indicate increased product safety, better service quality, fairer pricing, and greater market transparency benefiting consumers.",
		opp: "Consumer advocacy groups raise concerns about reduced choice, higher prices, or barriers to access for essential goods/services, leading to consumer detriment.",
	},
	"Future Generations": {
		gov: "Long-term projections and sustainability reports illustrate how this policy secures resources, mitigates future risks, and preserves opportunities for future generations.",
		opp: "Debt accumulation, resource depletion, or irreversible environmental damage resulting from this policy will disproportionately burden future generations.",
	},
	"Developing Nations": {
		gov: "Case studies of successful development initiatives show how similar policies have fostered economic growth, improved social indicators, and reduced poverty in developing contexts.",
		opp: "Critiques from development economists highlight how this policy could lead to dependency, resource exploitation, or undermine local industries in developing nations.",
	},
}

func stakeholderEvidence(stakeholder string, gov bool) string {
	if pair, ok := stakeholderEvidenceMap[stakeholder]; ok {
		if gov {
			return pair.gov
		}
		return pair.opp
	}
	if gov {
		return "Research shows positive outcomes for affected populations, demonstrating clear benefits and successful implementation in similar contexts."
	}
	return "Studies consistently show negative impacts on affected populations, leading to demonstrable harms and unintended consequences, drawing from real-world examples."
}

var commonOppositionPoints = []string{
	"**Implementation challenges and enforcement problems**: The policy is impractical or impossible to execute effectively, leading to failure or unintended side effects.",
	"**Disproportionate impacts**: The policy will harm specific vulnerable populations, industries, or regions unequally.",
	"**Superior alternative solutions**: Other, better ways exist to address the problem that are less intrusive, more efficient, or ethically preferable.",
	"**Violation of fundamental rights/principles**: The policy infringes on individual liberties, economic freedoms, or democratic processes.",
	"**High economic costs/administrative burdens**: The financial or bureaucratic burden of the policy outweighs its purported benefits.",
	"**Problem misidentification/exaggeration**: The problem is not as severe as claimed, or the government misunderstands its root causes.",
	"**Unintended negative consequences**: The policy will create new, unforeseen problems (e.g., black markets, brain drain, social unrest).",
	"**Moral hazard/Dependency**: The policy creates perverse incentives or fosters dependency.",
}

var commonGovernmentPoints = []string{
	"**Significant problems require intervention**: The status quo is demonstrably harmful and necessitates urgent action.",
	"**Feasible implementation**: The policy's mechanisms are robust, practical, and can be effectively implemented.",
	"**Benefits outweigh costs**: The positive impacts (social, economic, environmental) are substantial and justify any associated costs or trade-offs.",
	"**Status quo is unacceptable**: Inaction leads to continued or worsening harm.",
	"**Alignment with values**: The policy aligns with progressive values, justice, or long-term societal progress.",
	"**Mitigation of harms**: Safeguards and provisions are in place to address potential negative impacts on specific groups.",
	"**Successful precedents**: Similar policies have succeeded in comparable jurisdictions or historical contexts.",
	"**Addresses root causes**: The policy targets the fundamental issues, not just symptoms.",
}

const governmentPreemptiveResponses = `* Our implementation mechanisms are robust, have been successfully tested in pilot programs/similar contexts, and account for potential challenges.
* Safeguards are explicitly designed to protect vulnerable populations, and any disproportionate impact is minimal compared to the overarching benefits delivered.
* We've thoroughly considered alternatives; they either address symptoms, have failed in practice, or are insufficient in scale and urgency.
* Any perceived limitation on rights is proportionate and justified by the magnitude of the collective welfare gains and addresses a clear, demonstrable societal harm.
* The long-term societal and economic benefits far outweigh the initial investment or administrative adjustments, which are manageable and yield high returns.
* The problem's severity is evidenced by [mention specific stats/trends/examples]; denying its scale is to ignore reality.
* Our policy design anticipates and provides concrete mitigations for potential unintended consequences, ensuring net positive outcomes.
* This policy fosters responsibility and empowers individuals/entities, rather than creating dependency.
`

const oppositionCounterResponses = `* The problems cited are either overstated, can be addressed through less intrusive means, or are not causally linked to the status quo.
* Their proposed implementation lacks crucial specific details, ignores practical realities, or relies on untested assumptions, making success highly improbable.
* The costs, both direct (financial) and indirect (e.g., stifled innovation, erosion of liberty), are severely underestimated and will far outweigh any theoretical benefits.
* While the status quo has issues, this specific solution is a disproportionate, harmful, or ineffective response that exacerbates existing problems or creates new ones.
* The policy fundamentally misinterprets or undermines societal values, leading to a path that degrades rather than strengthens long-term societal well-being.
* Their "safeguards" are insufficient, unenforceable, or merely token gestures, leaving vulnerable populations exposed to significant harm.
* Comparative examples often fail to account for critical contextual differences, making their claimed successes irrelevant or misleading for our specific situation.
* The policy focuses on symptoms or creates new problems, rather than addressing the true root causes, leading to a temporary or false solution.
`

func anticipatedOpposition(role bp.Role) string {
	var b strings.Builder
	if role.IsGovernment() {
		b.WriteString("**Opposition will likely argue:**\n")
		for _, p := range commonOppositionPoints {
			b.WriteString("* " + p + "\n")
		}
		b.WriteString("\n**Preemptive responses (how to refute them):**\n")
		b.WriteString(governmentPreemptiveResponses)
	} else {
		b.WriteString("**Government will likely argue:**\n")
		for _, p := range commonGovernmentPoints {
			b.WriteString("* " + p + "\n")
		}
		b.WriteString("\n**Counter-responses (how to refute them):**\n")
		b.WriteString(oppositionCounterResponses)
	}
	return strings.TrimRight(b.String(), "\n")
}

var typeEvidenceExamples = map[string][]string{
	"prohibition": {
		"Successful bans: Asbestos, lead paint, CFCs and their environmental impact.",
		"Failed prohibitions: Alcohol Prohibition (US), certain aspects of the 'War on Drugs' and their social/economic consequences.",
		"Partial bans/restrictions: Smoking restrictions in public places, plastic bag bans in various cities/countries.",
	},
	"economic": {
		"Carbon taxes (e.g., British Columbia, Nordic countries) and their environmental/economic effects.",
		"Sin taxes (e.g., tobacco, alcohol, sugar) and their public health impacts.",
		"Universal Basic Income (UBI) trials (e.g., Finland, Stockton, California) and their social/economic outcomes.",
		"Wealth taxes (e.g., France, Switzerland) and their effects on inequality and capital flight.",
	},
	"regulation": {
		"GDPR implementation in the EU and its impact on data privacy and tech companies.",
		"Automotive safety regulations (e.g., seatbelts, airbags) and their effect on fatality rates.",
		"Financial regulations (e.g., Dodd-Frank Act) and their role in preventing crises.",
	},
	"liberalization": {
		"Cannabis legalization in Canada or certain US states: economic, social, and public health impacts.",
		"Deregulation of industries (e.g., airlines, telecommunications) and effects on competition/consumer prices.",
		"Expanded free speech rights vs. hate speech laws in different jurisdictions.",
	},
	"technology": {
		"Section 230 in the US and platform liability debates.",
		"Australia's News Media Bargaining Code and its impact on tech giants and local news.",
		"Germany's NetzDG law on online hate speech.",
		"Concerns about AI bias in facial recognition or hiring algorithms (e.g., Amazon's HR tool).",
		"The development and regulation of autonomous vehicles.",
	},
	"environmental": {
		"Paris Agreement targets and national climate action plans.",
		"Renewable energy transitions in Germany (Energiewende) or Denmark.",
		"Conservation efforts (e.g., rewilding projects, marine protected areas) and their ecological/economic impact.",
		"Impact of specific industries (e.g., fossil fuels, fashion) on the environment.",
	},
	"education": {
		"PISA/TIMSS scores, graduation rates, and other educational outcome metrics for different systems.",
		"Pedagogical research on teaching methods and learning environments (e.g., blended learning, Montessori).",
		"Funding models and their impact on educational equity and access.",
		"Case studies of education reforms in different countries or regions (e.g., Finland's system, Singapore's emphasis on STEM).",
	},
	"international": {
		"UN peacekeeping missions (successes and failures).",
		"Economic sanctions (e.g., against Russia, Iran) and their effectiveness/impact.",
		"International aid programs (e.g., WHO, World Bank) and their long-term effects.",
		"Case studies of diplomatic negotiations or international conflicts.",
	},
}

// evidenceTypeOrder matches motionFamilyOrder minus the families without
// a dedicated example set.
var evidenceTypeOrder = []string{
	"prohibition", "economic", "regulation", "liberalization",
	"technology", "environmental", "education", "international",
}

func relevantEvidence(motion string, analysis MotionAnalysis) string {
	lower := strings.ToLower(motion)
	var examples []string

	for _, typ := range evidenceTypeOrder {
		if analysis.hasType(typ) {
			examples = append(examples, typeEvidenceExamples[typ]...)
		}
	}
	if strings.Contains(lower, "housing") || strings.Contains(lower, "homelessness") {
		examples = append(examples,
			"Rent control policies and their effect on housing supply/affordability (e.g., Berlin, NYC).",
			"Homelessness solutions: 'Housing First' initiatives (e.g., Utah) vs. traditional shelter models.",
			"Zoning laws and their impact on urban development and housing costs.")
	}
	if len(examples) == 0 {
		examples = []string{
			"General policy implementations in comparable jurisdictions (identify both successes and failures).",
			"Case studies of similar social movements or reforms from history.",
			"Examples illustrating stakeholder impact (positive and negative) from related policies or events.",
		}
	}

	var b strings.Builder
	b.WriteString("**Key Evidence Sources & Types (General):**\n")
	b.WriteString("* Empirical studies, academic research, and peer-reviewed journals on policy effectiveness.\n")
	b.WriteString("* Comparative policy analysis from similar jurisdictions, historical precedents, and case studies (successes and failures).\n")
	b.WriteString("* Economic impact assessments, cost-benefit analyses, market data, and financial reports.\n")
	b.WriteString("* Stakeholder impact assessments, public opinion surveys, anecdotal evidence (used carefully for illustration).\n")
	b.WriteString("* Expert opinions, reports from relevant NGOs, think tanks, and government statistics.\n")
	b.WriteString("* Ethical frameworks, philosophical arguments, and legal precedents (for value-based or legal motions).\n")
	b.WriteString("* Scientific consensus reports, climate models, and epidemiological data (for environmental/health motions).\n")
	b.WriteString("* International treaties, conventions, and practices (for international relations motions).\n")
	b.WriteString("\n**Specific Examples/Areas to Research:**\n")
	for i, ex := range examples {
		b.WriteString("* " + ex)
		if i < len(examples)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

var generalReminders = []string{
	"Stay calm and confident under pressure.",
	"Speak clearly and at a moderate pace.",
	"Make eye contact with the judge and opposition.",
	"Manage your time effectively.",
	"Be concise and avoid jargon.",
	"Use rhetorical devices to make your points memorable.",
}

func strategicReminders(role bp.Role) string {
	reminders := StrategyFor(role).Opportunities
	seen := map[string]bool{}
	var combined []string
	for _, r := range reminders {
		if !seen[r] {
			seen[r] = true
			combined = append(combined, r)
		}
	}
	for _, r := range generalReminders {
		if !seen[r] {
			seen[r] = true
			combined = append(combined, r)
		}
	}

	lines := make([]string, len(combined))
	for i, r := range combined {
		lines[i] = "* " + r
	}
	return strings.Join(lines, "\n")
}
