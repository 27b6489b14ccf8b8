// Package prep turns a motion, a role, and a debater's raw preparation
// notes into structured strategic material: motion analysis, role
// strategy, argument frameworks, and a fully structured case.
package prep

import (
	"strings"

	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// MotionAnalysis is the decomposition of a motion into its policy
// families, the actors it touches, and the tensions it forces.
type MotionAnalysis struct {
	Types        []string `json:"types"`
	Stakeholders []string `json:"stakeholders"`
	Tensions     []string `json:"tensions"`
	Context      string   `json:"context"`
}

// motionKeywords maps each motion family to the wording that signals it.
// A motion can match several families at once.
var motionKeywords = map[string][]string{
	"prohibition":    {"ban", "prohibit", "outlaw", "forbid", "restrict"},
	"economic":       {"tax", "subsidize", "incentivize", "tariff", "spend", "funding", "market", "trade"},
	"regulation":     {"regulate", "mandate", "require", "control", "licence", "oversight"},
	"liberalization": {"allow", "legalize", "deregulate", "permit", "free", "expand"},
	"environmental":  {"environment", "climate", "pollution", "sustainability", "ecological", "conservation"},
	"social":         {"society", "community", "public", "welfare", "justice", "equality", "human rights"},
	"education":      {"school", "student", "teacher", "curriculum", "university", "education", "learning"},
	"health":         {"health", "medical", "patient", "healthcare", "disease", "public health"},
	"technology":     {"ai", "artificial intelligence", "tech", "internet", "social media", "data", "cyber"},
	"international":  {"international", "global", "un", "nato", "foreign policy", "diplomacy"},
}

// motionFamilyOrder fixes the iteration order so the same motion always
// yields the same type list.
var motionFamilyOrder = []string{
	"prohibition", "economic", "regulation", "liberalization", "environmental",
	"social", "education", "health", "technology", "international",
}

var implementationContexts = map[string]string{
	"prohibition":    "Requires robust enforcement mechanisms and addresses black market concerns, considering potential for unintended social consequences.",
	"economic":       "Operates within existing fiscal and monetary policy frameworks, requiring careful consideration of market reactions and distributional effects.",
	"regulation":     "Builds on current regulatory infrastructure and compliance systems, often involving bureaucratic processes and industry adaptation.",
	"liberalization": "Removes existing restrictions while maintaining necessary safeguards, potentially challenging societal norms and requiring public education.",
	"environmental":  "Involves complex scientific considerations and often requires international cooperation, with long-term and often irreversible impacts.",
	"social":         "Deals with sensitive issues of human behavior and societal structures, requiring broad public buy-in and addressing potential cultural resistance.",
	"technology":     "Operates in a rapidly evolving landscape, demanding flexible regulatory approaches and consideration of ethical implications and future advancements.",
	"policy":         "Requires institutional capacity, multi-stakeholder coordination, and robust public administration for effective delivery.",
}

// AnalyzeMotion classifies the motion into families and derives its
// stakeholders, core tensions, and implementation context. Motions that
// match no family, or that carry the generic "this house would" framing,
// pick up the policy fallback.
func AnalyzeMotion(motion string) MotionAnalysis {
	lower := strings.ToLower(motion)

	var types []string
	for _, family := range motionFamilyOrder {
		for _, kw := range motionKeywords[family] {
			if strings.Contains(lower, kw) {
				types = append(types, family)
				break
			}
		}
	}
	if len(types) == 0 || strings.Contains(lower, "this house would") || strings.Contains(lower, "thw") {
		types = append(types, "policy")
	}

	return MotionAnalysis{
		Types:        types,
		Stakeholders: identifyStakeholders(lower),
		Tensions:     identifyCoreTensions(lower, types),
		Context:      implementationContext(types),
	}
}

func (a MotionAnalysis) hasType(t string) bool {
	for _, typ := range a.Types {
		if typ == t {
			return true
		}
	}
	return false
}

// stakeholderRule adds a stakeholder group when any of its keywords
// appears in the motion.
type stakeholderRule struct {
	keywords []string
	groups   []string
}

var stakeholderRules = []stakeholderRule{
	{[]string{"student", "school", "education"}, []string{"Students", "Parents", "Teachers", "Educational Institutions"}},
	{[]string{"business", "corporate", "company", "worker", "consumer", "economy"}, []string{"Businesses", "Workers", "Consumers", "Shareholders"}},
	{[]string{"health", "medical", "patient"}, []string{"Patients", "Healthcare Providers", "Medical Professionals"}},
	{[]string{"environment", "climate", "ecological"}, []string{"Environmental Groups", "Future Generations", "Affected Communities"}},
	{[]string{"media", "social media", "platform"}, []string{"Media Companies", "Content Creators", "Platform Users"}},
	{[]string{"artificial intelligence", "ai"}, []string{"AI Developers", "AI Users", "Researchers"}},
	{[]string{"criminal justice", "crime", "prison", "police"}, []string{"Law Enforcement", "Offenders", "Victims", "Judicial System"}},
	{[]string{"developing world", "global south", "aid"}, []string{"Developing Nations", "International Aid Organizations"}},
	{[]string{"arts", "culture", "creative"}, []string{"Artists", "Cultural Institutions", "Audience/Public"}},
}

func identifyStakeholders(motionLower string) []string {
	stakeholders := []string{"Government/State", "Citizens/Public"}
	seen := map[string]bool{"Government/State": true, "Citizens/Public": true}

	for _, rule := range stakeholderRules {
		matched := false
		for _, kw := range rule.keywords {
			if strings.Contains(motionLower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, g := range rule.groups {
			if !seen[g] {
				seen[g] = true
				stakeholders = append(stakeholders, g)
			}
		}
	}
	return stakeholders
}

var typeTensions = map[string][]string{
	"prohibition": {
		"Individual Liberty vs Collective Harm Prevention",
		"Enforcement Feasibility vs Policy Goals",
		"Intended Effects vs Unintended Consequences",
	},
	"economic": {
		"Economic Efficiency vs Distributional Justice",
		"Market Freedom vs Government Intervention",
		"Short-term Costs vs Long-term Benefits",
	},
	"regulation": {
		"Regulatory Compliance vs Innovation",
		"Consumer Protection vs Market Competition",
		"Standardization vs Flexibility",
	},
	"liberalization": {
		"Expanded Freedom vs Potential Harm",
		"Individual Choice vs Social Consequences",
		"Progressive Values vs Traditional Concerns",
	},
	"environmental": {
		"Economic Growth vs Environmental Protection",
		"Short-term Gains vs Long-term Sustainability",
		"Global Cooperation vs National Sovereignty",
	},
	"social": {
		"Individual Rights vs Collective Welfare",
		"Social Cohesion vs Diversity/Pluralism",
		"Moral Imperative vs Practicality",
	},
	"technology": {
		"Technological Progress vs Human Agency/Control",
		"Efficiency Gains vs Job Displacement",
		"Privacy vs Security/Surveillance",
		"Innovation vs Ethical Concerns",
	},
	"international": {
		"National Interest vs International Cooperation",
		"Sovereignty vs Humanitarian Intervention",
		"Global Stability vs Regional Conflicts",
	},
}

func identifyCoreTensions(motionLower string, types []string) []string {
	var tensions []string
	seen := map[string]bool{}
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			tensions = append(tensions, t)
		}
	}

	isPolicy := false
	for _, typ := range types {
		if typ == "policy" {
			isPolicy = true
		}
		for _, t := range typeTensions[typ] {
			add(t)
		}
	}

	if len(tensions) < 2 || isPolicy {
		add("Practical Implementation vs Theoretical Benefits")
		add("Status Quo Problems vs Policy Risks")
	}

	if strings.Contains(motionLower, "capitalism") || strings.Contains(motionLower, "socialism") {
		add("Free Markets vs State Control")
	}
	if strings.Contains(motionLower, "democracy") || strings.Contains(motionLower, "authoritarianism") {
		add("Democratic Values vs Efficiency/Order")
	}

	return tensions
}

func implementationContext(types []string) string {
	for _, typ := range types {
		if ctx, ok := implementationContexts[typ]; ok {
			return ctx
		}
	}
	return implementationContexts["policy"]
}

// caseTheoryPair holds the government and opposition readings of a
// motion family.
type caseTheoryPair struct {
	gov, opp string
}

var caseTheories = map[string]caseTheoryPair{
	"prohibition": {
		gov: "This prohibition is necessary because the harms of the prohibited activity (e.g., crime, public health crisis) definitively outweigh any individual liberty concerns, and effective, enforceable mechanisms exist to implement it.",
		opp: "This prohibition infringes on fundamental liberties, will create more severe unintended consequences (e.g., black markets, social unrest), and fails to address underlying issues through less restrictive means.",
	},
	"economic": {
		gov: "This economic intervention corrects clear market failures, promotes both efficiency and equitable distribution of resources, and will lead to sustainable long-term economic growth for all stakeholders.",
		opp: "This economic intervention distorts natural markets, creates significant unintended consequences (e.g., inflation, job loss), and fails to achieve its stated goals while imposing unacceptable costs on businesses and consumers.",
	},
	"regulation": {
		gov: "This regulation addresses critical market/societal failures, protects vulnerable stakeholders (e.g., consumers, environment), and fosters a fairer, safer environment without stifling necessary innovation.",
		opp: "This regulation stifles innovation, imposes excessive compliance costs that disproportionately harm small entities, and will fail to deliver the promised benefits while creating significant bureaucratic burdens.",
	},
	"liberalization": {
		gov: "This liberalization expands essential freedoms, fosters innovation, and promotes societal progress by removing outdated or unjust restrictions, with manageable and outweighed risks.",
		opp: "This liberalization introduces unacceptable harms and systemic risks to society (e.g., public safety, moral decline), disproportionately affecting vulnerable groups, and outweighing any perceived individual benefits.",
	},
	"environmental": {
		gov: "This policy critically addresses urgent environmental degradation and ensures long-term ecological sustainability, which is paramount for current and future generations, even if it entails short-term economic adjustments.",
		opp: "This environmental policy is economically unfeasible, unfairly burdens specific industries or demographics, and offers insufficient tangible benefits to justify its immense costs or infringements on economic freedom.",
	},
	"technology": {
		gov: "This policy ensures that technological advancement proceeds ethically and safely, maximizing its benefits for society while proactively mitigating risks like bias, surveillance, or job displacement.",
		opp: "This policy unduly stifles innovation and technological progress, is based on an insufficient understanding of the tech landscape, and will lead to unforeseen negative consequences for economic competitiveness and individual freedoms.",
	},
}

var defaultCaseTheory = caseTheoryPair{
	gov: "This policy addresses significant, demonstrable problems through effective and pragmatic mechanisms that will create net positive outcomes for society as a whole.",
	opp: "This policy fails to genuinely solve underlying problems, while creating new and substantial harms that outweigh any theoretical benefits, leading to a worse status quo.",
}

// caseTheoryFamilyOrder is the precedence used when a motion matches
// several families.
var caseTheoryFamilyOrder = []string{
	"prohibition", "economic", "regulation", "liberalization", "environmental", "technology",
}

// CaseTheory returns the bench's core theory of the round for the most
// specific family the motion matched.
func CaseTheory(role bp.Role, a MotionAnalysis) string {
	pair := defaultCaseTheory
	for _, family := range caseTheoryFamilyOrder {
		if a.hasType(family) {
			pair = caseTheories[family]
			break
		}
	}
	if role.IsGovernment() {
		return pair.gov
	}
	return pair.opp
}
