// Package speech builds the simulated speakers' output: full speeches,
// engagement-aware speeches, and points of information. All content comes
// from role-keyed template builders; the registry maps replace any dispatch
// on role codes, so adding a role means adding a map entry.
package speech

import (
	"fmt"
	"math/rand"

	"github.com/saminadamn/bp-debate-simulator/internal/analysis"
	"github.com/saminadamn/bp-debate-simulator/internal/bp"
)

// Context carries everything a builder needs about the round so far.
type Context struct {
	Motion        string
	UserRole      bp.Role
	UserSpeech    string
	UserArguments []analysis.ArgumentSignal
	Previous      []bp.Speech
	SkillLevel    string
	Notes         string
}

// Framework is the strategic plan a role speaks to.
type Framework struct {
	CaseTheory          string   `json:"caseTheory"`
	Burdens             []string `json:"burdens"`
	UniqueContributions []string `json:"uniqueContributions"`
	ClashPoints         []string `json:"clashPoints"`
	Extensions          []string `json:"extensions"`
}

type builderFunc func(Context, Framework) string

// Generator owns the role registries and the RNG used for POI selection.
// Not safe for concurrent use; callers build one per request.
type Generator struct {
	builders map[bp.Role]builderFunc
	engaged  map[bp.Role]engagedFunc
	rng      *rand.Rand
}

// NewGenerator returns a generator drawing POI choices from the given RNG.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		builders: map[bp.Role]builderFunc{
			bp.PM:  buildPM,
			bp.LO:  buildLO,
			bp.DPM: buildDPM,
			bp.DLO: buildDLO,
			bp.MG:  buildMG,
			bp.MO:  buildMO,
			bp.GW:  buildGW,
			bp.OW:  buildOW,
		},
		engaged: map[bp.Role]engagedFunc{
			bp.LO:  buildLOEngaged,
			bp.DPM: buildDPMEngaged,
			bp.DLO: buildDLOEngaged,
			bp.MG:  buildMGEngaged,
			bp.MO:  buildMOEngaged,
			bp.GW:  buildGWEngaged,
			bp.OW:  buildOWEngaged,
		},
		rng: rng,
	}
}

// Speech builds the full speech for a role. Unknown roles get the generic
// fallback so the caller always has prose.
func (g *Generator) Speech(role bp.Role, ctx Context) string {
	fw := FrameworkFor(role, ctx)
	if build, ok := g.builders[role]; ok {
		return build(ctx, fw)
	}
	return genericSpeech(role, ctx)
}

func genericSpeech(role bp.Role, ctx Context) string {
	return fmt.Sprintf(`Thank you, Chair. As %s, I present my analysis of this motion.

The motion before us, "%s", deserves careful scrutiny on its merits, its mechanism, and its impacts, and that is the analysis I offer the house today.

Thank you.`, role.Name(), ctx.Motion)
}

// FrameworkFor derives a role's strategic framework from the round context.
func FrameworkFor(role bp.Role, ctx Context) Framework {
	if build, ok := frameworkBuilders[role]; ok {
		return build(ctx)
	}
	return Framework{
		CaseTheory:          "Present arguments for the assigned bench",
		Burdens:             []string{"Present arguments"},
		UniqueContributions: []string{"Bench contribution"},
		ClashPoints:         []string{"Core policy clash"},
	}
}

var frameworkBuilders = map[bp.Role]func(Context) Framework{
	bp.PM: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          pmCaseTheory(ctx.Motion),
			Burdens:             []string{"Establish framework", "Present core arguments", "Demonstrate positive impacts"},
			UniqueContributions: []string{"Clear definition of the motion and its scope", "Establishment of the government's core framework", "Introduction of primary substantive arguments for the motion"},
			ClashPoints:         pmClashPoints(ctx),
		}
	},
	bp.LO: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          loCaseTheory(ctx.Motion),
			Burdens:             []string{"Challenge government framework", "Present alternative vision", "Establish opposition case"},
			UniqueContributions: []string{"Definitional challenge to government framework", "Alternative policy framework", "Systematic rebuttal of government arguments"},
			ClashPoints:         loClashPoints(ctx),
		}
	},
	bp.DPM: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          "Defend government framework while extending case with new substantive material",
			Burdens:             []string{"Defend government framework", "Respond to opposition", "Extend government case"},
			UniqueContributions: []string{"Framework defense against opposition challenges", "Systematic response to opposition arguments", "New substantive extensions to government case"},
			ClashPoints:         []string{"Framework validity", "Opposition rebuttal responses", "Government case extensions"},
		}
	},
	bp.DLO: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          "Systematically dismantle government responses and extend opposition case with new analysis",
			Burdens:             []string{"Systematic rebuttal", "Extend opposition case", "Crystallize clash"},
			UniqueContributions: []string{"Systematic dismantling of government responses", "Extension of opposition case with new analysis", "Crystallization of key clashes"},
			ClashPoints:         []string{"Government response inadequacy", "Opposition case extension", "Key clash points"},
		}
	},
	bp.MG: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          "Support OG framework while introducing new dimensions that extend debate scope",
			Burdens:             []string{"Support OG", "Introduce new dimension", "Extend debate scope"},
			UniqueContributions: []string{"Support for OG framework", "Introduction of new dimensions", "Extension of debate scope"},
			ClashPoints:         []string{"OG framework support", "New dimensions introduction", "Debate scope extension"},
			Extensions:          []string{"International competitiveness and global standards", "Intergenerational justice and future sustainability"},
		}
	},
	bp.MO: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          "Support OO framework while introducing new opposition angles and responding to CG",
			Burdens:             []string{"Support OO", "Introduce new opposition angle", "Respond to CG"},
			UniqueContributions: []string{"Support for OO framework", "Introduction of new opposition angles", "Response to CG"},
			ClashPoints:         []string{"OO framework support", "New opposition angles introduction", "CG response"},
			Extensions:          []string{"Democratic legitimacy crisis", "Intergenerational justice"},
		}
	},
	bp.GW: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          "Summarize government case, provide final rebuttals, and offer comparative weighing",
			Burdens:             []string{"Summarize government", "Final rebuttals", "Comparative weighing"},
			UniqueContributions: []string{"Government case summary", "Final rebuttals", "Comparative weighing"},
			ClashPoints:         []string{"Government case summary", "Final rebuttals", "Comparative weighing"},
		}
	},
	bp.OW: func(ctx Context) Framework {
		return Framework{
			CaseTheory:          "Summarize opposition case, analyze final clashes, and provide impact weighing",
			Burdens:             []string{"Summarize opposition", "Final clash analysis", "Impact weighing"},
			UniqueContributions: []string{"Opposition case summary", "Final clash analysis", "Impact weighing"},
			ClashPoints:         []string{"Opposition case summary", "Final clash analysis", "Impact weighing"},
		}
	},
}

func pmCaseTheory(motion string) string {
	if containsFold(motion, "ban") {
		return "Establish the necessity of the ban to mitigate a significant societal harm and outline a clear, enforceable mechanism."
	}
	return "Establish the government's framework, define key terms, and present the core arguments for the motion's positive impact."
}

func pmClashPoints(ctx Context) []string {
	clashes := []string{"Motion definition and scope", "Government framework validity", "Primary impacts of the policy"}
	if containsFold(ctx.Motion, "economic") || containsFold(ctx.Motion, "tax") {
		clashes = append(clashes, "Economic efficiency vs. social equity")
	}
	if containsFold(ctx.Motion, "rights") || containsFold(ctx.Motion, "freedom") {
		clashes = append(clashes, "Individual rights vs. collective good")
	}
	return clashes
}

func loCaseTheory(motion string) string {
	switch {
	case containsFold(motion, "ban"):
		return "Challenge enforcement feasibility and propose harm reduction alternatives"
	case containsFold(motion, "tax"):
		return "Demonstrate regressive impacts and market distortion effects"
	default:
		return "Challenge government framework and present alternative approach"
	}
}

func loClashPoints(ctx Context) []string {
	clashes := []string{"Framework definition", "Policy effectiveness"}
	for _, arg := range ctx.UserArguments {
		switch arg.Category {
		case "economic":
			clashes = append(clashes, "Economic impact analysis")
		case "rights":
			clashes = append(clashes, "Rights vs collective benefit")
		case "practical":
			clashes = append(clashes, "Implementation feasibility")
		}
	}
	return clashes
}
