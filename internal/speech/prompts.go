package speech

import (
	"fmt"
	"strings"
)

// Prompt builders for the optional model backend. The service works fully
// on templates; when a model client is configured these prompts are the
// only content it is asked for.

// POIPrompt renders the instruction for a model-generated point of
// information against the live transcript.
func POIPrompt(transcript, role, motion string, timeSpoken int, skillLevel string) string {
	var guidance string
	switch skillLevel {
	case "beginner":
		guidance = "Keep it simple and direct. Focus on basic clarification or obvious contradictions."
	case "advanced":
		guidance = "Use sophisticated questioning. Challenge methodology, definitions, or strategic implications."
	default:
		guidance = "Use moderate complexity. Challenge assumptions or ask for evidence."
	}

	return fmt.Sprintf(`You are an AI debater listening to a live speech in a British Parliamentary debate.

CONTEXT:
Motion: %s
Speaker Role: %s
Time Spoken: %d:%02d
Current Speech Content: %q

SKILL LEVEL: %s

Generate a contextual Point of Information (POI) that:
1. Directly challenges a specific claim the speaker just made
2. Is appropriate for their skill level (%s)
3. Is concise (1-2 sentences max)
4. Follows BP POI conventions
5. Targets a logical weakness or assumption

%s

Generate only the POI text (no introduction):`,
		motion, role, timeSpoken/60, timeSpoken%60,
		transcript, strings.ToUpper(skillLevel), skillLevel, guidance)
}

// SpeechPrompt renders the instruction for a model-generated speech with
// the full debate state attached.
func SpeechPrompt(ctx Context, roleName, debateState string) string {
	return fmt.Sprintf(`You are an AI debater delivering a full speech in a British Parliamentary debate.

%s

Deliver the %s speech on the motion %q. Engage directly with the arguments already made, fulfil the role's burdens, and structure the speech with clear labelled arguments. Speak in first person as the debater; do not describe what you are doing.`,
		debateState, roleName, ctx.Motion)
}
