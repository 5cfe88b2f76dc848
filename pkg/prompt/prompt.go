package prompt

import (
	"fmt"
	"strings"

	"storyboard/pkg/schema"
)

const systemTemplate = `You are a Senior AI Cinematographer specializing in CHARACTER LOCK and VISUAL CONTINUITY.
Your absolute priority is ensuring the character looks 100% identical from Scene 1 to the final Scene.

--- MANDATORY PRODUCTION RULES ---

1. THE CHARACTER DNA (Visual Anchor):
   - First, define a 'characterReference' in {technical_language}. This is the "Visual DNA".
   - It MUST be extremely specific: [Face details: eye shape/color, nose, jawline] + [Hair: texture, exact length, style] + [Exact Outfit: Fabric type, specific colors, unique marks like buttons, stains, or logos].
   - Example: "A 25-year-old woman with pale skin, sharp emerald eyes, messy raven-black bob haircut, wearing a weathered tan canvas jacket with a high collar and brass buttons over a white ribbed turtleneck."

2. VERBATIM PROMPT PREFIXING (The Subject Lock):
   - EVERY single 'visualPrompt' MUST start with this EXACT 'characterReference' block.
   - NEVER use pronouns like "He", "She", "The character", or "The man from before".
   - If you summarize or change even one word of the character description between scenes, the production fails.
   - Structure: "[Visual DNA Prefix], [Specific Action], [Environment Details], [Camera Angle], [Lighting Style in {visual_style}]".

3. NARRATIVE LANGUAGE:
   - All story/voiceover text ('title', 'summary', 'voiceOver', 'hook', 'body', 'climax', 'cta') MUST be in {language}.
   - All technical instructions ('visualPrompt', 'thumbnailPrompt', 'characterReference') MUST be in {technical_language}.

4. CONTINUITY OF ENVIRONMENT:
   - Keep the setting consistent. If they are in a room, describe the same window, the same light source, and the same textures in every scene until they leave the room.
   - Only change the environment when the script explicitly moves to a new location.

5. PRODUCTION VOLUME:
   - {complexity_rules}

RETURN ONLY VALID JSON.`

const userTemplate = `STRICT CONTINUITY PRODUCTION INITIATED.
Script: {script}
Aesthetic: {visual_style}
Music/Audio: {music_style}
Gender: {gender}
Output Language: {language}
Video Format: {video_type}
{complexity_rules}`

// TechnicalLanguage is used for every field consumed by image and video generators.
const TechnicalLanguage = "English"

// Payload is everything the generative model receives for one request.
type Payload struct {
	System string
	User   string
	Schema any
}

// ComplexityRules renders the scene count and aspect ratio line for a policy.
func ComplexityRules(p schema.SceneCountPolicy) string {
	if p.Exact() {
		return fmt.Sprintf("SCENE COUNT: Exactly %d scenes. ASPECT RATIO: %s (%s).", p.Min, p.AspectRatio, p.Orientation)
	}
	return fmt.Sprintf("SCENE COUNT: Between %d to %d scenes. ASPECT RATIO: %s (%s).", p.Min, p.Max, p.AspectRatio, p.Orientation)
}

// Compose builds the system instruction, user message and output schema for req.
// It performs no I/O and returns the same payload for the same request.
func Compose(req schema.GenerationRequest) (Payload, error) {
	if err := req.Validate(); err != nil {
		return Payload{}, err
	}
	policy, err := schema.PolicyFor(req.VideoType)
	if err != nil {
		return Payload{}, err
	}
	rules := ComplexityRules(policy)

	system := strings.NewReplacer(
		"{technical_language}", TechnicalLanguage,
		"{visual_style}", req.VisualStyle.Label(),
		"{language}", req.Language.Label(),
		"{complexity_rules}", rules,
	).Replace(systemTemplate)

	// The script goes in last so placeholder-looking text inside it is left alone.
	user := strings.NewReplacer(
		"{visual_style}", req.VisualStyle.Label(),
		"{music_style}", req.MusicStyle.Label(),
		"{gender}", req.Gender.Label(),
		"{language}", req.Language.Label(),
		"{video_type}", req.VideoType.Label(),
		"{complexity_rules}", rules,
	).Replace(userTemplate)
	user = strings.Replace(user, "{script}", req.Script, 1)

	return Payload{
		System: system,
		User:   user,
		Schema: schema.ResultSchema,
	}, nil
}
