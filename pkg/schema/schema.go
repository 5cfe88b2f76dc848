package schema

import (
	"github.com/invopop/jsonschema"
)

// GenerationResult is the storyboard produced by one successful parse.
// Fields without omitempty are required in the generated schema.
type GenerationResult struct {
	Title              string   `json:"title" jsonschema_description:"Viral video title in the narrative language"`
	Summary            string   `json:"summary" jsonschema_description:"SEO video description in the narrative language"`
	CharacterReference string   `json:"characterReference" jsonschema_description:"Visual DNA of the main character in English: face, hair and exact outfit"`
	Hook               string   `json:"hook,omitempty" jsonschema_description:"Opening hook in the narrative language"`
	Body               string   `json:"body,omitempty" jsonschema_description:"Story body in the narrative language"`
	Climax             string   `json:"climax,omitempty" jsonschema_description:"Climax in the narrative language"`
	CTA                string   `json:"cta,omitempty" jsonschema_description:"Call to action in the narrative language"`
	ThumbnailPrompt    string   `json:"thumbnailPrompt" jsonschema_description:"Thumbnail image generation prompt in English"`
	Tags               []string `json:"tags" jsonschema_description:"Optimized search tags"`
	Hashtags           []string `json:"hashtags" jsonschema_description:"Viral hashtags"`
	Scenes             []Scene  `json:"scenes" jsonschema_description:"Ordered storyboard scenes"`
}

// Scene is one storyboard unit. SceneNumber is expected to start at 1 and be contiguous.
type Scene struct {
	SceneNumber     int    `json:"sceneNumber" jsonschema_description:"1-based scene index"`
	Timeframe       string `json:"timeframe" jsonschema_description:"Time range of the scene, e.g. 0:00-0:05"`
	VisualPrompt    string `json:"visualPrompt" jsonschema_description:"English prompt that starts verbatim with characterReference"`
	VoiceOver       string `json:"voiceOver" jsonschema_description:"Narration in the narrative language"`
	Soundscape      string `json:"soundscape" jsonschema_description:"Sound design and music instruments"`
	ContinuityNotes string `json:"continuityNotes" jsonschema_description:"Transition and environment continuity guidance"`
}

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	s := r.Reflect(v)
	s.Version = ""
	return s
}

// ResultSchema is the output schema sent with every generation request.
var ResultSchema = generateSchema[GenerationResult]()
