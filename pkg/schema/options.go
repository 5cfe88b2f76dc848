package schema

import "slices"

// VisualStyle is the aesthetic applied to every visual prompt.
type VisualStyle string

const (
	VisualCinematic        VisualStyle = "cinematic"
	VisualMakotoShinkai    VisualStyle = "makoto_shinkai"
	VisualAnimeGhibli      VisualStyle = "anime_ghibli"
	VisualDarkFantasyAnime VisualStyle = "dark_fantasy_anime"
	VisualRealistic        VisualStyle = "realistic"
	VisualCyberpunk        VisualStyle = "cyberpunk"
	Visual3DRender         VisualStyle = "3d_render"
	VisualSketch           VisualStyle = "sketch"
	VisualOilPainting      VisualStyle = "oil_painting"
)

var visualStyles = []VisualStyle{
	VisualCinematic,
	VisualMakotoShinkai,
	VisualAnimeGhibli,
	VisualDarkFantasyAnime,
	VisualRealistic,
	VisualCyberpunk,
	Visual3DRender,
	VisualSketch,
	VisualOilPainting,
}

func VisualStyles() []VisualStyle { return slices.Clone(visualStyles) }

func (v VisualStyle) IsValid() bool { return slices.Contains(visualStyles, v) }

// Label is the text interpolated into prompts.
func (v VisualStyle) Label() string {
	switch v {
	case VisualCinematic:
		return "Cinematic Movie"
	case VisualMakotoShinkai:
		return "Modern Makoto Shinkai Anime (Detailed Scenery, Vibrant Skies)"
	case VisualAnimeGhibli:
		return "Anime (Studio Ghibli Style)"
	case VisualDarkFantasyAnime:
		return "Dark Fantasy Anime (Gothic, Dark Magic, Somber)"
	case VisualRealistic:
		return "Photorealistic / Hyper-realistic"
	case VisualCyberpunk:
		return "Cyberpunk Neon"
	case Visual3DRender:
		return "Modern 3D Animation (Pixar-like)"
	case VisualSketch:
		return "Hand-drawn Pencil Sketch"
	case VisualOilPainting:
		return "Classic Oil Painting"
	}
	return ""
}

// MusicStyle is the audio atmosphere requested for the soundscape.
type MusicStyle string

const (
	MusicOrchestral  MusicStyle = "orchestral"
	MusicElectronic  MusicStyle = "electronic"
	MusicAmbient     MusicStyle = "ambient"
	MusicLofi        MusicStyle = "lofi"
	MusicDarkFantasy MusicStyle = "dark_fantasy"
	MusicCinematic   MusicStyle = "cinematic"
)

var musicStyles = []MusicStyle{
	MusicOrchestral,
	MusicElectronic,
	MusicAmbient,
	MusicLofi,
	MusicDarkFantasy,
	MusicCinematic,
}

func MusicStyles() []MusicStyle { return slices.Clone(musicStyles) }

func (m MusicStyle) IsValid() bool { return slices.Contains(musicStyles, m) }

func (m MusicStyle) Label() string {
	switch m {
	case MusicOrchestral:
		return "Orchestral / Epic"
	case MusicElectronic:
		return "Electronic / Synthwave"
	case MusicAmbient:
		return "Ambient / Nature"
	case MusicLofi:
		return "Lo-fi / Chill"
	case MusicDarkFantasy:
		return "Dark Fantasy / Gothic"
	case MusicCinematic:
		return "Modern Cinematic"
	}
	return ""
}

// Language is the narrative language of human-facing fields.
type Language string

const (
	LanguageIndonesian Language = "indonesian"
	LanguageEnglishUS  Language = "english_us"
	LanguageJapanese   Language = "japanese"
	LanguageKorean     Language = "korean"
)

var languages = []Language{
	LanguageIndonesian,
	LanguageEnglishUS,
	LanguageJapanese,
	LanguageKorean,
}

func Languages() []Language { return slices.Clone(languages) }

func (l Language) IsValid() bool { return slices.Contains(languages, l) }

func (l Language) Label() string {
	switch l {
	case LanguageIndonesian:
		return "Indonesian"
	case LanguageEnglishUS:
		return "English (US)"
	case LanguageJapanese:
		return "Japanese"
	case LanguageKorean:
		return "Korean"
	}
	return ""
}

// VideoType selects the scene count policy and aspect ratio.
type VideoType string

const (
	VideoShort VideoType = "short"
	VideoLong  VideoType = "long"
)

var videoTypes = []VideoType{VideoShort, VideoLong}

func VideoTypes() []VideoType { return slices.Clone(videoTypes) }

func (v VideoType) IsValid() bool { return slices.Contains(videoTypes, v) }

func (v VideoType) Label() string {
	switch v {
	case VideoShort:
		return "Short (15-60 seconds)"
	case VideoLong:
		return "Long (2-5 minutes)"
	}
	return ""
}

// Gender of the main character.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var genders = []Gender{GenderMale, GenderFemale}

func Genders() []Gender { return slices.Clone(genders) }

func (g Gender) IsValid() bool { return slices.Contains(genders, g) }

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return ""
}

// Option is implemented by every closed selection type.
type Option interface {
	IsValid() bool
	Label() string
}
