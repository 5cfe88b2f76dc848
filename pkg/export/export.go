// Package export renders a storyboard as a plain-text production document.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"storyboard/pkg/storyboard"
)

const (
	rule    = "===================================================="
	divider = "----------------------------------------------------"

	// TimeLayout formats the creation timestamp in the header.
	TimeLayout = "2006-01-02 15:04:05 MST"

	filenameRunes  = 20
	filenameSuffix = "_storyboard.txt"
)

// Text renders rec. The output is meant for people; it is not parsed back.
func Text(rec *storyboard.Record) string {
	if rec == nil {
		return ""
	}
	r := rec.Result
	var b strings.Builder

	fmt.Fprintf(&b, "PROJECT: %s\n", strings.ToUpper(r.Title))
	fmt.Fprintf(&b, "CREATED AT: %s\n", rec.CreatedAt.Format(TimeLayout))
	fmt.Fprintf(&b, "%s\n\n", rule)

	b.WriteString("[SEO METADATA]\n")
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Description: %s\n", r.Summary)
	fmt.Fprintf(&b, "Tags: %s\n", strings.Join(r.Tags, ", "))
	fmt.Fprintf(&b, "Hashtags: %s\n\n", strings.Join(r.Hashtags, ", "))

	b.WriteString("[THUMBNAIL MASTER PROMPT]\n")
	fmt.Fprintf(&b, "%s\n\n", r.ThumbnailPrompt)

	b.WriteString("[CHARACTER BIBLE - CONSISTENCY ANCHOR]\n")
	fmt.Fprintf(&b, "%s\n\n", r.CharacterReference)

	b.WriteString("[SEQUENTIAL STORYBOARD]\n")
	for _, s := range r.Scenes {
		fmt.Fprintf(&b, "SCENE %d [%s]\n", s.SceneNumber, s.Timeframe)
		fmt.Fprintf(&b, "VISUAL PROMPT: %s\n", s.VisualPrompt)
		fmt.Fprintf(&b, "NARRATION (VO): %s\n", s.VoiceOver)
		fmt.Fprintf(&b, "AUDIO (SFX): %s\n", s.Soundscape)
		fmt.Fprintf(&b, "TRANSITION: %s\n", s.ContinuityNotes)
		fmt.Fprintf(&b, "%s\n", divider)
	}
	return b.String()
}

// Filename derives the download name from the first 20 runes of title.
func Filename(title string) string {
	runes := []rune(title)
	if len(runes) > filenameRunes {
		runes = runes[:filenameRunes]
	}
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			runes[i] = '_'
		case strings.ContainsRune(`/\:*?"<>|`, r):
			runes[i] = '_'
		}
	}
	name := string(runes)
	if strings.Trim(name, "_") == "" {
		name = "untitled"
	}
	return name + filenameSuffix
}
