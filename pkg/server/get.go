package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"storyboard/pkg/export"
	"storyboard/pkg/schema"
	"storyboard/pkg/storyboard"
	"storyboard/pkg/utils"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Storyboard API",
		"status":  "ok",
	})
}

type optionView struct {
	Value   string                   `json:"value"`
	Label   string                   `json:"label"`
	Preview string                   `json:"preview,omitempty"`
	Policy  *schema.SceneCountPolicy `json:"policy,omitempty"`
}

type optionsResponse struct {
	VisualStyles []optionView            `json:"visualStyles"`
	MusicStyles  []optionView            `json:"musicStyles"`
	Languages    []optionView            `json:"languages"`
	VideoTypes   []optionView            `json:"videoTypes"`
	Genders      []optionView            `json:"genders"`
	Defaults     schema.GenerationRequest `json:"defaults"`
}

func views[T interface {
	~string
	schema.Option
}](opts []T, preview func(T) string) []optionView {
	out := make([]optionView, 0, len(opts))
	for _, o := range opts {
		v := optionView{Value: string(o), Label: o.Label()}
		if preview != nil {
			v.Preview = preview(o)
		}
		out = append(out, v)
	}
	return out
}

func (s *Server) handleGetOptions(c echo.Context) error {
	videoTypes := views(schema.VideoTypes(), nil)
	for i, v := range schema.VideoTypes() {
		if p, err := schema.PolicyFor(v); err == nil {
			videoTypes[i].Policy = &p
		}
	}
	return c.JSON(http.StatusOK, optionsResponse{
		VisualStyles: views(schema.VisualStyles(), schema.VisualStyle.Preview),
		MusicStyles:  views(schema.MusicStyles(), schema.MusicStyle.Preview),
		Languages:    views(schema.Languages(), nil),
		VideoTypes:   videoTypes,
		Genders:      views(schema.Genders(), nil),
		Defaults:     schema.DefaultRequest(),
	})
}

func (s *Server) handleGetState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) handleGetResult(c echo.Context) error {
	rec := s.record()
	if rec == nil {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("no storyboard generated yet"))
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleDeleteResult(c echo.Context) error {
	s.reset()
	s.saveState()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetExport(c echo.Context) error {
	rec := s.record()
	if rec == nil {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("no storyboard generated yet"))
	}
	name := export.Filename(rec.Result.Title)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(export.Text(rec)))
}

// handleGetCopy returns one copyable field as plain text and marks it copied.
// Fields: title, summary, thumbnail, anchor, scene-N.
func (s *Server) handleGetCopy(c echo.Context) error {
	rec := s.record()
	if rec == nil {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("no storyboard generated yet"))
	}
	field := c.Param("field")
	text, ok := copyField(rec, field)
	if !ok {
		return c.JSON(http.StatusNotFound, utils.ErrJSON(fmt.Sprintf("unknown field %q", field)))
	}

	now := s.Now()
	s.update(func(st *State) {
		st.Copied, st.CopiedAt = field, &now
	})
	return c.String(http.StatusOK, text)
}

func copyField(rec *storyboard.Record, field string) (string, bool) {
	r := rec.Result
	switch field {
	case "title":
		return r.Title, true
	case "summary":
		return r.Summary, true
	case "thumbnail":
		return r.ThumbnailPrompt, true
	case "anchor":
		return r.CharacterReference, true
	}
	n, ok := strings.CutPrefix(field, "scene-")
	if !ok {
		return "", false
	}
	num, err := strconv.Atoi(n)
	if err != nil {
		return "", false
	}
	for _, sc := range r.Scenes {
		if sc.SceneNumber == num {
			return sc.VisualPrompt, true
		}
	}
	return "", false
}
