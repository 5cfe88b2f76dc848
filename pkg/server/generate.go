package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"storyboard/pkg/schema"
	"storyboard/pkg/storyboard"
	"storyboard/pkg/utils"
)

const errBusy = "a storyboard is already being generated"

func (s *Server) handlePostGenerate(c echo.Context) error {
	var req schema.GenerationRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("bind failed", "error", err)
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid request body"))
	}
	req = req.WithDefaults()

	if err := c.Validate(&req); err != nil {
		s.update(func(st *State) { st.Selections = req })
		return s.fail(c, http.StatusBadRequest, err.Error())
	}

	// A rejected request must not touch the running generation's selections.
	if !s.busy.CompareAndSwap(false, true) {
		return c.JSON(http.StatusConflict, utils.ErrJSON(errBusy))
	}
	defer s.busy.Store(false)

	s.update(func(st *State) {
		st.Selections = req
		st.Error = ""
	})

	ctx := c.Request().Context()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	rec, err := s.Generator.Generate(ctx, req)
	if err != nil {
		status := statusFor(err)
		log.Error("generation failed", "status", status, "error", err)
		return s.fail(c, status, err.Error())
	}

	s.update(func(st *State) {
		st.Record = rec
		st.Copied, st.CopiedAt = "", nil
	})
	s.saveState()
	return c.JSON(http.StatusOK, rec)
}

// fail records msg as the inline error and writes it to the client.
func (s *Server) fail(c echo.Context, status int, msg string) error {
	s.update(func(st *State) { st.Error = msg })
	return c.JSON(status, utils.ErrJSON(msg))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, schema.ErrEmptyInput), errors.Is(err, schema.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, storyboard.ErrExternalCall), errors.Is(err, storyboard.ErrMalformedResponse):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
