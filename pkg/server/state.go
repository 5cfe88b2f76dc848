package server

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"storyboard/pkg/schema"
	"storyboard/pkg/storyboard"
	"storyboard/pkg/utils"
)

// copiedFor is how long a copy indicator stays visible.
const copiedFor = 2 * time.Second

// State is everything the presentation layer remembers between requests.
// The core packages never see it; they receive plain arguments.
type State struct {
	Selections schema.GenerationRequest `json:"selections"`
	Record     *storyboard.Record       `json:"record,omitempty"`
	Busy       bool                     `json:"busy"`
	Error      string                   `json:"error,omitempty"`
	Copied     string                   `json:"copied,omitempty"`
	CopiedAt   *time.Time               `json:"copiedAt,omitempty"`
}

func (s *Server) snapshot() State {
	s.mu.RLock()
	st := s.state
	s.mu.RUnlock()

	st.Busy = s.busy.Load()
	if st.CopiedAt != nil && s.Now().Sub(*st.CopiedAt) >= copiedFor {
		st.Copied, st.CopiedAt = "", nil
	}
	return st
}

func (s *Server) record() *storyboard.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Record
}

func (s *Server) update(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	s.mu.Unlock()
}

// reset clears the script, result, error and copy indicator but keeps the style selections.
func (s *Server) reset() {
	s.update(func(st *State) {
		st.Selections.Script = ""
		st.Record = nil
		st.Error = ""
		st.Copied, st.CopiedAt = "", nil
	})
}

// LoadState restores a session saved by a previous run. A missing file is not an error.
func (s *Server) LoadState(path string) error {
	s.StatePath = path
	if path == "" {
		return nil
	}
	st, err := utils.Load[State](path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	st.Busy = false
	st.Copied, st.CopiedAt = "", nil
	s.update(func(cur *State) { *cur = st })
	return nil
}

func (s *Server) saveState() {
	if s.StatePath == "" {
		return
	}
	if err := utils.Save(s.StatePath, s.snapshot()); err != nil {
		log.Warn("failed to save state", "path", s.StatePath, "error", err)
	}
}
