package session

import (
	"path/filepath"
	"strings"
	"sync"

	"filevora/internal/procapi"
	"filevora/internal/services"
	"filevora/internal/tools"
)

// State is the phase a session is in.
type State string

const (
	StateIdle       State = "idle"
	StateUploading  State = "uploading"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Options tunes the cosmetic progress simulation.
type Options struct {
	UploadTickMillis  int
	ProcessTickMillis int
	UploadTarget      float64
	ProcessTarget     float64
}

func (o Options) withDefaults() Options {
	if o.UploadTickMillis <= 0 {
		o.UploadTickMillis = 250
	}
	if o.ProcessTickMillis <= 0 {
		o.ProcessTickMillis = 400
	}
	if o.UploadTarget <= 0 {
		o.UploadTarget = 60
	}
	if o.ProcessTarget <= o.UploadTarget {
		o.ProcessTarget = 95
	}
	return o
}

// Session holds the mutable state of one tool interaction.
type Session struct {
	mu         sync.Mutex
	tool       tools.Descriptor
	state      State
	files      []string
	generation uint64
	progress   float64
	result     *procapi.JobResult
	err        error
	opts       Options
}

// New builds an idle session for the given tool.
func New(tool tools.Descriptor, opts Options) *Session {
	return &Session{
		tool:  tool,
		state: StateIdle,
		opts:  opts.withDefaults(),
	}
}

// Tool returns the active tool descriptor.
func (s *Session) Tool() tools.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress returns the current cosmetic progress percentage.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// Result returns the job result once the session reached success.
func (s *Session) Result() *procapi.JobResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the failure once the session reached the error state.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Files returns the current selection.
func (s *Session) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// SelectFiles adds paths to the selection. Single-file tools keep only the
// most recent path; multi-file tools append, skipping duplicate filenames.
func (s *Session) SelectFiles(paths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if !s.tool.Multiple {
			s.files = []string{path}
			continue
		}
		name := filepath.Base(path)
		duplicate := false
		for _, existing := range s.files {
			if filepath.Base(existing) == name {
				duplicate = true
				break
			}
		}
		if !duplicate {
			s.files = append(s.files, path)
		}
	}
}

// RemoveFile drops one path from the selection.
func (s *Session) RemoveFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.files {
		if existing == path {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return
		}
	}
}

// SwitchTool replaces the active tool and resets the session. Any in-flight
// run becomes stale.
func (s *Session) SwitchTool(tool tools.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool = tool
	s.resetLocked()
}

// Reset returns the session to idle, invalidating any in-flight run.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.generation++
	s.state = StateIdle
	s.files = nil
	s.progress = 0
	s.result = nil
	s.err = nil
}

// Begin starts a new run and returns its generation token. Completions
// carrying an older token are ignored.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = StateUploading
	s.progress = 0
	s.result = nil
	s.err = nil
	return s.generation
}

// MarkProcessing moves a run from uploading to processing.
func (s *Session) MarkProcessing(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.state != StateUploading {
		return
	}
	s.state = StateProcessing
	if s.progress < s.opts.UploadTarget {
		s.progress = s.opts.UploadTarget
	}
}

// Advance nudges the cosmetic progress toward the current stage's target.
// The increment is the caller's (typically randomized) step.
func (s *Session) Advance(gen uint64, step float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	var target float64
	switch s.state {
	case StateUploading:
		target = s.opts.UploadTarget
	case StateProcessing:
		target = s.opts.ProcessTarget
	default:
		return
	}
	s.progress += step
	if s.progress > target {
		s.progress = target
	}
}

// Complete records a successful result. Stale generations are discarded.
func (s *Session) Complete(gen uint64, result *procapi.JobResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.state = StateSuccess
	s.progress = 100
	s.result = result
	s.err = nil
	return true
}

// Fail records a failed run. Silent errors, such as a cancelled cloud
// picker, return the session to idle without surfacing anything. Stale
// generations are discarded.
func (s *Session) Fail(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	if services.IsSilent(err) {
		s.state = StateIdle
		s.progress = 0
		s.err = nil
		return true
	}
	s.state = StateError
	s.err = err
	return true
}
