package session

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"filevora/internal/procapi"
	"filevora/internal/services"
)

// Processor is the backend surface the runner needs. *procapi.Client
// satisfies it.
type Processor interface {
	Process(ctx context.Context, req procapi.JobRequest, progress func(procapi.ProgressUpdate)) (*procapi.JobResult, error)
}

// Run submits the current selection as a job and drives the session through
// its states. It blocks until the run finishes, the context is cancelled, or
// a newer run supersedes it.
func (s *Session) Run(ctx context.Context, client Processor, params procapi.JobParams) (*procapi.JobResult, error) {
	tool := s.Tool()
	paths := s.Files()
	gen := s.Begin()

	files := make([]procapi.UploadFile, 0, len(paths))
	handles := make([]*os.File, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			wrapped := services.Wrap(services.ErrValidation, tool.ID, "run", "cannot open "+filepath.Base(path), err)
			s.Fail(gen, wrapped)
			closeAll(handles)
			return nil, wrapped
		}
		handles = append(handles, f)
		files = append(files, procapi.UploadFile{Name: filepath.Base(path), Data: f})
	}
	defer closeAll(handles)

	stop := s.startTicker(ctx, gen)
	defer stop()

	result, err := client.Process(ctx, procapi.JobRequest{
		Tool:    tool,
		Files:   files,
		Options: procapi.BuildOptions(tool, params),
	}, func(update procapi.ProgressUpdate) {
		if update.Stage != procapi.StageUploading {
			s.MarkProcessing(gen)
		}
	})
	if err != nil {
		s.Fail(gen, err)
		return nil, err
	}
	if !s.Complete(gen, result) {
		return nil, services.Wrap(services.ErrCancelled, tool.ID, "run", "Cancelled", nil)
	}
	return result, nil
}

// startTicker animates the cosmetic progress until stopped. Uploading moves
// in larger random steps than processing.
func (s *Session) startTicker(ctx context.Context, gen uint64) func() {
	done := make(chan struct{})
	go func() {
		upload := time.NewTicker(time.Duration(s.opts.UploadTickMillis) * time.Millisecond)
		process := time.NewTicker(time.Duration(s.opts.ProcessTickMillis) * time.Millisecond)
		defer upload.Stop()
		defer process.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-upload.C:
				if s.State() == StateUploading {
					s.Advance(gen, rand.Float64()*8)
				}
			case <-process.C:
				if s.State() == StateProcessing {
					s.Advance(gen, rand.Float64()*4)
				}
			}
		}
	}()
	var once bool
	return func() {
		if !once {
			once = true
			close(done)
		}
	}
}

func closeAll(files []*os.File) {
	for _, f := range files {
		f.Close()
	}
}
