package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"filevora/internal/procapi"
	"filevora/internal/services"
	"filevora/internal/tools"
)

func descriptor(t *testing.T, id string) tools.Descriptor {
	t.Helper()
	reg, err := tools.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	desc, ok := reg.Lookup(id)
	if !ok {
		t.Fatalf("tool %s not found", id)
	}
	return desc
}

func TestSelectFilesSingleToolReplaces(t *testing.T) {
	s := New(descriptor(t, "rotate-image"), Options{})
	s.SelectFiles("/tmp/a.png")
	s.SelectFiles("/tmp/b.png")
	files := s.Files()
	if len(files) != 1 || files[0] != "/tmp/b.png" {
		t.Fatalf("unexpected selection %v", files)
	}
}

func TestSelectFilesMultiToolDedupesByName(t *testing.T) {
	s := New(descriptor(t, "merge-pdf"), Options{})
	s.SelectFiles("/tmp/a.pdf", "/tmp/b.pdf")
	s.SelectFiles("/other/a.pdf")
	files := s.Files()
	if len(files) != 2 {
		t.Fatalf("expected duplicate filename skipped, got %v", files)
	}
}

func TestStateTransitions(t *testing.T) {
	s := New(descriptor(t, "compress-pdf"), Options{})
	if s.State() != StateIdle {
		t.Fatalf("new session state %q", s.State())
	}
	gen := s.Begin()
	if s.State() != StateUploading {
		t.Fatalf("after Begin state %q", s.State())
	}
	s.MarkProcessing(gen)
	if s.State() != StateProcessing {
		t.Fatalf("after MarkProcessing state %q", s.State())
	}
	if !s.Complete(gen, &procapi.JobResult{DownloadURL: "/d", Filename: "out.pdf"}) {
		t.Fatal("Complete rejected current generation")
	}
	if s.State() != StateSuccess {
		t.Fatalf("after Complete state %q", s.State())
	}
	if s.Progress() != 100 {
		t.Fatalf("success should pin progress at 100, got %v", s.Progress())
	}
}

func TestStaleCompletionDiscarded(t *testing.T) {
	s := New(descriptor(t, "compress-pdf"), Options{})
	old := s.Begin()
	s.SwitchTool(descriptor(t, "merge-pdf"))
	if s.Complete(old, &procapi.JobResult{DownloadURL: "/d"}) {
		t.Fatal("stale completion must be discarded")
	}
	if s.State() != StateIdle {
		t.Fatalf("tool switch should reset to idle, got %q", s.State())
	}
	if s.Result() != nil {
		t.Fatal("stale result must not be recorded")
	}
}

func TestStaleFailureDiscarded(t *testing.T) {
	s := New(descriptor(t, "compress-pdf"), Options{})
	old := s.Begin()
	s.Reset()
	if s.Fail(old, errors.New("boom")) {
		t.Fatal("stale failure must be discarded")
	}
	if s.State() != StateIdle {
		t.Fatalf("unexpected state %q", s.State())
	}
}

func TestSilentFailureReturnsToIdle(t *testing.T) {
	s := New(descriptor(t, "compress-pdf"), Options{})
	gen := s.Begin()
	cancelErr := services.Wrap(services.ErrCancelled, "compress-pdf", "run", "Cancelled", nil)
	if !s.Fail(gen, cancelErr) {
		t.Fatal("current-generation failure should apply")
	}
	if s.State() != StateIdle {
		t.Fatalf("cancelled run should reset to idle, got %q", s.State())
	}
	if s.Err() != nil {
		t.Fatal("cancelled run must not surface an error")
	}
}

func TestFailureSurfacesError(t *testing.T) {
	s := New(descriptor(t, "compress-pdf"), Options{})
	gen := s.Begin()
	failure := services.Wrap(services.ErrUnavailable, "compress-pdf", "run", "backend down", nil)
	s.Fail(gen, failure)
	if s.State() != StateError {
		t.Fatalf("unexpected state %q", s.State())
	}
	if !errors.Is(s.Err(), services.ErrUnavailable) {
		t.Fatalf("unexpected error %v", s.Err())
	}
}

func TestAdvanceCapsAtStageTarget(t *testing.T) {
	s := New(descriptor(t, "compress-pdf"), Options{UploadTarget: 60, ProcessTarget: 95})
	gen := s.Begin()
	for i := 0; i < 100; i++ {
		s.Advance(gen, 8)
	}
	if got := s.Progress(); got != 60 {
		t.Fatalf("upload progress should cap at 60, got %v", got)
	}
	s.MarkProcessing(gen)
	for i := 0; i < 100; i++ {
		s.Advance(gen, 4)
	}
	if got := s.Progress(); got != 95 {
		t.Fatalf("processing progress should cap at 95, got %v", got)
	}
}

type stubProcessor struct {
	result *procapi.JobResult
	err    error
	gotReq procapi.JobRequest
}

func (p *stubProcessor) Process(ctx context.Context, req procapi.JobRequest, progress func(procapi.ProgressUpdate)) (*procapi.JobResult, error) {
	p.gotReq = req
	if progress != nil {
		progress(procapi.ProgressUpdate{Stage: procapi.StageUploading, Percent: 50})
		progress(procapi.ProgressUpdate{Stage: procapi.StageConverting})
	}
	return p.result, p.err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestRunHappyPath(t *testing.T) {
	s := New(descriptor(t, "rotate-image"), Options{UploadTickMillis: 10, ProcessTickMillis: 10})
	s.SelectFiles(writeTempFile(t, "a.png", "png-bytes"))

	stub := &stubProcessor{result: &procapi.JobResult{DownloadURL: "/d/out", Filename: "rotated.png"}}
	result, err := s.Run(context.Background(), stub, procapi.JobParams{Angle: 180})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Filename != "rotated.png" {
		t.Fatalf("unexpected result %+v", result)
	}
	if s.State() != StateSuccess {
		t.Fatalf("unexpected state %q", s.State())
	}
	if stub.gotReq.Options["angle"] != "180" {
		t.Fatalf("unexpected options %v", stub.gotReq.Options)
	}
}

func TestRunMissingFileFailsValidation(t *testing.T) {
	s := New(descriptor(t, "rotate-image"), Options{UploadTickMillis: 10, ProcessTickMillis: 10})
	s.SelectFiles(filepath.Join(t.TempDir(), "missing.png"))

	stub := &stubProcessor{}
	_, err := s.Run(context.Background(), stub, procapi.JobParams{})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if s.State() != StateError {
		t.Fatalf("unexpected state %q", s.State())
	}
}
