package agent

import (
	"errors"
	"testing"

	"filevora/internal/tools"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	reg, err := tools.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewResolver(reg, Options{})
}

func TestResolveMergeIntent(t *testing.T) {
	r := newResolver(t)

	res, err := r.Resolve(Request{Text: "merge these files"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tool.ID != "merge-pdf" {
		t.Fatalf("expected merge-pdf, got %s", res.Tool.ID)
	}

	res, err = r.Resolve(Request{Text: "combine my videos"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tool.ID != "merge-video" {
		t.Fatalf("expected merge-video, got %s", res.Tool.ID)
	}

	res, err = r.Resolve(Request{
		Text:  "join these together",
		Files: []FileHint{{Name: "clip.mp4", MIME: "video/mp4"}},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tool.ID != "merge-video" {
		t.Fatalf("first file MIME should steer to merge-video, got %s", res.Tool.ID)
	}
}

func TestResolveConvertIntent(t *testing.T) {
	r := newResolver(t)

	cases := []struct {
		name  string
		req   Request
		want  string
		extra func(t *testing.T, res *Resolution)
	}{
		{
			name: "image to pdf",
			req:  Request{Text: "convert this to pdf", Files: []FileHint{{Name: "a.png", MIME: "image/png"}}},
			want: "image-to-pdf",
		},
		{
			name: "pdf to word",
			req:  Request{Text: "change my pdf to docx", Files: []FileHint{{Name: "a.pdf", MIME: "application/pdf"}}},
			want: "pdf-to-word",
		},
		{
			name: "pdf to image",
			req:  Request{Text: "convert this pdf to png", Files: []FileHint{{Name: "a.pdf", MIME: "application/pdf"}}},
			want: "pdf-converter",
			extra: func(t *testing.T, res *Resolution) {
				if res.Params.Format != "PNG" {
					t.Errorf("unexpected format %q", res.Params.Format)
				}
			},
		},
		{
			name: "video to gif",
			req:  Request{Text: "make it a gif", Files: []FileHint{{Name: "a.mov", MIME: "video/quicktime"}}},
			want: "video-to-gif",
		},
		{
			name: "bare make verb",
			req:  Request{Text: "make this gif", Files: []FileHint{{Name: "clip.mp4", MIME: "video/mp4"}}},
			want: "video-to-gif",
		},
		{
			name: "create verb",
			req:  Request{Text: "create a gif from this", Files: []FileHint{{Name: "clip.mp4", MIME: "video/mp4"}}},
			want: "video-to-gif",
		},
		{
			name: "video to mp4",
			req:  Request{Text: "convert to mp4", Files: []FileHint{{Name: "a.avi", MIME: "video/x-msvideo"}}},
			want: "video-to-mp4",
		},
		{
			name: "extract mp3",
			req:  Request{Text: "convert this to mp3"},
			want: "video-to-mp3",
		},
		{
			name: "default image conversion",
			req:  Request{Text: "convert to webp", Files: []FileHint{{Name: "a.png", MIME: "image/png"}}},
			want: "convert-image",
			extra: func(t *testing.T, res *Resolution) {
				if res.Params.Format != "WEBP" {
					t.Errorf("unexpected format %q", res.Params.Format)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := r.Resolve(tc.req)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if res.Tool.ID != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.Tool.ID)
			}
			if tc.extra != nil {
				tc.extra(t, res)
			}
		})
	}
}

func TestResolveFallbackScoring(t *testing.T) {
	r := newResolver(t)

	res, err := r.Resolve(Request{Text: "I need the meme generator"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tool.ID != "meme-generator" {
		t.Fatalf("expected meme-generator, got %s", res.Tool.ID)
	}
	if res.Score <= 3 {
		t.Fatalf("expected score above threshold, got %d", res.Score)
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := newResolver(t)
	if _, err := r.Resolve(Request{Text: "xyzzy"}); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if _, err := r.Resolve(Request{Text: "   "}); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for blank text, got %v", err)
	}
}

func TestResolveCaseFolding(t *testing.T) {
	r := newResolver(t)
	res, err := r.Resolve(Request{Text: "MERGE THESE PDFS"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tool.ID != "merge-pdf" {
		t.Fatalf("expected merge-pdf, got %s", res.Tool.ID)
	}
}

func TestExtractParams(t *testing.T) {
	r := newResolver(t)

	res, err := r.Resolve(Request{Text: "rotate image 270 degrees"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tool.ID != "rotate-image" {
		t.Fatalf("expected rotate-image, got %s", res.Tool.ID)
	}
	if res.Params.Angle != 270 {
		t.Fatalf("unexpected angle %d", res.Params.Angle)
	}

	res, err = r.Resolve(Request{Text: "compress pdf to 60% quality", Files: []FileHint{{Name: "a.pdf", MIME: "application/pdf"}}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Params.Quality != 60 {
		t.Fatalf("unexpected quality %d", res.Params.Quality)
	}

	res, err = r.Resolve(Request{Text: "convert this picture to word format", Files: []FileHint{{Name: "a.pdf", MIME: "application/pdf"}}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tool.ID != "pdf-to-word" {
		t.Fatalf("expected pdf-to-word, got %s", res.Tool.ID)
	}
	if res.Params.Format != "DOCX" {
		t.Fatalf("word should map to DOCX, got %q", res.Params.Format)
	}
}

func TestConfigurableThreshold(t *testing.T) {
	reg, err := tools.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	strict := NewResolver(reg, Options{ScoreThreshold: 100})
	if _, err := strict.Resolve(Request{Text: "meme generator please"}); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("high threshold should reject, got %v", err)
	}
}
