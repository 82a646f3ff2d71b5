package cloudpick

import (
	"errors"
	"strings"
	"testing"

	"filevora/internal/procapi"
	"filevora/internal/services"
)

func TestNormalizeDropboxForcesDirectDownload(t *testing.T) {
	req, err := Normalize(Pick{
		Provider: procapi.ProviderDropbox,
		Name:     "report.pdf",
		URL:      "https://www.dropbox.com/s/abc123/report.pdf?dl=0",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !strings.Contains(req.URL, "dl=1") {
		t.Fatalf("expected dl=1 in %q", req.URL)
	}
	if req.Provider != procapi.ProviderDropbox || req.Name != "report.pdf" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestNormalizeDropboxRejectsForeignHost(t *testing.T) {
	_, err := Normalize(Pick{
		Provider: procapi.ProviderDropbox,
		Name:     "report.pdf",
		URL:      "https://evil.example.com/report.pdf",
	})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNormalizeDriveExtractsFileID(t *testing.T) {
	req, err := Normalize(Pick{
		Provider:    procapi.ProviderGoogle,
		Name:        "slides.pdf",
		URL:         "https://drive.google.com/file/d/1AbCdEfG/view?usp=sharing",
		AccessToken: "ya29.token",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if req.FileID != "1AbCdEfG" {
		t.Fatalf("unexpected file id %q", req.FileID)
	}
	if !strings.Contains(req.URL, "1AbCdEfG") || !strings.Contains(req.URL, "alt=media") {
		t.Fatalf("unexpected url %q", req.URL)
	}
	if req.AccessToken != "ya29.token" {
		t.Fatal("access token should pass through")
	}
}

func TestNormalizeDrivePrefersExplicitID(t *testing.T) {
	req, err := Normalize(Pick{
		Provider: procapi.ProviderGoogle,
		Name:     "doc.pdf",
		FileID:   "explicit-id",
		URL:      "https://drive.google.com/open?id=query-id",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if req.FileID != "explicit-id" {
		t.Fatalf("unexpected file id %q", req.FileID)
	}
}

func TestNormalizeDriveQueryID(t *testing.T) {
	req, err := Normalize(Pick{
		Provider: procapi.ProviderGoogle,
		Name:     "doc.pdf",
		URL:      "https://drive.google.com/open?id=query-id",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if req.FileID != "query-id" {
		t.Fatalf("unexpected file id %q", req.FileID)
	}
}

func TestNormalizeOneDriveRedeemsShareLink(t *testing.T) {
	req, err := Normalize(Pick{
		Provider: procapi.ProviderOneDrive,
		Name:     "notes.docx",
		URL:      "https://1drv.ms/w/s!AbC",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !strings.HasPrefix(req.URL, "https://api.onedrive.com/v1.0/shares/u!") {
		t.Fatalf("unexpected url %q", req.URL)
	}
	if !strings.HasSuffix(req.URL, "/root/content") {
		t.Fatalf("unexpected url %q", req.URL)
	}
}

func TestNormalizeRejectsUnknownProvider(t *testing.T) {
	_, err := Normalize(Pick{Provider: "box", Name: "f.pdf", URL: "https://box.com/f"})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNormalizeRequiresName(t *testing.T) {
	_, err := Normalize(Pick{Provider: procapi.ProviderDropbox, URL: "https://www.dropbox.com/s/a/f.pdf"})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPickerCancelledIsSilent(t *testing.T) {
	if !services.IsSilent(ErrPickerCancelled) {
		t.Fatal("picker cancellation must stay silent")
	}
	if !errors.Is(ErrPickerCancelled, services.ErrCancelled) {
		t.Fatal("picker cancellation should match the cancelled marker")
	}
}
