package tools

import (
	"strings"
	"testing"
)

func TestNewRegistryLoadsCatalog(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("expected non-empty registry")
	}
}

func TestRegistryEndpointsAndUniqueIDs(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	seen := make(map[string]struct{})
	for _, desc := range reg.All() {
		if _, dup := seen[desc.ID]; dup {
			t.Errorf("duplicate tool id %q", desc.ID)
		}
		seen[desc.ID] = struct{}{}
		switch {
		case strings.HasPrefix(desc.Endpoint, "/process/") && len(desc.Endpoint) > len("/process/"):
		case desc.Endpoint == EndpointComingSoon:
		case desc.Endpoint == EndpointInteractive:
		default:
			t.Errorf("tool %s has invalid endpoint %q", desc.ID, desc.Endpoint)
		}
	}
}

func TestRegistryRejectsDuplicateIDs(t *testing.T) {
	dup := []Descriptor{
		{ID: "rotate-image", Name: "Rotate", Category: CategoryImage, Endpoint: "/process/rotate-image"},
		{ID: "rotate-image", Name: "Rotate Again", Category: CategoryImage, Endpoint: "/process/rotate-image"},
	}
	if _, err := newRegistry(dup); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestRegistryRejectsBadEndpoint(t *testing.T) {
	bad := []Descriptor{
		{ID: "broken", Name: "Broken", Category: CategoryOthers, Endpoint: "/elsewhere"},
	}
	if _, err := newRegistry(bad); err == nil {
		t.Fatal("expected endpoint validation error")
	}
}

func TestLookupNormalizesID(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	desc, ok := reg.Lookup("  Merge-PDF ")
	if !ok {
		t.Fatal("expected merge-pdf to resolve")
	}
	if desc.ID != "merge-pdf" {
		t.Fatalf("unexpected id %q", desc.ID)
	}
	if !desc.Multiple {
		t.Fatal("merge-pdf accepts multiple files")
	}
}

func TestByCategoryKeepsCatalogOrder(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	pdf := reg.ByCategory(CategoryPDF)
	if len(pdf) == 0 {
		t.Fatal("expected pdf tools")
	}
	if pdf[0].ID != "merge-pdf" {
		t.Fatalf("expected merge-pdf first, got %s", pdf[0].ID)
	}
	for _, desc := range pdf {
		if desc.Category != CategoryPDF {
			t.Errorf("tool %s has category %q", desc.ID, desc.Category)
		}
	}
}

func TestPresetFormatSuppressesPrompt(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	desc, ok := reg.Lookup("webp-to-png")
	if !ok {
		t.Fatal("expected webp-to-png to resolve")
	}
	format, ok := desc.PresetFormat()
	if !ok {
		t.Fatal("expected preset format")
	}
	if format != "PNG" {
		t.Fatalf("unexpected preset format %q", format)
	}

	desc, ok = reg.Lookup("pdf-to-jpg")
	if !ok {
		t.Fatal("expected pdf-to-jpg to resolve")
	}
	format, ok = desc.PresetFormat()
	if !ok || format != "jpeg" {
		t.Fatalf("unexpected preset %q ok=%v", format, ok)
	}

	desc, _ = reg.Lookup("convert-image")
	if _, ok := desc.PresetFormat(); ok {
		t.Fatal("convert-image should not carry a preset format")
	}
}

func TestFormatFieldDependsOnEndpoint(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	desc, _ := reg.Lookup("pdf-converter")
	if got := desc.FormatField(); got != "format" {
		t.Fatalf("pdf-converter format field = %q", got)
	}
	desc, _ = reg.Lookup("convert-image")
	if got := desc.FormatField(); got != "target_format" {
		t.Fatalf("convert-image format field = %q", got)
	}
}

func TestComingSoonAndInteractiveFlags(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	desc, _ := reg.Lookup("merge-video")
	if !desc.ComingSoon() {
		t.Fatal("merge-video should be flagged coming soon")
	}
	if desc.HasJob() {
		t.Fatal("coming-soon tools have no job endpoint")
	}
	desc, _ = reg.Lookup("voice-recorder")
	if !desc.Interactive {
		t.Fatal("voice-recorder is interactive")
	}
	if desc.HasJob() {
		t.Fatal("interactive tools have no job endpoint")
	}
	desc, _ = reg.Lookup("compress-pdf")
	if !desc.HasJob() {
		t.Fatal("compress-pdf posts jobs")
	}
}
