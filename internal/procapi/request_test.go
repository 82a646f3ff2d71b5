package procapi

import (
	"testing"

	"filevora/internal/tools"
)

func TestBuildOptionsRotate(t *testing.T) {
	desc := mustLookup(t, "rotate-image")
	opts := BuildOptions(desc, JobParams{Angle: 270})
	if opts["angle"] != "270" {
		t.Fatalf("unexpected options %v", opts)
	}
	opts = BuildOptions(desc, JobParams{Angle: 45})
	if opts["angle"] != "90" {
		t.Fatalf("invalid angle should fall back to 90, got %v", opts)
	}
}

func TestBuildOptionsPDFCompress(t *testing.T) {
	desc := mustLookup(t, "compress-pdf")
	opts := BuildOptions(desc, JobParams{Level: "Strong"})
	if opts["level"] != "strong" {
		t.Fatalf("unexpected options %v", opts)
	}
	opts = BuildOptions(desc, JobParams{Level: "maximum"})
	if opts["level"] != "basic" {
		t.Fatalf("unknown level should fall back to basic, got %v", opts)
	}
	opts = BuildOptions(desc, JobParams{Manual: true, Quality: 60, DPI: 96})
	if opts["quality"] != "60" || opts["dpi"] != "96" {
		t.Fatalf("unexpected manual options %v", opts)
	}
	if _, ok := opts["level"]; ok {
		t.Fatal("manual mode must not send a level")
	}
}

func TestBuildOptionsPresetFormatWins(t *testing.T) {
	desc := mustLookup(t, "webp-to-png")
	opts := BuildOptions(desc, JobParams{Format: "JPEG"})
	if opts["target_format"] != "png" {
		t.Fatalf("preset should override caller format, got %v", opts)
	}
	if opts["quality"] != "85" {
		t.Fatalf("convert-image endpoint should default quality, got %v", opts)
	}
}

func TestBuildOptionsFormatFieldPerEndpoint(t *testing.T) {
	desc := mustLookup(t, "pdf-converter")
	opts := BuildOptions(desc, JobParams{Format: "PNG"})
	if opts["format"] != "png" {
		t.Fatalf("pdf-to-image uses the format field, got %v", opts)
	}
	if _, ok := opts["target_format"]; ok {
		t.Fatalf("unexpected target_format in %v", opts)
	}
	if _, ok := opts["quality"]; ok {
		t.Fatalf("pdf-to-image should not send quality, got %v", opts)
	}
}

func TestBuildOptionsGenericToolEmpty(t *testing.T) {
	desc := mustLookup(t, "merge-pdf")
	opts := BuildOptions(desc, JobParams{})
	if len(opts) != 0 {
		t.Fatalf("expected no options, got %v", opts)
	}
}

func TestBuildOptionsGenericToolIgnoresFormat(t *testing.T) {
	desc := mustLookup(t, "merge-pdf")
	opts := BuildOptions(desc, JobParams{Format: "PNG", Quality: 70})
	if len(opts) != 0 {
		t.Fatalf("format and quality do not apply to merge tools, got %v", opts)
	}
}

func TestBuildOptionsVideoPresets(t *testing.T) {
	desc := mustLookup(t, "video-to-mp3")
	opts := BuildOptions(desc, JobParams{})
	if opts["target_format"] != "mp3" {
		t.Fatalf("unexpected options %v", opts)
	}
	if desc.Kind != tools.KindGeneric {
		t.Fatalf("unexpected kind %q", desc.Kind)
	}
}
