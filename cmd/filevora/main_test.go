package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	cfgPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[paths]\ndata_dir = %q\nlog_dir = %q\nbind = \"127.0.0.1:0\"\n",
		filepath.Join(base, "data"),
		filepath.Join(base, "logs"))
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got %q", want, output)
	}
}

func TestCLIToolsList(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, _, err := runCLI(t, cfgPath, "tools")
	if err != nil {
		t.Fatalf("tools: %v", err)
	}
	requireContains(t, out, "merge-pdf")
	requireContains(t, out, "convert-image")

	out, _, err = runCLI(t, cfgPath, "tools", "--category", "GIF")
	if err != nil {
		t.Fatalf("tools --category: %v", err)
	}
	requireContains(t, out, "video-to-gif")
	if strings.Contains(out, "merge-pdf") {
		t.Fatalf("category filter leaked other categories: %q", out)
	}

	if _, _, err := runCLI(t, cfgPath, "tools", "--category", "Nonsense"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestCLIToolDetail(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, _, err := runCLI(t, cfgPath, "tools", "merge-pdf")
	if err != nil {
		t.Fatalf("tools merge-pdf: %v", err)
	}
	requireContains(t, out, "Endpoint:     /process/merge-pdf")
	requireContains(t, out, "Multiple:     yes")

	if _, _, err := runCLI(t, cfgPath, "tools", "does-not-exist"); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestCLISubscribeContactAndHistory(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, _, err := runCLI(t, cfgPath, "subscribe", "Reader@Example.com")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	requireContains(t, out, "Subscribed reader@example.com")

	out, _, err = runCLI(t, cfgPath, "contact", "--name", "Pat", "--email", "pat@example.com", "conversion", "stuck")
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	requireContains(t, out, "Message #1 recorded")

	out, _, err = runCLI(t, cfgPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No conversions recorded yet.")
}

func TestCLICanvasRotate(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{B: 255, A: 255})
	input := filepath.Join(dir, "input.png")
	f, err := os.Create(input)
	if err != nil {
		t.Fatalf("create input: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode input: %v", err)
	}
	f.Close()

	output := filepath.Join(dir, "out.png")
	out, _, err := runCLI(t, cfgPath, "canvas", "rotate", input, "--angle", "90", "-o", output)
	if err != nil {
		t.Fatalf("canvas rotate: %v", err)
	}
	requireContains(t, out, "Saved "+output)

	rf, err := os.Open(output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer rf.Close()
	rotated, err := png.Decode(rf)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	bounds := rotated.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 2 {
		t.Fatalf("expected 1x2 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCLICanvasMemeRequiresCaption(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "input.png")
	f, err := os.Create(input)
	if err != nil {
		t.Fatalf("create input: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode input: %v", err)
	}
	f.Close()

	if _, _, err := runCLI(t, cfgPath, "canvas", "meme", input); err == nil {
		t.Fatal("expected error when no caption is given")
	}
}
