package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"libpack/internal/testsupport"
)

func TestRunCommandConsolidates(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedItem(t, env.cfg.Paths.LibraryDir, "1",
		map[string]any{"id": "1", "width": 100},
		map[string][]byte{"My Photo.PNG": []byte("bytes")})

	out, _, err := runCLI(t, []string{"run"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Files copied: 1")
	requireContains(t, out, "Consolidated metadata saved to")

	if _, err := os.Stat(filepath.Join(env.cfg.ImagesOutputDir(), "my-photo-1.png")); err != nil {
		t.Fatalf("expected copied file: %v", err)
	}
}

func TestRunCommandImagesOnlyFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedItem(t, env.cfg.Paths.LibraryDir, "1",
		map[string]any{"id": "1"},
		map[string][]byte{"clip.mp4": []byte("x"), "pic.jpg": []byte("y")})

	out, _, err := runCLI(t, []string{"run", "--images-only"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Files copied: 1")
	requireContains(t, out, "Non-image files: 1")
}

func TestRunCommandMinWidthFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedItem(t, env.cfg.Paths.LibraryDir, "1",
		map[string]any{"id": "1", "width": 100},
		map[string][]byte{"pic.jpg": []byte("y")})

	out, _, err := runCLI(t, []string{"run", "--min-width", "200"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Below width threshold: 1")
	requireContains(t, out, "Files copied: 0")
}

func TestRunCommandJSONReport(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedItem(t, env.cfg.Paths.LibraryDir, "1",
		map[string]any{"id": "1"},
		map[string][]byte{"pic.jpg": []byte("y")})

	out, _, err := runCLI(t, []string{"run", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var report map[string]any
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if report["processed"] != float64(1) {
		t.Fatalf("unexpected report: %v", report)
	}
}

func TestRunCommandMissingLibrary(t *testing.T) {
	env := setupCLITestEnv(t)
	// no items seeded, library root never created

	_, _, err := runCLI(t, []string{"run"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing library root")
	}
	if !strings.Contains(err.Error(), "library images directory not found") {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(env.cfg.OutputMetadataPath()); !os.IsNotExist(statErr) {
		t.Fatal("no metadata may be written when the library is missing")
	}
}

func TestRunCommandLibraryOverrideFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	altLibrary := filepath.Join(t.TempDir(), "alt-library")
	testsupport.SeedItem(t, altLibrary, "9",
		map[string]any{"id": "9"},
		map[string][]byte{"pic.png": []byte("x")})

	out, _, err := runCLI(t, []string{"run", "--library", altLibrary}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Files copied: 1")
}

func TestRunCommandRejectsNegativeMinWidth(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedItem(t, env.cfg.Paths.LibraryDir, "1",
		map[string]any{"id": "1"},
		map[string][]byte{"pic.png": []byte("x")})

	_, _, err := runCLI(t, []string{"run", "--min-width", "-5"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for negative min width")
	}
}
