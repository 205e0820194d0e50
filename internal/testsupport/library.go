package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"libpack/internal/foldermap"
)

// SeedItem creates one item folder under the library with a JSON sidecar and
// the given media files. A nil metadata map skips the sidecar entirely.
func SeedItem(t testing.TB, libraryDir, itemID string, metadata map[string]any, files map[string][]byte) {
	t.Helper()

	dir := filepath.Join(libraryDir, "images", itemID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir item %s: %v", itemID, err)
	}
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			t.Fatalf("marshal sidecar for %s: %v", itemID, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "metadata.json"), data, 0o644); err != nil {
			t.Fatalf("write sidecar for %s: %v", itemID, err)
		}
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatalf("write file %s/%s: %v", itemID, name, err)
		}
	}
}

// SeedItemRawSidecar is SeedItem with verbatim sidecar bytes, for malformed
// metadata scenarios.
func SeedItemRawSidecar(t testing.TB, libraryDir, itemID, sidecar string, files map[string][]byte) {
	t.Helper()

	dir := filepath.Join(libraryDir, "images", itemID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir item %s: %v", itemID, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(sidecar), 0o644); err != nil {
		t.Fatalf("write sidecar for %s: %v", itemID, err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatalf("write file %s/%s: %v", itemID, name, err)
		}
	}
}

// WriteLibraryMetadata writes the library-level metadata document with the
// given folder tree.
func WriteLibraryMetadata(t testing.TB, libraryDir string, folders []foldermap.Folder) {
	t.Helper()

	if err := os.MkdirAll(libraryDir, 0o755); err != nil {
		t.Fatalf("mkdir library: %v", err)
	}
	doc := map[string]any{"folders": folders}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal library metadata: %v", err)
	}
	if err := os.WriteFile(filepath.Join(libraryDir, "metadata.json"), data, 0o644); err != nil {
		t.Fatalf("write library metadata: %v", err)
	}
}
