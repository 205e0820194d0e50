package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseItemAccessors(t *testing.T) {
	data := []byte(`{"id":"abc","isDeleted":false,"width":1920,"folders":["f1","f2"],"tags":["art"]}`)
	item, err := ParseItem(data)
	if err != nil {
		t.Fatalf("ParseItem: %v", err)
	}
	if item.ID() != "abc" {
		t.Errorf("ID = %q", item.ID())
	}
	if item.IsDeleted() {
		t.Error("IsDeleted = true")
	}
	if item.Width() != 1920 {
		t.Errorf("Width = %d", item.Width())
	}
	got := item.FolderIDs()
	if len(got) != 2 || got[0] != "f1" || got[1] != "f2" {
		t.Errorf("FolderIDs = %v", got)
	}
}

func TestParseItemNumericID(t *testing.T) {
	item, err := ParseItem([]byte(`{"id": 42}`))
	if err != nil {
		t.Fatalf("ParseItem: %v", err)
	}
	if item.ID() != "42" {
		t.Errorf("ID = %q, want 42", item.ID())
	}
}

func TestParseItemMissingFields(t *testing.T) {
	item, err := ParseItem([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseItem: %v", err)
	}
	if item.ID() != "" {
		t.Errorf("ID = %q, want empty", item.ID())
	}
	if item.Width() != 0 {
		t.Errorf("Width = %d, want 0", item.Width())
	}
	if item.IsDeleted() {
		t.Error("IsDeleted = true for empty object")
	}
	if item.FolderIDs() != nil {
		t.Errorf("FolderIDs = %v, want nil", item.FolderIDs())
	}
}

func TestParseItemRejectsNonObject(t *testing.T) {
	for _, data := range []string{`[1,2,3]`, `"scalar"`, `17`} {
		_, err := ParseItem([]byte(data))
		if !errors.Is(err, ErrNotObject) {
			t.Errorf("ParseItem(%s) err = %v, want ErrNotObject", data, err)
		}
	}
}

func TestParseItemRejectsMalformedJSON(t *testing.T) {
	_, err := ParseItem([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveFolders(t *testing.T) {
	item, err := ParseItem([]byte(`{"id":"1","folders":["a","b","gone"]}`))
	if err != nil {
		t.Fatal(err)
	}
	item.ResolveFolders(map[string]string{"a": "Art", "b": "Sketches"})

	record := item.Enriched("x.png", "image")
	names, ok := record["folders"].([]string)
	if !ok {
		t.Fatalf("folders = %T %v", record["folders"], record["folders"])
	}
	if len(names) != 2 || names[0] != "Art" || names[1] != "Sketches" {
		t.Fatalf("folders = %v, want [Art Sketches]", names)
	}
}

func TestResolveFoldersAbsentFieldUntouched(t *testing.T) {
	item, err := ParseItem([]byte(`{"id":"1"}`))
	if err != nil {
		t.Fatal(err)
	}
	item.ResolveFolders(map[string]string{"a": "Art"})

	record := item.Enriched("x.png", "image")
	if _, ok := record["folders"]; ok {
		t.Fatal("folders field should not be introduced")
	}
}

func TestEnrichedClonesPerFile(t *testing.T) {
	item, err := ParseItem([]byte(`{"id":"1","width":100}`))
	if err != nil {
		t.Fatal(err)
	}

	first := item.Enriched("a-1.png", "image")
	second := item.Enriched("b-1.mp4", "other")

	if first["filename"] != "a-1.png" || second["filename"] != "b-1.mp4" {
		t.Fatalf("records not independent: %v / %v", first, second)
	}
	if first["width"] != float64(100) || second["width"] != float64(100) {
		t.Fatalf("pass-through fields missing: %v", first)
	}
}

func TestLoadFolders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	content := `{"folders":[{"id":"a","name":"Art","children":[{"id":"b","name":"Sketches"}]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	folders, err := LoadFolders(path)
	if err != nil {
		t.Fatalf("LoadFolders: %v", err)
	}
	if len(folders) != 1 || folders[0].ID != "a" || len(folders[0].Children) != 1 {
		t.Fatalf("unexpected folders: %+v", folders)
	}
}

func TestLoadFoldersMissingFile(t *testing.T) {
	_, err := LoadFolders(filepath.Join(t.TempDir(), "metadata.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFoldersMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFolders(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
