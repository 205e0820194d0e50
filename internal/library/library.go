// Package library models the on-disk source library: the library-level
// metadata document with its folder tree, and the per-item metadata sidecars.
//
// Item metadata is an arbitrary JSON object. Beyond the handful of fields the
// consolidator interprets (id, isDeleted, width, folders) everything is
// passed through untouched to the consolidated output.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"strconv"

	"libpack/internal/foldermap"
)

// SidecarName is the metadata document expected inside every item folder.
const SidecarName = "metadata.json"

// ErrNotObject reports sidecar content that parsed as valid JSON but is not
// an object (e.g. a bare array or scalar).
var ErrNotObject = errors.New("item metadata is not a JSON object")

// Item wraps one item's metadata sidecar.
type Item struct {
	fields map[string]any
}

// ParseItem decodes sidecar bytes into an Item, rejecting non-object documents.
func ParseItem(data []byte) (*Item, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse item metadata: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return &Item{fields: obj}, nil
}

// LoadItem reads and parses the sidecar at path.
func LoadItem(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseItem(data)
}

// ID returns the item's unique identifier, or "" when absent. Numeric IDs are
// rendered in their canonical decimal form.
func (i *Item) ID() string {
	switch v := i.fields["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// IsDeleted reports the soft-delete flag.
func (i *Item) IsDeleted() bool {
	deleted, _ := i.fields["isDeleted"].(bool)
	return deleted
}

// Width returns the item's width attribute, defaulting to 0 when absent or
// not numeric.
func (i *Item) Width() int {
	switch v := i.fields["width"].(type) {
	case float64:
		return int(v)
	default:
		return 0
	}
}

// FolderIDs returns the folder references on the item, if any.
func (i *Item) FolderIDs() []string {
	raw, ok := i.fields["folders"].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, entry := range raw {
		if id, ok := entry.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ResolveFolders rewrites the item's folder references from IDs to names via
// the given mapping. Unresolved IDs are dropped silently. Items without a
// folders field are left untouched.
func (i *Item) ResolveFolders(mapping map[string]string) {
	if _, ok := i.fields["folders"]; !ok {
		return
	}
	names := make([]string, 0)
	for _, id := range i.FolderIDs() {
		if name, ok := mapping[id]; ok {
			names = append(names, name)
		}
	}
	i.fields["folders"] = names
}

// Enriched returns a copy of the item's metadata with the output filename and
// file_type recorded. Each accepted file gets its own record.
func (i *Item) Enriched(filename, fileType string) map[string]any {
	record := maps.Clone(i.fields)
	record["filename"] = filename
	record["file_type"] = fileType
	return record
}

// LoadFolders reads the library-level metadata document and returns its
// folder tree. Callers treat any error as "no folders" and continue.
func LoadFolders(path string) ([]foldermap.Folder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Folders []foldermap.Folder `json:"folders"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse library metadata: %w", err)
	}
	return doc.Folders, nil
}
