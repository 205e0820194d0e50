// Package foldermap flattens the library's folder hierarchy into an ID to
// name mapping used to rewrite item folder references.
package foldermap

// Folder is one node in the library's folder tree.
type Folder struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Password string   `json:"password,omitempty"`
	Children []Folder `json:"children,omitempty"`
}

// Locked reports whether the folder is password protected. A locked folder and
// its entire subtree are excluded from the map.
func (f Folder) Locked() bool {
	return f.Password != ""
}

// Build flattens the folder tree depth-first into an ID to name mapping.
// Locked branches are not descended into, so a child of a locked folder is
// unreachable even when it carries no password itself. Duplicate IDs resolve
// last-write-wins.
func Build(roots []Folder) map[string]string {
	mapping := make(map[string]string)
	for _, root := range roots {
		flatten(root, mapping)
	}
	return mapping
}

func flatten(folder Folder, mapping map[string]string) {
	if folder.Locked() {
		return
	}
	if folder.ID != "" {
		mapping[folder.ID] = folder.Name
	}
	for _, child := range folder.Children {
		flatten(child, mapping)
	}
}
