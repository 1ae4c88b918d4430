package model

import "time"

// EntryKind discriminates files from folders in the document store.
type EntryKind string

const (
	KindFile   EntryKind = "file"
	KindFolder EntryKind = "folder"
)

// Entry is a snapshot of a file or folder as returned by the document store.
// This is a pure domain model with no store-specific dependencies or tags;
// identifiers are opaque strings assigned by the store. Parents is only
// populated when explicitly fetched (a file may have multiple parents in the
// underlying store's model).
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      EntryKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Parents   []string  `json:"parents,omitempty"`
}

// IsFolder reports whether the entry is a folder.
func (e Entry) IsFolder() bool {
	return e.Kind == KindFolder
}
