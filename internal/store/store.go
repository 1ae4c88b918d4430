package store

import (
	"context"
	"errors"

	"drivesort/internal/model"
)

// Package store defines the document store contract the organizer runs
// against. Implementations live in subpackages (e.g. drive) and contain no
// business logic — strictly store operations.

// ErrQuery wraps transport/API failures from the store. Whether it is fatal
// depends on when it occurs: during the initial listing it aborts the run,
// during per-file processing the file is skipped and the run continues.
var ErrQuery = errors.New("store query failed")

// Store is the document store client used by the organizer.
//
// All list-shaped operations return the store's first result page only; no
// pagination is performed. Trashed entries are never returned.
type Store interface {
	// ListChildren returns the immediate, non-trashed children of parentID
	// with id, name, kind and creation time populated.
	ListChildren(ctx context.Context, parentID string) ([]model.Entry, error)

	// FindFolders returns non-trashed folders with exactly the given name
	// under parentID, in the store's own order.
	FindFolders(ctx context.Context, name, parentID string) ([]model.Entry, error)

	// CreateFolder creates a folder with the given name under parentID and
	// returns its store-assigned identifier.
	CreateFolder(ctx context.Context, name, parentID string) (string, error)

	// GetParents returns the current parent folder identifiers of a file.
	GetParents(ctx context.Context, fileID string) ([]string, error)

	// UpdateParents adds addParent and removes removeParents from a file's
	// parent set in a single update call.
	UpdateParents(ctx context.Context, fileID string, addParent string, removeParents []string) error
}
