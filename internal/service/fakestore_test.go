package service

import (
	"context"
	"fmt"

	"drivesort/internal/model"
	"drivesort/internal/store"
)

// fakeStore is a stateful in-memory store.Store for exercising the
// reconciler and organizer end to end. Folder creation order is preserved so
// FindFolders returns a deterministic "first" result, like a real store page.
type fakeStore struct {
	folders map[string]*fakeFolder // by id
	order   []string               // folder ids in creation order
	parents map[string][]string    // file id -> parent ids
	nextID  int

	rootEntries []model.Entry // what ListChildren returns for the root
	listErr     error
	findErrs    map[string]error // folder name -> forced FindFolders error
	updateErrs  map[string]error // file id -> forced UpdateParents error
}

type fakeFolder struct {
	id     string
	name   string
	parent string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		folders:    map[string]*fakeFolder{},
		parents:    map[string][]string{},
		findErrs:   map[string]error{},
		updateErrs: map[string]error{},
	}
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) ListChildren(ctx context.Context, parentID string) ([]model.Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rootEntries, nil
}

func (f *fakeStore) FindFolders(ctx context.Context, name, parentID string) ([]model.Entry, error) {
	if err := f.findErrs[name]; err != nil {
		return nil, err
	}
	var out []model.Entry
	for _, id := range f.order {
		fl := f.folders[id]
		if fl.name == name && fl.parent == parentID {
			out = append(out, model.Entry{ID: fl.id, Name: fl.name, Kind: model.KindFolder})
		}
	}
	return out, nil
}

func (f *fakeStore) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	f.nextID++
	id := fmt.Sprintf("folder-%d", f.nextID)
	f.folders[id] = &fakeFolder{id: id, name: name, parent: parentID}
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeStore) GetParents(ctx context.Context, fileID string) ([]string, error) {
	return f.parents[fileID], nil
}

func (f *fakeStore) UpdateParents(ctx context.Context, fileID string, addParent string, removeParents []string) error {
	if err := f.updateErrs[fileID]; err != nil {
		return err
	}
	remove := map[string]bool{}
	for _, p := range removeParents {
		remove[p] = true
	}
	var next []string
	for _, p := range f.parents[fileID] {
		if !remove[p] {
			next = append(next, p)
		}
	}
	f.parents[fileID] = append(next, addParent)
	return nil
}

// addFile registers a file entry under the root listing with the given parents.
func (f *fakeStore) addFile(e model.Entry, parentIDs ...string) {
	f.rootEntries = append(f.rootEntries, e)
	f.parents[e.ID] = parentIDs
}

// foldersUnder returns the names of folders directly under parentID.
func (f *fakeStore) foldersUnder(parentID string) []string {
	var names []string
	for _, id := range f.order {
		if f.folders[id].parent == parentID {
			names = append(names, f.folders[id].name)
		}
	}
	return names
}

// folderID walks a name path from rootID and returns the leaf folder id, or
// "" when any segment is missing.
func (f *fakeStore) folderID(rootID string, path ...string) string {
	parent := rootID
nextSegment:
	for _, name := range path {
		for _, id := range f.order {
			fl := f.folders[id]
			if fl.name == name && fl.parent == parent {
				parent = fl.id
				continue nextSegment
			}
		}
		return ""
	}
	return parent
}
