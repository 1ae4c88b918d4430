package drive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"drivesort/internal/model"
	"drivesort/internal/secrets"
	"drivesort/internal/store"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Drive is a Google Drive v3 implementation of store.Store.
// It holds no state beyond the underlying service and is safe for concurrent
// use, though the organizer only ever issues sequential calls.
type Drive struct {
	svc *drive.Service
}

// New builds a Drive client from a service-account key. The key is exchanged
// for credentials scoped to the full Drive scope: file moves touch folders
// the service account did not create, which the narrower per-file scope
// cannot see.
func New(ctx context.Context, key *secrets.ServiceAccountKey) (*Drive, error) {
	credsJSON, err := key.JSON()
	if err != nil {
		return nil, fmt.Errorf("marshal service account key: %w", err)
	}

	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Drive{svc: svc}, nil
}

var _ store.Store = (*Drive)(nil)

// ListChildren returns the first page of non-trashed children of parentID.
func (d *Drive) ListChildren(ctx context.Context, parentID string) ([]model.Entry, error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", escapeQueryTerm(parentID))
	res, err := d.svc.Files.List().
		Context(ctx).
		Q(q).
		Spaces("drive").
		Fields("files(id, name, mimeType, createdTime)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list children of %q: %v", store.ErrQuery, parentID, err)
	}

	entries := make([]model.Entry, 0, len(res.Files))
	for _, f := range res.Files {
		entries = append(entries, toEntry(f))
	}
	return entries, nil
}

// FindFolders returns non-trashed folders named exactly name under parentID.
func (d *Drive) FindFolders(ctx context.Context, name, parentID string) ([]model.Entry, error) {
	q := fmt.Sprintf(
		"mimeType = '%s' and name = '%s' and '%s' in parents and trashed = false",
		folderMimeType, escapeQueryTerm(name), escapeQueryTerm(parentID),
	)
	res, err := d.svc.Files.List().
		Context(ctx).
		Q(q).
		Spaces("drive").
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: find folder %q under %q: %v", store.ErrQuery, name, parentID, err)
	}

	entries := make([]model.Entry, 0, len(res.Files))
	for _, f := range res.Files {
		entries = append(entries, model.Entry{ID: f.Id, Name: f.Name, Kind: model.KindFolder})
	}
	return entries, nil
}

// CreateFolder creates a folder named name under parentID.
func (d *Drive) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	f, err := d.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Context(ctx).Fields("id").Do()
	if err != nil {
		return "", fmt.Errorf("%w: create folder %q under %q: %v", store.ErrQuery, name, parentID, err)
	}
	return f.Id, nil
}

// GetParents returns the current parent folder ids of a file.
func (d *Drive) GetParents(ctx context.Context, fileID string) ([]string, error) {
	f, err := d.svc.Files.Get(fileID).Context(ctx).Fields("parents").Do()
	if err != nil {
		return nil, fmt.Errorf("%w: get parents of %q: %v", store.ErrQuery, fileID, err)
	}
	return f.Parents, nil
}

// UpdateParents replaces a file's parents in one update call.
func (d *Drive) UpdateParents(ctx context.Context, fileID string, addParent string, removeParents []string) error {
	_, err := d.svc.Files.Update(fileID, nil).
		Context(ctx).
		AddParents(addParent).
		RemoveParents(strings.Join(removeParents, ",")).
		Fields("id, parents").
		Do()
	if err != nil {
		return fmt.Errorf("%w: update parents of %q: %v", store.ErrQuery, fileID, err)
	}
	return nil
}

// toEntry maps a Drive file to the domain entry type.
func toEntry(f *drive.File) model.Entry {
	kind := model.KindFile
	if f.MimeType == folderMimeType {
		kind = model.KindFolder
	}
	// Drive reports createdTime in RFC 3339. A timestamp that is missing or
	// fails to parse leaves CreatedAt zero; the resolver treats a zero
	// fallback time as unusable and fails that file rather than filing it
	// under year 1.
	var createdAt time.Time
	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			createdAt = t
		}
	}
	return model.Entry{
		ID:        f.Id,
		Name:      f.Name,
		Kind:      kind,
		CreatedAt: createdAt,
	}
}

// escapeQueryTerm escapes a value interpolated into a Drive query expression
// so names containing quotes or backslashes cannot break out of the term.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
