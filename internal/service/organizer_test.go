package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivesort/internal/model"
	"drivesort/internal/store"
)

func newTestOrganizer(t *testing.T, fs *fakeStore) Organizer {
	t.Helper()
	return NewOrganizer(fs, newTestMetrics(t), zerolog.Nop())
}

func TestRunValidation(t *testing.T) {
	fs := newFakeStore()
	org := newTestOrganizer(t, fs)

	_, err := org.Run(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoRootFolder)
}

func TestRunListingFailureIsFatal(t *testing.T) {
	fs := newFakeStore()
	fs.listErr = store.ErrQuery
	org := newTestOrganizer(t, fs)

	_, err := org.Run(context.Background(), "root")
	assert.ErrorIs(t, err, store.ErrQuery)
}

func TestRunOrganizesDatedInvoiceAndSkipsFolder(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.addFile(model.Entry{ID: "file-1", Name: "Invoice Feb 27, 2025.pdf", Kind: model.KindFile}, "root")
	fs.rootEntries = append(fs.rootEntries, model.Entry{ID: "sub-1", Name: "Archive", Kind: model.KindFolder})

	org := newTestOrganizer(t, fs)
	summary, err := org.Run(ctx, "root")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 2, summary.TotalItems)

	// The invoice ends up parented solely under root/2025/February.
	febID := fs.folderID("root", "2025", "February")
	require.NotEmpty(t, febID)
	assert.Equal(t, []string{febID}, fs.parents["file-1"])

	// All twelve month folders were provisioned eagerly.
	assert.Len(t, fs.foldersUnder(fs.folderID("root", "2025")), 12)

	// The sub-folder was left untouched and reported as skipped.
	require.Len(t, summary.Results, 2)
	assert.Equal(t, model.StatusMoved, summary.Results[0].Status)
	assert.Equal(t, febID, summary.Results[0].TargetFolderID)
	assert.Equal(t, model.StatusSkippedFolder, summary.Results[1].Status)
}

func TestRunFallsBackToCreationTime(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.addFile(model.Entry{
		ID:        "file-1",
		Name:      "scan.pdf",
		Kind:      model.KindFile,
		CreatedAt: time.Date(2024, time.November, 3, 10, 0, 0, 0, time.UTC),
	}, "root")

	org := newTestOrganizer(t, fs)
	summary, err := org.Run(ctx, "root")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	novID := fs.folderID("root", "2024", "November")
	require.NotEmpty(t, novID)
	assert.Equal(t, []string{novID}, fs.parents["file-1"])
}

func TestRunSkipsBadDateButContinues(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.addFile(model.Entry{ID: "bad", Name: "Invoice Feb 31, 2025.pdf", Kind: model.KindFile}, "root")
	fs.addFile(model.Entry{ID: "good", Name: "Report 2025-03-01.pdf", Kind: model.KindFile}, "root")

	org := newTestOrganizer(t, fs)
	summary, err := org.Run(ctx, "root")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 2, summary.TotalItems)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, model.StatusFailed, summary.Results[0].Status)
	assert.Contains(t, summary.Results[0].Reason, "unparseable date")
	assert.Equal(t, model.StatusMoved, summary.Results[1].Status)

	// The failed file keeps its original parents.
	assert.Equal(t, []string{"root"}, fs.parents["bad"])
	marID := fs.folderID("root", "2025", "March")
	assert.Equal(t, []string{marID}, fs.parents["good"])
}

func TestRunFailsFileWithUnusableTimestamp(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	// Dateless name and a zero creation time, as the store client reports
	// when the store returns a malformed createdTime.
	fs.addFile(model.Entry{ID: "broken", Name: "scan.pdf", Kind: model.KindFile}, "root")
	fs.addFile(model.Entry{ID: "good", Name: "Report 2025-03-01.pdf", Kind: model.KindFile}, "root")

	org := newTestOrganizer(t, fs)
	summary, err := org.Run(ctx, "root")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, model.StatusFailed, summary.Results[0].Status)
	assert.Contains(t, summary.Results[0].Reason, "creation timestamp")
	assert.Equal(t, model.StatusMoved, summary.Results[1].Status)

	// The broken file keeps its original parents; no year-1 folder appears.
	assert.Equal(t, []string{"root"}, fs.parents["broken"])
	assert.Empty(t, fs.folderID("root", "1"))
}

func TestRunPerFileStoreErrorIsRecoverable(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.addFile(model.Entry{ID: "stuck", Name: "Invoice Feb 27, 2025.pdf", Kind: model.KindFile}, "root")
	fs.addFile(model.Entry{ID: "fine", Name: "Other Feb 27, 2025.pdf", Kind: model.KindFile}, "root")
	fs.updateErrs["stuck"] = errors.New("update rejected")

	org := newTestOrganizer(t, fs)
	summary, err := org.Run(ctx, "root")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, model.StatusFailed, summary.Results[0].Status)
	assert.Equal(t, model.StatusMoved, summary.Results[1].Status)
}

func TestRunReplacesMultipleParents(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.addFile(model.Entry{ID: "file-1", Name: "Invoice Feb 27, 2025.pdf", Kind: model.KindFile}, "root", "shared-folder")

	org := newTestOrganizer(t, fs)
	_, err := org.Run(ctx, "root")
	require.NoError(t, err)

	febID := fs.folderID("root", "2025", "February")
	assert.Equal(t, []string{febID}, fs.parents["file-1"], "all previous parents replaced by the single target")
}
