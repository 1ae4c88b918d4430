package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"drivesort/internal/model"
	"drivesort/internal/store"
)

// ErrNoRootFolder means no root folder id was resolvable from the request or
// configuration. It is rejected before any store access.
var ErrNoRootFolder = errors.New("no root folder id provided")

// Organizer runs one batch pass over a root folder's children.
type Organizer interface {
	// Run lists the immediate children of rootFolderID and files every
	// non-folder child into its year/month bucket. A listing failure aborts
	// the run; per-file failures are recorded in the summary and never abort
	// the batch.
	Run(ctx context.Context, rootFolderID string) (*model.RunSummary, error)
}

// organizer is a concrete implementation of Organizer.
type organizer struct {
	store      store.Store
	reconciler *Reconciler
	metrics    *Metrics
	log        zerolog.Logger
}

// NewOrganizer constructs a new Organizer.
func NewOrganizer(st store.Store, m *Metrics, log zerolog.Logger) Organizer {
	return &organizer{
		store:      st,
		reconciler: NewReconciler(st, m),
		metrics:    m,
		log:        log,
	}
}

// Run makes a single list call and then processes each entry sequentially,
// one file fully resolved-and-moved before the next begins. It holds no state
// across invocations beyond the in-memory listing of the current run.
func (o *organizer) Run(ctx context.Context, rootFolderID string) (*model.RunSummary, error) {
	if rootFolderID == "" {
		return nil, ErrNoRootFolder
	}

	entries, err := o.store.ListChildren(ctx, rootFolderID)
	if err != nil {
		return nil, fmt.Errorf("list children of root folder: %w", err)
	}

	summary := &model.RunSummary{
		RootFolderID: rootFolderID,
		TotalItems:   len(entries),
		Results:      make([]model.FileResult, 0, len(entries)),
	}
	for _, entry := range entries {
		res := o.processEntry(ctx, rootFolderID, entry)
		summary.Results = append(summary.Results, res)
		if res.Status == model.StatusMoved {
			summary.Processed++
		}
	}

	o.log.Info().
		Str("root_folder_id", rootFolderID).
		Int("processed", summary.Processed).
		Int("total_items", summary.TotalItems).
		Msg("batch run complete")
	return summary, nil
}

// processEntry runs the per-file pipeline and turns any failure into an
// explicit result instead of propagating it.
func (o *organizer) processEntry(ctx context.Context, rootID string, entry model.Entry) model.FileResult {
	if entry.IsFolder() {
		o.log.Info().
			Str("name", entry.Name).
			Str("id", entry.ID).
			Msg("skipping folder")
		o.metrics.FilesSkipped.WithLabelValues("folder").Inc()
		return model.FileResult{ID: entry.ID, Name: entry.Name, Status: model.StatusSkippedFolder}
	}

	targetID, err := o.moveFile(ctx, rootID, entry)
	if err != nil {
		o.log.Warn().
			Err(err).
			Str("name", entry.Name).
			Str("id", entry.ID).
			Msg("skipping file")
		o.metrics.FilesSkipped.WithLabelValues("error").Inc()
		return model.FileResult{
			ID:     entry.ID,
			Name:   entry.Name,
			Status: model.StatusFailed,
			Reason: err.Error(),
		}
	}

	o.metrics.FilesOrganized.Inc()
	return model.FileResult{
		ID:             entry.ID,
		Name:           entry.Name,
		Status:         model.StatusMoved,
		TargetFolderID: targetID,
	}
}

// moveFile resolves the file's bucket, reconciles the target folder and
// replaces all current parents with it in one update call.
func (o *organizer) moveFile(ctx context.Context, rootID string, entry model.Entry) (string, error) {
	year, month, err := Resolve(entry.Name, entry.CreatedAt)
	if err != nil {
		return "", err
	}

	targetID, err := o.reconciler.EnsureMonthFolder(ctx, rootID, year, month)
	if err != nil {
		return "", err
	}

	parents, err := o.store.GetParents(ctx, entry.ID)
	if err != nil {
		return "", err
	}
	if err := o.store.UpdateParents(ctx, entry.ID, targetID, parents); err != nil {
		return "", err
	}
	return targetID, nil
}
