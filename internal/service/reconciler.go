package service

import (
	"context"
	"strconv"
	"time"

	"drivesort/internal/model"
	"drivesort/internal/store"
)

// Reconciler idempotently ensures year/month folder paths exist in the store.
// It performs no locking: concurrent runs (or a concurrent human edit) can
// race the check-then-create sequence and leave duplicate same-named folders
// behind. Callers must serialize runs externally.
type Reconciler struct {
	store   store.Store
	metrics *Metrics
}

// NewReconciler constructs a Reconciler.
func NewReconciler(st store.Store, m *Metrics) *Reconciler {
	return &Reconciler{store: st, metrics: m}
}

// FindOrCreateFolder returns the id of a non-trashed folder with exactly the
// given name under parentID, creating it when absent. Exactly one query is
// issued; when duplicates already exist (prior race damage) the store's first
// result wins, consistently — no other tie-breaking is applied.
func (r *Reconciler) FindOrCreateFolder(ctx context.Context, name, parentID string) (string, error) {
	folders, err := r.store.FindFolders(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	if len(folders) > 0 {
		return folders[0].ID, nil
	}

	id, err := r.store.CreateFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	r.metrics.FoldersCreated.Inc()
	return id, nil
}

// EnsureYearAndMonths ensures the year folder exists under rootID, then
// ensures all twelve month folders under it — unconditionally, whether the
// year folder was just created or already existed. The eager pass guarantees
// every year folder carries a full set of month folders regardless of which
// months actually contain files.
func (r *Reconciler) EnsureYearAndMonths(ctx context.Context, rootID string, year int) (string, error) {
	yearID, err := r.FindOrCreateFolder(ctx, strconv.Itoa(year), rootID)
	if err != nil {
		return "", err
	}
	for m := time.January; m <= time.December; m++ {
		if _, err := r.FindOrCreateFolder(ctx, model.MonthName(m), yearID); err != nil {
			return "", err
		}
	}
	return yearID, nil
}

// EnsureMonthFolder guarantees root/year/month exists and returns the month
// folder's id. The final lookup is redundant with the eager pass but
// idempotent; repeated calls converge to the same identifier.
func (r *Reconciler) EnsureMonthFolder(ctx context.Context, rootID string, year int, month time.Month) (string, error) {
	yearID, err := r.EnsureYearAndMonths(ctx, rootID, year)
	if err != nil {
		return "", err
	}
	return r.FindOrCreateFolder(ctx, model.MonthName(month), yearID)
}
