package model

// FileStatus is the outcome of processing a single entry during a batch run.
type FileStatus string

const (
	// StatusMoved means the file was relocated into its target month folder.
	StatusMoved FileStatus = "moved"
	// StatusSkippedFolder means the entry was a sub-folder and left untouched.
	StatusSkippedFolder FileStatus = "skipped_folder"
	// StatusFailed means processing the file failed; the failure is recorded
	// in Reason and does not affect the rest of the batch.
	StatusFailed FileStatus = "failed"
)

// FileResult records the explicit per-file outcome of one pipeline pass.
// Failures are data here, not control flow: the organizer collects one
// FileResult per entry and never aborts the batch on a single file.
type FileResult struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         FileStatus `json:"status"`
	TargetFolderID string     `json:"target_folder_id,omitempty"`
	Reason         string     `json:"reason,omitempty"`
}

// RunSummary is the result of one batch run over a root folder's children.
// TotalItems counts every entry seen, including skipped folders and failed
// files; Processed counts only files that were actually moved.
type RunSummary struct {
	RootFolderID string       `json:"root_folder_id"`
	Processed    int          `json:"processed"`
	TotalItems   int          `json:"total_items_found"`
	Results      []FileResult `json:"results,omitempty"`
}
