package upload

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a simulated upload
type Status string

const (
	StatusUploading Status = "uploading"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// ProgressComplete is the progress value at which a record completes
const ProgressComplete = 100.0

// FileInfo describes a file handed to the tracker by a drop or the picker
type FileInfo struct {
	Name     string
	MIMEType string
	Size     int64
	Path     string
}

// Record tracks one file's simulated upload. ID is assigned at ingestion
// and is the only identity; Name may repeat across records.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	MIMEType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	SizeLabel string    `json:"size_label"`
	Status    Status    `json:"status"`
	Progress  float64   `json:"progress"`
	Reason    string    `json:"reason,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Uploading reports whether the simulation for this record is still running
func (r Record) Uploading() bool {
	return r.Status == StatusUploading
}

// Percent returns the progress rounded for display
func (r Record) Percent() int {
	return int(r.Progress + 0.5)
}
