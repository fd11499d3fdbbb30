package models

import "github.com/google/uuid"

// FileStatus tracks a file through its processing lifecycle.
type FileStatus string

const (
	StatusPending    FileStatus = "pending"
	StatusProcessing FileStatus = "processing"
	StatusCompleted  FileStatus = "completed"
	StatusError      FileStatus = "error"
)

// FileObject represents one user-supplied file through ingestion and
// assembly. CostColumnIndex stays -1 until detection succeeds.
type FileObject struct {
	ID       string
	Name     string
	Size     int64
	Data     []byte
	Workbook *Workbook
	Analysis *WorksheetAnalysis
	// CostColumnIndex is the detected cost column of the primary sheet,
	// or -1 when detection found none.
	CostColumnIndex int
	Errors          []string
	Status          FileStatus
}

// NewFileObject wraps raw file bytes in a pending FileObject.
func NewFileObject(name string, data []byte) *FileObject {
	return &FileObject{
		ID:              uuid.NewString(),
		Name:            name,
		Size:            int64(len(data)),
		Data:            data,
		CostColumnIndex: -1,
		Status:          StatusPending,
	}
}

// Fail records an error message and moves the file to the error state.
func (f *FileObject) Fail(msg string) {
	f.Errors = append(f.Errors, msg)
	f.Status = StatusError
}
