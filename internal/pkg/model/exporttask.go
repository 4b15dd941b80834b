package model

import (
	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
)

// Export task states recognized by the lifecycle manager. Any other state
// reported by the server is an opaque in-progress value.
const (
	TaskStateCreated   = "created"
	TaskStateCompleted = "completed"
	TaskStateFailed    = "failed"
)

// ExportTask is a typed view over an "exportTask" resource.
type ExportTask struct {
	Resource *jsonapi.Resource
}

func (t ExportTask) ID() string {
	return t.Resource.ID
}

func (t ExportTask) CurrentState() string {
	return stringAttribute(t.Resource, "currentState", "")
}

// ExportHref is the artifact download URL, present once completed.
func (t ExportTask) ExportHref() string {
	return stringAttribute(t.Resource, "exportHref", "")
}

// ExportFilename is the server-suggested artifact filename.
func (t ExportTask) ExportFilename() string {
	return stringAttribute(t.Resource, "exportFilename", "")
}

func (t ExportTask) ErrorMessage() string {
	return stringAttribute(t.Resource, "errorMessage", "")
}

func (t ExportTask) ExportType() string {
	return stringAttribute(t.Resource, "exportType", "")
}

func (t ExportTask) CreatedAt() string {
	return stringAttribute(t.Resource, "createdAt", "")
}

// TaskFromDocument extracts the export task from a single-resource document.
func TaskFromDocument(doc *jsonapi.Document) (ExportTask, bool) {
	if doc == nil || len(doc.Data) == 0 || doc.Data[0].Type != TypeExportTask {
		return ExportTask{}, false
	}
	return ExportTask{Resource: doc.Data[0]}, true
}
