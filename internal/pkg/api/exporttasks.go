package api

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
)

// CreateExportTask POSTs a new export task document. The raw response is
// returned, the lifecycle manager decides what counts as success.
// POST requests are never retried, see createRetry.
func (a *SwimApi) CreateExportTask(meetId string, body interface{}) (*resty.Response, error) {
	return a.http.R().
		SetHeader("Content-Type", "application/vnd.api+json").
		SetBody(body).
		Post(fmt.Sprintf("/v3/meets/%s/export-tasks", meetId))
}

// GetExportTaskStatus GETs the current task state. 304 is a legitimate
// answer (no state change), so status handling is left to the caller.
func (a *SwimApi) GetExportTaskStatus(meetId string, taskId string) (*resty.Response, error) {
	return a.http.R().Get(fmt.Sprintf("/v3/meets/%s/export-tasks/%s", meetId, taskId))
}

// ListExportTasks loads all export tasks of the meet.
func (a *SwimApi) ListExportTasks(meetId string) (*jsonapi.Document, error) {
	return a.getDocument(fmt.Sprintf("/v3/meets/%s/export-tasks", meetId))
}

// GetFile GETs an absolute URL, eg. the export artifact.
func (a *SwimApi) GetFile(url string) (*resty.Response, error) {
	return a.http.R().Get(url)
}
