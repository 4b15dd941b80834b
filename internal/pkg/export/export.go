// Package export drives the server-side export task lifecycle:
// create with a client-assigned id, poll to a terminal state, download
// the artifact.
package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/swimboard/swimboard/internal/pkg/api"
	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/model"
)

// AllFilter selects all teams or all sessions.
const AllFilter = -1

// Options describe the requested export.
type Options struct {
	Type          string // "result", "merge-results" or "merge-entries"
	Format        string // typically "hy3"
	TeamFilter    int
	SessionFilter int
}

// DefaultOptions is a full results export in hy3 format.
func DefaultOptions() Options {
	return Options{
		Type:          "result",
		Format:        "hy3",
		TeamFilter:    AllFilter,
		SessionFilter: AllFilter,
	}
}

// Manager owns one meet's export operations.
type Manager struct {
	api    *api.SwimApi
	fs     afero.Fs
	clock  clockwork.Clock
	logger *zap.SugaredLogger
}

func NewManager(swimApi *api.SwimApi, fs afero.Fs, clock clockwork.Clock, logger *zap.SugaredLogger) *Manager {
	return &Manager{api: swimApi, fs: fs, clock: clock, logger: logger}
}

// CreateTask creates a new export task. The task id is generated on the
// client, the server only confirms it. Only HTTP 201 is success, a failed
// create is final and is not retried.
func (m *Manager) CreateTask(meetId string, opts Options) (string, error) {
	taskId := uuid.Must(uuid.NewV4()).String()
	m.logger.Debugf(`Creating export task "%s", type "%s", format "%s".`, taskId, opts.Type, opts.Format)

	res, err := m.api.CreateExportTask(meetId, taskDocument(meetId, taskId, opts))
	if err != nil {
		return "", fmt.Errorf("cannot create export task: %w", err)
	}
	if res.StatusCode() != http.StatusCreated {
		return "", fmt.Errorf("cannot create export task: %w", api.ResponseToError(res))
	}

	return taskId, nil
}

// Status is one observation of the task, see FetchStatus.
type Status struct {
	NotModified bool // 304, no state change since the last observation
	Task        model.ExportTask
}

// FetchStatus fetches the task state once. It is exported so callers that
// need external cancellation can run their own loop around it.
func (m *Manager) FetchStatus(meetId string, taskId string) (Status, error) {
	res, err := m.api.GetExportTaskStatus(meetId, taskId)
	if err != nil {
		return Status{}, err
	}

	switch res.StatusCode() {
	case http.StatusNotModified:
		return Status{NotModified: true}, nil
	case http.StatusOK:
		doc, err := jsonapi.ParseDocument(res.Body())
		if err != nil {
			return Status{}, fmt.Errorf("cannot decode export task status: %w", err)
		}
		task, found := model.TaskFromDocument(doc)
		if !found {
			return Status{}, fmt.Errorf("export task status document contains no exportTask resource")
		}
		return Status{Task: task}, nil
	default:
		return Status{}, api.ResponseToError(res)
	}
}

// Poll waits for the task to reach a terminal state, checking at a fixed
// interval on the injected clock. Unknown currentState values are treated
// as opaque in-progress states.
func (m *Manager) Poll(meetId string, taskId string, maxAttempts int, interval time.Duration) Result {
	lastState := ""
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, err := m.FetchStatus(meetId, taskId)
		if err != nil {
			m.logger.Warnf("Export task status check failed: %s", err)
			return Result{State: StateTransportError, Attempts: attempt, LastTaskState: lastState, ErrorMessage: err.Error()}
		}

		if status.NotModified {
			m.logger.Debugf("Export task \"%s\": no change.", taskId)
		} else {
			lastState = status.Task.CurrentState()
			m.logger.Debugf(`Export task "%s": state "%s".`, taskId, lastState)

			switch lastState {
			case model.TaskStateCompleted:
				return Result{
					State:         StateCompleted,
					Attempts:      attempt,
					LastTaskState: lastState,
					Href:          status.Task.ExportHref(),
					Filename:      status.Task.ExportFilename(),
				}
			case model.TaskStateFailed:
				return Result{
					State:         StateFailed,
					Attempts:      attempt,
					LastTaskState: lastState,
					ErrorMessage:  status.Task.ErrorMessage(),
				}
			}
		}

		if attempt < maxAttempts {
			m.clock.Sleep(interval)
		}
	}

	return Result{State: StateTimedOut, Attempts: maxAttempts, LastTaskState: lastState}
}
