package export

import (
	"fmt"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/model"
)

// Export task create request document.
type taskRequest struct {
	Data taskResource `json:"data"`
}

type taskResource struct {
	Type          string            `json:"type"`
	Id            string            `json:"id"`
	Attributes    taskAttributes    `json:"attributes"`
	Relationships taskRelationships `json:"relationships"`
}

type taskAttributes struct {
	ExportType    string      `json:"exportType"`
	ExportFormat  string      `json:"exportFormat"`
	ExportOptions taskOptions `json:"exportOptions"`
}

type taskOptions struct {
	Team    filterOption `json:"team"`
	Session filterOption `json:"session"`
}

type filterOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type taskRelationships struct {
	Meet toOne `json:"meet"`
}

type toOne struct {
	Data jsonapi.Identifier `json:"data"`
}

func taskDocument(meetId string, taskId string, opts Options) taskRequest {
	return taskRequest{
		Data: taskResource{
			Type: model.TypeExportTask,
			Id:   taskId,
			Attributes: taskAttributes{
				ExportType:   opts.Type,
				ExportFormat: opts.Format,
				ExportOptions: taskOptions{
					Team:    newFilterOption(opts.TeamFilter, "All Teams", "Team %d"),
					Session: newFilterOption(opts.SessionFilter, "All Sessions", "Session %d"),
				},
			},
			Relationships: taskRelationships{
				Meet: toOne{Data: jsonapi.Identifier{Type: model.TypeMeet, ID: meetId}},
			},
		},
	}
}

func newFilterOption(value int, allLabel string, labelFormat string) filterOption {
	if value == AllFilter {
		return filterOption{Value: AllFilter, Label: allLabel}
	}
	return filterOption{Value: value, Label: fmt.Sprintf(labelFormat, value)}
}
