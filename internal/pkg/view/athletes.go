package view

import (
	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/model"
)

// AthleteInfo is the display form of one athlete.
type AthleteInfo struct {
	FirstName   string
	LastName    string
	DisplayName string
}

// AthleteIndex maps athlete id to display names. Athlete resources use the
// last-write-wins merge policy, so the index reflects the most recently
// loaded athlete documents.
func AthleteIndex(graph *jsonapi.Graph) map[string]AthleteInfo {
	index := make(map[string]AthleteInfo)
	for _, resource := range graph.ResourcesByType(model.TypeAthlete) {
		athlete := model.Athlete{Resource: resource}
		index[athlete.ID()] = AthleteInfo{
			FirstName:   athlete.FirstName(),
			LastName:    athlete.LastName(),
			DisplayName: athlete.DisplayName(),
		}
	}
	return index
}
