// Package view assembles renderer-ready views from a resolved resource
// graph: per-event heat/lane listings, the athlete name index and the
// endpoint schema summaries for documentation.
package view

import (
	"sort"
	"strconv"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/model"
)

// Placeholder names for unresolved athlete references.
const (
	NoAthleteAssigned = "No athlete assigned"
	UnknownAthlete    = "Unknown"
)

// EventView is one event with its heats materialized for rendering.
// HasDetails distinguishes "no heat data loaded" from an event whose
// detail document was present but empty.
type EventView struct {
	Event      model.Event
	HasDetails bool
	Heats      []HeatView
}

// HeatView is one heat with lane-sorted records.
type HeatView struct {
	Number  int // model.HeatNumberUnknown when the records carry no heat number
	Label   string
	Records []RecordView
}

// RecordView is one lane of one heat, fully dereferenced and formatted.
type RecordView struct {
	Lane       int
	Team       string
	SeedTime   string
	ResultTime string
	HasResult  bool
	Place      Place

	// Individual events
	AthleteName string
	Splits      []SplitView

	// Relay events
	RelayTeamName string
	Swimmers      []SwimmerView
}

type SplitView struct {
	Distance string
	Time     string
}

type SwimmerView struct {
	Position int
	Name     string
}

// BuildEventView groups all event records of the graph into heats and
// dereferences athletes, relay positions and splits. Records usually come
// from one event-detail document resolved together with the athlete
// documents.
func BuildEventView(graph *jsonapi.Graph, event model.Event) EventView {
	result := EventView{Event: event}

	records := graph.ResourcesByType(model.TypeEventRecord)
	if len(records) == 0 {
		return result
	}
	result.HasDetails = true

	groups := jsonapi.GroupByAttribute(records, "heatNumber", model.HeatNumberUnknown)
	keys := groups.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return heatSortKey(keys[i]) < heatSortKey(keys[j])
	})

	for _, key := range keys {
		group, _ := groups.Get(key)
		resources := group.([]*jsonapi.Resource)

		heatRecords := make([]model.EventRecord, 0, len(resources))
		for _, resource := range resources {
			heatRecords = append(heatRecords, model.EventRecord{Resource: resource})
		}
		model.SortRecordsByLane(heatRecords)

		heat := HeatView{Number: heatSortKey(key), Label: key}
		if heat.Number == model.HeatNumberUnknown {
			heat.Label = "?"
		}
		for _, record := range heatRecords {
			heat.Records = append(heat.Records, buildRecordView(graph, event, record))
		}
		result.Heats = append(result.Heats, heat)
	}

	return result
}

func buildRecordView(graph *jsonapi.Graph, event model.Event, record model.EventRecord) RecordView {
	resultTime := FormatTime(record.ResultTimeInt())
	result := RecordView{
		Lane:       record.LaneNumber(),
		Team:       record.TeamAbbreviation(),
		SeedTime:   FormatTime(record.SeedTimeInt()),
		ResultTime: resultTime,
		HasResult:  resultTime != NoTime,
		Place:      ClassifyPlace(record.Place()),
	}

	if event.IsRelay() {
		result.RelayTeamName = record.RelayTeamName()
		result.Swimmers = buildSwimmers(graph, record)
		return result
	}

	result.AthleteName = athleteName(graph, record.AthleteRel(), NoAthleteAssigned)
	for _, resource := range graph.ResolveToMany(record.SplitsRel()) {
		split := model.Split{Resource: resource}
		result.Splits = append(result.Splits, SplitView{
			Distance: split.Distance(),
			Time:     FormatTime(split.SplitTimeInt()),
		})
	}
	return result
}

func buildSwimmers(graph *jsonapi.Graph, record model.EventRecord) []SwimmerView {
	resources := graph.ResolveToMany(record.RelayPositionRecordsRel())
	positions := make([]model.RelayPositionRecord, 0, len(resources))
	for _, resource := range resources {
		positions = append(positions, model.RelayPositionRecord{Resource: resource})
	}
	model.SortRelayPositions(positions)

	var swimmers []SwimmerView
	for _, position := range positions {
		rel := position.AthleteRel()
		if _, found := rel.First(); !found {
			// Position without an assigned athlete
			continue
		}
		swimmers = append(swimmers, SwimmerView{
			Position: position.RelayPosition(),
			Name:     athleteName(graph, rel, UnknownAthlete),
		})
	}
	return swimmers
}

func athleteName(graph *jsonapi.Graph, rel *jsonapi.Relationship, placeholder string) string {
	resource, found := graph.ResolveToOne(rel)
	if !found {
		return placeholder
	}
	if name := (model.Athlete{Resource: resource}).DisplayName(); name != "" {
		return name
	}
	return placeholder
}

func heatSortKey(key string) int {
	number, err := strconv.Atoi(key)
	if err != nil {
		return model.HeatNumberUnknown
	}
	return number
}
