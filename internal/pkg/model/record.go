package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
)

// EventRecord is a typed view over an "eventRecord" resource, one lane
// of one heat.
type EventRecord struct {
	Resource *jsonapi.Resource
}

func (r EventRecord) ID() string {
	return r.Resource.ID
}

func (r EventRecord) LaneNumber() int {
	return intAttribute(r.Resource, "laneNumber", DefaultLaneNumber)
}

func (r EventRecord) HeatNumber() int {
	return intAttribute(r.Resource, "heatNumber", HeatNumberUnknown)
}

func (r EventRecord) TeamAbbreviation() string {
	return stringAttribute(r.Resource, "teamAbbreviation", "?")
}

func (r EventRecord) SeedTimeInt() int {
	return intAttribute(r.Resource, "seedTimeInt", 0)
}

// ResultTimeInt prefers the official time over the raw result time.
func (r EventRecord) ResultTimeInt() int {
	if value := intAttribute(r.Resource, "officialTimeInt", 0); value != 0 {
		return value
	}
	return intAttribute(r.Resource, "resultTimeInt", 0)
}

// Place prefers the overall place over the heat place. Zero means unplaced,
// which is legitimate for unscored heats.
func (r EventRecord) Place() int {
	if value := intAttribute(r.Resource, "overallPlace", 0); value != 0 {
		return value
	}
	return intAttribute(r.Resource, "heatPlace", 0)
}

func (r EventRecord) RelayTeam() string {
	return stringAttribute(r.Resource, "relayTeam", "")
}

// RelayTeamName falls back to "{team} {relayTeam}" when the server did not
// provide a composed name.
func (r EventRecord) RelayTeamName() string {
	if name := stringAttribute(r.Resource, "relayTeamName", ""); name != "" {
		return name
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.TeamAbbreviation(), r.RelayTeam()))
}

func (r EventRecord) AthleteRel() *jsonapi.Relationship {
	return r.Resource.Relationship("athlete")
}

func (r EventRecord) RelayPositionRecordsRel() *jsonapi.Relationship {
	return r.Resource.Relationship("relayPositionRecords")
}

func (r EventRecord) SplitsRel() *jsonapi.Relationship {
	return r.Resource.Relationship("splits")
}

// SortRecordsByLane sorts ascending by lane number, stable so ties keep
// first-seen order.
func SortRecordsByLane(records []EventRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].LaneNumber() < records[j].LaneNumber()
	})
}

// RelayPositionRecord is a typed view over a "relayPositionRecord" resource.
type RelayPositionRecord struct {
	Resource *jsonapi.Resource
}

func (r RelayPositionRecord) RelayPosition() int {
	return intAttribute(r.Resource, "relayPosition", DefaultRelayPosition)
}

func (r RelayPositionRecord) AthleteRel() *jsonapi.Relationship {
	return r.Resource.Relationship("athlete")
}

// SortRelayPositions sorts ascending by relay position, stable.
func SortRelayPositions(positions []RelayPositionRecord) {
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].RelayPosition() < positions[j].RelayPosition()
	})
}

// Split is a typed view over a "split" resource.
type Split struct {
	Resource *jsonapi.Resource
}

func (s Split) Distance() string {
	return stringAttribute(s.Resource, "distance", "?")
}

func (s Split) SplitTimeInt() int {
	return intAttribute(s.Resource, "splitTimeInt", 0)
}

func intAttribute(resource *jsonapi.Resource, key string, defaultValue int) int {
	value, found := resource.Attribute(key)
	if !found || value == nil {
		return defaultValue
	}
	number, err := cast.ToIntE(value)
	if err != nil {
		return defaultValue
	}
	return number
}

func stringAttribute(resource *jsonapi.Resource, key string, defaultValue string) string {
	value, found := resource.Attribute(key)
	if !found || value == nil {
		return defaultValue
	}
	return cast.ToString(value)
}
