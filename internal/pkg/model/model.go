// Package model wraps raw JSON:API resources in typed views with the
// defaults the scoreboard and reports rely on. Unknown resource types are
// ignored by consumers, never an error.
package model

// Resource type names used by the meet API.
const (
	TypeMeet                = "meet"
	TypeEvent               = "event"
	TypeEventNode           = "eventNode"
	TypeHeat                = "heat"
	TypeEventRecord         = "eventRecord"
	TypeRelayPositionRecord = "relayPositionRecord"
	TypeSplit               = "split"
	TypeAthlete             = "athlete"
	TypeExportTask          = "exportTask"
)

// Attribute defaults.
const (
	DefaultEventNumber   = 999 // missing/non-numeric event numbers sort last
	DefaultLaneNumber    = 0
	DefaultRelayPosition = 99
	HeatNumberUnknown    = -1 // bucket for records without a heat number
)

// Event states reported by the server.
const (
	EventStateSeeded   = "seeded"
	EventStatePartial  = "partial"
	EventStateScored   = "scored"
	EventStateUnseeded = "unseeded"
)

// Event types.
const (
	EventTypeIndividual = "individual"
	EventTypeRelay      = "relay"
)
