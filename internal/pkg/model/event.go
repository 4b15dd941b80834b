package model

import (
	"sort"

	"github.com/spf13/cast"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
)

// Event is a typed view over an "event" resource.
type Event struct {
	Resource *jsonapi.Resource
}

func (e Event) ID() string {
	return e.Resource.ID
}

// EventNumber is the primary sort key. Missing or non-numeric values
// sort last via DefaultEventNumber.
func (e Event) EventNumber() int {
	value, found := e.Resource.Attribute("eventNumber")
	if !found || value == nil {
		return DefaultEventNumber
	}
	number, err := cast.ToIntE(value)
	if err != nil {
		return DefaultEventNumber
	}
	return number
}

// EventNumberLabel is the raw event number for display, "?" when absent.
func (e Event) EventNumberLabel() string {
	value, found := e.Resource.Attribute("eventNumber")
	if !found || value == nil {
		return "?"
	}
	return cast.ToString(value)
}

func (e Event) Label() string {
	if value, found := e.Resource.Attribute("label"); found && value != nil {
		return cast.ToString(value)
	}
	return "Unknown Event"
}

func (e Event) EventType() string {
	if value, found := e.Resource.Attribute("eventType"); found && value != nil {
		return cast.ToString(value)
	}
	return EventTypeIndividual
}

func (e Event) IsRelay() bool {
	return e.EventType() == EventTypeRelay
}

func (e Event) State() string {
	if value, found := e.Resource.Attribute("state"); found && value != nil {
		return cast.ToString(value)
	}
	return EventStateSeeded
}

// EventsFromGraph returns all events sorted ascending by event number.
// The sort is stable, equal numbers keep graph insertion order.
func EventsFromGraph(graph *jsonapi.Graph) []Event {
	resources := graph.ResourcesByType(TypeEvent)
	events := make([]Event, 0, len(resources))
	for _, resource := range resources {
		events = append(events, Event{Resource: resource})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventNumber() < events[j].EventNumber()
	})
	return events
}

// EventFromNode converts an "eventNode" resource to an "event" resource.
// The node's attributes are carried over, the id comes from the node's
// "event" relationship. Nodes without the relationship are dropped.
func EventFromNode(node *jsonapi.Resource) (*jsonapi.Resource, bool) {
	if node == nil || node.Type != TypeEventNode {
		return nil, false
	}
	ref, found := node.Relationship("event").First()
	if !found || ref.ID == "" {
		return nil, false
	}
	return &jsonapi.Resource{
		Type:       TypeEvent,
		ID:         ref.ID,
		Attributes: node.Attributes,
	}, true
}

// EventNodesToDocument builds an events document from an event-nodes
// document, so node-derived events merge into the graph with the same
// first-seen dedup policy as directly listed events.
func EventNodesToDocument(nodes *jsonapi.Document) *jsonapi.Document {
	converted := &jsonapi.Document{}
	if nodes == nil {
		return converted
	}
	for _, node := range nodes.Data {
		if event, ok := EventFromNode(node); ok {
			converted.Data = append(converted.Data, event)
		}
	}
	return converted
}
