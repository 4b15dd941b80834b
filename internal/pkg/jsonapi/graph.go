package jsonapi

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"
)

// MergePolicy decides which resource wins when the same (type, id) pair
// occurs in multiple source documents.
type MergePolicy int

const (
	// LastWriteWins keeps the most recently loaded resource, later
	// documents are assumed more complete.
	LastWriteWins MergePolicy = iota
	// FirstSeen keeps the first loaded resource, later duplicates are
	// considered lower-fidelity (eg. events derived from event nodes).
	FirstSeen
)

// mergePolicyByType, everything not listed defaults to LastWriteWins.
var mergePolicyByType = map[string]MergePolicy{ // nolint: gochecknoglobals
	"event": FirstSeen,
}

// Graph is the (type, id) index over all resources of the merged documents.
// It is built once per resolution and holds no references back to the
// source documents' callers.
type Graph struct {
	index  map[Identifier]*Resource
	byType map[string][]*Resource // insertion order preserved
}

// Resolve merges the documents' primary and included resources into a graph.
// Resources without a type or id are skipped, they cannot be indexed.
func Resolve(docs ...*Document) *Graph {
	g := &Graph{
		index:  make(map[Identifier]*Resource),
		byType: make(map[string][]*Resource),
	}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, resource := range doc.Data {
			g.add(resource)
		}
		for _, resource := range doc.Included {
			g.add(resource)
		}
	}
	return g
}

func (g *Graph) add(resource *Resource) {
	if resource == nil || resource.Type == "" || resource.ID == "" {
		return
	}

	key := resource.Identifier()
	existing, found := g.index[key]
	if !found {
		g.index[key] = resource
		g.byType[resource.Type] = append(g.byType[resource.Type], resource)
		return
	}

	if mergePolicyByType[resource.Type] == FirstSeen {
		return
	}

	// Last write wins, the resource keeps its first-seen position
	g.index[key] = resource
	for i, item := range g.byType[resource.Type] {
		if item == existing {
			g.byType[resource.Type][i] = resource
			break
		}
	}
}

// Get returns the indexed resource, if present.
func (g *Graph) Get(typ string, id string) (*Resource, bool) {
	resource, found := g.index[Identifier{Type: typ, ID: id}]
	return resource, found
}

// ResourcesByType returns all resources of the type in insertion order.
func (g *Graph) ResourcesByType(typ string) []*Resource {
	return g.byType[typ]
}

// Len returns the number of indexed resources.
func (g *Graph) Len() int {
	return len(g.index)
}

// ResolveToOne dereferences a to-one relationship.
// An unresolved or absent reference returns (nil, false), never an error,
// callers render a placeholder instead.
func (g *Graph) ResolveToOne(rel *Relationship) (*Resource, bool) {
	ref, found := rel.First()
	if !found {
		return nil, false
	}
	return g.Get(ref.Type, ref.ID)
}

// ResolveToMany dereferences a to-many relationship.
// Unresolved elements are skipped, not nulled, so callers never see gaps.
func (g *Graph) ResolveToMany(rel *Relationship) []*Resource {
	if rel == nil || !rel.Defined {
		return nil
	}
	var resolved []*Resource
	for _, ref := range rel.Data {
		if resource, found := g.Get(ref.Type, ref.ID); found {
			resolved = append(resolved, resource)
		}
	}
	return resolved
}

// GroupByAttribute groups resources by the string form of an attribute
// value, preserving insertion order of both groups and group members.
// Resources missing the attribute fall into the defaultValue group.
func GroupByAttribute(resources []*Resource, key string, defaultValue interface{}) *orderedmap.OrderedMap {
	groups := orderedmap.New()
	for _, resource := range resources {
		value, found := resource.Attribute(key)
		if !found || value == nil {
			value = defaultValue
		}
		groupKey := cast.ToString(value)

		var group []*Resource
		if existing, found := groups.Get(groupKey); found {
			group = existing.([]*Resource)
		}
		groups.Set(groupKey, append(group, resource))
	}
	return groups
}
