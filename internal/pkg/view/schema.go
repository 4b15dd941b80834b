package view

import (
	"sort"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/typeinfer"
)

// SchemaSummary is the union of attribute types and relationship names
// seen across all sample documents of one endpoint. Output order is
// alphabetical so the generated documentation is stable.
type SchemaSummary struct {
	// Attributes maps attribute name to its sorted set of type tags.
	Attributes *orderedmap.OrderedMap
	// Relationships is the sorted set of relationship names.
	Relationships []string
}

// BuildSchemaSummary infers the attribute schema of an endpoint from its
// sample documents. Both single-resource and collection documents are
// accepted, the document decoder already normalizes "data" to a list.
func BuildSchemaSummary(docs ...*jsonapi.Document) SchemaSummary {
	attributeTypes := make(map[string]map[string]bool)
	relationships := make(map[string]bool)

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, resource := range doc.Data {
			for key, value := range resource.Attributes {
				if attributeTypes[key] == nil {
					attributeTypes[key] = make(map[string]bool)
				}
				attributeTypes[key][typeinfer.Infer(value)] = true
			}
			for name := range resource.Relationships {
				relationships[name] = true
			}
		}
	}

	summary := SchemaSummary{Attributes: orderedmap.New()}
	for _, name := range sortedKeys(attributeTypes) {
		var types []string
		for tag := range attributeTypes[name] {
			types = append(types, tag)
		}
		sort.Strings(types)
		summary.Attributes.Set(name, types)
	}
	for name := range relationships {
		summary.Relationships = append(summary.Relationships, name)
	}
	sort.Strings(summary.Relationships)
	return summary
}

func sortedKeys(m map[string]map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
