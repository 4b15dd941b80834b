// Package jsonapi decodes JSON:API compound documents and resolves the
// relationship graph between their resources.
package jsonapi

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	"github.com/swimboard/swimboard/internal/pkg/json"
)

// Identifier is the (type, id) pair identifying a resource in a graph.
type Identifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (i Identifier) String() string {
	return fmt.Sprintf("%s/%s", i.Type, i.ID)
}

// Resource is one typed JSON:API entity with attributes and relationships.
type Resource struct {
	Type          string                   `json:"type"`
	ID            string                   `json:"id"`
	Attributes    map[string]interface{}   `json:"attributes"`
	Relationships map[string]*Relationship `json:"relationships"`
}

func (r *Resource) Identifier() Identifier {
	return Identifier{Type: r.Type, ID: r.ID}
}

// Attribute returns the raw attribute value, if present.
func (r *Resource) Attribute(key string) (interface{}, bool) {
	if r == nil || r.Attributes == nil {
		return nil, false
	}
	value, found := r.Attributes[key]
	return value, found
}

// Relationship returns the named relationship or nil.
func (r *Resource) Relationship(name string) *Relationship {
	if r == nil || r.Relationships == nil {
		return nil
	}
	return r.Relationships[name]
}

// Relationship is a link to one or many other resources.
// "data": null, "data": {...} and "data": [...] forms are all accepted,
// the linked identifiers are normalized to a slice.
type Relationship struct {
	Defined bool // data key was present and non-null
	ToMany  bool
	Data    []Identifier
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Data stdjson.RawMessage `json:"data"`
	}
	if err := json.Decode(data, &envelope); err != nil {
		return err
	}

	raw := bytes.TrimSpace(envelope.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	r.Defined = true
	if raw[0] == '[' {
		r.ToMany = true
		return json.Decode(raw, &r.Data)
	}

	var one Identifier
	if err := json.Decode(raw, &one); err != nil {
		return err
	}
	r.Data = []Identifier{one}
	return nil
}

// First returns the first linked identifier of a to-one relationship.
func (r *Relationship) First() (Identifier, bool) {
	if r == nil || !r.Defined || len(r.Data) == 0 {
		return Identifier{}, false
	}
	return r.Data[0], true
}

// Document is a JSON:API payload: primary data plus side-loaded resources.
type Document struct {
	Data     ResourceList `json:"data"`
	Included []*Resource  `json:"included"`
}

// ResourceList accepts both a single resource object and an array of
// resources as the document "data" member.
type ResourceList []*Resource

func (l *ResourceList) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '[' {
		var many []*Resource
		if err := json.Decode(raw, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}

	one := &Resource{}
	if err := json.Decode(raw, one); err != nil {
		return err
	}
	*l = ResourceList{one}
	return nil
}

// ParseDocument decodes one JSON:API document.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Decode(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
