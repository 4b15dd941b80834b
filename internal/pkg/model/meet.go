package model

import (
	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
)

// Meet is a typed view over a "meet" resource.
type Meet struct {
	Resource *jsonapi.Resource
}

func (m Meet) ID() string {
	return m.Resource.ID
}

func (m Meet) Name() string {
	return stringAttribute(m.Resource, "name", "Unknown Meet")
}

// MeetFromDocument extracts the meet from a single-resource document.
func MeetFromDocument(doc *jsonapi.Document) (Meet, bool) {
	if doc == nil || len(doc.Data) == 0 || doc.Data[0].Type != TypeMeet {
		return Meet{}, false
	}
	return Meet{Resource: doc.Data[0]}, true
}
