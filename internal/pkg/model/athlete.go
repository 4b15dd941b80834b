package model

import (
	"strings"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
)

// Athlete is a typed view over an "athlete" resource.
type Athlete struct {
	Resource *jsonapi.Resource
}

func (a Athlete) ID() string {
	return a.Resource.ID
}

func (a Athlete) FirstName() string {
	return stringAttribute(a.Resource, "firstName", "")
}

func (a Athlete) LastName() string {
	return stringAttribute(a.Resource, "lastName", "")
}

func (a Athlete) DisplayFirstName() string {
	return stringAttribute(a.Resource, "displayFirstName", "")
}

// DisplayName composes "{displayFirstName or firstName} {lastName}",
// trimmed, so a missing part never leaves stray whitespace.
func (a Athlete) DisplayName() string {
	first := a.DisplayFirstName()
	if first == "" {
		first = a.FirstName()
	}
	return strings.TrimSpace(first + " " + a.LastName())
}
