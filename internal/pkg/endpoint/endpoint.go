// Package endpoint maps cached response filenames back to the API
// endpoints they were captured from.
package endpoint

import (
	"strings"
	"unicode"

	"github.com/umisama/go-regexpcache"
)

// PathUnknown marks filenames no rule matched.
const PathUnknown = "unknown"

// Descriptor identifies one API endpoint.
type Descriptor struct {
	Path   string
	Method string
	Name   string
}

// Parse derives the endpoint descriptor from a cache filename, eg.
// "v3_meets_ID_event-nodes_20240601_153000.json" ->
// GET /v3/meets/{id}/event-nodes "Meets ID Event-Nodes".
func Parse(filename string) Descriptor {
	name := regexpcache.MustCompile(`_\d{8}_\d{6}\.json$`).ReplaceAllString(filename, "")

	if name == "oauth_token" {
		return Descriptor{Path: "/oauth/token", Method: "POST", Name: "OAuth Token"}
	}

	if strings.HasPrefix(name, "v3_") {
		segments := strings.Split(name, "_")
		for i, segment := range segments {
			if segment == "ID" || segment == "UUID" {
				segments[i] = "{id}"
			}
		}
		return Descriptor{
			Path:   "/" + strings.Join(segments, "/"),
			Method: "GET",
			Name:   humanName(strings.TrimPrefix(name, "v3_")),
		}
	}

	// Legacy filenames predate the v3_ convention
	if name == "meets_list" {
		return Descriptor{Path: "/v3/meets", Method: "GET", Name: "List Meets"}
	}
	if strings.HasPrefix(name, "meet_") {
		return Descriptor{Path: "/v3/meets/{id}", Method: "GET", Name: "Get Meet Details"}
	}

	return Descriptor{Path: PathUnknown, Method: "GET", Name: name}
}

// humanName turns "meets_ID_event-nodes" into "Meets ID Event-Nodes".
func humanName(name string) string {
	title := titleCase(strings.ReplaceAll(name, "_", " "))
	return regexpcache.MustCompile(`\bId\b`).ReplaceAllString(title, "ID")
}

// titleCase uppercases the first letter of every word, words start after
// any non-letter rune.
func titleCase(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))
	previousIsLetter := false
	for _, r := range value {
		if unicode.IsLetter(r) {
			if previousIsLetter {
				builder.WriteRune(unicode.ToLower(r))
			} else {
				builder.WriteRune(unicode.ToUpper(r))
			}
			previousIsLetter = true
		} else {
			builder.WriteRune(r)
			previousIsLetter = false
		}
	}
	return builder.String()
}
