// Package docgen generates Markdown API documentation from cached
// responses: one section per endpoint with the inferred attribute schema,
// relationship names and a trimmed example response.
package docgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/swimboard/swimboard/internal/pkg/cache"
	"github.com/swimboard/swimboard/internal/pkg/endpoint"
	"github.com/swimboard/swimboard/internal/pkg/json"
	"github.com/swimboard/swimboard/internal/pkg/view"
)

const header = `# Swimtopia API Documentation

This documentation is automatically generated from cached API responses.

## Base URL

` + "```" + `
https://api.swimtopia.org
` + "```" + `

## Authentication

All API requests (except ` + "`/oauth/token`" + `) require an OAuth 2.0 access token.

**Header:**
` + "```" + `
Authorization: Bearer {access_token}
` + "```" + `

## Content Type

All responses follow the JSON:API specification (application/vnd.api+json).

---
`

type endpointGroup struct {
	descriptor endpoint.Descriptor
	files      []cache.File
}

// Generate builds the documentation from all cached files, grouped by the
// endpoint their filenames map to.
func Generate(files []cache.File) string {
	groups := make(map[string]*endpointGroup)
	for _, file := range files {
		descriptor := endpoint.Parse(file.Name)
		group, found := groups[descriptor.Path]
		if !found {
			group = &endpointGroup{descriptor: descriptor}
			groups[descriptor.Path] = group
		}
		group.files = append(group.files, file)
	}

	paths := make([]string, 0, len(groups))
	for path := range groups {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var out strings.Builder
	out.WriteString(header)
	out.WriteString("\n")
	for _, path := range paths {
		writeEndpoint(&out, groups[path])
	}
	return out.String()
}

func writeEndpoint(out *strings.Builder, group *endpointGroup) {
	fmt.Fprintf(out, "## %s\n\n", group.descriptor.Name)
	fmt.Fprintf(out, "**%s** `%s`\n\n", group.descriptor.Method, group.descriptor.Path)

	summary := view.BuildSchemaSummary(cache.Documents(group.files)...)

	if len(summary.Attributes.Keys()) > 0 {
		out.WriteString("### Attributes\n\n")
		out.WriteString("| Attribute | Type | Description |\n")
		out.WriteString("|-----------|------|-------------|\n")
		for _, name := range summary.Attributes.Keys() {
			types, _ := summary.Attributes.Get(name)
			fmt.Fprintf(out, "| `%s` | %s | |\n", name, strings.Join(types.([]string), " or "))
		}
		out.WriteString("\n")
	}

	if len(summary.Relationships) > 0 {
		out.WriteString("### Relationships\n\n")
		for _, name := range summary.Relationships {
			fmt.Fprintf(out, "- `%s`\n", name)
		}
		out.WriteString("\n")
	}

	if example := exampleResponse(group.files[0]); example != "" {
		out.WriteString("### Example Response\n\n")
		out.WriteString("```json\n")
		out.WriteString(example)
		out.WriteString("```\n\n")
	}

	out.WriteString("---\n\n")
}

// exampleResponse trims the first cached response to its "data" member,
// arrays are cut down to their first item.
func exampleResponse(file cache.File) string {
	var raw map[string]interface{}
	if err := json.Decode(file.Raw, &raw); err != nil {
		return ""
	}

	data, found := raw["data"]
	if !found {
		return json.MustEncodeString(raw, true)
	}
	if items, isArray := data.([]interface{}); isArray && len(items) > 0 {
		data = []interface{}{items[0]}
	}
	return json.MustEncodeString(map[string]interface{}{"data": data}, true)
}
