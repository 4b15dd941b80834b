package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimboard/swimboard/internal/pkg/cache"
	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
)

func testFile(t *testing.T, name string, raw string) cache.File {
	t.Helper()
	doc, err := jsonapi.ParseDocument([]byte(raw))
	require.NoError(t, err)
	return cache.File{Name: name, Raw: []byte(raw), Doc: doc}
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	files := []cache.File{
		testFile(t, "v3_meets_ID_athletes_20240601_153000.json", `{
			"data": [
				{"type": "athlete", "id": "A1", "attributes": {"firstName": "Ann", "age": 12}, "relationships": {"team": {"data": {"type": "team", "id": "T1"}}}},
				{"type": "athlete", "id": "A2", "attributes": {"firstName": "Bob", "birthDate": "2012-03-04"}}
			]
		}`),
		testFile(t, "v3_meets_ID_athletes_20240601_160000.json", `{
			"data": [{"type": "athlete", "id": "A3", "attributes": {"age": 11.5}}]
		}`),
		testFile(t, "v3_meets_ID_20240601_153000.json", `{
			"data": {"type": "meet", "id": "123", "attributes": {"name": "Summer Invitational"}}
		}`),
	}

	output := Generate(files)

	assert.Contains(t, output, "# Swimtopia API Documentation")
	assert.Contains(t, output, "## Meets ID Athletes")
	assert.Contains(t, output, "**GET** `/v3/meets/{id}/athletes`")
	assert.Contains(t, output, "## Meets ID")
	assert.Contains(t, output, "**GET** `/v3/meets/{id}`")

	// Attribute types are unioned across files of the same endpoint
	assert.Contains(t, output, "| `age` | integer or number | |")
	assert.Contains(t, output, "| `birthDate` | date | |")
	assert.Contains(t, output, "- `team`")

	// Sections ordered by path: /v3/meets/{id} before /v3/meets/{id}/athletes
	assert.Less(t,
		strings.Index(output, "**GET** `/v3/meets/{id}`"),
		strings.Index(output, "**GET** `/v3/meets/{id}/athletes`"),
	)
}

func TestExampleResponseTrimsArrays(t *testing.T) {
	t.Parallel()
	file := testFile(t, "v3_meets_ID_athletes_20240601_153000.json", `{
		"data": [
			{"type": "athlete", "id": "A1", "attributes": {"firstName": "Ann"}},
			{"type": "athlete", "id": "A2", "attributes": {"firstName": "Bob"}}
		]
	}`)

	example := exampleResponse(file)
	assert.Contains(t, example, `"A1"`)
	assert.NotContains(t, example, `"A2"`)
}
