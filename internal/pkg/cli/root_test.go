package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimboard/swimboard/internal/pkg/api"
	"github.com/swimboard/swimboard/internal/pkg/utils"
)

func newTestRootCommand(t *testing.T) (*rootCommand, *bytes.Buffer) {
	t.Helper()
	in := bytes.NewReader(nil)
	out := &bytes.Buffer{}
	root := NewRootCommand(in, out, out)
	root.fs = afero.NewMemMapFs()
	return root, out
}

// commonArgs keeps tests off the real working directory and temp log file.
func commonArgs(t *testing.T, args ...string) []string {
	t.Helper()
	dir := t.TempDir()
	return append(args,
		"--working-dir", dir,
		"--log-file", filepath.Join(dir, "log.txt"),
	)
}

func writeCacheFile(t *testing.T, fs afero.Fs, name string, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("/cache", name), []byte(content), 0o644))
}

func TestExecuteHelp(t *testing.T) {
	root, out := newTestRootCommand(t)
	root.cmd.SetArgs(commonArgs(t))

	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), "Available Commands:")
	assert.Contains(t, out.String(), "docs")
	assert.Contains(t, out.String(), "export")
}

func TestExecuteVersion(t *testing.T) {
	root, out := newTestRootCommand(t)
	root.cmd.SetArgs([]string{"--version"})

	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), "Version:")
	assert.Contains(t, out.String(), "Git commit:")
}

func TestExportCommandMissingOptions(t *testing.T) {
	root, out := newTestRootCommand(t)
	root.cmd.SetArgs(commonArgs(t, "export"))

	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), "Invalid parameters")
	assert.Contains(t, out.String(), "Missing username")
	assert.Contains(t, out.String(), "Missing meet id")
}

func TestDocsCommandMissingCache(t *testing.T) {
	root, out := newTestRootCommand(t)
	root.cmd.SetArgs(commonArgs(t, "docs", "--cache-dir", "/cache"))

	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `cache directory "/cache" not found`)
}

func TestDocsCommand(t *testing.T) {
	root, out := newTestRootCommand(t)
	writeCacheFile(t, root.fs, "v3_meets_ID_athletes_20240601_153000.json", `{
		"data": [{"type": "athlete", "id": "A1", "attributes": {"firstName": "Ann", "age": 12}}]
	}`)
	root.cmd.SetArgs(commonArgs(t, "docs", "--cache-dir", "/cache", "--output-dir", "/out"))

	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), `Documentation written to "/out/API_DOCUMENTATION.md".`)

	docs, err := afero.ReadFile(root.fs, "/out/API_DOCUMENTATION.md")
	require.NoError(t, err)
	assert.Contains(t, string(docs), "# Swimtopia API Documentation")
	assert.Contains(t, string(docs), "## Meets ID Athletes")
	assert.Contains(t, string(docs), "| `age` | integer | |")
}

func TestScoreboardCommand(t *testing.T) {
	root, out := newTestRootCommand(t)
	writeCacheFile(t, root.fs, "v3_meets_ID_events_20240601_153000.json", `{
		"data": [{"type": "event", "id": "E1", "attributes": {"eventNumber": "1", "label": "50 Free", "state": "scored"}}]
	}`)
	writeCacheFile(t, root.fs, "v3_meets_ID_events_ID_20240601_153000.json", `{
		"data": {"type": "event", "id": "E1", "attributes": {"eventNumber": "1", "label": "50 Free", "state": "scored"}},
		"included": [
			{"type": "eventRecord", "id": "R1", "attributes": {"heatNumber": 1, "laneNumber": 3, "teamAbbreviation": "SHK", "officialTimeInt": 3000, "overallPlace": 1}, "relationships": {"athlete": {"data": {"type": "athlete", "id": "A1"}}}}
		]
	}`)
	writeCacheFile(t, root.fs, "v3_meets_ID_athletes_20240601_153000.json", `{
		"data": [{"type": "athlete", "id": "A1", "attributes": {"firstName": "Ann", "lastName": "Smith"}}]
	}`)
	root.cmd.SetArgs(commonArgs(t, "scoreboard", "--cache-dir", "/cache", "--output-dir", "/out"))

	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), `Scoreboard with 1 event(s) written to "/out/scoreboard.html".`)

	html, err := afero.ReadFile(root.fs, "/out/scoreboard.html")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h2>Event #1</h2>")
	assert.Contains(t, string(html), "Ann Smith")
	assert.Contains(t, string(html), `<div class="heat-header">HEAT 1</div>`)
}

func TestHeatsCommand(t *testing.T) {
	root, out := newTestRootCommand(t)
	writeCacheFile(t, root.fs, "v3_meets_ID_events_20240601_153000.json", `{
		"data": [{"type": "event", "id": "E1", "attributes": {"eventNumber": "1", "label": "50 Free"}}]
	}`)
	root.cmd.SetArgs(commonArgs(t, "heats", "--cache-dir", "/cache"))

	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), "EVENT #1: 50 Free (INDIVIDUAL)")
	assert.Contains(t, out.String(), "Heat and lane details not available in cache")
}

// mockLiveApi injects a pre-authenticated API client backed by httpmock,
// so live commands skip the OAuth exchange.
func mockLiveApi(t *testing.T, root *rootCommand) {
	t.Helper()
	logger, _, _ := utils.NewDebugLogger()
	swimApi := api.NewSwimApi("api.swimtopia.org", context.Background(), logger, false)

	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.ActivateNonDefault(swimApi.HttpClient().GetRestyClient().GetClient())
	root.api = swimApi
}

func TestScoreboardCommandLive(t *testing.T) {
	root, out := newTestRootCommand(t)
	mockLiveApi(t, root)

	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123",
		httpmock.NewStringResponder(200, `{"data": {"type": "meet", "id": "123", "attributes": {"name": "Summer Invitational"}}}`),
	)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/athletes",
		httpmock.NewStringResponder(200, `{"data": [{"type": "athlete", "id": "A1", "attributes": {"firstName": "Ann", "lastName": "Smith"}}]}`),
	)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/event-nodes",
		httpmock.NewStringResponder(200, `{"data": [
			{"type": "eventNode", "id": "N1", "attributes": {"eventNumber": "1", "label": "50 Free", "state": "scored"}, "relationships": {"event": {"data": {"type": "event", "id": "E1"}}}}
		]}`),
	)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/events/E1",
		httpmock.NewStringResponder(200, `{
			"data": {"type": "event", "id": "E1", "attributes": {"eventNumber": "1", "label": "50 Free", "state": "scored"}},
			"included": [
				{"type": "eventRecord", "id": "R1", "attributes": {"heatNumber": 1, "laneNumber": 3, "teamAbbreviation": "SHK", "officialTimeInt": 3000, "overallPlace": 1}, "relationships": {"athlete": {"data": {"type": "athlete", "id": "A1"}}}}
			]
		}`),
	)

	root.cmd.SetArgs(commonArgs(t, "scoreboard", "--live", "--output-dir", "/out",
		"--username", "coach", "--password", "secret", "--meet-id", "123"))

	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), `Loading meet "Summer Invitational" from the API.`)

	html, err := afero.ReadFile(root.fs, "/out/scoreboard.html")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h2>Event #1</h2>")
	assert.Contains(t, string(html), "Ann Smith")
	assert.Contains(t, string(html), `<div class="heat-header">HEAT 1</div>`)
}

func TestHeatsCommandLiveEventDetailFailure(t *testing.T) {
	root, out := newTestRootCommand(t)
	mockLiveApi(t, root)

	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123",
		httpmock.NewStringResponder(200, `{"data": {"type": "meet", "id": "123", "attributes": {"name": "Summer Invitational"}}}`),
	)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/athletes",
		httpmock.NewStringResponder(200, `{"data": []}`),
	)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/event-nodes",
		httpmock.NewStringResponder(200, `{"data": [
			{"type": "eventNode", "id": "N1", "attributes": {"eventNumber": "1", "label": "50 Free"}, "relationships": {"event": {"data": {"type": "event", "id": "E1"}}}}
		]}`),
	)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/events/E1",
		httpmock.NewStringResponder(404, `{"errors": [{"status": "404", "title": "Not Found"}]}`),
	)

	root.cmd.SetArgs(commonArgs(t, "heats", "--live",
		"--username", "coach", "--password", "secret", "--meet-id", "123"))

	// A failed event detail degrades to an event without heat data
	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), `Cannot load event "E1"`)
	assert.Contains(t, out.String(), "EVENT #1: 50 Free (INDIVIDUAL)")
	assert.Contains(t, out.String(), "Heat and lane details not available in cache")
}

func TestHeatsCommandLiveMissingCredentials(t *testing.T) {
	root, out := newTestRootCommand(t)
	root.cmd.SetArgs(commonArgs(t, "heats", "--live"))

	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), "Invalid parameters")
	assert.Contains(t, out.String(), "Missing username")
}

func TestHeatsCommandEmptyCache(t *testing.T) {
	root, out := newTestRootCommand(t)
	require.NoError(t, root.fs.MkdirAll("/cache", 0o755))
	root.cmd.SetArgs(commonArgs(t, "heats", "--cache-dir", "/cache"))

	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), "no events found in cache directory")
}
