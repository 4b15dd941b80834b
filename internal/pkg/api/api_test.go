package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimboard/swimboard/internal/pkg/utils"
)

func testApi(t *testing.T) *SwimApi {
	t.Helper()
	logger, _, _ := utils.NewDebugLogger()
	a := NewSwimApi("api.swimtopia.org", context.Background(), logger, false)

	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.ActivateNonDefault(a.http.GetRestyClient().GetClient())
	return a
}

func TestNewClient(t *testing.T) {
	logger, _, _ := utils.NewDebugLogger()
	c := NewClient(context.Background(), logger, false)
	assert.NotNil(t, c)
}

func TestAuthenticateOk(t *testing.T) {
	a := testApi(t)
	httpmock.RegisterResponder(
		"POST", "https://api.swimtopia.org/oauth/token",
		httpmock.NewStringResponder(200, `{"access_token": "my-token", "token_type": "Bearer", "expires_in": 7200}`),
	)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer my-token", req.Header.Get("Authorization"))
			return httpmock.NewStringResponse(200, `{"data": {"type": "meet", "id": "123", "attributes": {"name": "Summer Invitational"}}}`), nil
		},
	)

	require.NoError(t, a.Authenticate("user@example.com", "secret"))
	assert.True(t, a.IsTokenValid())
	assert.Equal(t, "my-token", a.Token().AccessToken)

	doc, err := a.GetMeet("123")
	require.NoError(t, err)
	require.Len(t, doc.Data, 1)
	assert.Equal(t, "meet", doc.Data[0].Type)
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	a := testApi(t)
	httpmock.RegisterResponder(
		"POST", "https://api.swimtopia.org/oauth/token",
		httpmock.NewStringResponder(401, `{"error": "invalid_grant", "error_description": "The provided credentials are invalid."}`),
	)

	err := a.Authenticate("user@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "authentication failed: invalid_grant: The provided credentials are invalid.", err.Error())
	assert.False(t, a.IsTokenValid())
}

func TestAuthenticateServerError(t *testing.T) {
	a := testApi(t)
	httpmock.RegisterResponder(
		"POST", "https://api.swimtopia.org/oauth/token",
		httpmock.NewStringResponder(500, `oops`),
	)

	err := a.Authenticate("user@example.com", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned http code 500")
}

func TestTokenExpiry(t *testing.T) {
	a := testApi(t)
	clock := clockwork.NewFakeClock()
	a.WithClock(clock)

	httpmock.RegisterResponder(
		"POST", "https://api.swimtopia.org/oauth/token",
		httpmock.NewStringResponder(200, `{"access_token": "my-token", "token_type": "Bearer", "expires_in": 60}`),
	)

	require.NoError(t, a.Authenticate("user@example.com", "secret"))
	assert.True(t, a.IsTokenValid())

	clock.Advance(61 * time.Second)
	assert.False(t, a.IsTokenValid())
}

func TestGetDocumentErrorBody(t *testing.T) {
	a := testApi(t)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/999",
		httpmock.NewStringResponder(404, `{"errors": [{"status": "404", "title": "Not Found", "detail": "Meet 999 does not exist."}]}`),
	)

	_, err := a.GetMeet("999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned http code 404")
	assert.Contains(t, err.Error(), "Not Found: Meet 999 does not exist.")
}

func TestGetDocumentMalformedBody(t *testing.T) {
	a := testApi(t)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/athletes",
		httpmock.NewStringResponder(200, `{"data": [`),
	)

	_, err := a.ListAthletes("123")
	require.Error(t, err)
}

func TestListEventNodes(t *testing.T) {
	a := testApi(t)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/event-nodes",
		httpmock.NewStringResponder(200, `{"data": [
			{"type": "eventNode", "id": "N1", "attributes": {"eventNumber": "1"}, "relationships": {"event": {"data": {"type": "event", "id": "E1"}}}}
		]}`),
	)

	doc, err := a.ListEventNodes("123")
	require.NoError(t, err)
	require.Len(t, doc.Data, 1)
	assert.Equal(t, "eventNode", doc.Data[0].Type)
}

func TestGetEvent(t *testing.T) {
	a := testApi(t)
	httpmock.RegisterResponder(
		"GET", "https://api.swimtopia.org/v3/meets/123/events/E1",
		httpmock.NewStringResponder(200, `{
			"data": {"type": "event", "id": "E1", "attributes": {"eventNumber": "1"}},
			"included": [{"type": "eventRecord", "id": "R1", "attributes": {"heatNumber": 1, "laneNumber": 4}}]
		}`),
	)

	doc, err := a.GetEvent("123", "E1")
	require.NoError(t, err)
	require.Len(t, doc.Data, 1)
	require.Len(t, doc.Included, 1)
	assert.Equal(t, "eventRecord", doc.Included[0].Type)
}
