// Package api is the Swimtopia API client: OAuth password grant
// authentication, document endpoints and export-task endpoints over a
// shared resty client.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/swimboard/swimboard/internal/pkg/jsonapi"
	"github.com/swimboard/swimboard/internal/pkg/options"
)

type SwimApi struct {
	http       *Client
	apiHost    string
	apiHostUrl string
	clock      clockwork.Clock
	token      *Token
}

// NewSwimApiFromOptions creates an authenticated client from the loaded
// options. Host and credentials presence is the caller's responsibility,
// see options.Validate.
func NewSwimApiFromOptions(ctx context.Context, logger *zap.SugaredLogger, opts *options.Options) (*SwimApi, error) {
	if len(opts.ApiHost) == 0 {
		panic(fmt.Errorf("api host is not set"))
	}
	if len(opts.Username) == 0 || len(opts.Password) == 0 {
		panic(fmt.Errorf("credentials are not set"))
	}

	swimApi := NewSwimApi(opts.ApiHost, ctx, logger, opts.VerboseApi)
	if err := swimApi.Authenticate(opts.Username, opts.Password); err != nil {
		return nil, err
	}

	logger.Debugf("Authenticated on \"%s\".", opts.ApiHost)
	return swimApi, nil
}

func NewSwimApi(apiHost string, ctx context.Context, logger *zap.SugaredLogger, verbose bool) *SwimApi {
	apiHostUrl := "https://" + apiHost
	http := NewClient(ctx, logger, verbose).SetBaseUrl(apiHostUrl)
	return &SwimApi{http: http, apiHost: apiHost, apiHostUrl: apiHostUrl, clock: clockwork.NewRealClock()}
}

func (a *SwimApi) ApiHost() string {
	return a.apiHost
}

func (a *SwimApi) ApiHostUrl() string {
	return a.apiHostUrl
}

func (a *SwimApi) HttpClient() *Client {
	return a.http
}

// WithClock is used by tests to control token expiry.
func (a *SwimApi) WithClock(clock clockwork.Clock) *SwimApi {
	a.clock = clock
	return a
}

// getDocument GETs a JSON:API document endpoint.
func (a *SwimApi) getDocument(path string) (*jsonapi.Document, error) {
	res, err := a.http.R().Get(path)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, ResponseToError(res)
	}
	doc, err := jsonapi.ParseDocument(res.Body())
	if err != nil {
		return nil, fmt.Errorf("%s %s | %w", res.Request.Method, res.Request.URL, err)
	}
	return doc, nil
}

// GetMeet loads the meet resource.
func (a *SwimApi) GetMeet(meetId string) (*jsonapi.Document, error) {
	return a.getDocument(fmt.Sprintf("/v3/meets/%s", meetId))
}

// ListAthletes loads all athletes of the meet.
func (a *SwimApi) ListAthletes(meetId string) (*jsonapi.Document, error) {
	return a.getDocument(fmt.Sprintf("/v3/meets/%s/athletes", meetId))
}

// ListEventNodes loads the meet's program as event nodes.
func (a *SwimApi) ListEventNodes(meetId string) (*jsonapi.Document, error) {
	return a.getDocument(fmt.Sprintf("/v3/meets/%s/event-nodes", meetId))
}

// GetEvent loads one event with its included heats, records, splits and
// relay position records.
func (a *SwimApi) GetEvent(meetId string, eventId string) (*jsonapi.Document, error) {
	return a.getDocument(fmt.Sprintf("/v3/meets/%s/events/%s", meetId, eventId))
}
