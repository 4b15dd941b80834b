package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/swimboard/swimboard/internal/pkg/json"
)

// Token is the OAuth password grant response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	obtainedAt  time.Time
}

type oauthError struct {
	Name        string `json:"error"`
	Description string `json:"error_description"`
}

// Authenticate exchanges the credentials for a bearer token and sets it on
// the client. Any non-200 response is a hard failure.
func (a *SwimApi) Authenticate(username string, password string) error {
	res, err := a.http.R().
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   username,
			"password":   password,
		}).
		Post("/oauth/token")
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if res.StatusCode() != http.StatusOK {
		oauthErr := &oauthError{}
		if err := json.Decode(res.Body(), oauthErr); err == nil && oauthErr.Name != "" {
			if oauthErr.Description != "" {
				return fmt.Errorf("authentication failed: %s: %s", oauthErr.Name, oauthErr.Description)
			}
			return fmt.Errorf("authentication failed: %s", oauthErr.Name)
		}
		return fmt.Errorf("authentication failed: %w", ResponseToError(res))
	}

	token := &Token{}
	if err := json.Decode(res.Body(), token); err != nil {
		return fmt.Errorf("authentication failed: cannot decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("authentication failed: token response contains no access token")
	}

	token.obtainedAt = a.clock.Now()
	a.token = token
	a.http.SetAuthToken(token.AccessToken)
	return nil
}

func (a *SwimApi) Token() *Token {
	if a.token == nil {
		panic(fmt.Errorf("token is not set"))
	}
	return a.token
}

// IsTokenValid reports whether the token has not yet expired. It is
// informational only, there is no automatic re-authentication.
func (a *SwimApi) IsTokenValid() bool {
	if a.token == nil {
		return false
	}
	if a.token.ExpiresIn <= 0 {
		return true
	}
	expiresAt := a.token.obtainedAt.Add(time.Duration(a.token.ExpiresIn) * time.Second)
	return a.clock.Now().Before(expiresAt)
}
