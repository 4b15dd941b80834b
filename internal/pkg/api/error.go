package api

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/swimboard/swimboard/internal/pkg/json"
)

// ErrorDocument is the JSON:API error body.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

type ErrorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *ErrorDocument) Message() string {
	var parts []string
	for _, item := range e.Errors {
		switch {
		case item.Title != "" && item.Detail != "":
			parts = append(parts, fmt.Sprintf("%s: %s", item.Title, item.Detail))
		case item.Title != "":
			parts = append(parts, item.Title)
		case item.Detail != "":
			parts = append(parts, item.Detail)
		}
	}
	return strings.Join(parts, "; ")
}

// ResponseToError converts an error response to an error with the request
// method, URL and status code. The server's JSON:API error body is included
// when it can be decoded.
func ResponseToError(res *resty.Response) error {
	req := res.Request
	errDoc := &ErrorDocument{}
	if err := json.Decode(res.Body(), errDoc); err == nil {
		if msg := errDoc.Message(); msg != "" {
			return fmt.Errorf("%s %s | returned http code %d | %s", req.Method, req.URL, res.StatusCode(), msg)
		}
	}
	return fmt.Errorf("%s %s | returned http code %d", req.Method, req.URL, res.StatusCode())
}
