package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/swimboard/swimboard/internal/pkg/build"
)

const (
	RequestTimeout   = 45 * time.Second
	HttpTimeout      = 30 * time.Second
	IdleConnTimeout  = 90 * time.Second
	KeepAlive        = 30 * time.Second
	MaxIdleConns     = 64
	RetryCount       = 5
	RetryWaitTime    = 100 * time.Millisecond
	RetryWaitTimeMax = 3 * time.Second
)

// Client is the shared HTTP client, a configured resty wrapper.
type Client struct {
	parentCtx context.Context // context for all requests
	logger    *ClientLogger
	http      *resty.Client
	retries   map[*resty.Request]uint
}

func NewClient(parentCtx context.Context, logger *zap.SugaredLogger, verbose bool) *Client {
	client := &Client{}
	client.logger = &ClientLogger{logger}
	client.parentCtx = parentCtx
	client.http = createHttpClient(client.logger)
	client.retries = make(map[*resty.Request]uint)
	setupLogs(client, verbose)
	return client
}

func (c *Client) R() *resty.Request {
	return c.http.R().SetContext(c.parentCtx)
}

func (c *Client) SetBaseUrl(baseUrl string) *Client {
	c.http.SetBaseURL(baseUrl)
	return c
}

func (c *Client) SetAuthToken(token string) *Client {
	c.http.SetAuthToken(token)
	return c
}

func (c *Client) GetRestyClient() *resty.Client {
	return c.http
}

func createHttpClient(logger *ClientLogger) *resty.Client {
	c := resty.New()
	c.SetLogger(logger)
	c.SetHeader("User-Agent", fmt.Sprintf("swimboard/%s", build.BuildVersion))
	c.SetHeader("Accept", "application/vnd.api+json")
	c.SetTimeout(RequestTimeout)
	c.SetTransport(createTransport())
	c.SetRetryCount(RetryCount)
	c.SetRetryWaitTime(RetryWaitTime)
	c.SetRetryMaxWaitTime(RetryWaitTimeMax)
	c.AddRetryCondition(createRetry())
	return c
}

// createRetry retries idempotent requests on transient HTTP errors.
// POST is never retried, a failed create is final.
func createRetry() func(response *resty.Response, err error) bool {
	return func(response *resty.Response, err error) bool {
		if response == nil {
			return err != nil
		}
		if response.Request != nil && response.Request.Method == resty.MethodPost {
			return false
		}
		switch response.StatusCode() {
		case
			http.StatusRequestTimeout,
			http.StatusConflict,
			http.StatusLocked,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
}

func createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   HttpTimeout,
		KeepAlive: KeepAlive,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   MaxIdleConns,
	}
}

func setupLogs(client *Client, verbose bool) {
	// Debug full request and response if verbose = true
	if verbose {
		client.http.SetDebug(true)
		client.http.SetDebugBodyLimit(2 * 1024)
		return
	}

	// Log only simple message if verbose = false
	client.http.AddRetryHook(func(response *resty.Response, err error) {
		client.retries[response.Request]++
		attempt := client.retries[response.Request]
		if int(attempt) <= client.http.RetryCount {
			client.logger.Warnf("%s | Retrying %dx ..", responseToLog(response), attempt)
		}
	})
	client.http.OnAfterResponse(func(c *resty.Client, response *resty.Response) error {
		if response.IsSuccess() {
			client.logger.Debugf(responseToLog(response))
		}
		delete(client.retries, response.Request)
		return nil
	})
	client.http.OnError(func(request *resty.Request, err error) {
		var msg string
		if v, ok := err.(*resty.ResponseError); ok {
			msg = responseToLog(v.Response)
		} else {
			msg = requestToLog(request, err)
		}

		attempt, retried := client.retries[request]
		if retried {
			msg = fmt.Sprintf("%s | Retried %dx", msg, attempt)
		}

		client.logger.Errorf(msg)
		delete(client.retries, request)
	})
}

func requestToLog(req *resty.Request, err error) string {
	return fmt.Sprintf("%s %s | %s", req.Method, req.URL, err)
}

func responseToLog(res *resty.Response) string {
	req := res.Request
	return fmt.Sprintf("%s %s | %d | %s", req.Method, req.URL, res.StatusCode(), res.Time())
}
