package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hostelmanager/hostel-access-service/internal/config"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

// Client is the typed HTTP binding to the hostel backend. It holds no session
// state; callers pass the bearer token per operation. All calls are bounded
// by the configured connect/read/write timeouts and are never retried here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.RemoteAPI = (*Client)(nil)

func New(cfg *config.Config) *Client {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		ExpectContinueTimeout: cfg.WriteTimeout,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ConnectTimeout + cfg.ReadTimeout + cfg.WriteTimeout,
		},
	}
}

var (
	sharedOnce   sync.Once
	sharedClient *Client
)

// Shared returns the process-wide client, constructed once on first use.
// The first caller's config wins; later callers observe the same instance.
func Shared(cfg *config.Config) *Client {
	sharedOnce.Do(func() {
		sharedClient = New(cfg)
	})
	return sharedClient
}

// errorBody covers both backend error shapes: the mutation envelope
// {message, success, error} and FastAPI's {detail}.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// responseError turns a non-2xx response into a ports.ServerError when the
// body carries a structured error, or a plain transport-class error when it
// does not.
func responseError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("reading error response: %w", err)
	}

	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		msg := eb.Error
		if msg == "" {
			msg = eb.Detail
		}
		if msg == "" {
			msg = eb.Message
		}
		if msg != "" {
			return &ports.ServerError{StatusCode: resp.StatusCode, Message: msg}
		}
	}
	return fmt.Errorf("unexpected response status %d", resp.StatusCode)
}
