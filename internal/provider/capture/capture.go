// Package capture implements the MessageStore port against the local
// mail-capture HTTP endpoint exposed by the emulator.
package capture

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mouessam/localstack-ses-admin/internal/apperr"
	"github.com/mouessam/localstack-ses-admin/internal/email"
	"github.com/mouessam/localstack-ses-admin/internal/provider"
)

// messagesPath is the emulator's capture endpoint.
const messagesPath = "/_aws/ses"

// Adapter issues GET/DELETE calls against the capture endpoint. It does not
// retry, circuit-break, or cache; any failure becomes an upstream error.
type Adapter struct {
	endpoint string
	client   *http.Client
}

// New creates an Adapter for the capture service at the given base endpoint.
func New(endpoint string) *Adapter {
	return &Adapter{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithClient creates an Adapter with a custom HTTP client, used for testing.
func NewWithClient(endpoint string, client *http.Client) *Adapter {
	return &Adapter{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   client,
	}
}

// ListMessages fetches captured messages, optionally filtered by id or
// recipient. A missing messages array in the response decodes as empty.
func (a *Adapter) ListMessages(ctx context.Context, q provider.MessageQuery) ([]email.Message, error) {
	body, err := a.call(ctx, http.MethodGet, q)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Messages []email.Message `json:"messages"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, apperr.Upstreamf("capture store returned invalid body: %v", err)
		}
	}
	if parsed.Messages == nil {
		return []email.Message{}, nil
	}
	return parsed.Messages, nil
}

// DeleteMessages removes captured messages, optionally filtered by id or
// recipient. With no filters it clears the store and is safe to repeat.
func (a *Adapter) DeleteMessages(ctx context.Context, q provider.MessageQuery) error {
	_, err := a.call(ctx, http.MethodDelete, q)
	return err
}

func (a *Adapter) call(ctx context.Context, method string, q provider.MessageQuery) ([]byte, error) {
	u := a.endpoint + messagesPath

	params := url.Values{}
	if q.ID != "" {
		params.Set("id", q.ID)
	}
	if q.Email != "" {
		params.Set("email", q.Email)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, apperr.Upstreamf("capture store request failed: %v", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperr.Upstreamf("capture store unreachable: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstreamf("capture store read failed: %v", err)
	}

	if resp.StatusCode >= 400 {
		return nil, apperr.Upstreamf("capture store %s failed: %d", method, resp.StatusCode)
	}
	return body, nil
}
