package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sozercan/verdict/apimodels"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient returns a client posting to endpoint. A zero timeout means none.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	slog.Info("Creating verify client", "endpoint", endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("verify endpoint cannot be empty")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid verify endpoint: %w", err)
	}

	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Verify posts q and decodes the verdict. Errors are *StatusError,
// *TransportError or *DecodeError; nothing is retried.
func (c *Client) Verify(ctx context.Context, q apimodels.Query) (*apimodels.VerdictResponse, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("Posting verification query", "endpoint", c.endpoint, "bytes", len(body))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var verdict apimodels.VerdictResponse
	if err := json.Unmarshal(data, &verdict); err != nil {
		return nil, &DecodeError{Err: err}
	}

	slog.Debug("Verification completed", "verdict", verdict.Verdict, "duration", time.Since(start))
	return &verdict, nil
}
