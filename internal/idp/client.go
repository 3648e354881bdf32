// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hackadmin/hackadmin/internal/validation"
)

const (
	// maxResponseBytes caps how much of a provider body is read.
	maxResponseBytes = 1 << 20

	apiKeyParam = "key"
)

// New creates a Client. The underlying HTTP client is built once and shared
// by every request.
func New(
	logger *slog.Logger,
	opts *Options,
) (*Client, error) {
	if _, err := url.ParseRequestURI(opts.Endpoint); err != nil {
		return nil, fmt.Errorf("invalid identity provider endpoint: %w", err)
	}

	httpClient := &http.Client{Timeout: opts.Timeout}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		httpClient = &copied
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = DefaultTimeout
	}

	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	// The key is added below the otelhttp layer so spans and client errors
	// only ever see the endpoint without it.
	httpClient.Transport = otelhttp.NewTransport(&apiKeyTransport{
		apiKey: opts.APIKey,
		base:   base,
	})

	return &Client{
		logger:     logger,
		endpoint:   opts.Endpoint,
		httpClient: httpClient,
	}, nil
}

// RoundTrip sends a copy of req with the key query parameter set.
func (t *apiKeyTransport) RoundTrip(
	req *http.Request,
) (*http.Response, error) {
	keyed := req.Clone(req.Context())
	q := keyed.URL.Query()
	q.Set(apiKeyParam, t.apiKey)
	keyed.URL.RawQuery = q.Encode()

	return t.base.RoundTrip(keyed)
}

// Verify posts token to the provider and returns the decoded account list.
func (c *Client) Verify(
	ctx context.Context,
	token string,
) (*LookupResponse, error) {
	body, err := json.Marshal(lookupRequest{IDToken: token})
	if err != nil {
		return nil, fmt.Errorf("marshal lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug(
			"identity provider rejected credential",
			slog.Int("status", resp.StatusCode),
		)
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	var result LookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}

	if msg, ok := validation.Struct(result); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, msg)
	}

	return &result, nil
}
