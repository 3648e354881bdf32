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

// Package idp verifies bearer credentials against the external identity
// provider's account lookup endpoint.
package idp

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Errors returned by Verify. They are wrapped with details; use errors.Is.
var (
	// ErrUnavailable means the provider could not be reached.
	ErrUnavailable = errors.New("identity provider unavailable")
	// ErrRejected means the provider answered with a non-200 status.
	ErrRejected = errors.New("identity provider rejected credential")
	// ErrMalformedResponse means the provider body could not be decoded.
	ErrMalformedResponse = errors.New("malformed identity provider response")
)

// DefaultTimeout bounds a single provider call when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// User is the provider's view of an account.
type User struct {
	LocalID       string `json:"localId"       validate:"required"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	ValidSince    string `json:"validSince"`
	Disabled      bool   `json:"disabled"`
	LastLoginAt   string `json:"lastLoginAt"`
}

// LookupResponse is the body of a successful account lookup.
type LookupResponse struct {
	Kind  string `json:"kind"`
	Users []User `json:"users" validate:"dive"`
}

// lookupRequest is the body posted to the provider.
type lookupRequest struct {
	IDToken string `json:"idToken"`
}

// Options configures a Client.
type Options struct {
	// Endpoint is the account lookup URL.
	Endpoint string
	// APIKey is sent as the "key" query parameter.
	APIKey string
	// Timeout bounds each call; DefaultTimeout when zero.
	Timeout time.Duration
	// HTTPClient is copied and used as the base client, mainly for tests.
	// Its transport is wrapped with tracing and key injection.
	HTTPClient *http.Client
}

// Client calls the identity provider. It is safe for concurrent use.
type Client struct {
	logger     *slog.Logger
	endpoint   string
	httpClient *http.Client
}

// apiKeyTransport attaches the provider API key to each outgoing request.
type apiKeyTransport struct {
	apiKey string
	base   http.RoundTripper
}
