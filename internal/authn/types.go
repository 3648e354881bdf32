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

// Package authn turns a bearer credential into a resolved identity: it
// verifies the credential with the identity provider and loads the matching
// organizer and user records.
package authn

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/hackadmin/hackadmin/internal/authz"
	"github.com/hackadmin/hackadmin/internal/idp"
)

//go:generate mockgen -source=types.go -destination=mocks/types.gen.go -package=mocks

// Failures returned by Authenticate. They are wrapped with details; use
// errors.Is or Classify.
var (
	ErrMissingCredential         = errors.New("missing bearer credential")
	ErrProviderUnavailable       = errors.New("identity provider unavailable")
	ErrProviderRejected          = errors.New("credential rejected by identity provider")
	ErrMalformedProviderResponse = errors.New("malformed identity provider response")
	ErrNoSubject                 = errors.New("identity provider returned no subject")
	ErrUnknownSubject            = errors.New("no organizer or user matches subject")
)

// Verifier checks a credential with the identity provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (*idp.LookupResponse, error)
}

// IdentityRepository loads local records by provider subject. A nil record
// with a nil error means the subject has no record of that kind.
type IdentityRepository interface {
	GetOrganizerBySubject(ctx context.Context, subject string) (*authz.Organizer, error)
	GetUserBySubject(ctx context.Context, subject string) (*authz.User, error)
}

// Failure groups pipeline errors by how the transport should answer.
type Failure int

const (
	// FailureNone means there was no error.
	FailureNone Failure = iota
	// FailureUnauthenticated means the caller could not be identified.
	FailureUnauthenticated
	// FailureUnavailable means the identity provider could not be reached.
	FailureUnavailable
	// FailureBadGateway means the identity provider answered with garbage.
	FailureBadGateway
	// FailureInternal covers anything unexpected.
	FailureInternal
)

// Authenticator runs the authentication pipeline. It holds only read-only
// state and is safe for concurrent use by every request.
type Authenticator struct {
	logger   *slog.Logger
	verifier Verifier
	repo     IdentityRepository
	tracer   trace.Tracer

	attempts metric.Int64Counter
	duration metric.Float64Histogram
}
