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

package authn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/hackadmin/hackadmin/internal/authz"
	"github.com/hackadmin/hackadmin/internal/idp"
)

const (
	instrumentationName = "github.com/hackadmin/hackadmin/internal/authn"

	headerAuthorization = "Authorization"
)

// New creates an Authenticator backed by verifier and repo.
func New(
	logger *slog.Logger,
	verifier Verifier,
	repo IdentityRepository,
) *Authenticator {
	attempts, duration := newInstruments(otel.Meter(instrumentationName))

	return &Authenticator{
		logger:   logger,
		verifier: verifier,
		repo:     repo,
		tracer:   otel.Tracer(instrumentationName),
		attempts: attempts,
		duration: duration,
	}
}

// Authenticate extracts the bearer credential from header, verifies it with
// the identity provider, and resolves the subject to its local records.
// Every failure is terminal; the returned error wraps one of the Err*
// sentinels.
func (a *Authenticator) Authenticate(
	ctx context.Context,
	header http.Header,
) (*authz.Identity, error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "authn.Authenticate")
	defer span.End()

	id, err := a.authenticate(ctx, header)
	a.record(ctx, transportHTTP, err, start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Outcome(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("auth.subject", id.Subject),
		attribute.StringSlice("auth.kinds", id.Kinds()),
		attribute.String("auth.role", id.EffectiveRole().String()),
	)

	return id, nil
}

func (a *Authenticator) authenticate(
	ctx context.Context,
	header http.Header,
) (*authz.Identity, error) {
	token, err := ExtractCredential(header)
	if err != nil {
		return nil, err
	}

	subject, err := a.verifySubject(ctx, token)
	if err != nil {
		return nil, err
	}

	return a.resolve(ctx, subject)
}

// ExtractCredential returns the second whitespace-separated field of the
// Authorization header.
func ExtractCredential(
	header http.Header,
) (string, error) {
	value := header.Get(headerAuthorization)
	if value == "" {
		return "", fmt.Errorf("%w: no %s header", ErrMissingCredential, headerAuthorization)
	}

	parts := strings.Fields(value)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: malformed %s header", ErrMissingCredential, headerAuthorization)
	}

	return parts[1], nil
}

// verifySubject asks the identity provider who token belongs to.
func (a *Authenticator) verifySubject(
	ctx context.Context,
	token string,
) (string, error) {
	resp, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return "", classifyProviderError(err)
	}

	if len(resp.Users) == 0 {
		return "", ErrNoSubject
	}

	// The first account is authoritative.
	if len(resp.Users) > 1 {
		a.logger.WarnContext(
			ctx,
			"identity provider returned multiple accounts, using the first",
			slog.Int("count", len(resp.Users)),
		)
	}

	return resp.Users[0].LocalID, nil
}

// resolve looks up both record kinds concurrently and waits for both. Only
// the absence of both kinds fails; a lookup error counts as absence of
// that kind.
func (a *Authenticator) resolve(
	ctx context.Context,
	subject string,
) (*authz.Identity, error) {
	var (
		wg           sync.WaitGroup
		organizer    *authz.Organizer
		user         *authz.User
		organizerErr error
		userErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		lookupCtx, span := a.tracer.Start(ctx, "authn.lookupOrganizer")
		defer span.End()

		organizer, organizerErr = a.repo.GetOrganizerBySubject(lookupCtx, subject)
		if organizerErr != nil {
			span.RecordError(organizerErr)
		}
	}()
	go func() {
		defer wg.Done()
		lookupCtx, span := a.tracer.Start(ctx, "authn.lookupUser")
		defer span.End()

		user, userErr = a.repo.GetUserBySubject(lookupCtx, subject)
		if userErr != nil {
			span.RecordError(userErr)
		}
	}()
	wg.Wait()

	if organizerErr != nil {
		organizer = nil
		a.logger.WarnContext(
			ctx,
			"organizer lookup failed",
			slog.String("subject", subject),
			slog.String("error", organizerErr.Error()),
		)
	}

	if userErr != nil {
		user = nil
		a.logger.WarnContext(
			ctx,
			"user lookup failed",
			slog.String("subject", subject),
			slog.String("error", userErr.Error()),
		)
	}

	if organizer == nil && user == nil {
		if lookupErr := errors.Join(organizerErr, userErr); lookupErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnknownSubject, subject, lookupErr)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownSubject, subject)
	}

	return &authz.Identity{
		Subject:   subject,
		Organizer: organizer,
		User:      user,
	}, nil
}

// Allow is the reduced pipeline used by the realtime channel: it verifies
// the credential, loads only the organizer record, and compares its role
// against minimum. It never returns an error; any failure denies.
func (a *Authenticator) Allow(
	ctx context.Context,
	header http.Header,
	minimum authz.Role,
) bool {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "authn.Allow")
	defer span.End()

	organizer, err := a.organizerFor(ctx, header)
	a.record(ctx, transportChannel, err, start)

	if err != nil {
		a.logger.DebugContext(
			ctx,
			"channel authorization denied",
			slog.String("reason", Outcome(err)),
			slog.String("error", err.Error()),
		)
		return false
	}

	id := &authz.Identity{Subject: organizer.GcpID, Organizer: organizer}

	return id.EffectiveRole().AtLeast(minimum)
}

func (a *Authenticator) organizerFor(
	ctx context.Context,
	header http.Header,
) (*authz.Organizer, error) {
	token, err := ExtractCredential(header)
	if err != nil {
		return nil, err
	}

	subject, err := a.verifySubject(ctx, token)
	if err != nil {
		return nil, err
	}

	organizer, err := a.repo.GetOrganizerBySubject(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownSubject, subject, err)
	}
	if organizer == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSubject, subject)
	}

	return organizer, nil
}

func classifyProviderError(
	err error,
) error {
	switch {
	case errors.Is(err, idp.ErrRejected):
		return fmt.Errorf("%w: %w", ErrProviderRejected, err)
	case errors.Is(err, idp.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrMalformedProviderResponse, err)
	default:
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
}

// Classify maps a pipeline error to the kind of response the transport
// should give.
func Classify(
	err error,
) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrMissingCredential),
		errors.Is(err, ErrProviderRejected),
		errors.Is(err, ErrNoSubject),
		errors.Is(err, ErrUnknownSubject):
		return FailureUnauthenticated
	case errors.Is(err, ErrProviderUnavailable):
		return FailureUnavailable
	case errors.Is(err, ErrMalformedProviderResponse):
		return FailureBadGateway
	default:
		return FailureInternal
	}
}

// Outcome is a short, stable label for err, used in logs and metrics.
func Outcome(
	err error,
) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, ErrProviderRejected):
		return "provider_rejected"
	case errors.Is(err, ErrMalformedProviderResponse):
		return "malformed_provider_response"
	case errors.Is(err, ErrNoSubject):
		return "no_subject"
	case errors.Is(err, ErrUnknownSubject):
		return "unknown_subject"
	default:
		return "error"
	}
}
