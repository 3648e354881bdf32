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

package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/hackadmin/hackadmin/internal/authz"
	"github.com/hackadmin/hackadmin/internal/telemetry"
)

type SlogPublicTestSuite struct {
	suite.Suite

	ctx    context.Context
	tracer trace.Tracer
	buf    *bytes.Buffer
	logger *slog.Logger
}

func (s *SlogPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.tracer = sdktrace.NewTracerProvider().Tracer("hackadmin-test")
	s.buf = &bytes.Buffer{}
	s.logger = slog.New(telemetry.NewTraceHandler(
		slog.NewJSONHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
}

// record decodes the single JSON line written since SetupTest.
func (s *SlogPublicTestSuite) record() map[string]any {
	var rec map[string]any
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &rec), s.buf.String())
	return rec
}

func (s *SlogPublicTestSuite) TestCallerAttributes() {
	tests := []struct {
		name        string
		id          *authz.Identity
		wantSubject string
		wantRole    string
	}{
		{
			name: "organizer logs privilege as role",
			id: &authz.Identity{
				Subject:   "gcp-exec",
				Organizer: &authz.Organizer{Privilege: authz.RoleExec},
			},
			wantSubject: "gcp-exec",
			wantRole:    "Exec",
		},
		{
			name: "organizer with both records keeps organizer role",
			id: &authz.Identity{
				Subject:   "gcp-both",
				Organizer: &authz.Organizer{Privilege: authz.RoleVolunteer},
				User:      &authz.User{GcpID: "gcp-both"},
			},
			wantSubject: "gcp-both",
			wantRole:    "Volunteer",
		},
		{
			name: "participant logs role None",
			id: &authz.Identity{
				Subject: "gcp-hacker",
				User:    &authz.User{GcpID: "gcp-hacker"},
			},
			wantSubject: "gcp-hacker",
			wantRole:    "None",
		},
		{
			name: "unknown privilege logs role None",
			id: &authz.Identity{
				Subject:   "gcp-odd",
				Organizer: &authz.Organizer{Privilege: authz.Role("Admin")},
			},
			wantSubject: "gcp-odd",
			wantRole:    "None",
		},
		{
			name: "identity without subject adds nothing",
			id:   &authz.Identity{Organizer: &authz.Organizer{Privilege: authz.RoleTech}},
		},
		{
			name: "nil identity adds nothing",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.buf.Reset()

			s.logger.InfoContext(authz.WithIdentity(s.ctx, tc.id), "request authorized")

			rec := s.record()
			s.Equal("request authorized", rec["msg"])
			s.NotContains(rec, telemetry.TraceIDKey)

			if tc.wantSubject == "" {
				s.NotContains(rec, telemetry.SubjectKey)
				s.NotContains(rec, telemetry.RoleKey)
				return
			}

			s.Equal(tc.wantSubject, rec[telemetry.SubjectKey])
			s.Equal(tc.wantRole, rec[telemetry.RoleKey])
		})
	}
}

func (s *SlogPublicTestSuite) TestTraceAndCallerTogether() {
	ctx, span := s.tracer.Start(s.ctx, "GET /users")
	defer span.End()
	ctx = authz.WithIdentity(ctx, &authz.Identity{
		Subject:   "gcp-fin",
		Organizer: &authz.Organizer{Privilege: authz.RoleFinance},
	})

	s.logger.WarnContext(ctx, "policy denied", slog.String("route", "/users"))

	sc := span.SpanContext()
	rec := s.record()
	s.Equal(sc.TraceID().String(), rec[telemetry.TraceIDKey])
	s.Equal(sc.SpanID().String(), rec[telemetry.SpanIDKey])
	s.Equal("gcp-fin", rec[telemetry.SubjectKey])
	s.Equal("Finance", rec[telemetry.RoleKey])
	s.Equal("/users", rec["route"])
}

func (s *SlogPublicTestSuite) TestNoRequestContext() {
	s.logger.Info("server starting")

	rec := s.record()
	for _, key := range []string{
		telemetry.TraceIDKey,
		telemetry.SpanIDKey,
		telemetry.SubjectKey,
		telemetry.RoleKey,
	} {
		s.NotContains(rec, key)
	}
}

func (s *SlogPublicTestSuite) TestWithAttrsKeepsCallerAttributes() {
	logger := s.logger.With(slog.String("component", "authn"))
	ctx := authz.WithIdentity(s.ctx, &authz.Identity{
		Subject:   "gcp-team",
		Organizer: &authz.Organizer{Privilege: authz.RoleTeam},
	})

	logger.InfoContext(ctx, "verified")

	rec := s.record()
	s.Equal("authn", rec["component"])
	s.Equal("gcp-team", rec[telemetry.SubjectKey])
	s.Equal("Team", rec[telemetry.RoleKey])
}

func (s *SlogPublicTestSuite) TestWithGroupNestsCallerAttributes() {
	logger := s.logger.WithGroup("req")
	ctx, span := s.tracer.Start(s.ctx, "GET /auth/me")
	defer span.End()
	ctx = authz.WithIdentity(ctx, &authz.Identity{Subject: "gcp-1"})

	logger.InfoContext(ctx, "served", slog.Int("status", 200))

	rec := s.record()
	group, ok := rec["req"].(map[string]any)
	s.Require().True(ok, s.buf.String())
	s.Equal(float64(200), group["status"])
	s.Equal("gcp-1", group[telemetry.SubjectKey])
	s.Equal(span.SpanContext().TraceID().String(), group[telemetry.TraceIDKey])
}

func (s *SlogPublicTestSuite) TestEnabledFollowsInnerLevel() {
	handler := telemetry.NewTraceHandler(
		slog.NewJSONHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)

	s.False(handler.Enabled(s.ctx, slog.LevelInfo))
	s.True(handler.Enabled(s.ctx, slog.LevelWarn))

	slog.New(handler).InfoContext(
		authz.WithIdentity(s.ctx, &authz.Identity{Subject: "gcp-1"}),
		"dropped",
	)
	s.Empty(s.buf.String())
}

func TestSlogPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SlogPublicTestSuite))
}
