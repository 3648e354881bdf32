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

// Package api is the HTTP surface: an Echo server with the authentication
// and policy middleware in front of every protected route.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hackadmin/hackadmin/internal/audit"
	"github.com/hackadmin/hackadmin/internal/authz"
	"github.com/hackadmin/hackadmin/internal/config"
	"github.com/hackadmin/hackadmin/internal/realtime"
)

// Server implementation of the Server.
type Server struct {
	Echo       *echo.Echo
	logger     *slog.Logger
	appConfig  config.Config
	auditStore audit.Store
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithAuditStore enables audit logging of authenticated requests.
func WithAuditStore(
	store audit.Store,
) Option {
	return func(s *Server) {
		s.auditStore = store
	}
}

// Authenticator resolves the caller of a request.
type Authenticator interface {
	Authenticate(ctx context.Context, header http.Header) (*authz.Identity, error)
}

// ChannelGate decides whether the caller may join a realtime room.
type ChannelGate interface {
	CanJoin(ctx context.Context, header http.Header, room realtime.Room) bool
}

// PolicyFunc builds the access policy for a request. Most routes return a
// fixed policy; routes with escape hatches close over path parameters.
type PolicyFunc func(c echo.Context) authz.Policy

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
