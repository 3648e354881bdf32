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

package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hackadmin/hackadmin/internal/authn"
	"github.com/hackadmin/hackadmin/internal/authz"
)

// requireAuth runs the authentication pipeline and binds the resolved
// identity to the request context. On any failure it answers directly and
// the handler is never invoked.
func requireAuth(
	authenticator Authenticator,
	logger *slog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id, err := authenticator.Authenticate(req.Context(), req.Header)
			if err != nil {
				status, message := failureResponse(authn.Classify(err))

				logger.DebugContext(
					req.Context(),
					"request rejected",
					slog.String("path", req.URL.Path),
					slog.String("reason", authn.Outcome(err)),
					slog.String("error", err.Error()),
				)

				return c.JSON(status, ErrorResponse{Error: message})
			}

			c.SetRequest(req.WithContext(authz.WithIdentity(req.Context(), id)))

			return next(c)
		}
	}
}

// requirePolicy checks the bound identity against the route policy. It must
// run after requireAuth.
func requirePolicy(
	policyFn PolicyFunc,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := authz.FromContext(c.Request().Context())
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "authentication required",
				})
			}

			if !authz.Check(id, policyFn(c)) {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Error: "insufficient role: " + id.EffectiveRole().String(),
				})
			}

			return next(c)
		}
	}
}

// staticPolicy returns a PolicyFunc that ignores the request.
func staticPolicy(
	policy authz.Policy,
) PolicyFunc {
	return func(echo.Context) authz.Policy {
		return policy
	}
}

func failureResponse(
	failure authn.Failure,
) (int, string) {
	switch failure {
	case authn.FailureUnauthenticated:
		return http.StatusUnauthorized, "authentication required"
	case authn.FailureUnavailable:
		return http.StatusServiceUnavailable, "identity provider unavailable"
	case authn.FailureBadGateway:
		return http.StatusBadGateway, "identity provider returned an invalid response"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
