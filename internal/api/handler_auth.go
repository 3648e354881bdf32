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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hackadmin/hackadmin/internal/authz"
)

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Subject   string           `json:"subject"`
	Role      string           `json:"role"`
	Kinds     []string         `json:"kinds"`
	Organizer *authz.Organizer `json:"organizer,omitempty"`
	User      *authz.User      `json:"user,omitempty"`
}

// GetAuthHandler returns the identity introspection route for
// registration. Any authenticated caller may use it.
func (s *Server) GetAuthHandler(
	authenticator Authenticator,
) []func(e *echo.Echo) {
	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/auth/me", getMe, requireAuth(authenticator, s.logger))
		},
	}
}

func getMe(
	c echo.Context,
) error {
	id, ok := authz.FromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	return c.JSON(http.StatusOK, NewMeResponse(id))
}

// NewMeResponse describes id.
func NewMeResponse(
	id *authz.Identity,
) MeResponse {
	return MeResponse{
		Subject:   id.Subject,
		Role:      id.EffectiveRole().String(),
		Kinds:     id.Kinds(),
		Organizer: id.Organizer,
		User:      id.User,
	}
}
