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
	"github.com/labstack/echo/v4"

	auditapi "github.com/hackadmin/hackadmin/internal/api/audit"
	"github.com/hackadmin/hackadmin/internal/audit"
	"github.com/hackadmin/hackadmin/internal/authz"
)

// GetAuditHandler returns the audit log routes for registration. Only Exec
// and above may read the audit log.
func (s *Server) GetAuditHandler(
	authenticator Authenticator,
	store audit.Store,
) []func(e *echo.Echo) {
	auditHandler := auditapi.New(s.logger, store)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			g := e.Group(
				"/audit",
				requireAuth(authenticator, s.logger),
				requirePolicy(staticPolicy(authz.MinimumRole(authz.RoleExec))),
			)
			g.GET("", auditHandler.GetAuditLogs)
			g.GET("/:id", auditHandler.GetAuditLogByID)
		},
	}
}
