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

package health_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/api/health"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) CheckHealth(
	_ context.Context,
) error {
	return s.err
}

type HealthStatusGetPublicTestSuite struct {
	suite.Suite
}

func (s *HealthStatusGetPublicTestSuite) TestGetHealthStatus() {
	tests := []struct {
		name         string
		checker      health.Checker
		wantCode     int
		validateFunc func(resp health.StatusResponse)
	}{
		{
			name: "all components healthy",
			checker: &health.DependencyChecker{
				DatabaseCheck: ok,
				NATSCheck:     ok,
			},
			wantCode: http.StatusOK,
			validateFunc: func(resp health.StatusResponse) {
				s.Equal("ok", resp.Status)
				s.Equal("ok", resp.Components["database"].Status)
				s.Equal("ok", resp.Components["nats"].Status)
				s.Equal("0.1.0", resp.Version)
				s.NotEmpty(resp.Uptime)
			},
		},
		{
			name: "database unhealthy returns 503",
			checker: &health.DependencyChecker{
				DatabaseCheck: fail("connection refused"),
				NATSCheck:     ok,
			},
			wantCode: http.StatusServiceUnavailable,
			validateFunc: func(resp health.StatusResponse) {
				s.Equal("degraded", resp.Status)
				s.Equal("error", resp.Components["database"].Status)
				s.Require().NotNil(resp.Components["database"].Error)
				s.Contains(*resp.Components["database"].Error, "connection refused")
				s.Equal("ok", resp.Components["nats"].Status)
			},
		},
		{
			name: "NATS unhealthy returns 503",
			checker: &health.DependencyChecker{
				DatabaseCheck: ok,
				NATSCheck:     fail("nats down"),
			},
			wantCode: http.StatusServiceUnavailable,
			validateFunc: func(resp health.StatusResponse) {
				s.Equal("degraded", resp.Status)
				s.Equal("ok", resp.Components["database"].Status)
				s.Equal("error", resp.Components["nats"].Status)
			},
		},
		{
			name:     "other checker reported as a single component",
			checker:  &stubChecker{err: fmt.Errorf("unreachable")},
			wantCode: http.StatusServiceUnavailable,
			validateFunc: func(resp health.StatusResponse) {
				s.Equal("degraded", resp.Status)
				s.Len(resp.Components, 1)
				s.Equal("error", resp.Components["dependencies"].Status)
			},
		},
		{
			name:     "other healthy checker",
			checker:  &stubChecker{},
			wantCode: http.StatusOK,
			validateFunc: func(resp health.StatusResponse) {
				s.Equal("ok", resp.Status)
				s.Equal("ok", resp.Components["dependencies"].Status)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			handler := health.New(
				slog.Default(),
				tt.checker,
				time.Now().Add(-time.Minute),
				"0.1.0",
			)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health/status", nil)
			rec := httptest.NewRecorder()

			err := handler.GetHealthStatus(e.NewContext(req, rec))
			s.NoError(err)
			s.Equal(tt.wantCode, rec.Code)

			var resp health.StatusResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			tt.validateFunc(resp)
		})
	}
}

func TestHealthStatusGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(HealthStatusGetPublicTestSuite))
}
