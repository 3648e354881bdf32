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
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/api/health"
)

type HealthReadyGetPublicTestSuite struct {
	suite.Suite
}

func (s *HealthReadyGetPublicTestSuite) TestGetHealthReady() {
	tests := []struct {
		name         string
		checker      health.Checker
		wantCode     int
		validateFunc func(resp health.ProbeResponse)
	}{
		{
			name: "ready when all checks pass",
			checker: &health.DependencyChecker{
				DatabaseCheck: ok,
				NATSCheck:     ok,
			},
			wantCode: http.StatusOK,
			validateFunc: func(resp health.ProbeResponse) {
				s.Equal("ready", resp.Status)
				s.Nil(resp.Error)
			},
		},
		{
			name: "not ready when database check fails",
			checker: &health.DependencyChecker{
				DatabaseCheck: fail("connection refused"),
				NATSCheck:     ok,
			},
			wantCode: http.StatusServiceUnavailable,
			validateFunc: func(resp health.ProbeResponse) {
				s.Equal("not_ready", resp.Status)
				s.Require().NotNil(resp.Error)
				s.Contains(*resp.Error, "connection refused")
			},
		},
		{
			name: "not ready when both checks fail",
			checker: &health.DependencyChecker{
				DatabaseCheck: fail("db down"),
				NATSCheck:     fail("nats down"),
			},
			wantCode: http.StatusServiceUnavailable,
			validateFunc: func(resp health.ProbeResponse) {
				s.Equal("not_ready", resp.Status)
				s.Require().NotNil(resp.Error)
				s.Contains(*resp.Error, "db down")
				s.Contains(*resp.Error, "nats down")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			handler := health.New(slog.Default(), tt.checker, time.Now(), "0.1.0")

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			rec := httptest.NewRecorder()

			err := handler.GetHealthReady(e.NewContext(req, rec))
			s.NoError(err)
			s.Equal(tt.wantCode, rec.Code)

			var resp health.ProbeResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			tt.validateFunc(resp)
		})
	}
}

func TestHealthReadyGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(HealthReadyGetPublicTestSuite))
}
