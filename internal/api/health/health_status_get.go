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

package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// GetHealthStatus returns per-component health status.
func (h *Health) GetHealthStatus(
	c echo.Context,
) error {
	ctx := c.Request().Context()

	checker, ok := h.Checker.(*DependencyChecker)
	if !ok {
		resp := h.buildStatusResponse(map[string]error{
			"dependencies": h.Checker.CheckHealth(ctx),
		})
		return c.JSON(statusCode(resp), resp)
	}

	resp := h.buildStatusResponse(map[string]error{
		"database": checker.CheckDatabase(ctx),
		"nats":     checker.CheckNATS(ctx),
	})

	return c.JSON(statusCode(resp), resp)
}

// buildStatusResponse constructs the status response from component checks.
func (h *Health) buildStatusResponse(
	results map[string]error,
) StatusResponse {
	components := make(map[string]ComponentHealth, len(results))
	overall := "ok"

	for name, err := range results {
		if err != nil {
			errMsg := err.Error()
			components[name] = ComponentHealth{Status: "error", Error: &errMsg}
			overall = "degraded"
			continue
		}
		components[name] = ComponentHealth{Status: "ok"}
	}

	return StatusResponse{
		Status:     overall,
		Components: components,
		Version:    h.Version,
		Uptime:     time.Since(h.StartTime).Round(time.Second).String(),
	}
}

func statusCode(
	resp StatusResponse,
) int {
	if resp.Status != "ok" {
		return http.StatusServiceUnavailable
	}

	return http.StatusOK
}
