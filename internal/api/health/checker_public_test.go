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
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/api/health"
)

type CheckerPublicTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *CheckerPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func ok(context.Context) error { return nil }

func fail(msg string) func(context.Context) error {
	return func(context.Context) error { return fmt.Errorf("%s", msg) }
}

func (s *CheckerPublicTestSuite) TestCheckHealth() {
	tests := []struct {
		name      string
		checker   *health.DependencyChecker
		expectErr bool
		errMsgs   []string
	}{
		{
			name: "all checks pass",
			checker: &health.DependencyChecker{
				DatabaseCheck: ok,
				NATSCheck:     ok,
			},
		},
		{
			name: "database check fails",
			checker: &health.DependencyChecker{
				DatabaseCheck: fail("connection refused"),
				NATSCheck:     ok,
			},
			expectErr: true,
			errMsgs:   []string{"database: connection refused"},
		},
		{
			name: "NATS check fails",
			checker: &health.DependencyChecker{
				DatabaseCheck: ok,
				NATSCheck:     fail("nats not connected"),
			},
			expectErr: true,
			errMsgs:   []string{"nats: nats not connected"},
		},
		{
			name: "both checks fail",
			checker: &health.DependencyChecker{
				DatabaseCheck: fail("db down"),
				NATSCheck:     fail("nats down"),
			},
			expectErr: true,
			errMsgs:   []string{"database: db down", "nats: nats down"},
		},
		{
			name:    "nil checks pass",
			checker: &health.DependencyChecker{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.checker.CheckHealth(s.ctx)

			if tt.expectErr {
				s.Error(err)
				for _, msg := range tt.errMsgs {
					s.Contains(err.Error(), msg)
				}
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *CheckerPublicTestSuite) TestCheckDatabase() {
	tests := []struct {
		name      string
		checker   *health.DependencyChecker
		expectErr bool
	}{
		{
			name:    "database check passes",
			checker: &health.DependencyChecker{DatabaseCheck: ok},
		},
		{
			name:      "database check fails",
			checker:   &health.DependencyChecker{DatabaseCheck: fail("db down")},
			expectErr: true,
		},
		{
			name:    "nil database check passes",
			checker: &health.DependencyChecker{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.checker.CheckDatabase(s.ctx)

			if tt.expectErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *CheckerPublicTestSuite) TestCheckNATS() {
	tests := []struct {
		name      string
		checker   *health.DependencyChecker
		expectErr bool
	}{
		{
			name:    "NATS check passes",
			checker: &health.DependencyChecker{NATSCheck: ok},
		},
		{
			name:      "NATS check fails",
			checker:   &health.DependencyChecker{NATSCheck: fail("nats down")},
			expectErr: true,
		},
		{
			name:    "nil NATS check passes",
			checker: &health.DependencyChecker{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := tt.checker.CheckNATS(s.ctx)

			if tt.expectErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func TestCheckerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(CheckerPublicTestSuite))
}
