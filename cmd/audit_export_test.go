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

package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/audit/export"
)

type AuditExportTestSuite struct {
	suite.Suite
}

func (s *AuditExportTestSuite) newCommand(
	args map[string]string,
) *cobra.Command {
	cmd := &cobra.Command{Use: "export"}
	cmd.Flags().String("subject", "", "")
	cmd.Flags().String("role", "", "")
	cmd.Flags().String("since", "", "")
	for name, value := range args {
		s.Require().NoError(cmd.Flags().Set(name, value))
	}

	return cmd
}

func (s *AuditExportTestSuite) TestAuditExportFilter() {
	tests := []struct {
		name        string
		args        map[string]string
		want        export.Filter
		errContains string
	}{
		{
			name: "no flags exports everything",
		},
		{
			name: "subject and role",
			args: map[string]string{"subject": "gcp-1", "role": "Finance"},
			want: export.Filter{Subject: "gcp-1", Role: "Finance"},
		},
		{
			name: "since with offset",
			args: map[string]string{"since": "2026-10-03T11:00:00+02:00"},
			want: export.Filter{
				Since: time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:        "role names are case sensitive",
			args:        map[string]string{"role": "finance"},
			errContains: `unknown role "finance"`,
		},
		{
			name:        "since must be RFC 3339",
			args:        map[string]string{"since": "yesterday"},
			errContains: "parsing --since",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			got, err := auditExportFilter(s.newCommand(tc.args))

			if tc.errContains != "" {
				s.Require().Error(err)
				s.Contains(err.Error(), tc.errContains)
				return
			}

			s.Require().NoError(err)
			s.Equal(tc.want.Subject, got.Subject)
			s.Equal(tc.want.Role, got.Role)
			s.True(tc.want.Since.Equal(got.Since), "since %s", got.Since)
		})
	}
}

func TestAuditExportTestSuite(t *testing.T) {
	suite.Run(t, new(AuditExportTestSuite))
}
