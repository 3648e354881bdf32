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

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/authz"
)

type RolePublicTestSuite struct {
	suite.Suite
}

func (s *RolePublicTestSuite) TestRoleHierarchyTable() {
	tests := []struct {
		name     string
		role     authz.Role
		wantRank int
	}{
		{name: "none", role: authz.RoleNone, wantRank: 0},
		{name: "volunteer", role: authz.RoleVolunteer, wantRank: 1},
		{name: "team", role: authz.RoleTeam, wantRank: 2},
		{name: "tech", role: authz.RoleTech, wantRank: 3},
		{name: "exec", role: authz.RoleExec, wantRank: 4},
		{name: "finance", role: authz.RoleFinance, wantRank: 5},
		{name: "unknown ranks as none", role: authz.Role("Admin"), wantRank: 0},
		{name: "empty ranks as none", role: authz.Role(""), wantRank: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.wantRank, tt.role.Rank())
		})
	}
}

func (s *RolePublicTestSuite) TestRanksAreDistinct() {
	seen := make(map[int]authz.Role, len(authz.RoleHierarchy))
	for role, rank := range authz.RoleHierarchy {
		other, dup := seen[rank]
		s.False(dup, "roles %s and %s share rank %d", role, other, rank)
		seen[rank] = role
	}
}

func (s *RolePublicTestSuite) TestAtLeastMatchesRank() {
	for a := range authz.RoleHierarchy {
		for b := range authz.RoleHierarchy {
			s.Equal(
				a.Rank() >= b.Rank(),
				a.AtLeast(b),
				"%s.AtLeast(%s)", a, b,
			)
		}
	}
}

func (s *RolePublicTestSuite) TestCompare() {
	tests := []struct {
		name string
		a    authz.Role
		b    authz.Role
		want int
	}{
		{name: "lower", a: authz.RoleVolunteer, b: authz.RoleTeam, want: -1},
		{name: "equal", a: authz.RoleTech, b: authz.RoleTech, want: 0},
		{name: "higher", a: authz.RoleFinance, b: authz.RoleExec, want: 1},
		{name: "exec above tech", a: authz.RoleExec, b: authz.RoleTech, want: 1},
		{name: "unknown equals none", a: authz.Role("bogus"), b: authz.RoleNone, want: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, tt.a.Compare(tt.b))
		})
	}
}

func (s *RolePublicTestSuite) TestParseRole() {
	tests := []struct {
		name     string
		input    string
		wantRole authz.Role
		wantOK   bool
	}{
		{name: "known role", input: "Exec", wantRole: authz.RoleExec, wantOK: true},
		{name: "none is a known role", input: "None", wantRole: authz.RoleNone, wantOK: true},
		{name: "case sensitive", input: "exec", wantRole: authz.RoleNone, wantOK: false},
		{name: "unknown role", input: "Admin", wantRole: authz.RoleNone, wantOK: false},
		{name: "empty", input: "", wantRole: authz.RoleNone, wantOK: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			role, ok := authz.ParseRole(tt.input)
			s.Equal(tt.wantOK, ok)
			s.Equal(tt.wantRole, role)
		})
	}
}

func (s *RolePublicTestSuite) TestAllowedRoles() {
	s.Equal(
		[]string{"None", "Volunteer", "Team", "Tech", "Exec", "Finance"},
		authz.AllowedRoles(),
	)
}

func TestRolePublicTestSuite(t *testing.T) {
	suite.Run(t, new(RolePublicTestSuite))
}
