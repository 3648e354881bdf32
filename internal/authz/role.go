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

// Package authz provides the role hierarchy, resolved identities, and the
// permission engine consulted by every protected route.
package authz

import "sort"

// Role is an access level attached to an organizer record.
type Role string

// Known roles.
const (
	RoleNone      Role = "None"
	RoleVolunteer Role = "Volunteer"
	RoleTeam      Role = "Team"
	RoleTech      Role = "Tech"
	RoleExec      Role = "Exec"
	RoleFinance   Role = "Finance"
)

// RoleHierarchy is the rank table for every known role. It is the single
// source of truth for role ordering; a role missing from the table ranks
// as RoleNone.
var RoleHierarchy = map[Role]int{
	RoleNone:      0,
	RoleVolunteer: 1,
	RoleTeam:      2,
	RoleTech:      3,
	RoleExec:      4,
	RoleFinance:   5,
}

// ParseRole maps a role name to its Role. It reports false for names that
// are not in RoleHierarchy.
func ParseRole(
	name string,
) (Role, bool) {
	r := Role(name)
	if _, ok := RoleHierarchy[r]; !ok {
		return RoleNone, false
	}

	return r, true
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := RoleHierarchy[r]
	return ok
}

// Rank returns the position of r in RoleHierarchy.
func (r Role) Rank() int {
	return RoleHierarchy[r]
}

// Compare returns -1, 0 or +1 depending on whether r ranks below, equal to,
// or above other.
func (r Role) Compare(
	other Role,
) int {
	a, b := r.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r ranks at or above minimum.
func (r Role) AtLeast(
	minimum Role,
) bool {
	return r.Rank() >= minimum.Rank()
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// AllowedRoles returns every known role name ordered from lowest to highest
// rank.
func AllowedRoles() []string {
	roles := make([]Role, 0, len(RoleHierarchy))
	for r := range RoleHierarchy {
		roles = append(roles, r)
	}

	sort.Slice(roles, func(i, j int) bool {
		return roles[i].Rank() < roles[j].Rank()
	})

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}

	return names
}
