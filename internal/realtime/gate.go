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

package realtime

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/hackadmin/hackadmin/internal/authz"
)

// ParseRoom returns the Room named name.
func ParseRoom(
	name string,
) (Room, bool) {
	room := Room(name)
	_, ok := DefaultMinimums[room]

	return room, ok
}

// Rooms lists every room name in sorted order.
func Rooms() []string {
	names := make([]string, 0, len(DefaultMinimums))
	for room := range DefaultMinimums {
		names = append(names, string(room))
	}
	sort.Strings(names)

	return names
}

// NewGate creates a Gate. overrides replaces the default minimum role for
// the rooms it names; keys and values must be known rooms and roles.
func NewGate(
	authorizer Authorizer,
	overrides map[string]string,
) (*Gate, error) {
	minimums := make(map[Room]authz.Role, len(DefaultMinimums))
	for room, role := range DefaultMinimums {
		minimums[room] = role
	}

	for name, roleName := range overrides {
		room, ok := ParseRoom(name)
		if !ok {
			return nil, fmt.Errorf("unknown realtime room %q", name)
		}

		role, ok := authz.ParseRole(roleName)
		if !ok {
			return nil, fmt.Errorf("unknown role %q for realtime room %q", roleName, name)
		}

		minimums[room] = role
	}

	return &Gate{
		authorizer: authorizer,
		minimums:   minimums,
	}, nil
}

// Minimum returns the least role required to join room.
func (g *Gate) Minimum(
	room Room,
) (authz.Role, bool) {
	role, ok := g.minimums[room]

	return role, ok
}

// CanJoin reports whether the caller presenting header may join room.
// Unknown rooms are always denied.
func (g *Gate) CanJoin(
	ctx context.Context,
	header http.Header,
	room Room,
) bool {
	minimum, ok := g.minimums[room]
	if !ok {
		return false
	}

	return g.authorizer.Allow(ctx, header, minimum)
}
