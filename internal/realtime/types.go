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

// Package realtime decides whether a socket client may join a room. The
// socket transport itself lives elsewhere; it consults the Gate during the
// handshake.
package realtime

import (
	"context"
	"net/http"

	"github.com/hackadmin/hackadmin/internal/authz"
)

// Room is a realtime broadcast room.
type Room string

const (
	// RoomMobile carries updates for the volunteer mobile app.
	RoomMobile Room = "mobile"
	// RoomAdmin carries updates for the admin dashboard.
	RoomAdmin Room = "admin"
	// RoomExec carries updates for executives.
	RoomExec Room = "exec"
)

// DefaultMinimums is the least role required to join each room.
var DefaultMinimums = map[Room]authz.Role{
	RoomMobile: authz.RoleVolunteer,
	RoomAdmin:  authz.RoleTeam,
	RoomExec:   authz.RoleExec,
}

// Authorizer runs the reduced authentication pipeline used by the channel.
type Authorizer interface {
	Allow(ctx context.Context, header http.Header, minimum authz.Role) bool
}

// Gate admits clients to rooms.
type Gate struct {
	authorizer Authorizer
	minimums   map[Room]authz.Role
}
