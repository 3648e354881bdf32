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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hackadmin/hackadmin/internal/realtime"
)

// RoomResponse is the answer to a realtime join check.
type RoomResponse struct {
	Room    string `json:"room"`
	Allowed bool   `json:"allowed"`
}

// GetRealtimeHandler returns the room join check for registration. The
// socket server calls it during the handshake with the client's headers,
// so it always answers 200 and carries the decision in the body.
func (s *Server) GetRealtimeHandler(
	gate ChannelGate,
) []func(e *echo.Echo) {
	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/realtime/rooms/:room", func(c echo.Context) error {
				req := c.Request()
				room := realtime.Room(c.Param("room"))

				return c.JSON(http.StatusOK, RoomResponse{
					Room:    string(room),
					Allowed: gate.CanJoin(req.Context(), req.Header, room),
				})
			})
		},
	}
}
