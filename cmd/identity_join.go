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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackadmin/hackadmin/internal/cli"
	"github.com/hackadmin/hackadmin/internal/realtime"
)

// identityJoinCmd represents the identityJoin command.
var identityJoinCmd = &cobra.Command{
	Use:   "join",
	Short: "Check whether a token may join a realtime room",
	Long: `Check whether the organizer behind a token may join a realtime room.
Only organizer records are consulted.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		token, _ := cmd.Flags().GetString("token")
		roomName, _ := cmd.Flags().GetString("room")

		room, ok := realtime.ParseRoom(roomName)
		if !ok {
			cli.LogFatal(
				logger,
				"unknown room",
				nil,
				"room", roomName,
				"rooms", cli.FormatList(realtime.Rooms()),
			)
		}

		pool, repo := connectRepository(ctx, logger)
		defer pool.Close()

		gate := newRealtimeGate(logger, newAuthenticator(logger, repo))
		allowed := gate.CanJoin(ctx, bearerHeader(token), room)

		if jsonOutput {
			fmt.Printf("{\"room\":%q,\"allowed\":%t}\n", room, allowed)
			return
		}

		minimum, _ := gate.Minimum(room)
		fmt.Println()
		cli.PrintKV(
			"Room", string(room),
			"Minimum", minimum.String(),
			"Allowed", fmt.Sprintf("%t", allowed),
		)
	},
}

func init() {
	identityCmd.AddCommand(identityJoinCmd)

	identityJoinCmd.PersistentFlags().
		StringP("room", "r", "", "Realtime room name")
	_ = identityJoinCmd.MarkPersistentFlagRequired("room")
}
