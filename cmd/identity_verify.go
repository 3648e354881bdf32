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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackadmin/hackadmin/internal/api"
	"github.com/hackadmin/hackadmin/internal/authn"
	"github.com/hackadmin/hackadmin/internal/cli"
)

// identityVerifyCmd represents the identityVerify command.
var identityVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a token and show the resolved identity",
	Long: `Verify a token with the identity provider and show the organizer and
user records it resolves to, along with the effective role.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		token, _ := cmd.Flags().GetString("token")

		pool, repo := connectRepository(ctx, logger)
		defer pool.Close()

		authenticator := newAuthenticator(logger, repo)

		id, err := authenticator.Authenticate(ctx, bearerHeader(token))
		if err != nil {
			cli.LogFatal(logger, "authentication failed", err, "reason", authn.Outcome(err))
		}

		if jsonOutput {
			resp, _ := json.Marshal(api.NewMeResponse(id))
			fmt.Println(string(resp))
			return
		}

		cli.DisplayIdentity(id)
	},
}

func init() {
	identityCmd.AddCommand(identityVerifyCmd)
}
