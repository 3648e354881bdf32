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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackadmin/hackadmin/internal/audit"
	"github.com/hackadmin/hackadmin/internal/cli"
)

// auditGetCmd represents the auditGet command.
var auditGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one audit entry",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		id, _ := cmd.Flags().GetString("id")

		store, nc := openAuditStore(ctx)
		defer cli.CloseNATS(nc)

		entry, err := store.Get(ctx, id)
		if errors.Is(err, audit.ErrNotFound) {
			cli.LogFatal(logger, "audit entry not found", nil, "id", id)
		}
		if err != nil {
			cli.LogFatal(logger, "failed to get audit entry", err, "id", id)
		}

		if jsonOutput {
			resp, _ := json.Marshal(entry)
			fmt.Println(string(resp))
			return
		}

		fmt.Println()
		cli.PrintKV(
			"ID", entry.ID,
			"Timestamp", entry.Timestamp.Format("2006-01-02 15:04:05"),
			"Subject", entry.Subject,
			"Role", entry.Role,
			"Kinds", cli.FormatList(entry.Kinds),
			"Request", entry.Method+" "+entry.Path,
			"Source IP", entry.SourceIP,
			"Code", fmt.Sprintf("%d", entry.ResponseCode),
			"Duration", fmt.Sprintf("%dms", entry.DurationMs),
		)
	},
}

func init() {
	auditCmd.AddCommand(auditGetCmd)

	auditGetCmd.PersistentFlags().String("id", "", "Audit entry ID")
	_ = auditGetCmd.MarkPersistentFlagRequired("id")
}
