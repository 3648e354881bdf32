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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hackadmin/hackadmin/internal/audit"
	"github.com/hackadmin/hackadmin/internal/cli"
)

// auditListCmd represents the auditList command.
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit entries",
	Long: `List audit entries, newest first.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		store, nc := openAuditStore(ctx)
		defer cli.CloseNATS(nc)

		entries, total, err := store.List(ctx, limit, offset)
		if err != nil {
			cli.LogFatal(logger, "failed to list audit entries", err)
		}

		if jsonOutput {
			resp, _ := json.Marshal(map[string]any{
				"total_items": total,
				"items":       entries,
			})
			fmt.Println(string(resp))
			return
		}

		fmt.Println()
		cli.PrintKV("Total", strconv.Itoa(total))
		cli.PrintCompactTable([]cli.Section{auditSection(entries)})
	},
}

func auditSection(
	entries []audit.Entry,
) cli.Section {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Subject,
			e.Role,
			strings.Join([]string{e.Method, e.Path}, " "),
			strconv.Itoa(e.ResponseCode),
			fmt.Sprintf("%dms", e.DurationMs),
		})
	}

	return cli.Section{
		Title:   "Audit Entries",
		Headers: []string{"ID", "TIMESTAMP", "SUBJECT", "ROLE", "REQUEST", "CODE", "DURATION"},
		Rows:    rows,
	}
}

func init() {
	auditCmd.AddCommand(auditListCmd)

	auditListCmd.PersistentFlags().Int("limit", 20, "Maximum number of entries to show")
	auditListCmd.PersistentFlags().Int("offset", 0, "Number of entries to skip")
}
