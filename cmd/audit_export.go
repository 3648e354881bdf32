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
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/hackadmin/hackadmin/internal/audit/export"
	"github.com/hackadmin/hackadmin/internal/authz"
	"github.com/hackadmin/hackadmin/internal/cli"
)

// auditExportCmd represents the auditExport command.
var auditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export audit entries to a JSON Lines file",
	Long: `Export audit entries to a file, one JSON object per line, newest first.
Use --subject, --role and --since to export part of the log.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		output, _ := cmd.Flags().GetString("output")
		batchSize, _ := cmd.Flags().GetInt("batch-size")

		filter, err := auditExportFilter(cmd)
		if err != nil {
			cli.LogFatal(logger, "invalid export filter", err)
		}

		store, nc := openAuditStore(ctx)
		defer cli.CloseNATS(nc)

		result, err := export.Run(
			ctx,
			logger,
			store.List,
			export.NewFileExporter(appFs, output),
			export.Options{
				BatchSize: batchSize,
				Filter:    filter,
				OnProgress: func(scanned int, exported int, total int) {
					logger.Debug(
						"export progress",
						slog.Int("scanned", scanned),
						slog.Int("exported", exported),
						slog.Int("total", total),
					)
				},
			},
		)
		if err != nil {
			cli.LogFatal(logger, "export failed", err, "output", output)
		}

		fmt.Println()
		cli.PrintKV(
			"Output", output,
			"Exported", fmt.Sprintf("%d/%d", result.ExportedEntries, result.TotalEntries),
			"Skipped", fmt.Sprintf("%d", result.SkippedEntries),
		)
	},
}

// auditExportFilter builds the export filter from the command flags.
func auditExportFilter(
	cmd *cobra.Command,
) (export.Filter, error) {
	subject, _ := cmd.Flags().GetString("subject")
	roleName, _ := cmd.Flags().GetString("role")
	since, _ := cmd.Flags().GetString("since")

	filter := export.Filter{Subject: subject}

	if roleName != "" {
		role, ok := authz.ParseRole(roleName)
		if !ok {
			return export.Filter{}, fmt.Errorf("unknown role %q", roleName)
		}
		filter.Role = role.String()
	}

	if since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return export.Filter{}, fmt.Errorf("parsing --since: %w", err)
		}
		filter.Since = t
	}

	return filter, nil
}

func init() {
	auditCmd.AddCommand(auditExportCmd)

	auditExportCmd.PersistentFlags().StringP("output", "o", "", "Path to the output file")
	auditExportCmd.PersistentFlags().
		Int("batch-size", export.DefaultBatchSize, "Entries fetched per page")
	auditExportCmd.PersistentFlags().String("subject", "", "Only export entries for this subject")
	auditExportCmd.PersistentFlags().String("role", "", "Only export entries made with this role")
	auditExportCmd.PersistentFlags().
		String("since", "", "Only export entries at or after this RFC 3339 time")
	_ = auditExportCmd.MarkPersistentFlagRequired("output")
}
