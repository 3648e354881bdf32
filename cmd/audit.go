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
	"context"
	"errors"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/hackadmin/hackadmin/internal/audit"
	"github.com/hackadmin/hackadmin/internal/cli"
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Read the audit log",
	Long: `Read the audit log directly from its NATS KeyValue bucket.
`,
}

// openAuditStore connects to the audit bucket for the audit commands.
func openAuditStore(
	ctx context.Context,
) (*audit.KVStore, *nats.Conn) {
	if appConfig.NATS.Connection.Host == "" {
		cli.LogFatal(logger, "audit log unavailable", errors.New("nats host not configured"))
	}

	nc, kv := connectAudit(ctx, logger)

	return audit.NewKVStore(logger, kv), nc
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
