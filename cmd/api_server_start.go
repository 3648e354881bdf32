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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hackadmin/hackadmin/internal/cli"
	"github.com/hackadmin/hackadmin/internal/telemetry"
)

// apiServerStartCmd represents the apiServerStart command.
var apiServerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the API server.

Connects to Postgres and, when configured, to NATS for the audit log, then
serves the gateway routes until interrupted.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			serviceName,
			appVersion.GitVersion,
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracing", err)
		}

		metricsHandler, metricsPath, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize metrics", err)
		}

		sm, deps := setupAPIServer(ctx, logger, metricsHandler, metricsPath)

		logger.Info(
			"api server configuration",
			slog.Int("port", appConfig.API.Server.Port),
			slog.Bool("audit", deps.auditStore != nil),
			slog.Any("cors_origins", appConfig.API.Server.Security.CORS.AllowOrigins),
			slog.Bool("debug", appConfig.Debug),
		)

		sm.Start()
		cli.RunServer(
			ctx,
			logger,
			sm,
			deps.close,
			shutdownMeter,
			shutdownTracer,
		)
	},
}

func init() {
	apiServerCmd.AddCommand(apiServerStartCmd)
}
