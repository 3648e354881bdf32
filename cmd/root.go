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
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goversion "github.com/caarlos0/go-version"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/hackadmin/hackadmin/internal/cli"
	"github.com/hackadmin/hackadmin/internal/config"
	"github.com/hackadmin/hackadmin/internal/telemetry"
)

// annotationSkipConfig marks commands that run without a config file.
const annotationSkipConfig = "hackadmin/skip-config"

var (
	appConfig  config.Config
	appFs      = afero.NewOsFs()
	appVersion goversion.Info
	logger     = slog.New(slog.NewTextHandler(os.Stdout, nil))
	jsonOutput bool
)

// legacyEnv maps config keys to the environment variables the original
// deployment used. The prefixed name always wins.
var legacyEnv = map[string]string{
	"identity_provider.api_key":  "FIREBASE_API_KEY",
	"identity_provider.endpoint": "FIREBASE_USER_DATA_ENDPOINT",
	"database.dsn":               "DATABASE_URL",
	"api.server.port":            "PORT",
}

// envOnlyKeys can be set from the environment without a config file.
var envOnlyKeys = []string{
	"identity_provider.api_key_file",
	"database.max_conns",
	"database.min_conns",
	"nats.connection.host",
	"nats.connection.namespace",
	"telemetry.tracing.enabled",
	"telemetry.tracing.exporter",
	"telemetry.tracing.otlp_endpoint",
	"telemetry.tracing.sample_ratio",
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hackadmin",
	Short: "Authentication gateway for the hackathon admin backend.",
	Long: `Authentication gateway for the hackathon admin backend.

Verifies bearer credentials with the identity provider, resolves the caller
to organizer and participant records, and enforces per-route role policies.
`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		initViper()
		initLogger()

		if cmd.Annotations[annotationSkipConfig] != "true" {
			initConfig()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(
	info goversion.Info,
) {
	appVersion = info
	rootCmd.Version = info.GitVersion

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable or disable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Enable JSON output")

	rootCmd.PersistentFlags().
		StringP("config", "f", "/etc/hackadmin/hackadmin.yaml", "Path to config file")
	rootCmd.PersistentFlags().
		String("env-file", ".env", "Path to a dotenv file loaded before the config")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("configFile", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("envFile", rootCmd.PersistentFlags().Lookup("env-file"))
}

// initViper wires environment lookups and defaults. It does not read files.
func initViper() {
	viper.SetFs(appFs)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("hackadmin")
	viper.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := "HACKADMIN_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = viper.BindEnv(key, prefixed, legacy)
	}

	// Unmarshal only sees keys viper already knows about.
	for _, key := range envOnlyKeys {
		_ = viper.BindEnv(key)
	}

	viper.SetDefault("api.server.port", 8080)
	viper.SetDefault("identity_provider.timeout", "10s")
	viper.SetDefault("nats.connection.port", 4222)
	viper.SetDefault("nats.connection.client_name", "hackadmin-api")
	viper.SetDefault("nats.audit.bucket", "audit-log")
	viper.SetDefault("nats.audit.ttl", "720h")
	viper.SetDefault("nats.audit.storage", "file")
	viper.SetDefault("nats.audit.replicas", 1)
	viper.SetDefault("telemetry.metrics.path", telemetry.DefaultMetricsPath)
}

func initConfig() {
	if err := loadEnvFile(appFs, viper.GetString("envFile")); err != nil {
		cli.LogFatal(logger, "failed to load env file", err, "envFile", viper.GetString("envFile"))
	}

	configFile := viper.GetString("configFile")
	if exists, _ := afero.Exists(appFs, configFile); exists {
		viper.SetConfigType("yaml")
		viper.SetConfigFile(configFile)

		if err := viper.ReadInConfig(); err != nil {
			cli.LogFatal(logger, "failed to read config", err, "configFile", configFile)
		}
	} else {
		logger.Debug("config file not found, using environment", slog.String("configFile", configFile))
	}

	if err := viper.Unmarshal(&appConfig); err != nil {
		cli.LogFatal(logger, "failed to unmarshal config", err, "configFile", viper.ConfigFileUsed())
	}

	// Auto-enable tracing in debug mode so trace_id appears in log lines.
	// No exporter is set, just log correlation.
	if appConfig.Debug && !appConfig.Telemetry.Tracing.Enabled {
		appConfig.Telemetry.Tracing.Enabled = true
	}

	if err := config.Validate(&appConfig); err != nil {
		cli.LogFatal(logger, "validation failed", err, "configFile", viper.ConfigFileUsed())
	}
}

// loadEnvFile exports the variables in path without overriding ones already
// set. A missing file is not an error.
func loadEnvFile(
	appFs afero.Fs,
	path string,
) error {
	if path == "" {
		return nil
	}

	f, err := appFs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer func() { _ = f.Close() }()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return err
	}

	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}

	return nil
}

func initLogger() {
	logLevel := slog.LevelInfo
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !term.IsTerminal(int(os.Stdout.Fd())),
		})
	}

	handler = telemetry.NewTraceHandler(handler)
	logger = slog.New(handler)
}
