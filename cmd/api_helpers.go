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
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/hackadmin/hackadmin/internal/api"
	"github.com/hackadmin/hackadmin/internal/api/health"
	"github.com/hackadmin/hackadmin/internal/api/users"
	"github.com/hackadmin/hackadmin/internal/audit"
	"github.com/hackadmin/hackadmin/internal/cli"
	"github.com/hackadmin/hackadmin/internal/repository"
)

const serviceName = "hackadmin"

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetHealthHandler returns health handler for registration.
	GetHealthHandler(
		authenticator api.Authenticator,
		checker health.Checker,
		startTime time.Time,
		version string,
	) []func(e *echo.Echo)
	// GetAuthHandler returns the identity introspection handler.
	GetAuthHandler(authenticator api.Authenticator) []func(e *echo.Echo)
	// GetUserHandler returns user handler for registration.
	GetUserHandler(authenticator api.Authenticator, store users.Store) []func(e *echo.Echo)
	// GetRealtimeHandler returns the realtime room check handler.
	GetRealtimeHandler(gate api.ChannelGate) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// GetAuditHandler returns audit handler for registration.
	GetAuditHandler(authenticator api.Authenticator, store audit.Store) []func(e *echo.Echo)
	// RegisterHandlers registers handler groups with the Echo instance.
	RegisterHandlers(handlers ...[]func(e *echo.Echo))
}

// serverDeps holds the connections opened by setupAPIServer.
type serverDeps struct {
	pool       *pgxpool.Pool
	nc         *nats.Conn
	auditKV    jetstream.KeyValue
	auditStore audit.Store
}

// close releases every connection. It is passed to cli.RunServer.
func (d *serverDeps) close(
	_ context.Context,
) error {
	cli.CloseNATS(d.nc)
	if d.pool != nil {
		d.pool.Close()
	}

	return nil
}

// setupAPIServer connects the repository, the identity provider, and the
// optional audit bucket, then creates the API server with every handler.
func setupAPIServer(
	ctx context.Context,
	log *slog.Logger,
	metricsHandler http.Handler,
	metricsPath string,
) (ServerManager, *serverDeps) {
	deps := &serverDeps{}

	pool, repo := connectRepository(ctx, log)
	deps.pool = pool

	authenticator := newAuthenticator(log, repo)
	gate := newRealtimeGate(log, authenticator)

	var serverOpts []api.Option
	if appConfig.NATS.Connection.Host != "" {
		deps.nc, deps.auditKV = connectAudit(ctx, log)
		deps.auditStore = audit.NewKVStore(log, deps.auditKV)
		serverOpts = append(serverOpts, api.WithAuditStore(deps.auditStore))
	} else {
		log.Info("nats host not configured, audit logging disabled")
	}

	checker := newHealthChecker(repo, deps.nc, deps.auditKV)

	sm := api.New(appConfig, log, serverOpts...)
	registerAPIHandlers(
		sm,
		authenticator,
		gate,
		repo,
		checker,
		metricsHandler,
		metricsPath,
		deps.auditStore,
	)

	return sm, deps
}

// newHealthChecker builds the readiness checks. The NATS check is left
// unset when audit logging is disabled.
func newHealthChecker(
	repo *repository.Postgres,
	nc *nats.Conn,
	auditKV jetstream.KeyValue,
) *health.DependencyChecker {
	checker := &health.DependencyChecker{
		DatabaseCheck: repo.CheckHealth,
	}

	if nc != nil {
		checker.NATSCheck = natsCheck(nc, auditKV)
	}

	return checker
}

func natsCheck(
	nc *nats.Conn,
	auditKV jetstream.KeyValue,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if !nc.IsConnected() {
			return errors.New("nats not connected")
		}

		if auditKV == nil {
			return nil
		}

		if _, err := auditKV.Status(ctx); err != nil {
			return fmt.Errorf("audit bucket not accessible: %w", err)
		}

		return nil
	}
}

func registerAPIHandlers(
	sm ServerManager,
	authenticator api.Authenticator,
	gate api.ChannelGate,
	store users.Store,
	checker health.Checker,
	metricsHandler http.Handler,
	metricsPath string,
	auditStore audit.Store,
) {
	startTime := time.Now()

	handlers := [][]func(e *echo.Echo){
		sm.GetHealthHandler(authenticator, checker, startTime, appVersion.GitVersion),
		sm.GetAuthHandler(authenticator),
		sm.GetUserHandler(authenticator, store),
		sm.GetRealtimeHandler(gate),
		sm.GetMetricsHandler(metricsHandler, metricsPath),
	}
	if auditStore != nil {
		handlers = append(handlers, sm.GetAuditHandler(authenticator, auditStore))
	}

	sm.RegisterHandlers(handlers...)
}
