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
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/afero"

	"github.com/hackadmin/hackadmin/internal/authn"
	"github.com/hackadmin/hackadmin/internal/cli"
	"github.com/hackadmin/hackadmin/internal/config"
	"github.com/hackadmin/hackadmin/internal/idp"
	"github.com/hackadmin/hackadmin/internal/realtime"
	"github.com/hackadmin/hackadmin/internal/repository"
)

// errNoAPIKey is returned by resolveAPIKey when neither source yields a key.
var errNoAPIKey = errors.New("identity provider api key is empty")

func connectRepository(
	ctx context.Context,
	log *slog.Logger,
) (*pgxpool.Pool, *repository.Postgres) {
	pool, err := repository.Connect(ctx, repository.PoolOptions{
		DSN:      appConfig.Database.DSN,
		MaxConns: appConfig.Database.MaxConns,
		MinConns: appConfig.Database.MinConns,
	})
	if err != nil {
		cli.LogFatal(log, "failed to connect to database", err)
	}

	return pool, repository.New(pool)
}

// newAuthenticator builds the identity provider client and the
// authentication pipeline over repo.
func newAuthenticator(
	log *slog.Logger,
	repo authn.IdentityRepository,
) *authn.Authenticator {
	opts, err := identityProviderOptions(appFs, appConfig.IdentityProvider)
	if err != nil {
		cli.LogFatal(log, "invalid identity provider config", err)
	}

	verifier, err := idp.New(log, opts)
	if err != nil {
		cli.LogFatal(log, "failed to create identity provider client", err)
	}

	return authn.New(log, verifier, repo)
}

func newRealtimeGate(
	log *slog.Logger,
	authorizer realtime.Authorizer,
) *realtime.Gate {
	gate, err := realtime.NewGate(authorizer, appConfig.Realtime.Rooms)
	if err != nil {
		cli.LogFatal(log, "invalid realtime room config", err)
	}

	return gate
}

// identityProviderOptions turns the config block into client options,
// reading the API key file when no inline key is set.
func identityProviderOptions(
	appFs afero.Fs,
	cfg config.IdentityProvider,
) (*idp.Options, error) {
	apiKey, err := resolveAPIKey(appFs, cfg)
	if err != nil {
		return nil, err
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		timeout, err = time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse identity provider timeout: %w", err)
		}
	}

	return &idp.Options{
		Endpoint: cfg.Endpoint,
		APIKey:   apiKey,
		Timeout:  timeout,
	}, nil
}

func resolveAPIKey(
	appFs afero.Fs,
	cfg config.IdentityProvider,
) (string, error) {
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}

	if cfg.APIKeyFile == "" {
		return "", errNoAPIKey
	}

	data, err := afero.ReadFile(appFs, cfg.APIKeyFile)
	if err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%w: %s", errNoAPIKey, cfg.APIKeyFile)
	}

	return key, nil
}

// connectAudit dials NATS and opens the audit bucket.
func connectAudit(
	ctx context.Context,
	log *slog.Logger,
) (*nats.Conn, jetstream.KeyValue) {
	connCfg := appConfig.NATS.Connection

	nc, err := cli.ConnectNATS(connCfg)
	if err != nil {
		cli.LogFatal(log, "failed to connect to NATS", err, "url", cli.NATSURL(connCfg))
	}

	kv, err := cli.OpenAuditKV(ctx, nc, connCfg.Namespace, appConfig.NATS.Audit)
	if err != nil {
		cli.CloseNATS(nc)
		cli.LogFatal(log, "failed to open audit bucket", err)
	}

	return nc, kv
}

// bearerHeader builds the request header the pipeline expects from a raw
// token.
func bearerHeader(
	token string,
) http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	return header
}
