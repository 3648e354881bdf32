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

// Package cli provides shared utilities for CLI startup commands.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/hackadmin/hackadmin/internal/config"
)

// ParseJetstreamStorageType maps "memory"/"file" strings to jetstream.StorageType.
func ParseJetstreamStorageType(
	s string,
) jetstream.StorageType {
	if s == "memory" {
		return jetstream.MemoryStorage
	}

	return jetstream.FileStorage
}

// ApplyNamespace prefixes name with namespace and a dash. An empty
// namespace leaves name unchanged.
func ApplyNamespace(
	namespace string,
	name string,
) string {
	if namespace == "" {
		return name
	}

	return namespace + "-" + name
}

// BuildAuditKVConfig builds a jetstream.KeyValueConfig from audit config values.
func BuildAuditKVConfig(
	namespace string,
	auditCfg config.NATSAudit,
) jetstream.KeyValueConfig {
	auditTTL, _ := time.ParseDuration(auditCfg.TTL)

	return jetstream.KeyValueConfig{
		Bucket:   ApplyNamespace(namespace, auditCfg.Bucket),
		TTL:      auditTTL,
		MaxBytes: auditCfg.MaxBytes,
		Storage:  ParseJetstreamStorageType(auditCfg.Storage),
		Replicas: auditCfg.Replicas,
	}
}

// NATSURL returns the client URL for conn.
func NATSURL(
	conn config.NATSConnection,
) string {
	return fmt.Sprintf("nats://%s:%d", conn.Host, conn.Port)
}

// ConnectNATS dials the NATS server described by conn.
func ConnectNATS(
	conn config.NATSConnection,
) (*nats.Conn, error) {
	nc, err := nats.Connect(
		NATSURL(conn),
		nats.Name(conn.ClientName),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return nc, nil
}

// OpenAuditKV creates or updates the audit bucket and returns it.
func OpenAuditKV(
	ctx context.Context,
	nc *nats.Conn,
	namespace string,
	auditCfg config.NATSAudit,
) (jetstream.KeyValue, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, BuildAuditKVConfig(namespace, auditCfg))
	if err != nil {
		return nil, fmt.Errorf("create audit bucket: %w", err)
	}

	return kv, nil
}

// CloseNATS safely closes a NATS connection.
func CloseNATS(
	nc *nats.Conn,
) {
	if nc != nil {
		nc.Close()
	}
}
