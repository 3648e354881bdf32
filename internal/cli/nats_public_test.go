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

package cli_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natstest "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hackadmin/hackadmin/internal/cli"
	"github.com/hackadmin/hackadmin/internal/config"
)

type NATSTestSuite struct {
	suite.Suite
}

func TestNATSTestSuite(t *testing.T) {
	suite.Run(t, new(NATSTestSuite))
}

func (suite *NATSTestSuite) TestParseJetstreamStorageType() {
	tests := []struct {
		name  string
		input string
		want  jetstream.StorageType
	}{
		{name: "when memory", input: "memory", want: jetstream.MemoryStorage},
		{name: "when file", input: "file", want: jetstream.FileStorage},
		{name: "when empty defaults to file", input: "", want: jetstream.FileStorage},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.want, cli.ParseJetstreamStorageType(tc.input))
		})
	}
}

func (suite *NATSTestSuite) TestApplyNamespace() {
	assert.Equal(suite.T(), "audit-log", cli.ApplyNamespace("", "audit-log"))
	assert.Equal(suite.T(), "prod-audit-log", cli.ApplyNamespace("prod", "audit-log"))
}

func (suite *NATSTestSuite) TestBuildAuditKVConfig() {
	tests := []struct {
		name       string
		namespace  string
		auditCfg   config.NATSAudit
		validateFn func(jetstream.KeyValueConfig)
	}{
		{
			name:      "when namespace is set",
			namespace: "hackadmin",
			auditCfg: config.NATSAudit{
				Bucket:   "audit-log",
				TTL:      "720h",
				MaxBytes: 52428800,
				Storage:  "file",
				Replicas: 1,
			},
			validateFn: func(cfg jetstream.KeyValueConfig) {
				assert.Equal(suite.T(), "hackadmin-audit-log", cfg.Bucket)
				assert.Equal(suite.T(), 720*time.Hour, cfg.TTL)
				assert.Equal(suite.T(), int64(52428800), cfg.MaxBytes)
				assert.Equal(suite.T(), jetstream.FileStorage, cfg.Storage)
				assert.Equal(suite.T(), 1, cfg.Replicas)
			},
		},
		{
			name:      "when namespace is empty",
			namespace: "",
			auditCfg: config.NATSAudit{
				Bucket:   "audit-log",
				TTL:      "24h",
				MaxBytes: 1048576,
				Storage:  "memory",
				Replicas: 3,
			},
			validateFn: func(cfg jetstream.KeyValueConfig) {
				assert.Equal(suite.T(), "audit-log", cfg.Bucket)
				assert.Equal(suite.T(), 24*time.Hour, cfg.TTL)
				assert.Equal(suite.T(), jetstream.MemoryStorage, cfg.Storage)
				assert.Equal(suite.T(), 3, cfg.Replicas)
			},
		},
		{
			name: "when TTL is invalid defaults to zero",
			auditCfg: config.NATSAudit{
				Bucket: "audit-log",
				TTL:    "invalid",
			},
			validateFn: func(cfg jetstream.KeyValueConfig) {
				assert.Equal(suite.T(), time.Duration(0), cfg.TTL)
			},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := cli.BuildAuditKVConfig(tc.namespace, tc.auditCfg)

			tc.validateFn(got)
		})
	}
}

func (suite *NATSTestSuite) TestNATSURL() {
	got := cli.NATSURL(config.NATSConnection{Host: "localhost", Port: 4222})

	assert.Equal(suite.T(), "nats://localhost:4222", got)
}

func (suite *NATSTestSuite) TestConnectNATSAndOpenAuditKV() {
	opts := natstest.DefaultTestOptions
	opts.Port = server.RANDOM_PORT
	opts.JetStream = true
	opts.StoreDir = suite.T().TempDir()
	srv := natstest.RunServer(&opts)
	defer srv.Shutdown()

	conn := config.NATSConnection{
		Host:       "127.0.0.1",
		Port:       srv.Addr().(*net.TCPAddr).Port,
		ClientName: "hackadmin-test",
	}

	nc, err := cli.ConnectNATS(conn)
	suite.Require().NoError(err)
	defer cli.CloseNATS(nc)

	kv, err := cli.OpenAuditKV(context.Background(), nc, "test", config.NATSAudit{
		Bucket:  "audit-log",
		TTL:     "1h",
		Storage: "memory",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "test-audit-log", kv.Bucket())
}

func (suite *NATSTestSuite) TestConnectNATSWhenUnreachable() {
	nc, err := cli.ConnectNATS(config.NATSConnection{Host: "127.0.0.1", Port: 1})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), nc)
	assert.Contains(suite.T(), err.Error(), "connect to nats")
}

func (suite *NATSTestSuite) TestCloseNATS() {
	assert.NotPanics(suite.T(), func() { cli.CloseNATS(nil) })
}
