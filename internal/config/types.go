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

package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	API              API              `mapstructure:"api"`
	IdentityProvider IdentityProvider `mapstructure:"identity_provider"`
	Database         Database         `mapstructure:"database"`
	NATS             NATS             `mapstructure:"nats"`
	Realtime         Realtime         `mapstructure:"realtime"`
	Telemetry        Telemetry        `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter" validate:"omitempty,oneof=stdout otlp"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	// SampleRatio is the fraction of new traces recorded. Zero or one
	// records every trace; sampled parents are always followed.
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}

// IdentityProvider configuration for the token lookup endpoint.
type IdentityProvider struct {
	// Endpoint is the account lookup URL the bearer token is posted to.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	// APIKey is sent as the "key" query parameter.
	APIKey string `mapstructure:"api_key" validate:"required_without=APIKeyFile"`
	// APIKeyFile is read when APIKey is empty.
	APIKeyFile string `mapstructure:"api_key_file"`
	Timeout    string `mapstructure:"timeout"` // e.g. "10s"
}

// Database configuration for the Postgres pool.
type Database struct {
	// DSN is a Postgres connection string.
	DSN      string `mapstructure:"dsn"       validate:"required"`
	MaxConns int32  `mapstructure:"max_conns" validate:"gte=0"`
	MinConns int32  `mapstructure:"min_conns" validate:"gte=0"`
}

// NATS configuration settings.
type NATS struct {
	// Connection is where the audit log lives. Audit logging is disabled
	// when Host is empty.
	Connection NATSConnection `mapstructure:"connection"`
	Audit      NATSAudit      `mapstructure:"audit,omitempty"`
}

// NATSAudit configuration for the audit log KV bucket.
type NATSAudit struct {
	// Bucket is the KV bucket name for audit log entries.
	Bucket   string `mapstructure:"bucket"   validate:"required_with=Storage"`
	TTL      string `mapstructure:"ttl"` // e.g. "720h" (30 days)
	MaxBytes int64  `mapstructure:"max_bytes"`
	Storage  string `mapstructure:"storage"  validate:"omitempty,oneof=file memory"`
	Replicas int    `mapstructure:"replicas"`
}

// NATSConnection is a reusable NATS connection configuration block.
type NATSConnection struct {
	// Host the NATS server hostname.
	Host string `mapstructure:"host"`
	// Port the NATS server port.
	Port int `mapstructure:"port"`
	// ClientName the NATS client name for identification.
	ClientName string `mapstructure:"client_name"`
	// Namespace is a prefix for the audit bucket name.
	Namespace string `mapstructure:"namespace"`
}

// API configuration settings.
type API struct {
	Server Server `mapstructure:"server"`
}

// Server configuration settings.
type Server struct {
	// Port the server will bind to.
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
	// Security contains security-related configuration for the server, such as CORS.
	Security ServerSecurity `mapstructure:"security"`
}

// ServerSecurity represents security-related settings for the server.
type ServerSecurity struct {
	// CORS Cross-Origin Resource Sharing (CORS) settings for the server.
	CORS CORS `mapstructure:"cors"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server (e.g., "http://localhost:3000").
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}

// Realtime configuration for the socket room gate.
type Realtime struct {
	// Rooms overrides the minimum role per room, e.g. {admin: Tech}.
	Rooms map[string]string `mapstructure:"rooms" validate:"omitempty,dive,keys,oneof=mobile admin exec,endkeys,valid_role"`
}
