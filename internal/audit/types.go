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

// Package audit records every authenticated request and stores the records
// in a NATS JetStream KeyValue bucket.
package audit

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no entry has the given ID.
var ErrNotFound = errors.New("audit entry not found")

// Entry represents a single audit log record.
type Entry struct {
	// ID is the unique identifier for this audit entry. IDs are UUIDv7, so
	// lexical order is chronological.
	ID string `json:"id"`
	// Timestamp is when the request was processed.
	Timestamp time.Time `json:"timestamp"`
	// Subject is the identity provider subject of the caller.
	Subject string `json:"subject"`
	// Role is the caller's effective role.
	Role string `json:"role"`
	// Kinds lists the record kinds the subject resolved to.
	Kinds []string `json:"kinds"`
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string `json:"method"`
	// Path is the request URL path.
	Path string `json:"path"`
	// SourceIP is the client's IP address.
	SourceIP string `json:"source_ip"`
	// ResponseCode is the HTTP response status code.
	ResponseCode int `json:"response_code"`
	// DurationMs is the request processing time in milliseconds.
	DurationMs int64 `json:"duration_ms"`
}

// Store persists and reads audit entries.
type Store interface {
	Write(ctx context.Context, entry Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context, limit int, offset int) ([]Entry, int, error)
}
