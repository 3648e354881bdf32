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

package authn

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	transportHTTP    = "http"
	transportChannel = "channel"
)

func newInstruments(
	meter metric.Meter,
) (metric.Int64Counter, metric.Float64Histogram) {
	var (
		attempts metric.Int64Counter     = noop.Int64Counter{}
		duration metric.Float64Histogram = noop.Float64Histogram{}
	)

	if c, err := meter.Int64Counter(
		"hackadmin.auth.attempts",
		metric.WithDescription("Authentication attempts by outcome."),
		metric.WithUnit("{attempt}"),
	); err == nil {
		attempts = c
	}

	if h, err := meter.Float64Histogram(
		"hackadmin.auth.duration",
		metric.WithDescription("Time spent authenticating a request."),
		metric.WithUnit("s"),
	); err == nil {
		duration = h
	}

	return attempts, duration
}

func (a *Authenticator) record(
	ctx context.Context,
	transport string,
	err error,
	start time.Time,
) {
	attrs := metric.WithAttributes(
		attribute.String("transport", transport),
		attribute.String("outcome", Outcome(err)),
	)

	a.attempts.Add(ctx, 1, attrs)
	a.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}
