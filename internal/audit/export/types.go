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

package export

import (
	"context"
	"time"

	"github.com/hackadmin/hackadmin/internal/audit"
)

// Fetcher returns one page of audit entries and the total count.
type Fetcher func(ctx context.Context, limit int, offset int) ([]audit.Entry, int, error)

// Exporter writes audit entries to a destination.
type Exporter interface {
	Open(ctx context.Context) error
	Write(ctx context.Context, entry audit.Entry) error
	Close(ctx context.Context) error
}

// Filter narrows an export to matching entries. Zero fields match all.
type Filter struct {
	// Subject keeps only entries made by this identity provider subject.
	Subject string
	// Role keeps only entries whose effective role equals Role.
	Role string
	// Since keeps only entries at or after this instant.
	Since time.Time
}

// Options controls a Run.
type Options struct {
	// BatchSize is the page size; DefaultBatchSize when not positive.
	BatchSize int
	Filter    Filter
	// OnProgress, if set, is called after every page.
	OnProgress ProgressFunc
}

// ProgressFunc receives the number of entries scanned so far, how many of
// them were written, and the store total.
type ProgressFunc func(scanned int, exported int, total int)

// Result summarizes an export run.
type Result struct {
	TotalEntries    int
	ScannedEntries  int
	ExportedEntries int
	SkippedEntries  int
}
