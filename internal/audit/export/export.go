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

// Package export copies audit entries out of the store, page by page, into
// an Exporter such as a JSON Lines file.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hackadmin/hackadmin/internal/audit"
)

// DefaultBatchSize is the page size used when Options.BatchSize is not set.
const DefaultBatchSize = 100

// Match reports whether entry passes every set field of f.
func (f Filter) Match(
	entry audit.Entry,
) bool {
	if f.Subject != "" && entry.Subject != f.Subject {
		return false
	}
	if f.Role != "" && entry.Role != f.Role {
		return false
	}
	if !f.Since.IsZero() && entry.Timestamp.Before(f.Since) {
		return false
	}

	return true
}

// Run pages through the store with fetcher and writes every entry that
// matches opts.Filter. The exporter is closed on every path after a
// successful Open. A cancelled ctx stops the run between pages.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	fetcher Fetcher,
	exporter Exporter,
	opts Options,
) (*Result, error) {
	if err := exporter.Open(ctx); err != nil {
		return nil, fmt.Errorf("opening exporter: %w", err)
	}

	defer func() {
		if err := exporter.Close(ctx); err != nil {
			logger.Error("closing audit exporter", slog.String("error", err.Error()))
		}
	}()

	limit := opts.BatchSize
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	result := &Result{}

	for {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf(
				"export cancelled after %d of %d entries: %w",
				result.ScannedEntries,
				result.TotalEntries,
				err,
			)
		}

		page, total, err := fetcher(ctx, limit, result.ScannedEntries)
		if err != nil {
			return result, fmt.Errorf("fetching entries at offset %d: %w", result.ScannedEntries, err)
		}
		result.TotalEntries = total

		for _, entry := range page {
			result.ScannedEntries++

			if !opts.Filter.Match(entry) {
				result.SkippedEntries++
				continue
			}

			if err := exporter.Write(ctx, entry); err != nil {
				return result, fmt.Errorf("writing entry %s: %w", entry.ID, err)
			}
			result.ExportedEntries++
		}

		if opts.OnProgress != nil {
			opts.OnProgress(result.ScannedEntries, result.ExportedEntries, total)
		}

		if len(page) == 0 || result.ScannedEntries >= total {
			return result, nil
		}
	}
}
