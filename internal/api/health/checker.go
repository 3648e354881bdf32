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

package health

import (
	"context"
	"errors"
	"fmt"
)

// DependencyChecker implements Checker for the database and, when audit
// logging is enabled, the NATS connection. A nil check is skipped.
type DependencyChecker struct {
	// DatabaseCheck verifies the Postgres pool.
	DatabaseCheck func(ctx context.Context) error
	// NATSCheck verifies the NATS connection and audit bucket.
	NATSCheck func(ctx context.Context) error
}

// CheckHealth runs every configured check and joins the failures.
func (c *DependencyChecker) CheckHealth(
	ctx context.Context,
) error {
	var errs []error

	if err := c.CheckDatabase(ctx); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	if err := c.CheckNATS(ctx); err != nil {
		errs = append(errs, fmt.Errorf("nats: %w", err))
	}

	return errors.Join(errs...)
}

// CheckDatabase runs DatabaseCheck.
func (c *DependencyChecker) CheckDatabase(
	ctx context.Context,
) error {
	if c.DatabaseCheck != nil {
		return c.DatabaseCheck(ctx)
	}

	return nil
}

// CheckNATS runs NATSCheck.
func (c *DependencyChecker) CheckNATS(
	ctx context.Context,
) error {
	if c.NATSCheck != nil {
		return c.NATSCheck(ctx)
	}

	return nil
}
