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

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hackadmin/hackadmin/internal/authz"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	pingTimeout           = 5 * time.Second
)

const (
	selectOrganizerBySubject = `
		SELECT id, first_name, last_name, email, gcp_id, privilege::text
		FROM organizer
		WHERE gcp_id = $1
	`
	selectUserBySubject = `
		SELECT id, first_name, last_name, email, gcp_id
		FROM "user"
		WHERE gcp_id = $1
	`
	selectUserByID = `
		SELECT id, first_name, last_name, email, gcp_id
		FROM "user"
		WHERE id = $1
	`
	selectUsers = `
		SELECT id, first_name, last_name, email, gcp_id
		FROM "user"
		ORDER BY last_name, first_name
	`
	deleteUserByID = `DELETE FROM "user" WHERE id = $1`
)

// PoolOptions configures the pgx pool created by Connect.
type PoolOptions struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// Connect opens a pgx pool and verifies it with a ping.
func Connect(
	ctx context.Context,
	opts PoolOptions,
) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		cfg.MinConns = opts.MinConns
	}
	cfg.HealthCheckPeriod = poolHealthCheckPeriod
	cfg.MaxConnLifetime = poolMaxConnLifetime
	cfg.MaxConnIdleTime = poolMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// New creates a Postgres repository over db.
func New(
	db DB,
) *Postgres {
	return &Postgres{db: db}
}

// GetOrganizerBySubject returns the organizer whose gcp_id is subject, or
// nil when there is none.
func (p *Postgres) GetOrganizerBySubject(
	ctx context.Context,
	subject string,
) (*authz.Organizer, error) {
	var (
		o         authz.Organizer
		privilege string
	)

	err := p.db.QueryRow(ctx, selectOrganizerBySubject, subject).Scan(
		&o.ID,
		&o.FirstName,
		&o.LastName,
		&o.Email,
		&o.GcpID,
		&privilege,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organizer by subject: %w", err)
	}

	// Unknown privileges are kept verbatim and rank as None.
	o.Privilege = authz.Role(privilege)

	return &o, nil
}

// GetUserBySubject returns the user whose gcp_id is subject, or nil when
// there is none.
func (p *Postgres) GetUserBySubject(
	ctx context.Context,
	subject string,
) (*authz.User, error) {
	u, err := p.scanUser(p.db.QueryRow(ctx, selectUserBySubject, subject))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by subject: %w", err)
	}

	return u, nil
}

// GetUser returns the user with the given id.
func (p *Postgres) GetUser(
	ctx context.Context,
	id string,
) (*authz.User, error) {
	u, err := p.scanUser(p.db.QueryRow(ctx, selectUserByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

// ListUsers returns every user.
func (p *Postgres) ListUsers(
	ctx context.Context,
) ([]authz.User, error) {
	rows, err := p.db.Query(ctx, selectUsers)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []authz.User{}
	for rows.Next() {
		u, err := p.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// DeleteUser removes the user with the given id.
func (p *Postgres) DeleteUser(
	ctx context.Context,
	id string,
) error {
	tag, err := p.db.Exec(ctx, deleteUserByID, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// CheckHealth pings the database.
func (p *Postgres) CheckHealth(
	ctx context.Context,
) error {
	if err := p.db.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	return nil
}

func (p *Postgres) scanUser(
	row pgx.Row,
) (*authz.User, error) {
	var u authz.User
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.GcpID,
	); err != nil {
		return nil, err
	}

	return &u, nil
}
