// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	sqlMaxAttempts  = 3
	sqlRetryBackoff = 50 * time.Millisecond
)

// sqlBackend keeps every document as one row of the documents table.
type sqlBackend struct {
	db      *DB
	backoff time.Duration
	now     func() time.Time
}

// NewSQLBackend returns a [Backend] over db. The documents table must exist,
// see [DB.Migrate].
func NewSQLBackend(db *DB) Backend {
	return &sqlBackend{
		db:      db,
		backoff: sqlRetryBackoff,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (b *sqlBackend) Read(ctx context.Context, name string) ([]byte, error) {
	query, args, err := buildSelectDocumentQuery(b.db.statementBuilder(), name)
	if err != nil {
		return nil, err
	}

	var body string
	err = b.withRetry(ctx, func() error {
		return b.db.QueryRowContext(ctx, query, args...).Scan(&body)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		b.db.logger.Err(err).Str("func", "*sqlBackend.Read").Str("document", name).Msg("error selecting document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(body), nil
}

func (b *sqlBackend) Write(ctx context.Context, name string, data []byte) error {
	query, args, err := buildUpsertDocumentQuery(b.db.statementBuilder(), name, data, b.now())
	if err != nil {
		return err
	}

	err = b.withRetry(ctx, func() error {
		_, execErr := b.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		b.db.logger.Err(err).Str("func", "*sqlBackend.Write").Str("document", name).Msg("error upserting document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// withRetry runs op up to sqlMaxAttempts times while it fails with a
// transient driver error, waiting a Fibonacci backoff between attempts.
func (b *sqlBackend) withRetry(ctx context.Context, op func() error) error {
	backoff := retry.WithMaxRetries(sqlMaxAttempts-1, retry.NewFibonacci(b.backoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op()
		if b.db.isTransient(err) {
			b.db.logger.Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
