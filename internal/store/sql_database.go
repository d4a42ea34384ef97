// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/migrations"
	"github.com/Masterminds/squirrel"
)

// SQL dialects supported by the document backend.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB is a database handle bound to its dialect.
type DB struct {
	*sql.DB
	dialect string
	// transient reports driver errors that may pass on a later attempt.
	transient func(err error) bool
	logger    *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) isTransient(err error) bool {
	return err != nil && db.transient != nil && db.transient(err)
}

// statementBuilder returns a squirrel builder using the dialect's placeholders.
func (db *DB) statementBuilder() squirrel.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
