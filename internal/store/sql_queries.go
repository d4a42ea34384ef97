// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

// buildSelectDocumentQuery reads the body of one document.
func buildSelectDocumentQuery(sb squirrel.StatementBuilderType, name string) (string, []any, error) {
	query, args, err := sb.
		Select("body").
		From(documentsTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertDocumentQuery inserts the document or replaces the stored body.
// Both PostgreSQL and SQLite understand the ON CONFLICT form.
func buildUpsertDocumentQuery(sb squirrel.StatementBuilderType, name string, body []byte, updatedAt time.Time) (string, []any, error) {
	query, args, err := sb.
		Insert(documentsTable).
		Columns("name", "body", "updated_at").
		Values(name, string(body), updatedAt).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
