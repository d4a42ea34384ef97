// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Document-level errors returned by backends and [Document].
var (
	// ErrDocumentNotFound is returned by a backend when the document was never written.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentUnreadable is returned by a backend when the document exists
	// but its content cannot be read (permissions, I/O error).
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrLoadingDocument wraps backend failures that are not soft-failed to the default value.
	ErrLoadingDocument = errors.New("error loading document")

	// ErrSavingDocument wraps any failure while encoding or writing a document.
	ErrSavingDocument = errors.New("error saving document")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Sentinel errors returned by repositories. Callers match them with [errors.Is].
var (
	// ErrMessageNotFound is returned when no contact message has the requested id.
	ErrMessageNotFound = errors.New("message not found")

	// ErrReviewNotFound is returned when no review has the requested id.
	ErrReviewNotFound = errors.New("review not found")

	// ErrQuoteNotFound is returned when no quote has the requested id.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrQuoteNumberExhausted is returned when no free quote number could be drawn.
	ErrQuoteNumberExhausted = errors.New("could not allocate a unique quote number")

	// ErrBlockedDateNotFound is returned when no blocked date has the requested id.
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrDateAlreadyBlocked is returned when the day already has a block entry.
	ErrDateAlreadyBlocked = errors.New("date already blocked")

	// ErrBookingNotFound is returned when no booking has the requested id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPortfolioItemNotFound is returned when no portfolio item has the requested id.
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")

	// ErrTemplateNotFound is returned for unknown template ids, and by reset
	// for ids that have no built-in default.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrSavingImage is returned when an uploaded image cannot be written.
	ErrSavingImage = errors.New("error saving image")
)

// Low-level database errors of the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT/UPSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// errUnchanged lets an update callback end the cycle without writing.
var errUnchanged = errors.New("document unchanged")
