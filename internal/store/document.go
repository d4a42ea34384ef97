// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/click-storm/internal/logger"
)

// Document is a named JSON value stored whole in a [Backend].
//
// Load never fails because of a missing, unreadable or malformed document:
// it falls back to the value returned by defaults. Update serializes the
// load→mutate→save cycle of every Document sharing the same name and locker,
// so two writers can no longer lose each other's changes.
type Document[T any] struct {
	name     string
	backend  Backend
	defaults func() T
	lock     *sync.Mutex
}

// NewDocument binds name to backend. defaults must return a fresh value on
// every call since callers mutate what Load returns.
func NewDocument[T any](name string, backend Backend, locks *Locker, defaults func() T) *Document[T] {
	return &Document[T]{
		name:     name,
		backend:  backend,
		defaults: defaults,
		lock:     locks.get(name),
	}
}

// Name returns the document name.
func (d *Document[T]) Name() string {
	return d.name
}

// Load reads and decodes the document.
func (d *Document[T]) Load(ctx context.Context) (T, error) {
	log := logger.FromContext(ctx)

	data, err := d.backend.Read(ctx, d.name)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			log.Debug().Str("func", "*Document.Load").Str("document", d.name).Msg("document not found, using default")
			return d.defaults(), nil
		}
		if errors.Is(err, ErrDocumentUnreadable) {
			log.Warn().Err(err).Str("func", "*Document.Load").Str("document", d.name).Msg("document unreadable, using default")
			return d.defaults(), nil
		}

		var zero T
		return zero, fmt.Errorf("%w %q: %w", ErrLoadingDocument, d.name, err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		log.Warn().Err(err).Str("func", "*Document.Load").Str("document", d.name).Msg("document is not valid JSON, using default")
		return d.defaults(), nil
	}

	return value, nil
}

// Save encodes value with two-space indentation and replaces the stored document.
func (d *Document[T]) Save(ctx context.Context, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrSavingDocument, d.name, err)
	}

	if err := d.backend.Write(ctx, d.name, data); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Document.Save").Str("document", d.name).Msg("error writing document")
		return fmt.Errorf("%w %q: %w", ErrSavingDocument, d.name, err)
	}

	return nil
}

// Update loads the document, applies mutate and saves the result while
// holding the document lock. An error from mutate aborts without saving and
// is returned as is, except errUnchanged which ends the cycle silently.
func (d *Document[T]) Update(ctx context.Context, mutate func(*T) error) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	value, err := d.Load(ctx)
	if err != nil {
		return err
	}

	if err := mutate(&value); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}

	return d.Save(ctx, value)
}

// Locker hands out one mutex per document name.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocker returns an empty Locker.
func NewLocker() *Locker {
	return &Locker{locks: make(map[string]*sync.Mutex)}
}

func (l *Locker) get(name string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[name]
	if !ok {
		lock = new(sync.Mutex)
		l.locks[name] = lock
	}
	return lock
}
