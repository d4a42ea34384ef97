// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileBackend keeps every document in <dir>/<name>.json.
type fileBackend struct {
	dir string
}

// NewFileBackend returns a [Backend] writing JSON files under dir. The
// directory is created on demand before every read and write.
func NewFileBackend(dir string) Backend {
	return &fileBackend{dir: dir}
}

func (b *fileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Read returns the file content.
func (b *fileBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}

	data, err := os.ReadFile(b.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}

	return data, nil
}

// Write replaces the file through a temp file renamed over the old one, so
// readers see either the previous or the new document, never a torn one.
func (b *fileBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(b.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err = os.Rename(tmpName, b.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing document file: %w", err)
	}

	return nil
}
