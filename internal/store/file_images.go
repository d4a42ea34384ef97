// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// fileImageStorage writes uploads to dir and exposes them under publicPrefix.
type fileImageStorage struct {
	dir          string
	publicPrefix string
	now          func() time.Time
}

// NewFileImageStorage returns an [ImageStorage] writing into dir. Saved images
// are addressed as publicPrefix + file name.
func NewFileImageStorage(dir, publicPrefix string) ImageStorage {
	if !strings.HasSuffix(publicPrefix, "/") {
		publicPrefix += "/"
	}
	return &fileImageStorage{
		dir:          dir,
		publicPrefix: publicPrefix,
		now:          time.Now,
	}
}

// Save streams image into {unixMillis}-{random}{ext} and returns its public path.
func (s *fileImageStorage) Save(ctx context.Context, ext string, image io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	name := fmt.Sprintf("%d-%d%s", s.now().UnixMilli(), rand.IntN(1_000_000_000), strings.ToLower(ext))
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if _, err = io.Copy(f, image); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	return s.publicPrefix + name, nil
}

func (s *fileImageStorage) Delete(_ context.Context, publicPath string) error {
	if !strings.HasPrefix(publicPath, s.publicPrefix) {
		return nil
	}

	name := path.Base(strings.TrimPrefix(publicPath, s.publicPrefix))
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting image: %w", err)
	}
	return nil
}
