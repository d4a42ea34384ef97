// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
)

// memoryBackend keeps documents in process memory. Nothing survives a restart.
type memoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryBackend returns an empty in-memory [Backend].
func NewMemoryBackend() Backend {
	return &memoryBackend{docs: make(map[string][]byte)}
}

func (b *memoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.docs[name]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return slices.Clone(data), nil
}

func (b *memoryBackend) Write(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.docs[name] = slices.Clone(data)
	return nil
}
