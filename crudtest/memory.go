// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package crudtest provides executors for testing code built on icrud.
//
// None of them is a storage engine: [Memory] keeps documents in a map for
// the lifetime of a test, [Recorder] logs the requests it forwards,
// [Echo] answers every fetch with the identifier it was asked for, and
// [FailOn] injects an error for one operation kind.
package crudtest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"code.hybscloud.com/icrud"
)

// ErrNotFound is returned by [Memory] for an identifier it does not hold.
var ErrNotFound = errors.New("crudtest: document not found")

// Memory is a map-backed executor. It is safe for concurrent use.
// GetAll returns documents in insertion order.
type Memory[I comparable, D any] struct {
	mu     sync.Mutex
	nextID func() I
	docs   map[I]D
	order  []I
}

var _ icrud.Executor[string, int] = (*Memory[string, int])(nil)

// NewMemory returns an empty Memory that assigns identifiers with nextID.
func NewMemory[I comparable, D any](nextID func() I) *Memory[I, D] {
	return &Memory[I, D]{nextID: nextID, docs: make(map[I]D)}
}

// NewUUIDMemory returns an empty Memory keyed by random UUIDs.
func NewUUIDMemory[D any]() *Memory[uuid.UUID, D] {
	return NewMemory[uuid.UUID, D](uuid.New)
}

// Seed stores doc at id without going through Create.
func (m *Memory[I, D]) Seed(id I, doc D) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(id, doc)
}

// Snapshot returns a copy of the stored documents.
func (m *Memory[I, D]) Snapshot() map[I]D {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[I]D, len(m.docs))
	for id, doc := range m.docs {
		out[id] = doc
	}
	return out
}

func (m *Memory[I, D]) GetByID(ctx context.Context, id I) (D, error) {
	if err := ctx.Err(); err != nil {
		var zero D
		return zero, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return doc, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return doc, nil
}

func (m *Memory[I, D]) GetAll(ctx context.Context) ([]D, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := make([]D, 0, len(m.order))
	for _, id := range m.order {
		docs = append(docs, m.docs[id])
	}
	return docs, nil
}

// Update stores doc at id, inserting it if id is new.
func (m *Memory[I, D]) Update(ctx context.Context, id I, doc D) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(id, doc)
	return nil
}

func (m *Memory[I, D]) Create(ctx context.Context, doc D) (I, error) {
	if err := ctx.Err(); err != nil {
		var zero I
		return zero, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID()
	if _, dup := m.docs[id]; dup {
		var zero I
		return zero, fmt.Errorf("crudtest: identifier %v already assigned", id)
	}
	m.put(id, doc)
	return id, nil
}

func (m *Memory[I, D]) put(id I, doc D) {
	if _, ok := m.docs[id]; !ok {
		m.order = append(m.order, id)
	}
	m.docs[id] = doc
}

// Counter returns an identifier generator yielding 1, 2, 3, ...
func Counter() func() int {
	var n int
	var mu sync.Mutex
	return func() int {
		mu.Lock()
		defer mu.Unlock()
		n++
		return n
	}
}
