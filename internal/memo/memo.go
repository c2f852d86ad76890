// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memo memoizes the results of pure functions, such as compiled
// layout strings.
//
// Entries are evicted at random once a table grows past its limit. Layouts
// are usually a handful of constants, so a table rarely evicts anything.
package memo

import "sync"

// DefaultLimit is the number of entries a Table keeps if its Limit is zero.
const DefaultLimit = 256

// Table maps keys to memoized values.
//
// Its zero value is an empty table ready to use. It is safe for concurrent
// use.
type Table[K comparable, V any] struct {
	// Limit is the maximum number of entries. If it is zero, DefaultLimit is
	// used. Limit must not be changed while the Table is in use.
	Limit int

	mu      sync.RWMutex
	entries map[K]V
}

// Load returns the value memoized for k. If there is none, it calls compute
// and memoizes the result.
//
// compute is called without holding any locks, so concurrent calls to Load
// with the same key may compute the value more than once. Only one of the
// results is kept and returned to all callers.
func (t *Table[K, V]) Load(k K, compute func(K) V) V {
	t.mu.RLock()
	v, ok := t.entries[k]
	t.mu.RUnlock()
	if ok {
		return v
	}

	nv := compute(k)

	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.entries[k]; ok {
		return v
	}
	if t.entries == nil {
		t.entries = make(map[K]V)
	}
	// Map iteration order is random, which makes this a random
	// replacement policy.
	for old := range t.entries {
		if len(t.entries) < t.limit() {
			break
		}
		delete(t.entries, old)
	}
	t.entries[k] = nv
	return nv
}

func (t *Table[K, V]) limit() int {
	if t.Limit <= 0 {
		return DefaultLimit
	}
	return t.Limit
}

// Len returns the number of memoized entries.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Forget removes the entry for k, if any.
func (t *Table[K, V]) Forget(k K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, k)
}

// Reset removes all entries.
func (t *Table[K, V]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.entries)
}
