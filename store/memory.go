package store

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/google/uuid"

	"github.com/semgff/semgff/gff"
)

// Compile-time contract assertion.
var _ Store = (*Memory)(nil)

// Memory is the in-memory feature store used for single-run conversions
// and tests.
type Memory struct {
	mu       sync.RWMutex
	strategy MergeStrategy

	features map[string]*gff.FeatureRecord
	order    []string
	edges    []Edge
	children map[string][]string
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithMergeStrategy sets the duplicate-identifier policy.
func WithMergeStrategy(s MergeStrategy) MemoryOption {
	return func(m *Memory) { m.strategy = s }
}

// NewMemory returns an empty in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		features: make(map[string]*gff.FeatureRecord),
		children: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Insert implements Store.
func (m *Memory) Insert(_ context.Context, rec *gff.FeatureRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *rec
	if existing, ok := m.features[stored.ID]; ok {
		if existing.Equal(&stored) {
			return stored.ID, nil
		}
		if m.strategy != MergeCreateUnique {
			return "", fmt.Errorf("insert %q: %w", stored.ID, ErrDuplicateID)
		}
		stored.ID = uniqueID(stored.ID)
	}

	m.features[stored.ID] = &stored
	m.order = append(m.order, stored.ID)
	for _, parent := range stored.Parents {
		m.edges = append(m.edges, Edge{ChildID: stored.ID, ParentID: parent})
		m.children[parent] = append(m.children[parent], stored.ID)
	}
	return stored.ID, nil
}

// Resolve implements Store.
func (m *Memory) Resolve(_ context.Context, id string) (*gff.FeatureRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.features[id]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", id, ErrNotFound)
	}
	return rec, nil
}

// ChildrenOf implements Store.
func (m *Memory) ChildrenOf(_ context.Context, id string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.children[id]...), nil
}

// ParentsOf implements Store.
func (m *Memory) ParentsOf(ctx context.Context, id string) ([]string, error) {
	rec, err := m.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), rec.Parents...), nil
}

// All implements Store.
func (m *Memory) All(_ context.Context) iter.Seq2[*gff.FeatureRecord, error] {
	return func(yield func(*gff.FeatureRecord, error) bool) {
		m.mu.RLock()
		order := append([]string(nil), m.order...)
		m.mu.RUnlock()
		for _, id := range order {
			m.mu.RLock()
			rec := m.features[id]
			m.mu.RUnlock()
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Edges implements Store.
func (m *Memory) Edges(_ context.Context) iter.Seq2[Edge, error] {
	return func(yield func(Edge, error) bool) {
		m.mu.RLock()
		edges := append([]Edge(nil), m.edges...)
		m.mu.RUnlock()
		for _, e := range edges {
			if !yield(e, nil) {
				return
			}
		}
	}
}

// Len implements Store.
func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order), nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

// uniqueID mints a fresh identifier for the MergeCreateUnique strategy.
func uniqueID(id string) string {
	return id + "-" + uuid.NewString()[:8]
}
