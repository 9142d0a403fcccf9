// Package store holds the relational feature model built during ingestion:
// features keyed by identifier plus their declared parent-child edges.
//
// Records and edges are only ever added, never deleted; the integrity
// checker and the graph builder read the closed-world view after all input
// has been ingested. Iteration order is insertion order everywhere, which
// keeps downstream graph construction deterministic.
package store

import (
	"context"
	"iter"

	"github.com/semgff/semgff/gff"
)

// Edge is one declared parent-child relation, directed child to parent.
type Edge struct {
	ChildID  string
	ParentID string
}

// MergeStrategy controls what Insert does when an identifier is re-used
// with different content.
type MergeStrategy int

const (
	// MergeError rejects the conflicting record with ErrDuplicateID.
	MergeError MergeStrategy = iota

	// MergeCreateUnique keeps the conflicting record under a freshly
	// minted unique identifier instead of failing.
	MergeCreateUnique
)

// Store is the feature store contract shared by the in-memory and SQLite
// implementations.
type Store interface {
	// Insert adds a record and its declared parent edges. Re-inserting
	// identical content is a no-op; conflicting content is resolved per
	// the merge strategy. The identifier the record was stored under is
	// returned.
	Insert(ctx context.Context, rec *gff.FeatureRecord) (string, error)

	// Resolve returns the record stored under id, or ErrNotFound.
	Resolve(ctx context.Context, id string) (*gff.FeatureRecord, error)

	// ChildrenOf returns the identifiers declaring id as parent, in
	// first-seen insertion order.
	ChildrenOf(ctx context.Context, id string) ([]string, error)

	// ParentsOf returns the declared parent identifiers of id, in
	// declaration order.
	ParentsOf(ctx context.Context, id string) ([]string, error)

	// All iterates every stored record in insertion order. The sequence
	// is single-pass but restartable: each range starts over.
	All(ctx context.Context) iter.Seq2[*gff.FeatureRecord, error]

	// Edges iterates every declared parent-child edge in insertion order.
	Edges(ctx context.Context) iter.Seq2[Edge, error]

	// Len returns the number of stored records.
	Len(ctx context.Context) (int, error)

	// Close releases the underlying resources.
	Close() error
}
