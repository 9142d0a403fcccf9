package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/semgff/semgff/gff"
)

// Compile-time contract assertion.
var _ Store = (*SQLite)(nil)

// schema is the persistent relational intermediate: one row per feature,
// one row per declared parent edge. rowid preserves insertion order.
const schema = `
CREATE TABLE IF NOT EXISTS feature (
    id     TEXT PRIMARY KEY,
    type   TEXT NOT NULL,
    seqid  TEXT NOT NULL,
    source TEXT NOT NULL DEFAULT '',
    start  INTEGER NOT NULL,
    "end"  INTEGER NOT NULL,
    strand TEXT NOT NULL,
    phase  INTEGER NOT NULL,
    attrs  TEXT NOT NULL DEFAULT '{}'
);
CREATE TABLE IF NOT EXISTS edge (
    child_id  TEXT NOT NULL,
    parent_id TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS edge_parent ON edge(parent_id);
CREATE INDEX IF NOT EXISTS edge_child ON edge(child_id);
`

// SQLite is the persistent feature store backing the two-phase CLI: the db
// command populates it, the rdf command reads it back.
type SQLite struct {
	db       *sql.DB
	strategy MergeStrategy
}

// SQLiteOption configures a SQLite store.
type SQLiteOption func(*SQLite)

// WithSQLiteMergeStrategy sets the duplicate-identifier policy.
func WithSQLiteMergeStrategy(s MergeStrategy) SQLiteOption {
	return func(st *SQLite) { st.strategy = s }
}

// OpenSQLite opens (creating if needed) a feature database at path.
func OpenSQLite(ctx context.Context, path string, opts ...SQLiteOption) (*SQLite, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open feature database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	st := &SQLite{db: db}
	for _, opt := range opts {
		opt(st)
	}
	return st, nil
}

// Insert implements Store.
func (s *SQLite) Insert(ctx context.Context, rec *gff.FeatureRecord) (string, error) {
	stored := *rec

	existing, err := s.Resolve(ctx, stored.ID)
	switch {
	case err == nil:
		if existing.Equal(&stored) {
			return stored.ID, nil
		}
		if s.strategy != MergeCreateUnique {
			return "", fmt.Errorf("insert %q: %w", stored.ID, ErrDuplicateID)
		}
		stored.ID = uniqueID(stored.ID)
	case errors.Is(err, ErrNotFound):
	default:
		return "", err
	}

	attrs, err := json.Marshal(stored.Attributes)
	if err != nil {
		return "", fmt.Errorf("encode attributes of %q: %w", stored.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("insert %q: %w", stored.ID, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO feature (id, type, seqid, source, start, "end", strand, phase, attrs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.Type, stored.SeqID, stored.Source,
		stored.Start, stored.End, string(stored.Strand), stored.Phase, string(attrs))
	if err != nil {
		return "", fmt.Errorf("insert %q: %w", stored.ID, err)
	}
	for _, parent := range stored.Parents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO edge (child_id, parent_id) VALUES (?, ?)`,
			stored.ID, parent); err != nil {
			return "", fmt.Errorf("insert edge %s -> %s: %w", stored.ID, parent, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("insert %q: %w", stored.ID, err)
	}
	return stored.ID, nil
}

// Resolve implements Store.
func (s *SQLite) Resolve(ctx context.Context, id string) (*gff.FeatureRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, type, seqid, source, start, "end", strand, phase, attrs
		 FROM feature WHERE id = ?`, id)
	rec, err := scanFeature(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("resolve %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", id, err)
	}
	parents, err := s.ParentsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Parents = parents
	return rec, nil
}

// ChildrenOf implements Store.
func (s *SQLite) ChildrenOf(ctx context.Context, id string) ([]string, error) {
	return s.edgeColumn(ctx,
		`SELECT child_id FROM edge WHERE parent_id = ? ORDER BY rowid`, id)
}

// ParentsOf implements Store.
func (s *SQLite) ParentsOf(ctx context.Context, id string) ([]string, error) {
	return s.edgeColumn(ctx,
		`SELECT parent_id FROM edge WHERE child_id = ? ORDER BY rowid`, id)
}

func (s *SQLite) edgeColumn(ctx context.Context, query, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query edges of %q: %w", id, err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan edge of %q: %w", id, err)
		}
		ids = append(ids, v)
	}
	return ids, rows.Err()
}

// All implements Store. Parent lists are preloaded so the feature cursor is
// the only open statement during iteration.
func (s *SQLite) All(ctx context.Context) iter.Seq2[*gff.FeatureRecord, error] {
	return func(yield func(*gff.FeatureRecord, error) bool) {
		parents := make(map[string][]string)
		for e, err := range s.Edges(ctx) {
			if err != nil {
				yield(nil, err)
				return
			}
			parents[e.ChildID] = append(parents[e.ChildID], e.ParentID)
		}

		rows, err := s.db.QueryContext(ctx,
			`SELECT id, type, seqid, source, start, "end", strand, phase, attrs
			 FROM feature ORDER BY rowid`)
		if err != nil {
			yield(nil, fmt.Errorf("query features: %w", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			rec, err := scanFeature(rows.Scan)
			if err != nil {
				yield(nil, fmt.Errorf("scan feature: %w", err))
				return
			}
			rec.Parents = parents[rec.ID]
			if !yield(rec, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Edges implements Store.
func (s *SQLite) Edges(ctx context.Context) iter.Seq2[Edge, error] {
	return func(yield func(Edge, error) bool) {
		rows, err := s.db.QueryContext(ctx,
			`SELECT child_id, parent_id FROM edge ORDER BY rowid`)
		if err != nil {
			yield(Edge{}, fmt.Errorf("query edges: %w", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			var e Edge
			if err := rows.Scan(&e.ChildID, &e.ParentID); err != nil {
				yield(Edge{}, fmt.Errorf("scan edge: %w", err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Edge{}, err)
		}
	}
}

// Len implements Store.
func (s *SQLite) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feature`).Scan(&n)
	return n, err
}

// Close implements Store.
func (s *SQLite) Close() error { return s.db.Close() }

func scanFeature(scan func(dest ...any) error) (*gff.FeatureRecord, error) {
	var (
		rec    gff.FeatureRecord
		strand string
		attrs  string
	)
	err := scan(&rec.ID, &rec.Type, &rec.SeqID, &rec.Source,
		&rec.Start, &rec.End, &strand, &rec.Phase, &attrs)
	if err != nil {
		return nil, err
	}
	rec.Strand = gff.Strand(strand)
	rec.Attributes = gff.Attributes{}
	if err := json.Unmarshal([]byte(attrs), &rec.Attributes); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	return &rec, nil
}
