package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/semgff/semgff/gff"
)

// newStores builds one of each implementation so the contract tests run
// against both.
func newStores(t *testing.T, opts ...MergeStrategy) map[string]Store {
	t.Helper()
	strategy := MergeError
	if len(opts) > 0 {
		strategy = opts[0]
	}
	ctx := context.Background()
	sqlite, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "features.db"),
		WithSQLiteMergeStrategy(strategy))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"memory": NewMemory(WithMergeStrategy(strategy)),
		"sqlite": sqlite,
	}
}

func record(id, typ string, parents ...string) *gff.FeatureRecord {
	return &gff.FeatureRecord{
		ID:         id,
		Type:       typ,
		SeqID:      "chr1",
		Source:     "test",
		Start:      100,
		End:        200,
		Strand:     gff.StrandForward,
		Phase:      gff.NoPhase,
		Parents:    parents,
		Attributes: gff.Attributes{},
	}
}

func TestInsertResolveRoundTrip(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := record("gene001", "gene")
			want.Attributes = gff.Attributes{"Name": {"Gene One", "G1"}}
			if _, err := st.Insert(ctx, want); err != nil {
				t.Fatalf("Insert: %v", err)
			}

			got, err := st.Resolve(ctx, "gene001")
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
			if got.Start != 100 || got.End != 200 || got.Strand != gff.StrandForward {
				t.Errorf("coordinate drift: %+v", got)
			}
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Resolve(context.Background(), "missing")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("got %v, want ErrNotFound", err)
			}
		})
	}
}

func TestInsertIdempotent(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := st.Insert(ctx, record("gene001", "gene")); err != nil {
				t.Fatalf("first Insert: %v", err)
			}
			if _, err := st.Insert(ctx, record("gene001", "gene")); err != nil {
				t.Fatalf("identical re-insert must be a no-op, got %v", err)
			}
			n, err := st.Len(ctx)
			if err != nil {
				t.Fatalf("Len: %v", err)
			}
			if n != 1 {
				t.Errorf("got %d records, want 1", n)
			}
		})
	}
}

func TestInsertConflict(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := st.Insert(ctx, record("gene001", "gene")); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			conflicting := record("gene001", "gene")
			conflicting.End = 999
			_, err := st.Insert(ctx, conflicting)
			if !errors.Is(err, ErrDuplicateID) {
				t.Errorf("got %v, want ErrDuplicateID", err)
			}
		})
	}
}

func TestInsertCreateUnique(t *testing.T) {
	for name, st := range newStores(t, MergeCreateUnique) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := st.Insert(ctx, record("gene001", "gene")); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			conflicting := record("gene001", "gene")
			conflicting.End = 999
			id, err := st.Insert(ctx, conflicting)
			if err != nil {
				t.Fatalf("Insert with MergeCreateUnique: %v", err)
			}
			if id == "gene001" || !strings.HasPrefix(id, "gene001-") {
				t.Errorf("minted id %q does not extend the original", id)
			}
			if _, err := st.Resolve(ctx, id); err != nil {
				t.Errorf("minted id does not resolve: %v", err)
			}
		})
	}
}

func TestChildrenOfInsertionOrder(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			// Children declared before their parent: order must not assume
			// parents come first.
			for _, rec := range []*gff.FeatureRecord{
				record("mrna002", "mRNA", "gene001"),
				record("mrna001", "mRNA", "gene001"),
				record("gene001", "gene"),
			} {
				if _, err := st.Insert(ctx, rec); err != nil {
					t.Fatalf("Insert %s: %v", rec.ID, err)
				}
			}
			children, err := st.ChildrenOf(ctx, "gene001")
			if err != nil {
				t.Fatalf("ChildrenOf: %v", err)
			}
			if len(children) != 2 || children[0] != "mrna002" || children[1] != "mrna001" {
				t.Errorf("got %v, want [mrna002 mrna001] (first-seen order)", children)
			}
		})
	}
}

func TestMultipleParents(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, rec := range []*gff.FeatureRecord{
				record("mrna001", "mRNA"),
				record("mrna002", "mRNA"),
				record("exon001", "exon", "mrna001", "mrna002"),
			} {
				if _, err := st.Insert(ctx, rec); err != nil {
					t.Fatalf("Insert %s: %v", rec.ID, err)
				}
			}
			parents, err := st.ParentsOf(ctx, "exon001")
			if err != nil {
				t.Fatalf("ParentsOf: %v", err)
			}
			if len(parents) != 2 || parents[0] != "mrna001" || parents[1] != "mrna002" {
				t.Errorf("got %v, want [mrna001 mrna002]", parents)
			}
		})
	}
}

func TestAllRestartable(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ids := []string{"gene001", "gene002", "gene003"}
			for _, id := range ids {
				if _, err := st.Insert(ctx, record(id, "gene")); err != nil {
					t.Fatalf("Insert: %v", err)
				}
			}
			for pass := 0; pass < 2; pass++ {
				var got []string
				for rec, err := range st.All(ctx) {
					if err != nil {
						t.Fatalf("All (pass %d): %v", pass, err)
					}
					got = append(got, rec.ID)
				}
				if len(got) != len(ids) {
					t.Fatalf("pass %d: got %v, want %v", pass, got, ids)
				}
				for i := range ids {
					if got[i] != ids[i] {
						t.Errorf("pass %d: insertion order lost: got %v", pass, got)
					}
				}
			}
		})
	}
}

func TestEdges(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, rec := range []*gff.FeatureRecord{
				record("gene001", "gene"),
				record("mrna001", "mRNA", "gene001"),
				record("cds001", "CDS", "mrna999"),
			} {
				if _, err := st.Insert(ctx, rec); err != nil {
					t.Fatalf("Insert: %v", err)
				}
			}
			var got []Edge
			for e, err := range st.Edges(ctx) {
				if err != nil {
					t.Fatalf("Edges: %v", err)
				}
				got = append(got, e)
			}
			want := []Edge{
				{ChildID: "mrna001", ParentID: "gene001"},
				{ChildID: "cds001", ParentID: "mrna999"},
			}
			if len(got) != len(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("edge %d: got %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}
