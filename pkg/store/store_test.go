package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// storeUnderTest runs the shared contract tests against any backend.
func storeUnderTest(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	defer s.Close()

	doc := slide.Slide{
		ID:     "s1",
		Title:  "Cell Biology",
		Blocks: []slide.Block{{ID: "b1", Kind: slide.KindText}},
		Layout: slide.NewLayout(2, 2),
	}
	doc.Layout.Positions["b1"] = grid.Position{Row: 0, Column: 1}
	doc.Layout.Spans["b1"] = grid.Span{Rows: 2, Columns: 1}

	// Missing slide
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}

	// Put then Get round-trips the document
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != doc.Title || len(got.Blocks) != 1 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Layout == nil || got.Layout.Positions["b1"] != (grid.Position{Row: 0, Column: 1}) {
		t.Errorf("round trip lost layout: %+v", got.Layout)
	}
	if got.Layout.SpanOf("b1") != (grid.Span{Rows: 2, Columns: 1}) {
		t.Errorf("round trip lost span: %v", got.Layout.SpanOf("b1"))
	}

	// Put replaces
	doc.Title = "Cell Biology II"
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, _ = s.Get(ctx, "s1")
	if got.Title != "Cell Biology II" {
		t.Errorf("replace lost update: %q", got.Title)
	}

	// List
	other := slide.Slide{ID: "s2"}
	if err := s.Put(ctx, other); err != nil {
		t.Fatalf("Put s2: %v", err)
	}
	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	slices.Sort(ids)
	if !slices.Equal(ids, []string{"s1", "s2"}) {
		t.Errorf("List = %v, want [s1 s2]", ids)
	}

	// Missing ID rejected
	if err := s.Put(ctx, slide.Slide{}); !errors.Is(err, ErrMissingID) {
		t.Errorf("Put without ID = %v, want ErrMissingID", err)
	}

	// Delete, then delete again (no-op)
	if err := s.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "s1"); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeUnderTest(t, s)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	doc := slide.Slide{ID: "s1", Layout: slide.NewLayout(2, 2)}
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Mutating the caller's copy must not affect the stored document.
	doc.Layout.Positions["b1"] = grid.Position{Row: 1, Column: 1}

	got, _ := s.Get(ctx, "s1")
	if len(got.Layout.Positions) != 0 {
		t.Error("store shares state with the caller")
	}

	// Mutating a retrieved copy must not affect the store either.
	got.Layout.Positions["b2"] = grid.Position{}
	again, _ := s.Get(ctx, "s1")
	if len(again.Layout.Positions) != 0 {
		t.Error("retrieved documents share state with the store")
	}
}

func TestFileStoreIgnoresForeignFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.Put(ctx, slide.Slide{ID: "s1"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !slices.Equal(ids, []string{"s1"}) {
		t.Errorf("List = %v, want [s1]", ids)
	}
}
