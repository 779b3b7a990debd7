package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

func testSeed() []Entry {
	return []Entry{
		{Name: "Ceviche", Price: 12},
		{Name: "Trio Marino", Price: 20},
	}
}

func TestLoadSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	s := New(path, testSeed(), nil)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	items := s.Items()
	if len(items) != 2 || items[0].Name != "Ceviche" {
		t.Fatalf("items = %+v", items)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("seed not persisted: %v", err)
	}

	// A fresh store reads the persisted document, not the seed.
	again := New(path, nil, nil)
	if err := again.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again.Items()) != 2 {
		t.Fatalf("reload items = %+v", again.Items())
	}
}

func TestLoadCorruptFileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(path, testSeed(), nil)

	err := s.Load(context.Background())
	if !errors.Is(err, core.ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
	if len(s.Items()) != 0 {
		t.Fatalf("corrupt catalog must load empty, got %+v", s.Items())
	}
}

func TestUpsertValidatesPrice(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "menu.json"), nil, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := s.Upsert(context.Background(), "Ceviche", "-5"); !errors.Is(err, core.ErrInvalidPrice) {
		t.Fatalf("negative price err = %v", err)
	}
	if _, err := s.Upsert(context.Background(), "Ceviche", "doce"); !errors.Is(err, core.ErrInvalidPrice) {
		t.Fatalf("non-numeric price err = %v", err)
	}
	if len(s.Items()) != 0 {
		t.Fatalf("rejected upsert must not write, got %+v", s.Items())
	}

	v, err := s.Upsert(context.Background(), "Ceviche", "12,50")
	if err != nil || v != 12.5 {
		t.Fatalf("upsert = %v, %v", v, err)
	}
	v, err = s.Upsert(context.Background(), "Ceviche", "13")
	if err != nil || v != 13 {
		t.Fatalf("overwrite = %v, %v", v, err)
	}
	if items := s.Items(); len(items) != 1 || items[0].Price != 13 {
		t.Fatalf("items = %+v", items)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "menu.json"), testSeed(), nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Remove(context.Background(), "Pizza"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if err := s.Remove(context.Background(), "Ceviche"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Price("Ceviche"); ok {
		t.Fatalf("removed entry still present")
	}
}

func TestInsertionOrderSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	s := New(path, nil, nil)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	names := []string{"Zarza", "Arroz con Mariscos", "Ceviche", "Bebida"}
	for _, n := range names {
		if _, err := s.Upsert(ctx, n, "10"); err != nil {
			t.Fatalf("upsert %s: %v", n, err)
		}
	}

	again := New(path, nil, nil)
	if err := again.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	items := again.Items()
	if len(items) != len(names) {
		t.Fatalf("items = %+v", items)
	}
	for i, n := range names {
		if items[i].Name != n {
			t.Fatalf("order lost: got %q at %d, want %q", items[i].Name, i, n)
		}
	}
}

func TestPriceLookup(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "menu.json"), testSeed(), nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if p, ok := s.Price("Trio Marino"); !ok || p != 20 {
		t.Fatalf("price = %v, %v", p, ok)
	}
	if _, ok := s.Price("Pizza"); ok {
		t.Fatalf("unexpected hit")
	}
}
