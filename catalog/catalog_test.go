package catalog

import (
	"context"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	if err := Load(context.Background(), nil, "../data/products.json"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	products := All()
	if len(products) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	seen := map[string]bool{}
	for _, p := range products {
		if seen[p.Name] {
			t.Fatalf("duplicate product name %q", p.Name)
		}
		seen[p.Name] = true
		if p.CurrentPrice <= 0 || p.HistoricalPriceAvg <= 0 {
			t.Fatalf("product %q has non-positive price fields", p.Name)
		}
	}
}

func TestGet(t *testing.T) {
	if err := Load(context.Background(), nil, "../data/products.json"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p, ok := Get("Tata Salt")
	if !ok {
		t.Fatal("expected to find Tata Salt")
	}
	if p.Category != "Groceries" {
		t.Fatalf("Tata Salt category = %q; want Groceries", p.Category)
	}

	if _, ok := Get("No Such Product"); ok {
		t.Fatal("expected lookup miss for unknown product")
	}
}

func TestCategoriesSorted(t *testing.T) {
	if err := Load(context.Background(), nil, "../data/products.json"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	categories := Categories()
	if len(categories) == 0 {
		t.Fatal("expected categories")
	}
	for i := 1; i < len(categories); i++ {
		if categories[i-1] >= categories[i] {
			t.Fatalf("categories not sorted or not distinct: %v", categories)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(context.Background(), nil, "testdata/does-not-exist.json"); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
