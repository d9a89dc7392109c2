package memory_test

import (
	"context"
	"testing"

	"github.com/MrJuicyBacon/sample-api/internal/storage/memory"
)

func TestCatalogRepository_BooksByShops(t *testing.T) {
	repo := memory.NewCatalogRepository(map[int64][]int64{
		2: {1, 4},
		3: {5},
	})

	result, err := repo.BooksByShops(context.Background(), []int64{2, 3})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 shops, got %d", len(result))
	}
	if _, ok := result[2][4]; !ok {
		t.Fatal("expected book 4 in shop 2 catalog")
	}
	if _, ok := result[3][1]; ok {
		t.Fatal("book 1 must not appear in shop 3 catalog")
	}
}

func TestCatalogRepository_SkipsUnknownShops(t *testing.T) {
	repo := memory.NewCatalogRepository(map[int64][]int64{
		2: {1},
	})

	result, err := repo.BooksByShops(context.Background(), []int64{2, 9})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("unknown shop must be absent from result, got %d entries", len(result))
	}
}

func TestCatalogRepository_SkipsShopsWithEmptyCatalog(t *testing.T) {
	repo := memory.NewCatalogRepository(map[int64][]int64{
		2: {},
	})

	result, err := repo.BooksByShops(context.Background(), []int64{2})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("shop without catalog entries must be absent, got %d entries", len(result))
	}
}
