package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

func TestCatalogRepository_PostgresBooksByShops(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedCatalogForIntegrationTest(t, store, map[int64][]int64{
		2: {1, 4},
		3: {5},
	})
	repo := NewCatalogRepository(store)

	catalogs, err := repo.BooksByShops(context.Background(), []int64{2, 3, 9})
	if err != nil {
		t.Fatalf("books by shops: %v", err)
	}

	// неизвестный магазин 9 в результат не входит
	if len(catalogs) != 2 {
		t.Fatalf("expected catalogs for 2 shops, got %d", len(catalogs))
	}
	if _, ok := catalogs[2][1]; !ok {
		t.Fatal("expected book 1 in shop 2 catalog")
	}
	if _, ok := catalogs[2][4]; !ok {
		t.Fatal("expected book 4 in shop 2 catalog")
	}
	if _, ok := catalogs[3][5]; !ok {
		t.Fatal("expected book 5 in shop 3 catalog")
	}
	if _, ok := catalogs[3][1]; ok {
		t.Fatal("book 1 must not be in shop 3 catalog")
	}
}

func TestCatalogRepository_PostgresEmptyInput(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCatalogRepository(store)

	catalogs, err := repo.BooksByShops(context.Background(), nil)
	if err != nil {
		t.Fatalf("books by shops: %v", err)
	}
	if len(catalogs) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(catalogs))
	}
}

func TestUserAndShopRepositories_Postgres(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	userID := seedCatalogForIntegrationTest(t, store, map[int64][]int64{
		2: {1, 4},
	})

	users := NewUserRepository(store)
	user, err := users.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Email != "ivan.petrov@example.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	if _, err := users.Get(context.Background(), userID+1000); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	shops := NewShopRepository(store)
	shop, err := shops.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("get shop: %v", err)
	}
	if shop.Name != "shop-2" || len(shop.Books) != 2 {
		t.Fatalf("unexpected shop payload: %+v", shop)
	}

	if _, err := shops.Get(context.Background(), 77); !errors.Is(err, domain.ErrShopNotFound) {
		t.Fatalf("expected ErrShopNotFound, got %v", err)
	}
}
