package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewDependencies_MemoryMode(t *testing.T) {
	deps, err := NewDependencies(context.Background(), "", log.WithField("component", "test"))
	if err != nil {
		t.Fatalf("new dependencies: %v", err)
	}
	t.Cleanup(func() {
		if err := deps.Close(); err != nil {
			t.Errorf("close dependencies: %v", err)
		}
	})

	if deps.Store != nil {
		t.Error("expected nil store in memory mode")
	}
	if deps.Orders == nil || deps.Catalog == nil || deps.Users == nil || deps.Shops == nil || deps.Outbox == nil {
		t.Fatalf("expected all repositories to be initialized: %+v", deps)
	}

	// демо-каталог согласован между shop-репозиторием и membership
	shop, err := deps.Shops.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get seeded shop: %v", err)
	}
	catalogs, err := deps.Catalog.BooksByShops(context.Background(), []int64{1})
	if err != nil {
		t.Fatalf("books by shops: %v", err)
	}
	if len(catalogs[1]) != len(shop.Books) {
		t.Fatalf("seed mismatch: membership has %d books, shop record has %d", len(catalogs[1]), len(shop.Books))
	}
	for _, book := range shop.Books {
		if _, ok := catalogs[1][book.ID]; !ok {
			t.Errorf("book %d listed on shop record but missing from membership", book.ID)
		}
	}

	user, err := deps.Users.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get seeded user: %v", err)
	}
	if user.Email == "" {
		t.Error("expected seeded user email")
	}
}
