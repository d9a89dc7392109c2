package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

func TestOrderRepository_PostgresPlaceGetAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	userID := seedCatalogForIntegrationTest(t, store, map[int64][]int64{
		2: {1, 4},
		3: {5},
	})
	repo := NewOrderRepository(store)

	ctx := context.Background()
	regDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	placed, err := repo.Place(ctx, userID, regDate, []domain.OrderLine{
		{BookID: 1, ShopID: 2, Quantity: 3},
		{BookID: 5, ShopID: 3, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if placed.ID == 0 {
		t.Fatal("expected generated order id")
	}
	if len(placed.Items) != 2 {
		t.Fatalf("unexpected items count: %d", len(placed.Items))
	}

	got, err := repo.Get(ctx, placed.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.UserID != userID || !got.RegDate.Equal(regDate) {
		t.Fatalf("unexpected order payload: %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0].Quantity != 3 {
		t.Fatalf("unexpected order items: %+v", got.Items)
	}

	second, err := repo.Place(ctx, userID, regDate.AddDate(0, 0, 1), []domain.OrderLine{
		{BookID: 4, ShopID: 2, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("place second order: %v", err)
	}

	listed, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(listed))
	}
	if listed[0].ID != placed.ID || listed[1].ID != second.ID {
		t.Fatalf("unexpected list order: %+v", listed)
	}
}

func TestOrderRepository_PostgresRejectsUnknownBuyer(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedCatalogForIntegrationTest(t, store, map[int64][]int64{
		2: {1},
	})
	repo := NewOrderRepository(store)

	_, err := repo.Place(context.Background(), 99999, time.Now().UTC(), []domain.OrderLine{
		{BookID: 1, ShopID: 2, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrOrderRejected) {
		t.Fatalf("expected ErrOrderRejected for unknown buyer, got %v", err)
	}
}

func TestOrderRepository_PostgresCommitFailureOnBadItem(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	userID := seedCatalogForIntegrationTest(t, store, map[int64][]int64{
		2: {1},
	})
	repo := NewOrderRepository(store)

	ctx := context.Background()

	// книга 1 не продаётся в магазине 3: внешний ключ на book_shops
	// срабатывает уже после вставки шапки
	_, err := repo.Place(ctx, userID, time.Now().UTC(), []domain.OrderLine{
		{BookID: 1, ShopID: 3, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrOrderCommitFailed) {
		t.Fatalf("expected ErrOrderCommitFailed for bad item, got %v", err)
	}

	// транзакция откатилась целиком, шапка не осталась
	listed, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no orders after rollback, got %d", len(listed))
	}
}

func TestOrderRepository_PostgresGetNotFound(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	if _, err := repo.Get(context.Background(), 424242); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestIsIntegrityViolation(t *testing.T) {
	if !isIntegrityViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("expected integrity violation for foreign key code 23503")
	}
	if !isIntegrityViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected integrity violation for unique code 23505")
	}
	if isIntegrityViolation(&pgconn.PgError{Code: "22001"}) {
		t.Fatal("unexpected integrity violation for data exception code")
	}
	if isIntegrityViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be integrity violation")
	}
}
