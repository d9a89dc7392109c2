package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
	"github.com/MrJuicyBacon/sample-api/internal/storage/memory"
	"github.com/MrJuicyBacon/sample-api/internal/storage/postgres"
)

// Dependencies содержит хранилища приложения. При пустом DSN собирается
// in-memory вариант с демо-каталогом, пригодный для разработки и тестов.
type Dependencies struct {
	Orders  domain.OrderRepository
	Catalog domain.CatalogRepository
	Users   domain.UserRepository
	Shops   domain.ShopRepository
	Outbox  domain.OutboxRepository

	// Store не nil только при работе поверх PostgreSQL.
	Store  *postgres.Store
	Logger *log.Entry
}

// NewDependencies создаёт и инициализирует зависимости приложения.
func NewDependencies(ctx context.Context, postgresDSN string, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	if postgresDSN == "" {
		logger.Info("postgres DSN is not configured, using in-memory storage")
		return newMemoryDependencies(logger), nil
	}

	store, err := postgres.Open(ctx, postgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ensure postgres schema: %w", err)
	}
	logger.Info("postgres storage initialized")

	return &Dependencies{
		Orders:  postgres.NewOrderRepository(store),
		Catalog: postgres.NewCatalogRepository(store),
		Users:   postgres.NewUserRepository(store),
		Shops:   postgres.NewShopRepository(store),
		Outbox:  postgres.NewOutboxRepository(store),
		Store:   store,
		Logger:  logger,
	}, nil
}

// Close освобождает ресурсы зависимостей.
func (d *Dependencies) Close() error {
	if d.Store != nil {
		return d.Store.Close()
	}
	return nil
}

// newMemoryDependencies собирает in-memory хранилища с небольшим
// демо-каталогом: два магазина, пересекающийся ассортимент, один покупатель.
func newMemoryDependencies(logger *log.Entry) *Dependencies {
	books := []domain.Book{
		{ID: 1, Name: "The Master and Margarita", Author: "Mikhail Bulgakov", ISBN: "978-0-1411-8014-4"},
		{ID: 2, Name: "Crime and Punishment", Author: "Fyodor Dostoevsky", ISBN: "978-0-1404-4913-6"},
		{ID: 3, Name: "Dead Souls", Author: "Nikolai Gogol", ISBN: "978-0-3000-6011-3"},
	}

	return &Dependencies{
		Orders: memory.NewOrderRepository(),
		Catalog: memory.NewCatalogRepository(map[int64][]int64{
			1: {1, 2},
			2: {2, 3},
		}),
		Users: memory.NewUserRepository(domain.User{
			ID: 1, Name: "Ivan", Surname: "Petrov", FathersName: "Sergeevich",
			Email: "ivan.petrov@example.com",
		}),
		Shops: memory.NewShopRepository(
			domain.Shop{
				ID: 1, Name: "Central Bookstore", Address: "Nevsky pr. 28",
				PostCode: "191186", Books: []domain.Book{books[0], books[1]},
			},
			domain.Shop{
				ID: 2, Name: "University Books", Address: "Universitetskaya nab. 7",
				PostCode: "199034", Books: []domain.Book{books[1], books[2]},
			},
		),
		Outbox: memory.NewOutboxRepository(),
		Logger: logger,
	}
}
