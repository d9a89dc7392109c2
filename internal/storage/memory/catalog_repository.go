package memory

import (
	"context"
	"sync"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

// catalogRepositoryInMemory хранит связку магазин↔книга в памяти.
type catalogRepositoryInMemory struct {
	mu         sync.RWMutex
	membership map[int64]map[int64]struct{}
}

// NewCatalogRepository создаёт in-memory каталог из карты
// "магазин → предлагаемые книги".
func NewCatalogRepository(membership map[int64][]int64) domain.CatalogRepository {
	indexed := make(map[int64]map[int64]struct{}, len(membership))
	for shopID, bookIDs := range membership {
		books := make(map[int64]struct{}, len(bookIDs))
		for _, bookID := range bookIDs {
			books[bookID] = struct{}{}
		}
		indexed[shopID] = books
	}
	return &catalogRepositoryInMemory{membership: indexed}
}

// BooksByShops возвращает множества книг для найденных магазинов.
// Магазины без единой записи в каталоге не включаются в результат.
func (r *catalogRepositoryInMemory) BooksByShops(_ context.Context, shopIDs []int64) (map[int64]map[int64]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[int64]map[int64]struct{}, len(shopIDs))
	for _, shopID := range shopIDs {
		books, ok := r.membership[shopID]
		if !ok || len(books) == 0 {
			continue
		}
		copied := make(map[int64]struct{}, len(books))
		for bookID := range books {
			copied[bookID] = struct{}{}
		}
		result[shopID] = copied
	}

	return result, nil
}

var _ domain.CatalogRepository = (*catalogRepositoryInMemory)(nil)
