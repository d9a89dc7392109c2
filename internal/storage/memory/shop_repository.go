package memory

import (
	"context"
	"sync"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

// shopRepositoryInMemory хранит записи магазинов в памяти.
type shopRepositoryInMemory struct {
	mu    sync.RWMutex
	shops map[int64]domain.Shop
}

// NewShopRepository создаёт in-memory репозиторий магазинов
// с заданным начальным набором записей (включая списки книг).
func NewShopRepository(shops ...domain.Shop) domain.ShopRepository {
	indexed := make(map[int64]domain.Shop, len(shops))
	for _, shop := range shops {
		indexed[shop.ID] = shop
	}
	return &shopRepositoryInMemory{shops: indexed}
}

// Get возвращает магазин вместе с его книгами или ErrShopNotFound.
func (r *shopRepositoryInMemory) Get(_ context.Context, id int64) (domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shop, ok := r.shops[id]
	if !ok {
		return domain.Shop{}, domain.ErrShopNotFound
	}
	return shop, nil
}

var _ domain.ShopRepository = (*shopRepositoryInMemory)(nil)
