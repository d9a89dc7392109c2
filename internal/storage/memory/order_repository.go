package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository для
// локальной разработки и тестов. Идентификаторы присваиваются
// последовательно, как это делал бы автоинкремент хранилища.
type orderRepositoryInMemory struct {
	mu        sync.RWMutex
	nextOrder int64
	nextItem  int64
	orders    map[int64]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		orders: make(map[int64]domain.Order),
	}
}

// Place создаёт заказ и его позиции одним неделимым шагом под блокировкой.
func (r *orderRepositoryInMemory) Place(_ context.Context, userID int64, regDate time.Time, lines []domain.OrderLine) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextOrder++
	order := domain.Order{
		ID:      r.nextOrder,
		UserID:  userID,
		RegDate: regDate.Truncate(24 * time.Hour),
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		r.nextItem++
		items = append(items, domain.OrderItem{
			ID:       r.nextItem,
			OrderID:  order.ID,
			ShopID:   line.ShopID,
			BookID:   line.BookID,
			Quantity: line.Quantity,
		})
	}
	order.Items = items

	r.orders[order.ID] = order
	return order, nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, id int64) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListByUser возвращает заказы покупателя, отсортированные по дате
// регистрации и идентификатору.
func (r *orderRepositoryInMemory) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.UserID != userID {
			continue
		}
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].RegDate.Equal(result[j].RegDate) {
			return result[i].RegDate.Before(result[j].RegDate)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
