package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Place записывает заказ вместе с позициями одной транзакцией.
// Нарушение целостности при вставке шапки (несуществующий покупатель)
// трактуется как отклонение заказа; любой сбой после шапки — как сбой
// фиксации.
func (r *orderRepository) Place(ctx context.Context, userID int64, regDate time.Time, lines []domain.OrderLine) (domain.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(opCtx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var orderID int64
	err = tx.QueryRowContext(opCtx, `
		INSERT INTO orders (reg_date, user_id)
		VALUES ($1, $2)
		RETURNING id
	`, regDate, userID).Scan(&orderID)
	if err != nil {
		if isIntegrityViolation(err) {
			err = fmt.Errorf("%w: insert order header: %v", domain.ErrOrderRejected, err)
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("insert order header: %w", err)
	}

	order := domain.Order{
		ID:      orderID,
		RegDate: regDate,
		UserID:  userID,
		Items:   make([]domain.OrderItem, 0, len(lines)),
	}

	for _, line := range lines {
		var itemID int64
		if err = tx.QueryRowContext(opCtx, `
			INSERT INTO order_items (order_id, book_id, shop_id, quantity)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, orderID, line.BookID, line.ShopID, line.Quantity).Scan(&itemID); err != nil {
			err = fmt.Errorf("%w: insert order item: %v", domain.ErrOrderCommitFailed, err)
			return domain.Order{}, err
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:       itemID,
			OrderID:  orderID,
			BookID:   line.BookID,
			ShopID:   line.ShopID,
			Quantity: line.Quantity,
		})
	}

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("%w: commit order: %v", domain.ErrOrderCommitFailed, err)
		return domain.Order{}, err
	}

	return order, nil
}

func (r *orderRepository) Get(ctx context.Context, id int64) (domain.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var order domain.Order
	err := r.db.QueryRowContext(opCtx, `
		SELECT id, reg_date, user_id
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.RegDate, &order.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	items, err := r.loadItems(opCtx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(opCtx, `
		SELECT id, reg_date, user_id
		FROM orders
		WHERE user_id = $1
		ORDER BY reg_date ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.RegDate, &order.UserID); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		items, err := r.loadItems(opCtx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, book_id, shop_id, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.BookID, &item.ShopID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

// isIntegrityViolation распознаёт ошибки класса 23 (integrity constraint
// violation): нарушение внешнего ключа, уникальности, CHECK и NOT NULL.
func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)
