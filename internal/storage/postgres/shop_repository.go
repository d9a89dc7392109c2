package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

type shopRepository struct {
	db *sql.DB
}

// NewShopRepository создаёт PostgreSQL-реализацию ShopRepository.
func NewShopRepository(store *Store) domain.ShopRepository {
	return &shopRepository{db: store.DB()}
}

// Get возвращает магазин вместе со списком доступных в нём книг.
func (r *shopRepository) Get(ctx context.Context, id int64) (domain.Shop, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var shop domain.Shop
	err := r.db.QueryRowContext(opCtx, `
		SELECT id, name, address, post_code
		FROM shops
		WHERE id = $1
	`, id).Scan(&shop.ID, &shop.Name, &shop.Address, &shop.PostCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Shop{}, domain.ErrShopNotFound
		}
		return domain.Shop{}, fmt.Errorf("select shop: %w", err)
	}

	rows, err := r.db.QueryContext(opCtx, `
		SELECT b.id, b.name, b.author, b.isbn
		FROM books b
		JOIN book_shops bs ON bs.book_id = b.id
		WHERE bs.shop_id = $1
		ORDER BY b.id ASC
	`, id)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("select shop books: %w", err)
	}
	defer rows.Close()

	shop.Books = make([]domain.Book, 0)
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(&book.ID, &book.Name, &book.Author, &book.ISBN); err != nil {
			return domain.Shop{}, fmt.Errorf("scan shop book: %w", err)
		}
		shop.Books = append(shop.Books, book)
	}
	if err := rows.Err(); err != nil {
		return domain.Shop{}, fmt.Errorf("iterate shop books: %w", err)
	}

	return shop, nil
}

var _ domain.ShopRepository = (*shopRepository)(nil)
