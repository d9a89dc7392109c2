package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository создаёт PostgreSQL-реализацию CatalogRepository.
func NewCatalogRepository(store *Store) domain.CatalogRepository {
	return &catalogRepository{db: store.DB()}
}

// BooksByShops возвращает ассортимент перечисленных магазинов одним
// запросом. Неизвестные магазины и магазины без книг в результат не
// попадают.
func (r *catalogRepository) BooksByShops(ctx context.Context, shopIDs []int64) (map[int64]map[int64]struct{}, error) {
	result := make(map[int64]map[int64]struct{})
	if len(shopIDs) == 0 {
		return result, nil
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	placeholders := make([]string, 0, len(shopIDs))
	args := make([]any, 0, len(shopIDs))
	for i, id := range shopIDs {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(opCtx, fmt.Sprintf(`
		SELECT shop_id, book_id
		FROM book_shops
		WHERE shop_id IN (%s)
	`, strings.Join(placeholders, ",")), args...)
	if err != nil {
		return nil, fmt.Errorf("select shop catalogs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var shopID, bookID int64
		if err := rows.Scan(&shopID, &bookID); err != nil {
			return nil, fmt.Errorf("scan shop catalog row: %w", err)
		}
		books, ok := result[shopID]
		if !ok {
			books = make(map[int64]struct{})
			result[shopID] = books
		}
		books[bookID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shop catalog rows: %w", err)
	}

	return result, nil
}

var _ domain.CatalogRepository = (*catalogRepository)(nil)
