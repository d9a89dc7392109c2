package domain

import (
	"context"
	"time"
)

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Place атомарно создаёт заказ и все его позиции. Возвращает созданный заказ
	// с присвоенными идентификаторами. При нарушении целостности на этапе
	// заголовка возвращает ErrOrderRejected, на этапе позиций или коммита —
	// ErrOrderCommitFailed; частичных записей не остаётся.
	Place(ctx context.Context, userID int64, regDate time.Time, lines []OrderLine) (Order, error)
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id int64) (Order, error)
	// ListByUser возвращает заказы покупателя вместе с позициями,
	// отсортированные по дате регистрации.
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
}

// CatalogRepository предоставляет доступ к связке магазин↔книга.
type CatalogRepository interface {
	// BooksByShops возвращает для каждого найденного магазина множество
	// идентификаторов предлагаемых книг. Магазины без единой записи
	// в каталоге в результат не попадают.
	BooksByShops(ctx context.Context, shopIDs []int64) (map[int64]map[int64]struct{}, error)
}

// UserRepository описывает чтение записей покупателей.
type UserRepository interface {
	// Get возвращает покупателя или ErrUserNotFound, если его нет.
	Get(ctx context.Context, id int64) (User, error)
}

// ShopRepository описывает чтение записей магазинов.
type ShopRepository interface {
	// Get возвращает магазин вместе со списком его книг
	// или ErrShopNotFound, если магазина нет.
	Get(ctx context.Context, id int64) (Shop, error)
}
