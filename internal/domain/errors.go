package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBuyerInvalid — идентификатор покупателя не парсится в положительное целое.
	ErrBuyerInvalid = errors.New("user_id must be a positive integer")
	// ErrLinesRequired — список позиций отсутствует в запросе или пуст.
	ErrLinesRequired = errors.New("books field is required")
	// ErrLinesMalformed — список позиций не разбирается как список объектов позиций.
	ErrLinesMalformed = errors.New("books payload is malformed")
	// ErrUnknownShops — хотя бы один из запрошенных магазинов отсутствует в каталоге.
	ErrUnknownShops = errors.New("unable to identify all of the shops")
	// ErrQuantityInvalid — количество не парсится в целое либо меньше единицы.
	ErrQuantityInvalid = errors.New("quantity must be at least one")
	// ErrOrderRejected — хранилище отклонило создание заголовка заказа
	// (нарушение целостности, например несуществующий покупатель).
	ErrOrderRejected = errors.New("order header was rejected by storage")
	// ErrOrderCommitFailed — нарушение целостности при вставке позиций или коммите;
	// транзакция откачена целиком.
	ErrOrderCommitFailed = errors.New("order commit failed")

	// ErrUserNotFound возвращается, если покупатель не найден в хранилище.
	ErrUserNotFound = errors.New("user not found")
	// ErrShopNotFound возвращается, если магазин не найден в хранилище.
	ErrShopNotFound = errors.New("shop not found")
	// ErrOrderNotFound возвращается, если заказ не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
)

// BookNotAvailableError указывает конкретную пару (книга, магазин),
// отсутствующую в каталоге магазина.
type BookNotAvailableError struct {
	BookID int64
	ShopID int64
}

func (e *BookNotAvailableError) Error() string {
	return fmt.Sprintf("book with id=%d is not available at the store with id=%d", e.BookID, e.ShopID)
}

// IsRejection сообщает, является ли ошибка отклонением валидации:
// такие отказы детерминированы и не означают проблем с хранилищем.
func IsRejection(err error) bool {
	var notAvailable *BookNotAvailableError
	switch {
	case errors.Is(err, ErrBuyerInvalid),
		errors.Is(err, ErrLinesRequired),
		errors.Is(err, ErrLinesMalformed),
		errors.Is(err, ErrUnknownShops),
		errors.Is(err, ErrQuantityInvalid),
		errors.As(err, &notAvailable):
		return true
	}
	return false
}
