package domain

import "time"

// OrderLine — одна агрегированная позиция размещаемого заказа:
// пара (магазин, книга) и суммарное количество.
type OrderLine struct {
	ShopID   int64
	BookID   int64
	Quantity int64
}

// OrderItem представляет сохранённую позицию заказа.
// Внутри одного заказа пара (shop_id, book_id) уникальна.
type OrderItem struct {
	ID       int64
	OrderID  int64
	ShopID   int64
	BookID   int64
	Quantity int64
}

// Order агрегирует заголовок заказа и его позиции.
// Заказ создаётся ровно один раз и после этого не изменяется.
type Order struct {
	ID      int64
	UserID  int64
	RegDate time.Time
	Items   []OrderItem
}

// AggregateLines сворачивает дубликаты по ключу (магазин, книга),
// суммируя количества. Порядок первого появления пары сохраняется.
func AggregateLines(lines []OrderLine) []OrderLine {
	type key struct {
		shop int64
		book int64
	}

	index := make(map[key]int, len(lines))
	result := make([]OrderLine, 0, len(lines))

	for _, line := range lines {
		k := key{shop: line.ShopID, book: line.BookID}
		if pos, ok := index[k]; ok {
			result[pos].Quantity += line.Quantity
			continue
		}
		index[k] = len(result)
		result = append(result, line)
	}

	return result
}
