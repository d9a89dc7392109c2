package kafka

import "time"

// EventType определяет тип события заказа.
type EventType string

const (
	// EventTypeOrderPlaced — заказ успешно размещён и закоммичен в хранилище.
	EventTypeOrderPlaced EventType = "order.placed"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "bookshop.order.events"
	TopicDeadLetterQueue = "bookshop.dlq" // Dead Letter Queue для failed messages
)

// AggregateTypeOrder — тип агрегата для outbox-сообщений заказа.
const AggregateTypeOrder = "order"

// PlacedItem — одна агрегированная позиция в событии размещения.
type PlacedItem struct {
	ShopID   int64 `json:"shop_id"`
	BookID   int64 `json:"book_id"`
	Quantity int64 `json:"quantity"`
}

// OrderPlacedEvent публикуется после успешного коммита заказа.
type OrderPlacedEvent struct {
	EventType EventType    `json:"event_type"`
	OrderID   int64        `json:"order_id"`
	UserID    int64        `json:"user_id"`
	RegDate   string       `json:"reg_date"`
	Items     []PlacedItem `json:"items"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewOrderPlacedEvent создаёт событие размещения заказа.
func NewOrderPlacedEvent(orderID, userID int64, regDate time.Time, items []PlacedItem) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventType: EventTypeOrderPlaced,
		OrderID:   orderID,
		UserID:    userID,
		RegDate:   regDate.Format("2006-01-02"),
		Items:     items,
		Timestamp: time.Now().UTC(),
	}
}
