package placement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
	"github.com/MrJuicyBacon/sample-api/internal/messaging/kafka"
	"github.com/MrJuicyBacon/sample-api/internal/metrics"
)

// Confirmation возвращается вызывающему при успешном размещении заказа.
type Confirmation struct {
	OrderID int64
}

// Service реализует конвейер размещения заказа: разбор сырой отправки,
// валидация против каталога, агрегация дубликатов и атомарный коммит.
// Единственное чтение каталога выполняется одним запросом; до успешной
// валидации никаких записей не происходит.
type Service struct {
	catalog domain.CatalogRepository
	orders  domain.OrderRepository
	outbox  domain.OutboxRepository
	logger  *log.Entry
	metrics *metrics.PlacementMetrics
	now     func() time.Time
}

// NewService конструирует сервис размещения.
// Outbox-репозиторий опционален: при nil события order.placed не создаются.
func NewService(
	catalog domain.CatalogRepository,
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "placement")
	}
	return &Service{
		catalog: catalog,
		orders:  orders,
		outbox:  outbox,
		logger:  logger,
		metrics: metrics.NewPlacementMetrics(),
		now:     time.Now,
	}
}

// PlaceOrder проводит одно размещение от сырой отправки до коммита.
// Ошибки валидации детерминированы и возвращаются до каких-либо записей;
// ошибка хранилища означает, что транзакция откачена целиком.
func (s *Service) PlaceOrder(ctx context.Context, sub Submission) (Confirmation, error) {
	start := time.Now()
	s.metrics.RecordPlacementStarted()

	userID, err := sub.buyerID()
	if err != nil {
		return Confirmation{}, s.reject(err)
	}

	requested, err := sub.lines()
	if err != nil {
		return Confirmation{}, s.reject(err)
	}

	shopIDs := distinctShops(requested)
	catalog, err := s.catalog.BooksByShops(ctx, shopIDs)
	if err != nil {
		s.metrics.RecordPlacementFailed()
		return Confirmation{}, fmt.Errorf("resolve shop catalogs: %w", err)
	}
	// Несовпадение количества означает, что хотя бы один магазин неизвестен
	// либо не имеет ни одной записи в каталоге.
	if len(catalog) != len(shopIDs) {
		return Confirmation{}, s.reject(domain.ErrUnknownShops)
	}

	lines := make([]domain.OrderLine, 0, len(requested))
	for _, line := range requested {
		qty, err := coerceInt(line.quantity)
		if err != nil || qty < 1 {
			return Confirmation{}, s.reject(domain.ErrQuantityInvalid)
		}
		if _, ok := catalog[line.ShopID][line.BookID]; !ok {
			return Confirmation{}, s.reject(&domain.BookNotAvailableError{
				BookID: line.BookID,
				ShopID: line.ShopID,
			})
		}
		lines = append(lines, domain.OrderLine{
			ShopID:   line.ShopID,
			BookID:   line.BookID,
			Quantity: qty,
		})
	}

	aggregated := domain.AggregateLines(lines)

	order, err := s.orders.Place(ctx, userID, s.now().UTC(), aggregated)
	if err != nil {
		s.metrics.RecordPlacementFailed()
		s.logger.WithError(err).WithField("user_id", userID).Error("order placement failed at storage")
		return Confirmation{}, err
	}

	s.metrics.RecordPlacementCommitted()
	s.metrics.RecordPlacementDuration(time.Since(start))
	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"items":    len(order.Items),
	}).Info("заказ размещён")

	s.enqueuePlacedEvent(order)

	return Confirmation{OrderID: order.ID}, nil
}

func (s *Service) reject(err error) error {
	s.metrics.RecordPlacementRejected(rejectionReason(err))
	return err
}

// enqueuePlacedEvent ставит событие order.placed в outbox. Размещение уже
// закоммичено, поэтому ошибка постановки только логируется.
func (s *Service) enqueuePlacedEvent(order domain.Order) {
	if s.outbox == nil {
		return
	}

	items := make([]kafka.PlacedItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, kafka.PlacedItem{
			ShopID:   item.ShopID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}

	payload, err := json.Marshal(kafka.NewOrderPlacedEvent(order.ID, order.UserID, order.RegDate, items))
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to marshal order.placed event")
		return
	}

	_, err = s.outbox.Enqueue(domain.OutboxMessage{
		AggregateType: kafka.AggregateTypeOrder,
		AggregateID:   strconv.FormatInt(order.ID, 10),
		EventType:     string(kafka.EventTypeOrderPlaced),
		Payload:       payload,
	})
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to enqueue order.placed event")
		return
	}

	s.metrics.RecordOutboxEvent()
}

// distinctShops возвращает идентификаторы магазинов в порядке первого появления.
func distinctShops(lines []requestLine) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ShopID]; ok {
			continue
		}
		seen[line.ShopID] = struct{}{}
		ids = append(ids, line.ShopID)
	}
	return ids
}

// rejectionReason переводит ошибку валидации в метку метрики.
func rejectionReason(err error) string {
	var notAvailable *domain.BookNotAvailableError
	switch {
	case errors.Is(err, domain.ErrBuyerInvalid):
		return "invalid_buyer"
	case errors.Is(err, domain.ErrLinesRequired):
		return "missing_lines"
	case errors.Is(err, domain.ErrLinesMalformed):
		return "malformed_lines"
	case errors.Is(err, domain.ErrUnknownShops):
		return "unknown_shop"
	case errors.Is(err, domain.ErrQuantityInvalid):
		return "invalid_quantity"
	case errors.As(err, &notAvailable):
		return "book_not_available"
	}
	return "other"
}
