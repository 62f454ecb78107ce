package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Типы событий витрины
const (
	EventTypeOrderPlaced = "order.placed"
)

// Topics для Kafka
const (
	TopicOrderEvents = "storefront.order.events"
	TopicDeadLetter  = "storefront.dlq" // Dead Letter Queue для failed messages
)

// OrderPlacedLine — позиция заказа в событии, замороженная копия карточки товара.
type OrderPlacedLine struct {
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	PriceMinor int64  `json:"price_minor"`
	Qty        int32  `json:"qty"`
}

// OrderPlacedEvent публикуется после успешного оформления заказа.
type OrderPlacedEvent struct {
	EventType   string            `json:"event_type"`
	OrderID     string            `json:"order_id"`
	UserID      string            `json:"user_id"`
	Email       string            `json:"email"`
	AmountMinor int64             `json:"amount_minor"`
	Lines       []OrderPlacedLine `json:"lines"`
	PlacedAt    time.Time         `json:"placed_at"`
}

// NewOrderPlacedEvent строит событие из снапшота заказа.
func NewOrderPlacedEvent(order domain.Order) *OrderPlacedEvent {
	lines := make([]OrderPlacedLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderPlacedLine{
			ProductID:  line.ProductID,
			Title:      line.Title,
			PriceMinor: line.PriceMinor,
			Qty:        line.Qty,
		})
	}
	return &OrderPlacedEvent{
		EventType:   EventTypeOrderPlaced,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Email:       order.Email,
		AmountMinor: order.AmountMinor,
		Lines:       lines,
		PlacedAt:    order.CreatedAt,
	}
}
