// Package checkout превращает корзину пользователя в неизменяемый заказ.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
)

// CartResolver превращает ссылки корзины в строки с полными карточками товаров.
type CartResolver interface {
	ResolveLines(ctx context.Context, cart domain.Cart) ([]domain.ResolvedCartLine, error)
}

// Metrics описывает метрики, которые пишет оркестратор оформления.
type Metrics interface {
	RecordCheckoutStarted()
	RecordCheckoutCompleted()
	RecordCheckoutFailed()
	RecordCheckoutFinished()
	RecordDroppedLines(count int)
	RecordCartClearFailure()
	RecordCheckoutDuration(duration time.Duration)
}

// Result — итог оформления. CartCleared=false означает, что заказ создан,
// но корзина осталась непустой: клиент должен знать об этом окне рассинхронизации.
type Result struct {
	Order       domain.Order
	CartCleared bool
}

// Orchestrator ведёт оформление заказа: снятие снапшота корзины,
// запись заказа, постановка события в outbox и очистка корзины.
type Orchestrator struct {
	users    domain.UserRepository
	orders   domain.OrderRepository
	outbox   domain.OutboxRepository
	resolver CartResolver
	logger   *log.Entry
	metrics  Metrics
	now      func() time.Time
}

// New создаёт оркестратор оформления с метриками.
func New(
	users domain.UserRepository,
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	resolver CartResolver,
	logger *log.Logger,
	metrics Metrics,
) *Orchestrator {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Orchestrator{
		users:    users,
		orders:   orders,
		outbox:   outbox,
		resolver: resolver,
		logger:   logger.WithField("component", "checkout_orchestrator"),
		metrics:  metrics,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NewWithoutMetrics создаёт оркестратор без сбора метрик (тесты, локальные утилиты).
func NewWithoutMetrics(
	users domain.UserRepository,
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	resolver CartResolver,
	logger *log.Logger,
) *Orchestrator {
	return New(users, orders, outbox, resolver, logger, noopMetrics{})
}

// Checkout оформляет заказ из текущей корзины пользователя.
//
// Порядок шагов фиксирован: сначала сохраняется заказ, затем корзина очищается.
// Если очистка не удалась, заказ уже существует и ошибкой это не считается —
// клиент получает Result{CartCleared: false}, а повторное оформление той же
// корзины создаст второй заказ.
func (o *Orchestrator) Checkout(ctx context.Context, userID string) (Result, error) {
	started := o.now()
	o.metrics.RecordCheckoutStarted()
	defer func() {
		o.metrics.RecordCheckoutDuration(time.Since(started))
		o.metrics.RecordCheckoutFinished()
	}()

	user, err := o.users.Get(ctx, userID)
	if err != nil {
		o.metrics.RecordCheckoutFailed()
		return Result{}, fmt.Errorf("load user %s: %w", userID, err)
	}

	resolved, err := o.resolver.ResolveLines(ctx, user.Cart)
	if err != nil {
		o.metrics.RecordCheckoutFailed()
		return Result{}, fmt.Errorf("resolve cart of user %s: %w", userID, err)
	}
	if dropped := len(user.Cart.Items) - len(resolved); dropped > 0 {
		o.metrics.RecordDroppedLines(dropped)
	}

	lines := make([]domain.OrderLine, 0, len(resolved))
	for _, line := range resolved {
		lines = append(lines, domain.NewOrderLine(line.Product, line.Quantity))
	}

	order := domain.NewOrder(uuid.NewString(), user.ID, user.Email, lines, o.now())
	if violations := order.ValidateInvariants(); len(violations) > 0 {
		o.metrics.RecordCheckoutFailed()
		return Result{}, fmt.Errorf("order invariants violated: %s", domain.JoinErrors(violations))
	}

	if err := o.orders.Create(ctx, order); err != nil {
		o.metrics.RecordCheckoutFailed()
		return Result{}, fmt.Errorf("persist order %s: %w", order.ID, err)
	}

	o.enqueueOrderPlaced(ctx, order)

	result := Result{Order: order, CartCleared: true}
	if err := o.users.SaveCart(ctx, userID, domain.Cart{}); err != nil {
		// Заказ уже записан, откатывать нечего. Фиксируем и отдаём как есть.
		o.logger.WithFields(log.Fields{
			"order_id": order.ID,
			"user_id":  userID,
		}).WithError(err).Error("order created but cart clear failed")
		o.metrics.RecordCartClearFailure()
		result.CartCleared = false
	}

	o.logger.WithFields(log.Fields{
		"order_id":     order.ID,
		"user_id":      userID,
		"lines":        len(order.Lines),
		"amount_minor": order.AmountMinor,
		"cart_cleared": result.CartCleared,
	}).Info("checkout completed")
	o.metrics.RecordCheckoutCompleted()

	return result, nil
}

// enqueueOrderPlaced ставит событие order.placed в outbox.
// Ошибка постановки не валит оформление: заказ первичен, событие доедет позже или потеряется.
func (o *Orchestrator) enqueueOrderPlaced(ctx context.Context, order domain.Order) {
	payload, err := json.Marshal(kafka.NewOrderPlacedEvent(order))
	if err != nil {
		o.logger.WithField("order_id", order.ID).WithError(err).Error("marshal order.placed event")
		return
	}

	_, err = o.outbox.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   order.ID,
		EventType:     kafka.EventTypeOrderPlaced,
		Payload:       payload,
	})
	if err != nil {
		o.logger.WithField("order_id", order.ID).WithError(err).Error("enqueue order.placed event")
	}
}

type noopMetrics struct{}

func (noopMetrics) RecordCheckoutStarted()               {}
func (noopMetrics) RecordCheckoutCompleted()             {}
func (noopMetrics) RecordCheckoutFailed()                {}
func (noopMetrics) RecordCheckoutFinished()              {}
func (noopMetrics) RecordDroppedLines(int)               {}
func (noopMetrics) RecordCartClearFailure()              {}
func (noopMetrics) RecordCheckoutDuration(time.Duration) {}

var _ Metrics = noopMetrics{}
