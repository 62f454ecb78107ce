package domain

import "time"

// OrderLine — замороженная копия полей товара на момент заказа плюс количество.
// Последующие правки или удаление товара не затрагивают уже созданные заказы,
// поэтому позиция хранит значения, а не ссылку.
type OrderLine struct {
	ProductID   string
	Title       string
	Description string
	ImageURL    string
	PriceMinor  int64
	OwnerID     string
	Qty         int32
}

// Order — неизменяемый снимок корзины, созданный при оформлении заказа.
type Order struct {
	ID     string
	UserID string
	// Email фиксируется на момент заказа и далее не перечитывается из профиля.
	Email       string
	Lines       []OrderLine
	AmountMinor int64
	CreatedAt   time.Time
}

// NewOrderLine копирует текущие поля товара в позицию заказа.
func NewOrderLine(p Product, qty int32) OrderLine {
	return OrderLine{
		ProductID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		PriceMinor:  p.PriceMinor,
		OwnerID:     p.OwnerID,
		Qty:         qty,
	}
}

// NewOrder собирает заказ из разрешённых позиций корзины и считает итоговую сумму.
// Пустой список позиций допустим: бизнес-правила не запрещают пустой заказ.
func NewOrder(id, userID, email string, lines []OrderLine, now time.Time) Order {
	var amount int64
	for _, line := range lines {
		amount += int64(line.Qty) * line.PriceMinor
	}
	return Order{
		ID:          id,
		UserID:      userID,
		Email:       email,
		Lines:       lines,
		AmountMinor: amount,
		CreatedAt:   now,
	}
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, ErrUserIDRequired)
	}
	if o.Email == "" {
		errs = append(errs, ErrEmailRequired)
	}
	if o.AmountMinor < 0 {
		errs = append(errs, ErrAmountNegative)
	}

	// Сверяем сумму заказа с суммой позиций: qty * price.
	var calc int64
	for _, line := range o.Lines {
		if line.Qty <= 0 {
			errs = append(errs, ErrLineQtyInvalid)
		}
		if line.PriceMinor < 0 {
			errs = append(errs, ErrLinePriceInvalid)
		}
		calc += int64(line.Qty) * line.PriceMinor
	}
	if calc != o.AmountMinor {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}
