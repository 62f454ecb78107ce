package domain

import "time"

// User — аккаунт магазина. Корзина встроена в пользователя
// и персистится единым документом вместе с ним.
type User struct {
	ID        string
	Email     string
	Name      string
	Cart      Cart
	CreatedAt time.Time
	UpdatedAt time.Time
}
