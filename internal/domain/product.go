package domain

import "time"

// Product описывает товар каталога.
type Product struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	// PriceMinor — цена за единицу в минимальных денежных единицах (например, копейки).
	PriceMinor int64
	// OwnerID — пользователь, создавший товар; только он может редактировать и удалять его.
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductInput содержит пользовательский ввод формы товара до валидации.
// Поля храним как есть, чтобы при ошибке валидации вернуть ввод обратно без изменений.
type ProductInput struct {
	Title       string
	Description string
	ImageURL    string
	PriceMinor  int64
}

const (
	minTitleLen       = 3
	minDescriptionLen = 5
	maxDescriptionLen = 400
)

// Validate проверяет пользовательский ввод и возвращает список нарушений.
func (in ProductInput) Validate() []error {
	var errs []error

	if len([]rune(in.Title)) < minTitleLen {
		errs = append(errs, ErrTitleTooShort)
	}
	if in.PriceMinor < 0 {
		errs = append(errs, ErrPriceNegative)
	}
	descLen := len([]rune(in.Description))
	if descLen < minDescriptionLen || descLen > maxDescriptionLen {
		errs = append(errs, ErrDescriptionLength)
	}
	if in.ImageURL == "" {
		errs = append(errs, ErrImageURLRequired)
	}

	return errs
}

// Apply переносит проверенный ввод в поля товара.
func (p *Product) Apply(in ProductInput, now time.Time) {
	p.Title = in.Title
	p.Description = in.Description
	p.ImageURL = in.ImageURL
	p.PriceMinor = in.PriceMinor
	p.UpdatedAt = now
}
