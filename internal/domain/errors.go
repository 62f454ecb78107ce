package domain

import (
	"errors"
	"strings"
)

var (
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductAlreadyExists сигнализирует о повторной вставке товара с тем же ID.
	ErrProductAlreadyExists = errors.New("product already exists")
	// ErrUserNotFound возвращается, если пользователь отсутствует в хранилище.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists — пользователь с таким ID или email уже зарегистрирован.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrOrderNotFound возвращается, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyExists сигнализирует о повторной вставке заказа с тем же ID.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrNotOwner — попытка изменить чужой товар; наблюдаемое поведение наружу — тихий no-op.
	ErrNotOwner = errors.New("product is not owned by acting user")
	// Ошибка слишком короткого названия товара.
	ErrTitleTooShort = errors.New("title must be at least 3 characters long")
	// Ошибка отрицательной цены товара.
	ErrPriceNegative = errors.New("price_minor must be non-negative")
	// Ошибка недопустимой длины описания.
	ErrDescriptionLength = errors.New("description must be between 5 and 400 characters")
	// Ошибка отсутствующей ссылки на изображение.
	ErrImageURLRequired = errors.New("image_url is required")
	// Ошибка отсутствующего идентификатора пользователя в заказе.
	ErrUserIDRequired = errors.New("user_id is required")
	// Ошибка отсутствующего email в заказе.
	ErrEmailRequired = errors.New("email is required")
	// Ошибка отрицательной суммы заказа.
	ErrAmountNegative = errors.New("amount_minor must be non-negative")
	// Ошибка при некорректном количестве в позиции заказа (<= 0).
	ErrLineQtyInvalid = errors.New("line qty must be greater than zero")
	// Ошибка отрицательной цены в позиции заказа.
	ErrLinePriceInvalid = errors.New("line price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order amount does not match lines sum")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// ValidationError агрегирует нарушения пользовательского ввода.
// Error() возвращает первое нарушение — его показываем пользователю первым,
// полный список доступен через Violations.
type ValidationError struct {
	Violations []error
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return e.Violations[0].Error()
}

// Messages возвращает тексты всех нарушений в порядке обнаружения.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Error())
	}
	return messages
}

// JoinErrors склеивает список ошибок в одну строку для логов и ответов.
func JoinErrors(errs []error) string {
	builder := strings.Builder{}
	for i, err := range errs {
		builder.WriteString(err.Error())
		if i < len(errs)-1 {
			builder.WriteString("; ")
		}
	}
	return builder.String()
}

// IsNotFound проверяет, относится ли ошибка к классу "сущность отсутствует".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}
