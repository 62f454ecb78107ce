package mongo

import (
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Документы хранения описаны отдельно от доменных типов:
// bson-теги и служебные поля остаются внутри этого пакета.

type productDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	ImageURL    string    `bson:"image_url"`
	PriceMinor  int64     `bson:"price_minor"`
	OwnerID     string    `bson:"owner_id"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type cartItemDoc struct {
	ProductID string `bson:"product_id"`
	Quantity  int32  `bson:"quantity"`
}

type userDoc struct {
	ID        string        `bson:"_id"`
	Email     string        `bson:"email"`
	Name      string        `bson:"name"`
	CartItems []cartItemDoc `bson:"cart_items"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

type orderLineDoc struct {
	ProductID   string `bson:"product_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	ImageURL    string `bson:"image_url"`
	PriceMinor  int64  `bson:"price_minor"`
	OwnerID     string `bson:"owner_id"`
	Qty         int32  `bson:"qty"`
}

type orderDoc struct {
	ID          string         `bson:"_id"`
	UserID      string         `bson:"user_id"`
	Email       string         `bson:"email"`
	Lines       []orderLineDoc `bson:"lines"`
	AmountMinor int64          `bson:"amount_minor"`
	CreatedAt   time.Time      `bson:"created_at"`
}

type outboxDoc struct {
	ID            string    `bson:"_id"`
	AggregateType string    `bson:"aggregate_type"`
	AggregateID   string    `bson:"aggregate_id"`
	EventType     string    `bson:"event_type"`
	Payload       []byte    `bson:"payload"`
	Status        string    `bson:"status"`
	AttemptCnt    int       `bson:"attempt_cnt"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func toProductDoc(p domain.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		PriceMinor:  p.PriceMinor,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		PriceMinor:  d.PriceMinor,
		OwnerID:     d.OwnerID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toCartItemDocs(cart domain.Cart) []cartItemDoc {
	items := make([]cartItemDoc, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemDoc{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return items
}

func toUserDoc(u domain.User) userDoc {
	return userDoc{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CartItems: toCartItemDocs(u.Cart),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) toDomain() domain.User {
	cart := domain.Cart{}
	for _, item := range d.CartItems {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return domain.User{
		ID:        d.ID,
		Email:     d.Email,
		Name:      d.Name,
		Cart:      cart,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toOrderDoc(o domain.Order) orderDoc {
	lines := make([]orderLineDoc, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, orderLineDoc{
			ProductID:   line.ProductID,
			Title:       line.Title,
			Description: line.Description,
			ImageURL:    line.ImageURL,
			PriceMinor:  line.PriceMinor,
			OwnerID:     line.OwnerID,
			Qty:         line.Qty,
		})
	}
	return orderDoc{
		ID:          o.ID,
		UserID:      o.UserID,
		Email:       o.Email,
		Lines:       lines,
		AmountMinor: o.AmountMinor,
		CreatedAt:   o.CreatedAt,
	}
}

func (d orderDoc) toDomain() domain.Order {
	lines := make([]domain.OrderLine, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID:   line.ProductID,
			Title:       line.Title,
			Description: line.Description,
			ImageURL:    line.ImageURL,
			PriceMinor:  line.PriceMinor,
			OwnerID:     line.OwnerID,
			Qty:         line.Qty,
		})
	}
	return domain.Order{
		ID:          d.ID,
		UserID:      d.UserID,
		Email:       d.Email,
		Lines:       lines,
		AmountMinor: d.AmountMinor,
		CreatedAt:   d.CreatedAt,
	}
}

func (d outboxDoc) toDomain() domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:            d.ID,
		AggregateType: d.AggregateType,
		AggregateID:   d.AggregateID,
		EventType:     d.EventType,
		Payload:       d.Payload,
	}
}
