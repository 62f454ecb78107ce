package domain

// CartItem — одна позиция корзины: ссылка на товар и количество.
type CartItem struct {
	ProductID string
	Quantity  int32
}

// Cart — изменяемый выбор пользователя до оформления заказа.
// Корзина живёт внутри агрегата User и всегда сохраняется вместе с ним.
// Инвариант: не более одной позиции на productID.
type Cart struct {
	Items []CartItem
}

// Add увеличивает количество существующей позиции на единицу
// или добавляет новую позицию с количеством 1 в конец списка.
func (c *Cart) Add(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: 1})
}

// SetQuantity задаёт количество позиции. Количество <= 0 удаляет позицию,
// нулевые позиции в корзине не хранятся. Отсутствующая позиция — no-op.
func (c *Cart) SetQuantity(productID string, quantity int32) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove удаляет позицию по productID. Отсутствие позиции — не ошибка.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear опустошает корзину. Используется после успешного оформления заказа.
func (c *Cart) Clear() {
	c.Items = nil
}

// Quantity возвращает количество по productID или 0, если позиции нет.
func (c *Cart) Quantity(productID string) int32 {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone возвращает независимую копию корзины.
func (c *Cart) Clone() Cart {
	if len(c.Items) == 0 {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// ResolvedCartLine — позиция корзины, дополненная актуальными данными товара.
type ResolvedCartLine struct {
	Product  Product
	Quantity int32
}
