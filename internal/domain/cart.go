package domain

// Границы количества одной позиции корзины.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// ItemRef — ссылка на позицию каталога, которую добавляют в корзину.
type ItemRef struct {
	MenuItemID int    `json:"menuItemId"`
	ItemName   string `json:"itemName"`
	Price      Money  `json:"price"`
}

// LineItem — позиция корзины. Имена JSON-полей совпадают с форматом,
// который уже лежит в хранилищах клиентов, поэтому менять их нельзя.
type LineItem struct {
	MenuItemID int    `json:"MenuItemID"`
	ItemName   string `json:"ItemName"`
	UnitPrice  Money  `json:"Price"`
	Quantity   int    `json:"qty"`
}

// Subtotal — цена позиции с учётом количества.
func (l LineItem) Subtotal() Money { return l.UnitPrice.Mul(l.Quantity) }

// Cart — упорядоченный список позиций; MenuItemID уникален.
type Cart []LineItem

// Find — индекс позиции по MenuItemID или -1.
func (c Cart) Find(menuItemID int) int {
	for i := range c {
		if c[i].MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

// ItemCount — суммарное количество (значение бейджа корзины).
func (c Cart) ItemCount() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// Total — итоговая сумма корзины.
func (c Cart) Total() Money {
	var total Money
	for _, item := range c {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clone — копия, не разделяющая память с исходной корзиной.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	return append(Cart(nil), c...)
}

// Normalize — корзина, прочитанная из хранилища, в виде, допустимом для мутаций:
// позиции без id или с количеством меньше MinQuantity отбрасываются, повторы одного
// MenuItemID сливаются в первую позицию с суммой количеств, сумма ограничивается MaxQuantity.
func (c Cart) Normalize() Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.MenuItemID <= 0 || item.Quantity < MinQuantity {
			continue
		}
		if i := out.Find(item.MenuItemID); i >= 0 {
			out[i].Quantity = ClampQuantity(out[i].Quantity + item.Quantity)
			continue
		}
		item.Quantity = ClampQuantity(item.Quantity)
		out = append(out, item)
	}
	return out
}

// ClampQuantity — приводит количество к диапазону [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// CartSummary — состояние корзины после операции вместе с производными значениями.
type CartSummary struct {
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Total     string     `json:"total"`
}

// NewCartSummary — сводка по корзине.
func NewCartSummary(c Cart) CartSummary {
	return CartSummary{
		Items:     c.Clone(),
		ItemCount: c.ItemCount(),
		Total:     c.Total().String(),
	}
}
