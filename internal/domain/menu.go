package domain

import "strings"

// Category — раздел меню. Набор закрыт; всё неизвестное попадает в DefaultCategory.
type Category int

const (
	CategoryBreakfast Category = iota
	CategoryLunch
	CategoryDrinks
)

// DefaultCategory — раздел для позиций с нераспознанной категорией.
const DefaultCategory = CategoryBreakfast

// Categories — разделы в порядке вывода на странице меню.
func Categories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDrinks}
}

// ParseCategory — разбор категории каталога; ok=false означает, что выбран раздел по умолчанию.
func ParseCategory(raw string) (Category, bool) {
	switch strings.TrimSpace(raw) {
	case "Breakfast":
		return CategoryBreakfast, true
	case "Lunch":
		return CategoryLunch, true
	case "Drinks", "Drink":
		return CategoryDrinks, true
	default:
		return DefaultCategory, false
	}
}

func (c Category) String() string {
	switch c {
	case CategoryLunch:
		return "Lunch"
	case CategoryDrinks:
		return "Drinks"
	default:
		return "Breakfast"
	}
}

// MenuItem — позиция каталога в формате бэкенда.
type MenuItem struct {
	MenuItemID      int    `json:"MenuItemID"`
	ItemName        string `json:"ItemName"`
	ItemDescription string `json:"ItemDescription"`
	Price           Money  `json:"Price"`
	Category        string `json:"Category"`
	ImageFile       string `json:"ImageFile"`
}

// Section — раздел меню, в который попадает позиция.
func (m MenuItem) Section() Category {
	c, _ := ParseCategory(m.Category)
	return c
}

// Ref — ссылка для добавления позиции в корзину.
func (m MenuItem) Ref() ItemRef {
	return ItemRef{MenuItemID: m.MenuItemID, ItemName: m.ItemName, Price: m.Price}
}

// MenuSection — раздел меню с позициями в исходном порядке.
type MenuSection struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

// GroupMenu — раскладывает позиции по разделам; все разделы присутствуют, даже пустые.
func GroupMenu(items []MenuItem) []MenuSection {
	byCategory := make(map[Category][]MenuItem, len(Categories()))
	for _, item := range items {
		section := item.Section()
		byCategory[section] = append(byCategory[section], item)
	}

	sections := make([]MenuSection, 0, len(Categories()))
	for _, c := range Categories() {
		list := byCategory[c]
		if list == nil {
			list = []MenuItem{}
		}
		sections = append(sections, MenuSection{Category: c.String(), Items: list})
	}
	return sections
}
