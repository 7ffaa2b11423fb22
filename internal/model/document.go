package model

// Document is the whole persisted shop state. It is always read and written in one piece.
type Document struct {
	Business   Business   `json:"business"`
	TodaysMeal TodaysMeal `json:"todaysMeal"`
	Menu       []MenuItem `json:"menu"`
	Orders     []Order    `json:"orders"`
}

// Business is the singleton shop profile.
type Business struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	CollectionNote string `json:"collectionNote"`
}

// TodaysMeal is the singleton daily meal that orders are placed against.
type TodaysMeal struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	Date        string  `json:"date"`
	Image       string  `json:"image"`
}

// MenuItem is an entry of the standing menu.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}

// Normalize replaces missing collections with empty ones so they encode as [] rather than null.
func (d *Document) Normalize() {
	if d.Menu == nil {
		d.Menu = []MenuItem{}
	}
	if d.Orders == nil {
		d.Orders = []Order{}
	}
}

// AvailableMenu returns the menu items currently offered to customers, in display order.
func (d *Document) AvailableMenu() []MenuItem {
	items := make([]MenuItem, 0, len(d.Menu))
	for _, item := range d.Menu {
		if item.Available {
			items = append(items, item)
		}
	}
	return items
}

// FindMenuItem returns the index of the menu item with id, or -1.
func (d *Document) FindMenuItem(id string) int {
	for i := range d.Menu {
		if d.Menu[i].ID == id {
			return i
		}
	}
	return -1
}

// FindOrder returns the index of the order with id, or -1.
func (d *Document) FindOrder(id string) int {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

// PublicView is the customer-facing subset of the document.
type PublicView struct {
	Business   Business   `json:"business"`
	TodaysMeal TodaysMeal `json:"todaysMeal"`
	Menu       []MenuItem `json:"menu"`
}
