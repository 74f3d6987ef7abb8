package cart

import "github.com/ryo-harano/coffee-app/internal/menu"

// Key identifies a cart line. Adding the same item in the same size
// and temperature merges into one line.
type Key struct {
	ItemID      string           `json:"itemId"`
	Size        menu.Size        `json:"size"`
	Temperature menu.Temperature `json:"temperature"`
}

// Line is a menu item snapshot inside a cart or a placed order.
// SelectedPrice is fixed at the moment the line is added; later
// catalog edits never change it.
type Line struct {
	ItemID        string           `json:"itemId"`
	Name          string           `json:"name"`
	Category      menu.Category    `json:"category"`
	Size          menu.Size        `json:"size"`
	Temperature   menu.Temperature `json:"temperature"`
	Quantity      int              `json:"quantity"`
	SelectedPrice int              `json:"selectedPrice"`
}

func (l Line) Key() Key {
	return Key{ItemID: l.ItemID, Size: l.Size, Temperature: l.Temperature}
}
