package menu

// Category groups menu items for display and for the combo discount rule.
// Temperature is an attribute of an item, never a category.
type Category string

const (
	CategoryDrink   Category = "Drink"
	CategoryFood    Category = "Food"
	CategoryDessert Category = "Dessert"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryDrink, CategoryFood, CategoryDessert:
		return true
	}
	return false
}

// NormalizeCategory maps legacy category values onto the consolidated
// taxonomy. Older data used "Hot"/"Ice" as beverage categories; both
// collapse to Drink. Unknown values pass through unchanged so the
// pricing rules can treat them as neither beverage nor food.
func NormalizeCategory(raw string) Category {
	switch raw {
	case "Hot", "Ice":
		return CategoryDrink
	}
	return Category(raw)
}

type Size string

const (
	SizeS Size = "S"
	SizeM Size = "M"
	SizeL Size = "L"
)

// AllSizes is the default size configuration for items that do not
// restrict sizes.
var AllSizes = []Size{SizeS, SizeM, SizeL}

func (s Size) IsValid() bool {
	switch s {
	case SizeS, SizeM, SizeL:
		return true
	}
	return false
}

type Temperature string

const (
	TemperatureHot Temperature = "Hot"
	TemperatureIce Temperature = "Ice"
)

func (t Temperature) IsValid() bool {
	return t == TemperatureHot || t == TemperatureIce
}

// Prices holds the per-size price in currency minor units (yen, so no
// fractional component).
type Prices struct {
	S int `json:"s"`
	M int `json:"m"`
	L int `json:"l"`
}

// For returns the price for the given size.
func (p Prices) For(size Size) int {
	switch size {
	case SizeS:
		return p.S
	case SizeL:
		return p.L
	default:
		return p.M
	}
}

// Item is a sellable menu entry. The pricing engine treats it as
// read-only; only the admin surface mutates it.
type Item struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Description           string        `json:"description"`
	Prices                Prices        `json:"prices"`
	Category              Category      `json:"category"`
	Image                 string        `json:"image"`
	AvailableTemperatures []Temperature `json:"availableTemperatures"`
	// AvailableSizes empty means all three sizes are offered.
	AvailableSizes []Size `json:"availableSizes,omitempty"`
}

// Sizes returns the sizes the item is offered in, defaulting to all
// three when none are configured.
func (i Item) Sizes() []Size {
	if len(i.AvailableSizes) == 0 {
		return AllSizes
	}
	return i.AvailableSizes
}

// HasSize reports whether the item is offered in the given size.
func (i Item) HasSize(size Size) bool {
	for _, s := range i.Sizes() {
		if s == size {
			return true
		}
	}
	return false
}

// HasTemperature reports whether the item is offered at the given
// temperature. Items with no temperature configuration (food, dessert)
// accept any value so the cart key stays well-defined.
func (i Item) HasTemperature(temp Temperature) bool {
	if len(i.AvailableTemperatures) == 0 {
		return true
	}
	for _, t := range i.AvailableTemperatures {
		if t == temp {
			return true
		}
	}
	return false
}

type SyncAction string

const (
	SyncActionAdd    SyncAction = "add"
	SyncActionUpdate SyncAction = "update"
	SyncActionDelete SyncAction = "delete"
)

// NewItemInput carries the admin form fields for create and update.
type NewItemInput struct {
	Name                  string        `json:"name"`
	Description           string        `json:"description"`
	Prices                Prices        `json:"prices"`
	Category              Category      `json:"category"`
	Image                 string        `json:"image"`
	AvailableTemperatures []Temperature `json:"availableTemperatures"`
	AvailableSizes        []Size        `json:"availableSizes,omitempty"`
}
