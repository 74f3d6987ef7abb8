package menu

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired        = errors.New("item name is required")
	ErrDescriptionRequired = errors.New("item description is required")
	ErrImageRequired       = errors.New("item image is required")
	ErrNegativePrice       = errors.New("item price must not be negative")
	ErrInvalidCategory     = errors.New("unknown item category")
	ErrInvalidSize         = errors.New("unknown item size")
	ErrInvalidTemperature  = errors.New("unknown item temperature")
	ErrNoVariant           = errors.New("item needs at least one size or temperature")

	// -- Resource State --
	ErrItemNotFound = errors.New("menu item not found")
)
