// Package pricing computes cart and order totals, including the combo
// discount. Everything here is pure: the same lines always produce the
// same receipt, so a stored order's total can be re-derived for
// display without re-running checkout.
package pricing

import (
	"math"

	"github.com/ryo-harano/coffee-app/internal/cart"
	"github.com/ryo-harano/coffee-app/internal/menu"
)

// DiscountRate is the combo discount: beverages are 10% off when the
// order also contains food or dessert.
const DiscountRate = 0.10

// LinePrice is one priced cart line.
type LinePrice struct {
	Line cart.Line `json:"line"`
	// Subtotal is the pre-discount amount, selectedPrice × quantity.
	Subtotal int `json:"subtotal"`
	// Price is the amount the line contributes to the total.
	Price      int  `json:"price"`
	Discounted bool `json:"discounted"`
}

// Receipt is the priced view of a whole cart or order.
type Receipt struct {
	Lines []LinePrice `json:"lines"`
	// Subtotal is the total before any discount.
	Subtotal        int  `json:"subtotal"`
	Total           int  `json:"total"`
	DiscountApplied bool `json:"discountApplied"`
}

// Eligible reports whether the combo discount applies to the line set:
// at least one beverage line and at least one food or dessert line.
// The predicate is evaluated over the whole set, never per line, and
// lines with unknown categories count as neither side.
func Eligible(lines []cart.Line) bool {
	var hasBeverage, hasFoodOrDessert bool
	for _, l := range lines {
		switch l.Category {
		case menu.CategoryDrink:
			hasBeverage = true
		case menu.CategoryFood, menu.CategoryDessert:
			hasFoodOrDessert = true
		}
	}
	return hasBeverage && hasFoodOrDessert
}

// Quote prices the given lines. When the combo discount applies, each
// beverage line is rounded independently, so a split beverage order
// can differ from a single aggregate rounding by at most one yen per
// line; that per-line behavior is the business rule. An empty line set
// yields a zero receipt.
func Quote(lines []cart.Line) Receipt {
	r := Receipt{
		Lines:           make([]LinePrice, 0, len(lines)),
		DiscountApplied: Eligible(lines),
	}

	total := 0.0
	for _, l := range lines {
		lp := LinePrice{Line: l, Subtotal: l.SelectedPrice * l.Quantity}
		lp.Price = lp.Subtotal

		if r.DiscountApplied && l.Category == menu.CategoryDrink {
			lp.Price = int(math.Round(float64(lp.Subtotal) * (1 - DiscountRate)))
			lp.Discounted = true
		}

		r.Subtotal += lp.Subtotal
		total += float64(lp.Price)
		r.Lines = append(r.Lines, lp)
	}

	// Final rounding guards against float drift; it is a no-op when
	// the sum is already integral.
	r.Total = int(math.Round(total))
	return r
}
