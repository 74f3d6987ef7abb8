package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/ryo-harano/coffee-app/internal/cart"
)

// CustomerInfo is the optional contact info captured at checkout.
type CustomerInfo struct {
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Order is a frozen checkout result. Items are copied by value at
// placement, so later catalog edits never change a recorded price.
// Everything except Viewed is immutable once placed.
type Order struct {
	ID       string        `json:"id"`
	Items    []cart.Line   `json:"items"`
	Total    int           `json:"total"`
	Date     time.Time     `json:"date"`
	Viewed   bool          `json:"viewed"`
	Customer *CustomerInfo `json:"customer,omitempty"`
}

// ItemsSummary renders the order's lines as one human-readable string,
// the format mirrored to the spreadsheet: "Latte (M/Hot) x2, ...".
func (o Order) ItemsSummary() string {
	parts := make([]string, 0, len(o.Items))
	for _, l := range o.Items {
		parts = append(parts, fmt.Sprintf("%s (%s/%s) x%d", l.Name, l.Size, l.Temperature, l.Quantity))
	}
	return strings.Join(parts, ", ")
}
