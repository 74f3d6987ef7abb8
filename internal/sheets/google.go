package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/order"
	"github.com/ryo-harano/coffee-app/internal/pickup"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	menuSheet   = "Menu"
	ordersSheet = "Orders"
)

var (
	menuHeaders = []interface{}{
		"id", "name", "description", "category",
		"price_s", "price_m", "price_l", "image", "temps",
	}
	orderHeaders = []interface{}{
		"order_id", "date", "total", "items_summary",
		"timestamp", "estimated_time", "viewed",
	}
)

// Google mirrors to a Google Sheets spreadsheet using a service
// account credentials file.
type Google struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	// loc is the fixed timezone for the operational timestamps, Japan
	// time in production.
	loc *time.Location
}

func NewGoogle(ctx context.Context, credentialsFile, spreadsheetID string, loc *time.Location) (*Google, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Google{svc: svc, spreadsheetID: spreadsheetID, loc: loc}, nil
}

// SyncOrder appends a row per placed order, including the summary and
// estimated pickup time the staff work from.
func (g *Google) SyncOrder(ctx context.Context, o order.Order) error {
	if err := g.ensureSheet(ctx, ordersSheet, orderHeaders); err != nil {
		return err
	}

	viewed := "No"
	if o.Viewed {
		viewed = "Yes"
	}

	row := []interface{}{
		o.ID,
		o.Date.Format(time.RFC3339),
		o.Total,
		o.ItemsSummary(),
		pickup.Stamp(o.Date, g.loc),
		pickup.Stamp(pickup.Estimate(o.Date), g.loc),
		viewed,
	}

	return g.appendRow(ctx, ordersSheet, row)
}

// SyncMenuItem keeps the Menu sheet in step with the catalog: add
// appends, update rewrites the item's row, delete removes it.
func (g *Google) SyncMenuItem(ctx context.Context, item menu.Item, action menu.SyncAction) error {
	if err := g.ensureSheet(ctx, menuSheet, menuHeaders); err != nil {
		return err
	}

	rowIndex, err := g.findRowByID(ctx, menuSheet, item.ID)
	if err != nil {
		return err
	}

	switch action {
	case menu.SyncActionDelete:
		if rowIndex == 0 {
			return nil
		}
		return g.deleteRow(ctx, menuSheet, rowIndex)

	case menu.SyncActionUpdate:
		if rowIndex != 0 {
			return g.updateRow(ctx, menuSheet, rowIndex, menuRow(item))
		}
		// The row disappeared from the sheet; fall back to append.
		return g.appendRow(ctx, menuSheet, menuRow(item))

	default:
		return g.appendRow(ctx, menuSheet, menuRow(item))
	}
}

func menuRow(item menu.Item) []interface{} {
	temps := ""
	for i, t := range item.AvailableTemperatures {
		if i > 0 {
			temps += ","
		}
		temps += string(t)
	}

	return []interface{}{
		item.ID,
		item.Name,
		item.Description,
		string(item.Category),
		item.Prices.S,
		item.Prices.M,
		item.Prices.L,
		item.Image,
		temps,
	}
}

// ensureSheet creates the named sheet with its header row when the
// spreadsheet does not have it yet.
func (g *Google) ensureSheet(ctx context.Context, title string, headers []interface{}) error {
	doc, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sh := range doc.Sheets {
		if sh.Properties.Title == title {
			return nil
		}
	}

	_, err = g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{Title: title},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", title, err)
	}

	return g.appendRow(ctx, title, headers)
}

func (g *Google) appendRow(ctx context.Context, sheet string, row []interface{}) error {
	_, err := g.svc.Spreadsheets.Values.Append(
		g.spreadsheetID,
		sheet+"!A:Z",
		&sheetsapi.ValueRange{Values: [][]interface{}{row}},
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %q: %w", sheet, err)
	}
	return nil
}

func (g *Google) updateRow(ctx context.Context, sheet string, rowIndex int64, row []interface{}) error {
	rng := fmt.Sprintf("%s!A%d", sheet, rowIndex)
	_, err := g.svc.Spreadsheets.Values.Update(
		g.spreadsheetID,
		rng,
		&sheetsapi.ValueRange{Values: [][]interface{}{row}},
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update row %d in %q: %w", rowIndex, sheet, err)
	}
	return nil
}

func (g *Google) deleteRow(ctx context.Context, sheet string, rowIndex int64) error {
	sheetID, err := g.sheetID(ctx, sheet)
	if err != nil {
		return err
	}

	_, err = g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				DeleteDimension: &sheetsapi.DeleteDimensionRequest{
					Range: &sheetsapi.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: rowIndex - 1,
						EndIndex:   rowIndex,
					},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete row %d in %q: %w", rowIndex, sheet, err)
	}
	return nil
}

// findRowByID returns the 1-based row of the item id in column A, or
// zero when the id is not on the sheet.
func (g *Google) findRowByID(ctx context.Context, sheet, id string) (int64, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, sheet+"!A:A").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read %q ids: %w", sheet, err)
	}

	for i, row := range resp.Values {
		if i == 0 || len(row) == 0 {
			continue // header
		}
		if cell, ok := row[0].(string); ok && cell == id {
			return int64(i + 1), nil
		}
	}
	return 0, nil
}

func (g *Google) sheetID(ctx context.Context, title string) (int64, error) {
	doc, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to get spreadsheet: %w", err)
	}
	for _, sh := range doc.Sheets {
		if sh.Properties.Title == title {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found", title)
}
