package store

import (
	"context"
	"fmt"

	"hotchick-orders/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetStore appends order rows to the first sheet of a Google spreadsheet,
// authenticated with a service-account credentials file. The same handle
// serves the ledger read path.
type SheetStore struct {
	svc     *sheets.Service
	sheetID string
}

func NewSheetStore(ctx context.Context, sheetID, credentialsFile string) (*SheetStore, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("%w: SHEET_ID not set", ErrAuth)
	}
	if credentialsFile == "" {
		return nil, fmt.Errorf("%w: SHEET_CREDENTIALS not set", ErrAuth)
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return &SheetStore{svc: svc, sheetID: sheetID}, nil
}

func (s *SheetStore) AppendOrder(ctx context.Context, order models.Order) error {
	row := make([]interface{}, 0, 5)
	for _, v := range OrderRow(order) {
		row = append(row, v)
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.sheetID, "A1", &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: sheets append: %v", ErrRemote, err)
	}
	return nil
}

func (s *SheetStore) FetchAll(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, "A:E").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: sheets read: %v", ErrFetch, err)
	}
	out := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, fmt.Sprint(c))
		}
		out = append(out, cells)
	}
	return out, nil
}
