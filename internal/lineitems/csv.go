package lineitems

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerview/ledgerview/internal/ledger"
	"github.com/ledgerview/ledgerview/internal/model"
)

// Header is the CSV header for line-item files.
const Header = "kind,id,name,amount,category,is_asset,prepaid"

const (
	numFields   = 7
	colKind     = 0
	colID       = 1
	colName     = 2
	colAmount   = 3
	colCategory = 4
	colIsAsset  = 5
	colPrepaid  = 6
)

// Kind tells which ledger list a line item belongs to.
type Kind string

const (
	KindInvestment Kind = "investment"
	KindExpense    Kind = "expense"
)

// Item is one investment or expense row. Category only applies to
// investments; the flags only apply to expenses.
type Item struct {
	Kind     Kind
	ID       string
	Name     string
	Amount   decimal.Decimal
	Category model.Category
	IsAsset  bool
	Prepaid  bool
}

// FromLedger lists every investment followed by every expense.
func FromLedger(l model.Ledger) []Item {
	items := make([]Item, 0, len(l.Investments)+len(l.Expenses))
	for _, inv := range l.Investments {
		items = append(items, Item{
			Kind:     KindInvestment,
			ID:       inv.ID,
			Name:     inv.Name,
			Amount:   inv.Amount,
			Category: inv.Category,
		})
	}
	for _, exp := range l.Expenses {
		items = append(items, Item{
			Kind:    KindExpense,
			ID:      exp.ID,
			Name:    exp.Name,
			Amount:  exp.Amount,
			IsAsset: exp.IsAsset,
			Prepaid: exp.Prepaid,
		})
	}
	return items
}

// ReadItems reads a line-item CSV. The first row is the header.
func ReadItems(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading line items CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var items []Item
	for i, rec := range records[1:] {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteItems writes a line-item CSV including the header.
func WriteItems(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range items {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalItem converts an Item to a CSV row.
func MarshalItem(item Item) []string {
	row := make([]string, numFields)
	row[colKind] = string(item.Kind)
	row[colID] = item.ID
	row[colName] = item.Name
	row[colAmount] = item.Amount.String()
	if item.Kind == KindInvestment && item.Category != model.CategoryAuto {
		row[colCategory] = string(item.Category)
	}
	if item.Kind == KindExpense {
		row[colIsAsset] = strconv.FormatBool(item.IsAsset)
		row[colPrepaid] = strconv.FormatBool(item.Prepaid)
	}
	return row
}

// UnmarshalItem converts a CSV row to an Item. Blank amounts and flags read
// as zero and false.
func UnmarshalItem(record []string) (Item, error) {
	if len(record) != numFields {
		return Item{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	item := Item{
		Kind: Kind(strings.ToLower(strings.TrimSpace(record[colKind]))),
		ID:   strings.TrimSpace(record[colID]),
		Name: record[colName],
	}
	if item.Kind != KindInvestment && item.Kind != KindExpense {
		return Item{}, fmt.Errorf("unknown kind %q", record[colKind])
	}

	amount, err := ledger.ParseAmount(record[colAmount])
	if err != nil {
		return Item{}, fmt.Errorf("parsing amount: %w", err)
	}
	item.Amount = amount

	item.Category, err = model.ParseCategory(record[colCategory])
	if err != nil {
		return Item{}, err
	}

	if item.IsAsset, err = parseFlag(record[colIsAsset]); err != nil {
		return Item{}, fmt.Errorf("parsing is_asset: %w", err)
	}
	if item.Prepaid, err = parseFlag(record[colPrepaid]); err != nil {
		return Item{}, fmt.Errorf("parsing prepaid: %w", err)
	}
	return item, nil
}

func parseFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
