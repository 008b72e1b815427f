package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ledgerview/ledgerview/internal/id"
	"github.com/ledgerview/ledgerview/internal/model"
)

// Wire shapes. Field names are part of the persisted format.

type ledgerJSON struct {
	CompanyName string           `json:"companyName"`
	AsOfDate    string           `json:"asOfDate"`
	Investments []investmentJSON `json:"investments"`
	Expenses    []expenseJSON    `json:"expenses"`
	Notes       []noteJSON       `json:"notes"`
}

type investmentJSON struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category,omitempty"`
}

type expenseJSON struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Amount  json.Number `json:"amount"`
	IsAsset bool        `json:"isAsset"`
	Prepaid bool        `json:"prepaid"`
}

type noteJSON struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Encode serializes a ledger. Amounts are written as JSON numbers.
func Encode(l model.Ledger) ([]byte, error) {
	w := ledgerJSON{
		CompanyName: l.CompanyName,
		AsOfDate:    l.AsOfDate,
		Investments: make([]investmentJSON, 0, len(l.Investments)),
		Expenses:    make([]expenseJSON, 0, len(l.Expenses)),
		Notes:       make([]noteJSON, 0, len(l.Notes)),
	}
	for _, inv := range l.Investments {
		w.Investments = append(w.Investments, investmentJSON{
			ID:       inv.ID,
			Name:     inv.Name,
			Amount:   json.Number(inv.Amount.String()),
			Category: string(inv.Category),
		})
	}
	for _, exp := range l.Expenses {
		w.Expenses = append(w.Expenses, expenseJSON{
			ID:      exp.ID,
			Name:    exp.Name,
			Amount:  json.Number(exp.Amount.String()),
			IsAsset: exp.IsAsset,
			Prepaid: exp.Prepaid,
		})
	}
	for _, n := range l.Notes {
		w.Notes = append(w.Notes, noteJSON(n))
	}

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return data, nil
}

// Decode parses a serialized ledger. Any structural problem (bad JSON, a
// non-numeric amount, a blank id, an id repeated within one list, an unknown
// category) fails the whole snapshot. Null amounts read as zero.
func Decode(data []byte) (model.Ledger, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var w *ledgerJSON
	if err := dec.Decode(&w); err != nil {
		return model.Ledger{}, fmt.Errorf("decoding ledger: %w", err)
	}
	if w == nil {
		return model.Ledger{}, errors.New("decoding ledger: empty snapshot")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return model.Ledger{}, errors.New("decoding ledger: trailing data after snapshot")
	}

	l := model.Ledger{CompanyName: w.CompanyName, AsOfDate: w.AsOfDate}
	ids := make(map[string]bool)
	checkID := func(kind, itemID string, i int) error {
		if !id.Valid(itemID) {
			return fmt.Errorf("%s %d: invalid id %q", kind, i, itemID)
		}
		key := kind + "/" + itemID
		if ids[key] {
			return fmt.Errorf("%s %d: duplicate id %q", kind, i, itemID)
		}
		ids[key] = true
		return nil
	}

	for i, inv := range w.Investments {
		if err := checkID("investment", inv.ID, i); err != nil {
			return model.Ledger{}, err
		}
		amount, err := parseAmount(inv.Amount)
		if err != nil {
			return model.Ledger{}, fmt.Errorf("investment %d: %w", i, err)
		}
		cat, err := model.ParseCategory(inv.Category)
		if err != nil {
			return model.Ledger{}, fmt.Errorf("investment %d: %w", i, err)
		}
		l.Investments = append(l.Investments, model.Investment{ID: inv.ID, Name: inv.Name, Amount: amount, Category: cat})
	}

	for i, exp := range w.Expenses {
		if err := checkID("expense", exp.ID, i); err != nil {
			return model.Ledger{}, err
		}
		amount, err := parseAmount(exp.Amount)
		if err != nil {
			return model.Ledger{}, fmt.Errorf("expense %d: %w", i, err)
		}
		l.Expenses = append(l.Expenses, model.Expense{
			ID:      exp.ID,
			Name:    exp.Name,
			Amount:  amount,
			IsAsset: exp.IsAsset,
			Prepaid: exp.Prepaid,
		})
	}

	for i, n := range w.Notes {
		if err := checkID("note", n.ID, i); err != nil {
			return model.Ledger{}, err
		}
		l.Notes = append(l.Notes, model.Note(n))
	}

	return l, nil
}

// parseAmount reads a null or missing amount as zero.
func parseAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", n, err)
	}
	return d, nil
}
