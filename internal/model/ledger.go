package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger is the whole editable document for one company.
type Ledger struct {
	CompanyName string
	AsOfDate    string
	Investments []Investment
	Expenses    []Expense
	Notes       []Note
}

// Investment is a financing-activity contribution.
type Investment struct {
	ID       string
	Name     string
	Amount   decimal.Decimal // minor currency units
	Category Category        // empty = classify by name
}

// Expense is an operating cost, or a capitalized purchase when IsAsset is set.
type Expense struct {
	ID      string
	Name    string
	Amount  decimal.Decimal
	IsAsset bool
	Prepaid bool // only counted when IsAsset
}

// Note is a free-text disclosure.
type Note struct {
	ID      string
	Title   string
	Content string
}

// Clone returns a deep copy of the ledger. Line items are values, so copying
// the slices is enough.
func (l Ledger) Clone() Ledger {
	l.Investments = slices.Clone(l.Investments)
	l.Expenses = slices.Clone(l.Expenses)
	l.Notes = slices.Clone(l.Notes)
	return l
}

// Equal reports whether two ledgers hold the same metadata and line items in
// the same order. Amounts compare by value, so "1.0" equals "1".
func (l Ledger) Equal(o Ledger) bool {
	if l.CompanyName != o.CompanyName || l.AsOfDate != o.AsOfDate {
		return false
	}
	return slices.EqualFunc(l.Investments, o.Investments, Investment.Equal) &&
		slices.EqualFunc(l.Expenses, o.Expenses, Expense.Equal) &&
		slices.Equal(l.Notes, o.Notes)
}

// Equal compares two investments field by field.
func (i Investment) Equal(o Investment) bool {
	return i.ID == o.ID && i.Name == o.Name && i.Category == o.Category && i.Amount.Equal(o.Amount)
}

// Equal compares two expenses field by field.
func (e Expense) Equal(o Expense) bool {
	return e.ID == o.ID && e.Name == o.Name && e.IsAsset == o.IsAsset && e.Prepaid == o.Prepaid &&
		e.Amount.Equal(o.Amount)
}

// IsPrepaidAsset reports whether the expense sits on the balance sheet as a
// non-current asset.
func (e Expense) IsPrepaidAsset() bool {
	return e.IsAsset && e.Prepaid
}
