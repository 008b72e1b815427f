package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerview/ledgerview/internal/model"
)

// CompanyEdit changes one piece of company metadata.
type CompanyEdit interface {
	applyCompany(l *model.Ledger)
}

// SetCompanyName replaces the company name.
type SetCompanyName struct{ Name string }

// SetAsOfDate replaces the free-text statement date.
type SetAsOfDate struct{ Date string }

func (e SetCompanyName) applyCompany(l *model.Ledger) { l.CompanyName = e.Name }
func (e SetAsOfDate) applyCompany(l *model.Ledger)    { l.AsOfDate = e.Date }

// InvestmentEdit changes one field of an investment.
type InvestmentEdit interface {
	applyInvestment(i *model.Investment)
}

// RenameInvestment replaces the investment name. Untagged investments are
// reclassified by their new name.
type RenameInvestment struct{ Name string }

// SetInvestmentAmount replaces the investment amount.
type SetInvestmentAmount struct{ Amount decimal.Decimal }

// SetInvestmentCategory tags the investment explicitly, or clears the tag
// with model.CategoryAuto.
type SetInvestmentCategory struct{ Category model.Category }

func (e RenameInvestment) applyInvestment(i *model.Investment)      { i.Name = e.Name }
func (e SetInvestmentAmount) applyInvestment(i *model.Investment)   { i.Amount = e.Amount }
func (e SetInvestmentCategory) applyInvestment(i *model.Investment) { i.Category = e.Category }

// ExpenseEdit changes the name or amount of an expense. Flags are flipped
// with Store.ToggleExpense instead.
type ExpenseEdit interface {
	applyExpense(e *model.Expense)
}

// RenameExpense replaces the expense name.
type RenameExpense struct{ Name string }

// SetExpenseAmount replaces the expense amount.
type SetExpenseAmount struct{ Amount decimal.Decimal }

func (e RenameExpense) applyExpense(x *model.Expense)    { x.Name = e.Name }
func (e SetExpenseAmount) applyExpense(x *model.Expense) { x.Amount = e.Amount }

// Property names a boolean flag on an expense.
type Property int

const (
	IsAsset Property = iota
	Prepaid
)

func (p Property) String() string {
	switch p {
	case IsAsset:
		return "isAsset"
	case Prepaid:
		return "prepaid"
	default:
		return "unknown"
	}
}

func (p Property) toggle(e *model.Expense) {
	switch p {
	case IsAsset:
		e.IsAsset = !e.IsAsset
	case Prepaid:
		e.Prepaid = !e.Prepaid
	}
}

// NoteEdit changes the title or content of a note.
type NoteEdit interface {
	applyNote(n *model.Note)
}

// SetNoteTitle replaces the note title.
type SetNoteTitle struct{ Title string }

// SetNoteContent replaces the note body.
type SetNoteContent struct{ Content string }

func (e SetNoteTitle) applyNote(n *model.Note)   { n.Title = e.Title }
func (e SetNoteContent) applyNote(n *model.Note) { n.Content = e.Content }
