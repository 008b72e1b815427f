package render

import (
	"github.com/ledgerview/ledgerview/internal/model"
	"github.com/ledgerview/ledgerview/internal/summary"
)

// InvestmentList renders the investments of l with their ids.
func InvestmentList(l model.Ledger, m Money) (string, error) {
	return renderTemplate("investments", "investments.md", nil, funcs(m), l)
}

// ExpenseList renders the expenses of l with their ids and flags.
func ExpenseList(l model.Ledger, m Money) (string, error) {
	return renderTemplate("expenses", "expenses.md", nil, funcs(m), l)
}

// NoteList renders note ids and titles in display order.
func NoteList(l model.Ledger, m Money) (string, error) {
	return renderTemplate("notes", "notelist.md", nil, funcs(m), l)
}

// SummaryTable renders every derived figure, followed by any identity
// violations reported by summary.Check.
func SummaryTable(s summary.Summary, m Money) (string, error) {
	data := struct {
		Lines      []summary.Line
		Violations []summary.IdentityError
	}{
		Lines:      s.Lines(),
		Violations: summary.Check(s),
	}
	return renderTemplate("summary", "summary.md", nil, funcs(m), data)
}
