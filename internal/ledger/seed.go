package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerview/ledgerview/internal/id"
	"github.com/ledgerview/ledgerview/internal/model"
)

// Seed returns the initial ledger used when no saved snapshot exists. Ids are
// drawn from gen so they stay unique alongside ids added later.
func Seed(gen id.Generator) model.Ledger {
	return model.Ledger{
		CompanyName: "Flexible Functions AI",
		AsOfDate:    "March 22, 2025",
		Investments: []model.Investment{
			{ID: gen(), Name: "Cash Investment (Suwik)", Amount: decimal.NewFromInt(150000)},
			{ID: gen(), Name: "Goodwill Investment (Silver)", Amount: decimal.NewFromInt(150000)},
		},
		Expenses: []model.Expense{
			{ID: gen(), Name: "Claude Pro", Amount: decimal.NewFromInt(77000)},
			{ID: gen(), Name: "Google Workspace", Amount: decimal.NewFromInt(60000)},
			{ID: gen(), Name: "Domain (flexiblefunctions.com)", Amount: decimal.NewFromInt(67000), IsAsset: true, Prepaid: true},
		},
		Notes: []model.Note{
			{ID: gen(), Title: "Business Operations", Content: "Flexible Functions AI is a startup AI company that has recently been established."},
			{ID: gen(), Title: "Basis of Preparation", Content: "These financial statements have been prepared on a cash basis rather than accrual basis due to the early stage of the business."},
			{ID: gen(), Title: "Goodwill", Content: "The UGX 150,000 goodwill contribution from Silver Rubanza represents intangible value contributed to the business. This follows the accounting principle demonstrated in William Ackman's lemonade stand example."},
			{ID: gen(), Title: "Prepaid Expenses", Content: "The domain registration has been recorded as a prepaid asset as it has a 1-year useful life."},
			{ID: gen(), Title: "Revenue", Content: "The company has not yet generated revenue as it is in the startup phase."},
		},
	}
}
