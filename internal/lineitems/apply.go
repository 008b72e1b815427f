package lineitems

import (
	"github.com/ledgerview/ledgerview/internal/ledger"
	"github.com/ledgerview/ledgerview/internal/model"
)

// Append adds every item to the store as a new investment or expense and
// returns the fresh ids in item order. Ids carried by the items are ignored.
func Append(s *ledger.Store, items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case KindInvestment:
			itemID := s.AddInvestment()
			s.UpdateInvestment(itemID, ledger.RenameInvestment{Name: item.Name})
			s.UpdateInvestment(itemID, ledger.SetInvestmentAmount{Amount: item.Amount})
			if item.Category != model.CategoryAuto {
				s.UpdateInvestment(itemID, ledger.SetInvestmentCategory{Category: item.Category})
			}
			ids = append(ids, itemID)
		case KindExpense:
			itemID := s.AddExpense()
			s.UpdateExpense(itemID, ledger.RenameExpense{Name: item.Name})
			s.UpdateExpense(itemID, ledger.SetExpenseAmount{Amount: item.Amount})
			if item.IsAsset {
				s.ToggleExpense(itemID, ledger.IsAsset)
			}
			if item.Prepaid {
				s.ToggleExpense(itemID, ledger.Prepaid)
			}
			ids = append(ids, itemID)
		}
	}
	return ids
}
