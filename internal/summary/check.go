package summary

import "fmt"

// IdentityError describes one accounting identity that does not hold.
type IdentityError struct {
	Identity    string
	Description string
}

func (e IdentityError) Error() string {
	return fmt.Sprintf("identity %s: %s", e.Identity, e.Description)
}

// Check verifies the identities every derived summary must satisfy. Derive
// guarantees them by construction; Check exists for summaries that were
// decoded or assembled elsewhere.
func Check(s Summary) []IdentityError {
	var errs []IdentityError

	// Accounting equation: no liabilities, so equity must cover all assets.
	if !s.TotalLiabilitiesEquity.Equal(s.TotalAssets) {
		errs = append(errs, IdentityError{
			Identity:    "accounting-equation",
			Description: fmt.Sprintf("liabilities & equity (%s) != assets (%s)", s.TotalLiabilitiesEquity, s.TotalAssets),
		})
	}

	want := s.PrepaidAssets.Sub(s.TotalExpenses)
	if !s.RetainedEarnings.Equal(want) {
		errs = append(errs, IdentityError{
			Identity:    "retained-earnings",
			Description: fmt.Sprintf("retained earnings (%s) != prepaid assets - total expenses (%s)", s.RetainedEarnings, want),
		})
	}

	if total := s.OperatingExpenses.Add(s.AssetExpenses); !s.TotalExpenses.Equal(total) {
		errs = append(errs, IdentityError{
			Identity:    "total-expenses",
			Description: fmt.Sprintf("total expenses (%s) != operating + asset (%s)", s.TotalExpenses, total),
		})
	}

	return errs
}
