package domain

import "fmt"

// RestoreWarning describes a saved cart line that could not be restored.
type RestoreWarning struct {
	ItemID   string
	Quantity int
	Reason   string
}

func (w RestoreWarning) String() string {
	return fmt.Sprintf("item %s (x%d): %s", w.ItemID, w.Quantity, w.Reason)
}

// RestoreCart re-adds saved lines to the customer's cart. Lines for items that
// left the catalog, or that the cart rejects, are skipped and reported.
func (s *Store) RestoreCart(customer *Customer, records []LineRecord) []RestoreWarning {
	var warnings []RestoreWarning
	for _, rec := range records {
		item, ok := s.Item(rec.ItemID)
		if !ok {
			warnings = append(warnings, RestoreWarning{
				ItemID:   rec.ItemID,
				Quantity: rec.Quantity,
				Reason:   "no longer in the catalog",
			})
			continue
		}
		if err := customer.Cart().AddLine(item, rec.Quantity); err != nil {
			warnings = append(warnings, RestoreWarning{
				ItemID:   rec.ItemID,
				Quantity: rec.Quantity,
				Reason:   err.Error(),
			})
		}
	}
	return warnings
}
