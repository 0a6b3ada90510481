package projection

import (
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/types"
	"github.com/google/uuid"
)

// IsPaid reports if the liability is paid for the month.
//
// Any payment of the liability dated in the month or in a later month
// counts. A single payment therefore marks all earlier months as paid.
func IsPaid(liabilityID uuid.UUID, month types.Month, expenses []models.Expense) bool {
	for _, e := range expenses {
		if e.LiabilityID == nil || *e.LiabilityID != liabilityID {
			continue
		}

		if !types.MonthOf(e.ExpenseDate).Before(month) {
			return true
		}
	}

	return false
}
