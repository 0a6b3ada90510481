package models

import (
	"time"

	"github.com/duewise/backend/internal/types"
)

// PaymentCategory is the expense category of liability payments.
const PaymentCategory = "Bills"

// PaymentFor returns the expense that marks the liability as paid on day.
func PaymentFor(l Liability, day time.Time) Expense {
	id := l.ID

	return Expense{
		ProfileID:   l.ProfileID,
		Name:        l.Name,
		Category:    PaymentCategory,
		Amount:      l.Amount,
		ExpenseDate: types.Date(day),
		Frequency:   FrequencyOneTime,
		LiabilityID: &id,
		IsPaid:      true,
	}
}
