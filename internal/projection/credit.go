package projection

import (
	"github.com/duewise/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// credit is the credit position over all active credit cards.
type credit struct {
	Limit     decimal.Decimal
	Used      decimal.Decimal
	Available decimal.Decimal
}

func creditOf(cards []models.CreditCard) credit {
	var c credit
	for _, card := range cards {
		if !card.IsActive {
			continue
		}

		c.Limit = c.Limit.Add(card.CreditLimit)
		c.Used = c.Used.Add(decimal.Max(decimal.Zero, card.CurrentBalance))
		c.Available = c.Available.Add(card.Available())
	}

	return c
}

// utilization returns used as percentage of limit, rounded to two decimals.
func utilization(used, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}

	return used.Div(limit).Mul(hundred).Round(2)
}
