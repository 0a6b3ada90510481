package projection

import (
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// WeeksPerMonth converts weekly income to monthly income.
var WeeksPerMonth = decimal.RequireFromString("4.33")

// Summary is the financial position of a profile in the current month.
type Summary struct {
	Month              types.Month     `json:"month" swaggertype:"string" example:"2026-06"` // The current month
	AvailableCash      decimal.Decimal `json:"availableCash" example:"1520.4"`               // Cash of the profile
	TotalLiabilities   decimal.Decimal `json:"totalLiabilities" example:"12800"`             // Outstanding balance of active liabilities
	TotalCreditLimit   decimal.Decimal `json:"totalCreditLimit" example:"6000"`              // Credit limit of active cards
	CreditUsed         decimal.Decimal `json:"creditUsed" example:"1000"`                    // Balance of active cards
	AvailableCredit    decimal.Decimal `json:"availableCredit" example:"5000"`               // Unused credit on active cards
	CreditUtilization  decimal.Decimal `json:"creditUtilization" example:"16.67"`            // Percentage of the credit limit in use
	UpcomingBillsCount int             `json:"upcomingBillsCount" example:"3"`               // Active liabilities still due this month
	UpcomingBillsTotal decimal.Decimal `json:"upcomingBillsTotal" example:"640"`             // Amount of active liabilities still due this month
	MonthlyIncome      decimal.Decimal `json:"monthlyIncome" example:"4330"`                 // Income of this month
	MonthlyExpenses    decimal.Decimal `json:"monthlyExpenses" example:"1210.75"`            // Expenses of this month
	NetCashFlow        decimal.Decimal `json:"netCashFlow" example:"2479.25"`                // Income minus expenses and upcoming bills
}

// Summarize rolls up the snapshot for the month of now.
//
// Upcoming bills are liabilities whose due day has not passed yet this
// month. Weekly income counts WeeksPerMonth times, one-time income only
// when its payment date is in this month.
func Summarize(s models.Snapshot, now time.Time) Summary {
	today := types.Date(now)
	month := types.MonthOf(today)
	c := creditOf(s.CreditCards)

	sum := Summary{
		Month:             month,
		AvailableCash:     s.Profile.CurrentCash,
		TotalCreditLimit:  c.Limit,
		CreditUsed:        c.Used,
		AvailableCredit:   c.Available,
		CreditUtilization: utilization(c.Used, c.Limit),
	}

	for _, l := range s.Liabilities {
		if !l.IsActive {
			continue
		}

		if l.CurrentBalance.Valid {
			sum.TotalLiabilities = sum.TotalLiabilities.Add(l.CurrentBalance.Decimal)
		}

		if l.DueDate >= today.Day() {
			sum.UpcomingBillsCount++
			sum.UpcomingBillsTotal = sum.UpcomingBillsTotal.Add(l.Amount)
		}
	}

	for _, i := range s.IncomeSources {
		if !i.IsActive {
			continue
		}

		switch i.Frequency {
		case models.FrequencyWeekly:
			sum.MonthlyIncome = sum.MonthlyIncome.Add(i.Amount.Mul(WeeksPerMonth))
		case models.FrequencyOneTime:
			if i.PaymentDate != nil && month.Contains(*i.PaymentDate) {
				sum.MonthlyIncome = sum.MonthlyIncome.Add(i.Amount)
			}
		default:
			sum.MonthlyIncome = sum.MonthlyIncome.Add(i.Amount)
		}
	}

	for _, e := range s.Expenses {
		if month.Contains(e.ExpenseDate) {
			sum.MonthlyExpenses = sum.MonthlyExpenses.Add(e.Amount)
		}
	}

	sum.NetCashFlow = sum.MonthlyIncome.Sub(sum.MonthlyExpenses).Sub(sum.UpcomingBillsTotal)

	return sum
}
