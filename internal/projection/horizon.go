package projection

import (
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// HorizonDays is the number of days the affordability check looks ahead and back.
const HorizonDays = 30

// horizon is the date range [from, until] looked at by affordability checks.
type horizon struct {
	from  time.Time
	until time.Time
}

func newHorizon(now time.Time) horizon {
	today := types.Date(now)
	return horizon{from: today, until: today.AddDate(0, 0, HorizonDays)}
}

func (h horizon) contains(t time.Time) bool {
	return types.Between(t, h.from, h.until)
}

// income returns the sum of all income expected within the horizon.
func (h horizon) income(sources []models.IncomeSource) decimal.Decimal {
	sum := decimal.Zero

	for _, i := range sources {
		if !i.IsActive {
			continue
		}

		switch i.Frequency {
		case models.FrequencyOneTime:
			if date, ok := i.OneTimeDate(); ok && h.contains(date) {
				sum = sum.Add(i.Amount)
			}

		case models.FrequencyWeekly:
			anchor, ok := i.Anchor()
			if !ok {
				continue
			}

			first := firstWeekly(anchor, h.from)
			if first.After(h.until) {
				continue
			}

			cycles := 1 + daysBetween(first, h.until)/7
			sum = sum.Add(i.Amount.Mul(decimal.NewFromInt(int64(cycles))))

		default:
			sum = sum.Add(i.Amount.Mul(decimal.NewFromInt(int64(h.monthlyPayments(i)))))
		}
	}

	return sum
}

// monthlyPayments counts the payments of a monthly income within the horizon.
// The horizon is shorter than two months, so there are at most two.
func (h horizon) monthlyPayments(i models.IncomeSource) int {
	anchor, ok := i.Anchor()
	if !ok {
		return 0
	}

	start := types.MonthOf(h.from)
	if anchor.After(h.from) {
		start = types.MonthOf(anchor)
	}

	count := 0
	for n := range 3 {
		date, ok := start.AddDate(0, n).Day(anchor.Day())
		if !ok || date.Before(anchor) || date.Before(h.from) {
			continue
		}

		if date.After(h.until) || count == 2 {
			break
		}

		count++
	}

	return count
}

// liabilities returns the sum of active liabilities due within the horizon.
//
// The next due date is in the current month if the due day has not passed,
// in the next month otherwise. Days that do not exist in a month roll over
// into the following month. Start dates and the number of months to pay
// are not considered.
func (h horizon) liabilities(liabilities []models.Liability) decimal.Decimal {
	sum := decimal.Zero
	year, month, day := h.from.Date()

	for _, l := range liabilities {
		if !l.IsActive {
			continue
		}

		due := time.Date(year, month, l.DueDate, 0, 0, 0, 0, time.UTC)
		if l.DueDate < day {
			due = time.Date(year, month+1, l.DueDate, 0, 0, 0, 0, time.UTC)
		}

		if h.contains(due) {
			sum = sum.Add(l.Amount)
		}
	}

	return sum
}

// recentExpenses returns the sum of all expenses in the days before now.
func recentExpenses(expenses []models.Expense, now time.Time) decimal.Decimal {
	today := types.Date(now)
	from := today.AddDate(0, 0, -HorizonDays)

	sum := decimal.Zero
	for _, e := range expenses {
		if types.Between(e.ExpenseDate, from, today) {
			sum = sum.Add(e.Amount)
		}
	}

	return sum
}
