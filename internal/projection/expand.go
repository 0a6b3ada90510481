package projection

import (
	"fmt"
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/types"
)

const (
	incomeCategory = "income"
	incomeLabel    = "Income"
)

// ExpandLiability returns the occurrence of a liability in a month.
//
// The liability is due on its DueDate in every month from the month of its
// start to the month of its end. Months in which the day does not exist
// have no occurrence. The expenses are searched for payments of the liability.
func ExpandLiability(l models.Liability, month types.Month, expenses []models.Expense) []Event {
	if !l.IsActive {
		return nil
	}

	start := l.Start()
	if month.Last().Before(start) {
		return nil
	}

	end, bounded := l.End()
	if bounded && month.First().After(end) {
		return nil
	}

	due, ok := month.Day(l.DueDate)
	if !ok || (bounded && due.After(end)) {
		return nil
	}

	category := l.Category.Normalized()
	event := Event{
		ID:            occurrenceID(l.ID, due),
		Kind:          KindLiability,
		SourceID:      l.ID,
		Name:          l.Name,
		Amount:        l.Amount,
		Category:      string(category),
		CategoryLabel: category.Label(),
		DueDate:       due,
		IsPaid:        IsPaid(l.ID, month, expenses),
		Group:         liabilityGroup(l),
	}

	if l.Installment() && bounded {
		k := 1 + types.MonthOf(start).MonthsUntil(month)
		if k >= 1 && k <= *l.MonthsToPay {
			event.PaymentCounter = fmt.Sprintf("%d/%d", k, *l.MonthsToPay)
		}
	}

	return []Event{event}
}

// ExpandExpense returns the occurrence of a recurring expense in a month.
//
// One-time expenses and recurring expenses without due date or start date
// have no occurrences.
func ExpandExpense(e models.Expense, month types.Month) []Event {
	if !e.Frequency.Recurring() || e.DueDate == nil || e.StartDate == nil {
		return nil
	}

	if month.Last().Before(types.Date(*e.StartDate)) {
		return nil
	}

	due, ok := month.Day(*e.DueDate)
	if !ok {
		return nil
	}

	label := e.Category
	if label == "" {
		label = models.LiabilityCategoryOther.Label()
	}

	return []Event{{
		ID:            occurrenceID(e.ID, due),
		Kind:          KindExpense,
		SourceID:      e.ID,
		Name:          e.Name,
		Amount:        e.Amount,
		Category:      e.Category,
		CategoryLabel: label,
		DueDate:       due,
		Group:         GroupRecurringExpenses,
	}}
}

// ExpandIncome returns the occurrences of an income source in a month.
func ExpandIncome(i models.IncomeSource, month types.Month) []Event {
	if !i.IsActive {
		return nil
	}

	switch i.Frequency {
	case models.FrequencyOneTime:
		date, ok := i.OneTimeDate()
		if !ok || !month.Contains(date) {
			return nil
		}
		return []Event{incomeEvent(i, date, i.IsReceived)}

	case models.FrequencyWeekly:
		anchor, ok := i.Anchor()
		if !ok {
			return nil
		}

		var events []Event
		for d := firstWeekly(anchor, month.First()); !d.After(month.Last()); d = d.AddDate(0, 0, 7) {
			events = append(events, incomeEvent(i, d, false))
		}
		return events

	default:
		anchor, ok := i.Anchor()
		if !ok || month.Last().Before(anchor) {
			return nil
		}

		date, ok := month.Day(anchor.Day())
		if !ok || date.Before(anchor) {
			return nil
		}
		return []Event{incomeEvent(i, date, false)}
	}
}

func incomeEvent(i models.IncomeSource, date time.Time, received bool) Event {
	return Event{
		ID:            occurrenceID(i.ID, date),
		Kind:          KindIncome,
		SourceID:      i.ID,
		Name:          i.Name,
		Amount:        i.Amount,
		Category:      incomeCategory,
		CategoryLabel: incomeLabel,
		DueDate:       date,
		IsReceived:    received,
		Group:         GroupIncome,
	}
}

// firstWeekly returns the first date that is a whole number of weeks
// after anchor and not before from. Occurrences never precede the anchor.
func firstWeekly(anchor, from time.Time) time.Time {
	if !anchor.Before(from) {
		return anchor
	}

	weeks := (daysBetween(anchor, from) + 6) / 7
	return anchor.AddDate(0, 0, 7*weeks)
}

// daysBetween returns the number of calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(types.Date(b).Sub(types.Date(a)).Hours() / 24)
}
