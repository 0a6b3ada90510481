// Package projection turns stored financial facts into dated events,
// affordability verdicts and summaries.
//
// All functions are pure. They read the snapshot they are given and a
// reference time and never return errors: data that cannot produce an
// occurrence is skipped.
package projection

import (
	"fmt"
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// swagger:enum Kind
type Kind string

const (
	KindLiability Kind = "liability"
	KindExpense   Kind = "expense"
	KindIncome    Kind = "income"
)

// order is used to sort events on the same day.
func (k Kind) order() int {
	switch k {
	case KindIncome:
		return 0
	case KindLiability:
		return 1
	default:
		return 2
	}
}

// Group is the filter group an event belongs to.
//
// swagger:enum Group
type Group string

const (
	GroupRecurringExpenses Group = "recurring_expenses"
	GroupCreditCards       Group = "credit_cards"
	GroupLoans             Group = "loans"
	GroupInstallments      Group = "installments"
	GroupIncome            Group = "income"
	GroupOther             Group = "other"
)

// Groups are all filter groups.
var Groups = []Group{GroupRecurringExpenses, GroupCreditCards, GroupLoans, GroupInstallments, GroupIncome, GroupOther}

// ParseGroup returns the group for s. ok is false for unknown groups.
func ParseGroup(s string) (g Group, ok bool) {
	for _, g := range Groups {
		if string(g) == s {
			return g, true
		}
	}

	return "", false
}

// liabilityGroup returns the filter group for a liability.
func liabilityGroup(l models.Liability) Group {
	switch l.Category {
	case models.LiabilityCategoryCreditCard:
		if l.PaymentType == models.PaymentTypeInstallment {
			return GroupInstallments
		}
		return GroupCreditCards
	case models.LiabilityCategoryLoan:
		return GroupLoans
	case models.LiabilityCategoryRecurringBill:
		return GroupRecurringExpenses
	default:
		return GroupOther
	}
}

// Event is one dated occurrence of a liability, expense or income.
type Event struct {
	ID             string          `json:"id" example:"0c6f0b4a-5d3b-4a4e-8f8e-0a8a9bd0c7c2-1780272000000"` // Identity of the occurrence
	Kind           Kind            `json:"kind" example:"liability"`                                        // Kind of the source
	SourceID       uuid.UUID       `json:"sourceId" example:"0c6f0b4a-5d3b-4a4e-8f8e-0a8a9bd0c7c2"`         // ID of the liability, expense or income source
	Name           string          `json:"name" example:"Car loan"`                                         // Name of the source
	Amount         decimal.Decimal `json:"amount" example:"320.5"`                                          // Amount due or received
	Category       string          `json:"category" example:"loan"`                                         // Category of the source
	CategoryLabel  string          `json:"categoryLabel" example:"Loan"`                                    // Human readable category
	DueDate        time.Time       `json:"dueDate" example:"2026-06-01T00:00:00Z"`                          // Date of the occurrence
	IsPaid         bool            `json:"isPaid" example:"false"`                                          // Is the liability paid for this month?
	IsReceived     bool            `json:"isReceived" example:"false"`                                      // Is the one-time income received?
	Group          Group           `json:"group" example:"loans"`                                           // Filter group
	PaymentCounter string          `json:"paymentCounter,omitempty" example:"3/12"`                         // Number of the installment
}

// Income reports if the event is money received.
func (e Event) Income() bool {
	return e.Kind == KindIncome
}

// occurrenceID identifies the occurrence of a source on a date.
func occurrenceID(source uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s-%d", source, date.UnixMilli())
}
