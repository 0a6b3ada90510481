package models

import (
	"strings"
	"time"

	"github.com/duewise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Liability is an obligation that is due on a day of the month.
//
// With MonthsToPay set, the liability ends after that many months counted
// from the month of its start date. Without it, it recurs indefinitely.
type Liability struct {
	DefaultModel
	ProfileID      uuid.UUID           `json:"profileId"`
	Profile        Profile             `json:"-"`
	Name           string              `json:"name"`
	Amount         decimal.Decimal     `json:"amount" gorm:"type:DECIMAL(20,8)"`
	DueDate        int                 `json:"dueDate"`
	Category       LiabilityCategory   `json:"category"`
	PaymentType    PaymentType         `json:"paymentType"`
	CurrentBalance decimal.NullDecimal `json:"currentBalance" gorm:"type:DECIMAL(20,8)"`
	MonthsToPay    *int                `json:"monthsToPay"`
	StartDate      *time.Time          `json:"startDate"`
	IsActive       bool                `json:"isActive"`
}

// Start returns the date the liability starts, falling back to its creation time.
func (l Liability) Start() time.Time {
	if l.StartDate != nil {
		return types.Date(*l.StartDate)
	}
	return types.Date(l.CreatedAt)
}

// End returns the last day of the last month the liability is due in.
//
// ok is false for liabilities without an end.
func (l Liability) End() (end time.Time, ok bool) {
	if l.MonthsToPay == nil || *l.MonthsToPay <= 0 {
		return time.Time{}, false
	}

	return types.MonthOf(l.Start()).AddDate(0, *l.MonthsToPay-1).Last(), true
}

// Installment reports if the liability is paid off in a fixed number of payments.
func (l Liability) Installment() bool {
	return l.PaymentType == PaymentTypeInstallment || l.Category == LiabilityCategoryLoan
}

func (l *Liability) BeforeSave(_ *gorm.DB) error {
	l.Name = strings.TrimSpace(l.Name)

	if l.ProfileID == uuid.Nil {
		return ErrProfileIDRequired
	}

	if l.Category == "" {
		l.Category = LiabilityCategoryOther
	}

	if !l.Category.Valid() {
		return ErrLiabilityCategoryInvalid
	}

	if !l.PaymentType.Valid() {
		return ErrPaymentTypeInvalid
	}

	if !validDay(l.DueDate) {
		return ErrDueDateInvalid
	}

	if l.Amount.IsNegative() || (l.CurrentBalance.Valid && l.CurrentBalance.Decimal.IsNegative()) {
		return ErrAmountNegative
	}

	if l.MonthsToPay != nil && *l.MonthsToPay <= 0 {
		return ErrMonthsToPayInvalid
	}

	if l.StartDate != nil {
		d := types.Date(*l.StartDate)
		l.StartDate = &d
	}

	return nil
}
