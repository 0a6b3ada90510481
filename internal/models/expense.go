package models

import (
	"strings"
	"time"

	"github.com/duewise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent by the profile.
//
// Recurring expenses repeat on DueDate every month from StartDate on.
// An expense referencing a liability records a payment for that liability.
type Expense struct {
	DefaultModel
	ProfileID   uuid.UUID       `json:"profileId"`
	Profile     Profile         `json:"-"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Frequency   Frequency       `json:"frequency"`
	DueDate     *int            `json:"dueDate"`
	StartDate   *time.Time      `json:"startDate"`
	LiabilityID *uuid.UUID      `json:"liabilityId"`
	Liability   *Liability      `json:"-"`
	IsPaid      bool            `json:"isPaid"`
}

// Payment reports if the expense records a liability payment.
func (e Expense) Payment() bool {
	return e.LiabilityID != nil && *e.LiabilityID != uuid.Nil
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.TrimSpace(e.Category)

	if e.ProfileID == uuid.Nil {
		return ErrProfileIDRequired
	}

	if e.Frequency == "" {
		e.Frequency = FrequencyOneTime
	}

	if !e.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if e.DueDate != nil && !validDay(*e.DueDate) {
		return ErrDueDateInvalid
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if e.LiabilityID != nil && *e.LiabilityID == uuid.Nil {
		e.LiabilityID = nil
	}

	e.ExpenseDate = types.Date(e.ExpenseDate)
	e.StartDate = normalizeDate(e.StartDate)

	return nil
}

// BeforeDelete keeps payments. Once a liability is marked as paid,
// it stays paid.
func (e *Expense) BeforeDelete(_ *gorm.DB) error {
	if e.Payment() {
		return ErrPaymentPermanent
	}

	return nil
}
