package models

import (
	"strings"
	"time"

	"github.com/duewise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeSource is money the profile receives, either once or repeatedly.
type IncomeSource struct {
	DefaultModel
	ProfileID       uuid.UUID       `json:"profileId"`
	Profile         Profile         `json:"-"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Frequency       Frequency       `json:"frequency"`
	NextPaymentDate *time.Time      `json:"nextPaymentDate"`
	PaymentDate     *time.Time      `json:"paymentDate"`
	IsReceived      bool            `json:"isReceived"`
	IsActive        bool            `json:"isActive"`
}

// Anchor returns the date recurring income is counted from.
//
// The next payment date is preferred over the last payment date.
func (i IncomeSource) Anchor() (time.Time, bool) {
	if i.NextPaymentDate != nil {
		return types.Date(*i.NextPaymentDate), true
	}

	if i.PaymentDate != nil {
		return types.Date(*i.PaymentDate), true
	}

	return time.Time{}, false
}

// OneTimeDate returns the date of a one-time income.
//
// Once received, the payment date is used, the next payment date before.
func (i IncomeSource) OneTimeDate() (time.Time, bool) {
	date := i.NextPaymentDate
	if i.IsReceived {
		date = i.PaymentDate
	}

	if date == nil {
		return time.Time{}, false
	}

	return types.Date(*date), true
}

func (i *IncomeSource) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)

	if i.ProfileID == uuid.Nil {
		return ErrProfileIDRequired
	}

	if i.Frequency == "" {
		i.Frequency = FrequencyMonthly
	}

	if !i.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	i.NextPaymentDate = normalizeDate(i.NextPaymentDate)
	i.PaymentDate = normalizeDate(i.PaymentDate)

	return nil
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	d := types.Date(*t)
	return &d
}
