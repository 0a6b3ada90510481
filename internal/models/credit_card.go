package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditCard is a revolving credit line.
//
// CurrentBalance may exceed CreditLimit, calculations treat the available
// credit of such a card as zero.
type CreditCard struct {
	DefaultModel
	ProfileID      uuid.UUID       `json:"profileId"`
	Profile        Profile         `json:"-"`
	Name           string          `json:"name"`
	CreditLimit    decimal.Decimal `json:"creditLimit" gorm:"type:DECIMAL(20,8)"`
	CurrentBalance decimal.Decimal `json:"currentBalance" gorm:"type:DECIMAL(20,8)"`
	DueDate        int             `json:"dueDate"`
	IsActive       bool            `json:"isActive"`
}

// Available returns the credit that can still be used on the card.
func (c CreditCard) Available() decimal.Decimal {
	return decimal.Max(decimal.Zero, c.CreditLimit.Sub(c.CurrentBalance))
}

func (c *CreditCard) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.ProfileID == uuid.Nil {
		return ErrProfileIDRequired
	}

	if !validDay(c.DueDate) {
		return ErrDueDateInvalid
	}

	if c.CreditLimit.IsNegative() || c.CurrentBalance.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// validDay reports if d can be a day of some month.
func validDay(d int) bool {
	return d >= 1 && d <= 31
}
