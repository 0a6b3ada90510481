package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Profile holds the cash position of a user.
//
// All other resources reference a profile.
type Profile struct {
	DefaultModel
	Name        string          `json:"name"`
	CurrentCash decimal.Decimal `json:"currentCash" gorm:"type:DECIMAL(20,8)"`
	Currency    string          `json:"currency"`
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))

	if p.Currency == "" {
		return nil
	}

	if _, err := currency.ParseISO(p.Currency); err != nil {
		return ErrCurrencyInvalid
	}

	return nil
}
