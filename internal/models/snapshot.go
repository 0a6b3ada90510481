package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Snapshot is everything stored for one profile at one point in time.
type Snapshot struct {
	Profile       Profile        `json:"profile"`
	CreditCards   []CreditCard   `json:"creditCards"`
	Liabilities   []Liability    `json:"liabilities"`
	IncomeSources []IncomeSource `json:"incomeSources"`
	Expenses      []Expense      `json:"expenses"`
}

// LoadSnapshot reads all resources of a profile.
func LoadSnapshot(db *gorm.DB, profileID uuid.UUID) (Snapshot, error) {
	var s Snapshot

	err := db.First(&s.Profile, "id = ?", profileID).Error
	if err != nil {
		return Snapshot{}, err
	}

	err = db.Where("profile_id = ?", profileID).Order("created_at").Find(&s.CreditCards).Error
	if err != nil {
		return Snapshot{}, err
	}

	err = db.Where("profile_id = ?", profileID).Order("created_at").Find(&s.Liabilities).Error
	if err != nil {
		return Snapshot{}, err
	}

	err = db.Where("profile_id = ?", profileID).Order("created_at").Find(&s.IncomeSources).Error
	if err != nil {
		return Snapshot{}, err
	}

	err = db.Where("profile_id = ?", profileID).Order("expense_date").Find(&s.Expenses).Error
	if err != nil {
		return Snapshot{}, err
	}

	return s, nil
}
