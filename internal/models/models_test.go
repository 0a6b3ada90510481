package models_test

import (
	"testing"
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
			DeletedAt: &gorm.DeletedAt{Time: time.Now().In(tz)},
		},
	}

	err := model.AfterFind(models.DB)
	suite.Require().Nil(err)

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.DeletedAt.Time.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelKeepsExistingID() {
	id := uuid.New()
	profile := suite.createTestProfile(models.Profile{DefaultModel: models.DefaultModel{ID: id}})

	assert.Equal(suite.T(), id, profile.ID)
}

func (suite *TestSuiteStandard) TestMigrateWithExistingDB() {
	testDB := test.TmpFile(suite.T())

	require.Nil(suite.T(), models.Connect(testDB))
	suite.CloseDB()

	require.Nil(suite.T(), models.Connect(testDB))
}

func (suite *TestSuiteStandard) TestProfileCurrency() {
	profile := suite.createTestProfile(models.Profile{Currency: " eur "})
	assert.Equal(suite.T(), "EUR", profile.Currency)

	err := models.DB.Create(&models.Profile{Currency: "EURO"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCurrencyInvalid)
}

func (suite *TestSuiteStandard) TestValidation() {
	profile := suite.createTestProfile(models.Profile{})
	zero := 0
	thirtyTwo := 32

	tests := []struct {
		name  string
		model any
		err   error
	}{
		{"Card without profile", &models.CreditCard{DueDate: 1}, models.ErrProfileIDRequired},
		{"Card due on day 0", &models.CreditCard{ProfileID: profile.ID}, models.ErrDueDateInvalid},
		{"Card with negative limit", &models.CreditCard{ProfileID: profile.ID, DueDate: 3, CreditLimit: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Liability due on day 32", &models.Liability{ProfileID: profile.ID, DueDate: 32}, models.ErrDueDateInvalid},
		{"Liability with unknown category", &models.Liability{ProfileID: profile.ID, DueDate: 1, Category: "mortgage"}, models.ErrLiabilityCategoryInvalid},
		{"Liability with unknown payment type", &models.Liability{ProfileID: profile.ID, DueDate: 1, PaymentType: "bnpl"}, models.ErrPaymentTypeInvalid},
		{"Liability with zero months", &models.Liability{ProfileID: profile.ID, DueDate: 1, MonthsToPay: &zero}, models.ErrMonthsToPayInvalid},
		{"Liability with negative balance", &models.Liability{ProfileID: profile.ID, DueDate: 1, CurrentBalance: decimal.NewNullDecimal(decimal.NewFromInt(-5))}, models.ErrAmountNegative},
		{"Income with unknown frequency", &models.IncomeSource{ProfileID: profile.ID, Frequency: "daily"}, models.ErrFrequencyInvalid},
		{"Income with negative amount", &models.IncomeSource{ProfileID: profile.ID, Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Expense due on day 32", &models.Expense{ProfileID: profile.ID, DueDate: &thirtyTwo}, models.ErrDueDateInvalid},
		{"Expense without profile", &models.Expense{}, models.ErrProfileIDRequired},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(tt.model).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestDefaults() {
	profile := suite.createTestProfile(models.Profile{})

	liability := suite.createTestLiability(models.Liability{ProfileID: profile.ID, Name: "  Phone  "})
	assert.Equal(suite.T(), "Phone", liability.Name)
	assert.Equal(suite.T(), models.LiabilityCategoryOther, liability.Category)

	income := models.IncomeSource{ProfileID: profile.ID}
	suite.Require().Nil(models.DB.Create(&income).Error)
	assert.Equal(suite.T(), models.FrequencyMonthly, income.Frequency)

	expense := models.Expense{ProfileID: profile.ID, ExpenseDate: time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC)}
	suite.Require().Nil(models.DB.Create(&expense).Error)
	assert.Equal(suite.T(), models.FrequencyOneTime, expense.Frequency)
	assert.Equal(suite.T(), time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), expense.ExpenseDate)
}

func (suite *TestSuiteStandard) TestReferenceInvalid() {
	err := models.DB.Create(&models.Liability{ProfileID: uuid.New(), DueDate: 1}).Error
	assert.ErrorIs(suite.T(), err, models.ErrReferenceInvalid)
}

func (suite *TestSuiteStandard) TestNotFound() {
	tests := []struct {
		model any
		name  string
	}{
		{&models.Profile{}, "profile"},
		{&models.CreditCard{}, "credit card"},
		{&models.Liability{}, "liability"},
		{&models.IncomeSource{}, "income source"},
		{&models.Expense{}, "expense"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.First(tt.model, "id = ?", uuid.New()).Error
			assert.ErrorIs(t, err, models.ErrResourceNotFound)
			assert.Equal(t, "there is no "+tt.name+" matching your query", err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	suite.CloseDB()

	err := models.DB.Create(&models.Profile{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestPaymentCannotBeDeleted() {
	profile := suite.createTestProfile(models.Profile{})
	liability := suite.createTestLiability(models.Liability{ProfileID: profile.ID, Name: "Rent", Amount: decimal.NewFromInt(900)})

	payment := models.PaymentFor(liability, time.Date(2026, 5, 3, 12, 0, 0, 0, time.UTC))
	suite.Require().Nil(models.DB.Create(&payment).Error)

	assert.Equal(suite.T(), models.PaymentCategory, payment.Category)
	assert.Equal(suite.T(), time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC), payment.ExpenseDate)
	assert.True(suite.T(), payment.Amount.Equal(decimal.NewFromInt(900)))
	assert.True(suite.T(), payment.IsPaid)

	err := models.DB.Delete(&payment).Error
	assert.ErrorIs(suite.T(), err, models.ErrPaymentPermanent)

	var count int64
	models.DB.Model(&models.Expense{}).Where("liability_id = ?", liability.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)

	other := models.Expense{ProfileID: profile.ID, Name: "Groceries"}
	suite.Require().Nil(models.DB.Create(&other).Error)
	assert.Nil(suite.T(), models.DB.Delete(&other).Error)
}

func (suite *TestSuiteStandard) TestLoadSnapshot() {
	profile := suite.createTestProfile(models.Profile{CurrentCash: decimal.NewFromInt(250)})
	other := suite.createTestProfile(models.Profile{})

	suite.createTestLiability(models.Liability{ProfileID: profile.ID, Name: "Loan"})
	suite.createTestLiability(models.Liability{ProfileID: other.ID, Name: "Other loan"})
	suite.Require().Nil(models.DB.Create(&models.CreditCard{ProfileID: profile.ID, DueDate: 5}).Error)
	suite.Require().Nil(models.DB.Create(&models.IncomeSource{ProfileID: profile.ID}).Error)
	suite.Require().Nil(models.DB.Create(&models.Expense{ProfileID: profile.ID}).Error)

	snapshot, err := models.LoadSnapshot(models.DB, profile.ID)
	suite.Require().Nil(err)

	assert.True(suite.T(), snapshot.Profile.CurrentCash.Equal(decimal.NewFromInt(250)))
	assert.Len(suite.T(), snapshot.Liabilities, 1)
	assert.Equal(suite.T(), "Loan", snapshot.Liabilities[0].Name)
	assert.Len(suite.T(), snapshot.CreditCards, 1)
	assert.Len(suite.T(), snapshot.IncomeSources, 1)
	assert.Len(suite.T(), snapshot.Expenses, 1)

	_, err = models.LoadSnapshot(models.DB, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
