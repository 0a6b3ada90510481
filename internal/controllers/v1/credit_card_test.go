package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/duewise/backend/internal/controllers/v1"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreditCardsDBClosed() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	suite.CloseDB()
	createTestCreditCard(suite.T(), v1.CreditCardEditable{ProfileID: p.Data.ID}, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestCreditCardsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Credit Card with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Credit Card exists", createTestCreditCard(suite.T(), v1.CreditCardEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/credit-cards/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCreditCardsCreate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name   string
		card   v1.CreditCardEditable
		status int
		err    error
	}{
		{"No profile", v1.CreditCardEditable{DueDate: 3}, http.StatusBadRequest, models.ErrProfileIDRequired},
		{"Non-existing profile", v1.CreditCardEditable{ProfileID: uuid.New(), DueDate: 3}, http.StatusBadRequest, models.ErrReferenceInvalid},
		{"Due date 0", v1.CreditCardEditable{ProfileID: p.Data.ID}, http.StatusBadRequest, models.ErrDueDateInvalid},
		{"Due date 32", v1.CreditCardEditable{ProfileID: p.Data.ID, DueDate: 32}, http.StatusBadRequest, models.ErrDueDateInvalid},
		{"Negative limit", v1.CreditCardEditable{ProfileID: p.Data.ID, DueDate: 3, CreditLimit: decimal.NewFromInt(-1)}, http.StatusBadRequest, models.ErrAmountNegative},
		{"Valid", v1.CreditCardEditable{ProfileID: p.Data.ID, DueDate: 31}, http.StatusCreated, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/credit-cards", []v1.CreditCardEditable{tt.card})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CreditCardCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCreditCardsComputed() {
	c := createTestCreditCard(suite.T(), v1.CreditCardEditable{
		CreditLimit:    decimal.NewFromInt(3000),
		CurrentBalance: decimal.NewFromFloat(1250.5),
	})

	assert.True(suite.T(), decimal.NewFromFloat(1749.5).Equal(c.Data.AvailableCredit), "Available credit is %s", c.Data.AvailableCredit)
	assert.True(suite.T(), *c.Data.IsActive, "cards are active by default")
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/profiles/%s", c.Data.ProfileID), c.Data.Links.Profile)

	over := createTestCreditCard(suite.T(), v1.CreditCardEditable{
		CreditLimit:    decimal.NewFromInt(100),
		CurrentBalance: decimal.NewFromInt(150),
	})
	assert.True(suite.T(), over.Data.AvailableCredit.IsZero(), "Available credit is %s", over.Data.AvailableCredit)
}

func (suite *TestSuiteStandard) TestCreditCardsGetFilter() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{})
	inactive := false

	_ = createTestCreditCard(suite.T(), v1.CreditCardEditable{ProfileID: p1.Data.ID})
	_ = createTestCreditCard(suite.T(), v1.CreditCardEditable{ProfileID: p1.Data.ID, IsActive: &inactive})
	_ = createTestCreditCard(suite.T(), v1.CreditCardEditable{ProfileID: p2.Data.ID})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Profile 1", fmt.Sprintf("profile=%s", p1.Data.ID), 2},
		{"Profile 2", fmt.Sprintf("profile=%s", p2.Data.ID), 1},
		{"Active", "active=true", 2},
		{"Inactive", "active=false", 1},
		{"Profile 1 inactive", fmt.Sprintf("profile=%s&active=false", p1.Data.ID), 1},
		{"Non-existing profile", fmt.Sprintf("profile=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CreditCardListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/credit-cards?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data))
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/credit-cards?profile=NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreditCardsUpdate() {
	c := createTestCreditCard(suite.T(), v1.CreditCardEditable{Name: "Visa", CreditLimit: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"isActive": false, "currentBalance": "400"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CreditCardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.False(suite.T(), *response.Data.IsActive)
	assert.Equal(suite.T(), "Visa", response.Data.Name)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(response.Data.AvailableCredit))

	r = test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"dueDate": 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreditCardsDelete() {
	c := createTestCreditCard(suite.T(), v1.CreditCardEditable{})

	r := test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
