package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/duewise/backend/internal/controllers/v1"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/projection"
	"github.com/duewise/backend/internal/types"
	"github.com/duewise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAffordabilityOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/affordability", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAffordability() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{CurrentCash: decimal.NewFromInt(500)})
	_ = createTestCreditCard(suite.T(), v1.CreditCardEditable{ProfileID: p.Data.ID, CreditLimit: decimal.NewFromInt(3000), CurrentBalance: decimal.NewFromInt(1000)})

	tests := []struct {
		name      string
		body      string
		canAfford bool
		status    projection.Status
		method    projection.Method
		overboard int64
	}{
		{"Cash", `{"purchaseAmount": 300}`, true, projection.StatusAffordable, projection.MethodCash, 0},
		{"Cash and credit", `{"purchaseAmount": "750"}`, true, projection.StatusAffordable, projection.MethodBoth, 0},
		{"Credit only", `{"purchaseAmount": 300, "currentCash": 0}`, true, projection.StatusAffordable, projection.MethodCredit, 0},
		{"Cash of the profile for null", `{"purchaseAmount": 300, "currentCash": null}`, true, projection.StatusAffordable, projection.MethodCash, 0},
		{"Too expensive", `{"purchaseAmount": 5000}`, false, projection.StatusUnaffordable, projection.MethodNone, 2500},
		{"Garbage amount is zero", `{"purchaseAmount": "lots"}`, true, projection.StatusAffordable, projection.MethodCash, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := tt.body[:len(tt.body)-1] + `, "profileId": "` + p.Data.ID.String() + `"}`

			r := test.Request(t, http.MethodPost, "http://example.com/v1/affordability?date=2026-06-10", body)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AffordabilityResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			assert.Equal(t, tt.canAfford, response.Data.CanAfford)
			assert.Equal(t, tt.status, response.Data.Status)
			assert.Equal(t, tt.method, response.Data.Method)
			assert.True(t, decimal.NewFromInt(tt.overboard).Equal(response.Data.OverboardAmount), "Overboard amount: %s", response.Data.OverboardAmount)
			assert.True(t, decimal.NewFromInt(2000).Equal(response.Data.AvailableCredit))
		})
	}
}

func (suite *TestSuiteStandard) TestAffordabilityTight() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{CurrentCash: decimal.NewFromInt(500)})
	_ = createTestIncomeSource(suite.T(), v1.IncomeSourceEditable{ProfileID: p.Data.ID, Amount: decimal.NewFromInt(2000), Frequency: models.FrequencyOneTime, NextPaymentDate: date(2026, 6, 20)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/affordability?date=2026-06-10", v1.AffordabilityRequest{ProfileID: p.Data.ID, PurchaseAmount: types.NewAmount(decimal.NewFromInt(1500))})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AffordabilityResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.CanAfford)
	assert.Equal(suite.T(), projection.StatusTight, response.Data.Status)
	assert.Equal(suite.T(), projection.MethodFutureIncome, response.Data.Method)
	assert.True(suite.T(), decimal.NewFromInt(2000).Equal(response.Data.UpcomingIncome))
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(response.Data.OverboardAmount))
}

func (suite *TestSuiteStandard) TestAffordabilityErrors() {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"No profile", "http://example.com/v1/affordability", `{"purchaseAmount": 10}`, http.StatusBadRequest},
		{"Profile does not exist", "http://example.com/v1/affordability", `{"purchaseAmount": 10, "profileId": "` + uuid.NewString() + `"}`, http.StatusNotFound},
		{"Empty body", "http://example.com/v1/affordability", "", http.StatusBadRequest},
		{"Broken body", "http://example.com/v1/affordability", `{"profileId": 17}`, http.StatusBadRequest},
		{"Invalid date", "http://example.com/v1/affordability?date=2026-13-01", `{"purchaseAmount": 10}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AffordabilityResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}
