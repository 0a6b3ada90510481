package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/duewise/backend/internal/controllers/v1"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLiabilitiesDBClosed() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	suite.CloseDB()
	createTestLiability(suite.T(), v1.LiabilityEditable{ProfileID: p.Data.ID}, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLiabilitiesOptions() {
	l := createTestLiability(suite.T(), v1.LiabilityEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/liabilities", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Existing", l.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Payments", l.Data.Links.Payments, http.StatusNoContent, "OPTIONS, POST"},
		{"Not existing", fmt.Sprintf("http://example.com/v1/liabilities/%s", uuid.New()), http.StatusNotFound, ""},
		{"Payments of not existing", fmt.Sprintf("http://example.com/v1/liabilities/%s/payments", uuid.New()), http.StatusNotFound, ""},
		{"Not a UUID", "http://example.com/v1/liabilities/nope", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLiabilitiesCreate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	zero := 0

	tests := []struct {
		name      string
		liability v1.LiabilityEditable
		status    int
		err       error
	}{
		{"No profile", v1.LiabilityEditable{DueDate: 3}, http.StatusBadRequest, models.ErrProfileIDRequired},
		{"Invalid due date", v1.LiabilityEditable{ProfileID: p.Data.ID, DueDate: 40}, http.StatusBadRequest, models.ErrDueDateInvalid},
		{"Invalid category", v1.LiabilityEditable{ProfileID: p.Data.ID, DueDate: 3, Category: "mortgage"}, http.StatusBadRequest, models.ErrLiabilityCategoryInvalid},
		{"Invalid payment type", v1.LiabilityEditable{ProfileID: p.Data.ID, DueDate: 3, PaymentType: "lump_sum"}, http.StatusBadRequest, models.ErrPaymentTypeInvalid},
		{"Zero months to pay", v1.LiabilityEditable{ProfileID: p.Data.ID, DueDate: 3, MonthsToPay: &zero}, http.StatusBadRequest, models.ErrMonthsToPayInvalid},
		{"Negative balance", v1.LiabilityEditable{ProfileID: p.Data.ID, DueDate: 3, CurrentBalance: decimal.NewNullDecimal(decimal.NewFromInt(-5))}, http.StatusBadRequest, models.ErrAmountNegative},
		{"Valid", v1.LiabilityEditable{ProfileID: p.Data.ID, DueDate: 3, Category: models.LiabilityCategoryLoan}, http.StatusCreated, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/liabilities", []v1.LiabilityEditable{tt.liability})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.LiabilityCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLiabilitiesComputed() {
	months := 24
	l := createTestLiability(suite.T(), v1.LiabilityEditable{
		Category:    models.LiabilityCategoryLoan,
		MonthsToPay: &months,
		StartDate:   date(2026, 1, 1),
	})

	assert.Equal(suite.T(), "Loan", l.Data.CategoryLabel)
	require.NotNil(suite.T(), l.Data.EndDate)
	assert.True(suite.T(), time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC).Equal(*l.Data.EndDate), "End date is %s", l.Data.EndDate)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/expenses?liability=%s", l.Data.ID), l.Data.Links.Expenses)

	other := createTestLiability(suite.T(), v1.LiabilityEditable{})
	assert.Equal(suite.T(), models.LiabilityCategoryOther, other.Data.Category, "the category defaults to other")
	assert.Nil(suite.T(), other.Data.EndDate, "liabilities without months to pay never end")
}

func (suite *TestSuiteStandard) TestLiabilitiesGetFilter() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	inactive := false

	_ = createTestLiability(suite.T(), v1.LiabilityEditable{ProfileID: p.Data.ID, Name: "Rent", DueDate: 1, Category: models.LiabilityCategoryRecurringBill})
	_ = createTestLiability(suite.T(), v1.LiabilityEditable{ProfileID: p.Data.ID, Name: "Phone", DueDate: 12, Category: models.LiabilityCategoryCreditCard, PaymentType: models.PaymentTypeInstallment})
	_ = createTestLiability(suite.T(), v1.LiabilityEditable{ProfileID: p.Data.ID, Name: "Car", DueDate: 5, Category: models.LiabilityCategoryLoan, IsActive: &inactive})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"Profile, by due date", fmt.Sprintf("profile=%s", p.Data.ID), []string{"Rent", "Car", "Phone"}},
		{"Category", "category=loan", []string{"Car"}},
		{"Payment type", "paymentType=installment", []string{"Phone"}},
		{"Active", "active=true", []string{"Rent", "Phone"}},
		{"Inactive", "active=false", []string{"Car"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.LiabilityListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/liabilities?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			names := make([]string, 0, len(re.Data))
			for _, l := range re.Data {
				names = append(names, l.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestLiabilitiesUpdate() {
	l := createTestLiability(suite.T(), v1.LiabilityEditable{Name: "Gym", DueDate: 7, Amount: decimal.NewFromInt(30)})

	r := test.Request(suite.T(), http.MethodPatch, l.Data.Links.Self, map[string]any{"amount": "35.5", "isActive": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LiabilityResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Gym", response.Data.Name)
	assert.Equal(suite.T(), 7, response.Data.DueDate)
	assert.False(suite.T(), *response.Data.IsActive)
	assert.True(suite.T(), decimal.NewFromFloat(35.5).Equal(response.Data.Amount))

	r = test.Request(suite.T(), http.MethodPatch, l.Data.Links.Self, map[string]any{"category": "nope"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLiabilitiesDelete() {
	l := createTestLiability(suite.T(), v1.LiabilityEditable{})

	r := test.Request(suite.T(), http.MethodDelete, l.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, l.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
