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

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	suite.CloseDB()
	createTestExpense(suite.T(), v1.ExpenseEditable{ProfileID: p.Data.ID}, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestExpense(suite.T(), v1.ExpenseEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	day := 0

	tests := []struct {
		name    string
		expense v1.ExpenseEditable
		status  int
		err     error
	}{
		{"No profile", v1.ExpenseEditable{}, http.StatusBadRequest, models.ErrProfileIDRequired},
		{"Invalid frequency", v1.ExpenseEditable{ProfileID: p.Data.ID, Frequency: "yearly"}, http.StatusBadRequest, models.ErrFrequencyInvalid},
		{"Invalid due date", v1.ExpenseEditable{ProfileID: p.Data.ID, DueDate: &day}, http.StatusBadRequest, models.ErrDueDateInvalid},
		{"Negative amount", v1.ExpenseEditable{ProfileID: p.Data.ID, Amount: decimal.NewFromInt(-3)}, http.StatusBadRequest, models.ErrAmountNegative},
		{"Non-existing liability", v1.ExpenseEditable{ProfileID: p.Data.ID, LiabilityID: func() *uuid.UUID { id := uuid.New(); return &id }()}, http.StatusBadRequest, models.ErrReferenceInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{tt.expense})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ExpenseCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDefaults() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{Category: " Food "})

	assert.Equal(suite.T(), models.FrequencyOneTime, e.Data.Frequency)
	assert.Equal(suite.T(), "Food", e.Data.Category)
	assert.False(suite.T(), e.Data.ExpenseDate.IsZero(), "the expense date defaults to today")
	assert.False(suite.T(), e.Data.Payment)
	assert.Equal(suite.T(), "", e.Data.Links.Liability)
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	l := createTestLiability(suite.T(), v1.LiabilityEditable{ProfileID: p.Data.ID})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{ProfileID: p.Data.ID, Name: "Groceries", Category: "Food", ExpenseDate: *date(2026, 5, 31)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{ProfileID: p.Data.ID, Name: "Restaurant", Category: "Food", ExpenseDate: *date(2026, 6, 1)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{ProfileID: p.Data.ID, Name: "Streaming", Category: "Fun", ExpenseDate: *date(2026, 6, 30), Frequency: models.FrequencyMonthly})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{ProfileID: p.Data.ID, Name: "Payment", Category: "Bills", ExpenseDate: *date(2026, 7, 1), LiabilityID: &l.Data.ID})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"Profile, newest first", fmt.Sprintf("profile=%s", p.Data.ID), []string{"Payment", "Streaming", "Restaurant", "Groceries"}},
		{"Category", "category=Food", []string{"Restaurant", "Groceries"}},
		{"Frequency", "frequency=monthly", []string{"Streaming"}},
		{"Liability", fmt.Sprintf("liability=%s", l.Data.ID), []string{"Payment"}},
		{"Month", "month=2026-06", []string{"Streaming", "Restaurant"}},
		{"Month and category", "month=2026-05&category=Food", []string{"Groceries"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ExpenseListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			names := make([]string, 0, len(re.Data))
			for _, e := range re.Data {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=June", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{Name: "Coffee", Amount: decimal.NewFromFloat(3.2)})

	r := test.Request(suite.T(), http.MethodPatch, e.Data.Links.Self, map[string]any{"amount": "4.1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Coffee", response.Data.Name)
	assert.True(suite.T(), decimal.NewFromFloat(4.1).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodDelete, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
