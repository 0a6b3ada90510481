package v1

import (
	"fmt"
	"time"

	"github.com/duewise/backend/internal/models"
	dw_uuid "github.com/duewise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	ProfileID   uuid.UUID        `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`   // ID of the profile the expense belongs to
	Name        string           `json:"name" example:"Groceries" default:""`                        // Name of the expense
	Category    string           `json:"category" example:"Food" default:""`                         // Free text category
	Amount      decimal.Decimal  `json:"amount" example:"84.2" default:"0"`                          // Amount spent
	ExpenseDate time.Time        `json:"expenseDate" example:"2026-06-03T00:00:00Z"`                 // Date of the expense. Defaults to today
	Frequency   models.Frequency `json:"frequency" example:"one_time" default:"one_time"`            // One of one_time, monthly, weekly
	DueDate     *int             `json:"dueDate" example:"12"`                                       // Day of the month a recurring expense is due
	StartDate   *time.Time       `json:"startDate" example:"2026-01-01T00:00:00Z"`                   // First month of a recurring expense
	LiabilityID *uuid.UUID       `json:"liabilityId" example:"0a7cb8b6-3d1b-4a46-99ad-2a4a5f9e7c3a"` // The liability this expense pays for
	IsPaid      bool             `json:"isPaid" example:"true" default:"false"`                      // Has the expense been paid?
}

func (editable ExpenseEditable) model() models.Expense {
	expenseDate := editable.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	return models.Expense{
		ProfileID:   editable.ProfileID,
		Name:        editable.Name,
		Category:    editable.Category,
		Amount:      editable.Amount,
		ExpenseDate: expenseDate,
		Frequency:   editable.Frequency,
		DueDate:     editable.DueDate,
		StartDate:   editable.StartDate,
		LiabilityID: editable.LiabilityID,
		IsPaid:      editable.IsPaid,
	}
}

type ExpenseLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"`         // The expense itself
	Profile   string `json:"profile" example:"https://example.com/api/v1/profiles/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`      // The profile of the expense
	Liability string `json:"liability" example:"https://example.com/api/v1/liabilities/0a7cb8b6-3d1b-4a46-99ad-2a4a5f9e7c3a"` // The liability paid by the expense. Empty if it is not a payment
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`

	// These fields are computed
	Payment bool `json:"payment" example:"false"` // Does the expense record a liability payment?
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	e := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			ProfileID:   model.ProfileID,
			Name:        model.Name,
			Category:    model.Category,
			Amount:      model.Amount,
			ExpenseDate: model.ExpenseDate,
			Frequency:   model.Frequency,
			DueDate:     model.DueDate,
			StartDate:   model.StartDate,
			LiabilityID: model.LiabilityID,
			IsPaid:      model.IsPaid,
		},
		Links: ExpenseLinks{
			Self:    fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
		Payment: model.Payment(),
	}

	if model.Payment() {
		e.Links.Liability = fmt.Sprintf("%s/v1/liabilities/%s", url, *model.LiabilityID)
	}

	return e
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of Expenses
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	ProfileID   dw_uuid.UUID     `form:"profile"`                   // By ID of the Profile
	LiabilityID dw_uuid.UUID     `form:"liability"`                 // By ID of the Liability. Empty for expenses that are not payments
	Category    string           `form:"category"`                  // By category
	Frequency   models.Frequency `form:"frequency"`                 // By frequency
	Month       string           `form:"month" filterField:"false"` // By month of the expense date in YYYY-MM format
}

func (f ExpenseQueryFilter) model() models.Expense {
	e := models.Expense{
		ProfileID: f.ProfileID.UUID,
		Category:  f.Category,
		Frequency: f.Frequency,
	}

	if !f.LiabilityID.IsNil() {
		id := f.LiabilityID.UUID
		e.LiabilityID = &id
	}

	return e
}
