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

// LiabilityEditable represents all user configurable parameters
type LiabilityEditable struct {
	ProfileID      uuid.UUID                `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the profile the liability belongs to
	Name           string                   `json:"name" example:"Car loan" default:""`                           // Name of the liability
	Amount         decimal.Decimal          `json:"amount" example:"320.5" default:"0"`                           // Amount due every month
	DueDate        int                      `json:"dueDate" example:"20"`                                         // Day of the month the liability is due
	Category       models.LiabilityCategory `json:"category" example:"loan" default:"other"`                      // One of credit_card, loan, recurring_bill, other
	PaymentType    models.PaymentType       `json:"paymentType" example:"installment" default:""`                 // straight, installment or empty
	CurrentBalance decimal.NullDecimal      `json:"currentBalance" example:"5400" swaggertype:"primitive,string"` // Outstanding balance
	MonthsToPay    *int                     `json:"monthsToPay" example:"24"`                                     // Number of monthly payments. Unbounded if not set
	StartDate      *time.Time               `json:"startDate" example:"2026-01-01T00:00:00Z"`                     // Date of the first payment. Defaults to the creation date
	IsActive       *bool                    `json:"isActive" example:"true" default:"true"`                       // Is the liability still being paid? Defaults to true
}

func (editable LiabilityEditable) model() models.Liability {
	return models.Liability{
		ProfileID:      editable.ProfileID,
		Name:           editable.Name,
		Amount:         editable.Amount,
		DueDate:        editable.DueDate,
		Category:       editable.Category,
		PaymentType:    editable.PaymentType,
		CurrentBalance: editable.CurrentBalance,
		MonthsToPay:    editable.MonthsToPay,
		StartDate:      editable.StartDate,
		IsActive:       active(editable.IsActive),
	}
}

type LiabilityLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/liabilities/3b1ea324-d438-4419-882a-2fc91d71772f"`              // The liability itself
	Profile  string `json:"profile" example:"https://example.com/api/v1/profiles/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`              // The profile of the liability
	Payments string `json:"payments" example:"https://example.com/api/v1/liabilities/3b1ea324-d438-4419-882a-2fc91d71772f/payments"` // Marks the liability as paid
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?liability=3b1ea324-d438-4419-882a-2fc91d71772f"`   // Payments made for the liability
}

type Liability struct {
	models.DefaultModel
	LiabilityEditable
	Links LiabilityLinks `json:"links"`

	// These fields are computed
	CategoryLabel string     `json:"categoryLabel" example:"Loan"`           // Human readable category
	EndDate       *time.Time `json:"endDate" example:"2027-12-31T00:00:00Z"` // Last day of the last month the liability is due in
}

func newLiability(c *gin.Context, model models.Liability) Liability {
	url := c.GetString(string(models.DBContextURL))
	isActive := model.IsActive

	l := Liability{
		DefaultModel: model.DefaultModel,
		LiabilityEditable: LiabilityEditable{
			ProfileID:      model.ProfileID,
			Name:           model.Name,
			Amount:         model.Amount,
			DueDate:        model.DueDate,
			Category:       model.Category,
			PaymentType:    model.PaymentType,
			CurrentBalance: model.CurrentBalance,
			MonthsToPay:    model.MonthsToPay,
			StartDate:      model.StartDate,
			IsActive:       &isActive,
		},
		Links: LiabilityLinks{
			Self:     fmt.Sprintf("%s/v1/liabilities/%s", url, model.ID),
			Profile:  fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
			Payments: fmt.Sprintf("%s/v1/liabilities/%s/payments", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?liability=%s", url, model.ID),
		},
		CategoryLabel: model.Category.Label(),
	}

	if end, ok := model.End(); ok {
		l.EndDate = &end
	}

	return l
}

type LiabilityListResponse struct {
	Data  []Liability `json:"data"`                                                          // List of Liabilities
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LiabilityCreateResponse struct {
	Data  []LiabilityResponse `json:"data"`                                                          // List of the created Liabilities or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *LiabilityCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, LiabilityResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type LiabilityResponse struct {
	Data  *Liability `json:"data"`                                                          // Data for the Liability
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LiabilityQueryFilter struct {
	ProfileID   dw_uuid.UUID             `form:"profile"`     // By ID of the Profile
	Category    models.LiabilityCategory `form:"category"`    // By category
	PaymentType models.PaymentType       `form:"paymentType"` // By payment type
	IsActive    bool                     `form:"active"`      // Is the liability active?
}

func (f LiabilityQueryFilter) model() models.Liability {
	return models.Liability{
		ProfileID:   f.ProfileID.UUID,
		Category:    f.Category,
		PaymentType: f.PaymentType,
		IsActive:    f.IsActive,
	}
}
