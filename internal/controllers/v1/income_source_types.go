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

// IncomeSourceEditable represents all user configurable parameters
type IncomeSourceEditable struct {
	ProfileID       uuid.UUID        `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the profile the income belongs to
	Name            string           `json:"name" example:"Salary" default:""`                         // Name of the income source
	Amount          decimal.Decimal  `json:"amount" example:"2500" default:"0"`                        // Amount of each payment
	Frequency       models.Frequency `json:"frequency" example:"monthly" default:"monthly"`            // One of one_time, monthly, weekly
	NextPaymentDate *time.Time       `json:"nextPaymentDate" example:"2026-06-25T00:00:00Z"`           // Date of the next payment
	PaymentDate     *time.Time       `json:"paymentDate" example:"2026-05-25T00:00:00Z"`               // Date of the last payment
	IsReceived      bool             `json:"isReceived" example:"false" default:"false"`               // Has a one-time income been received?
	IsActive        *bool            `json:"isActive" example:"true" default:"true"`                   // Is the income still paid? Defaults to true
}

func (editable IncomeSourceEditable) model() models.IncomeSource {
	return models.IncomeSource{
		ProfileID:       editable.ProfileID,
		Name:            editable.Name,
		Amount:          editable.Amount,
		Frequency:       editable.Frequency,
		NextPaymentDate: editable.NextPaymentDate,
		PaymentDate:     editable.PaymentDate,
		IsReceived:      editable.IsReceived,
		IsActive:        active(editable.IsActive),
	}
}

type IncomeSourceLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/income-sources/3b1ea324-d438-4419-882a-2fc91d71772f"` // The income source itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // The profile of the income source
}

type IncomeSource struct {
	models.DefaultModel
	IncomeSourceEditable
	Links IncomeSourceLinks `json:"links"`
}

func newIncomeSource(c *gin.Context, model models.IncomeSource) IncomeSource {
	url := c.GetString(string(models.DBContextURL))
	isActive := model.IsActive

	return IncomeSource{
		DefaultModel: model.DefaultModel,
		IncomeSourceEditable: IncomeSourceEditable{
			ProfileID:       model.ProfileID,
			Name:            model.Name,
			Amount:          model.Amount,
			Frequency:       model.Frequency,
			NextPaymentDate: model.NextPaymentDate,
			PaymentDate:     model.PaymentDate,
			IsReceived:      model.IsReceived,
			IsActive:        &isActive,
		},
		Links: IncomeSourceLinks{
			Self:    fmt.Sprintf("%s/v1/income-sources/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

type IncomeSourceListResponse struct {
	Data  []IncomeSource `json:"data"`                                                          // List of Income Sources
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeSourceCreateResponse struct {
	Data  []IncomeSourceResponse `json:"data"`                                                          // List of the created Income Sources or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *IncomeSourceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeSourceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeSourceResponse struct {
	Data  *IncomeSource `json:"data"`                                                          // Data for the Income Source
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeSourceQueryFilter struct {
	ProfileID dw_uuid.UUID     `form:"profile"`   // By ID of the Profile
	Frequency models.Frequency `form:"frequency"` // By frequency
	IsActive  bool             `form:"active"`    // Is the income source active?
}

func (f IncomeSourceQueryFilter) model() models.IncomeSource {
	return models.IncomeSource{
		ProfileID: f.ProfileID.UUID,
		Frequency: f.Frequency,
		IsActive:  f.IsActive,
	}
}
