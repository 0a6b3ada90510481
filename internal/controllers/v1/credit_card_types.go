package v1

import (
	"fmt"

	"github.com/duewise/backend/internal/models"
	dw_uuid "github.com/duewise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCardEditable represents all user configurable parameters
type CreditCardEditable struct {
	ProfileID      uuid.UUID       `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the profile the card belongs to
	Name           string          `json:"name" example:"Visa Gold" default:""`                      // Name of the card
	CreditLimit    decimal.Decimal `json:"creditLimit" example:"5000" default:"0"`                   // Credit limit
	CurrentBalance decimal.Decimal `json:"currentBalance" example:"1250.3" default:"0"`              // Balance currently used
	DueDate        int             `json:"dueDate" example:"15"`                                     // Day of the month the statement is due
	IsActive       *bool           `json:"isActive" example:"true" default:"true"`                   // Is the card in use? Defaults to true
}

func (editable CreditCardEditable) model() models.CreditCard {
	return models.CreditCard{
		ProfileID:      editable.ProfileID,
		Name:           editable.Name,
		CreditLimit:    editable.CreditLimit,
		CurrentBalance: editable.CurrentBalance,
		DueDate:        editable.DueDate,
		IsActive:       active(editable.IsActive),
	}
}

// active returns the value of an isActive field, which defaults to true.
func active(b *bool) bool {
	return b == nil || *b
}

type CreditCardLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/credit-cards/3b1ea324-d438-4419-882a-2fc91d71772f"` // The card itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`  // The profile of the card
}

type CreditCard struct {
	models.DefaultModel
	CreditCardEditable
	Links CreditCardLinks `json:"links"`

	// These fields are computed
	AvailableCredit decimal.Decimal `json:"availableCredit" example:"3749.7"` // Credit that can still be used
}

func newCreditCard(c *gin.Context, model models.CreditCard) CreditCard {
	url := c.GetString(string(models.DBContextURL))
	isActive := model.IsActive

	return CreditCard{
		DefaultModel: model.DefaultModel,
		CreditCardEditable: CreditCardEditable{
			ProfileID:      model.ProfileID,
			Name:           model.Name,
			CreditLimit:    model.CreditLimit,
			CurrentBalance: model.CurrentBalance,
			DueDate:        model.DueDate,
			IsActive:       &isActive,
		},
		Links: CreditCardLinks{
			Self:    fmt.Sprintf("%s/v1/credit-cards/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
		AvailableCredit: model.Available(),
	}
}

type CreditCardListResponse struct {
	Data  []CreditCard `json:"data"`                                                          // List of Credit Cards
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CreditCardCreateResponse struct {
	Data  []CreditCardResponse `json:"data"`                                                          // List of the created Credit Cards or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CreditCardCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CreditCardResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CreditCardResponse struct {
	Data  *CreditCard `json:"data"`                                                          // Data for the Credit Card
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CreditCardQueryFilter struct {
	ProfileID dw_uuid.UUID `form:"profile"` // By ID of the Profile
	IsActive  bool         `form:"active"`  // Is the card active?
}

func (f CreditCardQueryFilter) model() models.CreditCard {
	return models.CreditCard{
		ProfileID: f.ProfileID.UUID,
		IsActive:  f.IsActive,
	}
}
