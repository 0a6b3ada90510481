package v1

import (
	"fmt"

	"github.com/duewise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	Name        string          `json:"name" example:"Household" default:""`      // Name of the profile
	CurrentCash decimal.Decimal `json:"currentCash" example:"1520.4" default:"0"` // Cash available right now
	Currency    string          `json:"currency" example:"EUR" default:""`        // ISO 4217 currency code used to format amounts
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Name:        editable.Name,
		CurrentCash: editable.CurrentCash,
		Currency:    editable.Currency,
	}
}

type ProfileLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/profiles/3b1ea324-d438-4419-882a-2fc91d71772f"`                        // The profile itself
	CreditCards   string `json:"creditCards" example:"https://example.com/api/v1/credit-cards?profile=3b1ea324-d438-4419-882a-2fc91d71772f"`     // Credit cards of the profile
	Liabilities   string `json:"liabilities" example:"https://example.com/api/v1/liabilities?profile=3b1ea324-d438-4419-882a-2fc91d71772f"`      // Liabilities of the profile
	IncomeSources string `json:"incomeSources" example:"https://example.com/api/v1/income-sources?profile=3b1ea324-d438-4419-882a-2fc91d71772f"` // Income sources of the profile
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses?profile=3b1ea324-d438-4419-882a-2fc91d71772f"`            // Expenses of the profile
	Events        string `json:"events" example:"https://example.com/api/v1/events?profile=3b1ea324-d438-4419-882a-2fc91d71772f"`                // Event projection for the current month
	Summary       string `json:"summary" example:"https://example.com/api/v1/summary?profile=3b1ea324-d438-4419-882a-2fc91d71772f"`              // Financial summary
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			Name:        model.Name,
			CurrentCash: model.CurrentCash,
			Currency:    model.Currency,
		},
		Links: ProfileLinks{
			Self:          fmt.Sprintf("%s/v1/profiles/%s", url, model.ID),
			CreditCards:   fmt.Sprintf("%s/v1/credit-cards?profile=%s", url, model.ID),
			Liabilities:   fmt.Sprintf("%s/v1/liabilities?profile=%s", url, model.ID),
			IncomeSources: fmt.Sprintf("%s/v1/income-sources?profile=%s", url, model.ID),
			Expenses:      fmt.Sprintf("%s/v1/expenses?profile=%s", url, model.ID),
			Events:        fmt.Sprintf("%s/v1/events?profile=%s", url, model.ID),
			Summary:       fmt.Sprintf("%s/v1/summary?profile=%s", url, model.ID),
		},
	}
}

type ProfileListResponse struct {
	Data  []Profile `json:"data"`                                                          // List of Profiles
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileCreateResponse struct {
	Data  []ProfileResponse `json:"data"`                                                          // List of the created Profiles or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *ProfileCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProfileResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                          // Data for the Profile
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileQueryFilter struct {
	Currency string `form:"currency"`                   // By currency
	Search   string `form:"search" filterField:"false"` // By string in name
}

func (f ProfileQueryFilter) model() models.Profile {
	return models.Profile{
		Currency: f.Currency,
	}
}
