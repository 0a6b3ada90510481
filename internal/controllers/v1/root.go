package v1

import (
	"net/http"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Profiles      string `json:"profiles" example:"https://example.com/api/v1/profiles"`            // URL of Profile collection endpoint
	CreditCards   string `json:"creditCards" example:"https://example.com/api/v1/credit-cards"`     // URL of Credit Card collection endpoint
	Liabilities   string `json:"liabilities" example:"https://example.com/api/v1/liabilities"`      // URL of Liability collection endpoint
	IncomeSources string `json:"incomeSources" example:"https://example.com/api/v1/income-sources"` // URL of Income Source collection endpoint
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // URL of Expense collection endpoint
	Events        string `json:"events" example:"https://example.com/api/v1/events"`                // URL of the event projection
	Affordability string `json:"affordability" example:"https://example.com/api/v1/affordability"`  // URL of the affordability check
	Summary       string `json:"summary" example:"https://example.com/api/v1/summary"`              // URL of the financial summary
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Profiles:      url + "/v1/profiles",
			CreditCards:   url + "/v1/credit-cards",
			Liabilities:   url + "/v1/liabilities",
			IncomeSources: url + "/v1/income-sources",
			Expenses:      url + "/v1/expenses",
			Events:        url + "/v1/events",
			Affordability: url + "/v1/affordability",
			Summary:       url + "/v1/summary",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
