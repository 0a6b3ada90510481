package v1

import (
	"net/http"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/projection"
	dw_uuid "github.com/duewise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

type SummaryQuery struct {
	QueryDate
	ProfileID dw_uuid.UUID `form:"profile"` // ID of the profile
}

type SummaryResponse struct {
	Data  *projection.Summary `json:"data"`                                                    // The summary
	Error *string             `json:"error" example:"the profile query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the financial position of a profile in the month of the reference date
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		404		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			profile	query		string	true	"ID of the profile"
// @Param			date	query		string	false	"Reference date (YYYY-MM-DD). Defaults to today"
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	var query SummaryQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	if query.ProfileID.IsNil() {
		s := errProfileNotSet.Error()
		c.JSON(status(errProfileNotSet), SummaryResponse{
			Error: &s,
		})
		return
	}

	now, err := query.today()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, query.ProfileID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	summary := projection.Summarize(snapshot, now)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
