package v1

import (
	"net/http"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/projection"
	"github.com/duewise/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterAffordabilityRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAffordability)
	r.POST("", CheckAffordability)
}

// AffordabilityRequest is a purchase to check.
//
// Amounts that are not numbers are treated as zero.
type AffordabilityRequest struct {
	ProfileID      uuid.UUID     `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // ID of the profile
	PurchaseAmount types.Amount  `json:"purchaseAmount" example:"750" swaggertype:"primitive,string"` // Amount of the purchase
	CurrentCash    *types.Amount `json:"currentCash" example:"500" swaggertype:"primitive,string"`    // Cash to assume. Defaults to the cash of the profile
}

type AffordabilityResponse struct {
	Data  *projection.Affordability `json:"data"`                                      // The verdict
	Error *string                   `json:"error" example:"the profileId must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Affordability
// @Success		204
// @Router			/v1/affordability [options]
func OptionsAffordability(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Check affordability
// @Description	Checks if a purchase can be paid for with cash and credit now, or with the income of the next 30 days.
// @Tags			Affordability
// @Accept			json
// @Produce		json
// @Success		200			{object}	AffordabilityResponse
// @Failure		400			{object}	AffordabilityResponse
// @Failure		404			{object}	AffordabilityResponse
// @Failure		500			{object}	AffordabilityResponse
// @Param			purchase	body		AffordabilityRequest	true	"Purchase"
// @Param			date		query		string					false	"Reference date (YYYY-MM-DD). Defaults to today"
// @Router			/v1/affordability [post]
func CheckAffordability(c *gin.Context) {
	var query QueryDate
	_ = c.ShouldBindQuery(&query)

	now, err := query.today()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AffordabilityResponse{
			Error: &s,
		})
		return
	}

	var request AffordabilityRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AffordabilityResponse{
			Error: &s,
		})
		return
	}

	if request.ProfileID == uuid.Nil {
		s := models.ErrProfileIDRequired.Error()
		c.JSON(status(models.ErrProfileIDRequired), AffordabilityResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, request.ProfileID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AffordabilityResponse{
			Error: &s,
		})
		return
	}

	// A typed nil would not fall back to the cash of the profile
	var cash any
	if request.CurrentCash != nil {
		cash = request.CurrentCash.Decimal
	}

	a := projection.CalculateAffordability(projection.NewAffordabilityInput(snapshot, request.PurchaseAmount, cash), now)
	c.JSON(http.StatusOK, AffordabilityResponse{Data: &a})
}
