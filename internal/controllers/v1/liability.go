package v1

import (
	"net/http"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterLiabilityRoutes registers the routes for liabilities with
// the RouterGroup that is passed.
func RegisterLiabilityRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLiabilityList)
		r.GET("", GetLiabilities)
		r.POST("", CreateLiabilities)
	}

	// Liability with ID
	{
		r.OPTIONS("/:id", OptionsLiabilityDetail)
		r.GET("/:id", GetLiability)
		r.PATCH("/:id", UpdateLiability)
		r.DELETE("/:id", DeleteLiability)
	}

	// Payments
	{
		r.OPTIONS("/:id/payments", OptionsLiabilityPayments)
		r.POST("/:id/payments", CreateLiabilityPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Liabilities
// @Success		204
// @Router			/v1/liabilities [options]
func OptionsLiabilityList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Liabilities
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/liabilities/{id} [options]
func OptionsLiabilityDetail(c *gin.Context) {
	resourceOptionsDetail[models.Liability](c)
}

// @Summary		Create liabilities
// @Description	Creates new liabilities
// @Tags			Liabilities
// @Produce		json
// @Success		201		{object}	LiabilityCreateResponse
// @Failure		400		{object}	LiabilityCreateResponse
// @Failure		500		{object}	LiabilityCreateResponse
// @Param			liabilities	body		[]LiabilityEditable	true	"Liabilities"
// @Router			/v1/liabilities [post]
func CreateLiabilities(c *gin.Context) {
	var editables []LiabilityEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := LiabilityCreateResponse{}

	for _, editable := range editables {
		liability := editable.model()

		err = models.DB.Create(&liability).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newLiability(c, liability)
		r.Data = append(r.Data, LiabilityResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get liabilities
// @Description	Returns a list of liabilities
// @Tags			Liabilities
// @Produce		json
// @Success		200	{object}	LiabilityListResponse
// @Failure		400	{object}	LiabilityListResponse
// @Failure		500	{object}	LiabilityListResponse
// @Router			/v1/liabilities [get]
// @Param			profile		query	string	false	"Filter by profile ID"
// @Param			category	query	string	false	"Filter by category"
// @Param			paymentType	query	string	false	"Filter by payment type"
// @Param			active		query	bool	false	"Is the liability active?"
func GetLiabilities(c *gin.Context) {
	var filter LiabilityQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityListResponse{
			Error: &s,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var liabilities []models.Liability
	err = models.DB.
		Order("due_date ASC, name ASC").
		Where(filter.model(), queryFields...).
		Find(&liabilities).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Liability, 0, len(liabilities))
	for _, liability := range liabilities {
		data = append(data, newLiability(c, liability))
	}

	c.JSON(http.StatusOK, LiabilityListResponse{Data: data})
}

// @Summary		Get liability
// @Description	Returns a specific liability
// @Tags			Liabilities
// @Produce		json
// @Success		200	{object}	LiabilityResponse
// @Failure		400	{object}	LiabilityResponse
// @Failure		404	{object}	LiabilityResponse
// @Failure		500	{object}	LiabilityResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/liabilities/{id} [get]
func GetLiability(c *gin.Context) {
	liability, err := getResource[models.Liability](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &s,
		})
		return
	}

	data := newLiability(c, liability)
	c.JSON(http.StatusOK, LiabilityResponse{Data: &data})
}

// @Summary		Update liability
// @Description	Update an existing liability. Only values to be updated need to be specified.
// @Tags			Liabilities
// @Accept			json
// @Produce		json
// @Success		200		{object}	LiabilityResponse
// @Failure		400		{object}	LiabilityResponse
// @Failure		404		{object}	LiabilityResponse
// @Failure		500		{object}	LiabilityResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			liability	body		LiabilityEditable	true	"Liability"
// @Router			/v1/liabilities/{id} [patch]
func UpdateLiability(c *gin.Context) {
	liability, err := getResource[models.Liability](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &s,
		})
		return
	}

	// Fields missing in the body keep their current value
	data := newLiability(c, liability).LiabilityEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &s,
		})
		return
	}

	updated := data.model()
	updated.DefaultModel = liability.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &s,
		})
		return
	}

	r := newLiability(c, updated)
	c.JSON(http.StatusOK, LiabilityResponse{Data: &r})
}

// @Summary		Delete liability
// @Description	Deletes a liability
// @Tags			Liabilities
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/liabilities/{id} [delete]
func DeleteLiability(c *gin.Context) {
	liability, err := getResource[models.Liability](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&liability).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
