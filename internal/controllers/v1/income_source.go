package v1

import (
	"net/http"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterIncomeSourceRoutes registers the routes for income sources with
// the RouterGroup that is passed.
func RegisterIncomeSourceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeSourceList)
		r.GET("", GetIncomeSources)
		r.POST("", CreateIncomeSources)
	}

	// Income source with ID
	{
		r.OPTIONS("/:id", OptionsIncomeSourceDetail)
		r.GET("/:id", GetIncomeSource)
		r.PATCH("/:id", UpdateIncomeSource)
		r.DELETE("/:id", DeleteIncomeSource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income Sources
// @Success		204
// @Router			/v1/income-sources [options]
func OptionsIncomeSourceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-sources/{id} [options]
func OptionsIncomeSourceDetail(c *gin.Context) {
	resourceOptionsDetail[models.IncomeSource](c)
}

// @Summary		Create income sources
// @Description	Creates new income sources
// @Tags			Income Sources
// @Produce		json
// @Success		201		{object}	IncomeSourceCreateResponse
// @Failure		400		{object}	IncomeSourceCreateResponse
// @Failure		500		{object}	IncomeSourceCreateResponse
// @Param			sources	body		[]IncomeSourceEditable	true	"Income Sources"
// @Router			/v1/income-sources [post]
func CreateIncomeSources(c *gin.Context) {
	var editables []IncomeSourceEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeSourceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeSourceCreateResponse{}

	for _, editable := range editables {
		source := editable.model()

		err = models.DB.Create(&source).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newIncomeSource(c, source)
		r.Data = append(r.Data, IncomeSourceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get income sources
// @Description	Returns a list of income sources
// @Tags			Income Sources
// @Produce		json
// @Success		200	{object}	IncomeSourceListResponse
// @Failure		400	{object}	IncomeSourceListResponse
// @Failure		500	{object}	IncomeSourceListResponse
// @Router			/v1/income-sources [get]
// @Param			profile		query	string	false	"Filter by profile ID"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			active		query	bool	false	"Is the income source active?"
func GetIncomeSources(c *gin.Context) {
	var filter IncomeSourceQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeSourceListResponse{
			Error: &s,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var sources []models.IncomeSource
	err = models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...).
		Find(&sources).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeSourceListResponse{
			Error: &s,
		})
		return
	}

	data := make([]IncomeSource, 0, len(sources))
	for _, source := range sources {
		data = append(data, newIncomeSource(c, source))
	}

	c.JSON(http.StatusOK, IncomeSourceListResponse{Data: data})
}

// @Summary		Get income source
// @Description	Returns a specific income source
// @Tags			Income Sources
// @Produce		json
// @Success		200	{object}	IncomeSourceResponse
// @Failure		400	{object}	IncomeSourceResponse
// @Failure		404	{object}	IncomeSourceResponse
// @Failure		500	{object}	IncomeSourceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-sources/{id} [get]
func GetIncomeSource(c *gin.Context) {
	source, err := getResource[models.IncomeSource](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &s,
		})
		return
	}

	data := newIncomeSource(c, source)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &data})
}

// @Summary		Update income source
// @Description	Update an existing income source. Only values to be updated need to be specified.
// @Tags			Income Sources
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeSourceResponse
// @Failure		400		{object}	IncomeSourceResponse
// @Failure		404		{object}	IncomeSourceResponse
// @Failure		500		{object}	IncomeSourceResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			source	body		IncomeSourceEditable	true	"Income Source"
// @Router			/v1/income-sources/{id} [patch]
func UpdateIncomeSource(c *gin.Context) {
	source, err := getResource[models.IncomeSource](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &s,
		})
		return
	}

	// Fields missing in the body keep their current value
	data := newIncomeSource(c, source).IncomeSourceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &s,
		})
		return
	}

	updated := data.model()
	updated.DefaultModel = source.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeSourceResponse{
			Error: &s,
		})
		return
	}

	r := newIncomeSource(c, updated)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &r})
}

// @Summary		Delete income source
// @Description	Deletes an income source
// @Tags			Income Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-sources/{id} [delete]
func DeleteIncomeSource(c *gin.Context) {
	source, err := getResource[models.IncomeSource](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&source).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
