package v1

import (
	"net/http"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCreditCardRoutes registers the routes for credit cards with
// the RouterGroup that is passed.
func RegisterCreditCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditCardList)
		r.GET("", GetCreditCards)
		r.POST("", CreateCreditCards)
	}

	// Credit card with ID
	{
		r.OPTIONS("/:id", OptionsCreditCardDetail)
		r.GET("/:id", GetCreditCard)
		r.PATCH("/:id", UpdateCreditCard)
		r.DELETE("/:id", DeleteCreditCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit Cards
// @Success		204
// @Router			/v1/credit-cards [options]
func OptionsCreditCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credit-cards/{id} [options]
func OptionsCreditCardDetail(c *gin.Context) {
	resourceOptionsDetail[models.CreditCard](c)
}

// @Summary		Create credit cards
// @Description	Creates new credit cards
// @Tags			Credit Cards
// @Produce		json
// @Success		201		{object}	CreditCardCreateResponse
// @Failure		400		{object}	CreditCardCreateResponse
// @Failure		500		{object}	CreditCardCreateResponse
// @Param			cards	body		[]CreditCardEditable	true	"Credit Cards"
// @Router			/v1/credit-cards [post]
func CreateCreditCards(c *gin.Context) {
	var editables []CreditCardEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreditCardCreateResponse{}

	for _, editable := range editables {
		card := editable.model()

		err = models.DB.Create(&card).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCreditCard(c, card)
		r.Data = append(r.Data, CreditCardResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get credit cards
// @Description	Returns a list of credit cards
// @Tags			Credit Cards
// @Produce		json
// @Success		200	{object}	CreditCardListResponse
// @Failure		400	{object}	CreditCardListResponse
// @Failure		500	{object}	CreditCardListResponse
// @Router			/v1/credit-cards [get]
// @Param			profile	query	string	false	"Filter by profile ID"
// @Param			active	query	bool	false	"Is the card active?"
func GetCreditCards(c *gin.Context) {
	var filter CreditCardQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditCardListResponse{
			Error: &s,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var cards []models.CreditCard
	err = models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...).
		Find(&cards).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditCardListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CreditCard, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCreditCard(c, card))
	}

	c.JSON(http.StatusOK, CreditCardListResponse{Data: data})
}

// @Summary		Get credit card
// @Description	Returns a specific credit card
// @Tags			Credit Cards
// @Produce		json
// @Success		200	{object}	CreditCardResponse
// @Failure		400	{object}	CreditCardResponse
// @Failure		404	{object}	CreditCardResponse
// @Failure		500	{object}	CreditCardResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credit-cards/{id} [get]
func GetCreditCard(c *gin.Context) {
	card, err := getResource[models.CreditCard](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &s,
		})
		return
	}

	data := newCreditCard(c, card)
	c.JSON(http.StatusOK, CreditCardResponse{Data: &data})
}

// @Summary		Update credit card
// @Description	Update an existing credit card. Only values to be updated need to be specified.
// @Tags			Credit Cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	CreditCardResponse
// @Failure		400		{object}	CreditCardResponse
// @Failure		404		{object}	CreditCardResponse
// @Failure		500		{object}	CreditCardResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CreditCardEditable	true	"Credit Card"
// @Router			/v1/credit-cards/{id} [patch]
func UpdateCreditCard(c *gin.Context) {
	card, err := getResource[models.CreditCard](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &s,
		})
		return
	}

	// Fields missing in the body keep their current value
	data := newCreditCard(c, card).CreditCardEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &s,
		})
		return
	}

	updated := data.model()
	updated.DefaultModel = card.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &s,
		})
		return
	}

	r := newCreditCard(c, updated)
	c.JSON(http.StatusOK, CreditCardResponse{Data: &r})
}

// @Summary		Delete credit card
// @Description	Deletes a credit card
// @Tags			Credit Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credit-cards/{id} [delete]
func DeleteCreditCard(c *gin.Context) {
	card, err := getResource[models.CreditCard](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&card).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
