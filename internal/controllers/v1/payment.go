package v1

import (
	"net/http"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/projection"
	"github.com/duewise/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Liabilities
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/liabilities/{id}/payments [options]
func OptionsLiabilityPayments(c *gin.Context) {
	_, err := getResource[models.Liability](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Mark liability as paid
// @Description	Records a payment for the occurrence of the liability in the month of the reference date.
// @Description	The payment is an expense in the "Bills" category that cannot be deleted.
// @Tags			Liabilities
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			date	query		string	false	"Payment date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/liabilities/{id}/payments [post]
func CreateLiabilityPayment(c *gin.Context) {
	liability, err := getResource[models.Liability](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var query QueryDate
	_ = c.ShouldBindQuery(&query)

	today, err := query.today()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	if !liability.IsActive {
		s := models.ErrLiabilityInactive.Error()
		c.JSON(status(models.ErrLiabilityInactive), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var payments []models.Expense
	err = models.DB.Where("liability_id = ?", liability.ID).Find(&payments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	if projection.IsPaid(liability.ID, types.MonthOf(today), payments) {
		s := models.ErrLiabilityAlreadyPaid.Error()
		c.JSON(status(models.ErrLiabilityAlreadyPaid), ExpenseResponse{
			Error: &s,
		})
		return
	}

	payment := models.PaymentFor(liability, today)
	err = models.DB.Create(&payment).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, payment)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}
