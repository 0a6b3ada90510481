package v1

import (
	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type resource interface {
	models.Profile | models.CreditCard | models.Liability | models.IncomeSource | models.Expense
}

// getResource loads the resource identified by the id URI parameter.
func getResource[R resource](c *gin.Context) (R, error) {
	var r R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return r, err
	}

	err = models.DB.First(&r, "id = ?", uri.ID.UUID).Error
	return r, err
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context) {
	_, err := getResource[R](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
