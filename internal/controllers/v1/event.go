package v1

import (
	"net/http"
	"strings"

	"github.com/duewise/backend/internal/httputil"
	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/projection"
	"github.com/duewise/backend/internal/types"
	dw_uuid "github.com/duewise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// maxMonths is the longest window that can be projected at once.
const maxMonths = 24

func RegisterEventRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsEvents)
	r.GET("", GetEvents)
}

type EventQuery struct {
	QueryDate
	ProfileID dw_uuid.UUID `form:"profile"` // ID of the profile
	Month     string       `form:"month"`   // First month in YYYY-MM format
	Months    int          `form:"months"`  // Number of months
	Groups    string       `form:"groups"`  // Comma separated list of groups
	Paid      string       `form:"paid"`    // all, paid or unpaid
	Search    string       `form:"search"`  // Glob pattern for event names
}

// scope returns the months to project.
func (q EventQuery) scope() (projection.Scope, error) {
	today, err := q.today()
	if err != nil {
		return projection.Scope{}, err
	}

	start := types.MonthOf(today)
	if q.Month != "" {
		start, err = types.ParseMonth(strings.TrimSpace(q.Month))
		if err != nil {
			return projection.Scope{}, errMonthInvalid
		}
	}

	months := q.Months
	if months == 0 {
		months = 1
	}

	if months < 1 || months > maxMonths {
		return projection.Scope{}, errMonthsInvalid
	}

	return projection.Scope{Start: start, Months: months}, nil
}

// filter returns the event filter.
func (q EventQuery) filter() (projection.Filter, error) {
	paid, err := projection.ParsePaidFilter(strings.TrimSpace(q.Paid))
	if err != nil {
		return projection.Filter{}, err
	}

	var groups []projection.Group
	for _, s := range strings.Split(q.Groups, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		g, ok := projection.ParseGroup(s)
		if !ok {
			return projection.Filter{}, errGroupInvalid
		}

		if !slices.Contains(groups, g) {
			groups = append(groups, g)
		}
	}

	return projection.Filter{
		Groups: groups,
		Paid:   paid,
		Search: strings.TrimSpace(q.Search),
	}, nil
}

type EventResponse struct {
	Data  *projection.Projection `json:"data"`                                                    // The projection
	Error *string                `json:"error" example:"the profile query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func OptionsEvents(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get events
// @Description	Returns the liabilities, recurring expenses and income of a profile as dated events.
// @Description	For a single month, events are bucketed per day, for more months per month.
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventResponse
// @Failure		400	{object}	EventResponse
// @Failure		404	{object}	EventResponse
// @Failure		500	{object}	EventResponse
// @Router			/v1/events [get]
// @Param			profile	query	string	true	"ID of the profile"
// @Param			month	query	string	false	"First month (YYYY-MM). Defaults to the month of the reference date"
// @Param			months	query	int		false	"Number of months, between 1 and 24. Defaults to 1"
// @Param			groups	query	string	false	"Comma separated list of credit_cards, installments, loans, recurring_expenses, income, other"
// @Param			paid	query	string	false	"all, paid or unpaid. Defaults to all"
// @Param			search	query	string	false	"Glob pattern matched against event names, case insensitive"
// @Param			date	query	string	false	"Reference date (YYYY-MM-DD). Defaults to today"
func GetEvents(c *gin.Context) {
	var query EventQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &s,
		})
		return
	}

	if query.ProfileID.IsNil() {
		s := errProfileNotSet.Error()
		c.JSON(status(errProfileNotSet), EventResponse{
			Error: &s,
		})
		return
	}

	scope, err := query.scope()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &s,
		})
		return
	}

	filter, err := query.filter()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB, query.ProfileID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &s,
		})
		return
	}

	p := projection.Project(snapshot, scope, filter)
	c.JSON(http.StatusOK, EventResponse{Data: &p})
}
