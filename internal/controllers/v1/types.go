package v1

import (
	"strings"
	"time"

	"github.com/duewise/backend/internal/types"
	dw_uuid "github.com/duewise/backend/internal/uuid"
)

type URIID struct {
	ID dw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryDate struct {
	Date string `form:"date" example:"2026-06-10"` // Reference date in YYYY-MM-DD format. Defaults to today
}

// today returns the reference date of the request.
func (q QueryDate) today() (time.Time, error) {
	if strings.TrimSpace(q.Date) == "" {
		return time.Now(), nil
	}

	d, err := types.ParseDate(strings.TrimSpace(q.Date))
	if err != nil {
		return time.Time{}, errDateInvalid
	}

	return d, nil
}
