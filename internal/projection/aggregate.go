package projection

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrPaidFilterInvalid = errors.New("the paid filter must be one of all, paid, unpaid")

// swagger:enum PaidFilter
type PaidFilter string

const (
	PaidAll    PaidFilter = "all"
	PaidOnly   PaidFilter = "paid"
	UnpaidOnly PaidFilter = "unpaid"
)

// ParsePaidFilter parses a paid filter. The empty string is PaidAll.
func ParsePaidFilter(s string) (PaidFilter, error) {
	switch PaidFilter(s) {
	case "", PaidAll:
		return PaidAll, nil
	case PaidOnly, UnpaidOnly:
		return PaidFilter(s), nil
	default:
		return "", ErrPaidFilterInvalid
	}
}

// swagger:enum Granularity
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// Scope is the range of months to project.
//
// With one month, events are bucketed per day. With more, they are
// bucketed per month.
type Scope struct {
	Start  types.Month `json:"start" swaggertype:"string" example:"2026-06"` // First month
	Months int         `json:"months" example:"1"`                           // Number of months
}

// Window reports if the scope covers more than one month.
func (s Scope) Window() bool {
	return s.Months > 1
}

func (s Scope) months() []types.Month {
	n := max(s.Months, 1)

	months := make([]types.Month, 0, n)
	for i := range n {
		months = append(months, s.Start.AddDate(0, i))
	}

	return months
}

// Filter restricts the events of a projection.
type Filter struct {
	Groups []Group    // Only events in these groups. All groups if empty
	Paid   PaidFilter // Paid state of non-income events
	Search string     // Glob matched case-insensitively against the name
}

func (f Filter) matches(e Event) bool {
	if len(f.Groups) > 0 && !slices.Contains(f.Groups, e.Group) {
		return false
	}

	if !e.Income() {
		if f.Paid == PaidOnly && !e.IsPaid {
			return false
		}

		if f.Paid == UnpaidOnly && e.IsPaid {
			return false
		}
	}

	if f.Search != "" {
		pattern := strings.ToLower(f.Search)
		if !strings.Contains(pattern, glob.GLOB) {
			pattern = glob.GLOB + pattern + glob.GLOB
		}

		if !glob.Glob(pattern, strings.ToLower(e.Name)) {
			return false
		}
	}

	return true
}

// Bucket holds the events of one day or one month.
type Bucket struct {
	Key    string          `json:"key" example:"2026-06-01"`            // The day (YYYY-MM-DD) or month (YYYY-MM)
	Date   time.Time       `json:"date" example:"2026-06-01T00:00:00Z"` // Start of the day or month
	Events []Event         `json:"events"`                              // Events in the bucket
	Income decimal.Decimal `json:"income" example:"2500"`               // Sum of income
	Bills  decimal.Decimal `json:"bills" example:"830.25"`              // Sum of everything else
}

// Totals sums up all events of a projection.
type Totals struct {
	TotalBills     decimal.Decimal `json:"totalBills" example:"1210.5"`     // Sum of all non-income events
	TotalIncome    decimal.Decimal `json:"totalIncome" example:"5000"`      // Sum of all income
	RemainingBills decimal.Decimal `json:"remainingBills" example:"380.25"` // Sum of unpaid non-income events
	ReceivedIncome decimal.Decimal `json:"receivedIncome" example:"1200"`   // Sum of received income
}

// Projection is the timeline of events for a scope.
type Projection struct {
	Scope       Scope       `json:"scope"`                     // Projected months
	Granularity Granularity `json:"granularity" example:"day"` // Size of the buckets
	Events      []Event     `json:"events"`                    // All events, sorted by date
	Buckets     []Bucket    `json:"buckets"`                   // Events by day or month
	Totals      Totals      `json:"totals"`                    // Sums over all events
}

// Project expands all liabilities, recurring expenses and income sources of
// the snapshot for every month in scope and returns the filtered timeline.
func Project(s models.Snapshot, scope Scope, filter Filter) Projection {
	if scope.Months < 1 {
		scope.Months = 1
	}

	if filter.Paid == "" {
		filter.Paid = PaidAll
	}

	var events []Event
	for _, month := range scope.months() {
		for _, l := range s.Liabilities {
			events = append(events, ExpandLiability(l, month, s.Expenses)...)
		}

		for _, e := range s.Expenses {
			events = append(events, ExpandExpense(e, month)...)
		}

		for _, i := range s.IncomeSources {
			events = append(events, ExpandIncome(i, month)...)
		}
	}

	sortEvents(events)

	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if filter.matches(e) {
			filtered = append(filtered, e)
		}
	}

	p := Projection{
		Scope:       scope,
		Granularity: GranularityDay,
		Events:      filtered,
		Buckets:     []Bucket{},
	}

	key := func(t time.Time) (string, time.Time) {
		return t.Format(types.DateLayout), t
	}

	if scope.Window() {
		p.Granularity = GranularityMonth
		key = func(t time.Time) (string, time.Time) {
			m := types.MonthOf(t)
			return m.String(), m.First()
		}
	}

	for _, e := range filtered {
		k, date := key(e.DueDate)
		if len(p.Buckets) == 0 || p.Buckets[len(p.Buckets)-1].Key != k {
			p.Buckets = append(p.Buckets, Bucket{Key: k, Date: date})
		}

		b := &p.Buckets[len(p.Buckets)-1]
		b.Events = append(b.Events, e)

		if e.Income() {
			b.Income = b.Income.Add(e.Amount)
			p.Totals.TotalIncome = p.Totals.TotalIncome.Add(e.Amount)
			if e.IsReceived {
				p.Totals.ReceivedIncome = p.Totals.ReceivedIncome.Add(e.Amount)
			}
			continue
		}

		if filter.Paid != PaidAll || !e.IsPaid {
			b.Bills = b.Bills.Add(e.Amount)
		}

		p.Totals.TotalBills = p.Totals.TotalBills.Add(e.Amount)
		if !e.IsPaid {
			p.Totals.RemainingBills = p.Totals.RemainingBills.Add(e.Amount)
		}
	}

	label := "month"
	if scope.Window() {
		label = "window"
	}
	projectionsTotal.WithLabelValues(label).Inc()

	return p
}

// sortEvents sorts events by date. Events on the same day are ordered
// by kind, then name.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}

		if a.Kind != b.Kind {
			return a.Kind.order() < b.Kind.order()
		}

		return a.Name < b.Name
	})
}
