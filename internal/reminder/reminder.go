// Package reminder finds unpaid bills that are due soon.
package reminder

import (
	"fmt"
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/projection"
	"github.com/duewise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var upcomingUnpaidBills = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "duewise_upcoming_unpaid_bills",
		Help: "Unpaid bills due within the reminder window, partitioned by profile.",
	},
	[]string{"profile"},
)

// Collectors returns the Prometheus metrics of the reminder.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{upcomingUnpaidBills}
}

// Bill is an unpaid liability or recurring expense that is due soon.
type Bill struct {
	ProfileID uuid.UUID
	Currency  string
	Event     projection.Event
}

// Scan returns the unpaid bills of all profiles that are due between
// the day of now and days after it, both inclusive.
func Scan(db *gorm.DB, now time.Time, days int) ([]Bill, error) {
	today := types.Date(now)
	until := today.AddDate(0, 0, days)

	start := types.MonthOf(today)
	scope := projection.Scope{Start: start, Months: start.MonthsUntil(types.MonthOf(until)) + 1}

	var profiles []models.Profile
	err := db.Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	var bills []Bill
	counts := make(map[string]int, len(profiles))
	for _, p := range profiles {
		snapshot, err := models.LoadSnapshot(db, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading profile %s: %w", p.ID, err)
		}

		counts[p.ID.String()] = 0
		for _, e := range projection.Project(snapshot, scope, projection.Filter{Paid: projection.UnpaidOnly}).Events {
			if e.Income() || !types.Between(e.DueDate, today, until) {
				continue
			}

			bills = append(bills, Bill{ProfileID: p.ID, Currency: p.Currency, Event: e})
			counts[p.ID.String()]++
		}
	}

	// The gauge only changes once every profile is scanned
	upcomingUnpaidBills.Reset()
	for profile, count := range counts {
		upcomingUnpaidBills.WithLabelValues(profile).Set(float64(count))
	}

	return bills, nil
}

// Scheduler runs Scan on a cron schedule and logs the bills it finds.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler returns a Scheduler for a standard five field cron spec.
func NewScheduler(db *gorm.DB, spec string, days int) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		remind(db, time.Now(), days)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	return &Scheduler{cron: c}, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func remind(db *gorm.DB, now time.Time, days int) {
	bills, err := Scan(db, now, days)
	if err != nil {
		log.Error().Err(err).Msg("Reminder")
		return
	}

	for _, b := range bills {
		log.Info().
			Str("profile", b.ProfileID.String()).
			Str("bill", b.Event.Name).
			Str("due", b.Event.DueDate.Format(types.DateLayout)).
			Str("amount", types.FormatMoney(b.Event.Amount, b.Currency)).
			Msg("Reminder")
	}

	log.Debug().Int("bills", len(bills)).Msg("Reminder")
}
