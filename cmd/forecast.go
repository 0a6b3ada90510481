package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/projection"
	"github.com/duewise/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagSnapshot string
	flagMonth    string
	flagMonths   int
	flagPurchase string
	flagDate     string
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project a JSON snapshot without a database",
	Long: `Reads a profile with its credit cards, liabilities, income sources and expenses
from a JSON file and prints the projected events, the summary and, if a purchase
amount is given, the affordability verdict.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		setupLogging(cmd.ErrOrStderr())
		return runForecast(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	forecastCmd.Flags().StringVarP(&flagSnapshot, "snapshot", "s", "", "JSON file with the snapshot")
	forecastCmd.Flags().StringVarP(&flagMonth, "month", "m", "", "First month to project (YYYY-MM). Defaults to the month of --date")
	forecastCmd.Flags().IntVarP(&flagMonths, "months", "n", 1, "Number of months to project")
	forecastCmd.Flags().StringVarP(&flagPurchase, "purchase", "p", "", "Purchase amount to check")
	forecastCmd.Flags().StringVarP(&flagDate, "date", "d", "", "Reference date (YYYY-MM-DD). Defaults to today")
	_ = forecastCmd.MarkFlagRequired("snapshot")

	rootCmd.AddCommand(forecastCmd)
}

type forecast struct {
	Projection    projection.Projection     `json:"projection"`
	Summary       projection.Summary        `json:"summary"`
	Affordability *projection.Affordability `json:"affordability,omitempty"`
}

func runForecast(out, human io.Writer) error {
	data, err := os.ReadFile(flagSnapshot)
	if err != nil {
		return err
	}

	var snapshot models.Snapshot
	err = json.Unmarshal(data, &snapshot)
	if err != nil {
		return fmt.Errorf("could not parse snapshot %s: %w", flagSnapshot, err)
	}

	now := time.Now()
	if flagDate != "" {
		now, err = types.ParseDate(flagDate)
		if err != nil {
			return fmt.Errorf("the date must be in YYYY-MM-DD format: %w", err)
		}
	}

	start := types.MonthOf(now)
	if flagMonth != "" {
		start, err = types.ParseMonth(flagMonth)
		if err != nil {
			return fmt.Errorf("the month must be in YYYY-MM format: %w", err)
		}
	}

	if flagMonths < 1 || flagMonths > 24 {
		return fmt.Errorf("months must be between 1 and 24, got %d", flagMonths)
	}

	f := forecast{
		Projection: projection.Project(snapshot, projection.Scope{Start: start, Months: flagMonths}, projection.Filter{}),
		Summary:    projection.Summarize(snapshot, now),
	}

	if flagPurchase != "" {
		purchase, err := decimal.NewFromString(flagPurchase)
		if err != nil {
			return fmt.Errorf("the purchase must be a number: %w", err)
		}

		a := projection.CalculateAffordability(projection.NewAffordabilityInput(snapshot, purchase, nil), now)
		f.Affordability = &a
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(f)
	if err != nil {
		return err
	}

	currency := snapshot.Profile.Currency
	fmt.Fprintf(human, "Remaining bills: %s of %s\n",
		types.FormatMoney(f.Projection.Totals.RemainingBills, currency),
		types.FormatMoney(f.Projection.Totals.TotalBills, currency),
	)

	return nil
}
