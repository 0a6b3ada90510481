package projection

import (
	"time"

	"github.com/duewise/backend/internal/models"
	"github.com/duewise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// swagger:enum Status
type Status string

const (
	StatusAffordable   Status = "affordable"
	StatusTight        Status = "tight"
	StatusUnaffordable Status = "unaffordable"
)

// swagger:enum Method
type Method string

const (
	MethodCash         Method = "cash"
	MethodCredit       Method = "credit"
	MethodBoth         Method = "both"
	MethodFutureIncome Method = "future_income"
	MethodNone         Method = "none"
)

// AffordabilityInput is everything an affordability check looks at.
type AffordabilityInput struct {
	PurchaseAmount decimal.Decimal
	CurrentCash    decimal.Decimal
	Liabilities    []models.Liability
	IncomeSources  []models.IncomeSource
	Expenses       []models.Expense
	CreditCards    []models.CreditCard
}

// NewAffordabilityInput builds the input for a purchase from a snapshot.
//
// purchase and cash are coerced to decimals, values that are not finite
// numbers become zero. A nil cash uses the cash of the profile.
func NewAffordabilityInput(s models.Snapshot, purchase, cash any) AffordabilityInput {
	currentCash := s.Profile.CurrentCash
	if cash != nil {
		currentCash = types.Coerce(cash)
	}

	return AffordabilityInput{
		PurchaseAmount: types.Coerce(purchase),
		CurrentCash:    currentCash,
		Liabilities:    s.Liabilities,
		IncomeSources:  s.IncomeSources,
		Expenses:       s.Expenses,
		CreditCards:    s.CreditCards,
	}
}

// AfterPurchase is the financial position after the purchase.
type AfterPurchase struct {
	CashUsed           decimal.Decimal `json:"cashUsed" example:"500"`            // Cash spent on the purchase
	RemainingCash      decimal.Decimal `json:"remainingCash" example:"0"`         // Cash left
	CreditUsed         decimal.Decimal `json:"creditUsed" example:"250"`          // Credit spent on the purchase
	RemainingCredit    decimal.Decimal `json:"remainingCredit" example:"4750"`    // Credit left
	CreditUtilization  decimal.Decimal `json:"creditUtilization" example:"12.5"`  // Percentage of the credit limit in use
	NewAvailableBudget decimal.Decimal `json:"newAvailableBudget" example:"1830"` // Remaining cash plus upcoming income minus upcoming liabilities
}

// Affordability is the verdict for a purchase with all numbers it is based on.
type Affordability struct {
	PurchaseAmount      decimal.Decimal `json:"purchaseAmount" example:"750"`      // Amount of the purchase
	CurrentCash         decimal.Decimal `json:"currentCash" example:"500"`         // Cash available
	CanAfford           bool            `json:"canAfford" example:"true"`          // Can the purchase be made?
	Status              Status          `json:"status" example:"affordable"`       // Verdict
	Method              Method          `json:"method" example:"both"`             // How the purchase is paid
	UpcomingIncome      decimal.Decimal `json:"upcomingIncome" example:"2500"`     // Income in the next 30 days
	UpcomingLiabilities decimal.Decimal `json:"upcomingLiabilities" example:"920"` // Liabilities due in the next 30 days
	RecentExpenses      decimal.Decimal `json:"recentExpenses" example:"310.2"`    // Expenses in the last 30 days
	AvailableCredit     decimal.Decimal `json:"availableCredit" example:"5000"`    // Unused credit on active cards
	TotalCreditLimit    decimal.Decimal `json:"totalCreditLimit" example:"6000"`   // Credit limit of active cards
	ExistingCreditUsed  decimal.Decimal `json:"existingCreditUsed" example:"1000"` // Balance of active cards
	AvailableBudget     decimal.Decimal `json:"availableBudget" example:"1769.8"`  // Cash plus upcoming income minus upcoming liabilities and recent expenses
	AvailableNow        decimal.Decimal `json:"availableNow" example:"5500"`       // Cash plus available credit
	OverboardAmount     decimal.Decimal `json:"overboardAmount" example:"0"`       // Amount the purchase exceeds what is available now
	AfterPurchase       AfterPurchase   `json:"afterPurchase"`                     // Position after the purchase
}

// CalculateAffordability checks if the purchase can be paid for.
//
// The verdict is affordable if cash, or cash and credit, cover the purchase.
// It is tight if that is only the case when counting income and liabilities
// of the next 30 days.
func CalculateAffordability(in AffordabilityInput, now time.Time) Affordability {
	h := newHorizon(now)
	c := creditOf(in.CreditCards)

	purchase := in.PurchaseAmount
	cash := in.CurrentCash

	a := Affordability{
		PurchaseAmount:      purchase,
		CurrentCash:         cash,
		UpcomingIncome:      h.income(in.IncomeSources),
		UpcomingLiabilities: h.liabilities(in.Liabilities),
		RecentExpenses:      recentExpenses(in.Expenses, now),
		AvailableCredit:     c.Available,
		TotalCreditLimit:    c.Limit,
		ExistingCreditUsed:  c.Used,
	}

	a.AvailableBudget = cash.Add(a.UpcomingIncome).Sub(a.UpcomingLiabilities).Sub(a.RecentExpenses)
	a.AvailableNow = cash.Add(c.Available)

	switch {
	case cash.GreaterThanOrEqual(purchase):
		a.CanAfford, a.Status, a.Method = true, StatusAffordable, MethodCash
	case a.AvailableNow.GreaterThanOrEqual(purchase):
		a.CanAfford, a.Status, a.Method = true, StatusAffordable, MethodCredit
		if cash.IsPositive() {
			a.Method = MethodBoth
		}
	case a.AvailableBudget.Add(c.Available).GreaterThanOrEqual(purchase):
		a.CanAfford, a.Status, a.Method = true, StatusTight, MethodFutureIncome
	default:
		a.CanAfford, a.Status, a.Method = false, StatusUnaffordable, MethodNone
	}

	after := &a.AfterPurchase
	after.CashUsed = decimal.Min(purchase, cash)
	after.RemainingCash = cash.Sub(after.CashUsed)
	after.CreditUsed = decimal.Min(c.Available, decimal.Max(decimal.Zero, purchase.Sub(after.CashUsed)))
	after.RemainingCredit = decimal.Max(decimal.Zero, c.Available.Sub(after.CreditUsed))
	after.CreditUtilization = utilization(c.Used.Add(after.CreditUsed), c.Limit)
	after.NewAvailableBudget = after.RemainingCash.Add(a.UpcomingIncome).Sub(a.UpcomingLiabilities)

	a.OverboardAmount = decimal.Max(decimal.Zero, purchase.Sub(a.AvailableNow))

	affordabilityChecksTotal.WithLabelValues(string(a.Status)).Inc()

	return a
}
