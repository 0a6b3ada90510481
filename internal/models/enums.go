package models

// swagger:enum LiabilityCategory
type LiabilityCategory string

const (
	LiabilityCategoryCreditCard    LiabilityCategory = "credit_card"
	LiabilityCategoryLoan          LiabilityCategory = "loan"
	LiabilityCategoryRecurringBill LiabilityCategory = "recurring_bill"
	LiabilityCategoryOther         LiabilityCategory = "other"
)

// Valid reports if the category is one of the known categories.
func (c LiabilityCategory) Valid() bool {
	switch c {
	case LiabilityCategoryCreditCard, LiabilityCategoryLoan, LiabilityCategoryRecurringBill, LiabilityCategoryOther:
		return true
	default:
		return false
	}
}

// Normalized returns the category, or LiabilityCategoryOther for anything unknown.
func (c LiabilityCategory) Normalized() LiabilityCategory {
	if c.Valid() {
		return c
	}
	return LiabilityCategoryOther
}

// Label returns the human readable name of the category.
func (c LiabilityCategory) Label() string {
	switch c {
	case LiabilityCategoryCreditCard:
		return "Credit Card"
	case LiabilityCategoryLoan:
		return "Loan"
	case LiabilityCategoryRecurringBill:
		return "Recurring Bill"
	default:
		return "Other"
	}
}

// swagger:enum PaymentType
type PaymentType string

const (
	PaymentTypeNone        PaymentType = ""
	PaymentTypeStraight    PaymentType = "straight"
	PaymentTypeInstallment PaymentType = "installment"
)

// Valid reports if the payment type is known. The empty payment type is valid.
func (p PaymentType) Valid() bool {
	return p == PaymentTypeNone || p == PaymentTypeStraight || p == PaymentTypeInstallment
}

// swagger:enum Frequency
type Frequency string

const (
	FrequencyOneTime Frequency = "one_time"
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
)

// Valid reports if the frequency is known.
func (f Frequency) Valid() bool {
	return f == FrequencyOneTime || f == FrequencyMonthly || f == FrequencyWeekly
}

// Recurring reports if the frequency repeats. An unset frequency is one-time.
func (f Frequency) Recurring() bool {
	return f == FrequencyMonthly || f == FrequencyWeekly
}
