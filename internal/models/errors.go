package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrReferenceInvalid = errors.New("a resource ID you specified does not identify an existing resource")
)

// Validation errors
var (
	ErrDueDateInvalid           = errors.New("the due date must be a day of the month between 1 and 31")
	ErrAmountNegative           = errors.New("amounts must not be negative")
	ErrMonthsToPayInvalid       = errors.New("monthsToPay must be a positive number of months")
	ErrLiabilityCategoryInvalid = errors.New("the liability category must be one of credit_card, loan, recurring_bill, other")
	ErrPaymentTypeInvalid       = errors.New("the payment type must be straight, installment or empty")
	ErrFrequencyInvalid         = errors.New("the frequency must be one of one_time, monthly, weekly")
	ErrProfileIDRequired        = errors.New("the profileId must be set")
	ErrCurrencyInvalid          = errors.New("the currency must be a three letter ISO 4217 code")
)

// Payment errors
var (
	ErrPaymentPermanent     = errors.New("expenses recording a liability payment cannot be deleted")
	ErrLiabilityAlreadyPaid = errors.New("the liability is already paid for this month")
	ErrLiabilityInactive    = errors.New("inactive liabilities cannot be paid")
)
