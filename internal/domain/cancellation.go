package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// FeeTiming decides from which moment a cancellation is charged.
// Implementations: HoursBefore, DayBeforeCutoff.
type FeeTiming interface {
	isFeeTiming()
}

// HoursBefore charges cancellations made less than Hours before the appointment start
type HoursBefore struct {
	Hours int
}

// DayBeforeCutoff charges cancellations made after At on the day before the appointment
type DayBeforeCutoff struct {
	At types.TimeString
}

func (HoursBefore) isFeeTiming()     {}
func (DayBeforeCutoff) isFeeTiming() {}

// FeeAmount describes how much is charged.
// Implementations: SingleFee, MultipleFees.
type FeeAmount interface {
	isFeeAmount()
}

// SingleFee is one flat fee
type SingleFee struct {
	Fee Money
}

// MultipleFees is a tiered list of fees; only the first tier is ever charged
type MultipleFees struct {
	Tiers []Money
}

func (SingleFee) isFeeAmount()    {}
func (MultipleFees) isFeeAmount() {}

// Money is a fee as configured by the business: the amount stays in its raw form
// and is parsed leniently when a fee is charged.
type Money struct {
	Amount   string
	Currency string
}

// Value parses the amount; non-numeric, negative or non-finite amounts are not ok
func (m Money) Value() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(m.Amount), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FeeRule is the timing and amount configuration shared by business and category policies.
// A nil Timing or Amount means the rule could not be read and never charges.
type FeeRule struct {
	Timing         FeeTiming
	Amount         FeeAmount
	ExcludeSameDay bool
}

// ChargeFee is the business-level charging switch. Only an explicit No is a hard
// opt-out; an unset switch still lets override and category rules charge.
type ChargeFee string

const (
	ChargeFeeUnset ChargeFee = ""
	ChargeFeeYes   ChargeFee = "yes"
	ChargeFeeNo    ChargeFee = "no"
)

// CancellationPolicy is the business-wide cancellation fee policy.
// OverrideServiceCategory means the business rule always wins over category rules.
type CancellationPolicy struct {
	ChargeFee               ChargeFee
	PayProvider             bool
	OverrideServiceCategory bool
	Rule                    FeeRule
}

// CategoryCancellationPolicy is a fee rule scoped to one service category
type CategoryCancellationPolicy struct {
	ID                int64
	BusinessID        int64
	ServiceCategoryID int64
	Enabled           bool
	Rule              FeeRule
}

// Fee is a charge applied to a cancellation
type Fee struct {
	Amount   float64
	Currency string
}
