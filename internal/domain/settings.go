package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ErrInvalidPolicyField is joined into the error returned by ToDomain for every
// stored policy field that could not be read and fell back to a safe default
var ErrInvalidPolicyField = errors.New("domain: invalid policy field")

// Charge timing modes as stored by businesses and service categories
const (
	ChargeWhenAfterTimeDayBefore = "after_time_day_before"
	ChargeWhenBeforeDay          = "beforeDay"
	ChargeWhenHoursBefore        = "hours_before"
	ChargeWhenHoursBeforeCamel   = "hoursBefore"
)

// Fee structure types
const (
	FeeTypeSingle   = "single"
	FeeTypeMultiple = "multiple"
)

// BusinessSettings is the typed scheduling and cancellation configuration of a business
type BusinessSettings struct {
	BusinessID   int64
	Location     *time.Location
	Scheduling   SchedulingPolicy
	Cancellation CancellationPolicy
}

// BusinessSettingsRecord is the stored form of business settings: a time zone name
// plus loosely typed JSON policy documents.
type BusinessSettingsRecord struct {
	BusinessID   int64                     `json:"businessId"`
	Timezone     string                    `json:"timezone"`
	Scheduling   *SchedulingPolicyRecord   `json:"schedulingPolicy,omitempty"`
	Cancellation *CancellationPolicyRecord `json:"cancellationPolicy,omitempty"`
}

// SchedulingPolicyRecord is the stored JSON form of SchedulingPolicy
type SchedulingPolicyRecord struct {
	HolidayBlockedWho                string    `json:"holidayBlockedWho,omitempty"`
	SpotLimitsEnabled                FlexBool  `json:"spotLimitsEnabled,omitempty"`
	MaxBookingsPerDay                FlexValue `json:"maxBookingsPerDay,omitempty"`
	SpotsBasedOnProviderAvailability FlexBool  `json:"spotsBasedOnProviderAvailability,omitempty"`
}

// FeeRuleRecord holds the stored timing and amount fields shared by business and category policies
type FeeRuleRecord struct {
	ChargeWhen     string          `json:"chargeWhen,omitempty"`
	AfterTime      string          `json:"afterTime,omitempty"`
	AfterAmPm      string          `json:"afterAmPm,omitempty"`
	HoursBefore    FlexValue       `json:"hoursBefore,omitempty"`
	ExcludeSameDay FlexBool        `json:"excludeSameDay,omitempty"`
	FeeType        string          `json:"feeType,omitempty"`
	FeeAmount      FlexValue       `json:"feeAmount,omitempty"`
	FeeCurrency    string          `json:"feeCurrency,omitempty"`
	Fees           []FeeTierRecord `json:"fees,omitempty"`
}

// FeeTierRecord is one stored entry of a tiered fee list
type FeeTierRecord struct {
	Fee      FlexValue `json:"fee"`
	Currency string    `json:"currency"`
}

// CancellationPolicyRecord is the stored JSON form of CancellationPolicy
type CancellationPolicyRecord struct {
	ChargeFee               FlexBool `json:"chargeFee,omitempty"`
	PayProvider             FlexBool `json:"payProvider,omitempty"`
	OverrideServiceCategory FlexBool `json:"overrideServiceCategory,omitempty"`
	FeeRuleRecord
}

// CategoryCancellationPolicyRecord is the stored JSON form of CategoryCancellationPolicy
type CategoryCancellationPolicyRecord struct {
	Enabled FlexBool `json:"enabled,omitempty"`
	FeeRuleRecord
}

// ToDomain converts the stored settings into typed policies. The returned settings are
// always usable: fields that cannot be read fall back to safe defaults (UTC, no fee,
// provider-based slots) and are reported in the joined error.
func (r *BusinessSettingsRecord) ToDomain() (*BusinessSettings, error) {
	var problems []error

	settings := &BusinessSettings{
		BusinessID: r.BusinessID,
		Location:   time.UTC,
		Scheduling: DefaultSchedulingPolicy(),
	}

	if tz := strings.TrimSpace(r.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			problems = append(problems, fmt.Errorf("%w: timezone %q: %v", ErrInvalidPolicyField, tz, err))
		} else {
			settings.Location = loc
		}
	}

	if r.Scheduling != nil {
		policy, err := r.Scheduling.ToDomain()
		if err != nil {
			problems = append(problems, err)
		}
		settings.Scheduling = policy
	}

	if r.Cancellation != nil {
		policy, err := r.Cancellation.ToDomain()
		if err != nil {
			problems = append(problems, err)
		}
		settings.Cancellation = policy
	}

	return settings, errors.Join(problems...)
}

// ToDomain converts the stored scheduling policy
func (r *SchedulingPolicyRecord) ToDomain() (SchedulingPolicy, error) {
	policy := DefaultSchedulingPolicy()
	var problems []error

	switch who := HolidayBlockedWho(strings.ToLower(strings.TrimSpace(r.HolidayBlockedWho))); who {
	case HolidayBlockedCustomer, HolidayBlockedProvider, HolidayBlockedBoth, HolidayBlockedNone:
		policy.HolidayBlockedWho = who
	case "none":
		policy.HolidayBlockedWho = HolidayBlockedNone
	default:
		problems = append(problems, fmt.Errorf("%w: holidayBlockedWho %q", ErrInvalidPolicyField, r.HolidayBlockedWho))
	}

	policy.SpotLimitsEnabled = r.SpotLimitsEnabled.read("spotLimitsEnabled", false, &problems)
	if !r.MaxBookingsPerDay.IsZero() {
		limit, err := r.MaxBookingsPerDay.Int()
		if err != nil || limit < 0 {
			problems = append(problems, fmt.Errorf("%w: maxBookingsPerDay %q", ErrInvalidPolicyField, r.MaxBookingsPerDay))
		} else {
			policy.MaxBookingsPerDay = limit
		}
	}

	policy.SpotsBasedOnProviderAvailability = r.SpotsBasedOnProviderAvailability.read(
		"spotsBasedOnProviderAvailability", policy.SpotsBasedOnProviderAvailability, &problems)

	return policy, errors.Join(problems...)
}

// ToDomain converts the stored business cancellation policy.
// An absent or unreadable chargeFee stays unset: only an explicit "no" opts out.
func (r *CancellationPolicyRecord) ToDomain() (CancellationPolicy, error) {
	var problems []error

	chargeFee := ChargeFeeUnset
	if r.ChargeFee.IsSet() {
		if charge, err := r.ChargeFee.Bool(); err != nil {
			problems = append(problems, fmt.Errorf("%w: chargeFee %q", ErrInvalidPolicyField, r.ChargeFee))
		} else if charge {
			chargeFee = ChargeFeeYes
		} else {
			chargeFee = ChargeFeeNo
		}
	}

	policy := CancellationPolicy{
		ChargeFee:               chargeFee,
		PayProvider:             r.PayProvider.read("payProvider", false, &problems),
		OverrideServiceCategory: r.OverrideServiceCategory.read("overrideServiceCategory", false, &problems),
	}

	rule, err := r.FeeRuleRecord.ToDomain()
	if err != nil {
		problems = append(problems, err)
	}
	policy.Rule = rule

	return policy, errors.Join(problems...)
}

// ToDomain converts the stored category cancellation policy
func (r *CategoryCancellationPolicyRecord) ToDomain() (FeeRule, bool, error) {
	var problems []error
	enabled := r.Enabled.read("enabled", false, &problems)

	rule, err := r.FeeRuleRecord.ToDomain()
	if err != nil {
		problems = append(problems, err)
	}
	return rule, enabled, errors.Join(problems...)
}

// ToDomain converts the stored timing and amount fields.
// Unknown or empty chargeWhen values are read as the day-before cutoff mode.
func (r *FeeRuleRecord) ToDomain() (FeeRule, error) {
	var problems []error
	rule := FeeRule{ExcludeSameDay: r.ExcludeSameDay.read("excludeSameDay", false, &problems)}

	switch strings.TrimSpace(r.ChargeWhen) {
	case ChargeWhenHoursBefore, ChargeWhenHoursBeforeCamel:
		hours, err := r.HoursBefore.Int()
		if err != nil || hours < 0 {
			problems = append(problems, fmt.Errorf("%w: hoursBefore %q", ErrInvalidPolicyField, r.HoursBefore))
		} else {
			rule.Timing = HoursBefore{Hours: hours}
		}
	default:
		if strings.TrimSpace(r.ChargeWhen) == "" && strings.TrimSpace(r.AfterTime) == "" {
			// правило не настроено
			break
		}
		at, err := types.ClockTime12h(r.AfterTime, r.AfterAmPm)
		if err != nil {
			problems = append(problems, fmt.Errorf("%w: afterTime %q %q: %v", ErrInvalidPolicyField, r.AfterTime, r.AfterAmPm, err))
		} else {
			rule.Timing = DayBeforeCutoff{At: at}
		}
	}

	if strings.TrimSpace(r.FeeType) == FeeTypeMultiple {
		tiers := make([]Money, len(r.Fees))
		for i, tier := range r.Fees {
			tiers[i] = Money{Amount: tier.Fee.String(), Currency: tier.Currency}
		}
		rule.Amount = MultipleFees{Tiers: tiers}
	} else {
		rule.Amount = SingleFee{Fee: Money{Amount: r.FeeAmount.String(), Currency: r.FeeCurrency}}
	}

	return rule, errors.Join(problems...)
}

// FlexBool keeps a stored toggle in its textual form. Businesses store JSON booleans
// as well as "yes"/"no"/"true"/"false"/"1"/"0"/"on"/"off" strings.
type FlexBool string

// UnmarshalJSON реализует json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v FlexValue
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*b = FlexBool(v)
	return nil
}

// MarshalJSON реализует json.Marshaler; значение всегда пишется строкой
func (b FlexBool) MarshalJSON() ([]byte, error) {
	return FlexValue(b).MarshalJSON()
}

// IsSet returns true if a value was stored
func (b FlexBool) IsSet() bool {
	return b != ""
}

// Bool parses the toggle. An unset toggle is false; unknown text is an error.
func (b FlexBool) Bool() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "true", "yes", "1", "on":
		return true, nil
	case "", "false", "no", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: toggle %q", ErrInvalidPolicyField, string(b))
	}
}

// read возвращает значение флага; unset и нечитаемые значения дают def, нечитаемые попадают в problems
func (b FlexBool) read(field string, def bool, problems *[]error) bool {
	if !b.IsSet() {
		return def
	}
	v, err := b.Bool()
	if err != nil {
		*problems = append(*problems, fmt.Errorf("%w: %s %q", ErrInvalidPolicyField, field, string(b)))
		return def
	}
	return v
}

// FlexValue keeps a JSON number or string in its textual form
type FlexValue string

// UnmarshalJSON реализует json.Unmarshaler
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*v = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	*v = FlexValue(strings.TrimSpace(raw))
	return nil
}

// MarshalJSON реализует json.Marshaler; значение всегда пишется строкой
func (v FlexValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(v))), nil
}

// String возвращает текстовое значение
func (v FlexValue) String() string {
	return string(v)
}

// IsZero returns true if no value was stored
func (v FlexValue) IsZero() bool {
	return v == ""
}

// Int parses the value as an integer
func (v FlexValue) Int() (int, error) {
	return strconv.Atoi(string(v))
}
