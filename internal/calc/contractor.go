// Package calc holds the recruitment calculators: contractor and permanent
// placement margins, commission schedules and working-day counts. Every
// calculator is a pure function of its input.
package calc

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput wraps every validation failure in this package.
var ErrInvalidInput = errors.New("calc: invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ContractorMode selects which figure SolveContractor derives.
type ContractorMode string

const (
	// ModeGP derives the gross profit from pay and charge rates.
	ModeGP ContractorMode = "gp"
	// ModeCharge derives the charge rate from the pay rate and a target GP.
	ModeCharge ContractorMode = "charge"
	// ModePay derives the pay rate from the charge rate and a target GP.
	ModePay ContractorMode = "pay"
)

type RateType string

const (
	Hourly RateType = "hourly"
	Daily  RateType = "daily"
)

// Engagement is how the contractor is engaged. Company contractors invoice
// through their own entity and carry no on-costs.
type Engagement string

const (
	PAYG    Engagement = "payg"
	Company Engagement = "company"
)

// OnCosts are the employer costs applied to PAYG contractors, as fractions.
type OnCosts struct {
	Super       float64 `json:"super"`
	PayrollTax  float64 `json:"payrollTax"`
	WorkersComp float64 `json:"workersComp"`
	Insurance   float64 `json:"insurance"`
}

// DefaultOnCosts are the standard on-cost rates.
func DefaultOnCosts() OnCosts {
	return OnCosts{
		Super:       0.12,
		PayrollTax:  0.0545,
		WorkersComp: 0.015,
		Insurance:   0.01,
	}
}

const (
	DefaultHoursPerDay = 8
	daysPerWeek        = 5
)

type ContractorInput struct {
	Mode        ContractorMode `json:"mode"`
	RateType    RateType       `json:"rateType"`
	Engagement  Engagement     `json:"engagement"`
	PayRate     float64        `json:"payRate"`
	ChargeRate  float64        `json:"chargeRate"`
	TargetGP    float64        `json:"targetGP"`
	HoursPerDay float64        `json:"hoursPerDay"`
	OnCosts     *OnCosts       `json:"onCosts,omitempty"`
}

type ContractorResult struct {
	Mode         ContractorMode `json:"mode"`
	RateType     RateType       `json:"rateType"`
	Engagement   Engagement     `json:"engagement"`
	PayRate      float64        `json:"payRate"`
	ChargeRate   float64        `json:"chargeRate"`
	Super        float64        `json:"super"`
	PayrollTax   float64        `json:"payrollTax"`
	WorkersComp  float64        `json:"workersComp"`
	Insurance    float64        `json:"insurance"`
	TotalCost    float64        `json:"totalCost"`
	Margin       float64        `json:"margin"`
	GP           float64        `json:"gp"`
	HourlyMargin float64        `json:"hourlyMargin"`
	DailyMargin  float64        `json:"dailyMargin"`
	WeeklyMargin float64        `json:"weeklyMargin"`
}

// costFactor is total cost per unit of pay.
func costFactor(e Engagement, oc OnCosts) float64 {
	if e == Company {
		return 1
	}
	return 1 + oc.Super + oc.PayrollTax*(1+oc.Super) + oc.WorkersComp + oc.Insurance
}

func (in *ContractorInput) normalize() error {
	if in.Mode == "" {
		in.Mode = ModeGP
	}
	if in.RateType == "" {
		in.RateType = Hourly
	}
	if in.Engagement == "" {
		in.Engagement = PAYG
	}
	if in.HoursPerDay <= 0 {
		in.HoursPerDay = DefaultHoursPerDay
	}
	if in.OnCosts == nil {
		oc := DefaultOnCosts()
		in.OnCosts = &oc
	}

	switch in.RateType {
	case Hourly, Daily:
	default:
		return invalid("unknown rate type %q", in.RateType)
	}
	switch in.Engagement {
	case PAYG, Company:
	default:
		return invalid("unknown engagement %q", in.Engagement)
	}

	needGP := in.Mode == ModeCharge || in.Mode == ModePay
	if needGP && (in.TargetGP < 0 || in.TargetGP >= 1) {
		return invalid("target GP must be in [0, 1), got %v", in.TargetGP)
	}
	switch in.Mode {
	case ModeGP:
		if in.PayRate <= 0 || in.ChargeRate <= 0 {
			return invalid("pay and charge rates must be positive")
		}
	case ModeCharge:
		if in.PayRate <= 0 {
			return invalid("pay rate must be positive")
		}
	case ModePay:
		if in.ChargeRate <= 0 {
			return invalid("charge rate must be positive")
		}
	default:
		return invalid("unknown mode %q", in.Mode)
	}
	return nil
}

// SolveContractor derives the missing figure for the selected mode and
// returns the full cost breakdown.
func SolveContractor(in ContractorInput) (*ContractorResult, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	oc := *in.OnCosts
	k := costFactor(in.Engagement, oc)

	pay, charge := in.PayRate, in.ChargeRate
	switch in.Mode {
	case ModeCharge:
		charge = pay * k / (1 - in.TargetGP)
	case ModePay:
		pay = charge * (1 - in.TargetGP) / k
	}

	res := &ContractorResult{
		Mode:       in.Mode,
		RateType:   in.RateType,
		Engagement: in.Engagement,
		PayRate:    round2(pay),
		ChargeRate: round2(charge),
	}
	if in.Engagement == PAYG {
		super := pay * oc.Super
		res.Super = round2(super)
		res.PayrollTax = round2((pay + super) * oc.PayrollTax)
		res.WorkersComp = round2(pay * oc.WorkersComp)
		res.Insurance = round2(pay * oc.Insurance)
	}
	cost := pay * k
	margin := charge - cost
	res.TotalCost = round2(cost)
	res.Margin = round2(margin)
	res.GP = round4(margin / charge)

	hourly, daily := margin, margin*in.HoursPerDay
	if in.RateType == Daily {
		hourly, daily = margin/in.HoursPerDay, margin
	}
	res.HourlyMargin = round2(hourly)
	res.DailyMargin = round2(daily)
	res.WeeklyMargin = round2(daily * daysPerWeek)
	return res, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
