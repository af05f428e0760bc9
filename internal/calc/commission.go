package calc

import (
	"math"
	"sort"
)

// gpTolerance absorbs float noise when matching GP against table keys.
const gpTolerance = 1e-9

type rateStep struct {
	GP   float64
	Rate float64
}

type bonusBand struct {
	From  float64 // inclusive
	To    float64 // exclusive, except the last band which includes 1
	Bonus float64
}

// Tier is a revenue bracket with its own threshold, minimum GP, rate table
// and fixed bonus bands.
type Tier struct {
	Name       string
	From       float64
	To         float64 // zero means unbounded
	Threshold  float64
	MinGP      float64
	Rates      []rateStep
	BonusBands []bonusBand
}

// BDMTiers is the business development commission schedule.
var BDMTiers = []Tier{
	{
		Name:       "Tier 1",
		From:       500_000,
		To:         1_000_000,
		Threshold:  500_000,
		MinGP:      0.20,
		Rates:      []rateStep{{0.20, 0.020}, {0.25, 0.025}, {0.30, 0.030}, {0.35, 0.035}, {0.40, 0.040}},
		BonusBands: []bonusBand{{0.30, 0.35, 2_500}, {0.40, 1, 5_000}},
	},
	{
		Name:       "Tier 2",
		From:       1_000_000,
		To:         2_000_000,
		Threshold:  1_000_000,
		MinGP:      0.25,
		Rates:      []rateStep{{0.25, 0.025}, {0.30, 0.030}, {0.35, 0.040}, {0.40, 0.050}, {0.45, 0.060}},
		BonusBands: []bonusBand{{0.40, 0.45, 7_500}, {0.45, 1, 15_000}},
	},
	{
		Name:       "Tier 3",
		From:       2_000_000,
		Threshold:  2_000_000,
		MinGP:      0.25,
		Rates:      []rateStep{{0.25, 0.035}, {0.30, 0.045}, {0.35, 0.055}, {0.40, 0.065}},
		BonusBands: []bonusBand{{0.35, 0.40, 10_000}, {0.40, 1, 25_000}},
	},
}

const NoTier = "No Tier"

type BDMInput struct {
	Revenue float64 `json:"revenue"`
	GP      float64 `json:"gp"`
}

type BDMResult struct {
	Tier                  string  `json:"tier"`
	Revenue               float64 `json:"revenue"`
	GP                    float64 `json:"gp"`
	Threshold             float64 `json:"threshold"`
	CommissionableRevenue float64 `json:"commissionableRevenue"`
	Rate                  float64 `json:"rate"`
	BaseCommission        float64 `json:"baseCommission"`
	Bonus                 float64 `json:"bonus"`
	Commission            float64 `json:"commission"`
	Note                  string  `json:"note,omitempty"`
}

func tierFor(revenue float64) (Tier, bool) {
	for _, t := range BDMTiers {
		if revenue >= t.From && (t.To == 0 || revenue < t.To) {
			return t, true
		}
	}
	return Tier{}, false
}

// rateFor returns the exact-GP rate if the table has one, otherwise the rate
// of the highest step at or below gp.
func (t Tier) rateFor(gp float64) float64 {
	steps := append([]rateStep(nil), t.Rates...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].GP < steps[j].GP })

	for _, s := range steps {
		if math.Abs(s.GP-gp) < gpTolerance {
			return s.Rate
		}
	}
	rate := 0.0
	for _, s := range steps {
		if s.GP <= gp+gpTolerance {
			rate = s.Rate
		}
	}
	return rate
}

func (t Tier) bonusFor(gp float64) float64 {
	for _, b := range t.BonusBands {
		upper := gp < b.To-gpTolerance
		if b.To >= 1 {
			upper = gp <= b.To+gpTolerance
		}
		if gp >= b.From-gpTolerance && upper {
			return b.Bonus
		}
	}
	return 0
}

// CalculateBDMCommission applies the tier schedule to annual revenue and GP.
func CalculateBDMCommission(in BDMInput) (*BDMResult, error) {
	if in.Revenue < 0 {
		return nil, invalid("revenue must not be negative")
	}
	if in.GP < 0 || in.GP > 1 {
		return nil, invalid("gp must be in [0, 1], got %v", in.GP)
	}

	res := &BDMResult{Tier: NoTier, Revenue: in.Revenue, GP: in.GP}
	tier, ok := tierFor(in.Revenue)
	if !ok {
		res.Note = "revenue below the first tier"
		return res, nil
	}
	res.Tier = tier.Name
	res.Threshold = tier.Threshold
	res.CommissionableRevenue = round2(in.Revenue - tier.Threshold)

	if in.GP < tier.MinGP-gpTolerance {
		res.Note = "gp below the tier minimum"
		return res, nil
	}

	res.Rate = tier.rateFor(in.GP)
	res.BaseCommission = round2(res.CommissionableRevenue * res.Rate)
	res.Bonus = tier.bonusFor(in.GP)
	res.Commission = round2(res.BaseCommission + res.Bonus)
	return res, nil
}

// Recruiter commission bands apply to GP above the quarterly threshold.
var recruiterBands = []struct {
	Width float64 // zero means the remainder
	Rate  float64
}{
	{50_000, 0.10},
	{50_000, 0.15},
	{0, 0.20},
}

const DefaultThresholdMultiplier = 3

type RecruiterInput struct {
	QuarterlyGP         float64 `json:"quarterlyGP"`
	BaseSalary          float64 `json:"baseSalary"`
	ThresholdMultiplier float64 `json:"thresholdMultiplier"`
}

type CommissionBand struct {
	From       float64 `json:"from"`
	To         float64 `json:"to"`
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"`
	Commission float64 `json:"commission"`
}

type RecruiterResult struct {
	QuarterlyGP      float64          `json:"quarterlyGP"`
	Threshold        float64          `json:"threshold"`
	GPAboveThreshold float64          `json:"gpAboveThreshold"`
	Bands            []CommissionBand `json:"bands"`
	Commission       float64          `json:"commission"`
}

// CalculateRecruiterCommission pays banded commission on quarterly GP above
// a multiple of quarterly base salary.
func CalculateRecruiterCommission(in RecruiterInput) (*RecruiterResult, error) {
	if in.QuarterlyGP < 0 || in.BaseSalary <= 0 {
		return nil, invalid("quarterly GP must not be negative and salary must be positive")
	}
	mult := in.ThresholdMultiplier
	if mult <= 0 {
		mult = DefaultThresholdMultiplier
	}

	threshold := in.BaseSalary / 4 * mult
	above := math.Max(0, in.QuarterlyGP-threshold)
	res := &RecruiterResult{
		QuarterlyGP:      in.QuarterlyGP,
		Threshold:        round2(threshold),
		GPAboveThreshold: round2(above),
		Bands:            []CommissionBand{},
	}

	remaining, from := above, 0.0
	for _, b := range recruiterBands {
		if remaining <= 0 {
			break
		}
		amount := remaining
		if b.Width > 0 && amount > b.Width {
			amount = b.Width
		}
		c := amount * b.Rate
		res.Bands = append(res.Bands, CommissionBand{
			From:       round2(from),
			To:         round2(from + amount),
			Rate:       b.Rate,
			Amount:     round2(amount),
			Commission: round2(c),
		})
		res.Commission += c
		remaining -= amount
		from += amount
	}
	res.Commission = round2(res.Commission)
	return res, nil
}
