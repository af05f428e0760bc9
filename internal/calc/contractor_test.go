package calc

import (
	"errors"
	"math"
	"testing"
)

func TestSolveContractor(t *testing.T) {
	t.Run("payg gp mode carries every on-cost", func(t *testing.T) {
		res, err := SolveContractor(ContractorInput{PayRate: 50, ChargeRate: 70})
		if err != nil {
			t.Fatalf("SolveContractor() error = %v", err)
		}
		want := ContractorResult{
			Mode:         ModeGP,
			RateType:     Hourly,
			Engagement:   PAYG,
			PayRate:      50,
			ChargeRate:   70,
			Super:        6,
			PayrollTax:   3.05,
			WorkersComp:  0.75,
			Insurance:    0.5,
			TotalCost:    60.3,
			Margin:       9.7,
			GP:           0.1385,
			HourlyMargin: 9.7,
			DailyMargin:  77.58,
			WeeklyMargin: 387.92,
		}
		if *res != want {
			t.Errorf("SolveContractor() = %+v\nwant %+v", *res, want)
		}
	})

	t.Run("company charge mode", func(t *testing.T) {
		res, err := SolveContractor(ContractorInput{
			Mode:       ModeCharge,
			Engagement: Company,
			PayRate:    80,
			TargetGP:   0.2,
		})
		if err != nil {
			t.Fatalf("SolveContractor() error = %v", err)
		}
		if res.ChargeRate != 100 || res.Margin != 20 || res.Super != 0 {
			t.Errorf("SolveContractor() = %+v", res)
		}
	})

	t.Run("company pay mode", func(t *testing.T) {
		res, err := SolveContractor(ContractorInput{
			Mode:       ModePay,
			Engagement: Company,
			ChargeRate: 100,
			TargetGP:   0.25,
		})
		if err != nil {
			t.Fatalf("SolveContractor() error = %v", err)
		}
		if res.PayRate != 75 || res.GP != 0.25 {
			t.Errorf("SolveContractor() = %+v", res)
		}
	})

	t.Run("daily rates derive hourly margin", func(t *testing.T) {
		res, err := SolveContractor(ContractorInput{
			RateType:   Daily,
			Engagement: Company,
			PayRate:    800,
			ChargeRate: 1000,
		})
		if err != nil {
			t.Fatalf("SolveContractor() error = %v", err)
		}
		if res.HourlyMargin != 25 || res.DailyMargin != 200 || res.WeeklyMargin != 1000 {
			t.Errorf("margins = %v/%v/%v", res.HourlyMargin, res.DailyMargin, res.WeeklyMargin)
		}
	})

	t.Run("charge mode round trips through gp mode", func(t *testing.T) {
		charged, err := SolveContractor(ContractorInput{Mode: ModeCharge, PayRate: 65, TargetGP: 0.18})
		if err != nil {
			t.Fatalf("SolveContractor(charge) error = %v", err)
		}
		back, err := SolveContractor(ContractorInput{PayRate: 65, ChargeRate: charged.ChargeRate})
		if err != nil {
			t.Fatalf("SolveContractor(gp) error = %v", err)
		}
		if math.Abs(back.GP-0.18) > 1e-3 {
			t.Errorf("GP = %v, want about 0.18", back.GP)
		}
	})

	errCases := []struct {
		name string
		in   ContractorInput
	}{
		{"missing charge rate", ContractorInput{PayRate: 50}},
		{"target gp of one", ContractorInput{Mode: ModeCharge, PayRate: 50, TargetGP: 1}},
		{"negative target gp", ContractorInput{Mode: ModePay, ChargeRate: 50, TargetGP: -0.1}},
		{"unknown mode", ContractorInput{Mode: "margin", PayRate: 1, ChargeRate: 2}},
		{"unknown rate type", ContractorInput{RateType: "weekly", PayRate: 1, ChargeRate: 2}},
		{"unknown engagement", ContractorInput{Engagement: "abn", PayRate: 1, ChargeRate: 2}},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := SolveContractor(tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestSolveFTE(t *testing.T) {
	t.Run("fee from percentage", func(t *testing.T) {
		res, err := SolveFTE(FTEInput{BaseSalary: 100_000, FeePercent: 0.2})
		if err != nil {
			t.Fatalf("SolveFTE() error = %v", err)
		}
		want := FTEResult{
			Mode:       ModeFee,
			BaseSalary: 100_000,
			Super:      12_000,
			Package:    112_000,
			Fee:        22_400,
			FeePercent: 0.2,
			GST:        2_240,
			FeeIncGST:  24_640,
		}
		if *res != want {
			t.Errorf("SolveFTE() = %+v\nwant %+v", *res, want)
		}
	})

	t.Run("percentage from fee", func(t *testing.T) {
		res, err := SolveFTE(FTEInput{Mode: ModePercent, BaseSalary: 100_000, Fee: 22_400})
		if err != nil {
			t.Fatalf("SolveFTE() error = %v", err)
		}
		if res.FeePercent != 0.2 {
			t.Errorf("FeePercent = %v, want 0.2", res.FeePercent)
		}
	})

	t.Run("salary including super is split out", func(t *testing.T) {
		res, err := SolveFTE(FTEInput{BaseSalary: 112_000, SalaryIncludesSuper: true, FeePercent: 0.2})
		if err != nil {
			t.Fatalf("SolveFTE() error = %v", err)
		}
		if res.BaseSalary != 100_000 || res.Package != 112_000 {
			t.Errorf("SolveFTE() = %+v", res)
		}
	})

	t.Run("custom rates", func(t *testing.T) {
		zero := 0.0
		res, err := SolveFTE(FTEInput{BaseSalary: 100_000, FeePercent: 0.15, SuperRate: &zero, GSTRate: &zero})
		if err != nil {
			t.Fatalf("SolveFTE() error = %v", err)
		}
		if res.Fee != 15_000 || res.FeeIncGST != 15_000 {
			t.Errorf("SolveFTE() = %+v", res)
		}
	})

	for name, in := range map[string]FTEInput{
		"zero salary":      {FeePercent: 0.2},
		"fee percent of 1": {BaseSalary: 1, FeePercent: 1},
		"missing fee":      {Mode: ModePercent, BaseSalary: 1},
		"unknown mode":     {Mode: "gross", BaseSalary: 1},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := SolveFTE(in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
