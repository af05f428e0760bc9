package main

import (
	"time"

	"github.com/spf13/cobra"

	"recruit-kit/internal/calc"
	"recruit-kit/internal/config"
	"recruit-kit/internal/holidays"
)

var (
	contractorIn calc.ContractorInput
	onCosts      = calc.DefaultOnCosts()

	fteIn        calc.FTEInput
	fteSuperRate float64
	fteGSTRate   float64

	bdmIn       calc.BDMInput
	recruiterIn calc.RecruiterInput

	workdaysIn     calc.WorkdaysInput
	holidayAPIURL  string
	holidayTimeout time.Duration
)

var contractorCmd = &cobra.Command{
	Use:   "contractor",
	Short: "Contractor margin: derive GP, charge rate or pay rate",
	Example: `  calc contractor --mode gp --pay 80 --charge 100
  calc contractor --mode charge --pay 650 --target-gp 0.2 --rate-type daily
  calc contractor --mode pay --charge 120 --target-gp 0.18 --engagement company`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := contractorIn
		oc := onCosts
		in.OnCosts = &oc
		res, err := calc.SolveContractor(in)
		if err != nil {
			return err
		}
		return emit(cmd, res)
	},
}

var fteCmd = &cobra.Command{
	Use:   "fte",
	Short: "Permanent placement fee on the total package",
	Example: `  calc fte --salary 120000 --fee-percent 0.18
  calc fte --mode percent --salary 134400 --includes-super --fee 24000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := fteIn
		in.SuperRate = &fteSuperRate
		in.GSTRate = &fteGSTRate
		res, err := calc.SolveFTE(in)
		if err != nil {
			return err
		}
		return emit(cmd, res)
	},
}

var bdmCmd = &cobra.Command{
	Use:     "bdm",
	Short:   "BDM commission from annual revenue and GP",
	Example: `  calc bdm --revenue 1500000 --gp 0.35`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := calc.CalculateBDMCommission(bdmIn)
		if err != nil {
			return err
		}
		return emit(cmd, res)
	},
}

var recruiterCmd = &cobra.Command{
	Use:     "recruiter",
	Short:   "Recruiter commission on quarterly GP above threshold",
	Example: `  calc recruiter --gp 150000 --salary 80000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := calc.CalculateRecruiterCommission(recruiterIn)
		if err != nil {
			return err
		}
		return emit(cmd, res)
	},
}

var workdaysCmd = &cobra.Command{
	Use:   "workdays",
	Short: "Working days between two dates, net of public holidays",
	Example: `  calc workdays --start 2025-01-01 --end 2025-03-31
  calc workdays --start 2025-07-01 --end 2025-12-31 --subdivision AU-VIC --daily-rate 850`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := workdaysIn
		start, end, err := in.Range()
		if err != nil {
			return err
		}
		client := holidays.NewClient(holidayAPIURL, holidayTimeout)
		hs, fallback := client.FetchYears(cmd.Context(), holidays.Years(start, end), in.Country)
		res, err := calc.CountWorkingDays(in, hs, fallback)
		if err != nil {
			return err
		}
		return emit(cmd, res)
	},
}

func init() {
	f := contractorCmd.Flags()
	f.StringVar((*string)(&contractorIn.Mode), "mode", string(calc.ModeGP), "gp, charge or pay")
	f.StringVar((*string)(&contractorIn.RateType), "rate-type", string(calc.Hourly), "hourly or daily")
	f.StringVar((*string)(&contractorIn.Engagement), "engagement", string(calc.PAYG), "payg or company")
	f.Float64Var(&contractorIn.PayRate, "pay", 0, "pay rate")
	f.Float64Var(&contractorIn.ChargeRate, "charge", 0, "charge rate")
	f.Float64Var(&contractorIn.TargetGP, "target-gp", 0, "target GP as a fraction (0.2 is 20%)")
	f.Float64Var(&contractorIn.HoursPerDay, "hours-per-day", calc.DefaultHoursPerDay, "hours in a working day")
	f.Float64Var(&onCosts.Super, "super", onCosts.Super, "superannuation rate")
	f.Float64Var(&onCosts.PayrollTax, "payroll-tax", onCosts.PayrollTax, "payroll tax rate")
	f.Float64Var(&onCosts.WorkersComp, "workers-comp", onCosts.WorkersComp, "workers compensation rate")
	f.Float64Var(&onCosts.Insurance, "insurance", onCosts.Insurance, "insurance rate")

	f = fteCmd.Flags()
	f.StringVar((*string)(&fteIn.Mode), "mode", string(calc.ModeFee), "fee or percent")
	f.Float64Var(&fteIn.BaseSalary, "salary", 0, "annual salary")
	f.BoolVar(&fteIn.SalaryIncludesSuper, "includes-super", false, "salary already includes super")
	f.Float64Var(&fteIn.FeePercent, "fee-percent", 0, "fee as a fraction of the package")
	f.Float64Var(&fteIn.Fee, "fee", 0, "fee amount")
	f.Float64Var(&fteSuperRate, "super", calc.DefaultSuperRate, "superannuation rate")
	f.Float64Var(&fteGSTRate, "gst", calc.DefaultGSTRate, "GST rate")

	f = bdmCmd.Flags()
	f.Float64Var(&bdmIn.Revenue, "revenue", 0, "annual revenue")
	f.Float64Var(&bdmIn.GP, "gp", 0, "GP as a fraction (0.35 is 35%)")
	bdmCmd.MarkFlagRequired("revenue")
	bdmCmd.MarkFlagRequired("gp")

	f = recruiterCmd.Flags()
	f.Float64Var(&recruiterIn.QuarterlyGP, "gp", 0, "GP billed this quarter")
	f.Float64Var(&recruiterIn.BaseSalary, "salary", 0, "annual base salary")
	f.Float64Var(&recruiterIn.ThresholdMultiplier, "multiplier", calc.DefaultThresholdMultiplier, "threshold as a multiple of quarterly salary")
	recruiterCmd.MarkFlagRequired("gp")
	recruiterCmd.MarkFlagRequired("salary")

	f = workdaysCmd.Flags()
	f.StringVar(&workdaysIn.Start, "start", "", "first day, YYYY-MM-DD")
	f.StringVar(&workdaysIn.End, "end", "", "last day, YYYY-MM-DD")
	f.StringVar(&workdaysIn.Country, "country", calc.DefaultCountry, "ISO country code")
	f.StringVar(&workdaysIn.Subdivision, "subdivision", "", "region code such as AU-NSW")
	f.Float64Var(&workdaysIn.DailyRate, "daily-rate", 0, "daily rate for an earnings estimate")
	f.StringVar(&holidayAPIURL, "holiday-api", config.DefaultHolidayAPIURL, "public holiday API base URL")
	f.DurationVar(&holidayTimeout, "timeout", 10*time.Second, "holiday API timeout")
	workdaysCmd.MarkFlagRequired("start")
	workdaysCmd.MarkFlagRequired("end")
}
