package calc

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money and Percent tag report values so tables and spreadsheets can format
// them. Percent is a fraction (0.25 is 25%).
type (
	Money   float64
	Percent float64
)

type Row struct {
	Label string
	Value any // Money, Percent, int, float64 or string
}

// Report is a titled, ordered list of labelled values.
type Report struct {
	Title string
	Rows  []Row
}

// Reporter is implemented by every calculator result.
type Reporter interface {
	Report() Report
}

// FormatValue renders a report value for display using English grouping.
func FormatValue(v any) string {
	p := message.NewPrinter(language.English)
	switch x := v.(type) {
	case Money:
		return p.Sprintf("$%.2f", float64(x))
	case Percent:
		return p.Sprintf("%.2f%%", float64(x)*100)
	case int:
		return p.Sprintf("%d", x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case bool:
		if x {
			return "yes"
		}
		return "no"
	default:
		return p.Sprintf("%v", x)
	}
}

func (r *ContractorResult) Report() Report {
	rows := []Row{
		{"Mode", string(r.Mode)},
		{"Rate type", string(r.RateType)},
		{"Engagement", string(r.Engagement)},
		{"Pay rate", Money(r.PayRate)},
		{"Charge rate", Money(r.ChargeRate)},
	}
	if r.Engagement == PAYG {
		rows = append(rows,
			Row{"Super", Money(r.Super)},
			Row{"Payroll tax", Money(r.PayrollTax)},
			Row{"Workers comp", Money(r.WorkersComp)},
			Row{"Insurance", Money(r.Insurance)},
		)
	}
	rows = append(rows,
		Row{"Total cost", Money(r.TotalCost)},
		Row{"Margin", Money(r.Margin)},
		Row{"GP", Percent(r.GP)},
		Row{"Hourly margin", Money(r.HourlyMargin)},
		Row{"Daily margin", Money(r.DailyMargin)},
		Row{"Weekly margin", Money(r.WeeklyMargin)},
	)
	return Report{Title: "Contractor", Rows: rows}
}

func (r *FTEResult) Report() Report {
	return Report{Title: "Permanent placement", Rows: []Row{
		{"Base salary", Money(r.BaseSalary)},
		{"Super", Money(r.Super)},
		{"Package", Money(r.Package)},
		{"Fee percent", Percent(r.FeePercent)},
		{"Fee", Money(r.Fee)},
		{"GST", Money(r.GST)},
		{"Fee inc. GST", Money(r.FeeIncGST)},
	}}
}

func (r *BDMResult) Report() Report {
	rows := []Row{
		{"Tier", r.Tier},
		{"Revenue", Money(r.Revenue)},
		{"GP", Percent(r.GP)},
		{"Threshold", Money(r.Threshold)},
		{"Commissionable revenue", Money(r.CommissionableRevenue)},
		{"Rate", Percent(r.Rate)},
		{"Base commission", Money(r.BaseCommission)},
		{"Bonus", Money(r.Bonus)},
		{"Commission", Money(r.Commission)},
	}
	if r.Note != "" {
		rows = append(rows, Row{"Note", r.Note})
	}
	return Report{Title: "BDM commission", Rows: rows}
}

func (r *RecruiterResult) Report() Report {
	rows := []Row{
		{"Quarterly GP", Money(r.QuarterlyGP)},
		{"Threshold", Money(r.Threshold)},
		{"GP above threshold", Money(r.GPAboveThreshold)},
	}
	for _, b := range r.Bands {
		label := message.NewPrinter(language.English).Sprintf("%.0f%% band", b.Rate*100)
		rows = append(rows, Row{label, Money(b.Commission)})
	}
	rows = append(rows, Row{"Commission", Money(r.Commission)})
	return Report{Title: "Recruiter commission", Rows: rows}
}

func (r *WorkdaysResult) Report() Report {
	rows := []Row{
		{"Start", r.Start},
		{"End", r.End},
		{"Country", r.Country},
	}
	if r.Subdivision != "" {
		rows = append(rows, Row{"Subdivision", r.Subdivision})
	}
	rows = append(rows,
		Row{"Calendar days", r.CalendarDays},
		Row{"Weekend days", r.WeekendDays},
	)
	for _, h := range r.Holidays {
		rows = append(rows, Row{h.Date, h.Name})
	}
	rows = append(rows,
		Row{"Working days", r.WorkingDays},
	)
	if r.DailyRate > 0 {
		rows = append(rows,
			Row{"Daily rate", Money(r.DailyRate)},
			Row{"Earnings", Money(r.Earnings)},
		)
	}
	rows = append(rows, Row{"Built-in holidays used", r.FallbackUsed})
	return Report{Title: "Working days", Rows: rows}
}
