package calc

// FTEMode selects which figure SolveFTE derives.
type FTEMode string

const (
	// ModeFee derives the placement fee from the salary and fee percentage.
	ModeFee FTEMode = "fee"
	// ModePercent derives the fee percentage from the salary and a fee.
	ModePercent FTEMode = "percent"
)

const (
	DefaultSuperRate = 0.12
	DefaultGSTRate   = 0.10
)

type FTEInput struct {
	Mode                FTEMode  `json:"mode"`
	BaseSalary          float64  `json:"baseSalary"`
	SalaryIncludesSuper bool     `json:"salaryIncludesSuper"`
	SuperRate           *float64 `json:"superRate,omitempty"`
	FeePercent          float64  `json:"feePercent"`
	Fee                 float64  `json:"fee"`
	GSTRate             *float64 `json:"gstRate,omitempty"`
}

type FTEResult struct {
	Mode       FTEMode `json:"mode"`
	BaseSalary float64 `json:"baseSalary"`
	Super      float64 `json:"super"`
	Package    float64 `json:"package"`
	Fee        float64 `json:"fee"`
	FeePercent float64 `json:"feePercent"`
	GST        float64 `json:"gst"`
	FeeIncGST  float64 `json:"feeIncGst"`
}

// SolveFTE computes a permanent placement fee. The fee is charged on the
// total package, base salary plus super.
func SolveFTE(in FTEInput) (*FTEResult, error) {
	if in.Mode == "" {
		in.Mode = ModeFee
	}
	superRate := DefaultSuperRate
	if in.SuperRate != nil {
		superRate = *in.SuperRate
	}
	gstRate := DefaultGSTRate
	if in.GSTRate != nil {
		gstRate = *in.GSTRate
	}
	if in.BaseSalary <= 0 {
		return nil, invalid("salary must be positive")
	}
	if superRate < 0 || gstRate < 0 {
		return nil, invalid("rates must not be negative")
	}

	base := in.BaseSalary
	if in.SalaryIncludesSuper {
		base = in.BaseSalary / (1 + superRate)
	}
	super := base * superRate
	pkg := base + super

	var fee, pct float64
	switch in.Mode {
	case ModeFee:
		if in.FeePercent <= 0 || in.FeePercent >= 1 {
			return nil, invalid("fee percent must be in (0, 1), got %v", in.FeePercent)
		}
		pct = in.FeePercent
		fee = pkg * pct
	case ModePercent:
		if in.Fee <= 0 {
			return nil, invalid("fee must be positive")
		}
		fee = in.Fee
		pct = fee / pkg
	default:
		return nil, invalid("unknown mode %q", in.Mode)
	}

	gst := fee * gstRate
	return &FTEResult{
		Mode:       in.Mode,
		BaseSalary: round2(base),
		Super:      round2(super),
		Package:    round2(pkg),
		Fee:        round2(fee),
		FeePercent: round4(pct),
		GST:        round2(gst),
		FeeIncGST:  round2(fee + gst),
	}, nil
}
