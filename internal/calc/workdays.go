package calc

import (
	"strings"
	"time"

	"recruit-kit/internal/holidays"
)

const (
	DateLayout     = "2006-01-02"
	DefaultCountry = "AU"
)

type WorkdaysInput struct {
	Start       string  `json:"start"` // YYYY-MM-DD, inclusive
	End         string  `json:"end"`   // YYYY-MM-DD, inclusive
	Country     string  `json:"country"`
	Subdivision string  `json:"subdivision,omitempty"`
	DailyRate   float64 `json:"dailyRate,omitempty"`
}

// Range parses and checks the date range.
func (in WorkdaysInput) Range() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, in.Start)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("start date %q: want YYYY-MM-DD", in.Start)
	}
	end, err := time.Parse(DateLayout, in.End)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("end date %q: want YYYY-MM-DD", in.End)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, invalid("end date is before start date")
	}
	return start, end, nil
}

type HolidayDay struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type WorkdaysResult struct {
	Start        string       `json:"start"`
	End          string       `json:"end"`
	Country      string       `json:"country"`
	Subdivision  string       `json:"subdivision,omitempty"`
	CalendarDays int          `json:"calendarDays"`
	WeekendDays  int          `json:"weekendDays"`
	Holidays     []HolidayDay `json:"holidays"`
	WorkingDays  int          `json:"workingDays"`
	DailyRate    float64      `json:"dailyRate,omitempty"`
	Earnings     float64      `json:"earnings,omitempty"`
	FallbackUsed bool         `json:"fallbackUsed"`
}

// CountWorkingDays counts weekdays in the range that are not public holidays
// observed in the requested subdivision. hs may cover more than the range.
func CountWorkingDays(in WorkdaysInput, hs []holidays.Holiday, fallbackUsed bool) (*WorkdaysResult, error) {
	start, end, err := in.Range()
	if err != nil {
		return nil, err
	}
	if in.DailyRate < 0 {
		return nil, invalid("daily rate must not be negative")
	}
	if in.Country == "" {
		in.Country = DefaultCountry
	}

	observed := make(map[string]string)
	for _, h := range hs {
		if !h.AppliesTo(in.Subdivision) {
			continue
		}
		key := h.Date.Format(DateLayout)
		if _, dup := observed[key]; !dup {
			observed[key] = h.Name
		}
	}

	res := &WorkdaysResult{
		Start:        in.Start,
		End:          in.End,
		Country:      strings.ToUpper(in.Country),
		Subdivision:  in.Subdivision,
		Holidays:     []HolidayDay{},
		DailyRate:    in.DailyRate,
		FallbackUsed: fallbackUsed,
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		res.CalendarDays++
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			res.WeekendDays++
			continue
		}
		key := d.Format(DateLayout)
		if name, ok := observed[key]; ok {
			res.Holidays = append(res.Holidays, HolidayDay{Date: key, Name: name})
			continue
		}
		res.WorkingDays++
	}
	res.Earnings = round2(float64(res.WorkingDays) * in.DailyRate)
	return res, nil
}
