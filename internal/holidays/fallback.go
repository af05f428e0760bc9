package holidays

import "time"

// Fallback returns the national Australian public holidays for year.
// Weekend substitution days are not included.
func Fallback(year int) []Holiday {
	date := func(m time.Month, d int) time.Time {
		return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
	}
	easter := Easter(year)

	return []Holiday{
		{Date: date(time.January, 1), Name: "New Year's Day", Global: true},
		{Date: date(time.January, 26), Name: "Australia Day", Global: true},
		{Date: easter.AddDate(0, 0, -2), Name: "Good Friday", Global: true},
		{Date: easter.AddDate(0, 0, 1), Name: "Easter Monday", Global: true},
		{Date: date(time.April, 25), Name: "Anzac Day", Global: true},
		{Date: nthWeekday(year, time.June, time.Monday, 2), Name: "King's Birthday", Global: true},
		{Date: date(time.December, 25), Name: "Christmas Day", Global: true},
		{Date: date(time.December, 26), Name: "Boxing Day", Global: true},
	}
}

// Easter returns Easter Sunday using the anonymous Gregorian algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b, c := year/100, year%100
	d, e := b/4, b%4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i, k := c/4, c%4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(wd) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset+7*(n-1))
}
