package cv

import (
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	degreePattern = regexp.MustCompile(`(?i)\b(?:bachelor(?:'s)?|master(?:'s)?|doctor(?:ate)?|ph\.?\s?d|` +
		`(?:advanced|graduate)\s+diploma|diploma|graduate\s+certificate|certificate(?:\s+[ivx]+)?|associate\s+degree|` +
		`b\.?\s?sc|m\.?\s?sc|mba|b\.?\s?eng|m\.?\s?eng|b\.?\s?tech|m\.?\s?tech|b\.?\s?com|m\.?\s?com)\b` +
		`(?:\s+(?:of|in)(?:\s+[A-Za-z&]+)+)?`)
	degreeCutPattern = regexp.MustCompile(`(?i)\s+(?:university|college|institute|school|academy|polytechnic|tafe|from|at)\b`)

	institutionPattern = regexp.MustCompile(`(?:[A-Z][A-Za-z&.'-]*\s+)*` +
		`(?i:university|college|institute|school|academy|polytechnic|tafe)` +
		`(?:\s+(?i:of|for)(?:\s+(?i:and|&))?(?:\s+[A-Z][A-Za-z&.'-]*)+)?`)

	gradePattern = regexp.MustCompile(`(?i)\b(?:gpa|wam|grade|honou?rs|first\s+class|second\s+class|` +
		`(?:high\s+)?distinction|credit|(?:magna\s+|summa\s+)?cum\s+laude)\b[^,;\n]*`)

	yearPattern = regexp.MustCompile(`\d{4}`)
)

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func matchDegree(s string) string {
	m := degreePattern.FindString(s)
	if loc := degreeCutPattern.FindStringIndex(m); loc != nil {
		m = m[:loc[0]]
	}
	return strings.TrimSpace(m)
}

func removeOnce(s, sub string) string {
	if sub == "" {
		return s
	}
	return strings.Replace(s, sub, " ", 1)
}

// educationFold accumulates education records line by line.
type educationFold struct {
	current *Education
	records []Education
}

func (f *educationFold) flush() {
	if f.current == nil {
		return
	}
	c := f.current
	if c.Degree != "" || c.Institution != "" || c.Period != "" || c.Grade != "" {
		f.records = append(f.records, *c)
	}
	f.current = nil
}

func (f *educationFold) step(line string) {
	grade := strings.Trim(gradePattern.FindString(line), fieldSeparators)

	rest := line
	period := dateRangePattern.FindString(rest)
	rest = removeOnce(rest, period)
	degree := matchDegree(rest)
	rest = removeOnce(rest, degree)
	institution := strings.TrimSpace(institutionPattern.FindString(rest))
	rest = removeOnce(rest, institution)

	if period == "" && degree == "" && institution == "" {
		if f.current == nil {
			f.current = &Education{}
		}
		c := f.current
		switch {
		case grade != "" && c.Grade == "":
			c.Grade = grade
		case c.Institution == "":
			c.Institution = titleCase(line)
		case c.Degree == "":
			c.Degree = titleCase(line)
		}
		return
	}

	// Every degree, institution or year line opens a new record.
	f.flush()
	c := &Education{}
	f.current = c
	if period != "" {
		c.Period = titleCase(period)
	}
	if degree != "" {
		c.Degree = titleCase(degree)
	}
	if institution != "" {
		c.Institution = titleCase(institution)
	}
	if grade != "" {
		c.Grade = grade
	}

	leftover := strings.Trim(strings.Join(strings.Fields(removeOnce(rest, grade)), " "), fieldSeparators)
	if leftover == "" {
		return
	}
	switch {
	case c.Institution == "" && institutionPattern.MatchString(leftover):
		c.Institution = titleCase(leftover)
	case c.Degree == "" && degreePattern.MatchString(leftover):
		c.Degree = titleCase(leftover)
	}
}

func firstYear(period string) int {
	y, err := strconv.Atoi(yearPattern.FindString(period))
	if err != nil {
		return 0
	}
	return y
}

// ExtractEducation folds the education section lines into records, most
// recent first.
func ExtractEducation(lines []string) (out []Education) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Extract] education extractor recovered: %v", r)
			out = []Education{}
		}
	}()

	var f educationFold
	for _, line := range lines {
		f.step(strings.TrimSpace(line))
	}
	f.flush()

	out = make([]Education, 0, len(f.records))
	for _, e := range f.records {
		if e.Degree == "" {
			e.Degree = DegreeNotSpecified
		}
		if e.Institution == "" {
			e.Institution = InstitutionNotSpecified
		}
		if e.Degree == DegreeNotSpecified && e.Institution == InstitutionNotSpecified {
			continue
		}
		if e.Period == "" {
			e.Period = PeriodNotSpecified
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return firstYear(out[i].Period) > firstYear(out[j].Period)
	})
	return out
}
