package cv

import (
	"log"
	"regexp"
	"strings"
)

const (
	monthPattern  = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	datePoint     = `(?:` + monthPattern + `\s+|\d{1,2}/)?(?:19|20)\d{2}`
	shortLineSize = 100
)

var (
	dateRangePattern = regexp.MustCompile(`(?i)\b` + datePoint +
		`(?:\s*(?:-|–|—|to|until)\s*(?:` + datePoint + `|present|current|now|date))?\b`)
	companySuffixPattern = regexp.MustCompile(`(?i)\b(?:pty|ltd|inc|llc|corporation|consulting|technologies|solutions)\b`)
	allCapsPattern       = regexp.MustCompile(`^[A-Z][A-Z0-9&.,'()/\-]*(?:\s+[A-Z0-9&.,'()/\-]+)*$`)
	bulletPattern        = regexp.MustCompile(`^[•●▪◦○■□➢►✓*·\-–—]+\s*`)
	letterPattern        = regexp.MustCompile(`[A-Z]`)
)

const fieldSeparators = " \t|,;:-–—()"

func isBullet(line string) bool {
	return bulletPattern.MatchString(line)
}

func stripBullet(line string) string {
	return strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
}

// looksLikeCompany reports whether the line reads as an employer name: an
// all-caps run or a legal-entity suffix.
func looksLikeCompany(line string) bool {
	if companySuffixPattern.MatchString(line) {
		return true
	}
	return allCapsPattern.MatchString(line) && len(letterPattern.FindAllString(line, -1)) >= 2
}

// experienceFold accumulates work experience records line by line.
type experienceFold struct {
	current *WorkExperience
	records []WorkExperience
}

func (f *experienceFold) flush() {
	if f.current == nil {
		return
	}
	c := f.current
	if c.Period != "" || c.Title != "" || c.Company != "" || len(c.Description) > 0 {
		f.records = append(f.records, *c)
	}
	f.current = nil
}

func (f *experienceFold) ensure() *WorkExperience {
	if f.current == nil {
		f.current = &WorkExperience{}
	}
	return f.current
}

// headerFields builds the record a trigger line opens. A company-shaped
// line is kept whole as the company, date and all.
func headerFields(line, period string, company bool) WorkExperience {
	h := WorkExperience{Period: period}
	if company {
		h.Company = line
		return h
	}
	if period != "" {
		line = strings.Trim(strings.Replace(line, period, "", 1), fieldSeparators)
		line = strings.Join(strings.Fields(line), " ")
	}
	h.Title = line
	return h
}

func (f *experienceFold) step(line string) {
	if isBullet(line) {
		if text := stripBullet(line); text != "" {
			c := f.ensure()
			c.Description = append(c.Description, text)
		}
		return
	}

	period := dateRangePattern.FindString(line)
	company := looksLikeCompany(line)
	short := len(line) < shortLineSize

	if period != "" || company || short {
		h := headerFields(line, period, company)
		f.flush()
		f.current = &h
		return
	}

	c := f.ensure()
	switch {
	case c.Company == "" && short && company:
		c.Company = line
	case c.Title == "":
		c.Title = line
	default:
		c.Description = append(c.Description, line)
	}
}

func finalizeExperience(w WorkExperience) WorkExperience {
	if w.Period == "" {
		w.Period = PeriodNotSpecified
	}
	if w.Company == "" {
		if idx := strings.Index(w.Title, " at "); idx >= 0 {
			w.Company = strings.TrimSpace(w.Title[idx+len(" at "):])
		}
		if w.Company == "" {
			w.Company = CompanyNotSpecified
		}
	}
	if w.Title == "" {
		w.Title = RoleNotSpecified
	}
	if len(w.Description) == 0 {
		w.Description = []string{NoDescriptionProvided}
	}
	return w
}

// ExtractWorkExperience folds the experience section lines into records.
func ExtractWorkExperience(lines []string) (out []WorkExperience) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Extract] work experience extractor recovered: %v", r)
			out = []WorkExperience{}
		}
	}()

	var f experienceFold
	for _, line := range lines {
		f.step(strings.TrimSpace(line))
	}
	f.flush()

	out = make([]WorkExperience, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, finalizeExperience(r))
	}
	return out
}
