package cv

import (
	"regexp"
	"strings"
)

type SectionType string

const (
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionSummary    SectionType = "summary"
)

// Section groups the lines that follow a recognised header.
type Section struct {
	Type    SectionType
	Title   string
	Content []string
}

type headerPattern struct {
	section SectionType
	re      *regexp.Regexp
}

// headerPatterns are evaluated in order; the first match classifies the line.
var headerPatterns = []headerPattern{
	{SectionExperience, headerRegexp(
		`experience`, `work\s+experience`, `professional\s+experience`, `relevant\s+experience`,
		`employment`, `employment\s+history`, `work\s+history`, `career\s+history`,
		`career\s+summary`, `career`,
	)},
	{SectionEducation, headerRegexp(
		`education`, `education\s+(?:and|&)\s+training`, `academic\s+background`,
		`qualifications`, `academic\s+qualifications`, `certifications?`,
		`education\s+(?:and|&)\s+certifications?`, `training`,
	)},
	{SectionSkills, headerRegexp(
		`skills`, `technical\s+skills`, `key\s+skills`, `core\s+skills`,
		`core\s+competencies`, `competencies`, `expertise`, `technical\s+expertise`,
		`technologies`, `tools`,
	)},
	{SectionSummary, headerRegexp(
		`summary`, `professional\s+summary`, `profile`, `professional\s+profile`,
		`career\s+objective`, `objective`, `about\s+me`, `overview`,
	)},
}

func headerRegexp(keywords ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*(?:` + strings.Join(keywords, "|") + `)\s*:?\s*$`)
}

// ClassifyHeader reports which section a header line opens, if any.
func ClassifyHeader(line string) (SectionType, bool) {
	for _, hp := range headerPatterns {
		if hp.re.MatchString(line) {
			return hp.section, true
		}
	}
	return "", false
}

// SplitLines returns the trimmed, non-blank lines of content.
func SplitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// SegmentSections groups lines under the headers that precede them. Lines
// before the first header are dropped.
func SegmentSections(lines []string) []Section {
	var sections []Section
	var current *Section

	for _, line := range lines {
		if st, ok := ClassifyHeader(line); ok {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Type: st, Title: strings.TrimSpace(line)}
			continue
		}
		if current != nil {
			current.Content = append(current.Content, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// linesOf concatenates the content of every section of the given type.
func linesOf(sections []Section, st SectionType) []string {
	var out []string
	for _, s := range sections {
		if s.Type == st {
			out = append(out, s.Content...)
		}
	}
	return out
}
