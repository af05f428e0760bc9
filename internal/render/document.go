package render

import (
	"sort"
	"strings"

	"recruit-kit/internal/config"
	"recruit-kit/internal/cv"
)

// Document is everything printed on a branded CV. Candidate email and
// phone are left out; enquiries go through the account manager.
type Document struct {
	CV             *cv.CVData
	PositionTitle  string
	AccountManager config.AccountManager
}

type blockKind int

const (
	blockTitle blockKind = iota
	blockSubtitle
	blockMeta
	blockHeading
	blockStrong
	blockText
	blockItalic
	blockBullet
)

type block struct {
	kind blockKind
	text string
}

// Section headings, in print order.
const (
	headingSummary   = "Summary"
	headingEducation = "Education"
	headingSkills    = "Skills"
	headingCareer    = "Career Summary"
)

// blocks lays the document out once for both output formats.
func (d Document) blocks() []block {
	data := d.CV
	if data == nil {
		data = &cv.CVData{}
	}

	name := data.PersonalInfo.Name
	if name == "" {
		name = cv.NameNotFound
	}
	out := []block{{blockTitle, name}}
	if t := strings.TrimSpace(d.PositionTitle); t != "" {
		out = append(out, block{blockSubtitle, t})
	}
	if loc := data.PersonalInfo.Location; loc != "" && loc != cv.LocationNotFound {
		out = append(out, block{blockMeta, loc})
	}

	if s := strings.TrimSpace(data.Summary); s != "" {
		out = append(out, block{blockHeading, headingSummary}, block{blockText, s})
	}

	if len(data.Education) > 0 {
		out = append(out, block{blockHeading, headingEducation})
		for _, e := range data.Education {
			out = append(out, block{blockStrong, e.Degree})
			line := e.Institution
			if e.Period != "" && e.Period != cv.PeriodNotSpecified {
				line += " | " + e.Period
			}
			out = append(out, block{blockText, line})
			if e.Grade != "" {
				out = append(out, block{blockItalic, e.Grade})
			}
		}
	}

	if len(data.Skills) > 0 {
		out = append(out, block{blockHeading, headingSkills})
		categories := make([]string, 0, len(data.Skills))
		for c := range data.Skills {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			out = append(out, block{blockText, c + ": " + strings.Join(data.Skills[c], ", ")})
		}
	}

	if len(data.WorkExperience) > 0 {
		out = append(out, block{blockHeading, headingCareer})
		for _, w := range data.WorkExperience {
			out = append(out, block{blockStrong, w.Title + " | " + w.Company})
			out = append(out, block{blockItalic, w.Period})
			for _, line := range w.Description {
				out = append(out, block{blockBullet, line})
			}
		}
	}
	return out
}

// footer is the account manager contact line.
func (d Document) footer(b Branding) string {
	am := d.AccountManager
	parts := []string{}
	if am.Name != "" {
		who := "Presented by " + am.Name
		if am.Title != "" {
			who += ", " + am.Title
		}
		parts = append(parts, who)
	}
	for _, s := range []string{am.Email, am.Phone, b.CompanyName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}
