package cv

import (
	"log"
	"regexp"
	"sort"
	"strings"
)

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}$`),
		regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z]\.?\s+[A-Z][a-z]+$`),
		regexp.MustCompile(`^[A-Z][a-z]+(?:-[A-Z][a-z]+)?(?:\s+[A-Z][a-z]+){1,2}$`),
	}
	nonNameHeader = regexp.MustCompile(`(?i)^(?:curriculum\s+vitae|resume|résumé|cv|profile)\b`)

	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	locationPattern = regexp.MustCompile(`[A-Z][a-zA-Z]+(?:[ \t]+[A-Z][a-zA-Z]+)*,[ \t]*[A-Z][a-zA-Z]+(?:[ \t]+[A-Z][a-zA-Z]+)*`)
)

const (
	topOfPageFraction = 0.75
	sameLineTolerance = 5.0
	nameScanLines     = 10
)

// guard runs fn and returns fallback if fn panics or yields nothing.
func guard(name, fallback string, fn func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Extract] %s extractor recovered: %v", name, r)
			out = fallback
		}
	}()
	if v := fn(); v != "" {
		return v
	}
	return fallback
}

func matchName(text string) string {
	text = strings.TrimSpace(text)
	for _, re := range namePatterns {
		if re.MatchString(text) {
			return text
		}
	}
	return ""
}

// nameFromLayout looks for a name among the spans in the top quarter of
// the first page, highest first and larger fonts first within a line.
func nameFromLayout(pages []Page) string {
	if len(pages) == 0 {
		return ""
	}
	page := pages[0]
	if page.Height <= 0 {
		return ""
	}

	cutoff := page.Height * topOfPageFraction
	var top []Span
	for _, s := range page.Spans {
		if s.BoundingBox.Y >= cutoff {
			top = append(top, s)
		}
	}

	for _, s := range readingOrder(top) {
		if name := matchName(s.Content); name != "" {
			return name
		}
	}
	return ""
}

// readingOrder buckets spans into lines, top line first, where a line is
// every span within sameLineTolerance of the line's highest span. Within a
// line larger fonts come first.
func readingOrder(spans []Span) []Span {
	out := append([]Span(nil), spans...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].BoundingBox.Y > out[j].BoundingBox.Y })

	line := make([]int, len(out))
	anchor := 0.0
	for i, s := range out {
		switch {
		case i == 0:
			anchor = s.BoundingBox.Y
		case anchor-s.BoundingBox.Y > sameLineTolerance:
			line[i] = line[i-1] + 1
			anchor = s.BoundingBox.Y
		default:
			line[i] = line[i-1]
		}
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if line[i] != line[j] {
			return line[i] < line[j]
		}
		return out[i].Appearance.FontSize > out[j].Appearance.FontSize
	})

	ordered := make([]Span, len(out))
	for k, i := range idx {
		ordered[k] = out[i]
	}
	return ordered
}

func nameFromContent(content string) string {
	lines := SplitLines(content)
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		if nonNameHeader.MatchString(line) {
			continue
		}
		if name := matchName(line); name != "" {
			return name
		}
	}
	return ""
}

// ExtractName prefers the page layout and falls back to the first lines of
// the raw content.
func ExtractName(doc ExtractedDocument) string {
	return guard("name", NameNotFound, func() string {
		if name := nameFromLayout(doc.Pages); name != "" {
			return name
		}
		return nameFromContent(doc.Content)
	})
}

func ExtractEmail(content string) string {
	return guard("email", EmailNotFound, func() string {
		return emailPattern.FindString(content)
	})
}

func ExtractPhone(content string) string {
	return guard("phone", PhoneNotFound, func() string {
		return strings.TrimSpace(phonePattern.FindString(content))
	})
}

func ExtractLocation(content string) string {
	return guard("location", LocationNotFound, func() string {
		return locationPattern.FindString(content)
	})
}

func ExtractPersonalInfo(doc ExtractedDocument) PersonalInfo {
	return PersonalInfo{
		Name:     ExtractName(doc),
		Email:    ExtractEmail(doc.Content),
		Phone:    ExtractPhone(doc.Content),
		Location: ExtractLocation(doc.Content),
	}
}
