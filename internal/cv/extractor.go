package cv

import (
	"errors"
	"log"
	"strings"
)

// ErrFormatNotRecognized is returned when no work experience, education or
// skills could be extracted from a document.
var ErrFormatNotRecognized = errors.New("cv: document format not recognized")

// ExtractCVData classifies the analysed document into a CVData record.
func ExtractCVData(doc ExtractedDocument) (*CVData, error) {
	lines := SplitLines(doc.Content)
	sections := SegmentSections(lines)
	log.Printf("[Extract] %d lines, %d sections", len(lines), len(sections))

	data := &CVData{
		PersonalInfo:   ExtractPersonalInfo(doc),
		Summary:        strings.Join(linesOf(sections, SectionSummary), " "),
		WorkExperience: ExtractWorkExperience(linesOf(sections, SectionExperience)),
		Education:      ExtractEducation(linesOf(sections, SectionEducation)),
		Skills:         ExtractSkills(strings.Join(linesOf(sections, SectionSkills), "\n")),
	}

	if len(data.WorkExperience) == 0 && len(data.Education) == 0 && len(data.Skills) == 0 {
		return nil, ErrFormatNotRecognized
	}

	log.Printf("[Extract] %q: %d roles, %d education entries, %d skill categories",
		data.PersonalInfo.Name, len(data.WorkExperience), len(data.Education), len(data.Skills))
	return data, nil
}
