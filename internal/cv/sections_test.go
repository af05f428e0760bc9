package cv

import "testing"

func TestClassifyHeader(t *testing.T) {
	tests := []struct {
		line string
		want SectionType
		ok   bool
	}{
		{"WORK EXPERIENCE", SectionExperience, true},
		{"Professional Experience:", SectionExperience, true},
		{"Career Summary", SectionExperience, true},
		{"Education", SectionEducation, true},
		{"Education & Training", SectionEducation, true},
		{"Technical Skills", SectionSkills, true},
		{"Professional Summary", SectionSummary, true},
		{"About Me", SectionSummary, true},
		{"Led the experience redesign for a retail client", "", false},
		{"Selenium, Java", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ClassifyHeader(tt.line)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ClassifyHeader(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("  Jane Doe \r\n\n\t\nWork Experience\n")
	if len(got) != 2 || got[0] != "Jane Doe" || got[1] != "Work Experience" {
		t.Errorf("SplitLines() = %q", got)
	}
}

func TestSegmentSections(t *testing.T) {
	t.Run("groups lines under headers", func(t *testing.T) {
		lines := []string{
			"Jane Doe",
			"Professional Summary",
			"Detail oriented tester",
			"Work Experience",
			"QA Engineer",
			"- Wrote tests",
			"Education:",
			"Bachelor of Science",
			"Skills",
			"Selenium",
		}
		sections := SegmentSections(lines)
		if len(sections) != 4 {
			t.Fatalf("expected 4 sections, got %d", len(sections))
		}

		want := []SectionType{SectionSummary, SectionExperience, SectionEducation, SectionSkills}
		for i, s := range sections {
			if s.Type != want[i] {
				t.Errorf("section %d type = %q, want %q", i, s.Type, want[i])
			}
		}
		if len(sections[1].Content) != 2 {
			t.Errorf("experience content = %q", sections[1].Content)
		}
		if sections[2].Title != "Education:" {
			t.Errorf("education title = %q", sections[2].Title)
		}
	})

	t.Run("drops lines before the first header", func(t *testing.T) {
		sections := SegmentSections([]string{"Jane Doe", "jane@example.com", "Skills", "Java"})
		if len(sections) != 1 || len(sections[0].Content) != 1 || sections[0].Content[0] != "Java" {
			t.Errorf("unexpected sections: %+v", sections)
		}
	})

	t.Run("no headers yields no sections", func(t *testing.T) {
		if sections := SegmentSections([]string{"just", "some", "text"}); len(sections) != 0 {
			t.Errorf("expected no sections, got %+v", sections)
		}
	})

	t.Run("repeated section types are concatenated", func(t *testing.T) {
		sections := SegmentSections([]string{"Skills", "Java", "Experience", "Tester", "Tools", "Jira"})
		got := linesOf(sections, SectionSkills)
		if len(got) != 2 || got[0] != "Java" || got[1] != "Jira" {
			t.Errorf("linesOf(skills) = %q", got)
		}
	})
}
