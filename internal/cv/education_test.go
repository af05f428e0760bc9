package cv

import (
	"reflect"
	"testing"
)

func TestExtractEducation(t *testing.T) {
	t.Run("single line with degree, institution and years", func(t *testing.T) {
		got := ExtractEducation([]string{"Bachelor of Science, University of Technology, 2015-2019"})
		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d: %+v", len(got), got)
		}
		want := Education{
			Degree:      "Bachelor Of Science",
			Institution: "University Of Technology",
			Period:      "2015-2019",
		}
		if got[0] != want {
			t.Errorf("got %+v, want %+v", got[0], want)
		}
	})

	t.Run("each degree, institution or year line opens a record", func(t *testing.T) {
		got := ExtractEducation([]string{
			"Bachelor of Science",
			"University of Technology",
			"2015 - 2019",
		})
		want := []Education{
			{Degree: "Bachelor Of Science", Institution: InstitutionNotSpecified, Period: PeriodNotSpecified},
			{Degree: DegreeNotSpecified, Institution: "University Of Technology", Period: PeriodNotSpecified},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v\nwant %+v", got, want)
		}
	})

	t.Run("plain lines fill grade, then institution, then degree", func(t *testing.T) {
		got := ExtractEducation([]string{
			"Master of Business Administration 2020 - 2022",
			"GPA: 3.9",
			"Melbourne Business",
		})
		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d: %+v", len(got), got)
		}
		want := Education{
			Degree:      "Master Of Business Administration",
			Institution: "Melbourne Business",
			Period:      "2020 - 2022",
			Grade:       "GPA: 3.9",
		}
		if got[0] != want {
			t.Errorf("got %+v, want %+v", got[0], want)
		}
	})

	t.Run("sorted by first year descending, undated last", func(t *testing.T) {
		got := ExtractEducation([]string{
			"Diploma of Testing, TAFE NSW",
			"Bachelor of IT, Deakin University, 2010 - 2013",
			"Master of IT, RMIT University, 2016 - 2018",
		})
		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d: %+v", len(got), got)
		}
		wantDegrees := []string{"Master Of It", "Bachelor Of It", "Diploma Of Testing"}
		for i, want := range wantDegrees {
			if got[i].Degree != want {
				t.Errorf("got[%d].Degree = %q, want %q", i, got[i].Degree, want)
			}
		}
		if got[2].Period != PeriodNotSpecified {
			t.Errorf("undated Period = %q", got[2].Period)
		}
	})

	t.Run("records without degree or institution are dropped", func(t *testing.T) {
		if got := ExtractEducation([]string{"2019"}); len(got) != 0 {
			t.Errorf("expected no records, got %+v", got)
		}
	})

	t.Run("missing institution gets a sentinel", func(t *testing.T) {
		got := ExtractEducation([]string{"Certificate IV in Software Testing 2012"})
		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d", len(got))
		}
		if got[0].Institution != InstitutionNotSpecified {
			t.Errorf("Institution = %q", got[0].Institution)
		}
		if got[0].Period != "2012" {
			t.Errorf("Period = %q", got[0].Period)
		}
	})
}

func TestFirstYear(t *testing.T) {
	tests := map[string]int{
		"2015-2019":          2015,
		"Jan 2020 - Present": 2020,
		PeriodNotSpecified:   0,
	}
	for period, want := range tests {
		if got := firstYear(period); got != want {
			t.Errorf("firstYear(%q) = %d, want %d", period, got, want)
		}
	}
}
