package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{in: `"2006-05-14"`, want: "14/05/2006"},
		{in: `"14/05/2006"`, want: "14/05/2006"},
		{in: `"2006-05-14T10:30:00Z"`, want: "14/05/2006"},
		{in: `""`, want: ""},
	}
	for _, tc := range cases {
		var d Date
		if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if got := d.Display(); got != tc.want {
			t.Fatalf("Display() for %s got=%q want=%q", tc.in, got, tc.want)
		}
	}

	var d Date
	if err := json.Unmarshal([]byte(`"14-05-2006"`), &d); err == nil {
		t.Fatal("expected error for unknown layout")
	}
}

func TestIsMinor(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth Date
		want  bool
	}{
		{name: "ten years old", birth: NewDate(2015, time.March, 10), want: true},
		{name: "eighteenth birthday today", birth: NewDate(2007, time.March, 10), want: false},
		{name: "turns eighteen tomorrow", birth: NewDate(2007, time.March, 11), want: true},
		{name: "adult", birth: NewDate(1990, time.January, 1), want: false},
		{name: "missing birth date counts as minor", birth: Date{}, want: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := Child{FirstName: "נעמה", BirthDate: tc.birth}
			if got := c.IsMinor(now); got != tc.want {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestMinorChildrenFilters(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := FormData{Children: []Child{
		{FirstName: "איתי", BirthDate: NewDate(2012, time.June, 1)},
		{FirstName: "שירה", BirthDate: NewDate(2000, time.June, 1)},
		{FirstName: "דניאל"},
	}}
	got := f.MinorChildren(now)
	if len(got) != 2 {
		t.Fatalf("got %d minors, want 2", len(got))
	}
	if got[0].FirstName != "איתי" || got[1].FirstName != "דניאל" {
		t.Fatalf("unexpected minors: %v", got)
	}
}

func TestSubmissionValidate(t *testing.T) {
	t.Parallel()

	valid := func() Submission {
		return Submission{
			BasicInfo: BasicInfo{
				Applicant:  Party{FirstName: "דנה", LastName: "לוי", NationalID: "012345678"},
				Respondent: Party{FirstName: "יוסי", LastName: "לוי", NationalID: "087654321"},
			},
		}
	}

	s := valid()
	if err := s.Validate(); err != nil {
		t.Fatalf("valid submission rejected: %v", err)
	}

	s = valid()
	s.BasicInfo.Applicant.FirstName = ""
	s.BasicInfo.Applicant.LastName = " "
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for missing applicant name")
	}

	s = valid()
	s.BasicInfo.Respondent.NationalID = ""
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for missing respondent id")
	}

	s = valid()
	s.SelectedClaims = []ClaimType{ClaimType("nope")}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for unknown claim type")
	}
}
