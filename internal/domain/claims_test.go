package domain

import (
	"reflect"
	"testing"
)

func TestParseClaimType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    ClaimType
		wantErr bool
	}{
		{in: "property", want: ClaimTypeProperty},
		{in: "custody", want: ClaimTypeCustody},
		{in: "alimony", want: ClaimTypeAlimony},
		{in: "divorce", want: ClaimTypeDivorce},
		{in: "divorce_agreement", want: ClaimTypeDivorceAgreement},
		{in: "divorceAgreement", want: ClaimTypeDivorceAgreement},
		{in: "  property  ", want: ClaimTypeProperty},
		{in: "visitation", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseClaimType(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClaimType(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClaimType(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClaimType(%q) got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSelectionDedupes(t *testing.T) {
	t.Parallel()

	got := NormalizeSelection([]ClaimType{
		ClaimTypeProperty,
		ClaimTypeCustody,
		ClaimTypeProperty,
		ClaimType("bogus"),
	})
	want := []ClaimType{ClaimTypeProperty, ClaimTypeCustody}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestNormalizeSelectionAgreementWins(t *testing.T) {
	t.Parallel()

	got := NormalizeSelection([]ClaimType{
		ClaimTypeDivorce,
		ClaimTypeDivorceAgreement,
		ClaimTypeAlimony,
	})
	want := []ClaimType{ClaimTypeDivorceAgreement}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestHebrewFolderNameCoversAllTypes(t *testing.T) {
	t.Parallel()

	for _, ct := range AllClaimTypes() {
		if ct.HebrewFolderName() == string(ct) {
			t.Fatalf("no folder name for %q", ct)
		}
		if ct.HebrewTitle() == string(ct) {
			t.Fatalf("no title for %q", ct)
		}
	}
}
