package domain

import (
	"fmt"
	"strings"
)

// ClaimType identifies one of the legal document categories the service can
// produce.
type ClaimType string

const (
	ClaimTypeProperty         ClaimType = "property"
	ClaimTypeCustody          ClaimType = "custody"
	ClaimTypeAlimony          ClaimType = "alimony"
	ClaimTypeDivorce          ClaimType = "divorce"
	ClaimTypeDivorceAgreement ClaimType = "divorce_agreement"
)

func AllClaimTypes() []ClaimType {
	return []ClaimType{
		ClaimTypeDivorceAgreement,
		ClaimTypeDivorce,
		ClaimTypeProperty,
		ClaimTypeCustody,
		ClaimTypeAlimony,
	}
}

func (c ClaimType) Valid() bool {
	switch c {
	case ClaimTypeProperty, ClaimTypeCustody, ClaimTypeAlimony, ClaimTypeDivorce, ClaimTypeDivorceAgreement:
		return true
	}
	return false
}

// HebrewFolderName is the fixed Drive subfolder name per claim type.
func (c ClaimType) HebrewFolderName() string {
	switch c {
	case ClaimTypeProperty:
		return "תביעה רכושית"
	case ClaimTypeCustody:
		return "תביעת משמורת"
	case ClaimTypeAlimony:
		return "תביעת מזונות"
	case ClaimTypeDivorce:
		return "תביעת גירושין"
	case ClaimTypeDivorceAgreement:
		return "הסכם גירושין"
	}
	return string(c)
}

// HebrewTitle is the document heading per claim type.
func (c ClaimType) HebrewTitle() string {
	switch c {
	case ClaimTypeProperty:
		return "כתב תביעה רכושית"
	case ClaimTypeCustody:
		return "כתב תביעת משמורת"
	case ClaimTypeAlimony:
		return "כתב תביעת מזונות"
	case ClaimTypeDivorce:
		return "כתב תביעת גירושין"
	case ClaimTypeDivorceAgreement:
		return "הסכם גירושין"
	}
	return string(c)
}

// ParseClaimType accepts both the canonical snake_case names and the camelCase
// aliases the wizard frontend historically sent.
func ParseClaimType(s string) (ClaimType, error) {
	switch strings.TrimSpace(s) {
	case "property":
		return ClaimTypeProperty, nil
	case "custody":
		return ClaimTypeCustody, nil
	case "alimony":
		return ClaimTypeAlimony, nil
	case "divorce":
		return ClaimTypeDivorce, nil
	case "divorce_agreement", "divorceAgreement":
		return ClaimTypeDivorceAgreement, nil
	}
	return "", fmt.Errorf("unknown claim type %q", s)
}

// NormalizeSelection deduplicates a claim selection and enforces the mutual
// exclusion rule: a divorce agreement cannot be combined with contested
// claims. When both are present the agreement wins.
func NormalizeSelection(selected []ClaimType) []ClaimType {
	seen := map[ClaimType]bool{}
	out := make([]ClaimType, 0, len(selected))
	for _, c := range selected {
		if !c.Valid() || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if seen[ClaimTypeDivorceAgreement] {
		return []ClaimType{ClaimTypeDivorceAgreement}
	}
	return out
}
