package domain

import (
	"fmt"
	"strings"
	"time"
)

// Owner tags a property or debt item with the party it belongs to.
type Owner string

const (
	OwnerBoth       Owner = "both"
	OwnerApplicant  Owner = "applicant"
	OwnerRespondent Owner = "respondent"
)

// Residency is a child's primary-residence assignment.
type Residency string

const (
	ResidencyApplicant  Residency = "applicant"
	ResidencyRespondent Residency = "respondent"
	ResidencySplit      Residency = "split"
)

type Party struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	NationalID string `json:"nationalId"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	BirthDate  Date   `json:"birthDate"`
	Gender     string `json:"gender"`
}

func (p Party) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

type BasicInfo struct {
	Applicant        Party  `json:"applicant"`
	Respondent       Party  `json:"respondent"`
	RelationshipType string `json:"relationshipType"`
	WeddingDate      Date   `json:"weddingDate"`
}

type Child struct {
	ID           string    `json:"id,omitempty"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	NationalID   string    `json:"nationalId"`
	BirthDate    Date      `json:"birthDate"`
	Address      string    `json:"address"`
	Relationship string    `json:"relationship,omitempty"`
	Residency    Residency `json:"residency,omitempty"`
}

func (c Child) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// IsMinor reports whether the child is under 18 at the given instant, using a
// full month/day-aware comparison. A child with no recorded birth date is
// treated as a minor so they are never dropped from custody and alimony
// sections by a data-entry omission.
func (c Child) IsMinor(now time.Time) bool {
	if c.BirthDate.IsZero() {
		return true
	}
	return now.Before(c.BirthDate.AddDate(18, 0, 0))
}

type PropertyItem struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Value       int64  `json:"value"`
	Owner       Owner  `json:"owner"`
}

type DebtItem struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Value       int64  `json:"value"`
	Owner       Owner  `json:"owner"`
	Debtor      Owner  `json:"debtor"`
}

type ExpenseRow struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Monthly     int64  `json:"monthly"`
}

type CourtCase struct {
	ID          string `json:"id,omitempty"`
	CaseNumber  string `json:"caseNumber"`
	Court       string `json:"court"`
	Description string `json:"description"`
}

type PropertyClaim struct {
	Background      string `json:"background,omitempty"`
	SharedApartment string `json:"sharedApartment,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type CustodyClaim struct {
	RequestedBy     string `json:"requestedBy,omitempty"`
	Reasons         string `json:"reasons,omitempty"`
	CurrentCustody  string `json:"currentCustody,omitempty"`
	VisitationPlan  string `json:"visitationPlan,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type AlimonyClaim struct {
	MonthlyAmountRequested int64        `json:"monthlyAmountRequested,omitempty"`
	Expenses               []ExpenseRow `json:"expenses,omitempty"`
	Reasons                string       `json:"reasons,omitempty"`
	HousingStatus          string       `json:"housingStatus,omitempty"`
}

type DivorceAgreementClaim struct {
	PropertyTerms string `json:"propertyTerms,omitempty"`
	CustodyTerms  string `json:"custodyTerms,omitempty"`
	AlimonyTerms  string `json:"alimonyTerms,omitempty"`
	OtherTerms    string `json:"otherTerms,omitempty"`
}

// FormData is the typed replacement for the wizard's historical untyped
// answer bag. Unknown keys are rejected at the API boundary instead of
// silently defaulting.
type FormData struct {
	Children   []Child        `json:"children,omitempty"`
	Apartments []PropertyItem `json:"apartments,omitempty"`
	Vehicles   []PropertyItem `json:"vehicles,omitempty"`
	Savings    []PropertyItem `json:"savings,omitempty"`
	Benefits   []PropertyItem `json:"benefits,omitempty"`
	Debts      []DebtItem     `json:"debts,omitempty"`
	OtherCases []CourtCase    `json:"otherCases,omitempty"`

	ApplicantIncome  int64 `json:"applicantIncome,omitempty"`
	RespondentIncome int64 `json:"respondentIncome,omitempty"`

	Property         *PropertyClaim         `json:"property,omitempty"`
	Custody          *CustodyClaim          `json:"custody,omitempty"`
	Alimony          *AlimonyClaim          `json:"alimony,omitempty"`
	DivorceAgreement *DivorceAgreementClaim `json:"divorceAgreement,omitempty"`
}

// AllPropertyItems returns apartments, vehicles, savings and benefits as one
// list, in the order the generated documents enumerate them.
func (f FormData) AllPropertyItems() []PropertyItem {
	out := make([]PropertyItem, 0, len(f.Apartments)+len(f.Vehicles)+len(f.Savings)+len(f.Benefits))
	out = append(out, f.Apartments...)
	out = append(out, f.Vehicles...)
	out = append(out, f.Savings...)
	out = append(out, f.Benefits...)
	return out
}

// MinorChildren filters children through the single minor policy.
func (f FormData) MinorChildren(now time.Time) []Child {
	var out []Child
	for _, c := range f.Children {
		if c.IsMinor(now) {
			out = append(out, c)
		}
	}
	return out
}

// Submission is the full wizard payload as received by the API.
type Submission struct {
	BasicInfo      BasicInfo   `json:"basicInfo"`
	FormData       FormData    `json:"formData"`
	SelectedClaims []ClaimType `json:"selectedClaims"`
	// Signature is a base64 PNG captured in the wizard; optional, the
	// service falls back to the configured default signature.
	Signature string `json:"signature,omitempty"`
}

// Validate rejects payloads the generators cannot produce a meaningful
// document from. Required-ness here is the real contract, not a UI hint.
func (s *Submission) Validate() error {
	if s.BasicInfo.Applicant.FullName() == "" {
		return fmt.Errorf("applicant name is required")
	}
	if s.BasicInfo.Respondent.FullName() == "" {
		return fmt.Errorf("respondent name is required")
	}
	if strings.TrimSpace(s.BasicInfo.Applicant.NationalID) == "" {
		return fmt.Errorf("applicant national id is required")
	}
	if strings.TrimSpace(s.BasicInfo.Respondent.NationalID) == "" {
		return fmt.Errorf("respondent national id is required")
	}
	for _, c := range s.SelectedClaims {
		if !c.Valid() {
			return fmt.Errorf("unknown claim type %q", string(c))
		}
	}
	return nil
}
