package docgen

import (
	"fmt"

	"baliance.com/gooxml/document"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
)

type custodyGenerator struct{}

func (custodyGenerator) ClaimType() domain.ClaimType { return domain.ClaimTypeCustody }

func (g custodyGenerator) Generate(in Input) ([]byte, error) {
	doc := document.New()

	addTitle(doc, domain.ClaimTypeCustody.HebrewTitle())
	addEmptyLine(doc)
	addCourtHeader(doc, in.Basic)

	minors := in.Form.MinorChildren(in.Now)

	addHeading(doc, "א. הקטינים")
	if len(minors) == 0 {
		addText(doc, "אין לצדדים ילדים קטינים.")
	}
	for _, c := range minors {
		line := fmt.Sprintf("%s, ת.ז. %s", c.FullName(), orDash(c.NationalID))
		if !c.BirthDate.IsZero() {
			line += fmt.Sprintf(", יליד/ת %s", c.BirthDate.Display())
		}
		addText(doc, line)
		if c.Residency != "" {
			addText(doc, fmt.Sprintf("מקום מגורים עיקרי: %s", residencyHebrew(c.Residency)))
		}
	}
	addEmptyLine(doc)

	if in.Form.Custody != nil {
		if in.Form.Custody.CurrentCustody != "" {
			addHeading(doc, "ב. הסדרי המשמורת הנוכחיים")
			addText(doc, in.Form.Custody.CurrentCustody)
			addEmptyLine(doc)
		}
		if in.Form.Custody.Reasons != "" {
			addHeading(doc, "ג. הנימוקים לבקשת המשמורת")
			addText(doc, in.Form.Custody.Reasons)
			addEmptyLine(doc)
		}
		if in.Form.Custody.VisitationPlan != "" {
			addHeading(doc, "ד. הסדרי שהות מוצעים")
			addText(doc, in.Form.Custody.VisitationPlan)
			addEmptyLine(doc)
		}
	}

	if len(in.Form.OtherCases) > 0 {
		addHeading(doc, "הליכים נוספים בין הצדדים")
		for _, oc := range in.Form.OtherCases {
			addText(doc, fmt.Sprintf("%s (%s) – %s", orDash(oc.CaseNumber), orDash(oc.Court), orDash(oc.Description)))
		}
		addEmptyLine(doc)
	}

	addHeading(doc, "הסעדים המבוקשים")
	remedies := []string{
		"לקבוע כי המשמורת על הקטינים תהא בידי התובע/ת.",
		"לקבוע הסדרי שהות בין הקטינים לבין ההורה שאינו משמורן.",
		"להורות על עריכת תסקיר פקידת סעד.",
		"לחייב את הנתבע/ת בהוצאות משפט ושכר טרחת עו\"ד.",
	}
	if in.Form.Custody != nil && in.Form.Custody.SpecialRequests != "" {
		remedies = append(remedies, in.Form.Custody.SpecialRequests)
	}
	addNumbered(doc, remedies)

	if err := addSignature(doc, in); err != nil {
		return nil, err
	}
	if len(in.Attachments) > 0 {
		if err := addAttachmentsWithTOC(doc, in); err != nil {
			return nil, err
		}
	}
	return serialize(doc)
}

func residencyHebrew(r domain.Residency) string {
	switch r {
	case domain.ResidencyApplicant:
		return "אצל התובע/ת"
	case domain.ResidencyRespondent:
		return "אצל הנתבע/ת"
	case domain.ResidencySplit:
		return "מגורים משותפים לסירוגין"
	}
	return string(r)
}
