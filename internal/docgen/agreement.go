package docgen

import (
	"fmt"

	"baliance.com/gooxml/document"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
)

type agreementGenerator struct{}

func (agreementGenerator) ClaimType() domain.ClaimType { return domain.ClaimTypeDivorceAgreement }

func (g agreementGenerator) Generate(in Input) ([]byte, error) {
	doc := document.New()

	addTitle(doc, domain.ClaimTypeDivorceAgreement.HebrewTitle())
	addEmptyLine(doc)

	addText(doc, fmt.Sprintf("שנערך ונחתם ביום %s", in.Now.Format("02/01/2006")))
	addEmptyLine(doc)
	addText(doc, fmt.Sprintf("בין: %s, ת.ז. %s (להלן: \"הצד הראשון\")", in.Basic.Applicant.FullName(), in.Basic.Applicant.NationalID))
	addText(doc, fmt.Sprintf("לבין: %s, ת.ז. %s (להלן: \"הצד השני\")", in.Basic.Respondent.FullName(), in.Basic.Respondent.NationalID))
	addEmptyLine(doc)

	addText(doc, "הואיל והצדדים החליטו להתגרש זה מזו בהסכמה ולהסדיר את כלל ענייניהם במסגרת הסכם זה;")
	addEmptyLine(doc)

	section := func(heading, body string) {
		if body == "" {
			return
		}
		addHeading(doc, heading)
		addText(doc, body)
		addEmptyLine(doc)
	}

	if a := in.Form.DivorceAgreement; a != nil {
		section("א. ענייני רכוש", a.PropertyTerms)
		section("ב. משמורת והסדרי שהות", a.CustodyTerms)
		section("ג. מזונות", a.AlimonyTerms)
		section("ד. הוראות נוספות", a.OtherTerms)
	}

	if len(in.Form.Children) > 0 {
		addHeading(doc, "ילדי הצדדים")
		for _, c := range in.Form.Children {
			line := c.FullName()
			if !c.BirthDate.IsZero() {
				line += fmt.Sprintf(", יליד/ת %s", c.BirthDate.Display())
			}
			addText(doc, line)
		}
		addEmptyLine(doc)
	}

	addHeading(doc, "ולראיה באו הצדדים על החתום")
	addText(doc, fmt.Sprintf("הצד הראשון: %s  ______________", in.Basic.Applicant.FullName()))
	addText(doc, fmt.Sprintf("הצד השני: %s  ______________", in.Basic.Respondent.FullName()))
	if len(in.Signature) > 0 {
		if err := addPNG(doc, in.Signature, 140, 60); err != nil {
			return nil, err
		}
	}

	if len(in.Attachments) > 0 {
		if err := addAttachmentsWithTOC(doc, in); err != nil {
			return nil, err
		}
	}

	return serialize(doc)
}
