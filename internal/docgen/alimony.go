package docgen

import (
	"fmt"

	"baliance.com/gooxml/document"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/formdata"
)

type alimonyGenerator struct{}

func (alimonyGenerator) ClaimType() domain.ClaimType { return domain.ClaimTypeAlimony }

func (g alimonyGenerator) Generate(in Input) ([]byte, error) {
	doc := document.New()

	addTitle(doc, domain.ClaimTypeAlimony.HebrewTitle())
	addEmptyLine(doc)
	addCourtHeader(doc, in.Basic)

	minors := in.Form.MinorChildren(in.Now)
	addHeading(doc, "א. הקטינים שבגינם נתבעים מזונות")
	if len(minors) == 0 {
		addText(doc, "אין לצדדים ילדים קטינים.")
	}
	for _, c := range minors {
		line := c.FullName()
		if !c.BirthDate.IsZero() {
			line += fmt.Sprintf(", יליד/ת %s", c.BirthDate.Display())
		}
		addText(doc, line)
	}
	addEmptyLine(doc)

	addHeading(doc, "ב. הכנסות הצדדים")
	addKeyValueTable(doc, [][2]string{
		{"הכנסת התובע/ת", formdata.FormatCurrency(in.Form.ApplicantIncome)},
		{"הכנסת הנתבע/ת", formdata.FormatCurrency(in.Form.RespondentIncome)},
	})

	if in.Form.Alimony != nil {
		if len(in.Form.Alimony.Expenses) > 0 {
			addHeading(doc, "ג. צרכי הקטינים – הוצאות חודשיות")
			var total int64
			rows := make([][2]string, 0, len(in.Form.Alimony.Expenses)+1)
			for _, e := range in.Form.Alimony.Expenses {
				rows = append(rows, [2]string{orDash(e.Description), formdata.FormatCurrency(e.Monthly)})
				total += e.Monthly
			}
			rows = append(rows, [2]string{"סה\"כ", formdata.FormatCurrency(total)})
			addKeyValueTable(doc, rows)
		}
		if in.Form.Alimony.HousingStatus != "" {
			addHeading(doc, "ד. מדור")
			addText(doc, in.Form.Alimony.HousingStatus)
			addEmptyLine(doc)
		}
		if in.Form.Alimony.Reasons != "" {
			addHeading(doc, "ה. נימוקי התביעה")
			addText(doc, in.Form.Alimony.Reasons)
			addEmptyLine(doc)
		}
	}

	addHeading(doc, "הסעדים המבוקשים")
	remedies := []string{
		"לחייב את הנתבע/ת במזונות הקטינים.",
		"לחייב את הנתבע/ת בהשתתפות בהוצאות מדור הקטינים.",
		"לחייב את הנתבע/ת במחצית ההוצאות החריגות (חינוך ובריאות).",
		"לחייב את הנתבע/ת בהוצאות משפט ושכר טרחת עו\"ד.",
	}
	if in.Form.Alimony != nil && in.Form.Alimony.MonthlyAmountRequested > 0 {
		remedies[0] = fmt.Sprintf("לחייב את הנתבע/ת במזונות הקטינים בסך %s לחודש.", formdata.FormatCurrency(in.Form.Alimony.MonthlyAmountRequested))
	}
	addNumbered(doc, remedies)

	if err := addSignature(doc, in); err != nil {
		return nil, err
	}

	// Form 4 filled pages, one per page of the government form.
	if len(in.Form4Pages) > 0 {
		addEmptyLine(doc)
		addHeading(doc, "טופס 4 – הרצאת פרטים")
		for _, page := range in.Form4Pages {
			if err := addPNG(doc, page, 500, 707); err != nil {
				return nil, fmt.Errorf("embed form4 page: %w", err)
			}
		}
	}

	if len(in.Attachments) > 0 {
		if err := addAttachmentsWithTOC(doc, in); err != nil {
			return nil, err
		}
	}

	return serialize(doc)
}
