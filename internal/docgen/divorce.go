package docgen

import (
	"fmt"

	"baliance.com/gooxml/document"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
)

type divorceGenerator struct{}

func (divorceGenerator) ClaimType() domain.ClaimType { return domain.ClaimTypeDivorce }

func (g divorceGenerator) Generate(in Input) ([]byte, error) {
	doc := document.New()

	addTitle(doc, domain.ClaimTypeDivorce.HebrewTitle())
	addEmptyLine(doc)
	addCourtHeader(doc, in.Basic)

	addHeading(doc, "א. רקע")
	if !in.Basic.WeddingDate.IsZero() {
		addText(doc, fmt.Sprintf("הצדדים נישאו זה לזו כדת משה וישראל ביום %s.", in.Basic.WeddingDate.Display()))
	}
	if in.Basic.RelationshipType != "" {
		addText(doc, fmt.Sprintf("מהות הקשר: %s", in.Basic.RelationshipType))
	}
	addText(doc, fmt.Sprintf("מנישואי הצדדים נולדו %d ילדים.", len(in.Form.Children)))
	addEmptyLine(doc)

	addHeading(doc, "הסעדים המבוקשים")
	addNumbered(doc, []string{
		"להתיר את נישואי הצדדים בגט פיטורין כדין.",
		"לקבוע כי הנתבע/ת ישתף/תשתף פעולה עם סידור הגט.",
		"לחייב את הנתבע/ת בהוצאות משפט ושכר טרחת עו\"ד.",
	})

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
