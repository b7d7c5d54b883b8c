package docgen

import (
	"fmt"
	"sort"

	"baliance.com/gooxml/document"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/formdata"
)

type propertyGenerator struct{}

func (propertyGenerator) ClaimType() domain.ClaimType { return domain.ClaimTypeProperty }

func (g propertyGenerator) Generate(in Input) ([]byte, error) {
	doc := document.New()

	addTitle(doc, domain.ClaimTypeProperty.HebrewTitle())
	addEmptyLine(doc)
	addCourtHeader(doc, in.Basic)

	addHeading(doc, "א. רקע עובדתי")
	if !in.Basic.WeddingDate.IsZero() {
		addText(doc, fmt.Sprintf("הצדדים נישאו זה לזו ביום %s.", in.Basic.WeddingDate.Display()))
	}
	if in.Form.Property != nil {
		addText(doc, in.Form.Property.Background)
	}
	addText(doc, fmt.Sprintf("לצדדים %d ילדים.", len(in.Form.Children)))
	addEmptyLine(doc)

	addHeading(doc, "ב. הרכוש המשותף")
	addPropertySection(doc, "דירות ומקרקעין", in.Form.Apartments)
	addPropertySection(doc, "כלי רכב", in.Form.Vehicles)
	addPropertySection(doc, "חסכונות והשקעות", in.Form.Savings)
	addPropertySection(doc, "זכויות סוציאליות", in.Form.Benefits)

	if len(in.Form.Debts) > 0 {
		addHeading(doc, "ג. חובות הצדדים")
		for _, d := range in.Form.Debts {
			addText(doc, fmt.Sprintf("%s – %s (חייב: %s)", orDash(d.Description), formdata.FormatCurrency(d.Value), ownerHebrew(d.Debtor)))
		}
		addEmptyLine(doc)
	}

	if sums, render := OwnerBreakdown(in.Form.AllPropertyItems()); render {
		addHeading(doc, "ד. ריכוז שווי לפי בעלות")
		rows := make([][2]string, 0, len(sums))
		for _, owner := range []domain.Owner{domain.OwnerBoth, domain.OwnerApplicant, domain.OwnerRespondent} {
			if total, ok := sums[owner]; ok {
				rows = append(rows, [2]string{ownerHebrew(owner), formdata.FormatCurrency(total)})
			}
		}
		addKeyValueTable(doc, rows)
	}

	if in.Form.Property != nil && in.Form.Property.SharedApartment != "" {
		addHeading(doc, "ה. דירת המגורים")
		addText(doc, in.Form.Property.SharedApartment)
		addEmptyLine(doc)
	}

	addHeading(doc, "הסעדים המבוקשים")
	addNumbered(doc, PropertyRemedies(in.Form))
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

func addPropertySection(doc *document.Document, heading string, items []domain.PropertyItem) {
	if len(items) == 0 {
		return
	}
	addText(doc, heading+":")
	for _, it := range items {
		addText(doc, fmt.Sprintf("%s – %s (בבעלות: %s)", orDash(it.Description), formdata.FormatCurrency(it.Value), ownerHebrew(it.Owner)))
	}
	addEmptyLine(doc)
}

// IncomeDisparity reports whether the income gap triggers the extra remedy:
// both incomes present and the larger at least twice the smaller.
func IncomeDisparity(applicant, respondent int64) bool {
	if applicant <= 0 || respondent <= 0 {
		return false
	}
	hi, lo := applicant, respondent
	if lo > hi {
		hi, lo = lo, hi
	}
	return float64(hi)/float64(lo) >= 2.0
}

// PropertyRemedies returns the numbered remedies list for a property claim.
// "Balance resources" is always remedy 1; when the income disparity rule
// fires, the unequal-division remedy is injected as remedy 2 and everything
// after it shifts by one.
func PropertyRemedies(form domain.FormData) []string {
	remedies := []string{
		"לאזן את המשאבים בין הצדדים בהתאם לחוק יחסי ממון בין בני זוג, התשל\"ג-1973.",
	}
	if IncomeDisparity(form.ApplicantIncome, form.RespondentIncome) {
		remedies = append(remedies,
			"לחלק את המשאבים חלוקה שאינה שוויונית בהתאם לסעיף 8(2) לחוק יחסי ממון, נוכח פערי ההשתכרות המשמעותיים בין הצדדים.")
	}
	remedies = append(remedies,
		"להורות על פירוק השיתוף בדירת המגורים ובכלל הרכוש המשותף.",
		"להורות על חלוקת חובות הצדדים באופן שווה.",
		"ליתן צו לגילוי מסמכים ונכסים.",
		"לחייב את הנתבע/ת בהוצאות משפט ושכר טרחת עו\"ד.",
	)
	return remedies
}

// OwnerBreakdown groups property items by owner and sums their values. The
// breakdown is rendered only when it says something: more than one distinct
// owner, or a single owner that is not the shared "both" sentinel.
func OwnerBreakdown(items []domain.PropertyItem) (map[domain.Owner]int64, bool) {
	sums := map[domain.Owner]int64{}
	for _, it := range items {
		owner := it.Owner
		if owner == "" {
			owner = domain.OwnerBoth
		}
		sums[owner] += it.Value
	}
	if len(sums) == 0 {
		return sums, false
	}
	if len(sums) == 1 {
		if _, onlyBoth := sums[domain.OwnerBoth]; onlyBoth {
			return sums, false
		}
	}
	return sums, true
}

func ownerHebrew(o domain.Owner) string {
	switch o {
	case domain.OwnerApplicant:
		return "התובע/ת"
	case domain.OwnerRespondent:
		return "הנתבע/ת"
	case domain.OwnerBoth, "":
		return "שני הצדדים"
	}
	return string(o)
}

// sortedOwners is used by tests to iterate deterministically.
func sortedOwners(sums map[domain.Owner]int64) []domain.Owner {
	keys := make([]domain.Owner, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
