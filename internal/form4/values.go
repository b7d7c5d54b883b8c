package form4

import (
	"fmt"
	"strings"
	"time"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/formdata"
)

// BuildValues maps a submission onto the form's field names. Only the first
// four children fit the printed table; further rows are dropped, matching the
// paper form.
func BuildValues(basic domain.BasicInfo, form domain.FormData, now time.Time) map[string]string {
	values := map[string]string{
		"applicantName":    basic.Applicant.FullName(),
		"applicantId":      basic.Applicant.NationalID,
		"applicantAddress": basic.Applicant.Address,
		"applicantPhone":   basic.Applicant.Phone,
		"respondentName":   basic.Respondent.FullName(),
		"respondentId":     basic.Respondent.NationalID,
		"formDate":         now.Format("02/01/2006"),
		"declarationName":  basic.Applicant.FullName(),
		"declarationDate":  now.Format("02/01/2006"),
	}
	if form.ApplicantIncome > 0 {
		values["monthlyIncome"] = formdata.FormatCurrency(form.ApplicantIncome)
	}
	if form.RespondentIncome > 0 {
		values["respondentIncome"] = formdata.FormatCurrency(form.RespondentIncome)
	}

	for i, c := range form.Children {
		if i >= 4 {
			break
		}
		n := i + 1
		values[fmt.Sprintf("child%dName", n)] = c.FullName()
		values[fmt.Sprintf("child%dId", n)] = c.NationalID
		values[fmt.Sprintf("child%dBirth", n)] = c.BirthDate.Display()
	}

	if form.Alimony != nil && len(form.Alimony.Expenses) > 0 {
		sums := map[string]int64{}
		var total int64
		for _, e := range form.Alimony.Expenses {
			sums[expenseField(e.Description)] += e.Monthly
			total += e.Monthly
		}
		for field, v := range sums {
			values[field] = formdata.FormatCurrency(v)
		}
		values["expenseTotal"] = formdata.FormatCurrency(total)
	}

	if lines := propertyLines(form.AllPropertyItems()); lines != "" {
		values["propertySummary"] = lines
	}
	if lines := debtLines(form.Debts); lines != "" {
		values["debtsSummary"] = lines
	}
	return values
}

// expenseField buckets a free-text expense row into the form's printed
// categories by keyword.
func expenseField(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "מדור"), strings.Contains(d, "שכר דירה"), strings.Contains(d, "משכנתא"):
		return "expenseHousing"
	case strings.Contains(d, "מזון"), strings.Contains(d, "כלכלה"):
		return "expenseFood"
	case strings.Contains(d, "ביגוד"), strings.Contains(d, "הנעלה"):
		return "expenseClothing"
	case strings.Contains(d, "חינוך"), strings.Contains(d, "גן"), strings.Contains(d, "צהרון"):
		return "expenseEducation"
	case strings.Contains(d, "בריאות"), strings.Contains(d, "רפואה"):
		return "expenseHealth"
	case strings.Contains(d, "נסיעות"), strings.Contains(d, "תחבורה"), strings.Contains(d, "רכב"):
		return "expenseTransport"
	}
	return "expenseOther"
}

func propertyLines(items []domain.PropertyItem) string {
	var parts []string
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" && it.Value == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", it.Description, formdata.FormatCurrency(it.Value)))
	}
	return strings.Join(parts, "; ")
}

func debtLines(items []domain.DebtItem) string {
	var parts []string
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" && it.Value == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", it.Description, formdata.FormatCurrency(it.Value)))
	}
	return strings.Join(parts, "; ")
}
