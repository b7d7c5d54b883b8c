package formdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
)

// Build flattens a submission into the key/value map the document templates
// consume. Pure: missing fields become empty strings, never errors.
func Build(basic domain.BasicInfo, form domain.FormData) map[string]string {
	out := map[string]string{
		"applicantName":        basic.Applicant.FullName(),
		"applicantId":          basic.Applicant.NationalID,
		"applicantAddress":     basic.Applicant.Address,
		"applicantPhone":       basic.Applicant.Phone,
		"applicantEmail":       basic.Applicant.Email,
		"applicantBirthDate":   basic.Applicant.BirthDate.Display(),
		"respondentName":       basic.Respondent.FullName(),
		"respondentId":         basic.Respondent.NationalID,
		"respondentAddress":    basic.Respondent.Address,
		"respondentPhone":      basic.Respondent.Phone,
		"respondentEmail":      basic.Respondent.Email,
		"respondentBirthDate":  basic.Respondent.BirthDate.Display(),
		"relationshipType":     basic.RelationshipType,
		"weddingDate":          basic.WeddingDate.Display(),
		"applicantIncome":      FormatCurrency(form.ApplicantIncome),
		"respondentIncome":     FormatCurrency(form.RespondentIncome),
		"childrenCount":        strconv.Itoa(len(form.Children)),
	}

	var childLines []string
	for _, c := range form.Children {
		line := c.FullName()
		if c.NationalID != "" {
			line += " (ת.ז. " + c.NationalID + ")"
		}
		if !c.BirthDate.IsZero() {
			line += ", נולד/ה " + c.BirthDate.Display()
		}
		childLines = append(childLines, line)
	}
	out["childrenList"] = JoinBullets(childLines)

	var debtLines []string
	for _, d := range form.Debts {
		debtLines = append(debtLines, fmt.Sprintf("%s – %s", orNotSpecified(d.Description), FormatCurrency(d.Value)))
	}
	out["debtsList"] = JoinBullets(debtLines)

	var propertyLines []string
	for _, p := range form.AllPropertyItems() {
		propertyLines = append(propertyLines, fmt.Sprintf("%s – %s", orNotSpecified(p.Description), FormatCurrency(p.Value)))
	}
	out["propertyList"] = JoinBullets(propertyLines)

	return out
}

// FormatCurrency renders whole shekels with thousands separators and the
// shekel sign, matching how the wizard displays amounts.
func FormatCurrency(v int64) string {
	return groupDigits(v) + " ₪"
}

func groupDigits(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// ParseCurrency strips separators and the currency sign back to the numeric
// value a formatted amount came from.
func ParseCurrency(s string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0, fmt.Errorf("no digits in %q", s)
	}
	return strconv.ParseInt(cleaned, 10, 64)
}

// YesNo normalizes the several truthy encodings the wizard has emitted
// ("yes", "כן", "true", true) to Hebrew yes/no.
func YesNo(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "כן"
		}
		return "לא"
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "כן", "true", "1":
			return "כן"
		}
		return "לא"
	}
	return "לא"
}

// JoinBullets joins repeated-row lines into the single bullet string the
// paragraph templates expect. The caller's slice is left untouched.
func JoinBullets(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(l)
	}
	return b.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "לא צוין"
	}
	return s
}
