package docgen

import (
	"fmt"

	"baliance.com/gooxml/document"
)

// estimateBodyPages guesses how many pages the claim body occupies before the
// attachments start. The estimate is derived from row counts, not from real
// layout, so the printed numbers are best-effort labels.
func estimateBodyPages(in Input) int {
	pages := 3
	pages += len(in.Form.Children) / 4
	pages += len(in.Form.AllPropertyItems()) / 10
	pages += len(in.Form.Debts) / 10
	if in.Form.Alimony != nil {
		pages += len(in.Form.Alimony.Expenses) / 12
	}
	pages += len(in.Form4Pages)
	return pages
}

// addAttachmentsWithTOC writes the attachment table of contents with
// estimated start pages, then embeds each attachment's pages in order.
func addAttachmentsWithTOC(doc *document.Document, in Input) error {
	addHeading(doc, "רשימת נספחים")

	start := estimateBodyPages(in) + 1
	rows := make([][2]string, 0, len(in.Attachments))
	for i, att := range in.Attachments {
		label := fmt.Sprintf("נספח %d – %s", i+1, att.Label)
		if att.Description != "" {
			label += " (" + att.Description + ")"
		}
		rows = append(rows, [2]string{label, fmt.Sprintf("עמ' %d", start)})
		start += len(att.Pages)
	}
	addKeyValueTable(doc, rows)

	for i, att := range in.Attachments {
		addHeading(doc, fmt.Sprintf("נספח %d – %s", i+1, att.Label))
		for _, page := range att.Pages {
			if err := addPNG(doc, page, 500, 707); err != nil {
				return fmt.Errorf("embed attachment %q: %w", att.Label, err)
			}
		}
	}
	return nil
}
