package docgen

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/common"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/mishpatech/lawdocs-backend/internal/attachments"
	"github.com/mishpatech/lawdocs-backend/internal/domain"
)

// Input is everything a claim generator needs. Free-text fields inside Form
// are already legal-register transformed by the orchestrating service;
// generators are pure and never call out.
type Input struct {
	Basic       domain.BasicInfo
	Form        domain.FormData
	Fields      map[string]string
	Signature   []byte
	Form4Pages  [][]byte
	Attachments []attachments.Attachment
	Now         time.Time
}

// Generator builds one claim type's document.
type Generator interface {
	ClaimType() domain.ClaimType
	Generate(in Input) ([]byte, error)
}

// ForClaim returns the generator for a claim type.
func ForClaim(ct domain.ClaimType) (Generator, error) {
	switch ct {
	case domain.ClaimTypeProperty:
		return propertyGenerator{}, nil
	case domain.ClaimTypeCustody:
		return custodyGenerator{}, nil
	case domain.ClaimTypeAlimony:
		return alimonyGenerator{}, nil
	case domain.ClaimTypeDivorce:
		return divorceGenerator{}, nil
	case domain.ClaimTypeDivorceAgreement:
		return agreementGenerator{}, nil
	}
	return nil, fmt.Errorf("no generator for claim type %q", string(ct))
}

// Supported lists the claim types that have a generator.
func Supported() []domain.ClaimType {
	return domain.AllClaimTypes()
}

// Filename is the output naming convention for a generated document.
func Filename(ct domain.ClaimType, now time.Time) string {
	return fmt.Sprintf("%s_%d.docx", string(ct), now.Unix())
}

// ---- shared building blocks ----

func addTitle(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	run := para.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(16 * measurement.Point)
	run.AddText(text)
}

func addHeading(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcRight)
	run := para.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(13 * measurement.Point)
	run.AddText(text)
}

func addText(doc *document.Document, text string) {
	if text == "" {
		return
	}
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcRight)
	run := para.AddRun()
	run.Properties().SetSize(12 * measurement.Point)
	run.AddText(text)
}

// addNumbered writes items as an explicitly numbered list. Numbering is
// literal text so derived rules (remedy renumbering) stay visible in the
// document exactly as computed.
func addNumbered(doc *document.Document, items []string) {
	for i, item := range items {
		addText(doc, fmt.Sprintf("%d. %s", i+1, item))
	}
}

func addEmptyLine(doc *document.Document) {
	doc.AddParagraph()
}

// addCourtHeader writes the standard caption block of a family-court filing.
func addCourtHeader(doc *document.Document, basic domain.BasicInfo) {
	addText(doc, "בבית המשפט לענייני משפחה")
	addEmptyLine(doc)
	addText(doc, fmt.Sprintf("התובע/ת: %s, ת.ז. %s", basic.Applicant.FullName(), basic.Applicant.NationalID))
	addText(doc, fmt.Sprintf("מרחוב %s", orDash(basic.Applicant.Address)))
	addEmptyLine(doc)
	addText(doc, "- נגד -")
	addEmptyLine(doc)
	addText(doc, fmt.Sprintf("הנתבע/ת: %s, ת.ז. %s", basic.Respondent.FullName(), basic.Respondent.NationalID))
	addText(doc, fmt.Sprintf("מרחוב %s", orDash(basic.Respondent.Address)))
	addEmptyLine(doc)
}

func addKeyValueTable(doc *document.Document, rows [][2]string) {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 0.5*measurement.Point)
	for _, r := range rows {
		row := table.AddRow()
		valCell := row.AddCell()
		valPara := valCell.AddParagraph()
		valPara.Properties().SetAlignment(wml.ST_JcRight)
		valPara.AddRun().AddText(r[1])
		keyCell := row.AddCell()
		keyPara := keyCell.AddParagraph()
		keyPara.Properties().SetAlignment(wml.ST_JcRight)
		keyRun := keyPara.AddRun()
		keyRun.Properties().SetBold(true)
		keyRun.AddText(r[0])
	}
	addEmptyLine(doc)
}

// addPNG embeds in-memory PNG bytes. gooxml only ingests images from disk,
// so the bytes pass through a temp file.
func addPNG(doc *document.Document, data []byte, widthPt, heightPt float64) error {
	tmp, err := os.CreateTemp("", "lawdocs-*.png")
	if err != nil {
		return fmt.Errorf("temp image file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	img, err := common.ImageFromFile(tmp.Name())
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	iref, err := doc.AddImage(img)
	if err != nil {
		return fmt.Errorf("add image: %w", err)
	}
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	inline, err := para.AddRun().AddDrawingInline(iref)
	if err != nil {
		return fmt.Errorf("place image: %w", err)
	}
	inline.SetSize(measurement.Distance(widthPt)*measurement.Point, measurement.Distance(heightPt)*measurement.Point)
	return nil
}

// addSignature closes a filing with the date line and the signature image
// when one was supplied.
func addSignature(doc *document.Document, in Input) error {
	addEmptyLine(doc)
	addText(doc, fmt.Sprintf("תאריך: %s", in.Now.Format("02/01/2006")))
	addText(doc, fmt.Sprintf("חתימת התובע/ת: %s", in.Basic.Applicant.FullName()))
	if len(in.Signature) == 0 {
		return nil
	}
	if err := addPNG(doc, in.Signature, 140, 60); err != nil {
		return fmt.Errorf("embed signature: %w", err)
	}
	return nil
}

func serialize(doc *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
