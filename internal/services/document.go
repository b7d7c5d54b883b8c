package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mishpatech/lawdocs-backend/internal/attachments"
	"github.com/mishpatech/lawdocs-backend/internal/docgen"
	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/form4"
	"github.com/mishpatech/lawdocs-backend/internal/formdata"
	"github.com/mishpatech/lawdocs-backend/internal/legal"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

// ErrNoClaimsSelected marks a request whose claim selection is empty after
// normalization. Handlers treat it as a client error, not a server fault.
var ErrNoClaimsSelected = errors.New("no claims selected")

// GeneratedDoc is one produced document plus its naming-convention filename.
type GeneratedDoc struct {
	ClaimType domain.ClaimType
	Filename  string
	Data      []byte
}

// GenerateAllResult maps saved files per claim and names the claims that
// failed, so callers are told about partial results instead of guessing from
// server logs.
type GenerateAllResult struct {
	Documents map[domain.ClaimType]string `json:"documents"`
	Failed    []domain.ClaimType          `json:"failed,omitempty"`
}

type DocumentService interface {
	GenerateOne(ctx context.Context, sub *domain.Submission, ct domain.ClaimType, uploads []attachments.Upload) (*GeneratedDoc, error)
	GenerateAll(ctx context.Context, sub *domain.Submission, uploads []attachments.Upload) (*GenerateAllResult, error)
	SupportedTemplates() map[string]bool
}

type documentService struct {
	log         *logger.Logger
	transformer legal.Transformer
	pipeline    *attachments.Pipeline
	overlay     *form4.Overlay
	signatures  *SignatureStore
	outputDir   string
	now         func() time.Time
}

// NewDocumentService accepts a nil transformer (free text is then used as
// written) and a nil overlay (alimony documents are then produced without the
// filled government form).
func NewDocumentService(
	log *logger.Logger,
	transformer legal.Transformer,
	pipeline *attachments.Pipeline,
	overlay *form4.Overlay,
	signatures *SignatureStore,
	outputDir string,
) DocumentService {
	return &documentService{
		log:         log.With("service", "DocumentService"),
		transformer: transformer,
		pipeline:    pipeline,
		overlay:     overlay,
		signatures:  signatures,
		outputDir:   outputDir,
		now:         time.Now,
	}
}

func (s *documentService) SupportedTemplates() map[string]bool {
	out := map[string]bool{}
	for _, ct := range docgen.Supported() {
		out[string(ct)] = true
	}
	return out
}

func (s *documentService) GenerateOne(ctx context.Context, sub *domain.Submission, ct domain.ClaimType, uploads []attachments.Upload) (*GeneratedDoc, error) {
	if !ct.Valid() {
		return nil, fmt.Errorf("unknown claim type %q", string(ct))
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	gen, err := docgen.ForClaim(ct)
	if err != nil {
		return nil, err
	}

	now := s.now()
	form := s.applyLegalRegister(ctx, sub, ct)

	in := docgen.Input{
		Basic:     sub.BasicInfo,
		Form:      form,
		Fields:    formdata.Build(sub.BasicInfo, form),
		Signature: s.signatures.Resolve(sub.Signature),
		Now:       now,
	}

	if len(uploads) > 0 && s.pipeline != nil {
		in.Attachments = s.pipeline.Process(ctx, uploads)
	}

	if ct == domain.ClaimTypeAlimony && s.overlay != nil {
		pages, err := s.overlay.Fill(form4.BuildValues(sub.BasicInfo, form, now))
		if err != nil {
			return nil, fmt.Errorf("fill form4: %w", err)
		}
		in.Form4Pages = pages
	}

	data, err := gen.Generate(in)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", string(ct), err)
	}
	return &GeneratedDoc{
		ClaimType: ct,
		Filename:  docgen.Filename(ct, now),
		Data:      data,
	}, nil
}

func (s *documentService) GenerateAll(ctx context.Context, sub *domain.Submission, uploads []attachments.Upload) (*GenerateAllResult, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	selected := domain.NormalizeSelection(sub.SelectedClaims)
	if len(selected) == 0 {
		return nil, ErrNoClaimsSelected
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	result := &GenerateAllResult{Documents: map[domain.ClaimType]string{}}
	for _, ct := range selected {
		doc, err := s.GenerateOne(ctx, sub, ct, uploads)
		if err != nil {
			s.log.Error("claim generation failed, continuing", "claim", string(ct), "error", err)
			result.Failed = append(result.Failed, ct)
			continue
		}
		path := filepath.Join(s.outputDir, doc.Filename)
		if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
			s.log.Error("could not save document", "claim", string(ct), "path", path, "error", err)
			result.Failed = append(result.Failed, ct)
			continue
		}
		result.Documents[ct] = path
	}
	return result, nil
}

// applyLegalRegister rewrites the claim's free-text answers one field at a
// time. The transformer itself guarantees fallback to the original text, so
// this never fails.
func (s *documentService) applyLegalRegister(ctx context.Context, sub *domain.Submission, ct domain.ClaimType) domain.FormData {
	form := sub.FormData
	if s.transformer == nil {
		return form
	}
	tc := legal.Context{
		ClaimType:      ct,
		ApplicantName:  sub.BasicInfo.Applicant.FullName(),
		RespondentName: sub.BasicInfo.Respondent.FullName(),
	}
	rephrase := func(text, label string) string {
		if text == "" {
			return text
		}
		fieldCtx := tc
		fieldCtx.FieldLabel = label
		return s.transformer.Transform(ctx, text, fieldCtx)
	}

	switch ct {
	case domain.ClaimTypeProperty:
		if form.Property != nil {
			p := *form.Property
			p.Background = rephrase(p.Background, "רקע עובדתי")
			p.SharedApartment = rephrase(p.SharedApartment, "דירת המגורים")
			p.SpecialRequests = rephrase(p.SpecialRequests, "בקשות מיוחדות")
			form.Property = &p
		}
	case domain.ClaimTypeCustody:
		if form.Custody != nil {
			c := *form.Custody
			c.Reasons = rephrase(c.Reasons, "נימוקי המשמורת")
			c.CurrentCustody = rephrase(c.CurrentCustody, "הסדרי המשמורת הנוכחיים")
			c.VisitationPlan = rephrase(c.VisitationPlan, "הסדרי שהות")
			form.Custody = &c
		}
	case domain.ClaimTypeAlimony:
		if form.Alimony != nil {
			a := *form.Alimony
			a.Reasons = rephrase(a.Reasons, "נימוקי התביעה")
			a.HousingStatus = rephrase(a.HousingStatus, "מדור")
			form.Alimony = &a
		}
	case domain.ClaimTypeDivorceAgreement:
		if form.DivorceAgreement != nil {
			d := *form.DivorceAgreement
			d.PropertyTerms = rephrase(d.PropertyTerms, "ענייני רכוש")
			d.CustodyTerms = rephrase(d.CustodyTerms, "משמורת")
			d.AlimonyTerms = rephrase(d.AlimonyTerms, "מזונות")
			d.OtherTerms = rephrase(d.OtherTerms, "הוראות נוספות")
			form.DivorceAgreement = &d
		}
	}
	return form
}
