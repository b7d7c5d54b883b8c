package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/legal"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

type recordingTransformer struct {
	fields []string
}

func (r *recordingTransformer) Transform(_ context.Context, text string, tc legal.Context) string {
	r.fields = append(r.fields, tc.FieldLabel)
	return "[משפטי] " + text
}

func newTestDocumentService(t *testing.T, transformer legal.Transformer) *documentService {
	t.Helper()
	signatures, err := NewSignatureStore(logger.NewNop(), "")
	if err != nil {
		t.Fatalf("NewSignatureStore: %v", err)
	}
	svc := NewDocumentService(logger.NewNop(), transformer, nil, nil, signatures, t.TempDir())
	s := svc.(*documentService)
	s.now = func() time.Time { return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC) }
	return s
}

func submissionWithClaims(claims ...domain.ClaimType) *domain.Submission {
	return &domain.Submission{
		BasicInfo: domain.BasicInfo{
			Applicant:  domain.Party{FirstName: "דנה", LastName: "לוי", NationalID: "012345678"},
			Respondent: domain.Party{FirstName: "יוסי", LastName: "לוי", NationalID: "087654321"},
		},
		FormData: domain.FormData{
			Property: &domain.PropertyClaim{Background: "גרנו ביחד", SharedApartment: "דירה בחיפה"},
		},
		SelectedClaims: claims,
	}
}

func TestGenerateOneProducesDocx(t *testing.T) {
	t.Parallel()

	s := newTestDocumentService(t, nil)
	doc, err := s.GenerateOne(context.Background(), submissionWithClaims(), domain.ClaimTypeProperty, nil)
	if err != nil {
		t.Fatalf("GenerateOne: %v", err)
	}
	if doc.Filename != "property_1741597200.docx" {
		t.Fatalf("filename got=%q", doc.Filename)
	}
	if !bytes.HasPrefix(doc.Data, []byte("PK")) {
		t.Fatal("output is not a zip container")
	}
}

func TestGenerateOneRejectsUnknownClaim(t *testing.T) {
	t.Parallel()

	s := newTestDocumentService(t, nil)
	if _, err := s.GenerateOne(context.Background(), submissionWithClaims(), domain.ClaimType("nope"), nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateOneAppliesLegalRegister(t *testing.T) {
	t.Parallel()

	tr := &recordingTransformer{}
	s := newTestDocumentService(t, tr)
	if _, err := s.GenerateOne(context.Background(), submissionWithClaims(), domain.ClaimTypeProperty, nil); err != nil {
		t.Fatalf("GenerateOne: %v", err)
	}
	joined := strings.Join(tr.fields, ",")
	if !strings.Contains(joined, "רקע עובדתי") || !strings.Contains(joined, "דירת המגורים") {
		t.Fatalf("transformed fields got=%v", tr.fields)
	}
}

func TestGenerateAllWritesFilesAndIsolatesFailures(t *testing.T) {
	t.Parallel()

	s := newTestDocumentService(t, nil)
	sub := submissionWithClaims(domain.ClaimTypeProperty, domain.ClaimTypeDivorce)

	res, err := s.GenerateAll(context.Background(), sub, nil)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(res.Failed) != 0 {
		t.Fatalf("failed got=%v", res.Failed)
	}
	if len(res.Documents) != 2 {
		t.Fatalf("documents got=%v", res.Documents)
	}
	for ct, path := range res.Documents {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !bytes.HasPrefix(data, []byte("PK")) {
			t.Fatalf("saved file for %s is not a zip container", ct)
		}
		if filepath.Dir(path) != s.outputDir {
			t.Fatalf("file %s outside output dir", path)
		}
	}
}

func TestGenerateAllAgreementWins(t *testing.T) {
	t.Parallel()

	s := newTestDocumentService(t, nil)
	sub := submissionWithClaims(domain.ClaimTypeDivorce, domain.ClaimTypeDivorceAgreement)

	res, err := s.GenerateAll(context.Background(), sub, nil)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(res.Documents) != 1 {
		t.Fatalf("documents got=%v", res.Documents)
	}
	if _, ok := res.Documents[domain.ClaimTypeDivorceAgreement]; !ok {
		t.Fatalf("agreement missing from %v", res.Documents)
	}
}

func TestGenerateAllRequiresSelection(t *testing.T) {
	t.Parallel()

	s := newTestDocumentService(t, nil)
	_, err := s.GenerateAll(context.Background(), submissionWithClaims(), nil)
	if !errors.Is(err, ErrNoClaimsSelected) {
		t.Fatalf("got=%v want ErrNoClaimsSelected", err)
	}
}

func TestSupportedTemplates(t *testing.T) {
	t.Parallel()

	s := newTestDocumentService(t, nil)
	templates := s.SupportedTemplates()
	for _, want := range []string{"property", "custody", "alimony", "divorce", "divorce_agreement"} {
		if !templates[want] {
			t.Fatalf("missing template %q in %v", want, templates)
		}
	}
}
