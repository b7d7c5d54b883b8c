package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/mishpatech/lawdocs-backend/internal/attachments"
	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/repos"
	"github.com/mishpatech/lawdocs-backend/internal/types"
)

type fakeDrive struct {
	mu            sync.Mutex
	folders       map[string]string // "parent/name" -> id
	nextID        int
	createdCount  int
	uploadedNames []string
}

func newFakeDrive() *fakeDrive {
	return &fakeDrive{folders: map[string]string{}}
}

func (d *fakeDrive) FindFolder(_ context.Context, name, parentID string) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.folders[parentID+"/"+name]
	return id, ok, nil
}

func (d *fakeDrive) CreateFolder(_ context.Context, name, parentID string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.createdCount++
	id := fmt.Sprintf("folder-%d", d.nextID)
	d.folders[parentID+"/"+name] = id
	return id, nil
}

func (d *fakeDrive) UploadFile(_ context.Context, parentID, name, mimeType string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.uploadedNames = append(d.uploadedNames, name)
	return "file-" + name, nil
}

type fakeDocs struct {
	failFor domain.ClaimType
}

func (f *fakeDocs) GenerateOne(_ context.Context, _ *domain.Submission, ct domain.ClaimType, _ []attachments.Upload) (*GeneratedDoc, error) {
	if ct == f.failFor {
		return nil, fmt.Errorf("boom")
	}
	return &GeneratedDoc{
		ClaimType: ct,
		Filename:  string(ct) + ".docx",
		Data:      []byte("docx-bytes"),
	}, nil
}

func (f *fakeDocs) GenerateAll(_ context.Context, _ *domain.Submission, _ []attachments.Upload) (*GenerateAllResult, error) {
	return &GenerateAllResult{}, nil
}

func (f *fakeDocs) SupportedTemplates() map[string]bool { return map[string]bool{} }

type fakeFolderRepo struct {
	mu     sync.Mutex
	byName map[string]*types.SubmissionFolder
	insert func(*types.SubmissionFolder) error
}

func (r *fakeFolderRepo) GetByName(_ context.Context, _ *gorm.DB, name string) (*types.SubmissionFolder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byName[name], nil
}

func (r *fakeFolderRepo) Create(_ context.Context, _ *gorm.DB, f *types.SubmissionFolder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insert != nil {
		if err := r.insert(f); err != nil {
			return err
		}
	}
	if _, exists := r.byName[f.FolderName]; exists {
		return repos.ErrDuplicateFolder
	}
	r.byName[f.FolderName] = f
	return nil
}

func validSubmission() *domain.Submission {
	return &domain.Submission{
		BasicInfo: domain.BasicInfo{
			Applicant:  domain.Party{FirstName: "דנה", LastName: "לוי", NationalID: "012345678"},
			Respondent: domain.Party{FirstName: "יוסי", LastName: "לוי", NationalID: "087654321"},
		},
		SelectedClaims: []domain.ClaimType{domain.ClaimTypeProperty, domain.ClaimTypeAlimony},
	}
}

func newTestSubmissionService(drive *fakeDrive, docs DocumentService, folderRepo repos.SubmissionFolderRepo) *submissionService {
	svc := NewSubmissionService(logger.NewNop(), drive, docs, nil, nil, folderRepo, nil, nil, "root")
	s := svc.(*submissionService)
	s.now = func() time.Time { return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestSubmitCreatesFolderTreeAndUploads(t *testing.T) {
	t.Parallel()

	drive := newFakeDrive()
	s := newTestSubmissionService(drive, &fakeDocs{}, nil)

	res, err := s.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.FolderName != "דנה לוי - 2025-03-10" {
		t.Fatalf("folder name got=%q", res.FolderName)
	}
	// Parent folder plus one subfolder per claim.
	if drive.createdCount != 3 {
		t.Fatalf("folders created got=%d want=3", drive.createdCount)
	}
	// Snapshot plus one document per claim.
	if len(drive.uploadedNames) != 3 {
		t.Fatalf("uploads got=%v", drive.uploadedNames)
	}
	if drive.uploadedNames[0] != "submission.json" {
		t.Fatalf("first upload got=%q", drive.uploadedNames[0])
	}
}

func TestSubmitReusesExistingFolder(t *testing.T) {
	t.Parallel()

	drive := newFakeDrive()
	folderRepo := &fakeFolderRepo{byName: map[string]*types.SubmissionFolder{}}
	s := newTestSubmissionService(drive, &fakeDocs{}, folderRepo)

	first, err := s.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	second, err := s.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if first.FolderID != second.FolderID {
		t.Fatalf("folder ids differ: %q vs %q", first.FolderID, second.FolderID)
	}
	// Parent created once, claim subfolders found again on the second pass.
	if drive.createdCount != 3 {
		t.Fatalf("folders created got=%d want=3", drive.createdCount)
	}
}

func TestSubmitDuplicateInsertReusesWinner(t *testing.T) {
	t.Parallel()

	drive := newFakeDrive()
	folderRepo := &fakeFolderRepo{byName: map[string]*types.SubmissionFolder{}}
	// Simulate a concurrent request registering the folder between our
	// lookup and our insert.
	folderRepo.insert = func(f *types.SubmissionFolder) error {
		folderRepo.byName[f.FolderName] = &types.SubmissionFolder{
			FolderName:    f.FolderName,
			DriveFolderID: "winner-id",
		}
		return nil
	}
	s := newTestSubmissionService(drive, &fakeDocs{}, folderRepo)

	res, err := s.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.FolderID != "winner-id" {
		t.Fatalf("folder id got=%q want=winner-id", res.FolderID)
	}
}

func TestSubmitIsolatesFailedClaims(t *testing.T) {
	t.Parallel()

	drive := newFakeDrive()
	s := newTestSubmissionService(drive, &fakeDocs{failFor: domain.ClaimTypeProperty}, nil)

	res, err := s.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Success {
		t.Fatal("one surviving claim should still count as success")
	}
	if len(res.Failed) != 1 || res.Failed[0] != domain.ClaimTypeProperty {
		t.Fatalf("failed got=%v", res.Failed)
	}
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()

	s := newTestSubmissionService(newFakeDrive(), &fakeDocs{}, nil)

	sub := validSubmission()
	sub.SelectedClaims = nil
	if _, err := s.Submit(context.Background(), sub); err == nil {
		t.Fatal("expected error for empty selection")
	}

	sub = validSubmission()
	sub.BasicInfo.Applicant.NationalID = ""
	if _, err := s.Submit(context.Background(), sub); err == nil {
		t.Fatal("expected error for invalid submission")
	}

	noDrive := NewSubmissionService(logger.NewNop(), nil, &fakeDocs{}, nil, nil, nil, nil, nil, "")
	if _, err := noDrive.Submit(context.Background(), validSubmission()); err == nil {
		t.Fatal("expected error when drive is not configured")
	}
}
