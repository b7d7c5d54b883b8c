package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	driveclient "github.com/mishpatech/lawdocs-backend/internal/clients/drive"
	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/platform/gcp"
	"github.com/mishpatech/lawdocs-backend/internal/repos"
	"github.com/mishpatech/lawdocs-backend/internal/types"
)

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type SubmitResult struct {
	Success    bool               `json:"success"`
	FolderID   string             `json:"folderId"`
	FolderName string             `json:"folderName"`
	Failed     []domain.ClaimType `json:"failed,omitempty"`
}

type SubmissionService interface {
	Submit(ctx context.Context, sub *domain.Submission) (*SubmitResult, error)
}

type submissionService struct {
	log          *logger.Logger
	drive        driveclient.Client
	documents    DocumentService
	archive      gcp.ArchiveStore
	db           *gorm.DB
	folderRepo   repos.SubmissionFolderRepo
	recordRepo   repos.SubmissionRepo
	documentRepo repos.GeneratedDocumentRepo
	rootFolderID string
	now          func() time.Time
}

// NewSubmissionService tolerates a nil db (and then nil repos): folder
// idempotency falls back to Drive-side lookup only. Archive may be nil.
func NewSubmissionService(
	log *logger.Logger,
	drive driveclient.Client,
	documents DocumentService,
	archive gcp.ArchiveStore,
	db *gorm.DB,
	folderRepo repos.SubmissionFolderRepo,
	recordRepo repos.SubmissionRepo,
	documentRepo repos.GeneratedDocumentRepo,
	rootFolderID string,
) SubmissionService {
	return &submissionService{
		log:          log.With("service", "SubmissionService"),
		drive:        drive,
		documents:    documents,
		archive:      archive,
		db:           db,
		folderRepo:   folderRepo,
		recordRepo:   recordRepo,
		documentRepo: documentRepo,
		rootFolderID: rootFolderID,
		now:          time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, sub *domain.Submission) (*SubmitResult, error) {
	if s.drive == nil {
		return nil, fmt.Errorf("drive client not configured")
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	selected := domain.NormalizeSelection(sub.SelectedClaims)
	if len(selected) == 0 {
		return nil, ErrNoClaimsSelected
	}

	now := s.now()
	// Deterministic name; combined with the DB unique index this is the
	// idempotency key for concurrent submissions by the same applicant.
	folderName := fmt.Sprintf("%s - %s", sub.BasicInfo.Applicant.FullName(), now.Format("2006-01-02"))

	folderID, err := s.ensureParentFolder(ctx, folderName)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("marshal submission snapshot: %w", err)
	}
	if _, err := s.drive.UploadFile(ctx, folderID, "submission.json", "application/json", bytes.NewReader(snapshot)); err != nil {
		return nil, fmt.Errorf("upload submission snapshot: %w", err)
	}

	record := s.persistSubmission(ctx, sub, folderName, snapshot)

	var failed []domain.ClaimType
	for _, ct := range selected {
		if err := s.submitClaim(ctx, sub, ct, folderID, folderName, record); err != nil {
			s.log.Error("claim submission failed, continuing", "claim", string(ct), "error", err)
			failed = append(failed, ct)
		}
	}

	return &SubmitResult{
		Success:    len(failed) < len(selected),
		FolderID:   folderID,
		FolderName: folderName,
		Failed:     failed,
	}, nil
}

// ensureParentFolder resolves the applicant's Drive folder exactly once per
// folder name. The lookup order is: local registry, Drive search, create.
// Losing a registry insert race means another request created the folder
// first; its ID is reused.
func (s *submissionService) ensureParentFolder(ctx context.Context, folderName string) (string, error) {
	if s.folderRepo != nil {
		if existing, err := s.folderRepo.GetByName(ctx, nil, folderName); err == nil && existing != nil {
			return existing.DriveFolderID, nil
		} else if err != nil {
			s.log.Warn("folder registry lookup failed, falling back to drive search", "error", err)
		}
	}

	driveID, found, err := s.drive.FindFolder(ctx, folderName, s.rootFolderID)
	if err != nil {
		return "", fmt.Errorf("find parent folder: %w", err)
	}
	if !found {
		driveID, err = s.drive.CreateFolder(ctx, folderName, s.rootFolderID)
		if err != nil {
			return "", fmt.Errorf("create parent folder: %w", err)
		}
	}

	if s.folderRepo != nil {
		createErr := s.folderRepo.Create(ctx, nil, &types.SubmissionFolder{
			FolderName:    folderName,
			DriveFolderID: driveID,
			CreatedAt:     s.now(),
		})
		if createErr == repos.ErrDuplicateFolder {
			if winner, err := s.folderRepo.GetByName(ctx, nil, folderName); err == nil && winner != nil {
				return winner.DriveFolderID, nil
			}
		} else if createErr != nil {
			s.log.Warn("folder registry insert failed", "error", createErr)
		}
	}
	return driveID, nil
}

func (s *submissionService) submitClaim(ctx context.Context, sub *domain.Submission, ct domain.ClaimType, parentID, folderName string, record *types.SubmissionRecord) error {
	subfolderID, found, err := s.drive.FindFolder(ctx, ct.HebrewFolderName(), parentID)
	if err != nil {
		return fmt.Errorf("find claim subfolder: %w", err)
	}
	if !found {
		subfolderID, err = s.drive.CreateFolder(ctx, ct.HebrewFolderName(), parentID)
		if err != nil {
			return fmt.Errorf("create claim subfolder: %w", err)
		}
	}

	doc, err := s.documents.GenerateOne(ctx, sub, ct, nil)
	if err != nil {
		return err
	}

	fileID, err := s.drive.UploadFile(ctx, subfolderID, doc.Filename, docxMimeType, bytes.NewReader(doc.Data))
	if err != nil {
		return fmt.Errorf("upload document: %w", err)
	}

	archiveKey := ""
	if s.archive != nil {
		archiveKey = fmt.Sprintf("%s/%s", folderName, doc.Filename)
		if err := s.archive.Upload(ctx, archiveKey, bytes.NewReader(doc.Data), docxMimeType); err != nil {
			s.log.Warn("archive upload failed (ignored)", "key", archiveKey, "error", err)
			archiveKey = ""
		}
	}

	if s.documentRepo != nil && record != nil {
		if err := s.documentRepo.Create(ctx, nil, &types.GeneratedDocumentRecord{
			SubmissionID: record.ID,
			ClaimType:    string(ct),
			Filename:     doc.Filename,
			DriveFileID:  fileID,
			ArchiveKey:   archiveKey,
			SizeBytes:    int64(len(doc.Data)),
			CreatedAt:    s.now(),
		}); err != nil {
			s.log.Warn("document record insert failed", "error", err)
		}
	}
	return nil
}

func (s *submissionService) persistSubmission(ctx context.Context, sub *domain.Submission, folderName string, snapshot []byte) *types.SubmissionRecord {
	if s.recordRepo == nil {
		return nil
	}
	claims, _ := json.Marshal(domain.NormalizeSelection(sub.SelectedClaims))
	record := &types.SubmissionRecord{
		ApplicantName:  sub.BasicInfo.Applicant.FullName(),
		RespondentName: sub.BasicInfo.Respondent.FullName(),
		Claims:         claims,
		Snapshot:       snapshot,
		CreatedAt:      s.now(),
	}
	if s.folderRepo != nil {
		if folder, err := s.folderRepo.GetByName(ctx, nil, folderName); err == nil && folder != nil {
			record.FolderID = folder.ID
		}
	}
	if err := s.recordRepo.Create(ctx, nil, record); err != nil {
		s.log.Warn("submission record insert failed", "error", err)
		return nil
	}
	return record
}
