package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/types"
)

// ErrDuplicateFolder reports that another submission already registered the
// same folder name; the caller should re-read and reuse the existing row.
var ErrDuplicateFolder = errors.New("submission folder already exists")

type SubmissionFolderRepo interface {
	GetByName(ctx context.Context, tx *gorm.DB, folderName string) (*types.SubmissionFolder, error)
	Create(ctx context.Context, tx *gorm.DB, folder *types.SubmissionFolder) error
}

type submissionFolderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionFolderRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionFolderRepo {
	return &submissionFolderRepo{db: db, log: baseLog.With("repo", "SubmissionFolderRepo")}
}

func (r *submissionFolderRepo) GetByName(ctx context.Context, tx *gorm.DB, folderName string) (*types.SubmissionFolder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var folder types.SubmissionFolder
	err := transaction.WithContext(ctx).
		Where("folder_name = ?", folderName).
		First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *submissionFolderRepo) Create(ctx context.Context, tx *gorm.DB, folder *types.SubmissionFolder) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(folder).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateFolder
		}
		return err
	}
	return nil
}

// isUniqueViolation covers both backends: pgconn error code 23505 on
// Postgres, the UNIQUE constraint message on SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

type SubmissionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rec *types.SubmissionRecord) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.SubmissionRecord, error)
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	return &submissionRepo{db: db, log: baseLog.With("repo", "SubmissionRepo")}
}

func (r *submissionRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.SubmissionRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(rec).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.SubmissionRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rec types.SubmissionRecord
	if err := transaction.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

type GeneratedDocumentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rec *types.GeneratedDocumentRecord) error
	ListBySubmissionID(ctx context.Context, tx *gorm.DB, submissionID string) ([]*types.GeneratedDocumentRecord, error)
}

type generatedDocumentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGeneratedDocumentRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedDocumentRepo {
	return &generatedDocumentRepo{db: db, log: baseLog.With("repo", "GeneratedDocumentRepo")}
}

func (r *generatedDocumentRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.GeneratedDocumentRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(rec).Error
}

func (r *generatedDocumentRepo) ListBySubmissionID(ctx context.Context, tx *gorm.DB, submissionID string) ([]*types.GeneratedDocumentRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.GeneratedDocumentRecord
	if err := transaction.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("created_at asc").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
