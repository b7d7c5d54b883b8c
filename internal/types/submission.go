package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionFolder records the Drive parent folder created for an applicant.
// The unique folder name is the idempotency key that keeps concurrent
// submissions for the same applicant from fanning out duplicate folders.
type SubmissionFolder struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FolderName    string    `gorm:"column:folder_name;not null;uniqueIndex" json:"folder_name"`
	DriveFolderID string    `gorm:"column:drive_folder_id;not null" json:"drive_folder_id"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (SubmissionFolder) TableName() string { return "submission_folder" }

func (f *SubmissionFolder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type SubmissionRecord struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	FolderID       uuid.UUID         `gorm:"type:uuid;index" json:"folder_id"`
	Folder         *SubmissionFolder `gorm:"foreignKey:FolderID;references:ID" json:"folder,omitempty"`
	ApplicantName  string            `gorm:"column:applicant_name;not null" json:"applicant_name"`
	RespondentName string            `gorm:"column:respondent_name" json:"respondent_name"`
	Claims         datatypes.JSON    `gorm:"column:claims;type:jsonb" json:"claims"`
	Snapshot       datatypes.JSON    `gorm:"column:snapshot;type:jsonb" json:"snapshot"`
	CreatedAt      time.Time         `gorm:"not null" json:"created_at"`
}

func (SubmissionRecord) TableName() string { return "submission_record" }

func (r *SubmissionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type GeneratedDocumentRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;index" json:"submission_id"`
	ClaimType    string    `gorm:"column:claim_type;not null" json:"claim_type"`
	Filename     string    `gorm:"column:filename;not null" json:"filename"`
	DriveFileID  string    `gorm:"column:drive_file_id" json:"drive_file_id"`
	ArchiveKey   string    `gorm:"column:archive_key" json:"archive_key"`
	SizeBytes    int64     `gorm:"column:size_bytes" json:"size_bytes"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (GeneratedDocumentRecord) TableName() string { return "generated_document" }

func (r *GeneratedDocumentRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
