package app

import (
	"github.com/mishpatech/lawdocs-backend/internal/attachments"
	"github.com/mishpatech/lawdocs-backend/internal/db"
	"github.com/mishpatech/lawdocs-backend/internal/form4"
	"github.com/mishpatech/lawdocs-backend/internal/legal"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/services"

	"gorm.io/gorm"
)

type Services struct {
	Document   services.DocumentService
	Submission services.SubmissionService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, database *db.DatabaseService, repos Repos) Services {
	var transformer legal.Transformer
	if clients.Groq != nil {
		transformer = legal.NewTransformer(log, clients.Groq, clients.Cache)
	}

	var overlay *form4.Overlay
	if cfg.Form4TemplateDir != "" {
		o, err := form4.NewOverlay(log, cfg.Form4TemplateDir, cfg.Form4FontPath)
		if err != nil {
			log.Warn("form4 overlay unavailable, alimony documents will omit the filled form", "error", err)
		} else {
			overlay = o
		}
	}

	signatures, err := services.NewSignatureStore(log, cfg.SignaturePath)
	if err != nil {
		log.Warn("default signature image not loaded", "path", cfg.SignaturePath, "error", err)
		signatures, _ = services.NewSignatureStore(log, "")
	}

	pipeline := attachments.NewPipeline(log)

	documents := services.NewDocumentService(log, transformer, pipeline, overlay, signatures, cfg.OutputDir)

	var gdb *gorm.DB
	if database != nil {
		gdb = database.DB()
	}

	var submission services.SubmissionService
	if clients.Drive != nil {
		submission = services.NewSubmissionService(
			log,
			clients.Drive,
			documents,
			clients.Archive,
			gdb,
			repos.SubmissionFolder,
			repos.Submission,
			repos.GeneratedDocument,
			cfg.DriveRootFolderID,
		)
	}

	return Services{Document: documents, Submission: submission}
}
