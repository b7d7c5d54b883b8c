package app

import (
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/utils"
)

type Config struct {
	Port        string
	Environment string

	OutputDir        string
	FormSchemaPath   string
	SignaturePath    string
	Form4TemplateDir string
	Form4FontPath    string

	DriveRootFolderID string
	APIAuthSecret     string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:              utils.GetEnv("PORT", "8080", log),
		Environment:       utils.GetEnv("APP_ENV", "development", log),
		OutputDir:         utils.GetEnv("OUTPUT_DIR", "output", log),
		FormSchemaPath:    utils.GetEnv("FORM_SCHEMA_PATH", "", log),
		SignaturePath:     utils.GetEnv("SIGNATURE_PATH", "", log),
		Form4TemplateDir:  utils.GetEnv("FORM4_TEMPLATE_DIR", "", log),
		Form4FontPath:     utils.GetEnv("FORM4_FONT_PATH", "", log),
		DriveRootFolderID: utils.GetEnv("GOOGLE_DRIVE_FOLDER_ID", "", log),
		APIAuthSecret:     utils.GetEnv("API_AUTH_SECRET", "", log),
	}
}
