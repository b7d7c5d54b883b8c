package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/types"
	"github.com/mishpatech/lawdocs-backend/internal/utils"
)

type DatabaseService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDatabaseService connects to Postgres when POSTGRES_HOST is configured,
// otherwise falls back to an on-disk SQLite file so local setups need no
// database provisioning.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
	serviceLog := log.With("service", "DatabaseService")

	host := strings.TrimSpace(utils.GetEnv("POSTGRES_HOST", "", log))
	var (
		conn *gorm.DB
		err  error
	)
	if host != "" {
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "lawdocs", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)

		serviceLog.Info("connecting to postgres", "host", host, "db", name)
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := utils.GetEnv("SQLITE_PATH", "lawdocs.db", log)
		serviceLog.Info("POSTGRES_HOST not set, using sqlite", "path", path)
		conn, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &DatabaseService{db: conn, log: serviceLog}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("auto migrating tables...")
	if err := s.db.AutoMigrate(
		&types.SubmissionFolder{},
		&types.SubmissionRecord{},
		&types.GeneratedDocumentRecord{},
	); err != nil {
		s.log.Error("auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DatabaseService) DB() *gorm.DB {
	return s.db
}
