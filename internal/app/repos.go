package app

import (
	"github.com/mishpatech/lawdocs-backend/internal/db"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/repos"
)

type Repos struct {
	SubmissionFolder  repos.SubmissionFolderRepo
	Submission        repos.SubmissionRepo
	GeneratedDocument repos.GeneratedDocumentRepo
}

func wireRepos(database *db.DatabaseService, log *logger.Logger) Repos {
	if database == nil {
		return Repos{}
	}
	return Repos{
		SubmissionFolder:  repos.NewSubmissionFolderRepo(database.DB(), log),
		Submission:        repos.NewSubmissionRepo(database.DB(), log),
		GeneratedDocument: repos.NewGeneratedDocumentRepo(database.DB(), log),
	}
}
