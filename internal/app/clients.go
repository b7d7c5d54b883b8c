package app

import (
	"context"

	driveclient "github.com/mishpatech/lawdocs-backend/internal/clients/drive"
	"github.com/mishpatech/lawdocs-backend/internal/clients/groq"
	redisc "github.com/mishpatech/lawdocs-backend/internal/clients/redis"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/platform/gcp"
)

// Clients are the external dependencies. Every one of them is optional: the
// bare document-generation path has to keep working on a laptop with no
// credentials at all, so init failures are logged Warn and the field stays
// nil.
type Clients struct {
	Groq    groq.Client
	Drive   driveclient.Client
	Cache   redisc.RephraseCache
	Archive gcp.ArchiveStore
}

func wireClients(ctx context.Context, log *logger.Logger) Clients {
	var clients Clients

	if c, err := groq.NewClient(log); err != nil {
		log.Warn("groq client unavailable, legal rephrasing disabled", "error", err)
	} else {
		clients.Groq = c
	}

	if c, err := driveclient.NewClient(ctx, log); err != nil {
		log.Warn("drive client unavailable, submissions disabled", "error", err)
	} else {
		clients.Drive = c
	}

	if c, err := redisc.NewRephraseCache(log); err != nil {
		log.Warn("redis unavailable, rephrase caching disabled", "error", err)
	} else {
		clients.Cache = c
	}

	if c, err := gcp.NewArchiveStore(ctx, log); err != nil {
		log.Warn("gcs archive unavailable, archiving disabled", "error", err)
	} else {
		clients.Archive = c
	}

	return clients
}
