package app

import (
	"github.com/mishpatech/lawdocs-backend/internal/formschema"
	httpH "github.com/mishpatech/lawdocs-backend/internal/http/handlers"
	httpMW "github.com/mishpatech/lawdocs-backend/internal/http/middleware"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Document   *httpH.DocumentHandler
	Schema     *httpH.SchemaHandler
	Submission *httpH.SubmissionHandler

	Auth *httpMW.AuthMiddleware
}

func wireHandlers(log *logger.Logger, cfg Config, svcs Services, schema *formschema.Schema) Handlers {
	h := Handlers{
		Health:   httpH.NewHealthHandler(),
		Document: httpH.NewDocumentHandler(log, svcs.Document),
		Auth:     httpMW.NewAuthMiddleware(log, cfg.APIAuthSecret),
	}
	if schema != nil {
		h.Schema = httpH.NewSchemaHandler(schema)
	}
	h.Submission = httpH.NewSubmissionHandler(log, svcs.Submission)
	return h
}
