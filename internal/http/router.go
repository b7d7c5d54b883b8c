package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/mishpatech/lawdocs-backend/internal/http/handlers"
	httpMW "github.com/mishpatech/lawdocs-backend/internal/http/middleware"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler     *httpH.HealthHandler
	DocumentHandler   *httpH.DocumentHandler
	SchemaHandler     *httpH.SchemaHandler
	SubmissionHandler *httpH.SubmissionHandler

	AuthMiddleware *httpMW.AuthMiddleware

	ServiceName string
	Tracing     bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS())

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		if cfg.DocumentHandler != nil {
			api.POST("/document/generate", cfg.DocumentHandler.Generate)
			api.GET("/document/templates", cfg.DocumentHandler.Templates)
		}

		if cfg.SchemaHandler != nil {
			api.GET("/form/schema", cfg.SchemaHandler.GetSchema)
		}

		if cfg.SubmissionHandler != nil {
			submission := api.Group("/submission")
			if cfg.AuthMiddleware != nil {
				submission.Use(cfg.AuthMiddleware.RequireAuth())
			}
			submission.POST("/submit", cfg.SubmissionHandler.Submit)
		}
	}

	return r
}
