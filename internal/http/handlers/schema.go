package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishpatech/lawdocs-backend/internal/formschema"
	"github.com/mishpatech/lawdocs-backend/internal/http/response"
)

type SchemaHandler struct {
	schema *formschema.Schema
}

func NewSchemaHandler(schema *formschema.Schema) *SchemaHandler {
	return &SchemaHandler{schema: schema}
}

func (h *SchemaHandler) GetSchema(c *gin.Context) {
	if h.schema == nil {
		response.RespondError(c, http.StatusNotFound, "schema_unavailable", nil)
		return
	}
	response.RespondOK(c, h.schema)
}
