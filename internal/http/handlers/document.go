package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mishpatech/lawdocs-backend/internal/attachments"
	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/http/response"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/services"
)

const maxUploadBytes = 32 << 20

type DocumentHandler struct {
	log       *logger.Logger
	documents services.DocumentService
}

func NewDocumentHandler(log *logger.Logger, documents services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		log:       log.With("handler", "DocumentHandler"),
		documents: documents,
	}
}

// generateRequest is the JSON carried in the multipart "data" field.
type generateRequest struct {
	BasicInfo      domain.BasicInfo   `json:"basicInfo"`
	FormData       domain.FormData    `json:"formData"`
	SelectedClaims []domain.ClaimType `json:"selectedClaims,omitempty"`
	ClaimType      string             `json:"claimType,omitempty"`
	GenerateAll    bool               `json:"generateAll,omitempty"`
	Signature      string             `json:"signature,omitempty"`
}

func (h *DocumentHandler) Generate(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_multipart_form", err)
		return
	}
	form := c.Request.MultipartForm

	dataField := ""
	if v := form.Value["data"]; len(v) > 0 {
		dataField = v[0]
	}
	if strings.TrimSpace(dataField) == "" {
		response.RespondError(c, http.StatusBadRequest, "missing_data_field", nil)
		return
	}

	var req generateRequest
	dec := json.NewDecoder(strings.NewReader(dataField))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_data_json", err)
		return
	}

	sub := &domain.Submission{
		BasicInfo:      req.BasicInfo,
		FormData:       req.FormData,
		SelectedClaims: req.SelectedClaims,
		Signature:      req.Signature,
	}
	if err := sub.Validate(); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_submission", err)
		return
	}

	uploads := h.readUploads(form.File["attachments"])

	if req.GenerateAll {
		result, err := h.documents.GenerateAll(c.Request.Context(), sub, uploads)
		if err != nil {
			if errors.Is(err, services.ErrNoClaimsSelected) {
				response.RespondError(c, http.StatusBadRequest, "no_claims_selected", err)
				return
			}
			response.RespondError(c, http.StatusInternalServerError, "generation_failed", err)
			return
		}
		response.RespondOK(c, result)
		return
	}

	ct, err := domain.ParseClaimType(req.ClaimType)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_claim_type", err)
		return
	}
	doc, err := h.documents.GenerateOne(c.Request.Context(), sub, ct, uploads)
	if err != nil {
		status := http.StatusInternalServerError
		code := "generation_failed"
		if isMissingResource(err) {
			status = http.StatusNotFound
			code = "missing_resource"
		}
		response.RespondError(c, status, code, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, docxContentType, doc.Data)
}

func (h *DocumentHandler) Templates(c *gin.Context) {
	response.RespondOK(c, gin.H{"templates": h.documents.SupportedTemplates()})
}

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// readUploads drains the attachment file parts into memory. A part that
// cannot be read is logged and skipped; the rest still process.
func (h *DocumentHandler) readUploads(files []*multipart.FileHeader) []attachments.Upload {
	uploads := make([]attachments.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			h.log.Warn("cannot open attachment part", "name", fh.Filename, "error", err)
			continue
		}
		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		_ = f.Close()
		if err != nil {
			h.log.Warn("cannot read attachment part", "name", fh.Filename, "error", err)
			continue
		}
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(bytesOrEmpty(data))
		}
		uploads = append(uploads, attachments.Upload{
			Name:        fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}
	return uploads
}

func bytesOrEmpty(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}

func isMissingResource(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such file") || strings.Contains(msg, "template page")
}
