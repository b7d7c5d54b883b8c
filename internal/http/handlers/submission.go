package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/http/response"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
	"github.com/mishpatech/lawdocs-backend/internal/services"
)

type SubmissionHandler struct {
	log         *logger.Logger
	submissions services.SubmissionService
}

func NewSubmissionHandler(log *logger.Logger, submissions services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		log:         log.With("handler", "SubmissionHandler"),
		submissions: submissions,
	}
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	if h.submissions == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "submissions_disabled", nil)
		return
	}
	var sub domain.Submission
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_submission_json", err)
		return
	}
	if err := sub.Validate(); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_submission", err)
		return
	}
	result, err := h.submissions.Submit(c.Request.Context(), &sub)
	if err != nil {
		if errors.Is(err, services.ErrNoClaimsSelected) {
			response.RespondError(c, http.StatusBadRequest, "no_claims_selected", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "submission_failed", err)
		return
	}
	response.RespondOK(c, result)
}
