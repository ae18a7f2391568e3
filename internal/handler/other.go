package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

// OtherHandler handles HTTP requests for the remaining tools.
type OtherHandler struct {
	responder
	service *service.OtherService
}

// NewOtherHandler creates a new OtherHandler.
func NewOtherHandler(svc *service.OtherService, log *zap.Logger, maxBodyBytes int64) *OtherHandler {
	return &OtherHandler{responder: newResponder(log, maxBodyBytes), service: svc}
}

// HandleDiff handles POST /api/other/diff requests.
func (h *OtherHandler) HandleDiff(w http.ResponseWriter, r *http.Request) {
	var req model.DiffRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Diff(req))
}
