package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

// EncodingHandler handles HTTP requests for the text encodings.
type EncodingHandler struct {
	responder
	service *service.EncodingService
}

// NewEncodingHandler creates a new EncodingHandler.
func NewEncodingHandler(svc *service.EncodingService, log *zap.Logger, maxBodyBytes int64) *EncodingHandler {
	return &EncodingHandler{responder: newResponder(log, maxBodyBytes), service: svc}
}

// HandleEncode handles POST /api/encoding/{codec}/encode requests.
func (h *EncodingHandler) HandleEncode(w http.ResponseWriter, r *http.Request) {
	var req model.EncodeDecodeRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Encode(chi.URLParam(r, "codec"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDecode handles POST /api/encoding/{codec}/decode requests.
func (h *EncodingHandler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	var req model.EncodeDecodeRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Decode(chi.URLParam(r, "codec"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
