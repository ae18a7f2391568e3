package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

// ConverterHandler handles HTTP requests for the converters.
type ConverterHandler struct {
	responder
	service *service.ConverterService
}

// NewConverterHandler creates a new ConverterHandler.
func NewConverterHandler(svc *service.ConverterService, log *zap.Logger, maxBodyBytes int64) *ConverterHandler {
	return &ConverterHandler{responder: newResponder(log, maxBodyBytes), service: svc}
}

// HandleUnit handles POST /api/converter/unit requests.
func (h *ConverterHandler) HandleUnit(w http.ResponseWriter, r *http.Request) {
	var req model.UnitConvertRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.ConvertUnit(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleNumberBase handles POST /api/converter/number-base requests.
func (h *ConverterHandler) HandleNumberBase(w http.ResponseWriter, r *http.Request) {
	var req model.NumberBaseRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.ConvertNumberBase(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleCase handles POST /api/converter/case requests.
func (h *ConverterHandler) HandleCase(w http.ResponseWriter, r *http.Request) {
	var req model.TextRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.ConvertCase(req))
}

// HandleColor handles POST /api/converter/color requests.
func (h *ConverterHandler) HandleColor(w http.ResponseWriter, r *http.Request) {
	var req model.TextRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.ConvertColor(req))
}
