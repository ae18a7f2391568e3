package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

// GeneratorHandler handles HTTP requests for the random data generators.
type GeneratorHandler struct {
	responder
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, log *zap.Logger, maxBodyBytes int64) *GeneratorHandler {
	return &GeneratorHandler{responder: newResponder(log, maxBodyBytes), service: svc}
}

// HandleUUID handles POST /api/generator/uuid requests.
func (h *GeneratorHandler) HandleUUID(w http.ResponseWriter, r *http.Request) {
	var req model.UUIDRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.UUIDs(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePassword handles POST /api/generator/password requests.
func (h *GeneratorHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Password(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleLorem handles POST /api/generator/lorem requests.
func (h *GeneratorHandler) HandleLorem(w http.ResponseWriter, r *http.Request) {
	var req model.LoremRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Lorem(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleQRCode handles POST /api/generator/qrcode requests.
func (h *GeneratorHandler) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	var req model.QRCodeRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.QRCode(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
