package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

type formatOp func(model.FormatRequest) (model.FormatResponse, error)

// FormatHandler handles HTTP requests for the JSON, XML and HTML formatters.
type FormatHandler struct {
	responder
	service *service.FormatService
}

// NewFormatHandler creates a new FormatHandler.
func NewFormatHandler(svc *service.FormatService, log *zap.Logger, maxBodyBytes int64) *FormatHandler {
	return &FormatHandler{responder: newResponder(log, maxBodyBytes), service: svc}
}

func (h *FormatHandler) handle(op formatOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.FormatRequest
		if !h.decode(w, r, &req) {
			return
		}

		resp, err := op(req)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// infallible adapts operations that report every failure in the response.
func infallible(op func(model.FormatRequest) model.FormatResponse) formatOp {
	return func(req model.FormatRequest) (model.FormatResponse, error) {
		return op(req), nil
	}
}

// HandleJSONFormat handles POST /api/format/json/format requests.
func (h *FormatHandler) HandleJSONFormat() http.HandlerFunc { return h.handle(h.service.FormatJSON) }

// HandleJSONMinify handles POST /api/format/json/minify requests.
func (h *FormatHandler) HandleJSONMinify() http.HandlerFunc { return h.handle(h.service.MinifyJSON) }

// HandleJSONValidate handles POST /api/format/json/validate requests.
func (h *FormatHandler) HandleJSONValidate() http.HandlerFunc {
	return h.handle(infallible(h.service.ValidateJSON))
}

// HandleJSONUnescape handles POST /api/format/json/unescape requests.
func (h *FormatHandler) HandleJSONUnescape() http.HandlerFunc { return h.handle(h.service.UnescapeJSON) }

// HandleXMLFormat handles POST /api/format/xml/format requests.
func (h *FormatHandler) HandleXMLFormat() http.HandlerFunc { return h.handle(h.service.FormatXML) }

// HandleXMLMinify handles POST /api/format/xml/minify requests.
func (h *FormatHandler) HandleXMLMinify() http.HandlerFunc { return h.handle(h.service.MinifyXML) }

// HandleXMLValidate handles POST /api/format/xml/validate requests.
func (h *FormatHandler) HandleXMLValidate() http.HandlerFunc {
	return h.handle(infallible(h.service.ValidateXML))
}

// HandleHTMLFormat handles POST /api/format/html/format requests.
func (h *FormatHandler) HandleHTMLFormat() http.HandlerFunc { return h.handle(h.service.FormatHTML) }

// HandleHTMLMinify handles POST /api/format/html/minify requests.
func (h *FormatHandler) HandleHTMLMinify() http.HandlerFunc {
	return h.handle(infallible(h.service.MinifyHTML))
}
