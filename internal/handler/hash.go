package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

var (
	errFileRequired = errors.New("multipart field \"file\" is required")
	errNotMultipart = errors.New("request must be multipart/form-data")
)

const maxAlgorithmName = 64

// HashHandler handles HTTP requests for digests and password hashing.
type HashHandler struct {
	responder
	service        *service.HashService
	maxUploadBytes int64
}

// NewHashHandler creates a new HashHandler.
func NewHashHandler(svc *service.HashService, log *zap.Logger, maxBodyBytes, maxUploadBytes int64) *HashHandler {
	return &HashHandler{
		responder:      newResponder(log, maxBodyBytes),
		service:        svc,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleHash handles POST /api/hash/{algorithm} requests.
func (h *HashHandler) HandleHash(w http.ResponseWriter, r *http.Request) {
	var req model.TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Hash(chi.URLParam(r, "algorithm"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleHashAll handles POST /api/hash/all requests.
func (h *HashHandler) HandleHashAll(w http.ResponseWriter, r *http.Request) {
	var req model.TextRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.HashAll(req))
}

// HandleHashFile handles POST /api/hash/file requests. The upload is read
// once, front to back, without buffering. The algorithm comes from the
// "algorithm" query parameter or a form field sent before the file.
func (h *HashHandler) HandleHashFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	defer r.Body.Close()

	mr, err := r.MultipartReader()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(errNotMultipart.Error()))
		return
	}

	algorithm := r.URL.Query().Get("algorithm")
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, errorResponse(errFileRequired.Error()))
			return
		}
		if err != nil {
			h.uploadFailed(w, r, err)
			return
		}

		switch part.FormName() {
		case "algorithm":
			if algorithm == "" {
				b, err := io.ReadAll(io.LimitReader(part, maxAlgorithmName))
				if err != nil {
					part.Close()
					h.uploadFailed(w, r, err)
					return
				}
				algorithm = string(b)
			}
			part.Close()
		case "file":
			resp, err := h.service.HashFile(algorithm, part.FileName(), part)
			part.Close()
			if err != nil {
				h.uploadFailed(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, resp)
			return
		default:
			part.Close()
		}
	}
}

func (h *HashHandler) uploadFailed(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("file too large"))
		return
	}
	if isClientError(err) {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse("malformed multipart body"))
}

// HandleArgon2 handles POST /api/hash/argon2 requests.
func (h *HashHandler) HandleArgon2(w http.ResponseWriter, r *http.Request) {
	var req model.TextRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.HashPassword(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleArgon2Verify handles POST /api/hash/argon2/verify requests.
func (h *HashHandler) HandleArgon2Verify(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordVerifyRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.service.VerifyPassword(req))
}
