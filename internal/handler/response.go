package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/codec"
	"github.com/toolvia/toolvia-go/internal/convert"
	"github.com/toolvia/toolvia-go/internal/crypto"
	"github.com/toolvia/toolvia-go/internal/format"
	"github.com/toolvia/toolvia-go/internal/generator"
	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/qrcode"
	"github.com/toolvia/toolvia-go/internal/service"
)

// responder holds what every handler needs to decode requests and report
// failures.
type responder struct {
	log          *zap.Logger
	maxBodyBytes int64
}

func newResponder(log *zap.Logger, maxBodyBytes int64) responder {
	if log == nil {
		log = zap.NewNop()
	}
	return responder{log: log, maxBodyBytes: maxBodyBytes}
}

// decode reads a JSON body into v. An empty body leaves v at its zero value.
// It writes the error response itself and reports whether to continue.
func (rs responder) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, rs.maxBodyBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return true
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
	case errors.Is(err, model.ErrInvalidNumber):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
	}
	return false
}

// fail maps err onto 400 for malformed requests and 500 otherwise.
func (rs responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isClientError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	rs.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("uri", r.RequestURI),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

var clientErrors = []error{
	convert.ErrUnknownCategory,
	convert.ErrUnknownUnit,
	convert.ErrUnsupportedOption,
	convert.ErrInvalidNumberLiteral,
	convert.ErrResultOutOfRange,
	codec.ErrUnsupportedCodec,
	crypto.ErrUnsupportedAlgorithm,
	crypto.ErrLengthTooShort,
	crypto.ErrLengthTooLong,
	crypto.ErrNoCharacterTypes,
	format.ErrInvalidIndent,
	generator.ErrInvalidCount,
	generator.ErrUnsupportedLoremType,
	qrcode.ErrEmptyContent,
	qrcode.ErrInvalidSize,
	qrcode.ErrInvalidColor,
	qrcode.ErrInvalidErrorLevel,
	qrcode.ErrContentDoesNotFit,
	qrcode.ErrSizeTooSmallForSymbol,
	service.ErrInputRequired,
}

func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeJSON leaves <, > and & unescaped since formatted markup is returned verbatim.
// The body is encoded before the status is written so an unencodable value
// becomes a 500 instead of an empty response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		buf.Reset()
		enc.Encode(errorResponse("internal server error"))
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// HandleHealth handles GET /health requests.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}
