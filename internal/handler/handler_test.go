package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/toolvia/toolvia-go/internal/crypto"
	"github.com/toolvia/toolvia-go/internal/model"
	"github.com/toolvia/toolvia-go/internal/service"
)

func newHashHandler(maxUpload int64) *HashHandler {
	return NewHashHandler(service.NewHashService(crypto.DefaultArgon2Params()), zap.NewNop(), 1<<10, maxUpload)
}

func multipartBody(t *testing.T, fields map[string]string, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleHashFile(t *testing.T) {
	h := newHashHandler(1 << 20)

	body, contentType := multipartBody(t, map[string]string{"algorithm": "md5"}, "a.txt", "")
	req := httptest.NewRequest(http.MethodPost, "/api/hash/file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandleHashFile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp model.FileHashResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", resp.Hash)
	assert.Equal(t, "MD5", resp.Algorithm)
	assert.Equal(t, "a.txt", resp.FileName)
	assert.Zero(t, resp.Size)
}

func TestHandleHashFile_DefaultsToSHA256(t *testing.T) {
	h := newHashHandler(1 << 20)

	body, contentType := multipartBody(t, nil, "abc.bin", "abc")
	req := httptest.NewRequest(http.MethodPost, "/api/hash/file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandleHashFile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hash":"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"`)
	assert.Contains(t, rec.Body.String(), `"size":3`)
}

func TestHandleHashFile_QueryAlgorithm(t *testing.T) {
	h := newHashHandler(1 << 20)

	body, contentType := multipartBody(t, nil, "abc.bin", "abc")
	req := httptest.NewRequest(http.MethodPost, "/api/hash/file?algorithm=sha1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandleHashFile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"algorithm":"SHA-1"`)
}

func TestHandleHashFile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		maxUpload  int64
		build      func(t *testing.T) (*bytes.Buffer, string)
		wantStatus int
	}{
		{"not multipart", 1 << 20, func(t *testing.T) (*bytes.Buffer, string) {
			return bytes.NewBufferString(`{"input":"x"}`), "application/json"
		}, http.StatusBadRequest},
		{"missing file", 1 << 20, func(t *testing.T) (*bytes.Buffer, string) {
			return multipartBody(t, map[string]string{"algorithm": "md5"}, "", "")
		}, http.StatusBadRequest},
		{"unknown algorithm", 1 << 20, func(t *testing.T) (*bytes.Buffer, string) {
			return multipartBody(t, map[string]string{"algorithm": "crc32"}, "a.txt", "abc")
		}, http.StatusBadRequest},
		{"too large", 512, func(t *testing.T) (*bytes.Buffer, string) {
			return multipartBody(t, nil, "big.txt", strings.Repeat("x", 4096))
		}, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := tt.build(t)
			req := httptest.NewRequest(http.MethodPost, "/api/hash/file", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			newHashHandler(tt.maxUpload).HandleHashFile(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error":`)
		})
	}
}

func TestDecode_BodyTooLarge(t *testing.T) {
	h := newHashHandler(1 << 20)
	r := chi.NewRouter()
	r.Post("/api/hash/{algorithm}", h.HandleHash)

	body := `{"input":"` + strings.Repeat("a", 2<<10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/hash/md5", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"request body too large"}`, rec.Body.String())
}

func TestDecode_EmptyBodyUsesDefaults(t *testing.T) {
	h := NewGeneratorHandler(service.NewGeneratorService(), zap.NewNop(), 1<<10)

	req := httptest.NewRequest(http.MethodPost, "/api/generator/password", http.NoBody)
	rec := httptest.NewRecorder()
	h.HandlePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.PasswordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 16)
}

func TestFormatHandler_ReturnsMarkupUnescaped(t *testing.T) {
	h := NewFormatHandler(service.NewFormatService(), zap.NewNop(), 1<<10)

	req := httptest.NewRequest(http.MethodPost, "/api/format/xml/minify", strings.NewReader(`{"input":"<a>\n <b>&amp;</b>\n</a>"}`))
	rec := httptest.NewRecorder()
	h.HandleXMLMinify()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"output":"<a><b>&amp;</b></a>","isValid":true}`, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "<a><b>&amp;</b></a>")
}

func TestFail_LogsInternalErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	rs := newResponder(zap.New(core), 1<<10)

	req := httptest.NewRequest(http.MethodPost, "/api/hash/md5", nil)
	rec := httptest.NewRecorder()
	rs.fail(rec, req, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "disk on fire", logs.All()[0].ContextMap()["error"])
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"result": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestIsClientError(t *testing.T) {
	assert.True(t, isClientError(crypto.ErrNoCharacterTypes))
	assert.True(t, isClientError(service.ErrInputRequired))
	assert.False(t, isClientError(errors.New("boom")))
	assert.False(t, isClientError(nil))
}
