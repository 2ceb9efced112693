package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/acmartinr/liveup/internal/upload"
)

func wavBytes(n int) []byte {
	b := make([]byte, 12+n)
	copy(b[0:4], "RIFF")
	copy(b[8:12], "WAVE")
	return b
}

func uploadRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newUploadRouter(t *testing.T, maxBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := upload.NewStore(t.TempDir(), maxBytes, PublicFilesPath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	r := gin.New()
	r.POST("/api/upload", handleUpload(store))
	return r
}

func TestUploadAudio(t *testing.T) {
	r := newUploadRouter(t, 1<<20)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "file", "take1.wav", wavBytes(256)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if !strings.HasPrefix(resp.URL, PublicFilesPath+"/") {
		t.Fatalf("unexpected url: %q", resp.URL)
	}
}

func TestUploadRejectsNonAudio(t *testing.T) {
	r := newUploadRouter(t, 1<<20)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "file", "notes.txt", []byte("plain text, not audio")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestUploadRejectsOversize(t *testing.T) {
	r := newUploadRouter(t, 64)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "file", "big.wav", wavBytes(1024)))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestUploadMissingField(t *testing.T) {
	r := newUploadRouter(t, 1<<20)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "wrong_field", "take1.wav", wavBytes(16)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
