package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/media"
)

// ======================================================
// FAKES
// ======================================================

type fakeSigner struct {
	configured bool
	lastReq    media.SignRequest
}

func (f *fakeSigner) Configured() bool { return f.configured }

func (f *fakeSigner) AuthorizeUpload(req media.SignRequest) (*media.UploadAuthorization, error) {
	if !f.configured {
		return nil, httperr.ErrBusiness("media_not_configured")
	}
	f.lastReq = req
	return &media.UploadAuthorization{
		Timestamp: 1749550000,
		Signature: "sig",
		APIKey:    "key",
		CloudName: "monday",
		Folder:    req.Folder,
	}, nil
}

type fakeStore struct {
	keys    []string
	failAll bool
}

func (f *fakeStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if f.failAll {
		return "", fmt.Errorf("storage unreachable")
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func mediaRouter(signer media.Signer, store media.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewMediaHandler(signer, store, media.NewCompressor(), "monday-nail/work-images", zap.NewNop())

	r := gin.New()
	r.POST("/api/cloudinary/signature", h.Signature)
	r.POST("/api/uploads", h.Upload)
	return r
}

func multipartImages(t *testing.T, contentType string, count int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i := 0; i < count; i++ {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="images"; filename="img%d.png"`, i))
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte("image-bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

// ======================================================
// TESTS
// ======================================================

func TestSignatureEndpoint(t *testing.T) {
	signer := &fakeSigner{configured: true}
	r := mediaRouter(signer, &fakeStore{})

	body := `{"folder": "custom", "tags": ["nails"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/cloudinary/signature", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if signer.lastReq.Folder != "custom" || len(signer.lastReq.Tags) != 1 {
		t.Errorf("request not forwarded: %+v", signer.lastReq)
	}

	var auth media.UploadAuthorization
	if err := json.Unmarshal(w.Body.Bytes(), &auth); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if auth.Signature == "" || auth.CloudName != "monday" {
		t.Errorf("unexpected auth: %+v", auth)
	}
}

func TestSignatureEndpointEmptyBody(t *testing.T) {
	signer := &fakeSigner{configured: true}
	r := mediaRouter(signer, &fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/cloudinary/signature", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("empty body should sign with defaults, got %d", w.Code)
	}
}

func TestSignatureEndpointUnconfigured(t *testing.T) {
	r := mediaRouter(&fakeSigner{}, &fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/cloudinary/signature", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "media_not_configured") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUploadRelaysImages(t *testing.T) {
	store := &fakeStore{}
	r := mediaRouter(&fakeSigner{configured: true}, store)

	body, contentType := multipartImages(t, "image/png", 2)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		URLs   []string `json:"urls"`
		Failed int      `json:"failed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.URLs) != 2 || resp.Failed != 0 {
		t.Errorf("unexpected response: %s", w.Body.String())
	}
	for _, key := range store.keys {
		if !strings.HasPrefix(key, "monday-nail/work-images/") {
			t.Errorf("key %q not under upload folder", key)
		}
		if !strings.HasSuffix(key, ".png") {
			t.Errorf("key %q should keep the source extension", key)
		}
	}
}

func TestUploadRejectsEmptyAndOversizedBatches(t *testing.T) {
	r := mediaRouter(&fakeSigner{configured: true}, &fakeStore{})

	body, contentType := multipartImages(t, "image/png", 0)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "no_images") {
		t.Errorf("empty batch: %d %s", w.Code, w.Body.String())
	}

	body, contentType = multipartImages(t, "image/png", 6)
	req = httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "too_many_images") {
		t.Errorf("oversized batch: %d %s", w.Code, w.Body.String())
	}
}

func TestUploadRejectsNonImages(t *testing.T) {
	r := mediaRouter(&fakeSigner{configured: true}, &fakeStore{})

	body, contentType := multipartImages(t, "application/pdf", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "upload_failed") {
		t.Errorf("non-image batch: %d %s", w.Code, w.Body.String())
	}
}

func TestUploadReportsPartialFailure(t *testing.T) {
	store := &fakeStore{failAll: true}
	r := mediaRouter(&fakeSigner{configured: true}, store)

	body, contentType := multipartImages(t, "image/png", 2)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Every relay failing is a hard error, not degraded success.
	if w.Code != http.StatusInternalServerError {
		t.Errorf("all-failed batch: %d %s", w.Code, w.Body.String())
	}
}
