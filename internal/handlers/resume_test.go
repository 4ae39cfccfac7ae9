package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio_backend/internal/media"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/service"
)

func resumeUploadRequest(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("file-content")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestResumeHandlers_Upload(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	resume := &mockResume{uploadPath: "/uploads/resume.pdf"}
	s := &service.Service{Authorization: auth, Resume: resume}
	r := newTestRouter(s)

	// missing file part → 400
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resume", nil)
	req.Header = authHeader("good")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file, got %d", w.Code)
	}

	// success
	body, contentType := resumeUploadRequest(t, "cv.pdf")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/resume", body)
	req.Header = authHeader("good")
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["path"] != "/uploads/resume.pdf" {
		t.Fatalf("expected stored path in response, got %v", m)
	}
	if resume.lastUploadName != "cv.pdf" {
		t.Fatalf("service got wrong filename %q", resume.lastUploadName)
	}

	// rejected extension → 415
	resume.uploadErr = media.ErrUnsupportedMedia
	body, contentType = resumeUploadRequest(t, "cv.exe")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/resume", body)
	req.Header = authHeader("good")
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415 for rejected extension, got %d", w.Code)
	}
}

func TestResumeHandlers_Get(t *testing.T) {
	resume := &mockResume{}
	s := &service.Service{Resume: resume}
	r := newTestRouter(s)

	// no resume uploaded yet
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/resume", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["exists"] != false {
		t.Fatalf("expected exists=false, got %v", m)
	}
	if _, ok := m["path"]; ok {
		t.Fatalf("path must be omitted when no resume exists: %v", m)
	}

	// resume present
	resume.exists = true
	resume.current = "/uploads/resume.pdf"
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/resume", nil)
	r.ServeHTTP(w, req)
	m = map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["exists"] != true || m["path"] != "/uploads/resume.pdf" {
		t.Fatalf("expected exists=true with path, got %v", m)
	}
}

func TestResumeHandlers_Delete(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	resume := &mockResume{}
	s := &service.Service{Authorization: auth, Resume: resume}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/resume", nil)
	req.Header = authHeader("good")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d, body=%s", w.Code, w.Body.String())
	}

	resume.deleteErr = repository.ErrNotFound
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/resume", nil)
	req.Header = authHeader("good")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no resume exists, got %d", w.Code)
	}
}
