package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/c4soto/resumemate/internal/jobsearch"
	"github.com/c4soto/resumemate/internal/letters"
	"github.com/c4soto/resumemate/internal/skills"
	"github.com/c4soto/resumemate/internal/store"
)

func newTestServer() (*Server, *store.Memory) {
	memory := store.NewMemory(0)
	return New(
		zap.NewNop(),
		skills.New(),
		memory,
		jobsearch.NewService(nil, zap.NewNop()),
		letters.NewTemplateGenerator(),
	), memory
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["status"] != "healthy" || body["service"] != "ResumeMate API" {
		t.Fatalf("unexpected payload: %v", body)
	}
}

func TestExtractSkills(t *testing.T) {
	s, _ := newTestServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/extract-skills",
		strings.NewReader(`{"text": "Python и Docker, опыт работы 3 года"}`))
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Skills []string `json:"skills"`
		Count  int      `json:"count"`
	}
	decode(t, rec, &body)

	if body.Count != len(body.Skills) || body.Count != 3 {
		t.Fatalf("unexpected skills: %v", body)
	}
}

func TestExtractSkillsRequiresText(t *testing.T) {
	s, _ := newTestServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/extract-skills", strings.NewReader(`{"text": ""}`))
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["detail"] != "Текст резюме обязателен" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

func TestUploadResumeRejectsUnsupportedSuffix(t *testing.T) {
	s, _ := newTestServer()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, _ := w.CreateFormFile("file", "resume.txt")
	part.Write([]byte("plain text resume"))
	w.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["detail"] != "Поддерживаются только PDF и DOCX файлы" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

func TestUploadResumeRejectsCorruptPDF(t *testing.T) {
	s, _ := newTestServer()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, _ := w.CreateFormFile("file", "resume.pdf")
	part.Write([]byte("not really a pdf"))
	w.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuditResumeWithInlineText(t *testing.T) {
	s, _ := newTestServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/audit-resume", strings.NewReader(`{"text": "короткое резюме"}`))
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		OverallScore    int      `json:"overall_score"`
		Grade           string   `json:"grade"`
		Recommendations []string `json:"recommendations"`
	}
	decode(t, rec, &body)

	if body.OverallScore != 50 || body.Grade != "E" {
		t.Fatalf("unexpected report: %+v", body)
	}
	if len(body.Recommendations) == 0 {
		t.Fatalf("expected recommendations")
	}
}

func TestAuditResumeRequiresInput(t *testing.T) {
	s, _ := newTestServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/audit-resume", strings.NewReader(`{}`))
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuditResumeUnknownID(t *testing.T) {
	s, _ := newTestServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/audit-resume", strings.NewReader(`{"resume_id": "resume_99"}`))
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestJobsForStoredResume(t *testing.T) {
	s, memory := newTestServer()
	id := memory.Save(store.Record{Text: "резюме", Skills: []string{"Python"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs?resume_id="+id, nil)
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Jobs  []*jobsearch.Posting `json:"jobs"`
		Count int                  `json:"count"`
	}
	decode(t, rec, &body)

	if body.Count != 3 || len(body.Jobs) != 3 {
		t.Fatalf("expected the 3 fixture postings, got %+v", body)
	}
	if body.Jobs[0].MatchScore != 100 {
		t.Fatalf("expected scored postings, got %+v", body.Jobs[0])
	}
}

func TestJobsUnknownResume(t *testing.T) {
	s, _ := newTestServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs?resume_id=resume_404", nil)
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCoverLetter(t *testing.T) {
	s, memory := newTestServer()
	id := memory.Save(store.Record{Text: "резюме", Skills: []string{"Python"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cover-letter",
		strings.NewReader(`{"resume_id": "`+id+`", "job_index": 0}`))
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["title"] != "Senior Python Developer" {
		t.Fatalf("unexpected title: %q", body["title"])
	}
	if !strings.Contains(body["letter"], "TechCorp Inc.") {
		t.Fatalf("expected company in letter: %q", body["letter"])
	}
}

func TestCoverLetterIndexOutOfRange(t *testing.T) {
	s, memory := newTestServer()
	id := memory.Save(store.Record{Text: "резюме", Skills: []string{"Python"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cover-letter",
		strings.NewReader(`{"resume_id": "`+id+`", "job_index": 9}`))
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(target); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}
