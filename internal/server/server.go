// Package server provides the HTTP API in front of the resume pipeline.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/c4soto/resumemate/internal/audit"
	"github.com/c4soto/resumemate/internal/extractor"
	"github.com/c4soto/resumemate/internal/jobsearch"
	"github.com/c4soto/resumemate/internal/letters"
	"github.com/c4soto/resumemate/internal/skills"
	"github.com/c4soto/resumemate/internal/store"
)

// maxUploadBytes bounds resume uploads. Real resumes are well under this.
const maxUploadBytes = 16 << 20

type Server struct {
	logger    *zap.Logger
	extractor *extractor.Extractor
	skills    *skills.Extractor
	store     store.Store
	jobs      *jobsearch.Service
	letters   letters.Generator
}

func New(logger *zap.Logger, extractorSkills *skills.Extractor, resumeStore store.Store, jobs *jobsearch.Service, generator letters.Generator) *Server {
	return &Server{
		logger:    logger,
		extractor: extractor.New(logger),
		skills:    extractorSkills,
		store:     resumeStore,
		jobs:      jobs,
		letters:   generator,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /upload-resume", s.handleUploadResume)
	mux.HandleFunc("POST /extract-skills", s.handleExtractSkills)
	mux.HandleFunc("POST /audit-resume", s.handleAuditResume)
	mux.HandleFunc("GET /jobs", s.handleJobs)
	mux.HandleFunc("POST /cover-letter", s.handleCoverLetter)
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Run serves the API until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("serving http api", zap.String("addr", addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "Некорректный запрос: ожидается файл резюме")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Файл резюме обязателен")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Не удалось прочитать файл")
		return
	}

	text, err := s.extractor.Extract(data, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extractor.ErrUnsupportedFormat):
			s.writeError(w, http.StatusBadRequest, "Поддерживаются только PDF и DOCX файлы")
		case errors.Is(err, extractor.ErrCorruptDocument):
			s.writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Ошибка при обработке файла: %v", err))
		default:
			s.logger.Error("resume extraction failed", zap.String("filename", header.Filename), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "Ошибка при обработке файла")
		}
		return
	}

	extracted := s.skills.Extract(text)
	id := s.store.Save(store.Record{
		Text:     text,
		Skills:   extracted,
		Filename: header.Filename,
	})

	s.logger.Info("resume processed",
		zap.String("resume_id", id),
		zap.String("filename", header.Filename),
		zap.Int("skills", len(extracted)),
	)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"resume_id":   id,
		"skills":      extracted,
		"text_length": runeLength(text),
		"message":     "Резюме успешно обработано",
	})
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "Текст резюме обязателен")
		return
	}

	extracted := s.skills.Extract(req.Text)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"skills": extracted,
		"count":  len(extracted),
	})
}

func (s *Server) handleAuditResume(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResumeID string `json:"resume_id"`
		Text     string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	if req.ResumeID == "" && req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "Текст резюме обязателен")
		return
	}

	text, extracted, ok := s.resolveResume(req.ResumeID, req.Text)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Резюме не найдено")
		return
	}

	s.writeJSON(w, http.StatusOK, audit.Audit(text, extracted))
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("resume_id")
	record, ok := s.store.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Резюме не найдено")
		return
	}

	external := r.URL.Query().Get("external") == "true"
	postings := s.jobs.Search(r.Context(), record.Skills, external)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  postings,
		"count": len(postings),
	})
}

func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResumeID string `json:"resume_id"`
		JobIndex int    `json:"job_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	record, ok := s.store.Get(req.ResumeID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Резюме не найдено")
		return
	}

	postings := s.jobs.Search(r.Context(), record.Skills, false)
	if req.JobIndex < 0 || req.JobIndex >= len(postings) {
		s.writeError(w, http.StatusBadRequest, "Вакансия с таким номером не найдена")
		return
	}
	posting := postings[req.JobIndex]

	letter, err := s.letters.Generate(r.Context(), record.Text, record.Skills, posting)
	if err != nil {
		s.logger.Error("cover letter generation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Ошибка при генерации письма")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"letter":  letter,
		"title":   posting.Title,
		"company": posting.Company,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "ResumeMate API",
	})
}

// resolveResume prefers the stored resume when an id is given; otherwise the
// inline text is analyzed on the fly. Returns ok=false for an unknown id.
func (s *Server) resolveResume(id, text string) (string, []string, bool) {
	if id != "" {
		record, ok := s.store.Get(id)
		if !ok {
			return "", nil, false
		}
		return record.Text, record.Skills, true
	}

	return text, s.skills.Extract(text), true
}

func runeLength(s string) int {
	return utf8.RuneCountInString(s)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, map[string]string{"detail": detail})
}
