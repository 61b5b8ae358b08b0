package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/drivelinehq/driver-profile-api/internal/pdf"
	"github.com/drivelinehq/driver-profile-api/internal/profile"
	"github.com/drivelinehq/driver-profile-api/internal/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": s.serviceName,
		"version": s.version,
	})
}

// handleUpload accepts a multipart PDF upload, runs the extraction pipeline,
// and stores the assembled profile. The uploaded file is written to a
// temporary path and removed on every exit path.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxFileSize); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.writeError(w, http.StatusBadRequest, "only PDF files are accepted")
		return
	}

	tmpPath, err := s.saveUpload(file)
	if err != nil {
		s.logger.Error("saving upload", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to save upload")
		return
	}
	defer os.Remove(tmpPath)

	result, err := s.parser.Parse(tmpPath)
	if err != nil {
		var extractErr *pdf.ExtractionError
		if errors.As(err, &extractErr) {
			s.writeError(w, http.StatusUnprocessableEntity, "no text could be extracted from the document")
			return
		}
		s.logger.Error("parsing upload",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, "failed to parse document")
		return
	}
	result.Metadata.SourceFile = header.Filename

	p := profile.Assemble(result)
	p.Metadata.Filename = header.Filename

	doc, err := p.ToJSONSafe()
	if err != nil {
		s.logger.Error("serializing profile", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to serialize profile")
		return
	}

	if err := s.store.Insert(r.Context(), summaryOf(p), doc); err != nil {
		s.logger.Error("storing profile", zap.String("driver_id", p.DriverID), zap.Error(err))
		// Extraction succeeded; return it so the caller can retry storage.
		s.writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "failed to store profile",
			"profile": doc,
		})
		return
	}

	s.logger.Info("profile created",
		zap.String("driver_id", p.DriverID),
		zap.String("profile_id", p.ProfileID),
		zap.String("risk_level", p.Risk.Level),
		zap.Float64("confidence", p.Metadata.ConfidenceScore),
	)
	s.writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) saveUpload(src io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", eris.Wrap(err, "creating upload directory")
	}
	tmp, err := os.CreateTemp(s.uploadDir, "upload-*.pdf")
	if err != nil {
		return "", eris.Wrap(err, "creating temp file")
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", eris.Wrap(err, "writing upload")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", eris.Wrap(err, "closing upload")
	}
	return tmp.Name(), nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 100)
	if limit > 100 {
		limit = 100
	}
	filter := storage.ListFilter{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: queryInt(r, "offset", 0),
	}
	summaries, err := s.store.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("listing profiles", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	if summaries == nil {
		summaries = []storage.Summary{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"profiles": summaries,
		"count":    len(summaries),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")
	record, err := s.store.GetByID(r.Context(), driverID)
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		s.logger.Error("fetching profile", zap.String("driver_id", driverID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	s.writeJSON(w, http.StatusOK, record.Document)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	summaries, err := s.store.Search(r.Context(), q, queryInt(r, "limit", 50))
	if err != nil {
		s.logger.Error("searching profiles", zap.String("query", q), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to search profiles")
		return
	}
	if summaries == nil {
		summaries = []storage.Summary{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"query":    q,
		"profiles": summaries,
		"count":    len(summaries),
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !profile.ValidStatus(req.Status) {
		s.writeError(w, http.StatusBadRequest, "invalid status value")
		return
	}

	err := s.store.UpdateStatus(r.Context(), driverID, req.Status)
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		s.logger.Error("updating status", zap.String("driver_id", driverID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"driver_id":  driverID,
		"status":     req.Status,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Statistics(r.Context())
	if err != nil {
		s.logger.Error("computing statistics", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func summaryOf(p *profile.Profile) storage.Summary {
	return storage.Summary{
		DriverID:        p.DriverID,
		ProfileID:       p.ProfileID,
		FullName:        p.Personal.FullName,
		Email:           p.Personal.Email,
		Phone:           p.Personal.Phone,
		RiskLevel:       p.Risk.Level,
		RiskScore:       p.Risk.Score,
		ConfidenceScore: p.Metadata.ConfidenceScore,
		Status:          p.Status,
		Filename:        p.Metadata.Filename,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
