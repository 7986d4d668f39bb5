package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
	"go.uber.org/zap"
)

// UploadField is the multipart form field carrying the résumé file.
const UploadField = "resume"

// handleCheckResume extracts the uploaded résumé and returns the best matching role.
func (s *Server) handleCheckResume(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	data, filename, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, logger, err)
		return
	}
	logger = logger.With(zap.String(observability.FieldFilename, filename))

	if !extraction.SupportedExtension(filename) {
		s.fail(w, logger, &ErrUnsupportedFile{Filename: filename, Reason: "extension not allowed"})
		return
	}

	text := s.extract(data, filename)
	if strings.TrimSpace(text) == "" {
		s.fail(w, logger, &ErrUnsupportedFile{Filename: filename, Reason: "no extractable text"})
		return
	}
	logger.Debug("extracted resume text",
		zap.Int("bytes", len(data)),
		zap.String("preview", observability.TruncateForLog(text, 80)))

	result, err := s.analyze(text)
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	logger.Info("resume matched",
		zap.String("best_role", result.BestRole),
		zap.Float64("score", result.Score),
		zap.Strings("recommend_next", result.RecommendNext))
	s.jsonResponse(w, http.StatusOK, result.Response())
}

// readUpload streams the multipart body and returns the first "resume" file
// part. The body is capped at maxUploadBytes and held only in memory.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	if r.ContentLength > s.maxUploadBytes {
		return nil, "", &ErrFileTooLarge{Limit: s.maxUploadBytes}
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, "", &ErrNoFile{}
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, "", &ErrNoFile{}
		}
		if err != nil {
			return nil, "", s.uploadError(err)
		}

		if part.FormName() != UploadField || part.FileName() == "" {
			_ = part.Close()
			continue
		}

		filename := part.FileName()
		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return nil, "", s.uploadError(err)
		}
		return data, filename, nil
	}
}

// uploadError maps a body read failure to the size cap or a missing file.
func (s *Server) uploadError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return &ErrFileTooLarge{Limit: maxErr.Limit}
	}
	return &ErrNoFile{}
}

// analyze runs the matcher, converting errors and panics into *InternalError.
func (s *Server) analyze(text string) (result *types.MatchResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = &InternalError{Cause: fmt.Errorf("panic: %v", rec)}
		}
	}()

	result, err = s.match(text, s.catalog)
	if err != nil {
		return nil, &InternalError{Cause: err}
	}
	if result == nil {
		return nil, &InternalError{Cause: errors.New("matcher returned no result")}
	}
	return result, nil
}

// fail logs err at a level matching its status and writes the client message.
func (s *Server) fail(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("resume analysis failed", zap.Error(err))
	} else {
		logger.Info("resume rejected", zap.Int("status", status), zap.Error(err))
	}
	s.errorResponse(w, status, ClientMessage(err))
}

// handleListRoles returns the catalog in order with each role's ordered skills.
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	summaries := s.catalog.Summaries()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roles": summaries,
		"count": len(summaries),
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"roles":  s.catalog.Len(),
	})
}
