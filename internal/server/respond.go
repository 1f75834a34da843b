package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rpgo/wealth-planner/internal/apperr"
	"github.com/rpgo/wealth-planner/internal/config"
)

const maxBodyBytes = 1 << 20

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Warn("encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.FromError(err)
	entry := s.logger.WithField("code", appErr.Code).WithField("path", r.URL.Path)
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}
	if appErr.StatusCode >= http.StatusInternalServerError {
		entry.Error("request_error")
	} else {
		entry.Debug("request_error")
	}

	payload := map[string]any{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	s.respondJSON(w, appErr.StatusCode, payload)
}

// decode reads a JSON body into dst.
func decode(r *http.Request, dst any) error {
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return apperr.ErrBadRequest.WithError(err).WithDetails(map[string]any{
			"reason": fmt.Sprintf("malformed JSON body: %v", err),
		})
	}
	return nil
}

// validationError maps boundary failures to a 400 and passes anything else through.
func validationError(err error) error {
	if errors.Is(err, config.ErrInvalidInput) {
		return apperr.FromValidation(err)
	}
	return err
}
