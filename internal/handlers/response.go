// internal/handlers/response.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

// maxJSONBody bounds request bodies that are not backup files.
const maxJSONBody = 64 << 10

// responder holds the JSON helpers shared by all handlers.
type responder struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func newResponder(logger *slog.Logger) responder {
	return responder{logger: logger, validate: newValidator()}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// decode reads a JSON body into dst and validates its struct tags.
func (h responder) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Validation failed",
				"fields": validationFields(verrs),
			})
			return false
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func validationFields(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// handleError maps store and storage errors to HTTP statuses.
func (h responder) handleError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var (
		verr *domain.ValidationError
		ierr *domain.IndexError
		ferr *domain.FormatError
	)

	switch {
	case errors.As(err, &verr):
		h.respondError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &ierr):
		h.respondError(w, http.StatusNotFound, ierr.Error())
	case errors.As(err, &ferr):
		h.respondError(w, http.StatusUnprocessableEntity, ferr.Error())
	case errors.Is(err, ports.ErrObjectNotFound):
		h.respondError(w, http.StatusNotFound, "Backup not found")
	case errors.Is(err, domain.ErrNotReady):
		h.respondError(w, http.StatusServiceUnavailable, "Inventory is not loaded yet")
	case errors.Is(err, ports.ErrStorageNotConfigured):
		h.respondError(w, http.StatusServiceUnavailable, "Backup storage is not configured")
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to %s", action))
	}
}

// persistenceWarning splits a save failure off err. The change it reports
// was applied in memory, so callers respond with success plus the warning.
func (h responder) persistenceWarning(r *http.Request, err error) (string, error) {
	var perr *domain.PersistenceError
	if err != nil && errors.As(err, &perr) {
		h.logger.WarnContext(r.Context(), "change applied but not saved",
			slog.String("key", perr.Key),
			slog.String("error", perr.Error()))
		return "Change applied but could not be saved: " + perr.Error(), nil
	}
	return "", err
}

// ParseBatchID parses a positive batch id from a path segment.
func ParseBatchID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id", Message: fmt.Sprintf("invalid batch id %q", s)}
	}
	return id, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &domain.ValidationError{Field: "index", Message: fmt.Sprintf("invalid category index %q", s)}
	}
	return i, nil
}
