package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

// envelope is the body of every API response. "success" is always set and
// the remaining keys carry the operation's data.
type envelope map[string]any

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func writeSuccess(w http.ResponseWriter, log *slog.Logger, status int, data envelope) {
	body := envelope{"success": true}
	for k, v := range data {
		body[k] = v
	}
	writeJSON(w, log, status, body)
}

func writeFailure(w http.ResponseWriter, log *slog.Logger, status int, message string) {
	writeJSON(w, log, status, envelope{"success": false, "error": message})
}

// writeError renders err with the status of its domain kind. Unexpected
// errors are logged and replaced by fallback so internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	kind := domain.KindOf(err)
	if kind == domain.KindUnexpected {
		log.ErrorContext(r.Context(), fallback,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeFailure(w, log, http.StatusInternalServerError, fallback)
		return
	}

	writeFailure(w, log, statusFor(kind), err.Error())
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes at most maxBodyBytes of the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}
