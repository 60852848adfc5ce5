package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"trendlink/internal/apperr"
)

// writeJSON encodes v with the given status. Encoding failures are logged,
// the header has already been sent by then.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError serializes a typed error into the standard envelope. Unknown
// errors become a 500 whose message is only exposed in dev mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		h.logger.Error("unexpected error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		message := "internal server error"
		if h.dev {
			message = err.Error()
		}
		appErr = apperr.Internal(message)
	}

	body := map[string]any{
		"success":    false,
		"error":      appErr.Kind,
		"message":    appErr.Message,
		"statusCode": appErr.Status,
		"timestamp":  appErr.Timestamp,
	}
	for k, v := range appErr.Details {
		body[k] = v
	}
	h.writeJSON(w, appErr.Status, body)
}

// decodeJSON parses the request body into dst, mapping malformed payloads
// to a validation error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}
