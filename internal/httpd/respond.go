package httpd

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mouessam/localstack-ses-admin/internal/apperr"
)

// errorBody is the error envelope for any non-2xx API response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError is the single point translating error kind into status and
// body. Typed application errors map onto their code and status; anything
// else is logged with full detail and reported generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := apperr.As(err); ok {
		writeJSON(w, appErr.Status, errorBody{Error: appErr.Code, Message: appErr.Message})
		return
	}

	slog.Error("unexpected error",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Error:   apperr.CodeInternal,
		Message: "Unexpected error",
	})
}
