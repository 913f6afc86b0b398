package httpd

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mouessam/localstack-ses-admin/internal/apperr"
)

// spaHandler serves the compiled browser bundle. Unmatched GET routes
// outside the API prefix fall back to the bundle's entry document
// (history-mode routing); API misses and non-GET misses get a structured
// 404 body.
type spaHandler struct {
	root string
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
		writeError(w, r, apperr.NotFound("Route not found"))
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, r, apperr.NotFound("Route not found"))
		return
	}

	name := filepath.Join(h.root, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.root, "index.html"))
}
