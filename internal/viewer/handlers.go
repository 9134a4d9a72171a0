package viewer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ksalhi/refview/internal/refdoc"
)

// healthzResponse is the JSON response for the health endpoint.
type healthzResponse struct {
	Status   string `json:"status"`
	Snapshot string `json:"snapshot,omitempty"`
	Classes  int    `json:"classes"`
	Modules  int    `json:"modules"`
	Members  int    `json:"members"`
	LoadErr  string `json:"load_error,omitempty"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.doc == nil {
		writeJSON(w, http.StatusServiceUnavailable, healthzResponse{
			Status:  "degraded",
			LoadErr: s.loadErr.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthzResponse{
		Status:   "ok",
		Snapshot: s.doc.SnapshotID,
		Classes:  len(s.doc.Classes),
		Modules:  len(s.doc.Modules),
		Members:  s.doc.MemberCount(),
	})
}

// handleAPIDocument serves the whole normalized document. The snapshot ID is
// the ETag; the document never changes while the process lives, so a
// matching If-None-Match always short-circuits to 304.
func (s *Server) handleAPIDocument(w http.ResponseWriter, r *http.Request) {
	if s.doc == nil {
		s.writeUnavailable(w)
		return
	}

	etag := `"` + s.doc.SnapshotID + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, s.doc)
}

// itemResponse wraps one resolved item for the items endpoint.
type itemResponse struct {
	Kind refdoc.ItemKind `json:"kind"`
	Item refdoc.Item     `json:"item"`
}

func (s *Server) handleAPIItem(w http.ResponseWriter, r *http.Request) {
	if s.doc == nil {
		s.writeUnavailable(w)
		return
	}

	name := chi.URLParam(r, "name")
	item, ok := s.nav.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	writeJSON(w, http.StatusOK, itemResponse{Kind: item.ItemKind(), Item: item})
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	if s.doc == nil {
		s.writeUnavailable(w)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}

	limit := 10
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 50 {
		limit = l
	}

	mode := s.viewMode(r)
	results := s.index.Query(query, mode, limit)
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) writeUnavailable(w http.ResponseWriter) {
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "document unavailable: " + s.loadErr.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
