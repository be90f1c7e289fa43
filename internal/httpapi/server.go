// Package httpapi exposes the search service over HTTP. The search flow is
// designed to always answer 2xx with a best-effort result; only the
// supplemental report endpoints may error.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/joelkehle/patent-search/internal/patents"
)

const ServiceName = "epo"

// Searcher is the orchestrator surface the API needs.
type Searcher interface {
	Search(ctx context.Context, query string, page, size int) patents.SearchResult
	Mode() string
}

// ReportWriter renders a search result page as HTML and PDF for the
// supplemental export endpoints.
type ReportWriter interface {
	HTML(query string, res patents.SearchResult) (string, error)
	PDF(ctx context.Context, query string, res patents.SearchResult) ([]byte, error)
}

type Server struct {
	searcher Searcher
	reports  ReportWriter
	version  string
}

func NewServer(searcher Searcher, reports ReportWriter, version string) http.Handler {
	s := &Server{searcher: searcher, reports: reports, version: version}
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/search/report", s.handleReport)
	mux.HandleFunc("/search/report.pdf", s.handleReportPDF)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func parseInt(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return v
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, 200, map[string]any{
		"status":  "ok",
		"service": ServiceName,
		"mode":    s.searcher.Mode(),
		"version": s.version,
	})
}

// queryParams reads q/page/size from either the query string (GET) or the
// JSON body (POST). Malformed values fall back to defaults rather than
// erroring; clamping happens in the orchestrator.
func (s *Server) queryParams(r *http.Request) (string, int, int, bool) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		return strings.TrimSpace(q.Get("q")), parseInt(q.Get("page"), 1), parseInt(q.Get("size"), patents.MaxPageSize), true
	case http.MethodPost:
		var req struct {
			Query string `json:"query"`
			Page  int    `json:"page"`
			Size  int    `json:"size"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		if req.Page == 0 {
			req.Page = 1
		}
		if req.Size == 0 {
			req.Size = patents.MaxPageSize
		}
		return strings.TrimSpace(req.Query), req.Page, req.Size, true
	default:
		return "", 0, 0, false
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, page, size, ok := s.queryParams(r)
	if !ok {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, 200, s.searcher.Search(r.Context(), query, page, size))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	res := s.searcher.Search(r.Context(), query, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), patents.MaxPageSize))

	html, err := s.reports.HTML(query, res)
	if err != nil {
		writeError(w, 500, "report rendering failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	res := s.searcher.Search(r.Context(), query, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), patents.MaxPageSize))

	pdf, err := s.reports.PDF(r.Context(), query, res)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "pdf rendering unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="patent-search-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
