// Package rest exposes the resolution and similarity services over a
// chi HTTP API.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/domain/simquery"
	resolveuc "github.com/ayatlab/verseref/internal/usecase/resolve"
	similaruc "github.com/ayatlab/verseref/internal/usecase/similar"
	versesuc "github.com/ayatlab/verseref/internal/usecase/verses"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest        = "bad_request"
	codeInputTooShort     = "input_too_short"
	codeInvalidReference  = "invalid_reference"
	codeVerseNotFound     = "verse_not_found"
	codeCorpusUnavailable = "corpus_unavailable"
	codeInternalError     = "internal_error"
)

const maxResolveQueryBytes = 4 << 10

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes HTTP requests to the use case services.
type Server struct {
	resolve       *resolveuc.Service
	similar       *similaruc.Service
	verses        *versesuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	resolve *resolveuc.Service,
	similar *similaruc.Service,
	verses *versesuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		resolve: resolve,
		similar: similar,
		verses:  verses,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInputTooShort, http.StatusBadRequest, codeInputTooShort),
		sentinelHandler(domain.ErrInvalidReference, http.StatusBadRequest, codeInvalidReference),
		sentinelHandler(domain.ErrVerseNotFound, http.StatusNotFound, codeVerseNotFound),
		sentinelHandler(domain.ErrCorpusUnavailable, http.StatusServiceUnavailable, codeCorpusUnavailable),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/resolve", s.handleResolve)
	r.Get("/v1/verses/{surah}/{ayah}/similar", s.handleSimilar)
	r.Get("/v1/verses/{surah}/{ayah}", s.handleVerse)
	r.Get("/v1/surahs", s.handleSurahs)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

type resolveRequest struct {
	Query string `json:"query"`
}

// handleResolve handles POST /v1/resolve.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	body := http.MaxBytesReader(w, r.Body, maxResolveQueryBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.resolve.Resolve(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleSimilar handles GET /v1/verses/{surah}/{ayah}/similar.
func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	addr, ok := s.addressFromURL(w, r)
	if !ok {
		return
	}

	req, err := queryFromParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	resp, err := s.similar.Similar(r.Context(), addr, &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleVerse handles GET /v1/verses/{surah}/{ayah}.
func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	surah, err1 := strconv.Atoi(chi.URLParam(r, "surah"))
	ayah, err2 := strconv.Atoi(chi.URLParam(r, "ayah"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, codeInvalidReference, "surah and ayah must be integers")
		return
	}

	v, err := s.verses.Verse(r.Context(), surah, ayah)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// handleSurahs handles GET /v1/surahs.
func (s *Server) handleSurahs(w http.ResponseWriter, r *http.Request) {
	surahs, err := s.verses.Surahs(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"surahs": surahs})
}

// handleHealthz handles GET /healthz (liveness).
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz handles GET /readyz. The corpus loads before the server
// starts, so a running server is a ready server. The cache is optional
// and never gates readiness.
func (s *Server) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// addressFromURL parses {surah}/{ayah} and validates structural bounds.
func (s *Server) addressFromURL(w http.ResponseWriter, r *http.Request) (domain.VerseAddress, bool) {
	surah, err1 := strconv.Atoi(chi.URLParam(r, "surah"))
	ayah, err2 := strconv.Atoi(chi.URLParam(r, "ayah"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, codeInvalidReference, "surah and ayah must be integers")
		return domain.VerseAddress{}, false
	}
	addr, err := domain.NewVerseAddress(surah, ayah)
	if err != nil {
		s.handleDomainError(w, err)
		return domain.VerseAddress{}, false
	}
	return addr, true
}

// queryFromParams builds a similarity query from URL query parameters.
func queryFromParams(r *http.Request) (simquery.Request, error) {
	q := r.URL.Query()

	topK := 0
	if v := q.Get("top_k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return simquery.Request{}, errors.New("top_k must be an integer")
		}
		topK = n
	}

	minScore := 0.0
	if v := q.Get("min_score"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return simquery.Request{}, errors.New("min_score must be a number")
		}
		minScore = f
	}

	excludeSameSura := false
	if v := q.Get("exclude_same_sura"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return simquery.Request{}, errors.New("exclude_same_sura must be a boolean")
		}
		excludeSameSura = b
	}

	return simquery.New(topK, minScore, q.Get("theme"), q.Get("connection_type"), excludeSameSura)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInputTooShort,
		domain.ErrInvalidReference,
		domain.ErrVerseNotFound,
		domain.ErrCorpusUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
