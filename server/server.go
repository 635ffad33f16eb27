// Package server exposes the chord and scale engine over HTTP for the
// browser fretboard.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/store"
)

type Server struct {
	store  store.Store
	index  *chord.Index
	board  fretboard.Options
	logger *slog.Logger
}

type Options struct {
	Store  store.Store
	Frets  int
	Logger *slog.Logger
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	st := opts.Store
	if st == nil {
		st = store.NewMemory()
	}
	return &Server{
		store:  st,
		index:  chord.NewIndex(),
		board:  fretboard.Options{Frets: opts.Frets},
		logger: logger,
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/chords/{root}/{quality}", s.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/scales/{root}/{mode}", s.handleScale).Methods(http.MethodGet)
	router.HandleFunc("/scales/{root}/{mode}/diatonic", s.handleDiatonic).Methods(http.MethodGet)
	router.HandleFunc("/scales/{root}/{mode}/diatonic/{degree}", s.handleDiatonicChord).Methods(http.MethodGet)
	router.HandleFunc("/compare", s.handleCompare).Methods(http.MethodPost)
	router.HandleFunc("/identify", s.handleIdentify).Methods(http.MethodPost)
	router.HandleFunc("/selections/{view}", s.handleGetSelection).Methods(http.MethodGet)
	router.HandleFunc("/selections/{view}", s.handlePutSelection).Methods(http.MethodPut)
	return router
}

// Handler wraps the router with CORS for the given origins.
func Handler(s *Server, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.Router())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// isInvalidSelection reports whether err comes from rejecting a root,
// quality, mode or interval the client sent.
func isInvalidSelection(err error) bool {
	var (
		note     *pitch.UnknownNoteNameError
		symbol   *interval.InvalidIntervalSymbolError
		quality  *chord.UnknownQualityError
		mode     *scale.UnknownModeError
		selector *invalidSelectionError
	)
	return errors.As(err, &note) || errors.As(err, &symbol) || errors.As(err, &quality) ||
		errors.As(err, &mode) || errors.As(err, &selector)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case isInvalidSelection(err):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}
