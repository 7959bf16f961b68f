package devserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter serves the store's collections:
//
//	GET /destinosPopulares       GET /destinosPopulares/{id}
//	GET /recomendados            GET /recomendados/{id}
func NewRouter(store *Store, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	for _, name := range []string{CollectionPopular, CollectionRecommended} {
		h := &collectionHandler{store: store, name: name}
		r.Get("/"+name, h.list)
		r.Get("/"+name+"/{id}", h.get)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, struct{}{})
	})
	return r
}

type collectionHandler struct {
	store *Store
	name  string
}

func (h *collectionHandler) list(w http.ResponseWriter, _ *http.Request) {
	items, _ := h.store.List(h.name)
	writeJSON(w, http.StatusOK, items)
}

func (h *collectionHandler) get(w http.ResponseWriter, r *http.Request) {
	d, ok := h.store.Get(h.name, chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			if logger == nil {
				return
			}
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
