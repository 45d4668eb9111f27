package handler

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// runtime endpoints, always present
	router.Group(func(r chi.Router) {
		r.Get("/_slipway/health", h.health)
		r.Get("/_slipway/version", h.getVersion)
	})

	h.mountApp(router)

	return router
}

// mountApp wires the hosted application at the root. In hello mode the
// built-in page is served; otherwise a directory bundle becomes a file
// tree and a single-file bundle is served at the root path.
func (h *Handler) mountApp(router *chi.Mux) {
	if h.hello {
		router.Get("/", h.helloApp)
		return
	}

	info, err := os.Stat(h.appPath)
	if err != nil {
		h.logger.Error().Err(err).Str("app", h.appPath).Msg("application bundle is not readable")
		return
	}

	if info.IsDir() {
		router.Handle("/*", http.FileServer(http.Dir(h.appPath)))
		return
	}

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, h.appPath)
	})
}
