package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"launchdash/domain/launch"
	"launchdash/internal/errors"
	"launchdash/ui/middleware"
	"launchdash/ui/services"
)

// App is the JSON-only variant of the dashboard on a chi router
type App struct {
	router *chi.Mux
	query  *services.QueryService
}

// NewApp creates the API application around a loaded dataset
func NewApp(ds *launch.Dataset, opts Options) *App {
	opts = opts.withDefaults()
	app := &App{
		router: chi.NewRouter(),
		query:  services.NewQueryService(ds, opts.SliderStep, opts.SliderMarkEvery, opts.Logger),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestIDHandler)
	a.router.Use(chimiddleware.Logger)
	a.router.Use(chimiddleware.Recoverer)
	a.router.Use(chimiddleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Route("/api", func(r chi.Router) {
		r.Get("/sites", a.handleSites)
		r.Get("/slider", a.handleSlider)
		r.Get("/outcomes", a.handleOutcomes)
		r.Get("/scatter", a.handleScatter)
		r.Get("/summary", a.handleSummary)
	})
}

// ServeHTTP lets App be mounted directly
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Start serves on addr until the listener fails
func (a *App) Start(addr string) error {
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	ds := a.query.Dataset()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"dataset_id": ds.ID(),
		"records":    ds.Len(),
	})
}

func (a *App) handleSites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.query.Sites())
}

func (a *App) handleSlider(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.query.Slider())
}

func (a *App) handleOutcomes(w http.ResponseWriter, r *http.Request) {
	sel := a.query.Selection(r.URL.Query().Get("site"))
	writeJSON(w, http.StatusOK, a.query.Outcomes(sel))
}

func (a *App) handleScatter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rng, err := a.query.Range(q.Get("low"), q.Get("high"))
	if err != nil {
		writeJSON(w, errors.HTTPStatus(err), map[string]string{
			"error": err.Error(),
			"code":  errors.GetCode(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, a.query.Scatter(a.query.Selection(q.Get("site")), rng))
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	sel := a.query.Selection(r.URL.Query().Get("site"))
	writeJSON(w, http.StatusOK, a.query.Summary(sel))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
