package http

import (
	"net/http"
	"os"
	"path/filepath"

	"sepsis-screening-server/internal/delivery/http/handler"
	"sepsis-screening-server/internal/delivery/http/middleware"
	"sepsis-screening-server/pkg/response"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	readingHandler      *handler.ReadingHandler
	eventHandler        *handler.EventHandler
	patientHandler      *handler.PatientHandler
	hospitalHandler     *handler.HospitalHandler
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	recoveryMiddleware  *middleware.RecoveryMiddleware
	staticDir           string
	production          bool
}

func NewRouter(
	readingHandler *handler.ReadingHandler,
	eventHandler *handler.EventHandler,
	patientHandler *handler.PatientHandler,
	hospitalHandler *handler.HospitalHandler,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
	staticDir string,
	production bool,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		readingHandler:      readingHandler,
		eventHandler:        eventHandler,
		patientHandler:      patientHandler,
		hospitalHandler:     hospitalHandler,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		recoveryMiddleware:  recoveryMiddleware,
		staticDir:           staticDir,
		production:          production,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(handlers.CompressHandler)

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// API routes, rate limited per client IP
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.rateLimitMiddleware.Handle)

	api.HandleFunc("/readings", r.readingHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/readings/{patientId}", r.readingHandler.ListByPatient).Methods(http.MethodGet)

	api.HandleFunc("/register-event", r.eventHandler.Register).Methods(http.MethodPost)

	api.HandleFunc("/personal/register", r.patientHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/personal/login", r.patientHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/patient/report", r.patientHandler.SubmitReport).Methods(http.MethodPost)
	api.HandleFunc("/patient/history/{patientId}", r.patientHandler.History).Methods(http.MethodGet)

	api.HandleFunc("/hospital/login", r.hospitalHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/hospital/report", r.hospitalHandler.SubmitReport).Methods(http.MethodPost)
	api.HandleFunc("/hospital/reports/{hospitalId}", r.hospitalHandler.Reports).Methods(http.MethodGet)
	api.HandleFunc("/hospital/patient/check", r.hospitalHandler.CheckPatient).Methods(http.MethodPost)
	api.HandleFunc("/hospital/patient/register", r.hospitalHandler.RegisterPatient).Methods(http.MethodPost)

	// Front-end pages
	r.router.HandleFunc("/dashboard", r.serveDashboard).Methods(http.MethodGet)
	r.router.PathPrefix("/").Handler(http.HandlerFunc(r.serveStatic))

	r.router.NotFoundHandler = http.HandlerFunc(r.notFound)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) serveDashboard(w http.ResponseWriter, req *http.Request) {
	r.serveFile(w, req, filepath.Join(r.staticDir, "dashboard.html"))
}

// serveStatic serves front-end assets from the static directory with an
// env-dependent cache lifetime: one day in production, none otherwise.
func (r *Router) serveStatic(w http.ResponseWriter, req *http.Request) {
	name := filepath.Join(r.staticDir, filepath.Clean(req.URL.Path))

	info, err := os.Stat(name)
	if err == nil && info.IsDir() {
		name = filepath.Join(name, "index.html")
		info, err = os.Stat(name)
	}
	if err != nil || info.IsDir() {
		r.notFound(w, req)
		return
	}

	r.serveFile(w, req, name)
}

func (r *Router) serveFile(w http.ResponseWriter, req *http.Request, name string) {
	if r.production {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	http.ServeFile(w, req, name)
}

// notFound serves the 404 page if the static directory carries one and
// falls back to plain text.
func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	page := filepath.Join(r.staticDir, "404.html")
	if body, err := os.ReadFile(page); err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write(body)
		return
	}
	http.Error(w, "404 Page Not Found", http.StatusNotFound)
}
