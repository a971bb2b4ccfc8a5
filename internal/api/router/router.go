package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/healthmate/platform/internal/admin"
	"github.com/healthmate/platform/internal/advisor"
	"github.com/healthmate/platform/internal/bookings"
	"github.com/healthmate/platform/internal/doctors"
	httpmiddleware "github.com/healthmate/platform/internal/http/middleware"
	"github.com/healthmate/platform/internal/identity"
	"github.com/healthmate/platform/internal/reports"
	"github.com/healthmate/platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	DoctorsHandler  *doctors.Handler
	ReportsHandler  *reports.Handler
	BookingsHandler *bookings.Handler
	IdentityHandler *identity.Handler
	AdminHandler    *admin.Handler
	AdvisorHandler  *advisor.Handler

	// Admin stats auth. Empty secret leaves the endpoint open, which is the
	// local-development default.
	AdminAuthSecret string

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.DoctorsHandler != nil {
			api.Get("/doctors", cfg.DoctorsHandler.ListDoctors)
			api.Get("/doctors/nearby", cfg.DoctorsHandler.ListNearby)
		}
		if cfg.ReportsHandler != nil {
			api.Get("/reports", cfg.ReportsHandler.ListReports)
			api.Post("/reports", cfg.ReportsHandler.CreateReport)
		}
		if cfg.BookingsHandler != nil {
			api.Get("/bookings", cfg.BookingsHandler.ListBookings)
			api.Post("/bookings", cfg.BookingsHandler.CreateBooking)
		}
		if cfg.IdentityHandler != nil {
			api.Post("/onboard", cfg.IdentityHandler.Onboard)
		}

		if cfg.AdvisorHandler != nil {
			api.Route("/ai", func(ai chi.Router) {
				ai.Post("/symptom-check", cfg.AdvisorHandler.SymptomCheck)
				ai.Post("/ask", cfg.AdvisorHandler.Ask)
				ai.Post("/report-analysis", cfg.AdvisorHandler.AnalyzeReport)
			})
		}

		if cfg.AdminHandler != nil {
			api.Route("/admin", func(adm chi.Router) {
				if cfg.AdminAuthSecret != "" {
					adm.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
				}
				adm.Get("/stats", cfg.AdminHandler.GetStats)
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
