/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/envelopes/*   Envelope management and allocations
  /api/sources/*     Income source management
  /api/events/*      Celebration events
  /api/readiness/*   Readiness forecast and snapshot history
  /api/debts/*       Debt accounts and payment plan
  /api/plan/*        Overview and auto-balance
  /api/settings      Plan configuration
  /api/scenarios/*   Demo scenarios
  /*                 Static files (frontend)

STATIC FILE SERVING:
  In production, serves the built React app from web/dist/.
  Falls back to index.html for client-side routing.

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Envelope routes
		r.Route("/envelopes", func(r chi.Router) {
			r.Get("/", h.ListEnvelopes)
			r.Post("/", h.SaveEnvelope)
			r.Get("/{id}", h.GetEnvelope)
			r.Delete("/{id}", h.DeleteEnvelope)
			r.Post("/{id}/lock", h.LockEnvelope)
			r.Post("/{id}/unlock", h.UnlockEnvelope)
			r.Get("/{id}/allocations", h.ListEnvelopeAllocations)
			r.Put("/{id}/allocations", h.SetAllocation)
		})

		// Income source routes
		r.Route("/sources", func(r chi.Router) {
			r.Get("/", h.ListIncomeSources)
			r.Post("/", h.SaveIncomeSource)
			r.Delete("/{id}", h.DeleteIncomeSource)
		})

		// Event routes
		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Post("/", h.SaveEvent)
			r.Delete("/{id}", h.DeleteEvent)
		})

		// Readiness routes
		r.Route("/readiness", func(r chi.Router) {
			r.Get("/", h.GetReadiness)
			r.Get("/snapshots", h.ListSnapshots)
		})

		// Debt routes
		r.Route("/debts", func(r chi.Router) {
			r.Get("/", h.ListDebts)
			r.Post("/", h.SaveDebt)
			r.Get("/plan", h.GetDebtPlan)
			r.Delete("/{id}", h.DeleteDebt)
			r.Post("/{id}/interest", h.AccrueInterest)
		})

		// Plan routes
		r.Route("/plan", func(r chi.Router) {
			r.Get("/overview", h.GetOverview)
			r.Post("/rebalance", h.Rebalance)
		})

		// Settings routes
		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.UpdateSettings)

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
			r.Post("/reset", h.ResetDatabase)
		})
	})

	// Serve static files (React app)
	// First try ./web/dist (development), then fall back to message
	staticDir := "./web/dist"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		// Try relative to executable
		exe, _ := os.Executable()
		staticDir = filepath.Join(filepath.Dir(exe), "web", "dist")
	}

	if _, err := os.Stat(staticDir); err == nil {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			fullPath := filepath.Join(staticDir, path)

			// Check if file exists
			if _, err := os.Stat(fullPath); os.IsNotExist(err) {
				// SPA routing: serve index.html
				http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
				return
			}
			fileServer.ServeHTTP(w, r)
		})
	} else {
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Hearth Budget Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Hearth Budget Engine API</h1>
<p>The frontend is not built yet. Run <code>cd web && npm install && npm run build</code></p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/plan/overview">/api/plan/overview</a> - Plan overview</li>
<li><a href="/api/envelopes">/api/envelopes</a> - List envelopes</li>
<li><a href="/api/readiness">/api/readiness</a> - Readiness forecast</li>
<li><a href="/api/debts/plan">/api/debts/plan</a> - Debt payment plan</li>
<li><a href="/api/scenarios">/api/scenarios</a> - List scenarios</li>
</ul>
</body>
</html>`))
		})
	}

	return r
}
