package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/service/accounts"
	"github.com/stammy-cpu/Jtech/internal/service/catalog"
	"github.com/stammy-cpu/Jtech/internal/service/lifecycle"
	"github.com/stammy-cpu/Jtech/internal/service/messaging"
)

type Handler struct {
	accounts      *accounts.Service
	engine        *lifecycle.Engine
	messages      *messaging.Service
	catalog       *catalog.Service
	sessionTTL    time.Duration
	secureCookies bool
}

type Options struct {
	SessionTTL    time.Duration
	SecureCookies bool
	CORSOrigins   []string
	RateLimit     int // requests per minute per IP, 0 disables
}

// intakeRoutes maps URL segments to submission kinds; the same generic
// handler set serves all three.
var intakeRoutes = []struct {
	path string
	kind domain.Kind
}{
	{"gift-cards", domain.KindGiftCard},
	{"crypto-trades", domain.KindCryptoTrade},
	{"gadget-submissions", domain.KindGadgetSubmission},
}

func NewRouter(acc *accounts.Service, engine *lifecycle.Engine, msgs *messaging.Service, cat *catalog.Service, opts Options) http.Handler {
	h := &Handler{
		accounts:      acc,
		engine:        engine,
		messages:      msgs,
		catalog:       cat,
		sessionTTL:    opts.SessionTTL,
		secureCookies: opts.SecureCookies,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	if opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimit, 1*time.Minute))
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(h.withIdentity)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.Post("/logout", h.handleLogout)
			r.Get("/me", requireUser(h.handleMe))
		})

		for _, route := range intakeRoutes {
			kind := route.kind
			r.Route("/"+route.path, func(r chi.Router) {
				r.Post("/", h.handleCreateSubmission(kind))
				r.Get("/", h.handleListSubmissions(kind))
				r.Get("/{id}", h.handleGetSubmission(kind))
				// Admin-gated for every kind; the original only gated some.
				r.Patch("/{id}/status", requireAdmin(h.handleUpdateStatus(kind)))
			})
		}

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", requireAdmin(h.handleListMessages))
			r.Get("/conversations", requireAdmin(h.handleConversations))
			r.Post("/", requireUser(h.handlePostMessage))
			r.Post("/reply", requireAdmin(h.handleReply))
			r.Get("/user", requireUser(h.handleUserMessages))
		})

		r.Route("/gadgets", func(r chi.Router) {
			r.Post("/", requireAdmin(h.handleCreateGadget))
			r.Get("/", h.handleListGadgets)
			r.Get("/{id}", h.handleGetGadget)
		})

		r.Get("/exchange-rates", h.handleCurrentRate)
		r.Post("/exchange-rates", requireAdmin(h.handleUpsertRate))

		r.Get("/admin/stats", requireAdmin(h.handleStats))
	})

	return r
}
