package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/stammy-cpu/Jtech/internal/config"
	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/observability/logging"
	"github.com/stammy-cpu/Jtech/internal/observability/metrics"
	obsmw "github.com/stammy-cpu/Jtech/internal/observability/middleware"
	"github.com/stammy-cpu/Jtech/internal/service/accounts"
	"github.com/stammy-cpu/Jtech/internal/service/catalog"
	"github.com/stammy-cpu/Jtech/internal/service/lifecycle"
	"github.com/stammy-cpu/Jtech/internal/service/messaging"
	"github.com/stammy-cpu/Jtech/internal/store"
	transport "github.com/stammy-cpu/Jtech/internal/transport/http"
	"github.com/stammy-cpu/Jtech/pkg/db"
)

const serviceName = "jtech"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)
	metrics.MustRegister(serviceName)

	logger.Info("starting service")

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		// Ephemeral secret: fine for dev, logs out everyone on restart.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			logger.Error("generate session secret", "error", err)
			os.Exit(1)
		}
		secret = []byte(hex.EncodeToString(buf))
		logger.Warn("JTECH_SESSION_SECRET not set, using ephemeral secret")
	}

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)
	ctx := context.Background()
	if err := st.AutoMigrate(ctx); err != nil {
		logger.Error("auto migrate", "error", err)
		os.Exit(1)
	}

	acc := accounts.New(st.Users(), st.Sessions(), secret, cfg.SessionTTL)
	if err := acc.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("ensure admin", "error", err)
		os.Exit(1)
	}

	msgs := messaging.New(st.Messages())
	engine := lifecycle.New(map[domain.Kind]lifecycle.SubmissionStore{
		domain.KindGiftCard:         st.GiftCards(),
		domain.KindCryptoTrade:      st.CryptoTrades(),
		domain.KindGadgetSubmission: st.GadgetSubmissions(),
	}, st.Users(), msgs)
	cat := catalog.New(st.Gadgets(), st.Rates())

	router := transport.NewRouter(acc, engine, msgs, cat, transport.Options{
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.Environment != "dev",
		CORSOrigins:   cfg.CORSOrigins,
		RateLimit:     cfg.RateLimit,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           obsmw.WithMetrics(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
