package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	emailPkg "gums/internal/adapters/email"
	web "gums/internal/adapters/http"
	"gums/internal/adapters/http/perf"
	"gums/internal/adapters/storage"
	accountStore "gums/internal/adapters/storage/account"
	contactStore "gums/internal/adapters/storage/contact"
	personStore "gums/internal/adapters/storage/person"
	termStore "gums/internal/adapters/storage/term"
	unitConfigStore "gums/internal/adapters/storage/unitconfig"
	"gums/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	configureLogging()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("GUMS_DB_PATH", "gums.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	configStore := unitConfigStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:    acctStore,
		TermStore:       termStore.NewSQLiteStore(timedDB),
		UnitConfigStore: configStore,
		PersonStore:     personStore.NewSQLiteStore(timedDB),
		ContactStore:    contactStore.NewSQLiteStore(timedDB),
	}

	// Bootstrap the singleton configuration row before serving requests
	ensureDeps := orchestrators.EnsureConfigurationDeps{ConfigStore: configStore}
	if err := orchestrators.ExecuteEnsureDefaultConfiguration(context.Background(), ensureDeps); err != nil {
		log.Fatalf("failed to ensure default configuration: %v", err)
	}

	// Seed default admin account if no accounts exist
	adminEmail := envOrDefault("GUMS_ADMIN_EMAIL", "admin@example.org")
	adminPassword := envOrDefault("GUMS_ADMIN_PASSWORD", "change me please")
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("GUMS_RESEND_KEY")
	emailFrom := envOrDefault("GUMS_EMAIL_FROM", "GUMS <noreply@example.org>")
	emailReply := envOrDefault("GUMS_REPLY_TO", adminEmail)
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply)
		if os.Getenv("GUMS_ENV") == "production" {
			log.Println("WARNING: GUMS_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set GUMS_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("GUMS_ADDR", ":8080")
	log.Printf("GUMS %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("GUMS_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// configureLogging sets the default slog handler. GUMS_LOG_LEVEL accepts
// debug, info, warn, or error; anything else falls back to info.
func configureLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("GUMS_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
