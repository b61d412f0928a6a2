package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollpad/cliparse"
	"github.com/danielhkuo/pollpad/db"
	"github.com/danielhkuo/pollpad/middleware"
	"github.com/danielhkuo/pollpad/persist"
	"github.com/danielhkuo/pollpad/pollstore"
	"github.com/danielhkuo/pollpad/remotesync"
	"github.com/danielhkuo/pollpad/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the durable store (sqlite file by default, postgres optional)
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (kv table)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Wire the store: hydrate from persistence, mirror to the remote
	// service when an endpoint is configured
	persistence := persist.New(dbConn)
	installID, err := persistence.InstallationID()
	if err != nil {
		slog.Error("failed to establish installation ID", "error", err)
		os.Exit(1)
	}

	syncClient := remotesync.New(cfg.SyncEndpoint, installID)
	if syncClient.Enabled() {
		slog.Info("remote sync enabled", "endpoint", cfg.SyncEndpoint)
	}

	store := pollstore.New(persistence, syncClient)
	store.Hydrate()

	// Create router
	mux := router.NewRouter(store)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
