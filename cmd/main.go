package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/media"
	"portfolio_backend/internal/media/imagehost"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/repository/db"
	"portfolio_backend/internal/server"
	"portfolio_backend/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml first so the logger level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB (schema + seed happen inside)
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// media store, with the image host attached only when enabled
	store, err := newMediaStore(log)
	if err != nil {
		log.Fatalw("failed to init uploads dir", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, store, service.AuthConfig{
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   time.Duration(viper.GetInt("auth.token_ttl_hours")) * time.Hour,
	})
	apiHandler := handlers.NewHandler(services, log, store.Dir())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "portfolio.db")
	viper.SetDefault("uploads.dir", "uploads")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("auth.token_ttl_hours", 168) // 7 days
	viper.SetDefault("auth.default_admin_password", "admin123")
	viper.SetDefault("imagehost.timeout_seconds", 15)
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening database", "path", dbPath)
	return db.InitDB(dbPath, db.SeedOptions{
		AdminUsername: "admin",
		AdminPassword: viper.GetString("auth.default_admin_password"),
		SampleData:    viper.GetBool("seed.samples"),
	})
}

// newMediaStore builds the upload store; forwarding to the image host is
// best-effort and only wired when imagehost.enabled is set.
func newMediaStore(log *logger.Logger) (*media.Store, error) {
	var forwarder media.Forwarder
	if viper.GetBool("imagehost.enabled") {
		forwarder = imagehost.New(
			viper.GetString("imagehost.endpoint"),
			viper.GetString("imagehost.token"),
			time.Duration(viper.GetInt("imagehost.timeout_seconds"))*time.Second,
		)
		log.Infow("image host forwarding enabled", "endpoint", viper.GetString("imagehost.endpoint"))
	}
	return media.NewStore(viper.GetString("uploads.dir"), forwarder, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting http server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests (uploads included) to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
