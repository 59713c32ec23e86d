package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/exp/slog"
)

var MANAGER *MapManager

func main() {
	LoadEnv()

	config_file := os.Getenv("PATHVIZ_CONFIG")
	if config_file == "" {
		config_file = "./config.yaml"
	}
	config, err := ReadConfig(config_file)
	if err != nil {
		panic(err)
	}
	SetupLogging(config.LogLevel)

	MANAGER, err = NewMapManager(config)
	if err != nil {
		panic(err)
	}

	srv := &http.Server{
		Handler:           NewRouter(MANAGER, config),
		Addr:              fmt.Sprintf(":%v", config.Server.Port),
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info(fmt.Sprintf("Starting server on port %v", config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error: " + err.Error())
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed: " + err.Error())
	}
}

// Builds the http handler serving the map api.
//
// CORS wraps the router so preflight requests are answered for every route.
func NewRouter(manager *MapManager, config Config) http.Handler {
	app := mux.NewRouter()
	app.Use(RecoveryMiddleware)
	app.Use(LoggingMiddleware)
	RegisterRoutes(app, manager)

	c := cors.New(cors.Options{
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Origin",
		},
		MaxAge: 86400,
	})
	return c.Handler(app)
}
