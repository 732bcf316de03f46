package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stylemart/stylemart/internal/catalog"
	"github.com/stylemart/stylemart/internal/config"
	"github.com/stylemart/stylemart/internal/logging"
	"github.com/stylemart/stylemart/internal/orders"
	"github.com/stylemart/stylemart/internal/server"
	"github.com/stylemart/stylemart/internal/userstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the StyleMart web server.

Examples:
  stylemart serve                 # defaults from stylemart.yml
  stylemart serve --port 9000
  stylemart serve --users-backend sqlite`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")
	serveCmd.Flags().String("users-backend", "csv", "Credential store backend (csv or sqlite)")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("users.backend", serveCmd.Flags().Lookup("users-backend"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logging.New(logging.ParseLevel(viper.GetString("log-level")))

	users, closeStore, err := openUserStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var publisher orders.Publisher
	if cfg.Queue.URL != "" {
		qp, err := orders.ConnectQueue(cfg.Queue.URL, cfg.Queue.Name)
		if err != nil {
			return fmt.Errorf("connect order queue: %w", err)
		}
		defer qp.Close()
		publisher = qp
		log.Info("order queue connected", "queue", cfg.Queue.Name)
	}

	srv, err := server.New(cfg, log, users, catalog.NewFileLoader(cfg.Catalog.Path), publisher)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr())
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openUserStore(cfg *config.Config) (userstore.Store, func(), error) {
	switch cfg.Users.Backend {
	case "sqlite":
		store, err := userstore.OpenSQLite(cfg.Users.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open user store: %w", err)
		}
		return store, func() { store.Close() }, nil
	default:
		return userstore.NewCSV(cfg.Users.Path), func() {}, nil
	}
}
