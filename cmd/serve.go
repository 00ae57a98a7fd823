package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"nutritrack/config"
	"nutritrack/routes"
	"nutritrack/services"

	"github.com/spf13/cobra"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "Listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if flagPort != "" {
		cfg.Port = flagPort
	}

	st, db, err := openStorage(cfg)
	if err != nil {
		return err
	}
	lookup, err := newLookup(cfg, db)
	if err != nil {
		return err
	}
	catalog, err := config.LoadFoodCatalog(cfg.FoodCatalogPath)
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set: token verification and authenticated routes will fail")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := services.NewRealtimeHub()
	alerts := services.NewAlertBus(st, hub, newPusher(ctx, cfg))
	meals := services.NewMealService(st, st, services.NewNutritionService(lookup), catalog, cfg.Goals).
		WithEvents(hub, alerts)
	users := services.NewUserService(st, cfg.Goals)

	r := routes.SetupRouter(routes.Deps{
		Meals:           meals,
		Users:           users,
		Alerts:          alerts,
		Hub:             hub,
		JWTSecret:       cfg.JWTSecret,
		CORSOrigins:     cfg.CORSOrigins,
		DatabaseEnabled: db != nil,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("nutritrack listening on :%s (db=%s, nutrients=%s)", cfg.Port, cfg.DBDriver, cfg.NutrientSource)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
