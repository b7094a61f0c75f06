package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/loopstack33/admin-panel-functional-apis/config"
	"github.com/loopstack33/admin-panel-functional-apis/internal/app"
	"github.com/loopstack33/admin-panel-functional-apis/internal/auth"
	"github.com/loopstack33/admin-panel-functional-apis/internal/crmapi"
	"github.com/loopstack33/admin-panel-functional-apis/internal/store"
	"github.com/loopstack33/admin-panel-functional-apis/internal/webserver"
)

var (
	conffile = flag.String("c", "crmdashboard.yml", "config file")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	repo := store.NewRepository(application.DB())
	verifier := auth.NewVerifier(application.DB(), application.Digester())

	server := webserver.NewWebServer(cfg)
	handler := crmapi.NewHandler(repo, verifier, cfg.Dashboard)
	handler.RegisterRoutes(server.Echo())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.Start(); err != nil {
			zap.S().Errorf("web server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	zap.S().Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorf("web server shutdown error: %v", err)
	}
}
