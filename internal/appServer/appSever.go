package appServer

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/config"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/service"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/transport"
	"github.com/SudyStefan/MSD-UX-Prototype/internal/worker"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/media"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func setupLogger(cfg *config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func NewServer(cfg *config.Config) {

	setupLogger(&cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize signup feed
	feed, err := newSignupFeed(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize signup feed: %v", err)
	}
	defer func() {
		if err := feed.Close(); err != nil {
			logrus.Errorf("Failed to close signup feed: %v", err)
		}
	}()

	// Initialize client store
	store, err := service.NewAppStore(service.Options{
		Scheduler:    scheduler.New(),
		Capture:      media.NewSimulatedCapture(cfg.Scanner.CameraEnabled),
		Publisher:    feed,
		ConfirmDelay: cfg.Dialog.ConfirmDelay,
		ScanDelay:    cfg.Scanner.Delay,
		ScanValue:    cfg.Scanner.Value,
		PickerMonths: cfg.Calendar.PickerMonths,
		ScanHistory:  cfg.Scanner.HistorySize,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize client store: %v", err)
	}
	defer store.Close()

	// Initialize cleanup worker
	cleanupWorker := worker.NewClientCleanupWorker(store, cfg.Worker.CleanupInterval, cfg.App.ClientIdleTimeout)
	go cleanupWorker.Start(ctx)

	// Initialize handlers
	pageHandler := transport.NewPageHandler(cfg.App.Name)
	apiHandler := transport.NewAPIHandler()

	// Setup HTTP server
	gin.SetMode(cfg.Server.Mode)

	router, err := transport.InitRoutes(cfg, store, cleanupWorker, pageHandler, apiHandler)
	if err != nil {
		logrus.Fatalf("Failed to initialize routes: %v", err)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithField("addr", cfg.Server.Address()).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
