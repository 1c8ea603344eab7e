package cmd

import (
	"fmt"
	"net/http"
	"notely/internal/config"
	"notely/internal/core"
	"notely/internal/db"
	"notely/internal/http/handler"
	"notely/internal/http/handler/middleware"
	"notely/internal/http/payload"
	"notely/internal/http/server"
	"notely/internal/repository"
	"notely/pkg/jwt"
	"notely/pkg/log"
	"notely/pkg/metrics"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("notely", zapcore.InfoLevel)

	if err := config.LoadDotEnv(); err != nil {
		logger.Errorw("failed to load .env file", "error", err)
		return err
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		logger.Errorw("invalid log level", "error", err, "level", config.LogLevel)
		return err
	}
	logger = log.NewZapLogger("notely", level)
	defer func() {
		_ = logger.Sync()
	}()

	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	// repository
	repo := repository.NewNotebookRepository(dbConn)

	err = repo.Migrate()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// notebook
	notebook := core.NewNotebook(
		logger,
		repo,
		jwtService,
		core.Settings{
			SessionTTL:      config.SessionTTL,
			MaxPictureBytes: config.MaxPictureBytes,
		})

	// handlers
	notebookHlr := handler.NewNotebookHandler(
		logger,
		payload.Decoder{},
		notebook,
		config.MaxPictureBytes)
	healthHlr := handler.NewHealthHandler(logger, dbConn)

	mux := http.NewServeMux()
	auth := middleware.NewAuthMiddleware(logger, notebook)
	mtr := middleware.NewMetricsMiddleware()
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, mtr.Metrics(pattern, h))
	}

	// register routes
	route(handler.Register, notebookHlr.HandleRegister)
	route(handler.Login, notebookHlr.HandleLogin)
	route(handler.ListNotes, auth.Authenticate(notebookHlr.HandleListNotes))
	route(handler.CreateNote, auth.Authenticate(notebookHlr.HandleCreateNote))
	route(handler.GetNote, auth.Authenticate(notebookHlr.HandleGetNote))
	route(handler.UpdateNote, auth.Authenticate(notebookHlr.HandleUpdateNote))
	route(handler.DeleteNote, auth.Authenticate(notebookHlr.HandleDeleteNote))
	route(handler.GetProfile, auth.Authenticate(notebookHlr.HandleGetProfile))
	route(handler.UpdatePicture, auth.Authenticate(notebookHlr.HandleUpdatePicture))
	route(handler.UpdateAccount, auth.Authenticate(notebookHlr.HandleUpdateAccount))
	route(handler.Health, healthHlr.HandleHealth)
	mux.Handle(handler.Metrics, metrics.Handler())

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewCORSMiddleware(config.CORSAllowedOrigin).CORS(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	if err == http.ErrServerClosed {
		return nil
	}

	return err
}
