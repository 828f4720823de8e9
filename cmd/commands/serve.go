package commands

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixology/backend/config"
	"github.com/pixology/backend/internal/buildinfo"
	gwHttp "github.com/pixology/backend/internal/gateway/http"
	"github.com/pixology/backend/internal/pkg/crypto"
	"github.com/pixology/backend/internal/user/repository"
	"github.com/pixology/backend/internal/user/usecase"
)

func NewServeCmd() *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer cancel()

			cfg, err := config.Parse(configPath)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
			logger.Info("successfully loaded config")

			ctxStorage, cancel := context.WithTimeout(ctx, time.Second*3)
			defer cancel()
			storage, err := repository.New(ctxStorage, cfg.Storage.SQLitePath)
			if err != nil {
				return err
			}

			passwordHasher := crypto.NewPasswordHasher(cfg.Password.Cost)
			useCase := usecase.NewUseCase(&storage, passwordHasher, logger)

			httpServer := gwHttp.NewAccountServer(cfg.HTTPServer, useCase, buildinfo.New())

			go func() {
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					logger.Error("ListenAndServe", slog.Any("err", err))
				}
			}()
			logger.Info("server listening:", slog.String("port", cfg.HTTPServer.Address))
			<-ctx.Done()

			closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
			defer closeCancel()
			if err := httpServer.Shutdown(closeCtx); err != nil {
				logger.Error("httpServer.Shutdown", slog.String("error", err.Error()))
			}

			if err := storage.Close(); err != nil {
				logger.Error("storage.Close", slog.String("error", err.Error()))
			}

			return nil
		},
	}
	c.Flags().StringVar(&configPath, "config", "config.yaml", "path to config")
	return c
}
