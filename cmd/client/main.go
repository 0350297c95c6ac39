package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/Donghyun-K/board-client/internal/client/cli"
	"github.com/Donghyun-K/board-client/internal/client/client"
	"github.com/Donghyun-K/board-client/internal/client/config"
	"github.com/Donghyun-K/board-client/internal/client/credentials"
	"github.com/Donghyun-K/board-client/internal/client/dispatch"
	"github.com/Donghyun-K/board-client/internal/client/guard"
	"github.com/Donghyun-K/board-client/internal/client/routes"
	"github.com/Donghyun-K/board-client/internal/client/services"
	"github.com/Donghyun-K/board-client/internal/client/session"
	"github.com/Donghyun-K/board-client/internal/client/storage"
	"github.com/Donghyun-K/board-client/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	store := credentials.NewSQLiteStore(db)

	api, err := client.NewHTTPClient(cfg.BaseURL(), dispatch.NewHTTPClient(store, cfg.RequestTimeout, logger), logger)
	if err != nil {
		return err
	}
	logger.Info(ctx, "board client starting", "api", cfg.BaseURL(), "db", cfg.DatabasePath)

	loc := cli.NewLocation(routes.Home)
	sessions := session.NewManager(store, api, loc, logger, session.WithResolveTimeout(cfg.IdentityTimeout))
	defer sessions.Close()

	app := cli.NewApp(cli.Deps{
		Auth:     services.NewAuthService(api, sessions, logger),
		Boards:   services.NewBoardService(api),
		Posts:    services.NewPostService(api),
		Sessions: sessions,
		Guard:    guard.New(sessions, loc, logger),
		Tokens:   store,
		Location: loc,
		Log:      logger,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	app.Run(ctx)
	return nil
}
