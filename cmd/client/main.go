package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/blogify-auth/internal/buildinfo"
	"github.com/dmitrijs2005/blogify-auth/internal/client/cli"
	"github.com/dmitrijs2005/blogify-auth/internal/client/client"
	"github.com/dmitrijs2005/blogify-auth/internal/client/config"
	"github.com/dmitrijs2005/blogify-auth/internal/client/services"
	"github.com/dmitrijs2005/blogify-auth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := client.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("error initializing session database: %v", err)
	}
	defer db.Close()

	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout,
		client.WithLogger(logger.With("component", "api")),
		client.WithUserAgent(buildinfo.UserAgent()),
	)

	app := cli.NewApp(ctx, cli.Options{
		Client:   api,
		Sessions: services.NewSessionService(db),
		Log:      logger,
		In:       os.Stdin,
		Out:      os.Stdout,
	})

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "err", err)
		os.Exit(1)
	}

}
