package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/myblog/internal/buildinfo"
	"github.com/dmitrijs2005/myblog/internal/cli"
	"github.com/dmitrijs2005/myblog/internal/config"
	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.LogLevel)

	ctx := context.Background()

	store, err := kv.Open(ctx, cfg.StoreOptions())
	if err != nil {
		log.Error(ctx, "failed to open storage", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	log.Debug(ctx, "storage opened", "backend", cfg.StoreBackend)

	app := cli.NewApp(cfg, store, os.Stdin, os.Stdout, log)
	app.Run(ctx)
}
