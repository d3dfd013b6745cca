package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/greenandblue/gbstore/config"
	"github.com/greenandblue/gbstore/internal/adminapi"
	"github.com/greenandblue/gbstore/internal/app"
	"github.com/greenandblue/gbstore/internal/storeapi"
	"github.com/greenandblue/gbstore/internal/webserver"
)

var (
	configFile = flag.String("c", "/etc/gbstore.yml", "config file path")
	initDb     = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
	showVer    = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("gbstore %s\n", version)
		return
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.InitDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "workdir error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.L().Info("database initialized")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := webserver.Init(application)
	adminapi.InitRouter()
	storeapi.InitRouter()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ws.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
