package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/chainrent/chainrent/config"
	"github.com/chainrent/chainrent/internal/adminapi"
	"github.com/chainrent/chainrent/internal/app"
	"github.com/chainrent/chainrent/internal/publicapi"
	"github.com/chainrent/chainrent/internal/webserver"
)

var (
	confFile = flag.String("c", "/etc/chainrent.yml", "config file")
	initDb   = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
	showVer  = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("chainrentd", version)
		return
	}

	cfg := config.LoadConfig(*confFile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	server := webserver.Init(cfg, application.DB(), application.Actions())
	adminapi.InitRouter()
	publicapi.InitRouter(application.News())

	go func() {
		if err := server.Start(); err != nil {
			zap.S().Fatalf("web server stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	zap.S().Info("shutting down")
}
