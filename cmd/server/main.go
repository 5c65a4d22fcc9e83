package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/potholeauth/internal/buildinfo"
	"github.com/dmitrijs2005/potholeauth/internal/logging"
	"github.com/dmitrijs2005/potholeauth/internal/server"
	"github.com/dmitrijs2005/potholeauth/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
