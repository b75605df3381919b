package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/expotools/expourl/internal/config"
	"github.com/expotools/expourl/internal/eas"
	"github.com/expotools/expourl/internal/log"
)

func main() {
	config := config.Load(os.Args)
	log := log.New(log.WithLevel(config.Log.Level))

	platforms := config.Platforms
	if len(platforms) == 0 {
		platforms = []string{"android", "ios"}
	}

	trigger := eas.New(
		eas.WithProfile(config.Profile),
		eas.WithLogger(log),
	)

	// Let an interrupt stop the eas tool mid-build
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := trigger.Run(ctx, platforms); err != nil {
		log.Fatal("Build trigger failed", err)
	}
}
