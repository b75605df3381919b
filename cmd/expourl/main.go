package main

import (
	"context"
	"os"

	"github.com/expotools/expourl/internal/config"
	"github.com/expotools/expourl/internal/helper"
	"github.com/expotools/expourl/internal/log"
	"github.com/expotools/expourl/internal/resolver"
)

func main() {
	config := config.Load(os.Args)
	log := log.New(log.WithLevel(config.Log.Level))

	helper := helper.New(
		helper.WithResolver(resolver.New(
			resolver.WithInterfaces(config.Interfaces...),
		)),
		helper.WithPort(config.Port),
		helper.WithLogger(log),
	)

	ctx := context.Background()
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	if err := helper.Run(ctx); err != nil {
		log.Fatal("No local address could be resolved", err)
	}
}
