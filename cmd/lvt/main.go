// Command lvt races the sorting strategies on a seeded random input and
// prints a few analytics over the same data.
//
// Settings come from the environment (see config.Settings), an optional .env
// file and an optional YAML file named by LVT_CONFIG_FILE. With -i the size,
// strategies and direction are asked for interactively.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/amp-labs/lvt/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, nil); err != nil {
		logger.Fatal("lvt failed", "error", err)
	}
}
