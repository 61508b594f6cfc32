// Package main starts the browser-facing Golear web service.
package main

import (
	"flag"
	"os"

	webcmd "github.com/golear/golear/internal/cmd/web"
	entrypoint "github.com/golear/golear/internal/platform/cmd"
	"github.com/golear/golear/internal/platform/config"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := entrypoint.SignalContext()
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		config.Exitf("web: %v", err)
	}
}
