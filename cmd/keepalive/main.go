// Package main keeps the remote Golear API awake by probing its health
// endpoint on a fixed interval.
package main

import (
	"flag"
	"os"

	keepalivecmd "github.com/golear/golear/internal/cmd/keepalive"
	entrypoint "github.com/golear/golear/internal/platform/cmd"
	"github.com/golear/golear/internal/platform/config"
)

func main() {
	cfg, err := keepalivecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := entrypoint.SignalContext()
	defer stop()

	if err := keepalivecmd.Run(ctx, cfg); err != nil {
		config.Exitf("keepalive: %v", err)
	}
}
