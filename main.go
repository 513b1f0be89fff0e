/*
Pong on the engine's Vulkan quad renderer.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/pong/engine"
	"github.com/spaghettifunk/pong/engine/config"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/testbed"
)

func main() {
	configPath := flag.String("config", "pong.toml", "path to the TOML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		core.LogFatal("loading configuration: %s", err)
	}

	game := testbed.NewPongGame(engine.NewApplicationConfig(cfg))

	e, err := engine.New(game.Game)
	if err != nil {
		core.LogFatal("creating engine: %s", err)
	}

	// capture sigterm and other system calls here
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("initializing engine: %s", err)
	}

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("engine stopped: %s", runErr)
	}
}
