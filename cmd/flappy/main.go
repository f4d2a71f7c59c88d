package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/tickwheel/client/canvas"
	"github.com/cbodonnell/tickwheel/client/flappy"
	"github.com/cbodonnell/tickwheel/client/host"
	"github.com/cbodonnell/tickwheel/pkg/api"
	"github.com/cbodonnell/tickwheel/pkg/assets"
	"github.com/cbodonnell/tickwheel/pkg/config"
	"github.com/cbodonnell/tickwheel/pkg/engine"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/cbodonnell/tickwheel/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the FPS overlay")
	flag.Parse()

	cfg, err := config.Load(config.LoadOptions{Path: flags.Path()})
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	flags.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting flappy version %s", version.Get())

	textures := canvas.NewTextures()
	e := engine.New(engine.NewEngineOptions{
		Screen: engine.Screen{
			Width:  float64(cfg.Window.Width),
			Height: float64(cfg.Window.Height),
		},
		Loader:   assets.NewLoader(assets.NewLoaderOptions{Dir: cfg.AssetsDir}),
		Textures: textures,
	})

	flappy.NewGame(flappy.NewGameOptions{
		Engine: e,
		Config: cfg.Flappy,
	}).Start()

	if cfg.DebugAddr != "" {
		apiServer := api.NewAPIServer(api.NewAPIServerOptions{
			Addr:  cfg.DebugAddr,
			Stats: e,
		})
		go apiServer.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := apiServer.Stop(ctx); err != nil {
				log.Error("Failed to stop API server: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	game := host.NewHost(host.NewHostOptions{
		Engine:   e,
		Textures: textures,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Debug:    *debug,
	})
	if err := ebiten.RunGame(game); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
	log.Info("Bye")
}
