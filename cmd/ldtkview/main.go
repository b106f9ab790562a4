package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ldtk"
	"github.com/milk9111/ldtk/config"
	"github.com/milk9111/ldtk/watch"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	levelName := flag.String("level", "", "identifier of the level to open first")
	debug := flag.Bool("debug", false, "enable debug logging")
	live := flag.Bool("watch", false, "reload the project when it changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: ldtkview [flags] [project.ldtk]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	path := flag.Arg(0)
	if path == "" {
		path = choosePath()
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config")
		}
		cfg = loaded
	}
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *levelName != "" {
		cfg.View.Level = *levelName
	}

	p, err := ldtk.Load(path, ldtk.WithConfig(cfg), ldtk.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("load project")
	}

	viewer, err := NewViewer(p, cfg.View, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("open viewer")
	}

	if *live {
		r, err := watch.NewReloader(path, cfg, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("watch")
		}
		defer r.Close()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = r.Run(ctx) }()
		viewer.reloads = r.Reloads()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("ldtkview - " + path)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}

// choosePath falls back to the file dialog when no project was named on the
// command line. It exits when there is nothing to open.
func choosePath() string {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	picked, err := pickProject(dir)
	if err != nil {
		log.Error().Err(err).Msg("open project")
		flag.Usage()
		os.Exit(2)
	}
	if picked == "" {
		log.Info().Msg("no project selected")
		os.Exit(0)
	}
	return picked
}
