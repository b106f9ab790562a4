package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/milk9111/ldtk"
	"github.com/milk9111/ldtk/config"
	"github.com/milk9111/ldtk/query"
	"github.com/milk9111/ldtk/watch"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var CLI struct {
	Debug   bool   `help:"Whether to enable debug logging."`
	Config  string `help:"YAML configuration file." type:"existingfile"`
	Version string `help:"Force a schema revision (0.6.3, 0.9.2, 1.1.3) instead of reading jsonVersion."`

	Dump struct {
		Project string `arg:"" name:"project" help:"Project file to print." type:"existingfile"`
		Subtree string `help:"Part of the document to print: defs, levels, levels[N] or level:<identifier>." short:"s"`
		Resolve bool   `help:"Read external level files too."`
		View    bool   `help:"Print a summary of the flattened view instead of the raw document."`
	} `cmd:"" help:"Print a project as YAML."`

	Entities struct {
		Project string `arg:"" name:"project" help:"Project file to search." type:"existingfile"`
		Where   string `help:"tengo expression an entity must satisfy, e.g. identifier == \"Chest\"." short:"w"`
		Resolve bool   `help:"Search external level files too."`
	} `cmd:"" help:"List the entities of a project."`

	Detect struct {
		Projects []string `arg:"" name:"projects" help:"Project files." type:"existingfile"`
	} `cmd:"" help:"Print the schema revision each project is read with."`

	Watch struct {
		Project string `arg:"" name:"project" help:"Project file to watch." type:"existingfile"`
		Subtree string `help:"Part of the document to print." short:"s"`
	} `cmd:"" help:"Print the project again every time it or one of its levels is saved."`

	Defaults struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("ldtkdump"),
		kong.Description("inspect LDtk project files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	cfg, err := loadConfig()
	if err != nil {
		writeError(err)
	}
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	opts := []ldtk.Option{ldtk.WithConfig(cfg), ldtk.WithLogger(log.Logger)}

	switch ctx.Command() {
	case "dump <project>":
		err = dumpCommand(CLI.Dump.Project, opts)
	case "entities <project>":
		err = entitiesCommand(CLI.Entities.Project, CLI.Entities.Where, opts)
	case "detect <projects>":
		err = detectCommand(CLI.Detect.Projects)
	case "watch <project>":
		err = watchCommand(CLI.Watch.Project, cfg)
	case "defaults":
		err = yaml.NewEncoder(os.Stdout).Encode(config.Default())
	}
	if err != nil {
		writeError(err)
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if CLI.Version != "" {
		cfg.Version = CLI.Version
	}
	return cfg, cfg.Validate()
}

func dumpCommand(path string, opts []ldtk.Option) error {
	p, err := ldtk.Load(path, opts...)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if CLI.Dump.View {
		view, err := p.View()
		if CLI.Dump.Resolve {
			view, err = p.ResolvedView(ctx)
		}
		if err != nil {
			return err
		}
		return printView(os.Stdout, view)
	}

	out, err := p.Dump(CLI.Dump.Subtree)
	if err != nil {
		return err
	}
	fmt.Print(out)
	if !CLI.Dump.Resolve {
		return nil
	}

	resolved, err := p.ResolveAll(ctx)
	if err != nil {
		return err
	}
	for i, l := range resolved {
		stub, _ := p.Level(i)
		if !stub.IsExternal() {
			continue
		}
		out, err := ldtk.DumpLevel(l)
		if err != nil {
			return err
		}
		fmt.Printf("---\n# %s\n%s", l.Identifier(), out)
	}
	return nil
}

func entitiesCommand(path, where string, opts []ldtk.Option) error {
	filter, err := query.Compile(where)
	if err != nil {
		return err
	}
	p, err := ldtk.Load(path, opts...)
	if err != nil {
		return err
	}
	view, err := p.View()
	if CLI.Entities.Resolve {
		view, err = p.ResolvedView(context.Background())
	}
	if err != nil {
		return err
	}

	hits, err := filter.Entities(view)
	if err != nil {
		return err
	}
	return printEntities(os.Stdout, hits)
}

func detectCommand(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		v, err := ldtk.DetectVersion(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s\t%s\n", path, v)
	}
	return nil
}

func watchCommand(path string, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := watch.NewReloader(path, cfg, log.Logger)
	if err != nil {
		return err
	}
	defer r.Close()

	go func() {
		for reload := range r.Reloads() {
			if reload.Err != nil {
				continue
			}
			out, err := reload.Project.Dump(CLI.Watch.Subtree)
			if err != nil {
				log.Error().Err(err).Msg("dump failed")
				continue
			}
			fmt.Printf("---\n# %s\n%s", reload.Changed, out)
		}
	}()

	log.Info().Str("project", path).Msg("watching")
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
