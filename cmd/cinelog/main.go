package main

import (
	"context"
	"fmt"
	"os"

	"cinelog/cmd/cinelog/render"
	"cinelog/internal/catalog"
	"cinelog/internal/config"
	"cinelog/internal/logging"
	"cinelog/internal/lookup"

	"github.com/alecthomas/kong"
)

type CLI struct {
	List      ListCmd      `cmd:"" aliases:"ls" help:"List movies in the catalog"`
	Add       AddCmd       `cmd:"" aliases:"a" help:"Look up a movie on OMDb and add it"`
	Rm        RmCmd        `cmd:"" help:"Delete a movie from the catalog"`
	Notes     NotesCmd     `cmd:"" help:"Set the notes of a movie"`
	Stats     StatsCmd     `cmd:"" help:"Show rating statistics"`
	Random    RandomCmd    `cmd:"" help:"Pick a random movie"`
	Search    SearchCmd    `cmd:"" aliases:"s" help:"Search movies by title"`
	Sorted    SortedCmd    `cmd:"" help:"List movies by rating, best first"`
	Histogram HistogramCmd `cmd:"" help:"Show a rating histogram"`
	Report    ReportCmd    `cmd:"" help:"Generate the movie website"`
	Menu      MenuCmd      `cmd:"" default:"1" help:"Run the interactive menu"`

	CatalogPath string `name:"catalog" short:"c" help:"Path to catalog file"`
	Backend     string `name:"backend" short:"b" help:"Storage backend: json, yaml or csv (default: from file extension)"`
	ConfigPath  string `name:"config" help:"Path to config file"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})

	store, err := c.openStore(cfg.Catalog)
	if err != nil {
		return err
	}

	finder := lookup.NewClient(lookup.Options{
		APIKey:            cfg.OMDb.APIKey,
		BaseURL:           cfg.OMDb.BaseURL,
		Timeout:           cfg.OMDb.Timeout,
		RequestsPerSecond: cfg.OMDb.RequestsPerSecond,
	})

	globals := &Globals{
		Ctx:      context.Background(),
		Cat:      catalog.New(store, finder),
		Out:      os.Stdout,
		Render:   render.NewLipglossRendererAuto(os.Stdout),
		Prompter: newHuhPrompter(),
		Report:   cfg.Report,
	}
	ctx.Bind(globals)
	return nil
}

func (c *CLI) openStore(cfg config.CatalogConfig) (catalog.Store, error) {
	path := c.CatalogPath
	if path == "" {
		path = cfg.Path
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}

	kind, err := resolveKind(c.Backend, cfg.Backend, path)
	if err != nil {
		return nil, err
	}

	store, err := catalog.Open(kind, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	logging.Debug().Str("path", path).Str("backend", string(kind)).Msg("catalog opened")
	return store, nil
}

// resolveKind prefers the flag, then the config file, and only then the file
// extension.
func resolveKind(flag, configured, path string) (catalog.Kind, error) {
	for _, declared := range []string{flag, configured} {
		if declared != "" {
			return catalog.ParseKind(declared)
		}
	}
	return catalog.KindFromPath(path)
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("cinelog"),
		kong.Description("Personal movie catalog"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
