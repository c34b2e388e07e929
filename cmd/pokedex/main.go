package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/preston-bernstein/pokedex-service/internal/app/pokedex"
	"github.com/preston-bernstein/pokedex-service/internal/config"
	"github.com/preston-bernstein/pokedex-service/internal/loader"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
	"github.com/preston-bernstein/pokedex-service/internal/providers/factory"
	"github.com/preston-bernstein/pokedex-service/internal/render"
	"github.com/preston-bernstein/pokedex-service/internal/store"
)

const (
	appName    = "pokedex"
	appVersion = "dev"
)

var errNotFound = errors.New("pokemon not found")

// CLI is the top-level command structure for pokedex.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Provider string           `help:"Upstream provider (pokeapi or fixture)." env:"PROVIDER" default:"pokeapi"`
	Output   string           `help:"Output format." short:"o" enum:"text,json,yaml" default:"text"`
	Plain    bool             `help:"Disable styling even when stdout is a terminal."`
	LogLevel string           `help:"Log level written to stderr." env:"LOG_LEVEL" default:"warn"`

	List ListCmd `cmd:"" help:"List pokemon in upstream order."`
	Show ShowCmd `cmd:"" help:"Show one pokemon's details."`
}

// ListCmd renders the list, optionally filtered by a name substring.
type ListCmd struct {
	Filter  string `help:"Case-insensitive name substring." short:"f"`
	Limit   int    `help:"Number of pokemon to fetch (0 uses POKEAPI_LIST_LIMIT)." default:"0"`
	Details bool   `help:"Preload every entry's details before listing."`
}

// ShowCmd renders one pokemon's detail card.
type ShowCmd struct {
	Name  string `arg:"" help:"Pokemon name."`
	Limit int    `help:"Number of pokemon to search (0 uses POKEAPI_LIST_LIMIT)." default:"0"`
}

// runtime carries what every command needs once flags are parsed.
type runtime struct {
	ctx    context.Context
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
	format render.Format
	plain  bool
}

// Run executes the list command.
func (c *ListCmd) Run(rt *runtime) error {
	svc, ldr := rt.pipeline(c.Limit, c.Details)
	if err := ldr.Run(rt.ctx); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	r := rt.renderer()
	for _, p := range svc.Filter(c.Filter) {
		r.AddListItem(pokedex.Item(p))
	}
	return r.Flush()
}

// Run executes the show command.
func (c *ShowCmd) Run(rt *runtime) error {
	svc, ldr := rt.pipeline(c.Limit, false)
	if err := ldr.Run(rt.ctx); err != nil {
		return fmt.Errorf("show: %w", err)
	}

	p, ok := svc.Lookup(strings.ToLower(strings.TrimSpace(c.Name)))
	if !ok {
		return fmt.Errorf("show %q: %w", c.Name, errNotFound)
	}
	if err := svc.EnsureDetail(rt.ctx, p); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	card, err := svc.Card(p)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return rt.renderer().Detail(card)
}

func (rt *runtime) pipeline(limit int, preload bool) (*pokedex.Service, *loader.Loader) {
	if limit > 0 {
		rt.cfg.PokeAPI.ListLimit = limit
	}
	recorder := metrics.NewRecorder()
	provider := factory.New(rt.logger, recorder).Build(rt.cfg)
	svc := pokedex.NewService(store.NewMemoryStore(rt.logger), provider, pokedex.Options{
		ListLimit:   rt.cfg.PokeAPI.ListLimit,
		Concurrency: rt.cfg.Preload.Concurrency,
		Logger:      rt.logger,
		Metrics:     recorder,
	})
	ldr := loader.New(svc, loader.Options{Preload: preload, Logger: rt.logger})
	return svc, ldr
}

func (rt *runtime) renderer() *render.Renderer {
	return render.New(render.Options{Writer: rt.out, Format: rt.format, ForcePlain: rt.plain})
}

func (cli *CLI) runtime(ctx context.Context, out, errOut io.Writer) (*runtime, error) {
	format, err := render.ParseFormat(cli.Output)
	if err != nil {
		return nil, err
	}
	cfg := config.Load()
	cfg.Provider = cli.Provider
	return &runtime{
		ctx: ctx,
		cfg: cfg,
		logger: logging.NewLogger(logging.Config{
			Level:   cli.LogLevel,
			Format:  "text",
			Service: appName,
			Version: appVersion,
			Output:  errOut,
		}),
		out:    out,
		format: format,
		plain:  cli.Plain,
	}, nil
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name(appName),
		kong.Description("Browse pokemon from PokeAPI in the terminal."),
		kong.UsageOnError(),
		kong.Vars{"version": appVersion},
	}
	return kong.New(cli, append(base, opts...)...)
}

func execute(ctx context.Context, args []string, out, errOut io.Writer, opts ...kong.Option) error {
	var cli CLI
	parser, err := newParser(&cli, opts...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	rt, err := cli.runtime(ctx, out, errOut)
	if err != nil {
		return err
	}
	return kctx.Run(rt)
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
