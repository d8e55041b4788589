package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kokomoarts/kokomo-events/internal/aggregate"
	"github.com/kokomoarts/kokomo-events/internal/api"
	"github.com/kokomoarts/kokomo-events/internal/config"
	"github.com/kokomoarts/kokomo-events/internal/fetch"
	"github.com/kokomoarts/kokomo-events/internal/filter"
	"github.com/kokomoarts/kokomo-events/internal/logger"
	"github.com/kokomoarts/kokomo-events/internal/metrics"
	"github.com/kokomoarts/kokomo-events/internal/sources"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig string

	flagListen string

	flagFormat     string
	flagSort       string
	flagSearch     string
	flagSources    []string
	flagCategories []string
	flagKAAOnly    bool
	flagVerbose    bool
)

// NewRootCmd creates the root command with the serve and scrape subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kokomo-events",
		Short: "Aggregate Kokomo area event listings from a dozen public sources",
		Long: `kokomo-events scrapes the Kokomo / Howard County event calendars
(city, chamber, press, radio, library and more), normalizes every listing
into one schema, removes duplicates and serves the merged list.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: config.yaml)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// newServeCmd creates the serve subcommand: the HTTP delivery boundary.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the aggregated event list over HTTP",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (overrides config)")
	return cmd
}

// newScrapeCmd creates the scrape subcommand: one aggregation run printed to
// the terminal, with the browser UI's filters available as flags.
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one aggregation and print the deduplicated events",
		RunE:  runScrape,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date, title or source")
	cmd.Flags().StringVar(&flagSearch, "search", "", "Keep events matching a search term")
	cmd.Flags().StringSliceVar(&flagSources, "source", nil, "Keep events from the named sources")
	cmd.Flags().StringSliceVar(&flagCategories, "category", nil, "Keep events in the named categories")
	cmd.Flags().BoolVar(&flagKAAOnly, "kaa-only", false, "Keep only art-association-relevant events")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Show description, address and URL per event")
	return cmd
}

// setup loads configuration and builds the aggregation pipeline shared by
// both subcommands.
func setup() (*config.Config, zerolog.Logger, *aggregate.Aggregator, *metrics.Metrics, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, zerolog.Nop(), nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Log.Level, logger.Format(cfg.Log.Format), os.Stderr)

	deps := sources.Deps{
		Client:   fetchClient(cfg),
		Renderer: pageRenderer(cfg),
		Log:      logger.Component(log, "sources"),
	}

	m := metrics.New()
	agg := aggregate.New(
		sources.All(deps, cfg.Scrape.Disabled),
		cfg.Scrape.SourceTimeout,
		logger.Component(log, "aggregate"),
		m,
	)
	return cfg, log, agg, m, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, agg, m, err := setup()
	if err != nil {
		return err
	}

	listen := cfg.Server.Listen
	if flagListen != "" {
		listen = flagListen
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("listen", listen).Msg("kokomo event aggregator listening")

	server := api.New(agg, logger.Component(log, "api"), m)
	if err := server.ListenAndServe(ctx, listen); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByDate && order != SortByTitle && order != SortBySource {
		return fmt.Errorf("invalid sort: %s (must be 'date', 'title' or 'source')", flagSort)
	}

	_, _, agg, _, err := setup()
	if err != nil {
		return err
	}

	events := agg.Events(cmd.Context())

	f := filter.Filter{
		Search:     flagSearch,
		Sources:    flagSources,
		Categories: flagCategories,
		KAAOnly:    flagKAAOnly,
	}
	events = f.Apply(events)
	sortEvents(events, order)

	return WriteOutput(os.Stdout, events, format, flagVerbose)
}

// fetchClient builds the static retrieval client from config.
func fetchClient(cfg *config.Config) *fetch.Client {
	return fetch.NewClient(cfg.Scrape.FetchTimeout, cfg.Scrape.UserAgent)
}

// pageRenderer builds the headless rendered-retrieval strategy from config.
func pageRenderer(cfg *config.Config) fetch.PageRenderer {
	return fetch.NewRenderer(cfg.Scrape.MarkerWait)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
