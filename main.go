package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tuicomplete/internal/config"
	"tuicomplete/internal/dataset"
	"tuicomplete/internal/domain"
	"tuicomplete/internal/eventbus"
	"tuicomplete/internal/fetch"
	"tuicomplete/internal/source"
	"tuicomplete/internal/ui"
	"tuicomplete/internal/ui/autocomplete"
)

var version = "0.1.0"

var (
	configPath string
	numResults int
	dataFile   string
	noRemote   bool
	strict     bool
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:          "tuicomplete",
	Short:        "Searchable dropdowns in the terminal",
	Long:         "tuicomplete shows a US state picker and a GitHub user picker. Type to filter, use the arrow keys and enter (or click) to select.",
	SilenceUsage: true,
	RunE:         runApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tuicomplete %s\n", version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default config file if it does not exist and print its path",
	RunE: func(cmd *cobra.Command, args []string) error {
		bus := eventbus.New()
		defer bus.Close()
		subscribeLogging(bus)

		configSvc := config.WithBus(newConfigService(), bus)
		if _, err := os.Stat(configSvc.Path()); os.IsNotExist(err) {
			if err := configSvc.Save(config.DefaultConfig()); err != nil {
				return err
			}
		}
		fmt.Println(configSvc.Path())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the TOML config file")
	rootCmd.Flags().IntVarP(&numResults, "results", "n", 0, "Maximum number of results per query")
	rootCmd.Flags().StringVarP(&dataFile, "data", "d", "", "TOML dataset replacing the built-in US states")
	rootCmd.Flags().BoolVar(&noRemote, "no-remote", false, "Hide the GitHub user picker")
	rootCmd.Flags().BoolVar(&strict, "strict", true, "Ignore results of queries that are no longer the latest")
	rootCmd.Flags().StringVar(&logPath, "log", "tuicomplete.log", "Log file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newConfigService() config.ConfigService {
	if configPath != "" {
		return config.NewConfigServiceAt(configPath)
	}
	return config.NewConfigService()
}

// selection is one confirmed choice, printed after the UI exits
type selection struct {
	field string
	value any
}

func runApp(cmd *cobra.Command, args []string) error {
	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	stats := subscribeLogging(bus)

	configSvc := config.WithBus(newConfigService(), bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg)

	var selections []selection
	onSelect := func(field string) func(any) {
		return func(value any) {
			selections = append(selections, selection{field: field, value: value})
		}
	}

	fields, err := buildFields(ctx, cfg, bus, onSelect)
	if err != nil {
		return err
	}

	uiModel := ui.NewModel(cfg.UI, fields...)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally: %s", stats)

	for _, s := range selections {
		fmt.Printf("%s\t%v\n", s.field, s.value)
	}
	return nil
}

// sessionStats counts bus events over one run
type sessionStats struct {
	selections atomic.Int64
	stale      atomic.Int64
	failures   atomic.Int64
}

func (s *sessionStats) String() string {
	return fmt.Sprintf("%d selections, %d stale result sets dropped, %d failed lookups",
		s.selections.Load(), s.stale.Load(), s.failures.Load())
}

// subscribeLogging logs bus events to the log file and counts them
func subscribeLogging(bus eventbus.EventBus) *sessionStats {
	stats := &sessionStats{}

	bus.Subscribe(eventbus.EventSelectionConfirmed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionConfirmedEvent); ok {
			stats.selections.Add(1)
			log.Printf("selected %s: %s (%v)", event.Widget, event.Text, event.Value)
		}
	})
	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchFailedEvent); ok {
			stats.failures.Add(1)
			log.Printf("lookup for %q degraded to no results: %v", event.Query, event.Err)
		}
	})
	// The widget already logs each drop
	bus.Subscribe(eventbus.EventStaleResults, func(e eventbus.DomainEvent) {
		stats.stale.Add(1)
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded config from %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Saved config to %s", event.Path)
		}
	})

	return stats
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("results") && numResults > 0 {
		cfg.Widget.NumOfResults = numResults
	}
	if flags.Changed("data") {
		cfg.Widget.DataFile = dataFile
	}
	if flags.Changed("no-remote") {
		cfg.Widget.DisableRemote = noRemote
	}
	if flags.Changed("strict") {
		cfg.Widget.Strict = strict
	}
}

// buildFields wires one widget per data source: the static state list (or a
// custom dataset file) and, unless disabled, GitHub user search.
func buildFields(ctx context.Context, cfg *config.Config, bus eventbus.EventBus, onSelect func(string) func(any)) ([]ui.Field, error) {
	data := dataset.States()
	label := "US state"
	if cfg.Widget.DataFile != "" {
		custom, err := dataset.LoadFile(cfg.Widget.DataFile)
		if err != nil {
			return nil, err
		}
		data, label = custom, cfg.Widget.DataFile
	}

	var fields []ui.Field
	staticField, err := newField(ctx, "state", label, "Start typing a state…", cfg, bus, onSelect, data, nil)
	if err != nil {
		return nil, err
	}
	fields = append(fields, staticField)

	if !cfg.Widget.DisableRemote {
		var fetcher fetch.Fetcher = fetch.NewGitHubUsers(cfg.GitHub.BaseURL, nil)
		if cfg.GitHub.CacheSize > 0 {
			cached, err := fetch.NewCached(fetcher, cfg.GitHub.CacheSize)
			if err != nil {
				return nil, err
			}
			fetcher = cached
		}
		remoteField, err := newField(ctx, "gh-user", "GitHub user", "Search GitHub logins…", cfg, bus, onSelect, nil, fetcher)
		if err != nil {
			return nil, err
		}
		fields = append(fields, remoteField)
	}

	return fields, nil
}

func newField(ctx context.Context, id, label, placeholder string, cfg *config.Config, bus eventbus.EventBus,
	onSelect func(string) func(any), data domain.Dataset, fetcher fetch.Fetcher) (ui.Field, error) {
	src, err := source.New(data, fetcher, cfg.Widget.NumOfResults, bus)
	if err != nil {
		return ui.Field{}, err
	}
	w, err := autocomplete.New(id, autocomplete.Options{
		Source:       src,
		NumOfResults: cfg.Widget.NumOfResults,
		OnSelect:     onSelect(id),
		Placeholder:  placeholder,
		Strict:       cfg.Widget.Strict,
		Bus:          bus,
		Context:      ctx,
	})
	if err != nil {
		return ui.Field{}, err
	}
	return ui.Field{Label: label, Widget: w}, nil
}
