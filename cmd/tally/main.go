package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/tally-labs/tally/internal/adapters/log"
	"github.com/tally-labs/tally/internal/cliconfig"
	"github.com/tally-labs/tally/pkg/tally"
)

const helpDescription = `
Add an increment to a base value obtained from a pluggable source.

Highlights:
  - Sources are swappable: a fixed built-in value or a TOML value file.
  - Watch mode recomputes the total whenever the value file changes.
  - Configure via file ($HOME/.tally/config.toml), TALLY_* env vars, or flags.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  tally 3
  tally 3 --source file --source-path ./value.toml
  tally 3 --source file --source-path ./value.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "tally <increment>",
		Short:   "Add an increment to a base value obtained from a pluggable source",
		Long:    longHelp,
		Example: exampleUsage,
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			increment, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse increment: %w", err)
			}

			// Load config file first (default $HOME/.tally/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (TALLY_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Verbose {
				log = log.Level(zerolog.DebugLevel)
			} else {
				log = log.Level(zerolog.InfoLevel)
			}

			log.Debug().Interface("config", cfg).Msg("configuration")

			// Convert cliconfig.Config to tally.Config
			libCfg := tally.Config{
				Source:     cfg.Source,
				FixedValue: cfg.FixedValue,
				SourcePath: cfg.SourcePath,
				Debounce:   cfg.Debounce,
			}

			// Create zerolog adapter for the library
			zerologAdapter := logAdapter.NewZerologAdapterWithLogger(log)

			t, err := tally.New(libCfg, tally.WithLogger(zerologAdapter))
			if err != nil {
				return fmt.Errorf("create tally: %w", err)
			}

			if !cfg.Watch {
				total, err := t.Add(cmd.Context(), increment)
				if err != nil {
					return err
				}
				fmt.Println(total)
				return nil
			}

			// Watch mode: recompute on value file changes until interrupted
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			err = t.Watch(ctx, increment, func(total int64, err error) {
				if err != nil {
					log.Error().Err(err).Msg("recompute failed")
					return
				}
				fmt.Println(total)
			})
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.tally/config.toml)")
	root.Flags().StringVar(&cfg.Source, "source", cfg.Source, "value source: fixed or file")
	root.Flags().Int64Var(&cfg.FixedValue, "fixed-value", cfg.FixedValue, "base value yielded by the fixed source")
	root.Flags().StringVar(&cfg.SourcePath, "source-path", cfg.SourcePath, "TOML value file read by the file source")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "recompute when the value file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period applied to file change events")
	root.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("tally")
		os.Exit(1)
	}
}
