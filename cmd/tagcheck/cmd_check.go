package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhamidi/tagcheck/config"
	"github.com/dhamidi/tagcheck/format"
	"github.com/dhamidi/tagcheck/lint"
	"github.com/dhamidi/tagcheck/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckCmd(globals *globalFlags) *cobra.Command {
	var (
		watch        bool
		pollInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Validate files matching glob patterns (\"-\" reads stdin)",
		Long: `Validate every file matched by the given glob patterns and report
unbalanced tags and unclosed comments. Patterns may use "**". Without
patterns, the include globs from the configuration are used.

The exit status is 2 when any file has findings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, globals)
			if err != nil {
				return err
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = cfg.Include
			}

			if watch {
				return runWatch(cmd.Context(), cfg, patterns, pollInterval)
			}
			return runCheck(cmd.Context(), cfg, patterns)
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "string", "output format: string, json or line")
	flags.Int("concurrency", 8, "number of files validated at once")
	flags.StringSlice("raw-text", nil, "extra elements whose content is not scanned for tags")
	flags.StringSlice("void", nil, "extra elements that never take a closing tag")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolVarP(&watch, "watch", "w", false, "revalidate files as they change until interrupted")
	flags.DurationVar(&pollInterval, "poll", time.Second, "how often --watch looks for changes")

	return cmd
}

func loadConfig(cmd *cobra.Command, globals *globalFlags) (config.Config, error) {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	return config.Load(v, globals.configFile)
}

func runCheck(ctx context.Context, cfg config.Config, patterns []string) error {
	results, err := lint.Run(ctx, patterns, lint.Options{
		Concurrency: cfg.Concurrency,
		Markup:      cfg.MarkupOptions(),
		Stdin:       os.Stdin,
	})
	if err != nil {
		return err
	}

	enc, err := format.New(cfg.Format, os.Stdout, tableOptions(cfg)...)
	if err != nil {
		return err
	}
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if lint.Errored(results) {
		return &exitError{code: 2}
	}
	return nil
}

// tableOptions leaves color to terminal detection unless it is turned off.
func tableOptions(cfg config.Config) []format.TableOption {
	var opts []format.TableOption
	if cfg.NoColor {
		opts = append(opts, format.WithColor(false))
	}
	return opts
}

func runWatch(ctx context.Context, cfg config.Config, patterns []string, pollInterval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	enc, err := format.New(cfg.Format, os.Stdout, tableOptions(cfg)...)
	if err != nil {
		return err
	}

	ws := workspace.New(root, patterns, cfg.MarkupOptions()...)
	watcher := workspace.NewFileWatcher(ws, pollInterval)
	watcher.OnChange = func(doc *workspace.Document) {
		if doc.Err != nil {
			log.Errorf("validate %s: %s", doc.Path, doc.Err)
			return
		}
		result := lint.FileResult{Source: doc.Path, Errors: doc.Result.Errors}
		if err := enc.Encode([]lint.FileResult{result}); err != nil {
			log.Errorf("write results: %s", err)
		}
	}
	watcher.OnRemove = func(path string) {
		log.Infof("%s removed", path)
	}

	log.Noticef("watching %s", root)
	watcher.Start()
	<-ctx.Done()
	watcher.Stop()

	return nil
}
