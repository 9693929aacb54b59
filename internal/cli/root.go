// Package cli is the gprocs command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/w31r4/gprocs/internal/column"
	"github.com/w31r4/gprocs/internal/config"
	"github.com/w31r4/gprocs/internal/process"
	"github.com/w31r4/gprocs/internal/style"
	"github.com/w31r4/gprocs/internal/term"
	"github.com/w31r4/gprocs/internal/tui"
	"github.com/w31r4/gprocs/internal/view"
)

type flags struct {
	opts       config.Options
	pager      string
	color      string
	theme      string
	configPath string
	debug      bool
	list       bool
}

// Execute runs gprocs and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "gprocs [KEYWORD...]",
		Short:         "List processes, filtered by keywords",
		Long:          "gprocs lists processes. Non-numeric keywords match text columns such as the user and command; numeric keywords match process IDs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.opts.Keywords = args
			return run(cmd.Context(), f, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&f.opts.Tree, "tree", "t", false, "show the process tree")
	fl.BoolVarP(&f.opts.Watch, "watch", "w", false, "refresh the list until q is pressed")
	fl.DurationVar(&f.opts.WatchInterval, "watch-interval", time.Second, "refresh interval in watch mode")
	fl.DurationVar(&f.opts.Interval, "interval", 100*time.Millisecond, "CPU usage sampling window")
	fl.StringArrayVarP(&f.opts.Insert, "insert", "i", nil, "column to place in the next slot (repeatable)")
	fl.StringVar(&f.opts.SortAsc, "sorta", "", "sort ascending by the column whose name contains this")
	fl.StringVar(&f.opts.SortDesc, "sortd", "", "sort descending by the column whose name contains this")
	fl.BoolVar(&f.opts.And, "and", false, "every keyword must match")
	fl.BoolVar(&f.opts.Or, "or", false, "any keyword may match")
	fl.BoolVar(&f.opts.Nand, "nand", false, "not every keyword matches")
	fl.BoolVar(&f.opts.Nor, "nor", false, "no keyword matches")
	fl.StringVar(&f.pager, "pager", "", "pager mode: auto|always|disable")
	fl.StringVar(&f.color, "color", "", "color mode: auto|always|disable")
	fl.StringVar(&f.theme, "theme", "", "theme: auto|dark|light")
	fl.StringVar(&f.configPath, "config", "", "configuration file (default $GPROCS_CONFIG or the user config dir)")
	fl.BoolVar(&f.debug, "debug", false, "log diagnostics to stderr")
	fl.BoolVar(&f.list, "list", false, "list column kinds and exit")

	cmd.MarkFlagsMutuallyExclusive("and", "or", "nand", "nor")
	cmd.MarkFlagsMutuallyExclusive("sorta", "sortd")
	return cmd
}

// newLogger writes funcr lines to w; --debug enables V(1).
func newLogger(w io.Writer, debug bool) logr.Logger {
	verbosity := 0
	if debug {
		verbosity = 1
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

func run(ctx context.Context, f *flags, stdout, stderr io.Writer) error {
	log := newLogger(stderr, f.debug).WithName("gprocs")

	if f.list {
		return listKinds(stdout)
	}
	if err := f.parseModes(); err != nil {
		return err
	}
	if f.opts.Watch && f.opts.WatchInterval <= 0 {
		return fmt.Errorf("--watch-interval must be positive")
	}

	cfg, path, err := config.Resolve(f.configPath)
	if err != nil {
		return err
	}
	if path == "" {
		log.V(1).Info("using built-in configuration")
	} else {
		log.V(1).Info("loaded configuration", "path", path)
	}
	if f.theme != "" {
		cfg.Display.Theme = config.Theme(f.theme)
	}

	palette, err := style.NewPalette(cfg.Style)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	resolver := style.NewResolver(style.ResolveTheme(cfg.Display.Theme), palette)
	log.V(1).Info("theme", "configured", cfg.Display.Theme, "resolved", resolver.Theme().String())

	collector := &process.Collector{
		Interval: f.opts.Interval,
		Ports:    usesPorts(cfg, f.opts.Insert),
		Log:      log.WithName("collector"),
	}
	info := term.For(stdout)

	if f.opts.Watch {
		return tui.Start(tui.Deps{
			Options:   &f.opts,
			Config:    cfg,
			Resolver:  resolver,
			Collector: collector,
			Term:      info,
			Log:       log.WithName("watch"),
		})
	}

	records, err := collector.Collect(ctx)
	if err != nil {
		return err
	}
	v, err := view.New(&f.opts, cfg, records, info, resolver)
	if err != nil {
		return err
	}
	v.Log = log.WithName("view")
	v.Filter(&f.opts)
	v.Adjust(nil)
	return v.Display(&f.opts)
}

func (f *flags) parseModes() error {
	if f.pager != "" {
		m, err := config.ParsePagerMode(f.pager)
		if err != nil {
			return fmt.Errorf("--pager: %w", err)
		}
		f.opts.Pager = m
	}
	if f.color != "" {
		m, err := config.ParseColorMode(f.color)
		if err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		f.opts.Color = m
	}
	if f.theme != "" {
		if _, err := config.ParseTheme(f.theme); err != nil {
			return fmt.Errorf("--theme: %w", err)
		}
	}
	return nil
}

// usesPorts reports whether any configured or inserted column shows ports,
// so the slower connection scan only runs when needed.
func usesPorts(cfg *config.Config, insert []string) bool {
	for _, c := range cfg.Columns {
		if c.Kind == config.KindTCPPort {
			return true
		}
	}
	for _, name := range insert {
		if k, ok := column.FindKind(name); ok && k == config.KindTCPPort {
			return true
		}
	}
	return false
}

func listKinds(w io.Writer) error {
	for _, k := range column.Kinds() {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", k.Name, k.Description); err != nil {
			return err
		}
	}
	return nil
}
