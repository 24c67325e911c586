package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairwise/config"
	"github.com/katalvlaran/pairwise/stats"
)

// app carries state shared by every subcommand after PersistentPreRunE.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg      *config.Config
	logger   *slog.Logger
	resolver *stats.Resolver
	out      io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, resolver: stats.NewResolver()}
	root := &cobra.Command{
		Use:               "pairwise",
		Short:             "Pairwise column and row matrices over a modeled dataset",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ~/.pairwise/pairwise.yaml or ./pairwise.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json (overrides config)")

	root.AddCommand(newColumnsCmd(a), newRowsCmd(a))

	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("log-level") {
		c.LogLevel = a.logLevel
	}
	if f.Changed("log-format") {
		c.LogFormat = a.logFormat
	}
	if err := c.Validate(); err != nil {
		return err
	}
	a.cfg = c

	a.logger, err = newLogger(c, cmd.ErrOrStderr())

	return err
}

func newLogger(c *config.Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// functionUsage lists the names the resolver accepts in mode.
func (a *app) functionUsage(mode stats.Mode) string {
	return fmt.Sprintf("%s statistic: %s", mode, strings.Join(a.resolver.Names(mode), ", "))
}

// pick returns the flag value when set, otherwise the config fallback.
func pick(cmd *cobra.Command, flag, value, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}

	return fallback
}
