package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/drushlog/backend"
	"github.com/philipp01105/drushlog/config"
	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
	"github.com/philipp01105/drushlog/handler"
	"github.com/philipp01105/drushlog/history"
	"github.com/philipp01105/drushlog/logger"
	"github.com/philipp01105/drushlog/watchdog"
)

// consoleFlags holds the global flags that override [console].
type consoleFlags struct {
	verbose bool
	debug   bool
	quiet   bool
	noColor bool
	backend bool
	columns int
}

// app is the logging stack shared by the subcommands.
type app struct {
	config   *config.Config
	settings *env.Store
	history  *history.Buffer
	console  *logger.Console
	watchdog *logger.Watchdog
	store    *watchdog.Store
	log      *logger.Leveled
}

type commandContext struct {
	configFlag *string
	flags      *consoleFlags

	appOnce sync.Once
	app     *app
	appErr  error
}

func newCommandContext(configFlag *string, flags *consoleFlags) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		flags:      flags,
	}
}

func (c *commandContext) ensureApp(cmd *cobra.Command) (*app, error) {
	c.appOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.appErr = err
			return
		}
		c.applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			c.appErr = err
			return
		}
		c.app, c.appErr = buildApp(cmd, cfg)
	})
	return c.app, c.appErr
}

// applyFlags copies explicitly set global flags over the config.
func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	pf := cmd.Flags()
	if pf.Changed("verbose") {
		cfg.Console.Verbose = c.flags.verbose
	}
	if pf.Changed("debug") {
		cfg.Console.Debug = c.flags.debug
	}
	if pf.Changed("quiet") {
		cfg.Console.Quiet = c.flags.quiet
	}
	if pf.Changed("nocolor") {
		cfg.Console.NoColor = c.flags.noColor
	}
	if pf.Changed("backend") {
		cfg.Console.Backend = c.flags.backend
	}
	if pf.Changed("columns") {
		cfg.Console.Columns = c.flags.columns
	}
}

func buildApp(cmd *cobra.Command, cfg *config.Config) (*app, error) {
	settings := env.NewStore(cfg.Settings(env.Detect(os.Stderr)))
	a := &app{
		config:   cfg,
		settings: settings,
		history:  history.New(cfg.Logger.HistoryCapacity),
	}

	a.console = logger.NewConsoleBuilder().
		WithSettings(settings).
		WithHistory(a.history).
		WithTransport(backend.NewWriter(cmd.OutOrStdout(), settings)).
		WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:   cmd.ErrOrStderr(),
			Settings: settings,
		})).
		WithIgnoreLevel(core.Level(cfg.Logger.IgnoreLevel)).
		Build()

	loggers := []logger.Logger{a.console}
	if cfg.Watchdog.Enabled {
		store, err := watchdog.Open(cfg.Watchdog.Driver, cfg.Watchdog.DSN)
		if err != nil {
			return nil, fmt.Errorf("open watchdog: %w", err)
		}
		a.store = store
		a.watchdog = logger.NewWatchdogBuilder(store).
			WithIgnoreLevel(core.Level(cfg.Watchdog.IgnoreLevel)).
			Build()
		loggers = append(loggers, a.watchdog)
	}

	a.log = logger.NewLeveled(logger.NewMulti(loggers...))
	return a, nil
}

func (c *commandContext) close() error {
	if c.app == nil {
		return nil
	}
	var err error
	err = multierr.Append(err, c.app.console.Close())
	if c.app.store != nil {
		err = multierr.Append(err, c.app.store.Close())
	}
	return err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
