package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/dispatcher"
	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/dispatcher/handlers"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/file"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/script"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input"
	"github.com/dshills/lineedit/internal/plugin/lua"
)

// summaryActions is how many of the most used actions the session
// summary lists.
const summaryActions = 3

// Application is one editing session: a configured engine behind a
// dispatcher, driven by the console menu or by a script.
type Application struct {
	mu sync.Mutex

	// Core infrastructure
	cfg     config.Config
	logger  *Logger
	logFile *os.File
	session Session

	// Editing components
	engine     *engine.Engine
	dispatcher *dispatcher.Dispatcher
	scripts    *lua.Runner

	// Console
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	width       int

	shutdown bool

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides logging.level when non-empty.
	LogLevel string

	// Capacity overrides buffer.capacity when positive.
	Capacity int

	// UndoLimit overrides history.limit when positive.
	UndoLimit int

	// Script is a script to run instead of the menu.
	Script string

	// Files are files to read on startup. Only the first is read.
	Files []string

	// Input is where menu choices are read. Defaults to os.Stdin.
	Input io.Reader

	// Output is where the menu and messages are written. Defaults to os.Stdout.
	Output io.Writer

	// LogOutput receives log lines, overriding logging.file.
	LogOutput io.Writer

	// Prompts forces the menu and prompts to be printed even when Input
	// is not a terminal.
	Prompts bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		session: NewSession(),
	}

	if err := app.bootstrap(); err != nil {
		_ = app.closeLog()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration, with command-line overrides on top
	cfg, err := config.Load(config.Options{Path: app.opts.ConfigPath})
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	// 3. Console
	in := app.opts.Input
	if in == nil {
		in = os.Stdin
	}
	app.in = bufio.NewReader(in)
	app.out = app.opts.Output
	if app.out == nil {
		app.out = os.Stdout
	}
	app.interactive = app.opts.Prompts || isTerminal(in)
	app.width = displayWidth(cfg.Display, app.out)

	// 4. Engine
	app.engine = engine.New(
		engine.WithCapacity(cfg.Buffer.Capacity),
		engine.WithUndoLimit(cfg.History.Limit),
	)

	// 5. Dispatcher
	app.dispatcher = dispatcher.New(dispatcher.DefaultConfig().WithMetrics())
	app.dispatcher.SetEngine(app.engine)
	app.dispatcher.SetSessionID(app.session.ID)
	app.registerHooks()

	// 6. Script runner and handlers
	app.scripts = lua.NewRunner(app.dispatcher,
		lua.WithRunnerTimeout(cfg.Script.TimeoutDuration()),
		lua.WithRunnerCallLimit(cfg.Script.CallLimit),
		lua.WithRunnerOutput(app.out),
	)
	handlers.RegisterAll(app.dispatcher, app.scripts)

	app.logger.Info("session started (capacity=%d, undo limit=%d)", cfg.Buffer.Capacity, cfg.History.Limit)
	return nil
}

// applyOverrides applies command-line options to cfg.
func (app *Application) applyOverrides(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.Capacity > 0 {
		cfg.Buffer.Capacity = app.opts.Capacity
	}
	if app.opts.UndoLimit > 0 {
		cfg.History.Limit = app.opts.UndoLimit
	}
}

// initLogger creates the session logger.
func (app *Application) initLogger() error {
	output := app.opts.LogOutput
	if output == nil && app.cfg.Logging.File != "" {
		f, err := os.OpenFile(app.cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		output = f
	}

	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(app.cfg.Logging.Level)
	if output != nil {
		logCfg.Output = output
	}
	app.logger = NewLogger(logCfg).WithField("session", app.session.ID)
	return nil
}

// registerHooks attaches dispatch logging.
func (app *Application) registerHooks() {
	logging := dispatcher.NewLoggingHook(app.logger.WithComponent("dispatcher").Debug)
	app.dispatcher.RegisterPreHook(logging)
	app.dispatcher.RegisterPostHook(logging)

	failures := app.logger.WithComponent("dispatcher")
	app.dispatcher.RegisterPostHook(dispatcher.PostDispatchFunc(
		func(action *input.Action, _ *execctx.ExecutionContext, result *handler.Result) {
			if result.IsError() {
				failures.WithField("action", action.Name).Warn("action failed: %v", result.Error)
			}
		},
	))
}

// Run reads the startup file, then runs the startup script if one was
// given, or the menu loop otherwise. It returns nil when the user exits.
func (app *Application) Run(ctx context.Context) error {
	if len(app.opts.Files) > 0 {
		path := app.opts.Files[0]
		app.report(app.dispatch(ctx, input.NewAction(file.ActionRead, "path", path)))
	}

	if app.opts.Script != "" {
		return app.RunScript(ctx, app.opts.Script)
	}

	return app.runMenu(ctx)
}

// RunScript runs the script at path against the session. Cancelling ctx
// stops the script.
func (app *Application) RunScript(ctx context.Context, path string) error {
	result := app.dispatch(ctx, input.NewAction(script.ActionRun, "path", path))
	app.report(result)
	if result.IsError() {
		return NewOperationError("script", path, result.Error)
	}
	return nil
}

// Dispatch executes an action against the session.
func (app *Application) Dispatch(action input.Action) handler.Result {
	return app.dispatcher.Dispatch(action)
}

// dispatch executes an action that originated at the console.
func (app *Application) dispatch(ctx context.Context, action input.Action) handler.Result {
	return app.dispatcher.DispatchContext(ctx, action.WithSource(input.SourceMenu))
}

// report prints a result's message, falling back to its error.
func (app *Application) report(result handler.Result) {
	switch {
	case result.Message != "":
		app.println(result.Message)
	case result.Error != nil:
		app.println("Error: " + result.Error.Error())
	}
}

func (app *Application) println(s string) {
	fmt.Fprintln(app.out, s)
}

// Shutdown logs a session summary and releases the log file.
func (app *Application) Shutdown() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.shutdown {
		return ErrAlreadyShutdown
	}
	app.shutdown = true

	if m := app.dispatcher.Metrics(); m != nil {
		app.logSummary(m)
	}
	return app.closeLog()
}

// logSummary logs the session totals and the most used actions.
func (app *Application) logSummary(m *dispatcher.Metrics) {
	snap := m.Snapshot()
	app.logger.Info("session ended after %s: %d actions, %d errors, %d panics",
		app.session.Uptime().Round(time.Millisecond), snap.Dispatches, snap.Errors, snap.Panics)

	for _, am := range m.TopActions(summaryActions) {
		app.logger.WithField("action", am.Name).Info("%d dispatches, %.0f%% failed", am.Dispatches, am.ErrorRate())
	}
}

func (app *Application) closeLog() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// Config returns the effective configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Engine returns the session's editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Dispatcher returns the session's dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Session returns the session identity.
func (app *Application) Session() Session {
	return app.session
}

// Logger returns the session logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
