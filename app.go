// Package settingspy wires a layered settings resolver into an Fx application.
package settingspy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/settingspy/logging"
	"github.com/0xalexb/settingspy/settings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func logLevel(options *Options) string {
	if options.LogLevel == "" && options.Bootstrap != nil {
		return options.Bootstrap.LogLevel
	}

	return options.LogLevel
}

func configure(options *Options) *fx.App {
	level := logLevel(options)
	logger := createLogger(level, os.Stderr)
	slog.SetDefault(logger)

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: level}),
		fx.Supply(logger),
	}

	if options.Registry != nil {
		fxOptions = append(fxOptions, fx.Supply(options.Registry))
	}

	if options.Bootstrap != nil {
		fxOptions = append(fxOptions,
			fx.Supply(options.Bootstrap),
			settings.NewModule(options.Settings...),
		)
	}

	if len(options.Errors) > 0 {
		fxOptions = append(fxOptions, fx.Error(options.Errors...))
	}

	fxOptions = append(fxOptions, fx.Options(options.Modules...))

	return fx.New(fxOptions...)
}

func createLogger(level string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level}

	return logging.NewLogger(config, w)
}

// Err returns the error, if any, encountered while building the application.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // the Fx error already names the failing constructor.
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
