package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2kybe3/kcli/internal/config"
	"github.com/2kybe3/kcli/internal/logger"
	"github.com/2kybe3/kcli/internal/pastebins"
)

// Options configure App construction. Zero values pick the defaults.
type Options struct {
	Settings   *config.Settings // defaults to config.LoadSettings()
	ConfigPath string           // overrides Settings.ConfigPath and the per-user path
	Logger     logger.Logger    // defaults to a zap logger built from Settings
	HTTPClient *http.Client     // shared by every backend
}

// App holds everything loaded at startup: the config file and the registry
// of backends it enables.
type App struct {
	settings *config.Settings
	cfg      *config.File
	cfgPath  string
	logger   logger.Logger
	registry *pastebins.Registry
}

// New loads (or creates) the config file and populates the registry.
func New(opts Options) (*App, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.LoadSettings()
	}

	loggerClient := opts.Logger
	if loggerClient == nil {
		loggerClient = logger.New(settings.LogLevel, settings.PrettyLog)
	}

	cfgPath, err := resolveConfigPath(opts.ConfigPath, settings.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", cfgPath, err)
	}
	loggerClient.Debug("config loaded", logger.String("path", cfgPath))

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	return &App{
		settings: settings,
		cfg:      cfg,
		cfgPath:  cfgPath,
		logger:   loggerClient,
		registry: BuildRegistry(cfg, loggerClient, hc),
	}, nil
}

func resolveConfigPath(paths ...string) (string, error) {
	for _, p := range paths {
		if p != "" {
			return p, nil
		}
	}
	return config.DefaultPath()
}

// Upload dispatches content to the backend registered under serviceID.
// An unregistered ID yields pastebins.ErrNotRegistered.
func (a *App) Upload(ctx context.Context, serviceID, content string) (string, error) {
	service, ok := a.registry.Get(serviceID)
	if !ok {
		return "", fmt.Errorf("%w: %q (enable it and set its key in %s)", pastebins.ErrNotRegistered, serviceID, a.cfgPath)
	}

	meta := service.Meta()
	a.logger.Debug("uploading paste",
		logger.String("service", meta.ID),
		logger.Int("bytes", len(content)))

	url, err := service.Upload(ctx, content)
	if err != nil {
		return "", fmt.Errorf("upload to %s failed: %w", meta.String(), err)
	}

	return url, nil
}

func (a *App) Config() *config.File          { return a.cfg }
func (a *App) ConfigPath() string            { return a.cfgPath }
func (a *App) Settings() *config.Settings    { return a.settings }
func (a *App) Logger() logger.Logger         { return a.logger }
func (a *App) Registry() *pastebins.Registry { return a.registry }
