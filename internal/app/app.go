// Package app wires configuration, logging, the pattern engine, change
// events and an optional fixture into a ready-to-use address book.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zjrosen/addressbook/internal/cachemanager"
	"github.com/zjrosen/addressbook/internal/config"
	"github.com/zjrosen/addressbook/internal/domain/addressbook"
	"github.com/zjrosen/addressbook/internal/fixture"
	"github.com/zjrosen/addressbook/internal/log"
	"github.com/zjrosen/addressbook/internal/pattern"
	"github.com/zjrosen/addressbook/internal/pubsub"
)

// ChangeEvent is a pubsub event carrying a registry change.
type ChangeEvent = pubsub.Event[addressbook.Change]

// App owns a registry and the services it depends on.
type App struct {
	cfg      config.Config
	registry *addressbook.Registry
	broker   *pubsub.Broker[addressbook.Change]
	patterns cachemanager.CacheManager[string, *pattern.Pattern]
	fixture  *fixture.Result

	fixtureFS fs.FS
	closeLog  func()
	closed    bool
}

// Option configures an App.
type Option func(*App)

// WithFixtureFS resolves fixture.path inside fsys instead of the host
// filesystem.
func WithFixtureFS(fsys fs.FS) Option {
	return func(a *App) {
		a.fixtureFS = fsys
	}
}

// New builds an App from cfg. The configuration is validated first. On error
// everything already set up is torn down again.
func New(cfg config.Config, opts ...Option) (*App, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &App{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.initLog(); err != nil {
		return nil, err
	}

	compilerOpts := []pattern.Option{pattern.WithMatchTimeout(cfg.Pattern.MatchTimeout)}
	if cfg.Pattern.CacheEnabled() {
		a.patterns = cachemanager.NewInMemoryCacheManager[string, *pattern.Pattern](
			"patterns", cfg.Pattern.CacheTTL, cfg.Pattern.CleanupInterval)
		compilerOpts = append(compilerOpts, pattern.WithCache(a.patterns, cfg.Pattern.CacheTTL))
	}

	a.broker = pubsub.NewBroker[addressbook.Change]()
	a.registry = addressbook.NewRegistry(
		addressbook.WithMatcher(pattern.NewCompiler(compilerOpts...)),
		addressbook.WithListener(a.publish),
	)

	if cfg.Fixture.Path != "" {
		res, err := a.loadFixture(cfg.Fixture.Path)
		if err != nil {
			log.ErrorErr(log.CatApp, "fixture import failed", err, "path", cfg.Fixture.Path)
			a.Close()
			return nil, err
		}
		a.fixture = res
	}

	log.Info(log.CatApp, "address book ready",
		"entities", a.registry.Len(),
		"pattern_cache", cfg.Pattern.CacheEnabled(),
		"match_timeout", cfg.Pattern.MatchTimeout)
	return a, nil
}

func (a *App) initLog() error {
	if !a.cfg.Log.Enabled {
		return nil
	}

	level, err := log.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}

	if a.cfg.Log.Path == "" {
		a.closeLog = log.InitWithWriter(os.Stderr)
	} else {
		cleanup, err := log.Init(a.cfg.Log.Path)
		if err != nil {
			return err
		}
		a.closeLog = cleanup
	}
	log.SetMinLevel(level)
	log.Debug(log.CatApp, "logging initialised", "path", a.cfg.Log.Path, "level", level)
	return nil
}

func (a *App) loadFixture(path string) (*fixture.Result, error) {
	if a.fixtureFS != nil {
		return fixture.Load(a.fixtureFS, path, a.registry)
	}
	return fixture.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path), a.registry)
}

func (a *App) publish(c addressbook.Change) {
	event := pubsub.UpdatedEvent
	if c.Kind == addressbook.ChangePersonCreated || c.Kind == addressbook.ChangeGroupCreated {
		event = pubsub.CreatedEvent
	}
	a.broker.Publish(event, c)
}

// Registry returns the address book.
func (a *App) Registry() *addressbook.Registry {
	return a.registry
}

// Fixture returns the entities imported at startup, or nil when no fixture
// was configured.
func (a *App) Fixture() *fixture.Result {
	return a.fixture
}

// Config returns the configuration the App was built with.
func (a *App) Config() config.Config {
	return a.cfg
}

// Subscribe streams registry changes until ctx is cancelled or the App is closed.
func (a *App) Subscribe(ctx context.Context) <-chan ChangeEvent {
	return a.broker.Subscribe(ctx)
}

// Close resets the registry, flushes the pattern cache and closes the
// change broker and the log. It is safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	if a.registry != nil {
		a.registry.Reset()
	}
	if a.patterns != nil {
		a.patterns.Flush()
	}
	if a.broker != nil {
		a.broker.Close()
	}
	log.Info(log.CatApp, "address book closed")
	if a.closeLog != nil {
		a.closeLog()
	}
}
