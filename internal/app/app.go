// Package app implements the application layer for pinpoint.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/pinpoint/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.InputResolver
	hasher       ports.Hasher
	store        ports.SnapshotStore
	cache        ports.ContentCache
	translator   ports.PositionTranslator
	scheduler    *scheduler.Scheduler
	metrics      ports.Metrics
	renderer     ports.Renderer
	logger       ports.Logger
	configPath   string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.InputResolver,
	hasher ports.Hasher,
	store ports.SnapshotStore,
	cache ports.ContentCache,
	translator ports.PositionTranslator,
	sched *scheduler.Scheduler,
	metrics ports.Metrics,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		hasher:       hasher,
		store:        store,
		cache:        cache,
		translator:   translator,
		scheduler:    sched,
		metrics:      metrics,
		renderer:     renderer,
		logger:       log,
		configPath:   ".",
	}
}

// WithConfigPath sets the config file, or the directory to search upwards for one.
// An empty path means the working directory.
func (a *App) WithConfigPath(path string) *App {
	if path == "" {
		path = "."
	}
	a.configPath = path
	return a
}

// InstrumentOptions configures the Instrument method.
type InstrumentOptions struct {
	// Force re-instruments files even when a valid cached result exists.
	Force bool
	// Parallelism overrides the configured parallelism when positive.
	Parallelism int
}

// Instrument instruments paths, or the configured include patterns when paths is empty.
// Fresh results are persisted to the snapshot store before the report is rendered.
func (a *App) Instrument(ctx context.Context, paths []string, opts InstrumentOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Instrumenter.Command) == 0 {
		return domain.ErrInstrumenterNotConfigured
	}

	if err := a.hydrate(cfg); err != nil {
		return err
	}

	files, err := a.resolveFiles(cfg, paths)
	if err != nil {
		return err
	}

	parallelism := cfg.Parallelism
	if opts.Parallelism > 0 {
		parallelism = opts.Parallelism
	}

	report, runErr := a.scheduler.Instrument(ctx, files, scheduler.Options{
		Instrumenter: cfg.Instrumenter,
		Parallelism:  parallelism,
		Force:        opts.Force,
	})

	persistErr := a.persist(cfg, report)

	var metricsErr error
	if cfg.MetricsFile != "" {
		metricsErr = a.metrics.WriteTextfile(cfg.MetricsFile)
	}

	a.renderer.Report(report)

	return errors.Join(runErr, persistErr, metricsErr)
}

// Resolve prints the original position of a generated line (1-based) and column
// (0-based) in file. The file must have a cached result matching its current content.
func (a *App) Resolve(ctx context.Context, file string, line, column int) error {
	if line < 1 || column < 0 {
		return errors.Join(
			domain.ErrInvalidPosition,
			zerr.With(zerr.With(zerr.New("position out of range"), "line", line), "column", column),
		)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if err := a.hydrate(cfg); err != nil {
		return err
	}

	id, err := fileID(file)
	if err != nil {
		return err
	}

	hash, err := a.hasher.HashFile(id.String())
	if err != nil {
		return err
	}

	entry, ok := a.cache.Get(id, hash)
	if !ok {
		return errors.Join(
			domain.ErrNotInstrumented,
			zerr.With(zerr.New("no cached result for current content"), "file", id.String()),
		)
	}

	if err := a.translator.RegisterMap(ctx, id, entry.SourceMap); err != nil {
		return err
	}

	pos, found := a.translator.OriginalPosition(id, line, column)
	a.metrics.PositionLookup(found)
	if !found {
		return errors.Join(
			domain.ErrNoMapping,
			zerr.With(zerr.With(zerr.With(zerr.New("position is unmapped"), "file", id.String()), "line", line), "column", column),
		)
	}

	a.renderer.Position(id, line, column, pos)
	return nil
}

// Prune drops cached results, persisted records and position tables of files that no
// longer match the configured include patterns.
func (a *App) Prune(_ context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Include) == 0 {
		return errors.Join(domain.ErrNoFilesSpecified, zerr.New("prune needs include patterns to decide what is stale"))
	}

	if err := a.hydrate(cfg); err != nil {
		return err
	}

	resolved, err := a.resolver.ResolveInputs(cfg.Include, cfg.Exclude, cfg.Root)
	if err != nil {
		return err
	}

	valid := make(map[domain.FileID]struct{}, len(resolved))
	for _, path := range resolved {
		valid[domain.NewFileID(path)] = struct{}{}
	}

	removed := a.cache.Prune(valid)

	var errs []error
	for _, id := range removed {
		errs = append(errs, a.store.Delete(cfg.CacheDir, id), a.translator.UnregisterMap(id))
	}

	a.logger.Info(fmt.Sprintf("pruned %d stale cache entries", len(removed)))
	return errors.Join(errs...)
}

// Clean removes every persisted record and empties the in-memory cache and translator.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if err := a.store.Clear(cfg.CacheDir); err != nil {
		return err
	}

	a.cache.Clear()
	if err := a.translator.Clear(); err != nil {
		return err
	}

	a.logger.Info("cache cleared")
	return nil
}

func (a *App) loadConfig() (*domain.Config, error) {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// hydrate copies persisted records into the content cache.
func (a *App) hydrate(cfg *domain.Config) error {
	records, err := a.store.Load(cfg.CacheDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load snapshot")
	}
	for id, file := range records {
		a.cache.Set(id, file)
	}
	return nil
}

// resolveFiles expands explicit paths against the working directory, or the configured
// include patterns against the project root.
func (a *App) resolveFiles(cfg *domain.Config, paths []string) ([]domain.FileID, error) {
	inputs, root := cfg.Include, cfg.Root
	if len(paths) > 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		inputs, root = paths, cwd
	}

	if len(inputs) == 0 {
		return nil, domain.ErrNoFilesSpecified
	}

	resolved, err := a.resolver.ResolveInputs(inputs, cfg.Exclude, root)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, domain.ErrNoFilesSpecified
	}
	return domain.NewFileIDs(resolved), nil
}

// persist writes the results stored during the run to the snapshot store.
func (a *App) persist(cfg *domain.Config, report domain.Report) error {
	var errs []error
	for _, o := range report.Outcomes {
		if o.Status != domain.StatusInstrumented {
			continue
		}
		file, ok := a.cache.Get(o.File, o.Hash)
		if !ok {
			continue
		}
		errs = append(errs, a.store.Put(cfg.CacheDir, o.File, file))
	}
	return errors.Join(errs...)
}

func fileID(path string) (domain.FileID, error) {
	if path == "" {
		return domain.FileID{}, domain.ErrNoFilesSpecified
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.FileID{}, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}
	return domain.NewFileID(abs), nil
}
