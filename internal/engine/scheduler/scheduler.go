// Package scheduler instruments files in parallel, reusing cached results and
// registering every result's source map for position translation.
package scheduler

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls one instrumentation run.
type Options struct {
	// Instrumenter describes the external command run on cache misses.
	Instrumenter domain.InstrumenterConfig
	// Parallelism bounds concurrent files. Values below 1 mean 1.
	Parallelism int
	// Force ignores cached results.
	Force bool
}

// Scheduler drives the content cache, the instrumenter and the position translator.
type Scheduler struct {
	instrumenter ports.Instrumenter
	hasher       ports.Hasher
	cache        ports.ContentCache
	translator   ports.PositionTranslator
	tracer       ports.Tracer
	metrics      ports.Metrics
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	instrumenter ports.Instrumenter,
	hasher ports.Hasher,
	cache ports.ContentCache,
	translator ports.PositionTranslator,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Scheduler {
	return &Scheduler{
		instrumenter: instrumenter,
		hasher:       hasher,
		cache:        cache,
		translator:   translator,
		tracer:       tracer,
		metrics:      metrics,
	}
}

// Instrument processes files with at most opts.Parallelism running at once.
//
// For each file the current content hash is looked up in the cache. A hit whose map
// registers is reused; anything else runs the instrumenter, registers the fresh map
// and only then stores the result, so a result with an unusable map is never cached.
// One failing file does not stop the others. The returned report lists every file
// sorted by path; the error joins domain.ErrInstrumentationFailed with each failure.
func (s *Scheduler) Instrument(ctx context.Context, files []domain.FileID, opts Options) (domain.Report, error) {
	ctx, span := s.tracer.Start(ctx, "instrument")
	defer span.End()

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.String()
	}
	s.tracer.EmitPlan(ctx, paths)
	span.SetAttribute("files", len(files))

	outcomes := make([]domain.FileOutcome, len(files))

	g := new(errgroup.Group)
	g.SetLimit(max(opts.Parallelism, 1))
	for i, file := range files {
		g.Go(func() error {
			outcomes[i] = s.instrumentFile(ctx, file, opts)
			return nil
		})
	}
	_ = g.Wait()

	slices.SortFunc(outcomes, func(a, b domain.FileOutcome) int {
		return cmp.Compare(a.File.String(), b.File.String())
	})

	report := domain.Report{Outcomes: outcomes}

	var errs []error
	for _, o := range outcomes {
		if o.Status == domain.StatusFailed {
			errs = append(errs, zerr.With(zerr.Wrap(o.Err, "failed to instrument file"), "file", o.File.String()))
		}
	}
	if len(errs) > 0 {
		err := errors.Join(append([]error{domain.ErrInstrumentationFailed}, errs...)...)
		span.RecordError(err)
		return report, err
	}

	return report, nil
}

func (s *Scheduler) instrumentFile(ctx context.Context, file domain.FileID, opts Options) domain.FileOutcome {
	start := time.Now()
	outcome := domain.FileOutcome{File: file}

	ctx, span := s.tracer.Start(ctx, "instrument_file", ports.WithFile(file.String()))
	defer func() {
		outcome.Duration = time.Since(start)
		span.SetAttribute("status", string(outcome.Status))
		span.RecordError(outcome.Err)
		span.End()
	}()

	fail := func(err error) domain.FileOutcome {
		outcome.Status = domain.StatusFailed
		outcome.Err = err
		return outcome
	}

	if err := ctx.Err(); err != nil {
		return fail(zerr.Wrap(err, "run cancelled"))
	}

	hash, err := s.hasher.HashFile(file.String())
	if err != nil {
		return fail(err)
	}
	outcome.Hash = hash

	if !opts.Force && s.reuseCached(ctx, file, hash) {
		outcome.Status = domain.StatusCached
		return outcome
	}

	result, err := s.instrumenter.Instrument(ctx, opts.Instrumenter, file, hash)
	s.metrics.Instrumented(err == nil)
	if err != nil {
		return fail(err)
	}

	err = s.translator.RegisterMap(ctx, file, result.SourceMap)
	s.metrics.MapRegistered(err == nil)
	if err != nil {
		return fail(err)
	}

	s.cache.Set(file, result)
	outcome.Status = domain.StatusInstrumented
	return outcome
}

// reuseCached reports whether a valid cached result exists and its map is registered.
// A cached result whose map no longer registers is evicted.
func (s *Scheduler) reuseCached(ctx context.Context, file domain.FileID, hash string) bool {
	cached, hit := s.cache.Get(file, hash)
	s.metrics.CacheLookup(hit)
	if !hit {
		return false
	}

	err := s.translator.RegisterMap(ctx, file, cached.SourceMap)
	s.metrics.MapRegistered(err == nil)
	if err != nil {
		s.cache.Remove(file)
		return false
	}
	return true
}
