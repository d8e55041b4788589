package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kokomoarts/kokomo-events/internal/event"
	"github.com/kokomoarts/kokomo-events/internal/metrics"
	"github.com/kokomoarts/kokomo-events/internal/sources"
)

// DefaultSourceTimeout bounds a single source's fetch so one stalled site
// cannot stall the whole aggregation.
const DefaultSourceTimeout = 45 * time.Second

// Result is one source's settled outcome: either its records or the error
// it failed with, never both.
type Result struct {
	Source  string
	Events  []event.Event
	Err     error
	Elapsed time.Duration
}

// Aggregator runs every registered source concurrently and collects all
// outcomes without letting any single failure abort the batch.
type Aggregator struct {
	sources       []sources.Source
	sourceTimeout time.Duration
	log           zerolog.Logger
	metrics       *metrics.Metrics
}

// New creates an Aggregator over the given sources. A non-positive timeout
// selects the default per-source bound; metrics may be nil.
func New(srcs []sources.Source, sourceTimeout time.Duration, log zerolog.Logger, m *metrics.Metrics) *Aggregator {
	if sourceTimeout <= 0 {
		sourceTimeout = DefaultSourceTimeout
	}
	return &Aggregator{
		sources:       srcs,
		sourceTimeout: sourceTimeout,
		log:           log,
		metrics:       m,
	}
}

// Run launches every source in its own goroutine with a per-source deadline
// and waits for all of them to settle. Results arrive in completion order,
// not registration order. A panicking source settles as a failed result; the
// fault-isolation contract holds even when an adapter violates its own.
func (a *Aggregator) Run(ctx context.Context) []Result {
	resultCh := make(chan Result, len(a.sources))

	for _, src := range a.sources {
		go func(src sources.Source) {
			started := time.Now()

			fetchCtx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
			defer cancel()

			var (
				events []event.Event
				err    error
			)
			func() {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("adapter panicked: %v", r)
					}
				}()
				events, err = src.Fetch(fetchCtx)
			}()

			resultCh <- Result{
				Source:  src.Name(),
				Events:  events,
				Err:     err,
				Elapsed: time.Since(started),
			}
		}(src)
	}

	results := make([]Result, 0, len(a.sources))
	for range a.sources {
		results = append(results, <-resultCh)
	}
	return results
}

// Collect concatenates the records of every successful result in settle
// order and records a diagnostic for each failure. Failures never propagate;
// every source failing just means an empty list.
func (a *Aggregator) Collect(results []Result) []event.Event {
	all := make([]event.Event, 0)
	for _, r := range results {
		if a.metrics != nil {
			a.metrics.ScrapeDuration.WithLabelValues(r.Source).Observe(r.Elapsed.Seconds())
		}

		if r.Err != nil {
			a.log.Warn().
				Str("source", r.Source).
				Dur("elapsed", r.Elapsed).
				Err(r.Err).
				Msg("source fetch failed")
			if a.metrics != nil {
				a.metrics.ScrapeFailures.WithLabelValues(r.Source).Inc()
			}
			continue
		}

		a.log.Debug().
			Str("source", r.Source).
			Int("events", len(r.Events)).
			Dur("elapsed", r.Elapsed).
			Msg("source fetch succeeded")
		if a.metrics != nil {
			a.metrics.ScrapeEvents.WithLabelValues(r.Source).Add(float64(len(r.Events)))
		}
		all = append(all, r.Events...)
	}
	return all
}

// Events runs the full pipeline for one request: settle every source,
// concatenate the successful contributions, deduplicate. "No events found"
// is a valid steady state, not an error.
func (a *Aggregator) Events(ctx context.Context) []event.Event {
	raw := a.Collect(a.Run(ctx))
	deduped := event.Dedupe(raw)

	a.log.Info().
		Int("sources", len(a.sources)).
		Int("raw", len(raw)).
		Int("deduped", len(deduped)).
		Msg("aggregation complete")
	if a.metrics != nil {
		a.metrics.Aggregations.Inc()
	}
	return deduped
}
