// Package expand replaces hyperlinks inside SWAPI documents with the
// documents they point to.
package expand

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/document"
)

// FetchErrorMessage is placed in the error marker of a link that could not
// be fetched.
const FetchErrorMessage = "Failed to fetch resource"

// Fetcher retrieves one linked resource.
type Fetcher interface {
	FetchOne(ctx context.Context, rawURL string) (document.Document, error)
}

// Config holds expansion settings.
type Config struct {
	// MaxConcurrency bounds link fetches in flight across one Expand call.
	MaxConcurrency int

	// FetchTimeout applies to each link fetch. Zero disables it.
	FetchTimeout time.Duration
}

// DefaultConfig returns the default expansion configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 10,
		FetchTimeout:   10 * time.Second,
	}
}

// Expander follows link fields concurrently.
type Expander struct {
	fetcher Fetcher
	config  Config
	logger  zerolog.Logger
}

// New creates an Expander.
func New(fetcher Fetcher, cfg Config, logger zerolog.Logger) *Expander {
	if fetcher == nil {
		panic("fetcher cannot be nil")
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultConfig().MaxConcurrency
	}
	return &Expander{
		fetcher: fetcher,
		config:  cfg,
		logger:  logger,
	}
}

// Expand returns a copy of doc with the selected link fields replaced by
// the fetched documents. Envelopes expand every results entry. A link that
// cannot be fetched becomes an error marker; Expand itself never fails and
// never modifies doc.
func (e *Expander) Expand(ctx context.Context, doc document.Document, directive Directive) document.Document {
	if doc == nil || directive.Empty() {
		return doc
	}

	start := time.Now()
	defer func() {
		expandDuration.Observe(time.Since(start).Seconds())
	}()

	sem := semaphore.NewWeighted(int64(e.config.MaxConcurrency))

	if !doc.IsEnvelope() {
		return e.expandItem(ctx, sem, doc, directive)
	}

	raw, ok := doc[document.FieldResults].([]any)
	if !ok {
		return doc
	}

	results := make([]any, len(raw))
	var g errgroup.Group
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			results[i] = item
			continue
		}
		g.Go(func() error {
			results[i] = map[string]any(e.expandItem(ctx, sem, document.Document(obj), directive))
			return nil
		})
	}
	_ = g.Wait()

	return doc.WithResults(results)
}

func (e *Expander) expandItem(ctx context.Context, sem *semaphore.Weighted, item document.Document, directive Directive) document.Document {
	type target struct {
		field string
		link  Link
	}

	var targets []target
	for field, value := range item {
		if !directive.Selects(field) {
			continue
		}
		if link := Classify(field, value); link.Kind != NotLink {
			targets = append(targets, target{field: field, link: link})
		}
	}

	out := item.Clone()
	if len(targets) == 0 {
		return out
	}

	values := make([]any, len(targets))
	var g errgroup.Group
	for i, t := range targets {
		g.Go(func() error {
			values[i] = e.resolve(ctx, sem, t.link)
			return nil
		})
	}
	_ = g.Wait()

	for i, t := range targets {
		out[t.field] = values[i]
	}
	return out
}

func (e *Expander) resolve(ctx context.Context, sem *semaphore.Weighted, link Link) any {
	if link.Kind == SingleLink {
		return e.fetch(ctx, sem, link.URL)
	}

	values := make([]any, len(link.URLs))
	var g errgroup.Group
	for i, u := range link.URLs {
		g.Go(func() error {
			values[i] = e.fetch(ctx, sem, u)
			return nil
		})
	}
	_ = g.Wait()

	return values
}

// fetch retrieves one linked document, or the error marker for rawURL.
func (e *Expander) fetch(ctx context.Context, sem *semaphore.Weighted, rawURL string) any {
	if err := sem.Acquire(ctx, 1); err != nil {
		return e.failed(rawURL, err)
	}
	defer sem.Release(1)

	if e.config.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.FetchTimeout)
		defer cancel()
	}

	doc, err := e.fetcher.FetchOne(ctx, rawURL)
	if err != nil {
		return e.failed(rawURL, err)
	}

	expandLinksTotal.WithLabelValues("ok").Inc()
	return map[string]any(doc)
}

func (e *Expander) failed(rawURL string, err error) map[string]any {
	expandLinksTotal.WithLabelValues("failed").Inc()
	e.logger.Warn().
		Err(err).
		Str("url", rawURL).
		Msg("Failed to expand link")

	return ErrorMarker(rawURL)
}

// ErrorMarker is the value substituted for a link that could not be fetched.
func ErrorMarker(rawURL string) map[string]any {
	return map[string]any{
		"url":   rawURL,
		"error": FetchErrorMessage,
	}
}
