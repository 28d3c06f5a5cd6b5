// Package gateway resolves validated queries against SWAPI: cache lookup,
// upstream fetch on miss, then optional link expansion and sorting.
package gateway

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Upstream,ResultCache,LinkExpander

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/cache"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/client"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/document"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/expand"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/query"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/sorter"
)

// Upstream fetches documents from SWAPI.
type Upstream interface {
	Fetch(ctx context.Context, rawURL string, params url.Values) (document.Document, error)
}

// ResultCache stores raw upstream documents. Implementations never fail;
// errors surface as misses.
type ResultCache interface {
	Get(ctx context.Context, key cache.Key) (document.Document, bool)
	Set(ctx context.Context, key cache.Key, doc document.Document) bool
}

// LinkExpander replaces link fields with the documents they reference.
type LinkExpander interface {
	Expand(ctx context.Context, doc document.Document, directive expand.Directive) document.Document
}

// Config holds gateway settings.
type Config struct {
	// BaseURL is the SWAPI root, e.g. https://swapi.dev/api/
	BaseURL string
}

// Service answers queries.
type Service struct {
	config   Config
	upstream Upstream
	cache    ResultCache
	expander LinkExpander
	logger   zerolog.Logger
}

// New creates a Service.
func New(cfg Config, upstream Upstream, resultCache ResultCache, expander LinkExpander, logger zerolog.Logger) (*Service, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if upstream == nil {
		return nil, fmt.Errorf("upstream is required")
	}
	if resultCache == nil {
		return nil, fmt.Errorf("result cache is required")
	}
	if expander == nil {
		return nil, fmt.Errorf("link expander is required")
	}

	return &Service{
		config:   cfg,
		upstream: upstream,
		cache:    resultCache,
		expander: expander,
		logger:   logger,
	}, nil
}

// Resolve returns the document answering q.
//
// The raw upstream document is cached; expansion and sorting are applied
// on every call, so queries that differ only in expand or sort parameters
// share a cache entry. Upstream errors are returned unchanged. Cache and
// link fetch failures never fail the request.
func (s *Service) Resolve(ctx context.Context, q query.Query) (document.Document, error) {
	key := cache.KeyFor(q)
	resource := string(q.Resource)

	doc, hit := s.cache.Get(ctx, key)
	if hit {
		resolveTotal.WithLabelValues(resource, "hit").Inc()
	} else {
		resolveTotal.WithLabelValues(resource, "miss").Inc()

		target := client.ResourceURL(s.config.BaseURL, resource, q.ID)
		fetched, err := s.upstream.Fetch(ctx, target, q.UpstreamParams())
		if err != nil {
			s.logger.Debug().
				Err(err).
				Str("resource", resource).
				Str("url", target).
				Msg("Upstream fetch failed")
			return nil, err
		}
		s.cache.Set(ctx, key, fetched)
		doc = fetched
	}

	if q.Expand != "" {
		doc = s.expander.Expand(ctx, doc, expand.ParseDirective(q.Expand))
	}

	if q.SortBy != "" {
		doc = sorter.Sort(doc, q.SortBy, q.Order())
	}

	s.logger.Debug().
		Str("resource", resource).
		Str("key", key.String()).
		Bool("cache_hit", hit).
		Msg("Query resolved")

	return doc, nil
}
