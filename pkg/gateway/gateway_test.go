package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/cache"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/client"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/document"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/expand"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/gateway/mocks"
	"github.com/sandrosmarzaro/starwars-func-api/pkg/query"
)

const testBaseURL = "https://swapi.dev/api/"

type testDeps struct {
	upstream *mocks.MockUpstream
	cache    *mocks.MockResultCache
	expander *mocks.MockLinkExpander
	service  *Service
}

func newTestService(t *testing.T) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		upstream: mocks.NewMockUpstream(ctrl),
		cache:    mocks.NewMockResultCache(ctrl),
		expander: mocks.NewMockLinkExpander(ctrl),
	}

	svc, err := New(Config{BaseURL: testBaseURL}, deps.upstream, deps.cache, deps.expander, zerolog.Nop())
	require.NoError(t, err)
	deps.service = svc

	return deps
}

func peopleEnvelope() document.Document {
	return document.Document{
		"count":    "3",
		"next":     nil,
		"previous": nil,
		"results": []any{
			map[string]any{"name": "Luke Skywalker", "height": "172"},
			map[string]any{"name": "Yoda", "height": "66"},
			map[string]any{"name": "Arvel Crynyd", "height": "unknown"},
		},
	}
}

func TestNew_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockUpstream(ctrl)
	resultCache := mocks.NewMockResultCache(ctrl)
	expander := mocks.NewMockLinkExpander(ctrl)

	testCases := []struct {
		name          string
		config        Config
		upstream      Upstream
		cache         ResultCache
		expander      LinkExpander
		expectedError string
	}{
		{
			name:          "missing_base_url",
			config:        Config{},
			upstream:      upstream,
			cache:         resultCache,
			expander:      expander,
			expectedError: "base url is required",
		},
		{
			name:          "missing_upstream",
			config:        Config{BaseURL: testBaseURL},
			cache:         resultCache,
			expander:      expander,
			expectedError: "upstream is required",
		},
		{
			name:          "missing_cache",
			config:        Config{BaseURL: testBaseURL},
			upstream:      upstream,
			expander:      expander,
			expectedError: "result cache is required",
		},
		{
			name:          "missing_expander",
			config:        Config{BaseURL: testBaseURL},
			upstream:      upstream,
			cache:         resultCache,
			expectedError: "link expander is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := New(tc.config, tc.upstream, tc.cache, tc.expander, zerolog.Nop())
			assert.Nil(t, svc)
			assert.EqualError(t, err, tc.expectedError)
		})
	}
}

func TestResolve_CacheMissFetchesAndStores(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	q := query.Query{Resource: query.ResourcePeople, Search: "sky", Page: query.Int(2)}
	raw := peopleEnvelope()

	gomock.InOrder(
		deps.cache.EXPECT().Get(ctx, cache.KeyFor(q)).Return(nil, false).Times(1),
		deps.upstream.EXPECT().
			Fetch(ctx, "https://swapi.dev/api/people/", url.Values{"search": {"sky"}, "page": {"2"}}).
			Return(raw, nil).
			Times(1),
		deps.cache.EXPECT().Set(ctx, cache.KeyFor(q), raw).Return(true).Times(1),
	)

	got, err := deps.service.Resolve(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestResolve_CacheHitSkipsUpstream(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	q := query.Query{Resource: query.ResourcePlanets, ID: query.Int(1)}
	cached := document.Document{"name": "Tatooine"}

	deps.cache.EXPECT().Get(ctx, cache.Key{Resource: "planets", ID: 1}).Return(cached, true).Times(1)
	deps.upstream.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := deps.service.Resolve(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestResolve_SingleResourceURL(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	q := query.Query{Resource: query.ResourceStarships, ID: query.Int(12)}
	raw := document.Document{"name": "X-wing"}

	deps.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false)
	deps.upstream.EXPECT().Fetch(ctx, "https://swapi.dev/api/starships/12", url.Values{}).Return(raw, nil)
	deps.cache.EXPECT().Set(ctx, gomock.Any(), raw).Return(true)

	got, err := deps.service.Resolve(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, "X-wing", got["name"])
}

func TestResolve_UpstreamErrorPropagates(t *testing.T) {
	testCases := []struct {
		name     string
		upstream error
	}{
		{
			name:     "not_found",
			upstream: &client.HTTPError{StatusCode: http.StatusNotFound, URL: "https://swapi.dev/api/people/999"},
		},
		{
			name:     "server_error",
			upstream: &client.HTTPError{StatusCode: http.StatusInternalServerError, URL: "https://swapi.dev/api/people/"},
		},
		{
			name:     "transport_error",
			upstream: &client.TransportError{URL: "https://swapi.dev/api/people/", Err: errors.New("connection refused")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := newTestService(t)
			ctx := context.Background()

			deps.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false)
			deps.upstream.EXPECT().Fetch(ctx, gomock.Any(), gomock.Any()).Return(nil, tc.upstream)
			deps.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			deps.expander.EXPECT().Expand(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			got, err := deps.service.Resolve(ctx, query.Query{Resource: query.ResourcePeople, Expand: "all"})

			assert.Nil(t, got)
			assert.Same(t, tc.upstream, err)
		})
	}
}

func TestResolve_NotFoundIsInspectable(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	deps.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false)
	deps.upstream.EXPECT().Fetch(ctx, gomock.Any(), gomock.Any()).
		Return(nil, &client.HTTPError{StatusCode: http.StatusNotFound})

	_, err := deps.service.Resolve(ctx, query.Query{Resource: query.ResourceFilms, ID: query.Int(99)})

	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.True(t, client.IsNotFound(err))
}

func TestResolve_ExpandsWithParsedDirective(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	q := query.Query{Resource: query.ResourcePeople, ID: query.Int(1), Expand: "films, homeworld"}
	raw := document.Document{"name": "Luke Skywalker", "homeworld": "https://swapi.dev/api/planets/1/"}
	expanded := document.Document{"name": "Luke Skywalker", "homeworld": map[string]any{"name": "Tatooine"}}

	deps.cache.EXPECT().Get(ctx, gomock.Any()).Return(raw, true)
	deps.expander.EXPECT().Expand(ctx, raw, expand.ParseDirective("films,homeworld")).Return(expanded).Times(1)

	got, err := deps.service.Resolve(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, expanded, got)
}

func TestResolve_NoExpandSkipsExpander(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	raw := peopleEnvelope()

	deps.cache.EXPECT().Get(ctx, gomock.Any()).Return(raw, true)
	deps.expander.EXPECT().Expand(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := deps.service.Resolve(ctx, query.Query{Resource: query.ResourcePeople})

	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestResolve_SortsAfterExpansion(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	raw := peopleEnvelope()
	q := query.Query{Resource: query.ResourcePeople, Expand: "homeworld", SortBy: "height", SortOrder: query.SortDesc}

	deps.cache.EXPECT().Get(ctx, gomock.Any()).Return(raw, true)
	deps.expander.EXPECT().Expand(ctx, raw, gomock.Any()).Return(raw)

	got, err := deps.service.Resolve(ctx, q)

	require.NoError(t, err)
	var heights []any
	for _, item := range got.Results() {
		heights = append(heights, item["height"])
	}
	assert.Equal(t, []any{"172", "66", "unknown"}, heights)
}

func TestResolve_PresentationParamsShareCacheKey(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	raw := peopleEnvelope()

	var keys []cache.Key
	deps.cache.EXPECT().Get(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, key cache.Key) (document.Document, bool) {
			keys = append(keys, key)
			return raw, true
		},
	).Times(3)
	deps.expander.EXPECT().Expand(gomock.Any(), gomock.Any(), gomock.Any()).Return(raw).AnyTimes()

	queries := []query.Query{
		{Resource: query.ResourcePeople, Search: "sky"},
		{Resource: query.ResourcePeople, Search: "sky", Expand: "all"},
		{Resource: query.ResourcePeople, Search: "sky", SortBy: "name", SortOrder: query.SortDesc},
	}
	for _, q := range queries {
		_, err := deps.service.Resolve(ctx, q)
		require.NoError(t, err)
	}

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.Equal(t, keys[0], keys[2])
}

func TestResolve_CacheSetFailureIgnored(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()
	raw := document.Document{"title": "A New Hope"}

	deps.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false)
	deps.upstream.EXPECT().Fetch(ctx, gomock.Any(), gomock.Any()).Return(raw, nil)
	deps.cache.EXPECT().Set(ctx, gomock.Any(), raw).Return(false)

	got, err := deps.service.Resolve(ctx, query.Query{Resource: query.ResourceFilms, ID: query.Int(1)})

	require.NoError(t, err)
	assert.Equal(t, raw, got)
}
