package cache

import (
	"fmt"
	"strconv"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/query"
)

// DefaultNamespace prefixes every fingerprint.
const DefaultNamespace = "swapi:v1"

// Key identifies a cached upstream document. It deliberately carries only
// the query fields that change the upstream response.
type Key struct {
	Resource string
	ID       int // 0 for list queries
	Page     int // 0 when no page was requested
	Search   string
}

// KeyFor derives the cache key of a query. Expand and sort parameters are
// ignored.
func KeyFor(q query.Query) Key {
	key := Key{
		Resource: string(q.Resource),
		Search:   q.Search,
	}
	if q.ID != nil {
		key.ID = *q.ID
	}
	if q.Page != nil {
		key.Page = *q.Page
	}
	return key
}

// Fingerprint generates the deterministic store key.
// Format: namespace:resource:id|list:page|1:search
//
// Example:
//
//	swapi:v1:people:list:2:sky
func (k Key) Fingerprint(namespace string) string {
	id := "list"
	if k.ID > 0 {
		id = strconv.Itoa(k.ID)
	}

	page := "1"
	if k.Page > 0 {
		page = strconv.Itoa(k.Page)
	}

	return fmt.Sprintf("%s:%s:%s:%s:%s", namespace, k.Resource, id, page, k.Search)
}

// String returns the fingerprint under DefaultNamespace.
func (k Key) String() string {
	return k.Fingerprint(DefaultNamespace)
}
