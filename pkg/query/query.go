// Package query defines the validated query handed to the gateway for each
// inbound request.
package query

import (
	"net/url"
	"strconv"
)

// Resource is a SWAPI resource collection.
type Resource string

const (
	ResourceFilms     Resource = "films"
	ResourcePeople    Resource = "people"
	ResourcePlanets   Resource = "planets"
	ResourceSpecies   Resource = "species"
	ResourceStarships Resource = "starships"
	ResourceVehicles  Resource = "vehicles"
)

// Resources lists every supported resource in display order.
var Resources = []Resource{
	ResourceFilms,
	ResourcePeople,
	ResourcePlanets,
	ResourceSpecies,
	ResourceStarships,
	ResourceVehicles,
}

// IsValid reports whether r is a known resource.
func (r Resource) IsValid() bool {
	for _, known := range Resources {
		if r == known {
			return true
		}
	}
	return false
}

// SortOrder is the direction applied when sorting list results.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Query is a validated request against one SWAPI resource.
//
// ID is mutually exclusive with Page, Search and SortBy: a single resource
// cannot be paginated, searched or sorted.
type Query struct {
	Resource  Resource  `form:"resource" json:"resource" validate:"required,oneof=films people planets species starships vehicles"`
	ID        *int      `form:"id" json:"id,omitempty" validate:"omitempty,gt=0"`
	Page      *int      `form:"page" json:"page,omitempty" validate:"omitempty,gt=0"`
	Search    string    `form:"search" json:"search,omitempty"`
	Expand    string    `form:"expand" json:"expand,omitempty"`
	SortBy    string    `form:"sort_by" json:"sort_by,omitempty"`
	SortOrder SortOrder `form:"sort_order" json:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
}

// Order returns the effective sort order, defaulting to ascending.
func (q Query) Order() SortOrder {
	if q.SortOrder == "" {
		return SortAsc
	}
	return q.SortOrder
}

// HasID reports whether the query targets a single resource.
func (q Query) HasID() bool {
	return q.ID != nil
}

// UpstreamParams returns the query parameters forwarded to SWAPI.
// Only search and page are meaningful upstream.
func (q Query) UpstreamParams() url.Values {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Page != nil {
		params.Set("page", strconv.Itoa(*q.Page))
	}
	return params
}

// Int returns a pointer to v. Handy when building queries in code.
func Int(v int) *int {
	return &v
}
