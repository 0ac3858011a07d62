// Package views assembles read-model projections by joining the relational
// tables into the shapes the API returns. All queries run against read-committed
// snapshots; counts may trail concurrent writes by a moment.
package views

import (
	"time"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/db"
)

// DefaultPageLimit caps a feed page when the client does not specify one.
const DefaultPageLimit = 10

// PageParams carries 1-based pagination parameters for list queries.
type PageParams struct {
	Page  int
	Limit int
}

// Normalize coerces out-of-range values to the defaults: page 1, limit 10.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	return p
}

// Offset returns the number of rows to skip for the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Aggregator runs the read-model queries against the database pool.
type Aggregator struct {
	pool       db.Pool
	statsCache *statsCache
}

// NewAggregator constructs an Aggregator. Channel stats responses are cached
// for statsTTL; pass zero to disable caching.
func NewAggregator(pool db.Pool, statsTTL time.Duration) *Aggregator {
	return &Aggregator{
		pool:       pool,
		statsCache: newStatsCache(statsTTL),
	}
}
