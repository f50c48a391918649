package services

import "context"

// IndexCache caches pages of the recency-ranked students index. Get reports
// the cache version it consulted and Set stores under an explicit version,
// so a page built from a snapshot taken before an Invalidate is never served.
type IndexCache interface {
	Get(ctx context.Context, page, size int, dest interface{}) (int64, error)
	Set(ctx context.Context, version int64, page, size int, value interface{}) error
	Invalidate(ctx context.Context) error
}
