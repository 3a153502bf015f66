package analyticstore

import (
	"context"
	"errors"
)

// ErrLookupFailed indicates the analytics store could not serve the query.
// An empty result set is NOT an error; callers get a nil/empty slice instead.
var ErrLookupFailed = errors.New("analytics store lookup failed")

// ErrMissingOrganization indicates a fetch without an organization filter.
var ErrMissingOrganization = errors.New("organization filter is required")

// Store is the narrow read contract against the hosted analytics tables.
type Store interface {
	// Fetch returns the rows of a table or view matching the filter.
	// The filter's OrganizationID must be set.
	Fetch(ctx context.Context, table string, filter FilterSpec) ([]Record, error)
}
