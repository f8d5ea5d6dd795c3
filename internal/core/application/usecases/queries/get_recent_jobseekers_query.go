package queries

import (
	"errors"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// DefaultRecentLimit is the listing size used when no limit is given.
const DefaultRecentLimit = 10

var ErrGetRecentJobseekersQueryIsNotConstructed = errors.New(
	"GetRecentJobseekersQuery must be created via NewGetRecentJobseekersQuery constructor",
)

// GetRecentJobseekersQuery retrieves the newest jobseeker profiles.
type GetRecentJobseekersQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentJobseekersQuery creates a query for the newest profiles.
// A limit of zero falls back to DefaultRecentLimit.
func NewGetRecentJobseekersQuery(limit int) (GetRecentJobseekersQuery, error) {
	if limit < 0 {
		return GetRecentJobseekersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, "unbounded")
	}
	if limit == 0 {
		limit = DefaultRecentLimit
	}

	return GetRecentJobseekersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentJobseekersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentJobseekersQueryIsNotConstructed)
}

// Limit returns how many profiles to list.
func (q GetRecentJobseekersQuery) Limit() int {
	return q.limit
}
