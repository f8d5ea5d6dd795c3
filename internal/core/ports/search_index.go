package ports

import (
	"context"
)

// JobseekerIndex is the search-engine adapter for jobseeker documents.
//
// The index is a derived replica of the primary store: every write here
// happens after the corresponding database write has committed, and a
// failed index write surfaces as an error without undoing the committed
// data. Search returns document IDs in relevance order; hydrating them
// back into aggregates is the caller's job.
type JobseekerIndex interface {
	// EnsureIndexExists creates the backing index when it is missing.
	// Calling it against an existing index is a no-op.
	EnsureIndexExists(ctx context.Context) error

	// Upsert writes a single document, inserting or fully replacing it.
	Upsert(ctx context.Context, doc JobseekerDocument) error

	// UpsertBulk writes all documents in one bulk request, inserting or
	// merging each into its existing document.
	UpsertBulk(ctx context.Context, docs []JobseekerDocument) error

	// Delete removes the document with the given ID. Deleting a missing
	// document is an error.
	Delete(ctx context.Context, id string) error

	// RemoveAll deletes every document and returns how many were removed.
	RemoveAll(ctx context.Context) (int64, error)

	// Search runs the query and returns matching document IDs in
	// relevance order, paginated per the query.
	Search(ctx context.Context, query JobseekerSearchQuery) ([]string, error)
}

// VacancyIndex is the search-engine adapter for vacancy documents.
// See JobseekerIndex for the write and consistency semantics.
type VacancyIndex interface {
	EnsureIndexExists(ctx context.Context) error
	Upsert(ctx context.Context, doc VacancyDocument) error
	UpsertBulk(ctx context.Context, docs []VacancyDocument) error
	Delete(ctx context.Context, id string) error
	RemoveAll(ctx context.Context) (int64, error)
	Search(ctx context.Context, query VacancySearchQuery) ([]string, error)
}
