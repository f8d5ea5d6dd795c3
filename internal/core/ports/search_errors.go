package ports

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrIndexSyncFailed marks a failed index write after a successful
	// database commit. The primary store is authoritative at that point;
	// the index is stale until the next successful write or reindex.
	ErrIndexSyncFailed = errors.New("search index sync failed")

	// ErrSearchFailed marks a search request the engine rejected or
	// could not complete.
	ErrSearchFailed = errors.New("search request failed")
)

// JobseekerIndexError reports a failed index write for one jobseeker document.
type JobseekerIndexError struct {
	Op    string
	DocID string
	Cause error
}

// NewJobseekerIndexError creates a JobseekerIndexError for the given operation.
func NewJobseekerIndexError(op, docID string, cause error) *JobseekerIndexError {
	return &JobseekerIndexError{Op: op, DocID: docID, Cause: cause}
}

func (e *JobseekerIndexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s jobseeker document %s (cause: %s)", ErrIndexSyncFailed, e.Op, e.DocID, e.Cause)
	}
	return fmt.Sprintf("%s: %s jobseeker document %s", ErrIndexSyncFailed, e.Op, e.DocID)
}

func (e *JobseekerIndexError) Unwrap() error {
	return ErrIndexSyncFailed
}

// VacancyIndexError reports a failed index write for one vacancy document.
type VacancyIndexError struct {
	Op    string
	DocID string
	Cause error
}

// NewVacancyIndexError creates a VacancyIndexError for the given operation.
func NewVacancyIndexError(op, docID string, cause error) *VacancyIndexError {
	return &VacancyIndexError{Op: op, DocID: docID, Cause: cause}
}

func (e *VacancyIndexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s vacancy document %s (cause: %s)", ErrIndexSyncFailed, e.Op, e.DocID, e.Cause)
	}
	return fmt.Sprintf("%s: %s vacancy document %s", ErrIndexSyncFailed, e.Op, e.DocID)
}

func (e *VacancyIndexError) Unwrap() error {
	return ErrIndexSyncFailed
}

// SearchFailedError carries the engine's diagnostic for a failed search.
type SearchFailedError struct {
	Detail string
	Cause  error
}

// NewSearchFailedError creates a SearchFailedError with the engine diagnostic.
func NewSearchFailedError(detail string, cause error) *SearchFailedError {
	return &SearchFailedError{Detail: detail, Cause: cause}
}

func (e *SearchFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrSearchFailed, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrSearchFailed, e.Detail)
}

func (e *SearchFailedError) Unwrap() error {
	return ErrSearchFailed
}
