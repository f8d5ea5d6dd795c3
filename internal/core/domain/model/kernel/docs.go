// Package kernel provides core domain primitives for the job-board system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently holds a single primitive:
//   - UUID: A value object for unique identifiers with validation and
//     comparison capabilities. Its string form doubles as the document key
//     in the search index.
//
// These primitives enforce domain invariants and validation rules, are
// immutable, and are safe for concurrent use.
package kernel
