// Package openapi derives form checks from OpenAPI operation schemas: each
// request-body property becomes one check whose predicate folds the schema's
// constraints (required, pattern, length bounds, enum, string formats)
// together. Documents load through the Source abstraction so callers can
// work offline from files or embedded filesystems.
package openapi
