/*
Package datastore defines the core interfaces for ContentStore's access layer.

The main interface is ContentStore[T], which provides generic CRUD operations
against one resource of a headless-CMS REST API for any entry type T:

	type ContentStore[T any] interface {
	    FindMany(ctx context.Context, params *storagemodels.QueryParams, locale string) ([]T, error)
	    Find(ctx context.Context, opts FindOptions) (*T, error)
	    Create(ctx context.Context, opts CreateOptions[T]) (*T, error)
	    Update(ctx context.Context, opts UpdateOptions[T]) (*T, error)
	    Delete(ctx context.Context, opts DeleteOptions) (*T, error)
	    Upsert(ctx context.Context, opts UpsertOptions[T]) (*T, error)
	}

Implementations:
  - rest: HTTP implementation speaking the content API's REST conventions
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
keeping entry shapes entirely caller-defined: implementations read only the
"id" and "documentId" JSON fields of an entry.
*/
package datastore
