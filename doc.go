/*
Package contentstore provides a typed Go client for headless-CMS REST APIs,
offering type-safe CRUD operations against caller-defined entry types with
locale-aware creation and upsert semantics.

The library is organized around one generic interface and two implementations:
  - datastore.ContentStore[T]: the CRUD surface (Find, FindMany, Create,
    Update, Delete, Upsert)
  - datastore/rest: the HTTP implementation speaking the content API's
    conventions ({baseURL}/api/{resource}, bracket-notation query strings,
    {data: ...} envelopes)
  - datastore/mock: an in-memory implementation for testing

Key Features:
  - Type-safe operations using Go generics; entry shapes stay caller-defined
  - Locale-aware create: non-default-locale creation discovers or creates the
    default-locale base entry, then attaches the variant via its documentId
  - Uniform error surface: every failure is an errors.APIError with a message
    and an optional HTTP status, never a panic
  - Immutable client configuration, safe to share across goroutines
  - Thread-safe store management and a YAML-driven resource registry
  - Mock implementation for testing

Basic Usage:

	// Create a store manager
	mts := contentstore.NewMultiTypeStores()

	// Register a typed REST store
	articles := rest.New[Article]("https://cms.example.com", "articles",
	    rest.WithToken(token))
	contentstore.RegisterContentStore[Article](mts, "articles", articles)

	// Retrieve and use the store
	store, _ := contentstore.GetContentStore[Article](mts, "articles")
	entry, err := store.Find(ctx, datastore.FindOptions{ID: 42})

For more information, see the documentation at https://github.com/suparena/contentstore
*/
package contentstore
