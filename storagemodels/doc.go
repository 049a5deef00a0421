/*
Package storagemodels defines the data structures used throughout ContentStore.

Key Types:

QueryParams:
Parameters for querying a resource collection:

	params := &QueryParams{
	    Filters:  Eq("slug", "hello-world"),
	    Populate: []string{"author", "cover"},
	    Sort:     []string{"publishedAt:desc"},
	    Pagination: &PaginationParams{
	        Page:     1,
	        PageSize: 25,
	    },
	    PublicationState: PublicationStateLive,
	}

All fields are optional; the zero value serializes to an empty query string.
Filters nest operator keys under field names using the Op* constants
($eq, $in, $contains, ...) and combine with $and/$or.

Response envelopes:
The content API wraps every payload:

	DocumentResponse[T]  — {data: T | null}
	CollectionResponse[T] — {data: [T], meta: {pagination}}

EntryKeys:
The client never defines entry shape; it reads exactly two fields off any
entry via KeysOf: the plain "id" and the "documentId" shared across locale
variants of the same logical entry.

These types provide a consistent interface across different store
implementations.
*/
package storagemodels
