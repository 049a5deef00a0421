/*
Package errors provides semantic error types for the ContentStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound          = errors.New("entry not found")
	    ErrMissingDocumentID = errors.New("entry has no document identifier")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrRequestFailed     = errors.New("content API request failed")
	)

Usage:

	// Check error type
	entry, err := store.Find(ctx, datastore.FindOptions{ID: "123"})
	if err != nil {
	    if apiErr, ok := errors.IsAPIError(err); ok {
	        // apiErr.Status is zero for transport-level failures
	        return fmt.Errorf("API call failed (%d): %s", apiErr.Status, apiErr.Message)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("articles", "123")
	err := errors.NewHTTPError(404, "Not Found")
	err := errors.NewValidationError("locale", "must be a BCP 47 tag")

APIError is the uniform shape every failed API call collapses into: a message
plus an optional HTTP status. A zero status means the failure happened below
HTTP (connection refused, DNS, timeout). The error types implement the error
interface and support wrapping, making them compatible with Go's standard
error handling patterns.
*/
package errors
