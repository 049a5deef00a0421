/*
Package rest provides the HTTP implementation of the ContentStore interface.

The Store speaks the REST conventions of a headless-CMS content API:

	GET|POST|PUT|DELETE {baseURL}/api/{resource}[/{id}][?query]

with JSON bodies wrapped in a {data: ...} envelope and responses unwrapped
from {data: T|null} or {data: [T], meta: {pagination}}.

Key Features:

Base URL normalization:
Construction strips trailing slashes and ensures the fixed /api segment, so
"http://h/", "http://h///" and "http://h/api" all store the same base.

Query serialization:
QueryParams serialize to the API's bracket notation with array indices:

	filters[title][$eq]=hello
	populate[0]=author&populate[1]=cover
	sort[0]=publishedAt:desc
	pagination[page]=2&pagination[pageSize]=25

Locale-aware creation:
Creating an entry in a non-default locale runs a three-step protocol: find a
default-locale base entry matching the caller's filters, create it from the
payload when missing, then attach the localized variant through the shared
documentId. The observed server variants differ on three points, each exposed
as a construction option with a documented default:

	store := rest.New[Article]("http://cms.local", "articles",
	    rest.WithToken(token),
	    rest.WithLocalizedWriteVerb(rest.LocalizeWithPut), // or LocalizeWithPost
	    rest.WithLocaleScopedSearch(false),                // base search in default locale
	    rest.WithDeleteLocale(true),                       // DELETE honors ?locale=
	)

Error handling:
No method panics or retries. Every failure collapses into an
errors.APIError{Message, Status}: transport failures carry no status, non-2xx
responses carry theirs, and an undecodable 2xx body carries the successful
status (except on DELETE, where it counts as empty success).
*/
package rest
