/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/suparena/contentstore/datastore"
	"github.com/suparena/contentstore/errors"
	"github.com/suparena/contentstore/storagemodels"
)

const (
	// apiPathSegment is the fixed prefix every content API mounts under.
	apiPathSegment = "/api"

	// DefaultLocale is the locale assumed when none is configured. Reads and
	// writes in this locale never emit a locale query parameter.
	DefaultLocale = "en"
)

// LocalizeVerb selects the HTTP verb used to attach a localized variant to a
// base entry during the non-default-locale create protocol.
type LocalizeVerb string

const (
	// LocalizeWithPut writes the localized variant with PUT on the document
	// endpoint. This is the default.
	LocalizeWithPut LocalizeVerb = http.MethodPut

	// LocalizeWithPost writes the localized variant with POST on the
	// document endpoint, for servers that treat localization as creation.
	LocalizeWithPost LocalizeVerb = http.MethodPost
)

// Doer is the subset of http.Client the store needs. Callers can supply a
// custom transport to inject tracing, fixtures, or request counting in tests.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// config holds the tunable parts of a Store, shared across entry types so
// functional options stay non-generic.
type config struct {
	token              string
	httpClient         Doer
	logger             hclog.Logger
	defaultLocale      string
	localizeVerb       LocalizeVerb
	localeScopedSearch bool
	deleteLocale       bool
}

// Option configures a Store at construction time.
type Option func(*config)

// WithToken sets the bearer token sent in the Authorization header. Without
// it requests carry no authorization at all.
func WithToken(token string) Option {
	return func(c *config) { c.token = token }
}

// WithHTTPClient replaces the transport. Timeouts, pooling and retries are
// entirely the transport's business; the store itself performs exactly one
// attempt per request.
func WithHTTPClient(client Doer) Option {
	return func(c *config) { c.httpClient = client }
}

// WithLogger attaches a structured logger. Requests and outcomes are logged
// at Debug level. The default logger discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithDefaultLocale overrides the locale treated as the server's default.
func WithDefaultLocale(locale string) Option {
	return func(c *config) { c.defaultLocale = locale }
}

// WithLocalizedWriteVerb selects the verb for the localization step of the
// non-default-locale create protocol. Defaults to LocalizeWithPut.
func WithLocalizedWriteVerb(verb LocalizeVerb) Option {
	return func(c *config) { c.localizeVerb = verb }
}

// WithLocaleScopedSearch scopes the base-entry discovery search of the
// non-default-locale create protocol to the requested locale instead of the
// default locale. Defaults to false (default-locale scope).
func WithLocaleScopedSearch(enabled bool) Option {
	return func(c *config) { c.localeScopedSearch = enabled }
}

// WithDeleteLocale controls whether Delete honors the locale query parameter.
// Defaults to true; disable for servers that delete whole documents across
// locales.
func WithDeleteLocale(enabled bool) Option {
	return func(c *config) { c.deleteLocale = enabled }
}

// Store implements datastore.ContentStore[T] against a headless-CMS REST API.
// All state is established at construction and never mutated, so a single
// Store is safe for concurrent use. Individual multi-step operations (Create
// in a non-default locale, Upsert) are read-then-write and not atomic.
type Store[T any] struct {
	baseURL  string
	resource string
	headers  map[string]string
	cfg      config
}

var _ datastore.ContentStore[struct{}] = (*Store[struct{}])(nil)

// New constructs a Store for one resource. The base URL is normalized by
// stripping trailing slashes and ensuring it ends with the fixed API path
// segment. Construction performs no network activity and cannot fail.
func New[T any](baseURL, resource string, opts ...Option) *Store[T] {
	cfg := config{
		httpClient:    http.DefaultClient,
		logger:        hclog.NewNullLogger(),
		defaultLocale: DefaultLocale,
		localizeVerb:  LocalizeWithPut,
		deleteLocale:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if cfg.token != "" {
		headers["Authorization"] = "Bearer " + cfg.token
	}

	return &Store[T]{
		baseURL:  normalizeBaseURL(baseURL),
		resource: resource,
		headers:  headers,
		cfg:      cfg,
	}
}

// normalizeBaseURL strips trailing slashes and appends the API path segment
// unless the URL already ends with it. Idempotent.
func normalizeBaseURL(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(base, apiPathSegment) {
		base += apiPathSegment
	}
	return base
}

// requestBody is the write envelope the content API expects on POST and PUT.
type requestBody[T any] struct {
	Data T `json:"data"`
}

// requestOptions describes one HTTP exchange for the request primitive.
type requestOptions struct {
	method  string
	body    interface{}
	headers map[string]string
}

// do performs exactly one HTTP exchange and maps the three failure modes
// below the envelope decode onto errors.APIError: transport failure (no
// status), non-2xx status, and body read failure. Leading slashes on path are
// stripped before joining with the base URL.
func (s *Store[T]) do(ctx context.Context, path string, ro requestOptions) (int, []byte, error) {
	requestURL := s.baseURL + "/" + strings.TrimLeft(path, "/")

	var reqBody io.Reader
	if ro.body != nil {
		raw, err := json.Marshal(ro.body)
		if err != nil {
			return 0, nil, errors.NewTransportError(fmt.Errorf("marshal request body: %w", err))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, ro.method, requestURL, reqBody)
	if err != nil {
		return 0, nil, errors.NewTransportError(err)
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}
	for k, v := range ro.headers {
		req.Header.Set(k, v)
	}

	s.cfg.logger.Debug("content api request", "method", ro.method, "url", requestURL)

	resp, err := s.cfg.httpClient.Do(req)
	if err != nil {
		s.cfg.logger.Debug("content api transport failure", "method", ro.method, "url", requestURL, "error", err)
		return 0, nil, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.cfg.logger.Debug("content api error response", "method", ro.method, "url", requestURL, "status", resp.StatusCode)
		return resp.StatusCode, raw, errors.NewHTTPError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return resp.StatusCode, raw, nil
}

// requestDocument performs one exchange and unwraps a {data: T|null}
// envelope. A body that fails to decode is an error, except on DELETE where
// it counts as empty success (deletions commonly return no body).
func (s *Store[T]) requestDocument(ctx context.Context, path string, ro requestOptions) (*T, error) {
	status, raw, err := s.do(ctx, path, ro)
	if err != nil {
		return nil, err
	}

	var envelope storagemodels.DocumentResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if ro.method == http.MethodDelete {
			return nil, nil
		}
		return nil, errors.NewDecodeError(status, err)
	}
	return envelope.Data, nil
}

// requestCollection performs one exchange and unwraps a {data: [T], meta}
// envelope. A null data field yields an empty slice: no matches is not an
// error.
func (s *Store[T]) requestCollection(ctx context.Context, path string, ro requestOptions) ([]T, *storagemodels.ResponseMeta, error) {
	status, raw, err := s.do(ctx, path, ro)
	if err != nil {
		return nil, nil, err
	}

	var envelope storagemodels.CollectionResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil, errors.NewDecodeError(status, err)
	}
	if envelope.Data == nil {
		return []T{}, envelope.Meta, nil
	}
	return envelope.Data, envelope.Meta, nil
}

// collectionPath joins the resource collection endpoint with a query string.
func (s *Store[T]) collectionPath(query string) string {
	if query == "" {
		return s.resource
	}
	return s.resource + "?" + query
}

// documentPath joins the resource item endpoint with a query string.
func (s *Store[T]) documentPath(id, query string) string {
	path := s.resource + "/" + id
	if query == "" {
		return path
	}
	return path + "?" + query
}

// mergeLocale folds a locale into a copy of params following the default-
// locale omission rule: the default locale (or an empty locale) never emits a
// locale parameter, so default-locale and locale-less calls produce identical
// query strings.
func (s *Store[T]) mergeLocale(params *storagemodels.QueryParams, locale string) *storagemodels.QueryParams {
	merged := params.Clone()
	if locale != "" && locale != s.cfg.defaultLocale {
		merged.Locale = locale
	} else if merged.Locale == s.cfg.defaultLocale {
		merged.Locale = ""
	}
	return merged
}

// idSegment renders an entry identifier as a URL path segment. Numeric ids
// print without a decimal point.
func idSegment(id interface{}) string {
	if id == nil {
		return ""
	}
	return url.PathEscape(storagemodels.EntryKeys{ID: id}.IDString())
}
