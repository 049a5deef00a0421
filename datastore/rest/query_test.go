/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rest

import (
	"net/url"
	"testing"

	"github.com/suparena/contentstore/storagemodels"
)

// decode parses an encoded query string back into url.Values so assertions
// stay readable despite percent-encoded brackets.
func decode(t *testing.T, query string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("Failed to parse query %q: %v", query, err)
	}
	return values
}

func TestEncodeQuery(t *testing.T) {
	t.Run("EmptyParams", func(t *testing.T) {
		if got := encodeQuery(nil); got != "" {
			t.Errorf("Expected empty query for nil params, got %q", got)
		}
		if got := encodeQuery(&storagemodels.QueryParams{}); got != "" {
			t.Errorf("Expected empty query for zero params, got %q", got)
		}
	})

	t.Run("Filters", func(t *testing.T) {
		query := encodeQuery(&storagemodels.QueryParams{
			Filters: storagemodels.Eq("title", "hello"),
		})
		values := decode(t, query)
		if got := values.Get("filters[title][$eq]"); got != "hello" {
			t.Errorf("Expected filters[title][$eq]=hello, got %q (query %q)", got, query)
		}
	})

	t.Run("NestedCombinator", func(t *testing.T) {
		query := encodeQuery(&storagemodels.QueryParams{
			Filters: storagemodels.Filters{
				storagemodels.OpOr: []storagemodels.Filters{
					storagemodels.Eq("slug", "a"),
					storagemodels.Eq("slug", "b"),
				},
			},
		})
		values := decode(t, query)
		if got := values.Get("filters[$or][0][slug][$eq]"); got != "a" {
			t.Errorf("Expected filters[$or][0][slug][$eq]=a, got %q", got)
		}
		if got := values.Get("filters[$or][1][slug][$eq]"); got != "b" {
			t.Errorf("Expected filters[$or][1][slug][$eq]=b, got %q", got)
		}
	})

	t.Run("InOperator", func(t *testing.T) {
		query := encodeQuery(&storagemodels.QueryParams{
			Filters: storagemodels.In("status", "draft", "review"),
		})
		values := decode(t, query)
		if got := values.Get("filters[status][$in][0]"); got != "draft" {
			t.Errorf("Expected filters[status][$in][0]=draft, got %q", got)
		}
		if got := values.Get("filters[status][$in][1]"); got != "review" {
			t.Errorf("Expected filters[status][$in][1]=review, got %q", got)
		}
	})

	t.Run("PopulateList", func(t *testing.T) {
		// Two population entries become indexed parameters, not repeated
		// keys or a comma-joined value.
		query := encodeQuery(&storagemodels.QueryParams{
			Populate: []string{"author", "cover"},
		})
		values := decode(t, query)
		if got := values.Get("populate[0]"); got != "author" {
			t.Errorf("Expected populate[0]=author, got %q", got)
		}
		if got := values.Get("populate[1]"); got != "cover" {
			t.Errorf("Expected populate[1]=cover, got %q", got)
		}
		if values.Get("populate") != "" {
			t.Error("Population entries must not serialize under a bare populate key")
		}
	})

	t.Run("PopulateWildcard", func(t *testing.T) {
		query := encodeQuery(&storagemodels.QueryParams{Populate: "*"})
		values := decode(t, query)
		if got := values.Get("populate"); got != "*" {
			t.Errorf("Expected populate=*, got %q", got)
		}
	})

	t.Run("PopulateNested", func(t *testing.T) {
		query := encodeQuery(&storagemodels.QueryParams{
			Populate: map[string]interface{}{
				"author": map[string]interface{}{
					"populate": []string{"avatar"},
				},
			},
		})
		values := decode(t, query)
		if got := values.Get("populate[author][populate][0]"); got != "avatar" {
			t.Errorf("Expected populate[author][populate][0]=avatar, got %q", got)
		}
	})

	t.Run("FieldsSortPagination", func(t *testing.T) {
		withCount := true
		query := encodeQuery(&storagemodels.QueryParams{
			Fields: []string{"title", "slug"},
			Sort:   []string{"publishedAt:desc", "title"},
			Pagination: &storagemodels.PaginationParams{
				Page:      2,
				PageSize:  25,
				WithCount: &withCount,
			},
		})
		values := decode(t, query)
		for key, want := range map[string]string{
			"fields[0]":             "title",
			"fields[1]":             "slug",
			"sort[0]":               "publishedAt:desc",
			"sort[1]":               "title",
			"pagination[page]":      "2",
			"pagination[pageSize]":  "25",
			"pagination[withCount]": "true",
		} {
			if got := values.Get(key); got != want {
				t.Errorf("Expected %s=%s, got %q", key, want, got)
			}
		}
	})

	t.Run("LocaleAndPublicationState", func(t *testing.T) {
		query := encodeQuery(&storagemodels.QueryParams{
			Locale:           "fr",
			PublicationState: storagemodels.PublicationStatePreview,
		})
		values := decode(t, query)
		if got := values.Get("locale"); got != "fr" {
			t.Errorf("Expected locale=fr, got %q", got)
		}
		if got := values.Get("publicationState"); got != "preview" {
			t.Errorf("Expected publicationState=preview, got %q", got)
		}
	})

	t.Run("PercentEncoding", func(t *testing.T) {
		query := encodeQuery(&storagemodels.QueryParams{
			Filters: storagemodels.Eq("title", "a b&c"),
		})
		// The raw string must be percent-encoded, including brackets.
		if want := "filters%5Btitle%5D%5B%24eq%5D=a+b%26c"; query != want {
			t.Errorf("Expected %q, got %q", want, query)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		params := &storagemodels.QueryParams{
			Filters: storagemodels.Filters{
				"title": map[string]interface{}{storagemodels.OpEqual: "x"},
				"slug":  map[string]interface{}{storagemodels.OpEqual: "y"},
			},
			Sort: []string{"title"},
		}
		first := encodeQuery(params)
		for i := 0; i < 10; i++ {
			if got := encodeQuery(params); got != first {
				t.Fatalf("Encoding is not deterministic: %q vs %q", first, got)
			}
		}
	})
}

func TestMergeLocale(t *testing.T) {
	store := New[struct{}]("http://h", "things")

	t.Run("DefaultLocaleOmitted", func(t *testing.T) {
		// Omitted locale and the default locale must produce byte-identical
		// query strings with no locale parameter.
		base := &storagemodels.QueryParams{Sort: []string{"title"}}
		omitted := encodeQuery(store.mergeLocale(base, ""))
		explicit := encodeQuery(store.mergeLocale(base, DefaultLocale))
		if omitted != explicit {
			t.Errorf("Default locale must encode identically to omission: %q vs %q", omitted, explicit)
		}
		if values := decode(t, omitted); values.Get("locale") != "" {
			t.Errorf("Default locale must not emit a locale parameter, got %q", omitted)
		}
	})

	t.Run("ParamsLocaleEqualToDefaultOmitted", func(t *testing.T) {
		query := encodeQuery(store.mergeLocale(&storagemodels.QueryParams{Locale: DefaultLocale}, ""))
		if query != "" {
			t.Errorf("Params carrying the default locale must encode empty, got %q", query)
		}
	})

	t.Run("NonDefaultLocaleMerged", func(t *testing.T) {
		query := encodeQuery(store.mergeLocale(nil, "de"))
		if values := decode(t, query); values.Get("locale") != "de" {
			t.Errorf("Expected locale=de, got %q", query)
		}
	})

	t.Run("DoesNotMutateCaller", func(t *testing.T) {
		params := &storagemodels.QueryParams{}
		store.mergeLocale(params, "de")
		if params.Locale != "" {
			t.Error("mergeLocale must not mutate the caller's params")
		}
	})

	t.Run("ConfiguredDefault", func(t *testing.T) {
		deStore := New[struct{}]("http://h", "things", WithDefaultLocale("de"))
		if query := encodeQuery(deStore.mergeLocale(nil, "de")); query != "" {
			t.Errorf("Configured default locale must encode empty, got %q", query)
		}
		query := encodeQuery(deStore.mergeLocale(nil, "en"))
		if values := decode(t, query); values.Get("locale") != "en" {
			t.Errorf("Expected locale=en under a de default, got %q", query)
		}
	})
}
