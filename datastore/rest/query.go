/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rest

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/suparena/contentstore/storagemodels"
)

// encodeQuery serializes query params into the content API's bracket
// notation: nested maps become bracketed path segments
// (filters[title][$eq]=x) and slices become array-index keys
// (populate[0]=author). Output is percent-encoded with deterministic key
// order and carries no leading "?"; nil or empty params yield "".
func encodeQuery(p *storagemodels.QueryParams) string {
	if p.IsZero() {
		return ""
	}

	values := url.Values{}

	if len(p.Filters) > 0 {
		encodeValue(values, "filters", map[string]interface{}(p.Filters))
	}
	if p.Populate != nil {
		encodeValue(values, "populate", p.Populate)
	}
	for i, field := range p.Fields {
		values.Set(fmt.Sprintf("fields[%d]", i), field)
	}
	for i, sort := range p.Sort {
		values.Set(fmt.Sprintf("sort[%d]", i), sort)
	}
	if pg := p.Pagination; pg != nil {
		if pg.Page > 0 {
			values.Set("pagination[page]", strconv.Itoa(pg.Page))
		}
		if pg.PageSize > 0 {
			values.Set("pagination[pageSize]", strconv.Itoa(pg.PageSize))
		}
		if pg.Start > 0 {
			values.Set("pagination[start]", strconv.Itoa(pg.Start))
		}
		if pg.Limit > 0 {
			values.Set("pagination[limit]", strconv.Itoa(pg.Limit))
		}
		if pg.WithCount != nil {
			values.Set("pagination[withCount]", strconv.FormatBool(*pg.WithCount))
		}
	}
	if p.Locale != "" {
		values.Set("locale", p.Locale)
	}
	if p.PublicationState != "" {
		values.Set("publicationState", p.PublicationState)
	}

	return values.Encode()
}

// encodeValue flattens an arbitrarily nested value under a bracketed key
// prefix. Maps recurse by key, slices by index, everything else becomes a
// scalar via fmt. Reflection keeps Filters, []Filters and plain maps/slices
// on one code path.
func encodeValue(values url.Values, prefix string, v interface{}) {
	if v == nil {
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return
		}
		encodeValue(values, prefix, rv.Elem().Interface())
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			encodeValue(values, fmt.Sprintf("%s[%v]", prefix, key.Interface()), rv.MapIndex(key).Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			encodeValue(values, fmt.Sprintf("%s[%d]", prefix, i), rv.Index(i).Interface())
		}
	default:
		values.Set(prefix, fmt.Sprintf("%v", v))
	}
}
