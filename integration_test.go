//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contentstore_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/suparena/contentstore"
	"github.com/suparena/contentstore/datastore"
	"github.com/suparena/contentstore/datastore/rest"
	"github.com/suparena/contentstore/errors"
	"github.com/suparena/contentstore/storagemodels"
)

// Test entries
type IntegrationArticle struct {
	ID         int    `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Locale     string `json:"locale,omitempty"`
}

type IntegrationPage struct {
	ID         int    `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name"`
	Path       string `json:"path"`
}

func init() {
	// A .env in the repo root may carry CMS_BASE_URL / CMS_API_TOKEN
	_ = godotenv.Load()
}

func setupTestStore[T any](t *testing.T, resource string) *rest.Store[T] {
	baseURL := os.Getenv("CMS_BASE_URL")
	token := os.Getenv("CMS_API_TOKEN")

	if baseURL == "" {
		t.Skip("CMS_BASE_URL not set, skipping integration test")
	}

	opts := []rest.Option{}
	if token != "" {
		opts = append(opts, rest.WithToken(token))
	}

	return rest.New[T](baseURL, resource, opts...)
}

func TestIntegrationBasicOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore[IntegrationArticle](t, "articles")

	article := IntegrationArticle{
		Title: "Integration Test Article",
		Slug:  fmt.Sprintf("integration-test-%d", time.Now().Unix()),
	}

	// Test Create
	created, err := store.Create(ctx, datastore.CreateOptions[IntegrationArticle]{
		Data: article,
	})
	if err != nil {
		t.Fatalf("Failed to create article: %v", err)
	}
	if created == nil || created.DocumentID == "" {
		t.Fatalf("Created article missing documentId: %+v", created)
	}

	// Test Find by documentId
	retrieved, err := store.Find(ctx, datastore.FindOptions{ID: created.DocumentID})
	if err != nil {
		t.Fatalf("Failed to find article: %v", err)
	}
	if retrieved == nil || retrieved.Slug != article.Slug {
		t.Errorf("Retrieved article doesn't match: got %+v, want slug %q", retrieved, article.Slug)
	}

	// Test Update
	updated, err := store.Update(ctx, datastore.UpdateOptions[IntegrationArticle]{
		ID:   created.DocumentID,
		Data: IntegrationArticle{Title: "Updated Title", Slug: article.Slug},
	})
	if err != nil {
		t.Fatalf("Failed to update article: %v", err)
	}
	if updated != nil && updated.Title != "Updated Title" {
		t.Errorf("Update not reflected: got %+v", updated)
	}

	// Test Delete
	if _, err := store.Delete(ctx, datastore.DeleteOptions{ID: created.DocumentID}); err != nil {
		t.Fatalf("Failed to delete article: %v", err)
	}

	// Verify deletion
	_, err = store.Find(ctx, datastore.FindOptions{ID: created.DocumentID})
	if err != nil && !errors.IsNotFound(err) && errors.StatusOf(err) != 404 {
		t.Errorf("Expected not found after delete, got: %v", err)
	}
}

func TestIntegrationQuery(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore[IntegrationArticle](t, "articles")
	marker := fmt.Sprintf("query-test-%d", time.Now().Unix())

	articles := []IntegrationArticle{
		{Title: "Query One", Slug: marker + "-1"},
		{Title: "Query Two", Slug: marker + "-2"},
		{Title: "Query Three", Slug: marker + "-3"},
	}

	created := make([]*IntegrationArticle, 0, len(articles))
	for _, a := range articles {
		c, err := store.Create(ctx, datastore.CreateOptions[IntegrationArticle]{Data: a})
		if err != nil {
			t.Fatalf("Failed to create article: %v", err)
		}
		created = append(created, c)
	}

	params := &storagemodels.QueryParams{
		Filters: storagemodels.Eq("slug", marker+"-2"),
	}

	results, err := store.FindMany(ctx, params, "")
	if err != nil {
		t.Fatalf("Failed to query articles: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("Expected 1 article, got %d", len(results))
	}

	// Clean up
	for _, c := range created {
		store.Delete(ctx, datastore.DeleteOptions{ID: c.DocumentID})
	}
}

func TestIntegrationLocalizedUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore[IntegrationArticle](t, "articles")
	slug := fmt.Sprintf("upsert-test-%d", time.Now().Unix())

	// First upsert creates the default-locale entry.
	base, err := store.Upsert(ctx, datastore.UpsertOptions[IntegrationArticle]{
		Data:    IntegrationArticle{Title: "Base Entry", Slug: slug},
		Filters: storagemodels.Eq("slug", slug),
	})
	if err != nil {
		t.Fatalf("Failed to upsert base entry: %v", err)
	}
	if base == nil || base.DocumentID == "" {
		t.Fatalf("Upserted entry missing documentId: %+v", base)
	}

	// Second upsert with a locale attaches a variant to the same document.
	variant, err := store.Upsert(ctx, datastore.UpsertOptions[IntegrationArticle]{
		Data:    IntegrationArticle{Title: "Entrée localisée", Slug: slug},
		Filters: storagemodels.Eq("slug", slug),
		Locale:  "fr",
	})
	if err != nil {
		t.Fatalf("Failed to upsert localized variant: %v", err)
	}
	if variant != nil && variant.DocumentID != base.DocumentID {
		t.Errorf("Variant documentId %q does not match base %q", variant.DocumentID, base.DocumentID)
	}

	// Clean up both variants
	store.Delete(ctx, datastore.DeleteOptions{ID: base.DocumentID, Locale: "fr"})
	store.Delete(ctx, datastore.DeleteOptions{ID: base.DocumentID})
}

func TestIntegrationMultiTypeStores(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	mts := contentstore.NewMultiTypeStores()

	articleStore := setupTestStore[IntegrationArticle](t, "articles")
	if err := contentstore.RegisterContentStore[IntegrationArticle](mts, "articles", articleStore); err != nil {
		t.Fatalf("Failed to register article store: %v", err)
	}

	pageStore := setupTestStore[IntegrationPage](t, "pages")
	if err := contentstore.RegisterContentStore[IntegrationPage](mts, "pages", pageStore); err != nil {
		t.Fatalf("Failed to register page store: %v", err)
	}

	retrieved, err := contentstore.GetContentStore[IntegrationArticle](mts, "articles")
	if err != nil {
		t.Fatalf("Failed to get article store: %v", err)
	}

	created, err := retrieved.Create(ctx, datastore.CreateOptions[IntegrationArticle]{
		Data: IntegrationArticle{
			Title: "MTS Test Article",
			Slug:  fmt.Sprintf("mts-test-%d", time.Now().Unix()),
		},
	})
	if err != nil {
		t.Fatalf("Failed to create article through MTS: %v", err)
	}

	// Clean up
	retrieved.Delete(ctx, datastore.DeleteOptions{ID: created.DocumentID})
}
