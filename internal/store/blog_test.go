package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"apigs/internal/models"
	"apigs/internal/query"
)

func TestBlogPublishedAtSetOnce(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	blog := NewBlogStore(db)
	t.Cleanup(func() { cleanBySlug(t, db, "blog_posts", "store-test-publish") })

	post, err := blog.Create(ctx, &models.BlogPost{
		Title: "Publish", Slug: "store-test-publish", Content: "body", Author: "Ann",
		Status: models.BlogStatusDraft,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.PublishedAt != nil {
		t.Fatal("draft must not have publishedAt")
	}

	post.Status = models.BlogStatusPublished
	published, err := blog.Update(ctx, post)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatal("draft to published must set publishedAt")
	}
	first := *published.PublishedAt

	published.Title = "Publish again"
	resaved, err := blog.Update(ctx, published)
	if err != nil {
		t.Fatalf("resave: %v", err)
	}
	if resaved.PublishedAt == nil || !resaved.PublishedAt.Equal(first) {
		t.Errorf("resave changed publishedAt: %v -> %v", first, resaved.PublishedAt)
	}

	resaved.Status = models.BlogStatusDraft
	unpublished, err := blog.Update(ctx, resaved)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if unpublished.PublishedAt == nil || !unpublished.PublishedAt.Equal(first) {
		t.Errorf("unpublish changed publishedAt: %v -> %v", first, unpublished.PublishedAt)
	}

	if _, err := blog.FindBySlug(ctx, "store-test-publish", query.Public); !errors.Is(err, ErrNotFound) {
		t.Errorf("public FindBySlug(draft) error = %v, want ErrNotFound", err)
	}
}

func TestBlogIncrementViewsConcurrent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	blog := NewBlogStore(db)
	t.Cleanup(func() { cleanBySlug(t, db, "blog_posts", "store-test-views") })

	post, err := blog.Create(ctx, &models.BlogPost{
		Title: "Views", Slug: "store-test-views", Content: "body", Author: "Ann",
		Status: models.BlogStatusPublished,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := blog.IncrementViews(ctx, post.ID); err != nil {
				t.Errorf("IncrementViews: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := blog.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ViewCount != n {
		t.Errorf("viewCount = %d, want %d", got.ViewCount, n)
	}
}

func TestBlogJSONColumnsRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	blog := NewBlogStore(db)
	t.Cleanup(func() { cleanBySlug(t, db, "blog_posts", "store-test-gallery") })

	post, err := blog.Create(ctx, &models.BlogPost{
		Title: "Gallery", Slug: "store-test-gallery", Content: "body", Author: "Ann",
		Status:  models.BlogStatusDraft,
		Gallery: models.Gallery{{URL: "https://cdn/x.jpg", PublicID: "blog/x.jpg", Caption: "x"}},
		Tags:    models.StringList{"go", "cms"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(post.Gallery) != 1 || post.Gallery[0].PublicID != "blog/x.jpg" {
		t.Errorf("gallery = %+v", post.Gallery)
	}
	if len(post.Tags) != 2 || post.Tags[1] != "cms" {
		t.Errorf("tags = %v", post.Tags)
	}

	deleted, err := blog.Delete(ctx, post.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ids := deleted.MediaIDs(); len(ids) != 1 || ids[0] != "blog/x.jpg" {
		t.Errorf("deleted media ids = %v", ids)
	}
}
