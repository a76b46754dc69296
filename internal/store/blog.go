// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"apigs/internal/models"
	"apigs/internal/query"
)

// BlogStore manages blog posts.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore returns a new BlogStore.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

const blogColumns = `id, title, slug, excerpt, content, featured_image, featured_image_public_id,
	gallery, category, tags, author, author_id, status, featured, view_count,
	published_at, created_at, updated_at`

func scanBlogPost(s scanner) (*models.BlogPost, error) {
	var p models.BlogPost
	err := s.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage, &p.FeaturedImagePublicID,
		&p.Gallery, &p.Category, &p.Tags, &p.Author, &p.AuthorID, &p.Status, &p.Featured, &p.ViewCount,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns the posts matching q.
func (s *BlogStore) List(ctx context.Context, q query.Query) ([]models.BlogPost, error) {
	return list(ctx, s.db, "blog_posts", blogColumns, q, scanBlogPost)
}

// FindByID retrieves a post in any status.
func (s *BlogStore) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	q := query.Lookup(query.BlogPosts, query.Admin).WithEqual("blog_posts.id", id)
	return find(ctx, s.db, "blog_posts", blogColumns, q, scanBlogPost)
}

// FindBySlug retrieves a post visible in mode; drafts are not found in
// public mode.
func (s *BlogStore) FindBySlug(ctx context.Context, slug string, mode query.Mode) (*models.BlogPost, error) {
	q := query.Lookup(query.BlogPosts, mode).WithEqual("blog_posts.slug", slug)
	return find(ctx, s.db, "blog_posts", blogColumns, q, scanBlogPost)
}

// SlugTaken reports whether another post already uses slug.
func (s *BlogStore) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	return slugTaken(ctx, s.db, "blog_posts", slug, exclude)
}

// Create inserts a post. A post created as published gets its publish
// timestamp immediately.
func (s *BlogStore) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO blog_posts (
			title, slug, excerpt, content, featured_image, featured_image_public_id,
			gallery, category, tags, author, author_id, status, featured, published_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			CASE WHEN $14 THEN NOW() END
		)
		RETURNING `+blogColumns,
		p.Title, p.Slug, nullIfEmpty(p.Excerpt), p.Content,
		nullIfEmpty(p.FeaturedImage), nullIfEmpty(p.FeaturedImagePublicID),
		p.Gallery, nullIfEmpty(p.Category), p.Tags, p.Author, nullIfEmpty(p.AuthorID),
		string(p.Status), p.Featured, p.IsPublished(),
	)
	created, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", translate(err, ErrInvalidReference))
	}
	return created, nil
}

// Update overwrites the writable fields of p.ID. published_at is set only
// on the first save in published status and is never cleared afterwards.
// The view counter and author identity are not writable here.
func (s *BlogStore) Update(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE blog_posts SET
			title = $1, slug = $2, excerpt = $3, content = $4,
			featured_image = $5, featured_image_public_id = $6, gallery = $7,
			category = $8, tags = $9, author = $10, status = $11, featured = $12,
			published_at = CASE WHEN published_at IS NULL AND $13 THEN NOW() ELSE published_at END,
			updated_at = NOW()
		WHERE id = $14
		RETURNING `+blogColumns,
		p.Title, p.Slug, nullIfEmpty(p.Excerpt), p.Content,
		nullIfEmpty(p.FeaturedImage), nullIfEmpty(p.FeaturedImagePublicID), p.Gallery,
		nullIfEmpty(p.Category), p.Tags, p.Author, string(p.Status), p.Featured,
		p.IsPublished(), p.ID,
	)
	updated, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update blog post: %w", translate(err, ErrInvalidReference))
	}
	return updated, nil
}

// IncrementViews adds one view atomically.
func (s *BlogStore) IncrementViews(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE blog_posts SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment blog views: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post and returns it so the caller can release its
// images.
func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM blog_posts WHERE id = $1 RETURNING `+blogColumns, id)
	deleted, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete blog post: %w", err)
	}
	return deleted, nil
}
