// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogStatus represents the publishing state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogStatuses lists every accepted blog status.
var BlogStatuses = []string{string(BlogStatusDraft), string(BlogStatusPublished)}

// BlogPost is an article. PublishedAt is stamped on the first transition
// into published and never changes afterwards; ViewCount only grows.
type BlogPost struct {
	ID                    uuid.UUID  `json:"id"`
	Title                 string     `json:"title"`
	Slug                  string     `json:"slug"`
	Excerpt               *string    `json:"excerpt"`
	Content               string     `json:"content"`
	FeaturedImage         *string    `json:"featuredImage"`
	FeaturedImagePublicID *string    `json:"featuredImagePublicId"`
	Gallery               Gallery    `json:"gallery"`
	Category              *string    `json:"category"`
	Tags                  StringList `json:"tags"`
	Author                string     `json:"author"`
	AuthorID              *string    `json:"authorId"`
	Status                BlogStatus `json:"status"`
	Featured              bool       `json:"featured"`
	ViewCount             int        `json:"viewCount"`
	PublishedAt           *time.Time `json:"publishedAt"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// IsPublished returns true if the post is in published status.
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogStatusPublished
}

// MediaIDs returns every media public id the post references: the featured
// image first, then gallery images in order.
func (p *BlogPost) MediaIDs() []string {
	var ids []string
	if p.FeaturedImagePublicID != nil && *p.FeaturedImagePublicID != "" {
		ids = append(ids, *p.FeaturedImagePublicID)
	}
	for _, img := range p.Gallery {
		if img.PublicID != "" {
			ids = append(ids, img.PublicID)
		}
	}
	return ids
}

// SupersededMedia returns the public ids referenced by old that next no
// longer references. These objects are orphaned by the update.
func SupersededMedia(old, next *BlogPost) []string {
	keep := make(map[string]bool)
	for _, id := range next.MediaIDs() {
		keep[id] = true
	}
	var gone []string
	for _, id := range old.MediaIDs() {
		if !keep[id] {
			gone = append(gone, id)
		}
	}
	return gone
}
