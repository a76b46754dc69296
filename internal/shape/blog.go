// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shape

import (
	"apigs/internal/models"
	"apigs/internal/query"
)

// GalleryImageView is a gallery entry without its media identifier.
type GalleryImageView struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// BlogPostView is a post as readers see it.
type BlogPostView struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Excerpt       *string            `json:"excerpt"`
	Content       string             `json:"content"`
	FeaturedImage *string            `json:"featuredImage"`
	Gallery       []GalleryImageView `json:"gallery"`
	Category      *string            `json:"category"`
	Tags          []string           `json:"tags"`
	Author        string             `json:"author"`
	Status        string             `json:"status"`
	Featured      bool               `json:"featured"`
	ViewCount     int                `json:"viewCount"`
	PublishedAt   *string            `json:"publishedAt"`
	CreatedAt     string             `json:"createdAt"`
	UpdatedAt     string             `json:"updatedAt"`
}

// BlogPostAdminView adds author identity and media identifiers. Its Gallery
// field replaces the public one so the entries keep their publicId.
type BlogPostAdminView struct {
	BlogPostView
	Gallery               models.Gallery `json:"gallery"`
	FeaturedImagePublicID *string        `json:"featuredImagePublicId"`
	AuthorID              *string        `json:"authorId"`
}

// BlogPostDetailView is the public article page: the post plus its body
// rendered to sanitized HTML.
type BlogPostDetailView struct {
	BlogPostView
	ContentHTML string `json:"contentHtml"`
}

// BlogPost shapes p for mode. Admin views carry the gallery publicIds.
func BlogPost(p *models.BlogPost, mode query.Mode) any {
	v := blogPost(p)
	if mode != query.Admin {
		return v
	}
	gallery := p.Gallery
	if gallery == nil {
		gallery = models.Gallery{}
	}
	return BlogPostAdminView{
		BlogPostView:          v,
		Gallery:               gallery,
		FeaturedImagePublicID: p.FeaturedImagePublicID,
		AuthorID:              p.AuthorID,
	}
}

// BlogPostDetail returns the public detail view with html as its body.
func BlogPostDetail(p *models.BlogPost, html string) BlogPostDetailView {
	return BlogPostDetailView{BlogPostView: blogPost(p), ContentHTML: html}
}

func blogPost(p *models.BlogPost) BlogPostView {
	gallery := make([]GalleryImageView, len(p.Gallery))
	for i, img := range p.Gallery {
		gallery[i] = GalleryImageView{URL: img.URL, Caption: img.Caption}
	}
	return BlogPostView{
		ID:            id(p.ID),
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		FeaturedImage: p.FeaturedImage,
		Gallery:       gallery,
		Category:      p.Category,
		Tags:          stringList(p.Tags),
		Author:        p.Author,
		Status:        string(p.Status),
		Featured:      p.Featured,
		ViewCount:     p.ViewCount,
		PublishedAt:   StampPtr(p.PublishedAt),
		CreatedAt:     Stamp(p.CreatedAt),
		UpdatedAt:     Stamp(p.UpdatedAt),
	}
}
