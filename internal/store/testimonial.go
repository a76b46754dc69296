package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"apigs/internal/models"
	"apigs/internal/query"
)

// TestimonialStore manages client quotes.
type TestimonialStore struct {
	db *sql.DB
}

func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, first_name, last_name, position, company, text, created_at, updated_at`

func scanTestimonial(s scanner) (*models.Testimonial, error) {
	var t models.Testimonial
	err := s.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Position, &t.Company, &t.Text, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TestimonialStore) List(ctx context.Context, q query.Query) ([]models.Testimonial, error) {
	return list(ctx, s.db, "testimonials", testimonialColumns, q, scanTestimonial)
}

func (s *TestimonialStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	q := query.Lookup(query.Testimonials, query.Admin).WithEqual("testimonials.id", id)
	return find(ctx, s.db, "testimonials", testimonialColumns, q, scanTestimonial)
}

func (s *TestimonialStore) Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (first_name, last_name, position, company, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+testimonialColumns,
		t.FirstName, t.LastName, nullIfEmpty(t.Position), nullIfEmpty(t.Company), t.Text,
	)
	created, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return created, nil
}

func (s *TestimonialStore) Update(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE testimonials SET
			first_name = $1, last_name = $2, position = $3, company = $4, text = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+testimonialColumns,
		t.FirstName, t.LastName, nullIfEmpty(t.Position), nullIfEmpty(t.Company), t.Text, t.ID,
	)
	updated, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return updated, nil
}

func (s *TestimonialStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "testimonials", id)
}
