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

// InquiryStore manages contact-form submissions.
type InquiryStore struct {
	db *sql.DB
}

// NewInquiryStore returns a new InquiryStore.
func NewInquiryStore(db *sql.DB) *InquiryStore {
	return &InquiryStore{db: db}
}

const inquiryColumns = `id, name, email, phone, company, subject, message, inquiry_type,
	status, priority, follow_up_date, notes, created_at, updated_at`

func scanInquiry(s scanner) (*models.Inquiry, error) {
	var i models.Inquiry
	err := s.Scan(
		&i.ID, &i.Name, &i.Email, &i.Phone, &i.Company, &i.Subject, &i.Message, &i.InquiryType,
		&i.Status, &i.Priority, &i.FollowUpDate, &i.Notes, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List returns the inquiries matching q.
func (s *InquiryStore) List(ctx context.Context, q query.Query) ([]models.Inquiry, error) {
	return list(ctx, s.db, "inquiries", inquiryColumns, q, scanInquiry)
}

// FindByID retrieves an inquiry.
func (s *InquiryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	q := query.Lookup(query.Inquiries, query.Admin).WithEqual("inquiries.id", id)
	return find(ctx, s.db, "inquiries", inquiryColumns, q, scanInquiry)
}

// Create stores a new submission. Status and priority take the column
// defaults (new, medium).
func (s *InquiryStore) Create(ctx context.Context, i *models.Inquiry) (*models.Inquiry, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO inquiries (name, email, phone, company, subject, message, inquiry_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+inquiryColumns,
		i.Name, i.Email, nullIfEmpty(i.Phone), nullIfEmpty(i.Company),
		i.Subject, i.Message, string(i.InquiryType),
	)
	created, err := scanInquiry(row)
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return created, nil
}

// Update applies the workflow fields set in u; nil fields are left as is.
func (s *InquiryStore) Update(ctx context.Context, id uuid.UUID, u models.InquiryUpdate) (*models.Inquiry, error) {
	var status, priority *string
	if u.Status != nil {
		v := string(*u.Status)
		status = &v
	}
	if u.Priority != nil {
		v := string(*u.Priority)
		priority = &v
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE inquiries SET
			status = COALESCE($1, status),
			priority = COALESCE($2, priority),
			follow_up_date = CASE WHEN $3 THEN NULL ELSE COALESCE($4, follow_up_date) END,
			notes = COALESCE($5, notes),
			updated_at = NOW()
		WHERE id = $6
		RETURNING `+inquiryColumns,
		status, priority, u.ClearFollowUp, u.FollowUpDate, u.Notes, id,
	)
	updated, err := scanInquiry(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update inquiry: %w", err)
	}
	return updated, nil
}

// Delete removes an inquiry by ID.
func (s *InquiryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "inquiries", id)
}
