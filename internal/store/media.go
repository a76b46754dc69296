// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"apigs/internal/models"
)

// MediaStore keeps the registry of uploaded objects.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, public_id, url, width, height, format, bytes, folder, uploaded_by, created_at`

func scanMedia(s scanner) (*models.MediaAsset, error) {
	var m models.MediaAsset
	err := s.Scan(&m.ID, &m.PublicID, &m.URL, &m.Width, &m.Height, &m.Format,
		&m.Bytes, &m.Folder, &m.UploadedBy, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create registers an uploaded object.
func (s *MediaStore) Create(ctx context.Context, m *models.MediaAsset) (*models.MediaAsset, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO media_assets (public_id, url, width, height, format, bytes, folder, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mediaColumns,
		m.PublicID, m.URL, m.Width, m.Height, m.Format, m.Bytes, m.Folder, nullIfEmpty(m.UploadedBy),
	)
	created, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("create media asset: %w", translate(err, ErrInvalidReference))
	}
	return created, nil
}

// List returns registered objects, newest first. An empty folder lists all.
func (s *MediaStore) List(ctx context.Context, folder string) ([]models.MediaAsset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+mediaColumns+` FROM media_assets
		WHERE $1::text = '' OR folder = $1::text
		ORDER BY created_at DESC, id ASC`, folder)
	if err != nil {
		return nil, fmt.Errorf("list media assets: %w", err)
	}
	defer rows.Close()

	items := []models.MediaAsset{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media asset: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// DeleteByPublicID removes a registry entry. Unknown ids are not an error:
// objects uploaded before the registry existed have no row.
func (s *MediaStore) DeleteByPublicID(ctx context.Context, publicID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM media_assets WHERE public_id = $1`, publicID)
	if err != nil {
		return fmt.Errorf("delete media asset: %w", err)
	}
	return nil
}
