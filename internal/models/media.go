// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MediaAsset is an image stored in object storage. PublicID is the opaque
// identifier records keep for later deletion.
type MediaAsset struct {
	ID         uuid.UUID `json:"id"`
	PublicID   string    `json:"publicId"`
	URL        string    `json:"url"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Format     string    `json:"format"`
	Bytes      int64     `json:"bytes"`
	Folder     string    `json:"folder"`
	UploadedBy *string   `json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HumanSize returns a human-readable file size string.
func (m *MediaAsset) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case m.Bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(m.Bytes)/float64(mb))
	case m.Bytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(m.Bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", m.Bytes)
	}
}
