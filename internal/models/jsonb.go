package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSONB array.
type StringList []string

// Value encodes the list for a JSONB column. A nil list is stored as [].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan decodes a JSONB array. SQL NULL scans to an empty list.
func (l *StringList) Scan(src any) error {
	return scanJSON(src, l, func() { *l = StringList{} })
}

// GalleryImage is one entry of a blog post gallery.
type GalleryImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Caption  string `json:"caption,omitempty"`
}

// Gallery is an ordered list of images stored as a JSONB array.
type Gallery []GalleryImage

// Value encodes the gallery for a JSONB column. A nil gallery is stored as [].
func (g Gallery) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]GalleryImage(g))
}

// Scan decodes a JSONB array. SQL NULL scans to an empty gallery.
func (g *Gallery) Scan(src any) error {
	return scanJSON(src, g, func() { *g = Gallery{} })
}

func scanJSON(src, dst any, empty func()) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		empty()
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan jsonb: unsupported type %T", src)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("scan jsonb: %w", err)
	}
	return nil
}
