package shape

import "apigs/internal/models"

type MediaAssetView struct {
	ID         string  `json:"id"`
	PublicID   string  `json:"publicId"`
	URL        string  `json:"url"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Format     string  `json:"format"`
	Bytes      int64   `json:"bytes"`
	Size       string  `json:"size"`
	Folder     string  `json:"folder"`
	UploadedBy *string `json:"uploadedBy"`
	CreatedAt  string  `json:"createdAt"`
}

func MediaAsset(m *models.MediaAsset) MediaAssetView {
	return MediaAssetView{
		ID:         id(m.ID),
		PublicID:   m.PublicID,
		URL:        m.URL,
		Width:      m.Width,
		Height:     m.Height,
		Format:     m.Format,
		Bytes:      m.Bytes,
		Size:       m.HumanSize(),
		Folder:     m.Folder,
		UploadedBy: m.UploadedBy,
		CreatedAt:  Stamp(m.CreatedAt),
	}
}
