// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"net/http"

	"apigs/internal/media"
	"apigs/internal/shape"
	"apigs/internal/transport"
)

// multipartOverhead leaves room for the form fields around the file part.
const multipartOverhead = 64 << 10

// UploadMedia accepts a multipart "file" plus an optional "folder" and
// stores the normalized image.
func (a *Admin) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if !a.Media.Enabled() {
		writeError(w, r, media.ErrNotConfigured)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, media.MaxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(media.MaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, media.ErrTooLarge)
			return
		}
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		invalid(w, map[string]string{"file": "required"})
		return
	}
	defer file.Close()

	if header.Size > media.MaxBytes {
		writeError(w, r, media.ErrTooLarge)
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, media.MaxBytes+1))
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "could not read file", nil)
		return
	}
	if len(data) > media.MaxBytes {
		writeError(w, r, media.ErrTooLarge)
		return
	}

	ctx, cancel := a.upstreamContext(r)
	defer cancel()

	asset, err := a.Media.Upload(ctx, media.Upload{
		Data:       data,
		Folder:     r.FormValue("folder"),
		UploadedBy: callerEmail(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, shape.MediaAsset(asset))
}

// ListMedia lists registered assets, optionally filtered by ?folder.
func (a *Admin) ListMedia(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.dbContext(r)
	defer cancel()

	items, err := a.Media.List(ctx, r.URL.Query().Get("folder"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.MediaAsset))
}

// DeleteMedia removes the object named by ?publicId.
func (a *Admin) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	publicID := r.URL.Query().Get("publicId")
	if publicID == "" {
		invalid(w, map[string]string{"publicId": "required"})
		return
	}
	ctx, cancel := a.upstreamContext(r)
	defer cancel()

	if err := a.Media.Delete(ctx, publicID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
