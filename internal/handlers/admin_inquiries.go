// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"apigs/internal/models"
	"apigs/internal/query"
	"apigs/internal/shape"
	"apigs/internal/transport"
)

// nullableDate tells an absent followUpDate apart from an explicit null.
type nullableDate struct {
	Set   bool
	Value *string
}

func (d *nullableDate) UnmarshalJSON(b []byte) error {
	d.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		d.Value = nil
		return nil
	}
	return json.Unmarshal(b, &d.Value)
}

type inquiryPatch struct {
	Status       *string      `json:"status" validate:"omitempty,oneof=new contacted qualified converted closed"`
	Priority     *string      `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	FollowUpDate nullableDate `json:"followUpDate"`
	Notes        *string      `json:"notes" validate:"omitempty,max=5000"`
}

// parseFollowUp accepts a calendar date or a full RFC 3339 timestamp.
func parseFollowUp(s string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (in *inquiryPatch) update() (models.InquiryUpdate, map[string]string) {
	var u models.InquiryUpdate
	if in.Status != nil && models.ValidInquiryStatus(*in.Status) {
		s := models.InquiryStatus(*in.Status)
		u.Status = &s
	}
	if in.Priority != nil && models.ValidPriority(*in.Priority) {
		p := models.InquiryPriority(*in.Priority)
		u.Priority = &p
	}
	if in.FollowUpDate.Set {
		if in.FollowUpDate.Value == nil || *in.FollowUpDate.Value == "" {
			u.ClearFollowUp = true
		} else {
			t, ok := parseFollowUp(*in.FollowUpDate.Value)
			if !ok {
				return u, map[string]string{"followUpDate": "date"}
			}
			u.FollowUpDate = &t
		}
	}
	u.Notes = in.Notes
	return u, nil
}

// ListInquiries lists inquiries. Public mode yields an empty collection.
func (a *Admin) ListInquiries(w http.ResponseWriter, r *http.Request) {
	m, params, ok := mode(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	items, err := a.InquiryStore.List(ctx, query.Build(query.Inquiries, params, m))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.ForMode(m, shape.Inquiry)))
}

func (a *Admin) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	inq, err := a.InquiryStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Inquiry(inq, query.Admin))
}

// PatchInquiry updates the workflow fields of an inquiry. Fields left out of
// the body keep their value; a null followUpDate clears it.
func (a *Admin) PatchInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in inquiryPatch
	if !a.decode(w, r, &in) {
		return
	}
	u, details := in.update()
	if details != nil {
		invalid(w, details)
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	inq, err := a.InquiryStore.Update(ctx, id, u)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Inquiry(inq, query.Admin))
}

func (a *Admin) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	if err := a.InquiryStore.Delete(ctx, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
