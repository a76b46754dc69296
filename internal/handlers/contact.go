// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"apigs/internal/models"
	"apigs/internal/transport"
)

type contactInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	Company     string `json:"company" validate:"omitempty,max=200"`
	InquiryType string `json:"inquiryType" validate:"required,oneof=general project partnership support"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
}

func (in *contactInput) trim() {
	for _, f := range []*string{&in.Name, &in.Email, &in.Phone, &in.Company, &in.InquiryType, &in.Subject, &in.Message} {
		*f = strings.TrimSpace(*f)
	}
}

type contactResponse struct {
	Success   bool   `json:"success"`
	InquiryID string `json:"inquiryId"`
	Message   string `json:"message"`
}

// Contact stores a contact-form submission as a new inquiry and emails the
// admin and the submitter. Email failures never fail the submission.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	if !readJSON(w, r, &in) {
		return
	}
	in.trim()
	if !p.check(w, &in) {
		return
	}

	ctx, cancel := p.dbContext(r)
	defer cancel()

	inq, err := p.InquiryStore.Create(ctx, &models.Inquiry{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       optional(in.Phone),
		Company:     optional(in.Company),
		Subject:     in.Subject,
		Message:     in.Message,
		InquiryType: models.InquiryType(in.InquiryType),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "Inquiry submitted successfully"
	if p.Notifier.Enabled() {
		mctx, mcancel := p.cleanupContext(r)
		p.Notifier.Notify(mctx, inq)
		mcancel()
	} else {
		message = "Inquiry saved successfully (email notifications disabled)"
	}

	transport.WriteJSON(w, http.StatusCreated, contactResponse{
		Success:   true,
		InquiryID: inq.ID.String(),
		Message:   message,
	})
}

// optional returns nil for an empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
