// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shape

import (
	"apigs/internal/models"
	"apigs/internal/query"
)

type InquiryView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Company      *string `json:"company"`
	Subject      string  `json:"subject"`
	Message      string  `json:"message"`
	InquiryType  string  `json:"inquiryType"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	FollowUpDate *string `json:"followUpDate"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// InquiryAdminView adds the internal notes.
type InquiryAdminView struct {
	InquiryView
	Notes *string `json:"notes"`
}

// Inquiry returns the view of i for mode: InquiryView in public mode,
// InquiryAdminView in admin mode.
func Inquiry(i *models.Inquiry, mode query.Mode) any {
	v := InquiryView{
		ID:           id(i.ID),
		Name:         i.Name,
		Email:        i.Email,
		Phone:        i.Phone,
		Company:      i.Company,
		Subject:      i.Subject,
		Message:      i.Message,
		InquiryType:  string(i.InquiryType),
		Status:       string(i.Status),
		Priority:     string(i.Priority),
		FollowUpDate: StampPtr(i.FollowUpDate),
		CreatedAt:    Stamp(i.CreatedAt),
		UpdatedAt:    Stamp(i.UpdatedAt),
	}
	if mode != query.Admin {
		return v
	}
	return InquiryAdminView{InquiryView: v, Notes: i.Notes}
}
