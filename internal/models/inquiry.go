// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// InquiryType classifies a contact-form submission.
type InquiryType string

const (
	InquiryTypeGeneral     InquiryType = "general"
	InquiryTypeProject     InquiryType = "project"
	InquiryTypePartnership InquiryType = "partnership"
	InquiryTypeSupport     InquiryType = "support"
)

// InquiryStatus is the sales workflow position of an inquiry.
// new → contacted → qualified → converted | closed.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusQualified InquiryStatus = "qualified"
	InquiryStatusConverted InquiryStatus = "converted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// InquiryPriority ranks inquiries for follow-up.
type InquiryPriority string

const (
	PriorityLow    InquiryPriority = "low"
	PriorityMedium InquiryPriority = "medium"
	PriorityHigh   InquiryPriority = "high"
	PriorityUrgent InquiryPriority = "urgent"
)

// Accepted values, in workflow/rank order.
var (
	InquiryTypes      = []string{"general", "project", "partnership", "support"}
	InquiryStatuses   = []string{"new", "contacted", "qualified", "converted", "closed"}
	InquiryPriorities = []string{"low", "medium", "high", "urgent"}
)

// ValidInquiryType reports whether s is one of the canonical inquiry types.
func ValidInquiryType(s string) bool { return slices.Contains(InquiryTypes, s) }

// ValidInquiryStatus reports whether s is a known workflow status.
func ValidInquiryStatus(s string) bool { return slices.Contains(InquiryStatuses, s) }

// ValidPriority reports whether s is a known priority.
func ValidPriority(s string) bool { return slices.Contains(InquiryPriorities, s) }

// Inquiry is a contact-form submission. Created by the public, then worked
// by admins (status, priority, follow-up date, notes).
type Inquiry struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone"`
	Company      *string         `json:"company"`
	Subject      string          `json:"subject"`
	Message      string          `json:"message"`
	InquiryType  InquiryType     `json:"inquiryType"`
	Status       InquiryStatus   `json:"status"`
	Priority     InquiryPriority `json:"priority"`
	FollowUpDate *time.Time      `json:"followUpDate"`
	Notes        *string         `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// InquiryUpdate carries the admin-editable workflow fields. Nil fields are
// left unchanged; ClearFollowUp removes the follow-up date.
type InquiryUpdate struct {
	Status        *InquiryStatus
	Priority      *InquiryPriority
	FollowUpDate  *time.Time
	ClearFollowUp bool
	Notes         *string
}
