// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"apigs/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, m Message) (string, error)
}

// InquiryNotifier emails the site admin about a new inquiry and sends the
// submitter a confirmation. Delivery failures are logged, never returned.
type InquiryNotifier struct {
	sender   Sender
	from     string
	admin    string
	siteName string
}

// NewInquiryNotifier returns a notifier. A nil sender disables email.
func NewInquiryNotifier(sender Sender, from, admin, siteName string) *InquiryNotifier {
	return &InquiryNotifier{sender: sender, from: from, admin: admin, siteName: siteName}
}

// Enabled reports whether a sender is configured.
func (n *InquiryNotifier) Enabled() bool {
	return n != nil && n.sender != nil
}

type inquiryMail struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Company      string
	Subject      string
	TypeLabel    string
	TypeTitle    string
	MessageLines []string
	Submitted    string
	SiteName     string
	Contact      string
}

// Notify sends both messages for inq.
func (n *InquiryNotifier) Notify(ctx context.Context, inq *models.Inquiry) {
	if !n.Enabled() {
		slog.Warn("email not configured, inquiry notifications skipped", "inquiry_id", inq.ID)
		return
	}

	data := n.mailData(inq)

	if n.admin != "" {
		msg, err := n.render("admin_inquiry.html", data)
		if err == nil {
			msg.To = n.admin
			msg.ReplyTo = inq.Email
			msg.Subject = AdminSubject(inq)
			n.send(ctx, "admin notification", inq, msg)
		} else {
			slog.Error("render admin notification", "error", err)
		}
	}

	msg, err := n.render("confirmation.html", data)
	if err != nil {
		slog.Error("render inquiry confirmation", "error", err)
		return
	}
	msg.To = inq.Email
	msg.Subject = "We received your inquiry - " + n.siteName
	n.send(ctx, "submitter confirmation", inq, msg)
}

// AdminSubject is the subject line of the admin notification.
func AdminSubject(inq *models.Inquiry) string {
	return fmt.Sprintf("New %s Inquiry: %s", strings.ToUpper(string(inq.InquiryType)), inq.Subject)
}

func (n *InquiryNotifier) send(ctx context.Context, kind string, inq *models.Inquiry, msg Message) {
	id, err := n.sender.Send(ctx, msg)
	if err != nil {
		slog.Error("inquiry email failed", "kind", kind, "inquiry_id", inq.ID, "error", err)
		return
	}
	slog.Info("inquiry email sent", "kind", kind, "inquiry_id", inq.ID, "message_id", id)
}

func (n *InquiryNotifier) render(name string, data inquiryMail) (Message, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return Message{}, err
	}
	return Message{From: n.from, HTML: buf.String()}, nil
}

func (n *InquiryNotifier) mailData(inq *models.Inquiry) inquiryMail {
	kind := string(inq.InquiryType)
	title := kind
	if kind != "" {
		title = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return inquiryMail{
		ID:           inq.ID.String(),
		Name:         inq.Name,
		Email:        inq.Email,
		Phone:        deref(inq.Phone),
		Company:      deref(inq.Company),
		Subject:      inq.Subject,
		TypeLabel:    strings.ToUpper(kind),
		TypeTitle:    title,
		MessageLines: strings.Split(inq.Message, "\n"),
		Submitted:    inq.CreatedAt.UTC().Format("2006-01-02 15:04 UTC"),
		SiteName:     n.siteName,
		Contact:      n.admin,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
