package store

import (
	"context"
	"testing"
	"time"

	"apigs/internal/models"
	"apigs/internal/query"
)

func TestInquiryWorkflowFilters(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewInquiryStore(db)
	const email = "inquiry@store-test.local"
	t.Cleanup(func() { db.Exec(`DELETE FROM inquiries WHERE email = $1`, email) })

	in, err := s.Create(ctx, &models.Inquiry{
		Name: "Ann", Email: email, Subject: "Website", Message: "We need a new website.",
		InquiryType: models.InquiryTypeProject,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if in.Status != models.InquiryStatusNew || in.Priority != models.PriorityMedium {
		t.Errorf("defaults = %s/%s, want new/medium", in.Status, in.Priority)
	}

	status, priority := models.InquiryStatusQualified, models.PriorityHigh
	followUp := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	updated, err := s.Update(ctx, in.ID, models.InquiryUpdate{
		Status: &status, Priority: &priority, FollowUpDate: &followUp, Notes: ptr("call friday"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FollowUpDate == nil || !updated.FollowUpDate.Equal(followUp) {
		t.Errorf("followUpDate = %v, want %v", updated.FollowUpDate, followUp)
	}

	count := func(p query.Params) int {
		t.Helper()
		p["search"] = email
		list, err := s.List(ctx, query.Build(query.Inquiries, p, query.Admin))
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		return len(list)
	}
	if n := count(query.Params{"status": "qualified", "priority": "high"}); n != 1 {
		t.Errorf("qualified+high = %d, want 1", n)
	}
	if n := count(query.Params{"status": "new"}); n != 0 {
		t.Errorf("status=new = %d, want 0", n)
	}
	if n := count(query.Params{"status": "bogus"}); n != 0 {
		t.Errorf("status=bogus = %d, want 0", n)
	}

	public, err := s.List(ctx, query.Build(query.Inquiries, query.Params{}, query.Public))
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	if len(public) != 0 {
		t.Errorf("public inquiry list returned %d rows", len(public))
	}

	cleared, err := s.Update(ctx, in.ID, models.InquiryUpdate{ClearFollowUp: true})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared.FollowUpDate != nil || cleared.Status != status {
		t.Errorf("clear follow-up changed other fields: %+v", cleared)
	}
}
