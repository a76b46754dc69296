package store

import (
	"context"
	"testing"

	"apigs/internal/models"
	"apigs/internal/query"
)

func TestTeamPublicNeedsBothFlags(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	team := NewTeamStore(db)
	t.Cleanup(func() { db.Exec(`DELETE FROM team_members WHERE department = 'store-test'`) })

	member, err := team.Create(ctx, &models.TeamMember{
		FirstName: "Budi", LastName: "Santoso", DisplayName: "Budi", JobTitle: "Engineer",
		Department: ptr("store-test"), IsActive: true, IsPublic: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	visible := func() bool {
		t.Helper()
		q := query.Build(query.TeamMembers, query.Params{"department": "store-test"}, query.Public)
		list, err := team.List(ctx, q)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		return len(list) == 1
	}

	tests := []struct {
		name             string
		active, public   bool
		wantInPublicList bool
	}{
		{"active and public", true, true, true},
		{"active but private", true, false, false},
		{"inactive but public", false, true, false},
		{"inactive and private", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := team.SetVisibility(ctx, member.ID, &tt.active, &tt.public); err != nil {
				t.Fatalf("SetVisibility: %v", err)
			}
			if got := visible(); got != tt.wantInPublicList {
				t.Errorf("in public list = %v, want %v", got, tt.wantInPublicList)
			}
		})
	}

	// Nil flags are left untouched.
	updated, err := team.SetVisibility(ctx, member.ID, ptr(true), nil)
	if err != nil {
		t.Fatalf("SetVisibility: %v", err)
	}
	if !updated.IsActive || updated.IsPublic {
		t.Errorf("flags = active %v public %v, want true false", updated.IsActive, updated.IsPublic)
	}

	deleted, err := team.Delete(ctx, member.ID)
	if err != nil || deleted.ID != member.ID {
		t.Errorf("Delete = %v, %v", deleted, err)
	}
}
