package store

import (
	"context"
	"sync"
	"testing"

	"apigs/internal/models"
)

func TestCompanyUpsertSingleActiveRow(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewCompanyStore(db)

	var existing int
	if err := db.QueryRow(`SELECT COUNT(*) FROM company_details`).Scan(&existing); err != nil {
		t.Fatal(err)
	}
	if existing > 0 {
		t.Skip("company_details already populated; refusing to touch existing data")
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM company_details`) })

	got, err := s.Active(ctx)
	if err != nil || got != nil {
		t.Fatalf("Active() on empty table = %v, %v; want nil, nil", got, err)
	}

	const n = 8
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Upsert(ctx, &models.CompanyDetails{
				CompanyName:      "Acme",
				TeamMembersCount: i,
			})
			if err != nil {
				t.Errorf("Upsert: %v", err)
			}
		}()
	}
	wg.Wait()

	var active int
	if err := db.QueryRow(`SELECT COUNT(*) FROM company_details WHERE is_active`).Scan(&active); err != nil {
		t.Fatal(err)
	}
	if active != 1 {
		t.Fatalf("active rows = %d, want 1", active)
	}

	saved, err := s.Upsert(ctx, &models.CompanyDetails{
		CompanyName:    "Acme Indonesia",
		Tagline:        ptr("Build"),
		Certifications: models.StringList{"ISO 27001"},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if saved.CompanyName != "Acme Indonesia" || saved.Timezone != models.DefaultTimezone {
		t.Errorf("saved = %+v", saved)
	}
	if len(saved.Certifications) != 1 {
		t.Errorf("certifications = %v", saved.Certifications)
	}
}
