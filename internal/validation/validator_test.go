package validation

import (
	"testing"
)

type contact struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Email string  `json:"email" validate:"required,email"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
	Slug  string  `json:"slug" validate:"omitempty,slug"`
	Color string  `json:"color" validate:"omitempty,hexcolor"`
}

func ptr(s string) *string { return &s }

func TestValidatorReportsJSONNames(t *testing.T) {
	v := New()
	err := v.Struct(contact{Email: "nope", Phone: ptr("abc"), Slug: "Not A Slug", Color: "red"})
	errs := v.ValidationErrors(err)
	if errs == nil {
		t.Fatalf("expected validation errors, got %v", err)
	}

	got := map[string]string{}
	for _, e := range errs {
		got[e.Field()] = e.Tag()
	}
	want := map[string]string{
		"name":  "required",
		"email": "email",
		"phone": "phone",
		"slug":  "slug",
		"color": "hexcolor",
	}
	for field, tag := range want {
		if got[field] != tag {
			t.Errorf("%s: got %q, want %q", field, got[field], tag)
		}
	}
}

func TestValidatorAcceptsValid(t *testing.T) {
	v := New()
	err := v.Struct(contact{
		Name:  "Ann",
		Email: "ann@example.com",
		Phone: ptr("+62 812-3456-7890"),
		Slug:  "web-development",
		Color: "#2563eb",
	})
	if err != nil {
		t.Errorf("Struct() = %v", err)
	}
	if v.ValidationErrors(nil) != nil {
		t.Error("ValidationErrors(nil) should be nil")
	}
}
