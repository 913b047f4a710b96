package handler

import (
	"errors"
	"testing"
)

func TestValidator_CollectsAllViolations(t *testing.T) {
	v := NewValidator()

	req := signupRequest{
		Email:        "not-an-email",
		Password:     "123",
		BusinessType: "spaceship",
	}

	err := v.Validate(&req)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := map[string]bool{
		"email":        false,
		"password":     false,
		"firstname":    false,
		"lastname":     false,
		"businesstype": false,
	}
	for _, fe := range ve.Fields {
		if _, ok := want[fe.Field]; !ok {
			t.Fatalf("unexpected field error: %+v", fe)
		}
		want[fe.Field] = true
		if fe.Msg == "" {
			t.Fatalf("field %s has empty message", fe.Field)
		}
	}
	for field, seen := range want {
		if !seen {
			t.Fatalf("missing violation for %s", field)
		}
	}
}

func TestValidator_ValidInputPasses(t *testing.T) {
	v := NewValidator()

	req := signupRequest{
		Email:        "a@x.com",
		Password:     "secret1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		BusinessType: "crafts",
	}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidator_OptionalFieldsSkippedWhenAbsent(t *testing.T) {
	v := NewValidator()

	// All-nil update is valid: every field is optional.
	if err := v.Validate(&updateProfileRequest{}); err != nil {
		t.Fatalf("empty update must pass: %v", err)
	}

	bad := "x"
	if err := v.Validate(&updateProfileRequest{Phone: &bad}); err == nil {
		t.Fatalf("present field must still satisfy its constraint")
	}
}
