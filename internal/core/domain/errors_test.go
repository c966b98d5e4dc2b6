package domain

import (
	"errors"
	"testing"
)

func TestValidationErrorIsMissing(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldError
		want   bool
	}{
		{"required tag", []FieldError{{Field: "name", Tag: "required", Message: "name is required"}}, true},
		{"mixed", []FieldError{
			{Field: "email", Tag: "email", Message: "email must be a valid email address"},
			{Field: "city", Tag: "required", Message: "city is required"},
		}, true},
		{"message alone does not count", []FieldError{{Field: "notes", Tag: "custom", Message: "notes is required"}}, false},
		{"format only", []FieldError{{Field: "phone", Tag: "min", Message: "phone must have at least 10 characters"}}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := &ValidationError{Fields: tt.fields}
			if got := verr.IsMissing(); got != tt.want {
				t.Errorf("IsMissing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationErrorMatchesInvalidInput(t *testing.T) {
	var err error = &ValidationError{Fields: []FieldError{
		{Field: "name", Tag: "required", Message: "name is required"},
		{Field: "email", Tag: "email", Message: "email must be a valid email address"},
	}}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is(err, ErrInvalidInput)")
	}
	if got, want := err.Error(), "name is required; email must be a valid email address"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := (&ValidationError{}).Error(); got != ErrInvalidInput.Error() {
		t.Errorf("empty Error() = %q", got)
	}
}
