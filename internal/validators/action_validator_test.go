package validators

import (
	"errors"
	"testing"
)

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		params   map[string]string
		fields   []string
	}{
		{"nothing required", nil, nil, nil},
		{"present", []string{"reason"}, map[string]string{"reason": "blurry scan"}, nil},
		{"missing", []string{"reason"}, map[string]string{}, []string{"reason"}},
		{"blank", []string{"resolution"}, map[string]string{"resolution": "   "}, []string{"resolution"}},
		{"several", []string{"reason", "assignee"}, map[string]string{"assignee": "ops"}, []string{"reason"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateParams(tt.required, tt.params)
			if len(errs) != len(tt.fields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.fields))
			}
			for i, field := range tt.fields {
				if errs[i].Field != field || errs[i].Tag != "required" {
					t.Errorf("error %d = %+v", i, errs[i])
				}
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		ID     string `validate:"required,entity_id"`
		Reason string `validate:"max=5"`
	}
	if errs := ValidateStruct(request{ID: "drv-2001"}); len(errs) != 0 {
		t.Errorf("valid request: %v", errs)
	}
	errs := ValidateStruct(request{ID: "Robert", Reason: "far too long"})
	if len(errs) != 2 {
		t.Fatalf("got %v", errs)
	}
	if errs[0].Tag != "entity_id" || errs[1].Tag != "max" {
		t.Errorf("tags = %s, %s", errs[0].Tag, errs[1].Tag)
	}
}

func TestValidateOperator(t *testing.T) {
	if err := ValidateOperator("admin1"); err != nil {
		t.Errorf("admin1: %v", err)
	}
	for _, bad := range []string{"", "two words", "tab\there"} {
		if err := ValidateOperator(bad); !errors.Is(err, ErrInvalidOperatorID) {
			t.Errorf("%q: err = %v", bad, err)
		}
	}
}
