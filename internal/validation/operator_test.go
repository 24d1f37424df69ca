package validation_test

import (
	"strings"
	"testing"

	"github.com/biyonik/go-query-builder/internal/validation"
)

func TestValidateOperator(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		wantErr  bool
	}{
		// Comparison
		{"equals", "=", false},
		{"not equals", "!=", false},
		{"not equals alt", "<>", false},
		{"less than", "<", false},
		{"greater than", ">", false},
		{"less or equal", "<=", false},
		{"greater or equal", ">=", false},
		{"null safe equals", "<=>", false},

		// Pattern
		{"like", "LIKE", false},
		{"like lowercase", "like", false},
		{"not like", "NOT LIKE", false},

		// Null
		{"is", "IS", false},
		{"is not lowercase", "is not", false},

		{"equals with space", " = ", false},

		// Single literal values cannot express set operators
		{"in", "IN", true},
		{"between", "BETWEEN", true},

		{"empty", "", true},
		{"invalid word", "EQUALS", true},
		{"sql injection", "= OR 1=1", true},
		{"semicolon", ";", true},
		{"comment", "--", true},
		{"partial like", "LIK", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateOperator(tt.operator)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOperator(%q) error = %v, wantErr %v", tt.operator, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOperator_ReasonListsAllowed(t *testing.T) {
	err := validation.ValidateOperator("~")
	if err == nil {
		t.Fatal("ValidateOperator(\"~\") error = nil, want error")
	}

	opErr, ok := err.(*validation.OperatorError)
	if !ok {
		t.Fatalf("error type = %T, want *validation.OperatorError", err)
	}
	for _, op := range validation.AllowedOperators() {
		if !strings.Contains(opErr.Reason, op) {
			t.Errorf("Reason %q does not mention %q", opErr.Reason, op)
		}
	}
}

func TestAllowedOperators_Sorted(t *testing.T) {
	ops := validation.AllowedOperators()
	if len(ops) != 12 {
		t.Fatalf("len(AllowedOperators()) = %d, want 12", len(ops))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] > ops[i] {
			t.Errorf("AllowedOperators() not sorted at %d: %q > %q", i, ops[i-1], ops[i])
		}
	}
}

func TestValidateDirection(t *testing.T) {
	valid := []string{"ASC", "DESC", "asc", "desc", " Desc "}
	invalid := []string{"", "UP", "ascending", "ASC; DROP TABLE users"}

	for _, dir := range valid {
		if err := validation.ValidateDirection(dir); err != nil {
			t.Errorf("ValidateDirection(%q) error = %v, want nil", dir, err)
		}
	}

	for _, dir := range invalid {
		if err := validation.ValidateDirection(dir); err == nil {
			t.Errorf("ValidateDirection(%q) error = nil, want error", dir)
		}
	}
}
