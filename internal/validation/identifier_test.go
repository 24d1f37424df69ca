package validation_test

import (
	"strings"
	"testing"

	"github.com/biyonik/go-query-builder/internal/validation"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantErr    bool
	}{
		// Valid identifiers
		{"simple name", "users", false},
		{"with underscore", "user_name", false},
		{"with numbers", "user123", false},
		{"starts with underscore", "_private", false},
		{"table.column", "users.id", false},
		{"mixed case", "UserName", false},
		{"single char", "a", false},
		{"max length", strings.Repeat("a", 128), false},

		// Invalid identifiers
		{"empty string", "", true},
		{"star", "*", true},
		{"starts with number", "123users", true},
		{"contains space", "user name", true},
		{"contains dash", "user-name", true},
		{"contains semicolon", "users;", true},
		{"contains quote", "users'", true},
		{"contains backtick", "users`", true},
		{"contains parenthesis", "count()", true},
		{"multiple dots", "a.b.c", true},
		{"ends with dot", "users.", true},
		{"too long", strings.Repeat("a", 129), true},

		// SQL injection attempts
		{"stacked query", "users; DROP TABLE users;--", true},
		{"union injection", "users UNION SELECT", true},
		{"or injection", "users OR 1=1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateIdentifier(tt.identifier)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.identifier, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{"simple table", "users", false},
		{"with AS alias", "users as u", false},
		{"with AS uppercase", "users AS u", false},
		{"with space alias", "users u", false},
		{"underscore alias", "user_accounts as ua", false},

		{"empty string", "", true},
		{"blank", "   ", true},
		{"invalid table name", "123users", true},
		{"invalid alias", "users as 123", true},
		{"sql injection in table", "users; DROP", true},
		{"sql injection in alias", "users as u; DROP", true},
		{"multiple AS", "users as u as v", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateTable(tt.table)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTable(%q) error = %v, wantErr %v", tt.table, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColumn(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		wantErr bool
	}{
		{"plain", "age", false},
		{"qualified", "u.age", false},
		{"contains reserved word", "order_id", false},

		{"reserved", "order", true},
		{"reserved uppercase", "SELECT", true},
		{"reserved qualified part", "u.from", true},
		{"invalid characters", "age > 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateColumn(tt.column)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumn(%q) error = %v, wantErr %v", tt.column, err, tt.wantErr)
			}
		})
	}
}

func TestIsReservedWord(t *testing.T) {
	reserved := []string{"select", "SELECT", "from", "FROM", "where", "limit", "order", "null"}
	notReserved := []string{"users", "id", "name", "email", "foobar"}

	for _, word := range reserved {
		if !validation.IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = false, want true", word)
		}
	}

	for _, word := range notReserved {
		if validation.IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = true, want false", word)
		}
	}
}

func TestIdentifierError(t *testing.T) {
	err := &validation.IdentifierError{
		Identifier: "bad;name",
		Reason:     "contains invalid characters",
	}

	expected := "querybuilder: invalid identifier 'bad;name': contains invalid characters"
	if err.Error() != expected {
		t.Errorf("IdentifierError.Error() = %q, want %q", err.Error(), expected)
	}

	// Empty identifier
	err2 := &validation.IdentifierError{
		Identifier: "",
		Reason:     "cannot be empty",
	}
	expected2 := "querybuilder: invalid identifier: cannot be empty"
	if err2.Error() != expected2 {
		t.Errorf("IdentifierError.Error() = %q, want %q", err2.Error(), expected2)
	}
}

func BenchmarkValidateIdentifier(b *testing.B) {
	identifiers := []string{"users", "user_accounts", "users.id", "a", "very_long_identifier_name"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, id := range identifiers {
			_ = validation.ValidateIdentifier(id)
		}
	}
}
