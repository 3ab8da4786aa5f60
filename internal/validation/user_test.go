package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "Alice", false},
		{"Two Characters", "Al", false},
		{"Empty", "", true},
		{"Too Short", "A", true},
		{"Too Long", strings.Repeat("a", 61), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("First name", tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName_LabelInMessage(t *testing.T) {
	err := ValidateName("Last name", "")
	assert.ErrorContains(t, err, "Last name")
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "user@example.com", false},
		{"Valid With Plus", "user+tag@example.co.uk", false},
		{"Missing At", "userexample.com", true},
		{"Missing Domain", "user@", true},
		{"Missing TLD", "user@example", true},
		{"Empty", "", true},
		{"Spaces", "user @example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "Str0ng-pass", false},
		{"Minimum Length", "Aa1!bcde", false},
		{"Too Short", "Aa1!bcd", true},
		{"No Uppercase", "weak-pass1", true},
		{"No Lowercase", "WEAK-PASS1", true},
		{"No Digit", "Weak-password", true},
		{"No Symbol", "Weakpass1", true},
		{"Empty", "", true},
		{"Too Long", "Aa1!" + strings.Repeat("x", 130), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
