package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_TagRequest(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name      string
		req       TagRequest
		wantField string
	}{
		{"valid long color", TagRequest{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}, ""},
		{"valid short color", TagRequest{Name: "Lunch", Color: "#abc", Slug: "lunch_time"}, ""},
		{"color without hash", TagRequest{Name: "Lunch", Color: "E26C2D", Slug: "lunch"}, "color"},
		{"color not hex", TagRequest{Name: "Lunch", Color: "#GGGGGG", Slug: "lunch"}, "color"},
		{"slug with space", TagRequest{Name: "Lunch", Color: "#abc", Slug: "late lunch"}, "slug"},
		{"missing name", TagRequest{Color: "#abc", Slug: "lunch"}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FormatValidationError(err)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidator_RegisterUserRequest(t *testing.T) {
	v := GetValidator()
	valid := RegisterUserRequest{Email: "cook@example.com", Username: "cook.42", FirstName: "Ann", LastName: "Lee"}
	assert.NoError(t, v.ValidateStruct(valid))

	bad := valid
	bad.Username = "no spaces"
	fields := FormatValidationError(v.ValidateStruct(bad))
	assert.Equal(t, "Only letters, digits and @/./+/-/_ are allowed", fields["username"])

	bad = valid
	bad.Email = "not-an-email"
	fields = FormatValidationError(v.ValidateStruct(bad))
	assert.Equal(t, "Invalid email format", fields["email"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
	assert.Nil(t, FormatValidationError(nil))
}
