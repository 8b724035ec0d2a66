package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameProbe struct {
	Name  string `validate:"omitempty,valid_name"`
	Phone string `validate:"omitempty,valid_phone"`
}

func newTestValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestValidName(t *testing.T) {
	v := newTestValidator()

	for _, name := range []string{"Jane Doe", "O'Brien", "Anne-Marie", "J. R. Smith", "José"} {
		assert.NoError(t, v.Struct(nameProbe{Name: name}), "name %q should be accepted", name)
	}
	for _, name := range []string{"Jane123", "DROP TABLE;", "a@b"} {
		assert.Error(t, v.Struct(nameProbe{Name: name}), "name %q should be rejected", name)
	}
}

func TestValidPhone(t *testing.T) {
	v := newTestValidator()

	for _, phone := range []string{"+6281234567890", "08123456789", "1234567"} {
		assert.NoError(t, v.Struct(nameProbe{Phone: phone}), "phone %q should be accepted", phone)
	}
	for _, phone := range []string{"123456", "+12 345 678", "phone", "12345678901234567"} {
		assert.Error(t, v.Struct(nameProbe{Phone: phone}), "phone %q should be rejected", phone)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := newTestValidator()

	type payload struct {
		DegreeName string `validate:"required"`
		Email      string `validate:"omitempty,email"`
	}

	err := v.Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	details := FormatValidationErrors(err)
	require.Len(t, details, 2)

	assert.Equal(t, "degree_name", details[0].Field)
	assert.Equal(t, "Degree Name is required", details[0].Message)
	assert.Equal(t, "email", details[1].Field)
	assert.Contains(t, details[1].Message, "valid email")
}
