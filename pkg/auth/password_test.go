package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass")
	require.NoError(t, err)
	require.NotEqual(t, "Str0ng!Pass", hash)

	assert.True(t, VerifyPassword(hash, "Str0ng!Pass"))
	assert.False(t, VerifyPassword(hash, "Wr0ng!Pass"))
	assert.False(t, VerifyPassword("", "Str0ng!Pass"))
}

func TestVerifyDummy(t *testing.T) {
	// The dummy compare exists only to equalize timing; it never matches.
	assert.False(t, VerifyDummy("anything"))
	assert.False(t, VerifyDummy(""))
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Pass", false},
		{"minimum length with all classes", "Aa1!aaaa", false},
		{"too short", "Aa1!aaa", true},
		{"no uppercase", "str0ng!pass", true},
		{"no lowercase", "STR0NG!PASS", true},
		{"no digit", "Strong!Pass", true},
		{"no symbol", "Str0ngPass1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
