// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todone-app/todone/internal/platform/sec"
)

/*
TestHashPassword_Salted verifies that hashing is salted: the same plaintext
never produces the same stored hash twice, and neither hash contains the
plaintext.
*/
func TestHashPassword_Salted(t *testing.T) {
	const plaintext = "correct horse battery staple"

	first, err := sec.HashPassword(plaintext)
	require.NoError(t, err)

	second, err := sec.HashPassword(plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, plaintext)

	// Both hashes still verify against the original plaintext.
	assert.True(t, sec.CheckPasswordHash(plaintext, first))
	assert.True(t, sec.CheckPasswordHash(plaintext, second))
}

/*
TestCheckPasswordHash_Mismatch verifies that wrong passwords and malformed
hashes report false rather than error.
*/
func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{"wrong_password", "wrong-password", hash},
		{"empty_password", "", hash},
		{"malformed_hash", "s3cret-password", "not-a-bcrypt-hash"},
		{"empty_hash", "s3cret-password", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, sec.CheckPasswordHash(tt.password, tt.hash))
		})
	}
}
