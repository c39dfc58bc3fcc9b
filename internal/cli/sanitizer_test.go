package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "t a", "t a", nil},
		{"tab kept", "t\ta", "t\ta", nil},
		{"ansi stripped", "t \x1b[31ma", "t [31ma", nil},
		{"null stripped", "e\x00 b", "e b", nil},
		{"invalid utf8", "t \xff", "", ErrInvalidUTF8},
		{"too large", strings.Repeat("x", DefaultMaxInputSize+1), "", ErrInputTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeInput_EnvLimit(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "4")

	_, err := SanitizeInput("t abc")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := SanitizeInput("t ab")
	require.NoError(t, err)
	assert.Equal(t, "t ab", got)
}
