package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Player(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		player  string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"wallet address", "0x5FbDB2315678afecb367f032d93F642f64180aa3", false},
		{"unicode", "jöreg", false},
		{"max length", strings.Repeat("a", MaxPlayerLength), false},

		{"empty", "", true},
		{"blank", "  \t ", true},
		{"too long", strings.Repeat("a", MaxPlayerLength+1), true},
		{"newline", "ali\nce", true},
		{"null byte", "ali\x00ce", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(CreateSpinRequest{Player: tt.player})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, FormatValidationError(err), "player")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
	assert.Nil(t, FormatValidationError(nil))
}
