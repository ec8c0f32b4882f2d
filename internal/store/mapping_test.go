package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchoolName(t *testing.T) {
	tests := []struct {
		name    string
		school  string
		wantErr bool
	}{
		{"plain name", "SFU", false},
		{"name with spaces", "Simon Fraser University", false},
		{"name with dash", "sfu-surrey", false},
		{"empty name", "", true},
		{"name with delimiter", "school:SFU", true},
		{"delimiter only", ":", true},
		{"trailing delimiter", "SFU:", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchoolName(tt.school)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchoolKey(t *testing.T) {
	assert.Equal(t, "school:SFU", schoolKey("SFU"))
}
