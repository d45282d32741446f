package author

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAuthorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAuthorRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  CreateAuthorRequest{Name: "Ursula K. Le Guin", Bio: "sci-fi"},
		},
		{
			name: "empty name allowed",
			req:  CreateAuthorRequest{},
		},
		{
			name: "twenty chars allowed",
			req:  CreateAuthorRequest{Name: strings.Repeat("a", 20)},
		},
		{
			name:    "twenty-one chars rejected",
			req:     CreateAuthorRequest{Name: strings.Repeat("a", 21)},
			wantErr: ErrNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
