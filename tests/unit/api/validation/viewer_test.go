package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayloft/stayloft/internal/api/validation"
)

func strptr(s string) *string { return &s }

func TestValidateLoginRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       validation.LoginRequest
		wantField string
	}{
		{
			name: "nil code is valid",
			req:  validation.LoginRequest{},
		},
		{
			name: "non-blank code is valid",
			req:  validation.LoginRequest{Code: strptr("abc123")},
		},
		{
			name:      "empty code is invalid",
			req:       validation.LoginRequest{Code: strptr("")},
			wantField: "code",
		},
		{
			name:      "whitespace code is invalid",
			req:       validation.LoginRequest{Code: strptr("   ")},
			wantField: "code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateLoginRequest(tt.req)

			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}

			assert.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}
