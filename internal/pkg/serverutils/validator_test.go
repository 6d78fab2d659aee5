package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Rating int    `validate:"required,min=1,max=5"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
	}{
		{name: "valid", req: sampleRequest{Email: "a@b.com", Rating: 4}},
		{name: "missing email", req: sampleRequest{Rating: 4}, wantErr: true},
		{name: "malformed email", req: sampleRequest{Email: "not-an-email", Rating: 4}, wantErr: true},
		{name: "rating out of range", req: sampleRequest{Email: "a@b.com", Rating: 6}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			// Field detail must not leak; every failure is the same message.
			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, "Invalid input data", appErr.Message)
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"unauthorized", NewUnauthorizedError("no"), 401},
		{"forbidden", NewForbiddenError("no"), 403},
		{"not found", NewNotFoundError("no"), 404},
		{"validation", NewValidationError("no"), 400},
		{"conflict", NewConflictError("no"), 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, "no", tt.err.Error())
		})
	}
}
