package validator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Internal string `json:"-" validate:"omitempty,max=2"`
}

func TestValidate_Success(t *testing.T) {
	err := Validate(loginInput{Email: "demo@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := Validate(loginInput{Email: "not-an-email"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "is required", fields["password"])
	assert.Contains(t, err.Error(), "field 'email'")
}

func TestValidate_DashTagFallsBackToStructName(t *testing.T) {
	err := Validate(loginInput{Email: "a@b.co", Password: "secret1", Internal: "toolong"})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields(), "Internal")
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		isValid bool
	}{
		{"valid body", `{"email":"demo@example.com","password":"secret1"}`, false, false},
		{"malformed json", `{"email":`, true, false},
		{"missing fields", `{}`, true, true},
		{"empty body", ``, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.body))
			var dst loginInput
			err := DecodeAndValidate(req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "demo@example.com", dst.Email)
				return
			}
			require.Error(t, err)
			var valErr *ValidationError
			assert.Equal(t, tt.isValid, errors.As(err, &valErr))
		})
	}
}
