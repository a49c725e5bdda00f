package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_EmailOrUsername(t *testing.T) {
	valid := []string{"user@example.com", "johndoe", "john_doe99"}
	for _, identifier := range valid {
		req := LoginRequest{EmailOrUsername: identifier, Password: "x"}
		assert.NoError(t, req.Validate(), identifier)
	}

	invalid := []string{"", "a!", "has spaces", "ab"}
	for _, identifier := range invalid {
		req := LoginRequest{EmailOrUsername: identifier, Password: "x"}
		assert.Error(t, req.Validate(), identifier)
	}
}

func TestFormatValidationErrors_EmailOrUsernameMessage(t *testing.T) {
	req := LoginRequest{EmailOrUsername: "a!", Password: "x"}
	err := req.Validate()
	require.Error(t, err)

	formatted := FormatValidationErrors(err)
	require.Len(t, formatted, 1)
	assert.Equal(t, "EmailOrUsername", formatted[0].Field)
	assert.Contains(t, formatted[0].Message, "valid email address or username")
}
