package validator

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending scheduled completed skipped"`
	TeamID string `json:"teamId" validate:"required,uuid"`
}

func TestParseErrorValidation(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)

	err := v.Struct(statusRequest{Status: "archived", TeamID: "nope"})
	fields := ParseError(err)

	assert.Equal(t, "must be one of [pending scheduled completed skipped]", fields["status"])
	assert.Equal(t, "must be a valid UUID", fields["teamId"])
}

func TestParseErrorDecode(t *testing.T) {
	var req statusRequest
	err := json.Unmarshal([]byte(`{"status": 3}`), &req)

	assert.Equal(t, map[string]string{"body": "request body could not be decoded"}, ParseError(err))
	assert.Empty(t, ParseError(nil))
}
