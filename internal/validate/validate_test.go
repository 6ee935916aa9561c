package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin staff"`
	Age   int    `validate:"gte=18"`
}

func TestStruct_FieldMessages(t *testing.T) {
	err := Struct(signup{Email: "nope", Role: "guest", Age: 3})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Invalid email address", ve.Fields["email"])
	assert.Equal(t, "role must be one of [admin staff]", ve.Fields["role"])
	assert.Equal(t, "Age must be at least 18", ve.Fields["Age"])
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(signup{Email: "a@example.com", Role: "staff", Age: 30}))
}

func TestValidationError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := error(&ValidationError{Message: "bad", Err: sentinel})

	assert.ErrorIs(t, err, sentinel)
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(sentinel))
	assert.EqualError(t, Invalid("bad %d", 1), "bad 1")
}
