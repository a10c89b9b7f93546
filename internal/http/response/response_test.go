package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"min=2"`
	Type   string `validate:"oneof=duvida sugestao"`
	Nested struct {
		Title string `validate:"required"`
	}
}

func TestValidationError(t *testing.T) {
	err := validator.New().Struct(sample{Email: "not-an-email", Name: "a", Type: "x"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	resp := ValidationError(verrs)

	assert.Contains(t, resp.Detail, "field Email must be a valid email")
	assert.Contains(t, resp.Detail, "field Name must be at least 2 characters")
	assert.Contains(t, resp.Detail, "field Type must be one of [duvida sugestao]")
	assert.Contains(t, resp.Detail, "field Nested.Title is a required field")
}

func TestError_RendersDetail(t *testing.T) {
	body, err := json.Marshal(Error("Miracle not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"Miracle not found"}`, string(body))
}

func TestMessage(t *testing.T) {
	body, err := json.Marshal(Message{Message: "Miracle deleted"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Miracle deleted"}`, string(body))
}
