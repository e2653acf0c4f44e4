package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllSchemas(t *testing.T) {
	for _, name := range []string{Post, Posts, CreatedPost, User, Users} {
		t.Run(name, func(t *testing.T) {
			data, err := Load(name)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"$schema"`)
		})
	}
}

func TestLoad_UnknownSchema(t *testing.T) {
	_, err := Load("comment")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidate_Post(t *testing.T) {
	err := Validate(Post, []byte(`{"id":1,"userId":1,"title":"t","body":"b"}`))
	assert.NoError(t, err)
}

func TestValidate_PostMissingField(t *testing.T) {
	err := Validate(Post, []byte(`{"id":1,"title":"t","body":"b"}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, Post, validationErr.Schema)
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, err.Error(), "userId")
}

func TestValidate_PostWrongType(t *testing.T) {
	err := Validate(Post, []byte(`{"id":"1","userId":1,"title":"t","body":"b"}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "id", validationErr.Errors[0].Field)
}

func TestValidate_EmptyObjectIsNotAUser(t *testing.T) {
	// The API answers unknown ids with {}; a strict client must reject it
	err := Validate(User, []byte(`{}`))
	require.Error(t, err)
}

func TestValidate_UsersArray(t *testing.T) {
	doc := `[{"id":1,"name":"Leanne Graham","email":"a@b.c","website":"x.org","company":{"name":"Acme"}}]`
	assert.NoError(t, Validate(Users, []byte(doc)))

	bad := `[{"id":1,"name":"","email":"a@b.c","website":"x.org","company":{"name":"Acme"}}]`
	assert.Error(t, Validate(Users, []byte(bad)))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(Post, []byte(`{not json`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestChecker(t *testing.T) {
	check := Checker(Posts)
	assert.NoError(t, check([]byte(`[]`)))
	assert.Error(t, check([]byte(`{}`)))
}

func TestValidateJSONString_Valid(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`
	assert.NoError(t, ValidateJSONString(schema, `{"name":"x"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`
	err := ValidateJSONString(schema, `{"other":1}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.Errors, 1)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: "post",
		Errors: []FieldError{
			{Field: "title", Message: "title is required"},
			{Field: "id", Message: "Invalid type"},
		},
	}
	msg := err.Error()
	assert.Contains(t, msg, "post validation failed")
	assert.Contains(t, msg, "1. title: title is required")
	assert.Contains(t, msg, "2. id: Invalid type")
}
