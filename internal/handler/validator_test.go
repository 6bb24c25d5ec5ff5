package handler

import (
	"contact-service/internal/apperror"
	"contact-service/internal/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(&model.ContactInput{Email: "nope"})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.Equal(t, map[string][]string{
		"first_name": {"Required"},
		"last_name":  {"Required"},
		"email":      {"Invalid email"},
	}, appErr.Fields)
}

func TestValidatorAcceptsValidInput(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(&model.ContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}))
	assert.NoError(t, v.Validate(&model.ContactPatch{}))
	assert.NoError(t, v.Validate(&model.PreferenceInput{}))
}

func TestValidatorPreferenceRules(t *testing.T) {
	v := NewRequestValidator()
	theme := model.Theme("sepia")
	rows := -1

	err := v.Validate(&model.PreferenceInput{Theme: &theme, RowsPerPage: &rows})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"Must be one of: light dark"}, appErr.Fields["theme"])
	assert.Equal(t, []string{"Must be greater than 0"}, appErr.Fields["rowsPerPage"])
}
