package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		in     string
		column string
		desc   bool
	}{
		{"last_name:asc", "last_name", false},
		{"email:desc", "email", true},
		{"created_at:DESC", "created_at", true},
		{"first_name", "first_name", false},
		{"updated_at:sideways", "updated_at", false},
		{"DROP TABLE", "last_name", false},
		{"phone:desc", "last_name", true},
		{"", "last_name", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			column, desc := ParseSort(tt.in)
			assert.Equal(t, tt.column, column)
			assert.Equal(t, tt.desc, desc)
		})
	}
}

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{Page: 0, PageSize: -3}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, DefaultSort, q.Sort)
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{Page: 3, PageSize: 500, Sort: "email:desc"}.Normalize()
	assert.Equal(t, 500, q.PageSize)
	assert.Equal(t, 1000, q.Offset())
	assert.Equal(t, "email:desc", q.Sort)
}

func TestContactPatchDecoding(t *testing.T) {
	var patch ContactPatch
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"555-1111","company":null}`), &patch))

	assert.Nil(t, patch.FirstName)
	require.True(t, patch.Phone.Set)
	assert.Equal(t, "555-1111", *patch.Phone.Value)
	assert.True(t, patch.Company.Set)
	assert.Nil(t, patch.Company.Value)

	company := "Acme"
	c := Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Company: &company}
	patch.Apply(&c)
	assert.Equal(t, "Ada", c.FirstName)
	assert.Equal(t, "555-1111", *c.Phone)
	assert.Nil(t, c.Company)
}

func TestContactPatchEncodingOmitsAbsentFields(t *testing.T) {
	name := "Grace"
	data, err := json.Marshal(ContactPatch{FirstName: &name, Company: Null()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"first_name":"Grace","company":null}`, string(data))
}

func TestPreferenceInputResolve(t *testing.T) {
	dark := ThemeDark
	settings := PreferenceInput{Theme: &dark}.Resolve()
	assert.Equal(t, PreferenceSettings{Theme: ThemeDark, DefaultSort: "last_name:asc", RowsPerPage: 10}, settings)

	assert.Equal(t, DefaultPreferenceSettings(), PreferenceInput{}.Resolve())

	round := PreferenceSettings{Theme: ThemeDark, DefaultSort: "email:desc", RowsPerPage: 25}
	assert.Equal(t, round, round.Input().Resolve())
}

func TestPreferenceJSONIsFlat(t *testing.T) {
	p := Preference{UserID: "demo", PreferenceSettings: DefaultPreferenceSettings()}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"demo","theme":"light","defaultSort":"last_name:asc","rowsPerPage":10}`, string(data))
}
