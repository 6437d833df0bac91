package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aspyra/jobboard-api/pkg/validation"
)

type sample struct {
	Name   string   `json:"JobsName" validate:"required"`
	Email  string   `json:"Email" validate:"omitempty,email"`
	Salary *float64 `json:"Salary" validate:"required"`
	Role   string   `json:"role" validate:"omitempty,oneof=admin recruiter jobseeker"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	got := validation.Struct(sample{Email: "nope", Role: "boss"})

	assert.Equal(t, map[string]string{
		"JobsName": "is required",
		"Email":    "must be a valid email",
		"Salary":   "is required",
		"role":     "must be one of: admin, recruiter, jobseeker",
	}, got)
}

func TestStruct_Valid(t *testing.T) {
	salary := 10.0
	assert.Nil(t, validation.Struct(sample{Name: "Engineer", Salary: &salary}))
}

func TestToDetails_UnmarshalTypeError(t *testing.T) {
	var s sample
	err := json.Unmarshal([]byte(`{"Salary":"lots"}`), &s)

	assert.Equal(t, map[string]string{"Salary": "must be a number"}, validation.ToDetails(err))
}

func TestToDetails_SyntaxError(t *testing.T) {
	var s sample
	err := json.Unmarshal([]byte(`{`), &s)

	assert.Equal(t, map[string]string{"payload": "invalid json"}, validation.ToDetails(err))
}
