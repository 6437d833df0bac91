package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
)

func TestLooseInt_Unmarshal(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    *int64
		present bool
	}{
		{"number", `{"n":9876543210}`, ptr(9876543210), true},
		{"numeric string", `{"n":"9876543210"}`, ptr(9876543210), true},
		{"padded string", `{"n":" 560001 "}`, ptr(560001), true},
		{"whole float", `{"n":560001.0}`, ptr(560001), true},
		{"empty string", `{"n":""}`, nil, true},
		{"null", `{"n":null}`, nil, true},
		{"missing", `{}`, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				N entity.LooseInt `json:"n"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.body), &v))
			assert.Equal(t, tc.want, v.N.Ptr())
			assert.Equal(t, tc.present, v.N.Present)
		})
	}
}

func TestLooseInt_RejectsNonNumbers(t *testing.T) {
	for _, body := range []string{`{"n":"call me"}`, `{"n":"12.5"}`, `{"n":true}`, `{"n":[1]}`} {
		var v struct {
			N entity.LooseInt `json:"n"`
		}
		err := json.Unmarshal([]byte(body), &v)
		var ute *json.UnmarshalTypeError
		require.ErrorAs(t, err, &ute, body)
		assert.Equal(t, "n", ute.Field, body)
	}
}

func TestLooseInt_Marshal(t *testing.T) {
	b, err := json.Marshal(entity.NewLooseInt(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(b))

	b, err = json.Marshal(entity.LooseInt{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func ptr(v int64) *int64 { return &v }
