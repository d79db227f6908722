package validate

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name   string   `json:"name" binding:"required,max=5"`
	Price  *float64 `json:"price" binding:"required"`
	Stock  *int     `json:"stock" binding:"required"`
	Status string   `json:"status" binding:"omitempty,oneof=pending paid"`
	Link   string   `json:"link" binding:"omitempty,url"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	Setup()
	var form sampleForm
	return binding.JSON.BindBody([]byte(body), &form)
}

func TestTranslateRequired(t *testing.T) {
	err := bindSample(t, `{"status":"paid"}`)
	require.Error(t, err)

	errs, ok := Translate(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The name field is required."}, errs["name"])
	assert.Equal(t, []string{"The price field is required."}, errs["price"])
	assert.Equal(t, []string{"The stock field is required."}, errs["stock"])
}

func TestTranslateZeroNumbersPassRequired(t *testing.T) {
	// 指针字段区分 "缺失" 与 "显式 0"
	err := bindSample(t, `{"name":"ok","price":0,"stock":0}`)
	assert.NoError(t, err)
}

func TestTranslateMaxAndOneof(t *testing.T) {
	err := bindSample(t, `{"name":"toolongname","price":1,"stock":1,"status":"unknown"}`)
	require.Error(t, err)

	errs, ok := Translate(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The name field must not be greater than 5 characters."}, errs["name"])
	assert.Equal(t, []string{"The selected status is invalid."}, errs["status"])
}

func TestTranslateURL(t *testing.T) {
	err := bindSample(t, `{"name":"ok","price":1,"stock":1,"link":"notaurl"}`)
	require.Error(t, err)

	errs, ok := Translate(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The link field must be a valid URL."}, errs["link"])
}

func TestTranslateTypeMismatch(t *testing.T) {
	for body, want := range map[string]map[string]string{
		`{"name":123,"price":1,"stock":1}`:    {"name": "The name field must be a string."},
		`{"name":"ok","price":"x","stock":1}`: {"price": "The price field must be a number."},
		`{"name":"ok","price":1,"stock":"x"}`: {"stock": "The stock field must be an integer."},
		`{"name":"ok","price":1,"stock":1.5}`: {"stock": "The stock field must be an integer."},
	} {
		err := bindSample(t, body)
		require.Error(t, err, body)

		errs, ok := Translate(err)
		require.True(t, ok, body)
		for field, msg := range want {
			assert.Equal(t, []string{msg}, errs[field], body)
		}
	}
}

func TestTranslateMalformedJSON(t *testing.T) {
	err := bindSample(t, `{"name":`)
	require.Error(t, err)

	_, ok := Translate(err)
	assert.False(t, ok)
}

func TestSelected(t *testing.T) {
	errs := Selected("user_id")
	assert.Equal(t, []string{"The selected user_id is invalid."}, errs["user_id"])
	assert.EqualError(t, errs, "validation failed: user_id")
}
