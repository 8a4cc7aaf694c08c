package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	fallback := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	date, err := ParseDate("", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseDate("2024-12-31", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("31/12/2024", fallback)
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.35, RoundWithTwoDecimalPlace(10.345))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.3333))
	assert.Equal(t, 1.1, RoundWithTwoDecimalPlace(1.1))
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)

	out, err = PrettyJson([]byte(`{"b":2}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 2\n}", out)

	_, err = PrettyJson([]byte(`{`))
	assert.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))
	assert.Error(t, DecodeJSON(req, &body))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, "x", body.Name)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
}
