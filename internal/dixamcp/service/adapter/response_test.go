package adapter

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNormalizePrettyPrints(t *testing.T) {
	res, err := Normalize(response(http.StatusOK, `{"data":[{"id":"a1","n":12345678901234567890}]}`), "")
	require.NoError(t, err)
	assert.Equal(t, "text", res.Kind)
	assert.JSONEq(t, `{"data":[{"id":"a1","n":12345678901234567890}]}`, res.Text)
	assert.True(t, strings.HasPrefix(res.Text, "{\n  \"data\": ["), res.Text)
	assert.Contains(t, res.Text, "12345678901234567890")
}

func TestNormalizeNoContent(t *testing.T) {
	res, err := Normalize(response(http.StatusNoContent, ""), "Tag added successfully")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Tag added successfully"}`, res.Text)
}

func TestNormalizeRemoteError(t *testing.T) {
	_, err := Normalize(response(http.StatusNotFound, `{"error":"not found"}`), "")
	require.Error(t, err)

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusNotFound, re.StatusCode)
	assert.Equal(t, "Not Found", re.Status)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), `{"error":"not found"}`)
	assert.Equal(t, CategoryRemote, Category(err))
}

func TestNormalizeDecodeError(t *testing.T) {
	_, err := Normalize(response(http.StatusOK, "<html>oops</html>"), "")

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "<html>oops</html>", de.Body)
	assert.Equal(t, CategoryDecoding, Category(err))
}
