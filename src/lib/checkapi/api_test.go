package checkapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/pnathan/wordcheck/src/lib/checkapi"
)

func TestPostCheck(t *testing.T) {
	var received checkapi.CheckRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/check", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		resp := checkapi.CheckResponse{Incorrect: []string{"ct", "ct"}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	got, err := checkapi.PostCheck([]string{"cat", "ct", "dog", "ct"}, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "ct", "dog", "ct"}, received.Words)
	assert.Equal(t, []string{"ct", "ct"}, got.Incorrect)
}

func TestPostCheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := checkapi.PostCheck([]string{"cat"}, srv.URL)
	assert.Error(t, err)
}

func TestGetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/dictionary", r.URL.Path)
		status := checkapi.DictionaryStatus{Words: 42, Fingerprint: "abcd"}
		require.NoError(t, json.NewEncoder(w).Encode(status))
	}))
	defer srv.Close()

	got, err := checkapi.GetStatus(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Words)
	assert.Equal(t, "abcd", got.Fingerprint)
}

func TestGetStatusUnreachable(t *testing.T) {
	_, err := checkapi.GetStatus("http://127.0.0.1:1")
	assert.Error(t, err)
}
