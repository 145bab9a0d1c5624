package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/techzen-dev/techzen/internal/imghost"
)

func newUploadServer(t *testing.T, upstream *httptest.Server) *Server {
	t.Helper()
	return New(testConfig(), &mockStore{}, imghost.NewClient(upstream.URL), zerolog.Nop())
}

func TestUploadRelaysUpstreamResponse(t *testing.T) {
	var gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"success":true,"data":{"display_url":"https://i.ibb.co/x.png"}}`))
	}))
	defer upstream.Close()

	s := newUploadServer(t, upstream)

	w := perform(s, jsonRequest(http.MethodPost, "/upload", `{"image":"base64-bytes"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"display_url":"https://i.ibb.co/x.png"}}`, w.Body.String())
	assert.Equal(t, `{"image":"base64-bytes"}`, gotBody)
}

func TestUploadRelaysUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"API key is missing"}}`))
	}))
	defer upstream.Close()

	s := newUploadServer(t, upstream)

	w := perform(s, jsonRequest(http.MethodPost, "/upload", `{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "API key is missing")
}

func TestUploadTransportErrorIsGeneric500(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // unreachable endpoint

	s := newUploadServer(t, upstream)

	w := perform(s, jsonRequest(http.MethodPost, "/upload", `{}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Error uploading image"}`, w.Body.String())
}
