package export

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSink_Write(t *testing.T) {
	var (
		method, path, ctype string
		body                []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path, ctype = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	sink, err := NewHTTPSink(srv.URL+"/uploads/", nil)
	require.NoError(t, err)

	loc, err := sink.Write(context.Background(), "faculty_7_export.json", []byte(`{"ok":true}`))
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/uploads/faculty_7_export.json", loc)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/uploads/faculty_7_export.json", path)
	assert.Equal(t, "application/json", ctype)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestHTTPSink_RejectedUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	sink, err := NewHTTPSink(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = sink.Write(context.Background(), "x.json", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestHTTPSink_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("request must not be sent")
	}))
	t.Cleanup(srv.Close)

	sink, err := NewHTTPSink(srv.URL, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sink.Write(ctx, "x.json", []byte(`{}`))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewHTTPSink_InvalidURL(t *testing.T) {
	for _, u := range []string{"", "ftp://host/x", "not a url", "http://"} {
		_, err := NewHTTPSink(u, nil)
		assert.Error(t, err, u)
	}
}
