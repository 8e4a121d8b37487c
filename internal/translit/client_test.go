package translit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "ml-t-i0-und", srv.Client(), zerolog.Nop())
}

func TestTransliterateSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "namaste", r.URL.Query().Get("text"))
		assert.Equal(t, "ml-t-i0-und", r.URL.Query().Get("itc"))
		w.Write([]byte(`["SUCCESS",[["namaste",["നമസ്തേ","നമസ്‌തേ"]]]]`))
	})

	assert.Equal(t, "നമസ്തേ", c.Transliterate(context.Background(), "namaste"))
}

func TestTransliterateBlankInputSkipsRequest(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	assert.Equal(t, "", c.Transliterate(context.Background(), ""))
	assert.Equal(t, "   ", c.Transliterate(context.Background(), "   "))
	assert.False(t, called)
}

func TestTransliterateFallsBackToInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"service failure status", `["FAILED_TO_PARSE_REQUEST_BODY"]`, http.StatusOK},
		{"empty entries", `["SUCCESS",[]]`, http.StatusOK},
		{"no candidates", `["SUCCESS",[["namaste",[]]]]`, http.StatusOK},
		{"not json", `<html>gateway error</html>`, http.StatusOK},
		{"http error", `[]`, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			})
			assert.Equal(t, "namaste", c.Transliterate(context.Background(), "namaste"))
		})
	}
}

func TestTransliterateUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, "ml-t-i0-und", nil, zerolog.Nop())
	assert.Equal(t, "namaste", c.Transliterate(context.Background(), "namaste"))
}
