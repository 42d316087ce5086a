package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestRouterAddsCORSHeaders(t *testing.T) {
	is := is.New(t)

	r := New("asset-adapter")
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://katana.local")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusNoContent)
	is.True(w.Header().Get("Access-Control-Allow-Origin") != "") // cors middleware should be applied
}
