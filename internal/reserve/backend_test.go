package reserve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// newTestBackend serves a chi router standing in for the reservation API and
// returns a client pointed at it. The server is torn down with the test.
func newTestBackend(t *testing.T, register func(r chi.Router)) *Client {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", register)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL + "/api", Tokens: StaticToken("test-token")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}
}
