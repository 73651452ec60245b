package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomReturnsAPIQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/random", r.URL.Path)
		assert.Equal(t, "wisdom", r.URL.Query().Get("tags"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"Know thyself.","author":"Socrates"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	q := c.Random(context.Background(), "wisdom")

	assert.Equal(t, "Know thyself.", q.Content)
	assert.Equal(t, "Socrates", q.Author)
}

func TestRandomParsesArrayResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"content":"First.","author":"A"},{"content":"Second.","author":"B"}]`))
	}))
	defer srv.Close()

	q := NewClient(Options{BaseURL: srv.URL}).Random(context.Background())
	assert.Equal(t, "First.", q.Content)
}

func TestRandomFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	q := NewClient(Options{BaseURL: srv.URL}).Random(context.Background())
	assert.NotEmpty(t, q.Content, "fallback list must always produce a quote")
}

func TestRandomFallsBackWithoutConfiguration(t *testing.T) {
	q := NewClient(Options{}).Random(context.Background())
	assert.NotEmpty(t, q.Content)
	assert.NotEmpty(t, q.Author)
}
