package genius

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukalov/lyrical/internal/transport"
)

const searchPayload = `{
  "meta": {"status": 200},
  "response": {
    "hits": [
      {
        "type": "song",
        "result": {
          "artist_names": "Johnny Cash",
          "title_with_featured": "Hurt",
          "url": "https://genius.com/Johnny-cash-hurt-lyrics"
        }
      },
      {
        "type": "song",
        "result": {
          "artist_names": null,
          "title_with_featured": "Hurt (Live)",
          "url": "https://genius.com/Unknown-hurt-live-lyrics"
        }
      }
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(transport.NewClient(transport.AllowInsecure()), "token").WithBaseURL(srv.URL)
}

func TestClient_Query(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "johnny cash hurt", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Write([]byte(searchPayload))
	})

	entries, err := client.Query(context.Background(), "johnny cash hurt")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, song("Johnny Cash", "Hurt", "https://genius.com/Johnny-cash-hurt-lyrics"), entries[0])
	require.Nil(t, entries[1].ArtistNames)
	require.Equal(t, "Hurt (Live)", *entries[1].TitleWithFeatured)
}

func TestClient_QueryMissingResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"hits":[{"type":"song"}]}}`))
	})

	_, err := client.Query(context.Background(), "x")

	require.ErrorContains(t, err, "has no result")
}

func TestClient_QueryUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Query(context.Background(), "x")

	var statusErr *transport.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestClient_WithSearcher(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPayload))
	})

	url, err := NewSearcher(client).SearchLyrics(context.Background(), "Johnny Cash", "HURT")

	require.NoError(t, err)
	require.Equal(t, "https://genius.com/Johnny-cash-hurt-lyrics", url)
}
