package reel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!doctype html>
<html><head><title>Nyhet</title></head>
<body>
  <nav><a href="/">Forsiden</a></nav>
  <article>
    <h1>Overskrift</h1>
    <p>  Første avsnitt.  </p>
    <p></p>
    <p>Andre <strong>avsnitt</strong> med uthevet tekst.</p>
    <div>Ikke et avsnitt</div>
    <p>Tredje avsnitt.</p>
  </article>
</body></html>`

func TestFetchArticle_ExtractsParagraphs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	text, err := FetchArticle(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Første avsnitt.\nAndre avsnitt med uthevet tekst.\nTredje avsnitt.", text)
}

func TestFetchArticle_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FetchArticle(context.Background(), nil, srv.URL)
	require.Error(t, err)
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, srv.URL, fe.URL)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchArticle_BadURL(t *testing.T) {
	_, err := FetchArticle(context.Background(), nil, "not a url\x7f")
	var fe *FetchError
	assert.True(t, errors.As(err, &fe))
}
