package facebook

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*PageService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewPageService("12345", "token-de-teste")
	svc.BaseURL = srv.URL
	svc.Client = srv.Client()
	return svc, srv
}

func TestPostListingWithImageUsesPhotos(t *testing.T) {
	var gotPath, gotURL, gotMessage string
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotURL = r.PostFormValue("url")
		gotMessage = r.PostFormValue("message")
		w.Write([]byte(`{"id":"111","post_id":"12345_111"}`))
	})

	id, err := svc.PostListing("Novo imóvel disponível", "https://cdn.exemplo.com/foto.jpg")
	require.NoError(t, err)

	assert.Equal(t, "12345_111", id, "post_id tem precedência sobre id")
	assert.Equal(t, "/12345/photos", gotPath)
	assert.Equal(t, "https://cdn.exemplo.com/foto.jpg", gotURL)
	assert.Equal(t, "Novo imóvel disponível", gotMessage)
}

func TestPostListingWithoutImageUsesFeed(t *testing.T) {
	var gotPath string
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"222"}`))
	})

	id, err := svc.PostListing("Sem foto", "")
	require.NoError(t, err)
	assert.Equal(t, "222", id)
	assert.Equal(t, "/12345/feed", gotPath)
}

func TestPostListingGraphError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`))
	})

	_, err := svc.PostListing("Qualquer", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "190")
	assert.Contains(t, err.Error(), "Invalid OAuth access token.")
}

func TestPostListingUnexpectedBody(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>erro</html>"))
	})

	_, err := svc.PostListing("Qualquer", "")
	assert.Error(t, err)
}
