package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/lumenworks", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"login": "lumenworks",
			"name": "Lumenworks",
			"description": "<b>Apps</b> for everyone",
			"avatar_url": "https://example.test/avatar.png",
			"html_url": "https://github.com/lumenworks",
			"blog": "https://lumenworks.app",
			"public_repos": 2,
			"followers": 41
		}`))
	})
	mux.HandleFunc("/orgs/lumenworks/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		assert.Equal(t, "public", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "engine", "description": "Core <script>x</script>engine", "html_url": "https://github.com/lumenworks/engine", "language": "Go", "stargazers_count": 340, "forks_count": 20, "topics": ["go"], "updated_at": "2024-06-01T10:00:00Z"},
			{"name": "company-website", "description": null, "html_url": "https://github.com/lumenworks/company-website", "stargazers_count": 2, "forks_count": 0, "updated_at": "2024-05-01T10:00:00Z"}
		]`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	client := NewClient(Config{
		BaseURL:  ts.URL,
		Org:      "lumenworks",
		PageSize: 50,
		Timeout:  2 * time.Second,
	})
	return ts, client
}

func TestOrganization(t *testing.T) {
	_, client := newTestServer(t)

	org, err := client.Organization(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "lumenworks", org.Login)
	assert.Equal(t, "Lumenworks", org.Name)
	assert.Equal(t, 2, org.PublicRepos)
	assert.Equal(t, 41, org.Followers)
	assert.NotContains(t, org.Description, "<b>", "markup must be stripped")
	assert.Contains(t, org.Description, "Apps")
}

func TestRepositories(t *testing.T) {
	_, client := newTestServer(t)

	list, err := client.Repositories(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "engine", list[0].Name)
	assert.Equal(t, 340, list[0].Stars)
	assert.Equal(t, "Go", list[0].Language)
	assert.Equal(t, []string{"go"}, list[0].Topics)
	assert.NotContains(t, list[0].Description, "<script>")
}

func TestErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	t.Cleanup(ts.Close)

	client := NewClient(Config{BaseURL: ts.URL, Org: "lumenworks"})

	_, err := client.Organization(context.Background())
	assert.Error(t, err)

	_, err = client.Repositories(context.Background())
	assert.Error(t, err)
}

func TestNoRetries(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)

	client := NewClient(Config{BaseURL: ts.URL, Org: "lumenworks"})

	_, err := client.Organization(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "the browser contract forbids retries")
}

func TestConfigDefaults(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://api.github.com", Org: "lumenworks", PageSize: -1})

	assert.Equal(t, 50, client.pageSize)
}
