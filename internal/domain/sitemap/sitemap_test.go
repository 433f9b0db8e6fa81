package sitemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLContainsAllPages(t *testing.T) {
	b := NewBuilder("https://example.test/", nil)

	out, err := b.XML()
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	for _, p := range DefaultPages() {
		assert.Contains(t, body, "<loc>https://example.test"+p.Path+"</loc>")
	}
	assert.Contains(t, body, "<priority>1.0</priority>")
	assert.Contains(t, body, "<changefreq>weekly</changefreq>")
}

func TestNewBuilderTrimsTrailingSlash(t *testing.T) {
	b := NewBuilder("https://example.test///", []Page{{Path: "/about"}})

	out, err := b.XML()
	require.NoError(t, err)

	assert.Contains(t, string(out), "<loc>https://example.test/about</loc>")
}

func TestLoadPages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pages.yaml")
	content := `
- path: /
  changefreq: weekly
  priority: 1.0
- path: /careers
  changefreq: monthly
  priority: 0.4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pages, err := LoadPages(path)
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, "/careers", pages[1].Path)
	assert.Equal(t, "monthly", pages[1].ChangeFreq)
	assert.InDelta(t, 0.4, pages[1].Priority, 1e-9)
}

func TestLoadPagesErrors(t *testing.T) {
	_, err := LoadPages("/nonexistent/pages.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o644))

	_, err = LoadPages(empty)
	assert.Error(t, err)
}
