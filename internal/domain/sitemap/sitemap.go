// Package sitemap renders the site's sitemap descriptor.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Page describes one entry of the page set.
type Page struct {
	Path       string  `yaml:"path" json:"path"`
	ChangeFreq string  `yaml:"changefreq" json:"changefreq,omitempty"`
	Priority   float64 `yaml:"priority" json:"priority,omitempty"`
}

// DefaultPages returns the built-in page set.
func DefaultPages() []Page {
	return []Page{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/apps", ChangeFreq: "weekly", Priority: 0.8},
		{Path: "/opensource", ChangeFreq: "daily", Priority: 0.8},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.5},
		{Path: "/privacy", ChangeFreq: "yearly", Priority: 0.3},
	}
}

// LoadPages reads a page set from a YAML file.
func LoadPages(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages file: %w", err)
	}

	var pages []Page
	if err := yaml.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("failed to parse pages file: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pages file %s is empty", path)
	}
	return pages, nil
}

// Builder renders the page set as sitemap XML for a base URL.
type Builder struct {
	baseURL string
	pages   []Page
}

// NewBuilder creates a builder. A nil or empty page set falls back to
// the built-in literal.
func NewBuilder(baseURL string, pages []Page) *Builder {
	if len(pages) == 0 {
		pages = DefaultPages()
	}
	return &Builder{
		baseURL: strings.TrimRight(baseURL, "/"),
		pages:   pages,
	}
}

// Pages returns the page set backing the sitemap.
func (b *Builder) Pages() []Page {
	return b.pages
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// XML renders the sitemap, including the XML header.
func (b *Builder) XML() ([]byte, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, 0, len(b.pages)),
	}

	for _, p := range b.pages {
		entry := urlEntry{
			Loc:        b.baseURL + p.Path,
			ChangeFreq: p.ChangeFreq,
		}
		if p.Priority > 0 {
			entry.Priority = fmt.Sprintf("%.1f", p.Priority)
		}
		set.URLs = append(set.URLs, entry)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
