package github

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/microcosm-cc/bluemonday"

	"github.com/lumenworks/website/backend/internal/domain/repos"
	"github.com/lumenworks/website/backend/internal/infrastructure/monitoring"
)

// sanitizer strips any markup from remote descriptions before they reach
// the view model.
var sanitizer = bluemonday.StrictPolicy()

// Config defines the GitHub client configuration.
type Config struct {
	BaseURL  string
	Org      string
	PageSize int
	Timeout  time.Duration
}

// Client implements repos.Fetcher against the GitHub REST API.
type Client struct {
	resty    *resty.Client
	org      string
	pageSize int
	metrics  *monitoring.Metrics
}

// NewClient creates a GitHub API client.
func NewClient(cfg Config) *Client {
	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		cfg.PageSize = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	// Shared pooled transport from retryablehttp; retries stay disabled
	// because the repository browser maps any failure to its error state.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	restyClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "lumenworks-site/1.0").
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", "2022-11-28")
	restyClient.SetTransport(retryClient.HTTPClient.Transport)

	return &Client{
		resty:    restyClient,
		org:      cfg.Org,
		pageSize: cfg.PageSize,
	}
}

// WithMetrics adds metrics tracking to the client
func (c *Client) WithMetrics(metrics *monitoring.Metrics) *Client {
	c.metrics = metrics
	return c
}

// Organization fetches the organization profile.
func (c *Client) Organization(ctx context.Context) (*repos.Organization, error) {
	timer := monitoring.NewFetchTimer(c.metrics, "org")

	resp, err := c.resty.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/orgs/%s", c.org))
	if err != nil {
		timer.Stop("error")
		return nil, fmt.Errorf("organization fetch failed: %w", err)
	}
	timer.Stop(resp.Status())
	if resp.IsError() {
		return nil, fmt.Errorf("organization fetch returned %s", resp.Status())
	}

	var payload orgPayload
	if err := sonic.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("organization decode failed: %w", err)
	}

	return &repos.Organization{
		Login:       payload.Login,
		Name:        payload.Name,
		Description: sanitizer.Sanitize(payload.Description),
		AvatarURL:   payload.AvatarURL,
		HTMLURL:     payload.HTMLURL,
		Blog:        payload.Blog,
		PublicRepos: payload.PublicRepos,
		Followers:   payload.Followers,
	}, nil
}

// Repositories fetches the first page of public repositories, capped at
// the configured page size. No further pages are requested.
func (c *Client) Repositories(ctx context.Context) ([]repos.Repository, error) {
	timer := monitoring.NewFetchTimer(c.metrics, "repos")

	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"type":     "public",
			"per_page": fmt.Sprintf("%d", c.pageSize),
			"sort":     "updated",
		}).
		Get(fmt.Sprintf("/orgs/%s/repos", c.org))
	if err != nil {
		timer.Stop("error")
		return nil, fmt.Errorf("repository fetch failed: %w", err)
	}
	timer.Stop(resp.Status())
	if resp.IsError() {
		return nil, fmt.Errorf("repository fetch returned %s", resp.Status())
	}

	var payload []repoPayload
	if err := sonic.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("repository decode failed: %w", err)
	}

	list := make([]repos.Repository, 0, len(payload))
	for _, p := range payload {
		list = append(list, repos.Repository{
			Name:        p.Name,
			Description: sanitizer.Sanitize(p.Description),
			HTMLURL:     p.HTMLURL,
			Homepage:    p.Homepage,
			Language:    p.Language,
			Stars:       p.StargazersCount,
			Forks:       p.ForksCount,
			Topics:      p.Topics,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return list, nil
}
