package repos

import "time"

// State is the view model state. The three states are mutually exclusive.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

// Organization is the public profile of the source organization.
type Organization struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	HTMLURL     string `json:"html_url"`
	Blog        string `json:"blog,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// Repository is one public repository in the derived view.
type Repository struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Topics      []string  `json:"topics,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// View is the render contract of the repository browser.
type View struct {
	State        State         `json:"state"`
	Error        string        `json:"error,omitempty"`
	Organization *Organization `json:"organization,omitempty"`
	Repositories []Repository  `json:"repositories,omitempty"`
}
