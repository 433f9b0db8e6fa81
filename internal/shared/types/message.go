package types

// WSMessage represents a WebSocket message from a page session.
//
// Types sent by clients: installable, appinstalled, install,
// install_result, dismiss, ping.
type WSMessage struct {
	Type      string   `json:"type"`
	Platforms []string `json:"platforms,omitempty"`
	Outcome   string   `json:"outcome,omitempty"`
	Platform  string   `json:"platform,omitempty"`
	Message   string   `json:"message,omitempty"`
}
