// Package types provides shared data structures for the site backend.
//
// This package defines the request and message envelopes that cross
// component boundaries, keeping the API and websocket layers decoupled
// from the domain packages.
//
// Core Types:
//   - WSMessage: WebSocket communication envelope
package types
