// Package ws provides the realtime channel between a page session and
// the install-prompt controller.
//
// Each connection owns one install.Controller. The page forwards the
// platform's installability and installed signals as messages; the
// server pushes the banner render state back after every transition.
// The deferred prompt round-trips through the client: an install request
// triggers a prompt push, and the awaited install_result resolves the
// one-shot handle. Closing the connection releases the subscription and
// any pending prompt.
//
// Message Types (Client → Server):
//   - installable: installability signal with supported platforms
//   - appinstalled: installed confirmation
//   - install: user clicked the banner's install action
//   - install_result: user's choice from the native prompt
//   - dismiss: user dismissed the banner
//   - ping: keep-alive ping
//
// Message Types (Server → Client):
//   - system: connection established, carries client/session IDs
//   - banner: current banner render state
//   - prompt: show the native install UI now
//   - pong: keep-alive reply
//   - error: error occurred
package ws
