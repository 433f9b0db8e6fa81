// Package install owns the add-to-home-screen banner lifecycle.
//
// A Controller is created per page session. The hosting surface delivers
// two signals: an installability signal carrying a one-shot PromptHandle,
// and an installed confirmation. The controller derives the banner render
// state from three variables (handle, bannerVisible, installed) and
// persists user dismissal through a Store so the banner stays hidden
// across visits.
//
// State machine:
//
//	Uninitialized → Checking → {Installed (terminal) | Idle}
//	Idle → PromptCaptured → {BannerShown | BannerSuppressed}
//	BannerShown → Installing → Installed (terminal)
//
// The installed confirmation always wins and is terminal: once observed,
// later installability signals are ignored.
package install
