// Package repos derives the organization repository view model.
//
// A Browser fetches organization metadata and the public repository list
// through a Fetcher, excludes repositories whose name contains a fixed
// substring, sorts the remainder by stargazer count descending, and
// exposes one of three mutually exclusive view states: loading, error,
// ready. The browser performs no retries and keeps no cache.
package repos
