// Package github fetches public organization data from the GitHub REST API.
//
// The client issues exactly two unauthenticated reads: the organization
// profile and the first page of its public repositories (capped at the
// configured page size, never paginated further). Retries are disabled:
// the repository browser contract treats every failure as its error
// state. Repository descriptions are sanitized before they enter the
// view model.
package github
