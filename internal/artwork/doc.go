// Package artwork provides the artwork record model and the HTTP client for the
// Art Institute of Chicago artworks endpoint.
//
// The client requests one page at a time with a fixed page size and a fixed
// field projection. It does not cache, retry, or rate limit: every call is a
// single GET bounded by the caller's context. Failures are classified so that
// callers can tell a superseded or timed-out request apart from a real failure:
//   - ErrTimeout: the load deadline elapsed
//   - ErrSuperseded: a newer navigation cancelled the request
//   - *FetchError: network, status, or decode failure
package artwork
