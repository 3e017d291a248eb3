// Package metrics exposes the process Prometheus registry over HTTP.
//
// The artwork client registers its collectors with promauto; this package only
// serves them. The endpoint is optional and off unless an address is configured.
package metrics
