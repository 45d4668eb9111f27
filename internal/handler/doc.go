// Package handler implements the HTTP surface of the runtime.
//
// It exposes route wiring, the runtime's own endpoints under /_slipway/
// (health and version), and the application mount at the root. Cross-cutting
// concerns such as request identification, access logging, and panic
// recovery are handled in this package before requests reach the hosted
// application.
package handler
