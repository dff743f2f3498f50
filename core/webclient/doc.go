// Package webclient provides the outbound HTTP client shared by the
// canonical results service client and the race-timing provider scrapers.
//
// It applies strict transport timeouts (connection, TLS handshake, response
// header) so that a slow upstream delays only the calling request. Non-2xx
// responses are surfaced as *StatusError carrying the HTTP status code;
// no retries are performed.
package webclient
