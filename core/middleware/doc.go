// Package middleware groups the HTTP middleware used by the server:
// request correlation (rayid) and API-key authentication (auth).
package middleware
