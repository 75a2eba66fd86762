// Package provider wraps the remote voice provider's HTTP API.
//
// The reconciler only needs one operation: adding an existing shared voice to
// another account. The provider is treated as opaque; only success or failure
// (with status code and body) is modeled. Authentication is a per-account API
// key sent in the xi-api-key header.
package provider
