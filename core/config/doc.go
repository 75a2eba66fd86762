// Package config loads application configuration from environment variables
// and an optional .env file.
//
// Defaults are declared as struct tags on each section's Config struct and
// bound into viper by reflection, so SERVER_PORT, DATABASE_HOST,
// PROVIDER_SYNC_DELAY_MS and friends all resolve without any explicit
// per-key wiring.
package config
