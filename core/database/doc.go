// Package database provides the GORM connection used by the sync ledger.
//
// It supports two drivers:
//   - mysql: the production backend, with pooled connections and DSN-level timeouts
//   - sqlite: used by tests (":memory:") and small single-node deployments
//
// The connection is verified with a ping before being handed to callers, so a
// returned *gorm.DB is known to be reachable at startup.
package database
