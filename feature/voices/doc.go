// Package voices implements cross-account voice reconciliation.
//
// A voice created in one provider account must exist, by the same id, in
// every active credential (independently authenticated provider account).
// The package keeps a durable ledger with one row per (credential, voice)
// pair recording the last sync outcome, so partial failures stay visible and
// retriable without repeating work that already succeeded.
//
// # Reconciliation
//
// The Reconciler owns the business rules:
//
//   - stock premade voices are never synced (every account has them already)
//   - a pair whose ledger row is synced is never re-sent to the provider
//   - per-unit failures become ledger rows and aggregate counters, never errors
//   - provider calls within a batch are spaced by a fixed delay
//
// Per ledger row the state machine is absent → failed ⇄ synced, with synced
// terminal: the idempotency check short-circuits before any write once a pair
// is synced.
//
// # Concurrency
//
// Batches are sequential internally. Multiple batches may run concurrently
// against the same ledger; correctness relies on the store's atomic upsert
// against the unique (credential_id, voice_id) index, so the reconciler holds
// no in-process locks.
package voices
