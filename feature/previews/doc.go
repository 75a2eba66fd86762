// Package previews stores and serves short audio preview clips for voices,
// backed by S3/Minio object storage. Previews are informational only and have
// no interaction with the sync ledger.
package previews
