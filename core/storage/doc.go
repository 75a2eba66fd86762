// Package storage provides the S3/Minio client used for voice preview clips.
//
// The Client interface abstracts the subset of minio operations the previews
// feature needs, so tests can substitute the testify mock in storage/mocks.
package storage
