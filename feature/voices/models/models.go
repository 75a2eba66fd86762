package models

import "time"

// SyncStatus is the persisted outcome of a sync attempt.
type SyncStatus string

const (
	// StatusSynced means the voice exists in the credential's account.
	StatusSynced SyncStatus = "synced"
	// StatusFailed means the last attempt for the pair did not succeed.
	StatusFailed SyncStatus = "failed"
)

// Credential is a remote provider account the service syncs voices into.
// Credentials are managed by an external subsystem; this core only reads them.
type Credential struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Label     string    `gorm:"column:label" json:"label"`
	APIKey    string    `gorm:"column:api_key" json:"-"`
	Active    bool      `gorm:"column:active" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Credential) TableName() string {
	return "credentials"
}

// VoiceSync is the ledger row recording the last sync outcome for one
// (credential, voice) pair. The composite unique index guarantees at most one
// row per pair; repeated attempts update the row in place.
type VoiceSync struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CredentialID string     `gorm:"column:credential_id;uniqueIndex:idx_credential_voice" json:"credential_id"`
	VoiceID      string     `gorm:"column:voice_id;uniqueIndex:idx_credential_voice" json:"voice_id"`
	OwnerID      string     `gorm:"column:owner_id" json:"owner_id"`
	VoiceName    *string    `gorm:"column:voice_name" json:"voice_name,omitempty"`
	Status       SyncStatus `gorm:"column:status" json:"status"`
	ErrorMessage *string    `gorm:"column:error_message" json:"error_message,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (VoiceSync) TableName() string {
	return "voice_syncs"
}

// FailedSync is a failed ledger row joined with its still-active credential.
// Rows whose credential has been deactivated are excluded at query time, so a
// FailedSync is always a valid retry candidate.
type FailedSync struct {
	Record     VoiceSync
	Credential Credential
}
