package voices

import (
	"context"
	"errors"
	"fmt"

	"voice-sync/feature/voices/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the durable ledger consumed by the reconciler. It is injected as
// an interface so tests can run against an in-memory database.
type Store interface {
	// UpsertSyncRecord inserts the record or, if a row already exists for the
	// (credential, voice) pair, overwrites its outcome. Owner id and voice name
	// are refreshed on every attempt regardless of outcome.
	UpsertSyncRecord(ctx context.Context, rec *models.VoiceSync) error
	// FindSyncRecord returns the ledger row for the pair, or nil if absent.
	FindSyncRecord(ctx context.Context, credentialID, voiceID string) (*models.VoiceSync, error)
	// ListActiveCredentials returns all credentials flagged active.
	ListActiveCredentials(ctx context.Context) ([]models.Credential, error)
	// ListFailedSyncs returns every failed ledger row for the voice joined with
	// its credential, excluding rows whose credential is no longer active.
	ListFailedSyncs(ctx context.Context, voiceID string) ([]models.FailedSync, error)
	// ListSyncsByVoice returns all ledger rows for a voice.
	ListSyncsByVoice(ctx context.Context, voiceID string) ([]models.VoiceSync, error)
	// ListSyncsByCredential returns all ledger rows for a credential.
	ListSyncsByCredential(ctx context.Context, credentialID string) ([]models.VoiceSync, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) UpsertSyncRecord(ctx context.Context, rec *models.VoiceSync) error {
	// The conflict target is the unique (credential_id, voice_id) index, so
	// concurrent upserts for the same pair collapse into one row (later write
	// wins). MySQL maps this to ON DUPLICATE KEY UPDATE.
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "credential_id"}, {Name: "voice_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"owner_id", "voice_name", "status", "error_message", "updated_at",
		}),
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert sync record: %w", err)
	}
	return nil
}

func (s *gormStore) FindSyncRecord(ctx context.Context, credentialID, voiceID string) (*models.VoiceSync, error) {
	var rec models.VoiceSync
	err := s.db.WithContext(ctx).
		Where("credential_id = ? AND voice_id = ?", credentialID, voiceID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up sync record: %w", err)
	}
	return &rec, nil
}

func (s *gormStore) ListActiveCredentials(ctx context.Context) ([]models.Credential, error) {
	var creds []models.Credential
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id").
		Find(&creds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active credentials: %w", err)
	}
	return creds, nil
}

// failedSyncRow is the flat scan target for the ledger/credentials join.
type failedSyncRow struct {
	RecordID     uint
	CredentialID string
	VoiceID      string
	OwnerID      string
	VoiceName    *string
	ErrorMessage *string
	Label        string
	APIKey       string
}

func (s *gormStore) ListFailedSyncs(ctx context.Context, voiceID string) ([]models.FailedSync, error) {
	var rows []failedSyncRow
	err := s.db.WithContext(ctx).
		Table("voice_syncs").
		Select(`voice_syncs.id AS record_id,
			voice_syncs.credential_id,
			voice_syncs.voice_id,
			voice_syncs.owner_id,
			voice_syncs.voice_name,
			voice_syncs.error_message,
			credentials.label,
			credentials.api_key`).
		Joins("JOIN credentials ON credentials.id = voice_syncs.credential_id").
		Where("voice_syncs.voice_id = ? AND voice_syncs.status = ? AND credentials.active = ?",
			voiceID, models.StatusFailed, true).
		Order("voice_syncs.credential_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list failed syncs: %w", err)
	}

	failed := make([]models.FailedSync, 0, len(rows))
	for _, row := range rows {
		failed = append(failed, models.FailedSync{
			Record: models.VoiceSync{
				ID:           row.RecordID,
				CredentialID: row.CredentialID,
				VoiceID:      row.VoiceID,
				OwnerID:      row.OwnerID,
				VoiceName:    row.VoiceName,
				Status:       models.StatusFailed,
				ErrorMessage: row.ErrorMessage,
			},
			Credential: models.Credential{
				ID:     row.CredentialID,
				Label:  row.Label,
				APIKey: row.APIKey,
				Active: true,
			},
		})
	}
	return failed, nil
}

func (s *gormStore) ListSyncsByVoice(ctx context.Context, voiceID string) ([]models.VoiceSync, error) {
	var recs []models.VoiceSync
	err := s.db.WithContext(ctx).
		Where("voice_id = ?", voiceID).
		Order("credential_id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list syncs for voice: %w", err)
	}
	return recs, nil
}

func (s *gormStore) ListSyncsByCredential(ctx context.Context, credentialID string) ([]models.VoiceSync, error) {
	var recs []models.VoiceSync
	err := s.db.WithContext(ctx).
		Where("credential_id = ?", credentialID).
		Order("voice_id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list syncs for credential: %w", err)
	}
	return recs, nil
}
