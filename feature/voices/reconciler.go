package voices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-sync/core/provider"
	"voice-sync/feature/voices/models"

	"go.uber.org/zap"
)

// SyncResult is the outcome of one unit of work. A unit never returns an
// error: failures are reported through this value so one bad credential
// cannot abort a batch.
type SyncResult struct {
	// Synced is true when the voice is known to exist in the credential's
	// account, whether this call performed the sync or a previous one did.
	Synced bool
	// Err holds the failure diagnostic when Synced is false.
	Err string
}

// FanOutSummary aggregates a sync across all active credentials.
// Per-credential failures are not surfaced here; they live in the ledger.
type FanOutSummary struct {
	Synced  int `json:"synced"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// RetrySummary aggregates a retry pass over previously failed pairs.
type RetrySummary struct {
	Retried   int `json:"retried"`
	Succeeded int `json:"succeeded"`
}

// Reconciler ensures a voice exists in every active credential's account and
// keeps the ledger in sync with reality. It holds no locks; correctness under
// concurrent batches relies on the store's atomic unique-key upsert.
type Reconciler struct {
	store    Store
	provider provider.Client
	logger   *zap.Logger
	delay    time.Duration
}

// NewReconciler creates a reconciler. delay is the pause between consecutive
// provider calls within one batch; zero disables pacing (tests).
func NewReconciler(store Store, providerClient provider.Client, logger *zap.Logger, delay time.Duration) *Reconciler {
	return &Reconciler{
		store:    store,
		provider: providerClient,
		logger:   logger,
		delay:    delay,
	}
}

// IsAlreadySynced reports whether the pair has a ledger row with status
// synced. A failed row is not synced: callers fall through to retry logic.
func (r *Reconciler) IsAlreadySynced(ctx context.Context, credentialID, voiceID string) (bool, error) {
	rec, err := r.store.FindSyncRecord(ctx, credentialID, voiceID)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.Status == models.StatusSynced, nil
}

// SyncOne propagates one voice to one credential.
//
// Already-synced pairs short-circuit without a provider call or a store
// write. Otherwise the provider is called and exactly one upsert records the
// outcome. Every failure, including store and transport errors, is folded
// into the result value.
func (r *Reconciler) SyncOne(ctx context.Context, voiceID, ownerID, name string, cred models.Credential) SyncResult {
	synced, err := r.IsAlreadySynced(ctx, cred.ID, voiceID)
	if err != nil {
		r.logger.Error("Ledger lookup failed",
			zap.String("credential_id", cred.ID),
			zap.String("voice_id", voiceID),
			zap.Error(err))
		return SyncResult{Err: err.Error()}
	}
	if synced {
		return SyncResult{Synced: true}
	}

	rec := &models.VoiceSync{
		CredentialID: cred.ID,
		VoiceID:      voiceID,
		OwnerID:      ownerID,
	}
	if name != "" {
		rec.VoiceName = &name
	}

	if err := r.provider.AddSharedVoice(ctx, cred.APIKey, ownerID, voiceID, name); err != nil {
		msg := errorMessage(err)
		rec.Status = models.StatusFailed
		rec.ErrorMessage = &msg

		if upsertErr := r.store.UpsertSyncRecord(ctx, rec); upsertErr != nil {
			r.logger.Error("Failed to record sync failure",
				zap.String("credential_id", cred.ID),
				zap.String("voice_id", voiceID),
				zap.Error(upsertErr))
		}

		r.logger.Warn("Voice sync failed",
			zap.String("credential_id", cred.ID),
			zap.String("voice_id", voiceID),
			zap.String("reason", msg))
		return SyncResult{Err: msg}
	}

	rec.Status = models.StatusSynced
	rec.ErrorMessage = nil
	if err := r.store.UpsertSyncRecord(ctx, rec); err != nil {
		// The remote side succeeded but the ledger write did not. Report
		// failure so a retry re-checks; the provider call is idempotent on
		// its side for an already-added voice.
		r.logger.Error("Failed to record sync success",
			zap.String("credential_id", cred.ID),
			zap.String("voice_id", voiceID),
			zap.Error(err))
		return SyncResult{Err: err.Error()}
	}

	r.logger.Info("Voice synced",
		zap.String("credential_id", cred.ID),
		zap.String("voice_id", voiceID))
	return SyncResult{Synced: true}
}

// SyncToAllActive propagates a voice to every active credential, sequentially
// with a fixed pause between provider calls. Default stock voices are skipped
// outright. Only ledger access errors are returned; per-credential outcomes
// are aggregated into the summary.
func (r *Reconciler) SyncToAllActive(ctx context.Context, voiceID, ownerID, name string) (FanOutSummary, error) {
	if IsDefaultVoice(voiceID) {
		r.logger.Debug("Skipping default voice", zap.String("voice_id", voiceID))
		return FanOutSummary{Skipped: 1}, nil
	}

	creds, err := r.store.ListActiveCredentials(ctx)
	if err != nil {
		return FanOutSummary{}, err
	}
	if len(creds) == 0 {
		return FanOutSummary{}, nil
	}

	var summary FanOutSummary
	for i, cred := range creds {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("Fan-out canceled mid-batch",
				zap.String("voice_id", voiceID),
				zap.Int("remaining", len(creds)-i))
			return summary, err
		}

		res := r.SyncOne(ctx, voiceID, ownerID, name, cred)
		if res.Synced {
			summary.Synced++
		} else {
			summary.Failed++
		}

		if i < len(creds)-1 {
			r.pause(ctx)
		}
	}

	r.logger.Info("Voice fan-out completed",
		zap.String("voice_id", voiceID),
		zap.Int("synced", summary.Synced),
		zap.Int("failed", summary.Failed))
	return summary, nil
}

// RetryFailed re-attempts every failed pair for the voice whose credential is
// still active. SyncOne re-checks the ledger, so a pair flipped to synced by
// a concurrent batch becomes a no-op here.
func (r *Reconciler) RetryFailed(ctx context.Context, voiceID, ownerID, name string) (RetrySummary, error) {
	failed, err := r.store.ListFailedSyncs(ctx, voiceID)
	if err != nil {
		return RetrySummary{}, err
	}

	var summary RetrySummary
	for i, f := range failed {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("Retry canceled mid-batch",
				zap.String("voice_id", voiceID),
				zap.Int("remaining", len(failed)-i))
			return summary, err
		}

		// Callers may omit owner and name on retry; the ledger row has them.
		retryOwner := ownerID
		if retryOwner == "" {
			retryOwner = f.Record.OwnerID
		}
		retryName := name
		if retryName == "" && f.Record.VoiceName != nil {
			retryName = *f.Record.VoiceName
		}

		summary.Retried++
		res := r.SyncOne(ctx, voiceID, retryOwner, retryName, f.Credential)
		if res.Synced {
			summary.Succeeded++
		}

		if i < len(failed)-1 {
			r.pause(ctx)
		}
	}

	r.logger.Info("Voice retry completed",
		zap.String("voice_id", voiceID),
		zap.Int("retried", summary.Retried),
		zap.Int("succeeded", summary.Succeeded))
	return summary, nil
}

// pause waits the configured inter-call delay or until the context ends.
func (r *Reconciler) pause(ctx context.Context) {
	if r.delay <= 0 {
		return
	}
	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
	}
}

// errorMessage formats a provider error for the ledger. Non-2xx responses
// keep the status code and body verbatim; transport errors use their own text.
func errorMessage(err error) string {
	var apiErr *provider.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("status %d: %s", apiErr.StatusCode, apiErr.Body)
	}
	return err.Error()
}
