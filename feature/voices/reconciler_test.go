package voices_test

import (
	"context"
	"errors"
	"testing"

	"voice-sync/core/database"
	"voice-sync/core/provider"
	"voice-sync/core/provider/mocks"
	"voice-sync/feature/voices"
	"voice-sync/feature/voices/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	testVoiceID = "v-custom-1"
	testOwnerID = "owner-1"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Credential{}, &models.VoiceSync{}))
	return db
}

func seedCredential(t *testing.T, db *gorm.DB, id string, active bool) models.Credential {
	cred := models.Credential{
		ID:     id,
		Label:  "account " + id,
		APIKey: "key-" + id,
		Active: active,
	}
	require.NoError(t, db.Create(&cred).Error)
	return cred
}

func newReconciler(db *gorm.DB, providerMock *mocks.Client) *voices.Reconciler {
	return voices.NewReconciler(voices.NewStore(db), providerMock, zap.NewNop(), 0)
}

func countRecords(t *testing.T, db *gorm.DB, credentialID, voiceID string) int64 {
	var n int64
	err := db.Model(&models.VoiceSync{}).
		Where("credential_id = ? AND voice_id = ?", credentialID, voiceID).
		Count(&n).Error
	require.NoError(t, err)
	return n
}

func TestSyncOneIdempotent(t *testing.T) {
	db := setupDB(t)
	cred := seedCredential(t, db, "a", true)

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, cred.APIKey, testOwnerID, testVoiceID, "My Voice").
		Return(nil)

	r := newReconciler(db, providerMock)
	ctx := context.Background()

	first := r.SyncOne(ctx, testVoiceID, testOwnerID, "My Voice", cred)
	second := r.SyncOne(ctx, testVoiceID, testOwnerID, "My Voice", cred)

	assert.True(t, first.Synced)
	assert.True(t, second.Synced)
	// Second invocation short-circuits: exactly one remote call.
	providerMock.AssertNumberOfCalls(t, "AddSharedVoice", 1)

	var rec models.VoiceSync
	require.NoError(t, db.Where("credential_id = ? AND voice_id = ?", cred.ID, testVoiceID).First(&rec).Error)
	assert.Equal(t, models.StatusSynced, rec.Status)
	assert.Nil(t, rec.ErrorMessage)
}

func TestSyncOneRecordsProviderRejection(t *testing.T) {
	db := setupDB(t)
	cred := seedCredential(t, db, "a", true)

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, cred.APIKey, testOwnerID, testVoiceID, "").
		Return(&provider.APIError{StatusCode: 422, Body: `{"detail":"not shareable"}`})

	r := newReconciler(db, providerMock)
	res := r.SyncOne(context.Background(), testVoiceID, testOwnerID, "", cred)

	assert.False(t, res.Synced)
	assert.Contains(t, res.Err, "422")
	assert.Contains(t, res.Err, "not shareable")

	var rec models.VoiceSync
	require.NoError(t, db.Where("credential_id = ? AND voice_id = ?", cred.ID, testVoiceID).First(&rec).Error)
	assert.Equal(t, models.StatusFailed, rec.Status)
	require.NotNil(t, rec.ErrorMessage)
	assert.Contains(t, *rec.ErrorMessage, "422")
}

func TestSyncToAllSkipsDefaultVoice(t *testing.T) {
	db := setupDB(t)
	seedCredential(t, db, "a", true)
	seedCredential(t, db, "b", true)

	providerMock := new(mocks.Client)
	r := newReconciler(db, providerMock)

	// Rachel, one of the stock premade voices.
	summary, err := r.SyncToAllActive(context.Background(), "21m00Tcm4TlvDq8ikWAM", testOwnerID, "")

	require.NoError(t, err)
	assert.Equal(t, voices.FanOutSummary{Skipped: 1}, summary)
	providerMock.AssertNotCalled(t, "AddSharedVoice")

	var n int64
	require.NoError(t, db.Model(&models.VoiceSync{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSyncToAllNoActiveCredentials(t *testing.T) {
	db := setupDB(t)
	seedCredential(t, db, "a", false) // inactive only

	providerMock := new(mocks.Client)
	r := newReconciler(db, providerMock)

	summary, err := r.SyncToAllActive(context.Background(), testVoiceID, testOwnerID, "")

	require.NoError(t, err)
	assert.Equal(t, voices.FanOutSummary{}, summary)
	providerMock.AssertNotCalled(t, "AddSharedVoice")

	var n int64
	require.NoError(t, db.Model(&models.VoiceSync{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestFailureThenRetrySuccess(t *testing.T) {
	db := setupDB(t)
	cred := seedCredential(t, db, "c", true)

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, cred.APIKey, testOwnerID, testVoiceID, "My Voice").
		Return(&provider.APIError{StatusCode: 500, Body: "upstream down"}).Once()
	providerMock.On("AddSharedVoice", mock.Anything, cred.APIKey, testOwnerID, testVoiceID, "My Voice").
		Return(nil)

	r := newReconciler(db, providerMock)
	ctx := context.Background()

	res := r.SyncOne(ctx, testVoiceID, testOwnerID, "My Voice", cred)
	assert.False(t, res.Synced)

	summary, err := r.RetryFailed(ctx, testVoiceID, testOwnerID, "My Voice")
	require.NoError(t, err)
	assert.Equal(t, voices.RetrySummary{Retried: 1, Succeeded: 1}, summary)

	var rec models.VoiceSync
	require.NoError(t, db.Where("credential_id = ? AND voice_id = ?", cred.ID, testVoiceID).First(&rec).Error)
	assert.Equal(t, models.StatusSynced, rec.Status)
	assert.Nil(t, rec.ErrorMessage)
}

func TestUniqueRecordPerPair(t *testing.T) {
	db := setupDB(t)
	cred := seedCredential(t, db, "a", true)

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, cred.APIKey, testOwnerID, testVoiceID, "").
		Return(&provider.APIError{StatusCode: 429, Body: "rate limited"}).Times(3)
	providerMock.On("AddSharedVoice", mock.Anything, cred.APIKey, testOwnerID, testVoiceID, "").
		Return(nil)

	r := newReconciler(db, providerMock)
	ctx := context.Background()

	// Mixed failures and a final success for one pair.
	for i := 0; i < 5; i++ {
		r.SyncOne(ctx, testVoiceID, testOwnerID, "", cred)
	}

	assert.Equal(t, int64(1), countRecords(t, db, cred.ID, testVoiceID))
}

func TestRetryScope(t *testing.T) {
	db := setupDB(t)
	syncedCred := seedCredential(t, db, "a", true)
	inactiveCred := seedCredential(t, db, "b", false)
	failedCred := seedCredential(t, db, "c", true)

	name := "My Voice"
	require.NoError(t, db.Create(&models.VoiceSync{
		CredentialID: syncedCred.ID, VoiceID: testVoiceID, OwnerID: testOwnerID,
		VoiceName: &name, Status: models.StatusSynced,
	}).Error)
	msg := "status 500: boom"
	require.NoError(t, db.Create(&models.VoiceSync{
		CredentialID: inactiveCred.ID, VoiceID: testVoiceID, OwnerID: testOwnerID,
		Status: models.StatusFailed, ErrorMessage: &msg,
	}).Error)
	require.NoError(t, db.Create(&models.VoiceSync{
		CredentialID: failedCred.ID, VoiceID: testVoiceID, OwnerID: testOwnerID,
		Status: models.StatusFailed, ErrorMessage: &msg,
	}).Error)

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, failedCred.APIKey, testOwnerID, testVoiceID, name).
		Return(nil)

	r := newReconciler(db, providerMock)
	summary, err := r.RetryFailed(context.Background(), testVoiceID, testOwnerID, name)

	require.NoError(t, err)
	// Only the failed pair with a still-active credential is retried: not the
	// synced pair, not the deactivated credential's pair.
	assert.Equal(t, voices.RetrySummary{Retried: 1, Succeeded: 1}, summary)
	providerMock.AssertNumberOfCalls(t, "AddSharedVoice", 1)
}

func TestFanOutPartialFailureThenRetry(t *testing.T) {
	db := setupDB(t)
	credA := seedCredential(t, db, "a", true)
	credB := seedCredential(t, db, "b", true)
	credC := seedCredential(t, db, "c", true)

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, credA.APIKey, testOwnerID, testVoiceID, "R1").
		Return(nil)
	providerMock.On("AddSharedVoice", mock.Anything, credB.APIKey, testOwnerID, testVoiceID, "R1").
		Return(&provider.APIError{StatusCode: 503, Body: "unavailable"}).Once()
	providerMock.On("AddSharedVoice", mock.Anything, credB.APIKey, testOwnerID, testVoiceID, "R1").
		Return(nil)
	providerMock.On("AddSharedVoice", mock.Anything, credC.APIKey, testOwnerID, testVoiceID, "R1").
		Return(nil)

	r := newReconciler(db, providerMock)
	ctx := context.Background()

	fanOut, err := r.SyncToAllActive(ctx, testVoiceID, testOwnerID, "R1")
	require.NoError(t, err)
	assert.Equal(t, voices.FanOutSummary{Synced: 2, Failed: 1}, fanOut)

	retry, err := r.RetryFailed(ctx, testVoiceID, testOwnerID, "R1")
	require.NoError(t, err)
	assert.Equal(t, voices.RetrySummary{Retried: 1, Succeeded: 1}, retry)

	var synced int64
	require.NoError(t, db.Model(&models.VoiceSync{}).
		Where("voice_id = ? AND status = ?", testVoiceID, models.StatusSynced).
		Count(&synced).Error)
	assert.Equal(t, int64(3), synced)
}

func TestSyncOneRecordsTransportError(t *testing.T) {
	db := setupDB(t)
	cred := seedCredential(t, db, "a", true)

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, cred.APIKey, testOwnerID, testVoiceID, "").
		Return(errors.New("provider request failed: dial tcp: connection refused"))

	r := newReconciler(db, providerMock)
	res := r.SyncOne(context.Background(), testVoiceID, testOwnerID, "", cred)

	// A transport error carries no status code; the plain error text is
	// persisted as-is.
	assert.False(t, res.Synced)
	assert.Equal(t, "provider request failed: dial tcp: connection refused", res.Err)

	var rec models.VoiceSync
	require.NoError(t, db.Where("credential_id = ? AND voice_id = ?", cred.ID, testVoiceID).First(&rec).Error)
	assert.Equal(t, models.StatusFailed, rec.Status)
	require.NotNil(t, rec.ErrorMessage)
	assert.Equal(t, "provider request failed: dial tcp: connection refused", *rec.ErrorMessage)
	assert.NotContains(t, *rec.ErrorMessage, "status ")
}

func TestSyncToAllCanceledMidBatch(t *testing.T) {
	db := setupDB(t)
	credA := seedCredential(t, db, "a", true)
	seedCredential(t, db, "b", true)
	seedCredential(t, db, "c", true)

	ctx, cancel := context.WithCancel(context.Background())

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, credA.APIKey, testOwnerID, testVoiceID, "").
		Run(func(args mock.Arguments) { cancel() }).
		Return(nil)

	r := newReconciler(db, providerMock)
	summary, err := r.SyncToAllActive(ctx, testVoiceID, testOwnerID, "")

	// The batch ends before the second unit, keeping the counts accumulated
	// so far.
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, voices.FanOutSummary{Synced: 1}, summary)
	providerMock.AssertNumberOfCalls(t, "AddSharedVoice", 1)
}

func TestRetryCanceledMidBatch(t *testing.T) {
	db := setupDB(t)
	credA := seedCredential(t, db, "a", true)
	credB := seedCredential(t, db, "b", true)

	msg := "status 503: unavailable"
	for _, cred := range []models.Credential{credA, credB} {
		require.NoError(t, db.Create(&models.VoiceSync{
			CredentialID: cred.ID, VoiceID: testVoiceID, OwnerID: testOwnerID,
			Status: models.StatusFailed, ErrorMessage: &msg,
		}).Error)
	}

	ctx, cancel := context.WithCancel(context.Background())

	providerMock := new(mocks.Client)
	providerMock.On("AddSharedVoice", mock.Anything, credA.APIKey, testOwnerID, testVoiceID, "").
		Run(func(args mock.Arguments) { cancel() }).
		Return(nil)

	r := newReconciler(db, providerMock)
	summary, err := r.RetryFailed(ctx, testVoiceID, testOwnerID, "")

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, voices.RetrySummary{Retried: 1, Succeeded: 1}, summary)
	providerMock.AssertNumberOfCalls(t, "AddSharedVoice", 1)
}

func TestIsAlreadySynced(t *testing.T) {
	db := setupDB(t)
	cred := seedCredential(t, db, "a", true)

	r := newReconciler(db, new(mocks.Client))
	ctx := context.Background()

	synced, err := r.IsAlreadySynced(ctx, cred.ID, testVoiceID)
	require.NoError(t, err)
	assert.False(t, synced, "absent record is not synced")

	msg := "status 500: boom"
	require.NoError(t, db.Create(&models.VoiceSync{
		CredentialID: cred.ID, VoiceID: testVoiceID, OwnerID: testOwnerID,
		Status: models.StatusFailed, ErrorMessage: &msg,
	}).Error)

	synced, err = r.IsAlreadySynced(ctx, cred.ID, testVoiceID)
	require.NoError(t, err)
	assert.False(t, synced, "failed record is not synced")

	require.NoError(t, db.Model(&models.VoiceSync{}).
		Where("credential_id = ? AND voice_id = ?", cred.ID, testVoiceID).
		Updates(map[string]any{"status": models.StatusSynced, "error_message": nil}).Error)

	synced, err = r.IsAlreadySynced(ctx, cred.ID, testVoiceID)
	require.NoError(t, err)
	assert.True(t, synced)
}

func TestIsDefaultVoice(t *testing.T) {
	assert.True(t, voices.IsDefaultVoice("21m00Tcm4TlvDq8ikWAM"))
	assert.True(t, voices.IsDefaultVoice("pNInz6obpgDQGcFmaJgB"))
	assert.False(t, voices.IsDefaultVoice(testVoiceID))
	assert.False(t, voices.IsDefaultVoice(""))
}
