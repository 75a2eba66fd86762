package voices

import (
	"voice-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for voice syncing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the voices routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	voicesGroup := app.Group("/voices")
	voicesGroup.Post("/:voiceId/sync", h.HandleSyncVoice)
	voicesGroup.Post("/:voiceId/retry", h.HandleRetryVoice)
	voicesGroup.Get("/:voiceId/syncs", h.HandleListVoiceSyncs)

	credsGroup := app.Group("/credentials")
	credsGroup.Get("/:credentialId/syncs", h.HandleListCredentialSyncs)
	credsGroup.Get("/:credentialId/voices/:voiceId", h.HandleCheckSynced)
}

// syncRequest carries the voice metadata for sync and retry operations.
type syncRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
}

// HandleSyncVoice propagates a voice to all active credentials.
// @Summary Sync Voice To All Credentials
// @Description Ensures the voice exists in every active credential's account. Default stock voices are skipped. Per-credential failures are recorded in the ledger, not returned as errors.
// @Tags voices
// @Accept json
// @Produce json
// @Param voiceId path string true "Voice ID"
// @Param body body syncRequest true "Voice owner and optional display name"
// @Success 200 {object} FanOutSummary "Aggregate counts"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /voices/{voiceId}/sync [post]
func (h *Handler) HandleSyncVoice(c *fiber.Ctx) error {
	voiceID := c.Params("voiceId")
	l := logger.WithRayID(h.service.logger, c)

	var req syncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	l.Info("Sync requested", zap.String("voice_id", voiceID), zap.String("owner_id", req.OwnerID))

	summary, err := h.service.SyncVoice(c.Context(), voiceID, req.OwnerID, req.Name)
	if err != nil {
		l.Error("Voice sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// HandleRetryVoice re-attempts the voice's failed syncs.
// @Summary Retry Failed Syncs
// @Description Re-attempts every failed sync for the voice whose credential is still active. Already-synced pairs are no-ops.
// @Tags voices
// @Accept json
// @Produce json
// @Param voiceId path string true "Voice ID"
// @Param body body syncRequest false "Voice owner and optional display name"
// @Success 200 {object} RetrySummary "Aggregate counts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /voices/{voiceId}/retry [post]
func (h *Handler) HandleRetryVoice(c *fiber.Ctx) error {
	voiceID := c.Params("voiceId")
	l := logger.WithRayID(h.service.logger, c)

	var req syncRequest
	// Body is optional for retries; the ledger already has owner and name.
	_ = c.BodyParser(&req)

	l.Info("Retry requested", zap.String("voice_id", voiceID))

	summary, err := h.service.RetryVoice(c.Context(), voiceID, req.OwnerID, req.Name)
	if err != nil {
		l.Error("Voice retry failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// HandleListVoiceSyncs lists the ledger rows for a voice.
// @Summary List Sync Records For Voice
// @Tags voices
// @Produce json
// @Param voiceId path string true "Voice ID"
// @Success 200 {array} models.VoiceSync "Ledger rows"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /voices/{voiceId}/syncs [get]
func (h *Handler) HandleListVoiceSyncs(c *fiber.Ctx) error {
	voiceID := c.Params("voiceId")
	l := logger.WithRayID(h.service.logger, c)

	recs, err := h.service.VoiceSyncs(c.Context(), voiceID)
	if err != nil {
		l.Error("Listing voice syncs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(recs)
}

// HandleListCredentialSyncs lists the ledger rows for a credential.
// @Summary List Sync Records For Credential
// @Tags credentials
// @Produce json
// @Param credentialId path string true "Credential ID"
// @Success 200 {array} models.VoiceSync "Ledger rows"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /credentials/{credentialId}/syncs [get]
func (h *Handler) HandleListCredentialSyncs(c *fiber.Ctx) error {
	credentialID := c.Params("credentialId")
	l := logger.WithRayID(h.service.logger, c)

	recs, err := h.service.CredentialSyncs(c.Context(), credentialID)
	if err != nil {
		l.Error("Listing credential syncs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(recs)
}

// HandleCheckSynced reports whether a credential already has a voice.
// @Summary Check Sync State For Pair
// @Tags credentials
// @Produce json
// @Param credentialId path string true "Credential ID"
// @Param voiceId path string true "Voice ID"
// @Success 200 {object} map[string]bool "Synced flag"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /credentials/{credentialId}/voices/{voiceId} [get]
func (h *Handler) HandleCheckSynced(c *fiber.Ctx) error {
	credentialID := c.Params("credentialId")
	voiceID := c.Params("voiceId")
	l := logger.WithRayID(h.service.logger, c)

	synced, err := h.service.IsAlreadySynced(c.Context(), credentialID, voiceID)
	if err != nil {
		l.Error("Sync state check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"synced": synced})
}
