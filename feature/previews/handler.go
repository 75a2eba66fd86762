package previews

import (
	"bytes"

	"voice-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for voice previews.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the previews routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/previews", h.HandleListPreviews)

	group := app.Group("/voices/:voiceId/preview")
	group.Get("/", h.HandleGetPreview)
	group.Put("/", h.HandlePutPreview)
	group.Delete("/", h.HandleDeletePreview)
}

// HandleGetPreview streams the voice's preview clip.
// @Summary Get Voice Preview
// @Tags previews
// @Produce audio/mpeg
// @Param voiceId path string true "Voice ID"
// @Success 200 {file} binary "Preview audio"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /voices/{voiceId}/preview [get]
func (h *Handler) HandleGetPreview(c *fiber.Ctx) error {
	voiceID := c.Params("voiceId")
	l := logger.WithRayID(h.service.logger, c)

	obj, found, err := h.service.Fetch(c.Context(), voiceID)
	if err != nil {
		l.Error("Preview fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no preview for voice"})
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.SendStream(obj)
}

// HandlePutPreview uploads a preview clip for the voice.
// @Summary Upload Voice Preview
// @Tags previews
// @Accept audio/mpeg
// @Produce json
// @Param voiceId path string true "Voice ID"
// @Success 200 {object} map[string]string "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /voices/{voiceId}/preview [put]
func (h *Handler) HandlePutPreview(c *fiber.Ctx) error {
	voiceID := c.Params("voiceId")
	l := logger.WithRayID(h.service.logger, c)

	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	if err := h.service.Upload(c.Context(), voiceID, bytes.NewReader(body), int64(len(body))); err != nil {
		l.Error("Preview upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "uploaded"})
}

// HandleDeletePreview removes the voice's preview clip.
// @Summary Delete Voice Preview
// @Tags previews
// @Produce json
// @Param voiceId path string true "Voice ID"
// @Success 200 {object} map[string]string "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /voices/{voiceId}/preview [delete]
func (h *Handler) HandleDeletePreview(c *fiber.Ctx) error {
	voiceID := c.Params("voiceId")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), voiceID); err != nil {
		l.Error("Preview delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleListPreviews lists voices that have preview clips.
// @Summary List Voices With Previews
// @Tags previews
// @Produce json
// @Success 200 {array} string "Voice IDs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /previews [get]
func (h *Handler) HandleListPreviews(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ids, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Preview listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if ids == nil {
		ids = []string{}
	}

	return c.JSON(ids)
}
