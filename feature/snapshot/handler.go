package snapshot

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sku-mapper/core/logger"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Get("/", h.HandleList)
	group.Get("/*", h.HandleDownload)
	group.Delete("/*", h.HandleDelete)
}

// HandleList lists stored snapshot objects.
// @Summary List Snapshots
// @Description Lists checkpointed mapping and inventory CSVs in the snapshot bucket.
// @Tags snapshots
// @Produce json
// @Param prefix query string false "Key prefix filter"
// @Success 200 {object} map[string]interface{} "Snapshot list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	infos, err := h.service.List(c.Context(), c.Query("prefix"))
	if err != nil {
		l.Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"snapshots": infos})
}

// HandleDownload streams one snapshot object.
// @Summary Download Snapshot
// @Tags snapshots
// @Produce plain
// @Param key path string true "Object key"
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{key} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("*")

	obj, err := h.service.Get(c.Context(), key)
	if err != nil {
		l.Error("Snapshot download failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		l.Error("Snapshot read failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(data)
}

// HandleDelete removes one snapshot object.
// @Summary Delete Snapshot
// @Tags snapshots
// @Produce json
// @Param key path string true "Object key"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{key} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("*")

	if err := h.service.Delete(c.Context(), key); err != nil {
		l.Error("Snapshot delete failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
