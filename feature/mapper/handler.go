package mapper

import (
	"bytes"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sku-mapper/core/catalog"
	"sku-mapper/core/logger"
)

// Handler handles HTTP requests for mapping sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the mapper routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions")
	group.Post("/", h.HandleCreateSession)
	group.Delete("/:id", h.HandleDeleteSession)
	group.Post("/:id/master", h.HandleLoadMaster)
	group.Post("/:id/sales", h.HandleAddSales)
	group.Post("/:id/map", h.HandleMapCodes)
	group.Get("/:id/unmapped", h.HandleUnmapped)
	group.Post("/:id/assign", h.HandleAssign)
	group.Post("/:id/reconcile", h.HandleReconcile)
	group.Get("/:id/mappings.csv", h.HandleExportMappings)
	group.Get("/:id/inventory.csv", h.HandleExportInventory)
}

// createSessionRequest is the optional body of POST /sessions.
type createSessionRequest struct {
	// Threshold overrides the configured auto-mapping threshold. Zero keeps
	// the default.
	Threshold int `json:"threshold"`
}

// assignRequest is the body of POST /sessions/{id}/assign.
type assignRequest struct {
	SKU  string `json:"sku"`
	MSKU string `json:"msku"`
}

// HandleCreateSession creates a new independent mapping session.
// @Summary Create Session
// @Description Creates a new mapping session with its own catalog, sales batches, and mapping state.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body createSessionRequest false "Session options"
// @Success 201 {object} map[string]interface{} "Session ID and threshold"
// @Router /sessions [post]
func (h *Handler) HandleCreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	id, threshold := h.service.CreateSession(req.Threshold)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": id,
		"threshold":  threshold,
	})
}

// HandleDeleteSession drops a session and all its state.
// @Summary Delete Session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id} [delete]
func (h *Handler) HandleDeleteSession(c *fiber.Ctx) error {
	if err := h.service.DeleteSession(c.Params("id")); err != nil {
		return h.translateError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleLoadMaster loads the master catalog CSV into a session.
// @Summary Load Master Catalog
// @Description Uploads the master CSV (columns MSKU, Quantity). A failed parse leaves the previous catalog untouched.
// @Tags sessions
// @Accept mpfd
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]string "Loaded"
// @Failure 400 {object} map[string]string "Malformed file"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/master [post]
func (h *Handler) HandleLoadMaster(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	r, name, cleanup, err := uploadedFile(c, "master.csv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer cleanup()

	if err := h.service.LoadMaster(c.Params("id"), r, name); err != nil {
		l.Warn("Master load rejected", zap.String("file", name), zap.Error(err))
		return h.translateError(c, err)
	}
	return c.JSON(fiber.Map{"status": "loaded", "file": name})
}

// HandleAddSales appends one sales batch CSV to a session.
// @Summary Add Sales Batch
// @Description Uploads a sales CSV (columns SKU, Quantity). Each upload becomes one batch; batches accumulate.
// @Tags sessions
// @Accept mpfd
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]string "Loaded"
// @Failure 400 {object} map[string]string "Malformed file"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/sales [post]
func (h *Handler) HandleAddSales(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	r, name, cleanup, err := uploadedFile(c, "sales.csv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer cleanup()

	if err := h.service.AddSalesBatch(c.Params("id"), r, name); err != nil {
		l.Warn("Sales load rejected", zap.String("file", name), zap.Error(err))
		return h.translateError(c, err)
	}
	return c.JSON(fiber.Map{"status": "loaded", "file": name})
}

// HandleMapCodes runs the fuzzy auto-mapping pass.
// @Summary Map SKUs
// @Description Resolves every observed SKU against the master catalog. Repeated calls are idempotent.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} MapResult "Mapping counts"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/map [post]
func (h *Handler) HandleMapCodes(c *fiber.Ctx) error {
	result, err := h.service.MapCodes(c.Params("id"))
	if err != nil {
		return h.translateError(c, err)
	}
	return c.JSON(result)
}

// HandleUnmapped lists the SKUs pending manual resolution.
// @Summary List Unmapped SKUs
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Pending SKUs"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/unmapped [get]
func (h *Handler) HandleUnmapped(c *fiber.Ctx) error {
	codes, err := h.service.Unmapped(c.Params("id"))
	if err != nil {
		return h.translateError(c, err)
	}
	return c.JSON(fiber.Map{"unmapped": codes})
}

// HandleAssign records a manual SKU to MSKU mapping.
// @Summary Assign Manual Mapping
// @Description Maps a SKU the automatic pass could not resolve. Checkpoints the table to snapshot storage when enabled.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body assignRequest true "Mapping"
// @Success 200 {object} map[string]string "Assigned"
// @Failure 400 {object} map[string]string "Missing sku or msku"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/assign [post]
func (h *Handler) HandleAssign(c *fiber.Ctx) error {
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.SKU == "" || req.MSKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sku and msku are required"})
	}

	if err := h.service.Assign(c.Context(), c.Params("id"), req.SKU, req.MSKU); err != nil {
		return h.translateError(c, err)
	}
	return c.JSON(fiber.Map{"status": "assigned", "sku": req.SKU, "msku": req.MSKU})
}

// HandleReconcile recomputes available quantities.
// @Summary Reconcile Inventory
// @Description Subtracts every mapped sale from the catalog quantities and returns the snapshot with warnings.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} inventory.Report "Inventory report"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Reconcile(c.Params("id"))
	if err != nil {
		return h.translateError(c, err)
	}

	if len(report.Warnings) > 0 {
		l.Warn("Reconcile finished with warnings", zap.Int("warnings", len(report.Warnings)))
	}
	return c.JSON(report)
}

// HandleExportMappings streams the mapping table as CSV.
// @Summary Export Mappings CSV
// @Tags sessions
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/mappings.csv [get]
func (h *Handler) HandleExportMappings(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.WriteMappings(c.Params("id"), &buf); err != nil {
		return h.translateError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(buf.Bytes())
}

// HandleExportInventory streams the reconciled inventory snapshot as CSV.
// @Summary Export Inventory CSV
// @Tags sessions
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} map[string]string "Unknown session"
// @Router /sessions/{id}/inventory.csv [get]
func (h *Handler) HandleExportInventory(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.WriteInventory(c.Params("id"), &buf); err != nil {
		return h.translateError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(buf.Bytes())
}

// translateError maps service errors to HTTP responses.
func (h *Handler) translateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}

	var ingestErr *catalog.IngestError
	if errors.As(err, &ingestErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ingestErr.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// uploadedFile returns a reader over the uploaded CSV: the "file" multipart
// field when present, otherwise the raw request body.
func uploadedFile(c *fiber.Ctx, fallbackName string) (io.Reader, string, func(), error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, "", nil, err
		}
		return f, fh.Filename, func() { _ = f.Close() }, nil
	}

	body := c.Body()
	if len(body) == 0 {
		return nil, "", nil, errors.New("no file uploaded")
	}
	return bytes.NewReader(body), fallbackName, func() {}, nil
}
