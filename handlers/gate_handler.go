package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"smart-hostel/config/middleware"
	"smart-hostel/models"
	util "smart-hostel/pkg/utils"
	"smart-hostel/service"
)

const (
	defaultGateEventLimit = 50
	maxGateEventLimit     = 500
)

type GateHandler struct {
	outpasses *service.OutpassService
	projector *service.Projector
}

func NewGateHandler(outpasses *service.OutpassService, projector *service.Projector) *GateHandler {
	return &GateHandler{
		outpasses: outpasses,
		projector: projector,
	}
}

func scanResponse(c *fiber.Ctx, result *service.ScanResult) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":     result.Message,
		"outcome": result.Outcome,
		"request": service.NewOutpassView(result.Request),
	})
}

// VerifyQR godoc
// @Summary Verify a gate scan
// @Description Records an exit on the first scan and an entry on the second. Late returns are recorded, never refused.
// @Tags Gate
// @Accept json
// @Produce json
// @Param X-Gate-Device header string false "Gate device id, required when devices are configured"
// @Param X-Gate-Key header string false "Gate device key"
// @Param scan body models.QRScanPayload true "Decoded QR content"
// @Success 200 {object} object{msg=string,outcome=string,request=service.OutpassView}
// @Failure 400 {object} models.MessageResponse "Too early or already completed"
// @Failure 401 {object} models.MessageResponse "Unknown gate device"
// @Failure 403 {object} models.MessageResponse "QR Expired: You missed your exit window."
// @Failure 404 {object} models.NotFoundErrorResponse "Outpass not found or not approved"
// @Failure 409 {object} models.MessageResponse "Scanned concurrently"
// @Router /outpass/verify_qr [post]
func (h *GateHandler) VerifyQR(c *fiber.Ctx) error {
	var payload models.QRScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.outpasses.Scan(ctx, service.ScanRequest{
		ID:        payload.ID,
		StudentID: payload.StudentID,
		DeviceID:  middleware.GateDeviceFrom(c),
	})
	if err != nil {
		return respondError(c, err, "Error verifying QR")
	}
	return scanResponse(c, result)
}

// VerifyQRImage godoc
// @Summary Verify a scanned QR image
// @Description Same as verify_qr, for scanners that upload the captured image (base64 or data URL)
// @Tags Gate
// @Accept json
// @Produce json
// @Param X-Gate-Device header string false "Gate device id"
// @Param X-Gate-Key header string false "Gate device key"
// @Param scan body models.QRImageScanPayload true "Captured QR image"
// @Success 200 {object} object{msg=string,outcome=string,request=service.OutpassView}
// @Failure 400 {object} models.ValidationErrorResponse "Unreadable QR code"
// @Failure 404 {object} models.NotFoundErrorResponse "Outpass not found or not approved"
// @Router /outpass/verify_qr_image [post]
func (h *GateHandler) VerifyQRImage(c *fiber.Ctx) error {
	var payload models.QRImageScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Invalid request body"})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Image is required", "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.outpasses.ScanImage(ctx, payload.Image, middleware.GateDeviceFrom(c))
	if err != nil {
		return respondError(c, err, "Error verifying QR")
	}
	return scanResponse(c, result)
}

// GetGateEvents godoc
// @Summary Recent gate scans
// @Description Scan attempts, newest first, including refused ones
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum events (default 50, max 500)"
// @Success 200 {object} object{events=[]models.GateEvent}
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Failure 500 {object} models.ErrorResponse "Error fetching gate events"
// @Router /outpass/gate_events [get]
func (h *GateHandler) GetGateEvents(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultGateEventLimit)
	if limit <= 0 {
		limit = defaultGateEventLimit
	}
	if limit > maxGateEventLimit {
		limit = maxGateEventLimit
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	events, err := h.projector.GateEvents(ctx, int64(limit))
	if err != nil {
		return respondError(c, err, "Error fetching gate events")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"events": events})
}
