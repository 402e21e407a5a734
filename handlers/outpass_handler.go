package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"smart-hostel/config/middleware"
	"smart-hostel/models"
	"smart-hostel/service"
)

type OutpassHandler struct {
	outpasses *service.OutpassService
	projector *service.Projector
}

func NewOutpassHandler(outpasses *service.OutpassService, projector *service.Projector) *OutpassHandler {
	return &OutpassHandler{
		outpasses: outpasses,
		projector: projector,
	}
}

func callerID(c *fiber.Ctx) string {
	if claims := middleware.ClaimsFrom(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// SubmitRequest godoc
// @Summary Submit outpass request
// @Description Student submits a request to leave the hostel between fromTime and toTime
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.OutpassCreatePayload true "Outpass window and reason"
// @Success 201 {object} object{msg=string,request=service.OutpassView} "Request submitted"
// @Failure 400 {object} models.ValidationErrorResponse "Missing or invalid fields"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Not authenticated"
// @Failure 500 {object} models.ErrorResponse "Error submitting request"
// @Router /outpass/request [post]
func (h *OutpassHandler) SubmitRequest(c *fiber.Ctx) error {
	var payload models.OutpassCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	req, err := h.outpasses.Submit(ctx, callerID(c), payload)
	if err != nil {
		return respondError(c, err, "Error submitting request")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "Request submitted successfully",
		"request": service.NewOutpassView(req),
	})
}

// GetMyRequests godoc
// @Summary List my outpass requests
// @Description All requests of the caller, newest first
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{requests=[]service.OutpassView}
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 500 {object} models.ErrorResponse "Error fetching requests"
// @Router /outpass/status [get]
func (h *OutpassHandler) GetMyRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.projector.ListOwn(ctx, callerID(c))
	if err != nil {
		return respondError(c, err, "Error fetching requests")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"requests": requests})
}

// GetMyQR godoc
// @Summary Get my current QR code
// @Description QR of the newest approved outpass the caller has not returned from yet
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.QRCodeResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse "No approved outpass or QR available"
// @Failure 500 {object} models.ErrorResponse "Error fetching QR"
// @Router /outpass/my_qr [get]
func (h *OutpassHandler) GetMyQR(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	qr, err := h.projector.CurrentQR(ctx, callerID(c))
	if err != nil {
		return respondError(c, err, "Error fetching QR")
	}
	return c.Status(fiber.StatusOK).JSON(qr)
}

// GetMyActive godoc
// @Summary List my active outpasses
// @Description Outpasses the caller has exited on and not yet returned from
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{active_outpasses=[]service.OutpassView}
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 500 {object} models.ErrorResponse "Error fetching active outpasses"
// @Router /outpass/active [get]
func (h *OutpassHandler) GetMyActive(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	active, err := h.projector.ListOwnActive(ctx, callerID(c))
	if err != nil {
		return respondError(c, err, "Error fetching active outpasses")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"active_outpasses": active})
}

// GetMyApproved godoc
// @Summary List my approved outpasses
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{approved_outpasses=[]service.OutpassView}
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 500 {object} models.ErrorResponse "Error fetching approved outpasses"
// @Router /outpass/student/approved [get]
func (h *OutpassHandler) GetMyApproved(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	approved, err := h.projector.ListOwnApproved(ctx, callerID(c))
	if err != nil {
		return respondError(c, err, "Error fetching approved outpasses")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"approved_outpasses": approved})
}

// UpdateStatus godoc
// @Summary Approve or reject a request
// @Description Warden decides a pending request. Approval issues the QR code. A request can be decided once.
// @Tags Warden
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outpass request ID"
// @Param decision body models.OutpassDecisionPayload true "approved or rejected"
// @Success 200 {object} object{msg=string,request=service.OutpassView}
// @Failure 400 {object} models.MessageResponse "Invalid status"
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse "Request not found"
// @Failure 409 {object} models.MessageResponse "Request already decided"
// @Failure 500 {object} models.ErrorResponse "Error updating request"
// @Router /outpass/update_status/{id} [patch]
func (h *OutpassHandler) UpdateStatus(c *fiber.Ctx) error {
	var payload models.OutpassDecisionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	req, err := h.outpasses.Decide(ctx, c.Params("id"), payload.Status)
	if err != nil {
		return respondError(c, err, "Error updating request")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"msg":     fmt.Sprintf("Request %s successfully", req.Status),
		"request": service.NewOutpassView(req),
	})
}

// GetAllRequests godoc
// @Summary List all requests
// @Description Every request, newest first, with the requester's name and email
// @Tags Warden
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{requests=[]service.OutpassView}
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Failure 500 {object} models.ErrorResponse "Error fetching all requests"
// @Router /outpass/all_requests [get]
func (h *OutpassHandler) GetAllRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.projector.ListAll(ctx)
	if err != nil {
		return respondError(c, err, "Error fetching all requests")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"requests": requests})
}

// GetActiveOutpasses godoc
// @Summary Students currently out
// @Description Staff view of every student who has exited and not returned
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{active_outpasses=[]service.OutpassView}
// @Failure 403 {object} models.ForbiddenErrorResponse "Unauthorized: Access restricted to staff"
// @Failure 500 {object} models.ErrorResponse "Error fetching active outpasses"
// @Router /outpass/security/active [get]
func (h *OutpassHandler) GetActiveOutpasses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	active, err := h.projector.ListActive(ctx)
	if err != nil {
		return respondError(c, err, "Error fetching active outpasses")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"active_outpasses": active})
}

// GetStats godoc
// @Summary Outpass statistics
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.OutpassStats
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Failure 500 {object} models.ErrorResponse "Error computing statistics"
// @Router /outpass/stats [get]
func (h *OutpassHandler) GetStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.projector.Stats(ctx)
	if err != nil {
		return respondError(c, err, "Error computing statistics")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
