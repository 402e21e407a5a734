package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"smart-hostel/config"
	"smart-hostel/config/middleware"
	"smart-hostel/handlers"
	"smart-hostel/pkg/token"
	"smart-hostel/service"
)

// Dependencies are the collaborators the routes are wired to.
type Dependencies struct {
	Outpasses   *service.OutpassService
	Projector   *service.Projector
	Policy      *service.Policy
	Verifier    token.Verifier
	GateDevices []config.GateDevice
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	log.Println("Registering application routes...")

	outpassHandler := handlers.NewOutpassHandler(deps.Outpasses, deps.Projector)
	gateHandler := handlers.NewGateHandler(deps.Outpasses, deps.Projector)

	auth := middleware.AuthMiddleware(deps.Verifier)
	allow := func(action service.Action) fiber.Handler {
		return middleware.Authorize(deps.Policy, action)
	}

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Smart Hostel Outpass API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	outpass := app.Group("/outpass")

	// Student
	outpass.Post("/request", auth, allow(service.ActionSubmit), outpassHandler.SubmitRequest)
	outpass.Get("/status", auth, allow(service.ActionViewOwn), outpassHandler.GetMyRequests)
	outpass.Get("/my_qr", auth, allow(service.ActionViewOwn), outpassHandler.GetMyQR)
	outpass.Get("/active", auth, allow(service.ActionViewOwn), outpassHandler.GetMyActive)
	outpass.Get("/student/approved", auth, allow(service.ActionViewOwn), outpassHandler.GetMyApproved)

	// Warden
	outpass.Patch("/update_status/:id", auth, allow(service.ActionDecide), outpassHandler.UpdateStatus)
	outpass.Get("/all_requests", auth, allow(service.ActionListAll), outpassHandler.GetAllRequests)

	// Gate scanners hold no user session.
	gate := middleware.GateKeyMiddleware(deps.GateDevices)
	outpass.Post("/verify_qr", gate, allow(service.ActionScan), gateHandler.VerifyQR)
	outpass.Post("/verify_qr_image", gate, allow(service.ActionScan), gateHandler.VerifyQRImage)

	// Security & warden
	outpass.Get("/security/active", auth, allow(service.ActionViewActive), outpassHandler.GetActiveOutpasses)
	outpass.Get("/stats", auth, allow(service.ActionViewStats), outpassHandler.GetStats)
	outpass.Get("/gate_events", auth, allow(service.ActionViewGateEvents), gateHandler.GetGateEvents)

	log.Println("Routes registered")
}
