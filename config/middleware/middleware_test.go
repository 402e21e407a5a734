package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"smart-hostel/config"
	"smart-hostel/models"
	"smart-hostel/pkg/token"
	"smart-hostel/repository/memstore"
	"smart-hostel/service"
)

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(GateDeviceFrom(c))
	})
	app.Get("/", handlers...)
	return app
}

func status(t *testing.T, app *fiber.App, headers map[string]string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func TestAuthMiddlewareAndAuthorize(t *testing.T) {
	ctx := context.Background()
	users := memstore.NewUserRepository()
	guard, _ := users.CreateUser(ctx, &models.User{Username: "guard", Email: "guard@hostel.test", Role: models.RoleSecurity})
	student, _ := users.CreateUser(ctx, &models.User{Username: "asha", Email: "asha@hostel.test", Role: models.RoleStudent})

	maker, err := token.NewJWTMaker("middleware-secret")
	if err != nil {
		t.Fatalf("maker: %v", err)
	}
	guardToken, _ := maker.GenerateToken(guard, time.Hour)
	studentToken, _ := maker.GenerateToken(student, time.Hour)

	app := newApp(AuthMiddleware(maker), Authorize(service.NewPolicy(users), service.ActionViewActive))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Token " + guardToken, fiber.StatusUnauthorized},
		{"bad token", "Bearer not.a.token", fiber.StatusUnauthorized},
		{"student", "Bearer " + studentToken, fiber.StatusForbidden},
		{"security", "Bearer " + guardToken, fiber.StatusOK},
	}
	for _, tc := range cases {
		headers := map[string]string{}
		if tc.header != "" {
			headers["Authorization"] = tc.header
		}
		if got := status(t, app, headers); got != tc.want {
			t.Fatalf("%s: status %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestGateKeyMiddleware(t *testing.T) {
	open := newApp(GateKeyMiddleware(nil))
	if got := status(t, open, nil); got != fiber.StatusOK {
		t.Fatalf("no devices configured should leave the route open, got %d", got)
	}

	guarded := newApp(GateKeyMiddleware([]config.GateDevice{{ID: "main-gate", Key: "s3cret"}}))
	cases := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{"missing", nil, fiber.StatusUnauthorized},
		{"wrong key", map[string]string{HeaderGateDevice: "main-gate", HeaderGateKey: "guess"}, fiber.StatusUnauthorized},
		{"unknown device", map[string]string{HeaderGateDevice: "back-gate", HeaderGateKey: "s3cret"}, fiber.StatusUnauthorized},
		{"valid", map[string]string{HeaderGateDevice: "main-gate", HeaderGateKey: "s3cret"}, fiber.StatusOK},
	}
	for _, tc := range cases {
		if got := status(t, guarded, tc.headers); got != tc.want {
			t.Fatalf("%s: status %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestGateDeviceOutlivesRequest(t *testing.T) {
	var seen []string
	app := fiber.New()
	app.Get("/", GateKeyMiddleware([]config.GateDevice{{ID: "main-gate", Key: "s3cret"}}), func(c *fiber.Ctx) error {
		seen = append(seen, GateDeviceFrom(c))
		return c.SendStatus(fiber.StatusOK)
	})

	valid := map[string]string{HeaderGateDevice: "main-gate", HeaderGateKey: "s3cret"}
	if got := status(t, app, valid); got != fiber.StatusOK {
		t.Fatalf("valid device: status %d", got)
	}
	for i := 0; i < 3; i++ {
		status(t, app, map[string]string{HeaderGateDevice: "xxxxxxxxx", HeaderGateKey: "yyyyyyyyyyyyyyyy"})
	}

	if len(seen) != 1 || seen[0] != "main-gate" {
		t.Fatalf("stored device id changed after later requests: %q", seen)
	}
}
