package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"smart-hostel/config"
)

const (
	HeaderGateDevice = "X-Gate-Device"
	HeaderGateKey    = "X-Gate-Key"
)

// GateKeyMiddleware checks the scanner's device credentials. With no devices
// configured every request passes. The accepted device id is stored under "gateDevice".
func GateKeyMiddleware(devices []config.GateDevice) fiber.Handler {
	keys := make(map[string][]byte, len(devices))
	for _, d := range devices {
		keys[d.ID] = []byte(d.Key)
	}

	return func(c *fiber.Ctx) error {
		if len(keys) == 0 {
			return c.Next()
		}

		// Header values alias the pooled request buffer; the id outlives the request.
		deviceID := utils.CopyString(c.Get(HeaderGateDevice))
		want, ok := keys[deviceID]
		if !ok || subtle.ConstantTimeCompare(want, []byte(c.Get(HeaderGateKey))) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Unknown gate device or invalid key"})
		}

		c.Locals("gateDevice", deviceID)
		return c.Next()
	}
}

// GateDeviceFrom returns the device id accepted by GateKeyMiddleware, or "".
func GateDeviceFrom(c *fiber.Ctx) string {
	id, _ := c.Locals("gateDevice").(string)
	return id
}
