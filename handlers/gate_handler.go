package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"event-checkin-backend/config"
	"event-checkin-backend/models"
	"event-checkin-backend/pkg/paseto"
	util "event-checkin-backend/pkg/utils"
)

type GateHandler struct {
	cfg *config.AppConfig
}

func NewGateHandler(cfg *config.AppConfig) *GateHandler {
	return &GateHandler{cfg: cfg}
}

// Login godoc
// @Summary Staff gate login
// @Description Opens the scanner for a volunteer. The pin is a shared deterrent, not real authentication.
// @Tags Gate
// @Accept json
// @Produce json
// @Param payload body models.GateLoginPayload true "Operator name and access pin"
// @Success 200 {object} models.GateLoginSuccessResponse "Gate opened"
// @Failure 400 {object} models.ErrorResponse "Invalid payload"
// @Failure 401 {object} models.ErrorResponse "Wrong pin"
// @Router /gate/login [post]
func (h *GateHandler) Login(c *fiber.Ctx) error {
	var payload models.GateLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload: " + err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "errors": errs})
	}

	if !h.pinMatches(payload.Pin) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong PIN"})
	}

	token, err := paseto.GenerateOperatorToken(payload.OperatorName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create operator session"})
	}

	return c.Status(fiber.StatusOK).JSON(models.GateLoginSuccessResponse{
		Message:  "Gate opened",
		Token:    token,
		Operator: payload.OperatorName,
	})
}

// Logout godoc
// @Summary Staff gate logout
// @Description The session lives in the token, so logout is the client discarding it. Kept for UI symmetry.
// @Tags Gate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string} "Logged out"
// @Router /gate/logout [post]
func (h *GateHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out. Discard the token on the client."})
}

func (h *GateHandler) pinMatches(pin string) bool {
	if h.cfg.AdminPINHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPINHash), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.cfg.AdminPIN), []byte(pin)) == 1
}
