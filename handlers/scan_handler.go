package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-checkin-backend/models"
	"event-checkin-backend/pkg/scanner"
	util "event-checkin-backend/pkg/utils"
	"event-checkin-backend/repository"
)

type ScanHandler struct {
	engine  *scanner.Engine
	history repository.ScanHistoryRepository
}

func NewScanHandler(engine *scanner.Engine, history repository.ScanHistoryRepository) *ScanHandler {
	return &ScanHandler{engine: engine, history: history}
}

func operatorName(c *fiber.Ctx) (string, error) {
	claims, ok := c.Locals("operator").(*models.OperatorClaims)
	if !ok {
		return "", errors.New("operator claims missing from context")
	}
	return claims.OperatorName, nil
}

// Scan godoc
// @Summary Look up a decoded QR payload
// @Description Resolves the scanned code to an attendee and opens a pending verification for this operator. Repeats of the pending code are swallowed.
// @Tags Scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ScanLookupPayload true "Decoded QR text"
// @Success 200 {object} models.ScanLookupResponse "Verification pending"
// @Failure 400 {object} models.ErrorResponse "Invalid payload"
// @Failure 404 {object} models.NotFoundErrorResponse "Ticket not found"
// @Failure 409 {object} models.ErrorResponse "A different verification is already pending"
// @Failure 500 {object} models.ErrorResponse "Store error"
// @Router /scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	operator, err := operatorName(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated as an operator"})
	}

	var payload models.ScanLookupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload: " + err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	attendee, err := h.engine.Lookup(ctx, operator, payload.Code)
	if err != nil {
		switch {
		case errors.Is(err, scanner.ErrDuplicateScan):
			// Same physical code decoded again, nothing to do.
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Scan ignored, verification already pending for this ticket"})
		case errors.Is(err, scanner.ErrVerificationPending):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Another verification is pending. Confirm or cancel it first."})
		case errors.Is(err, scanner.ErrTicketNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ticket not found"})
		default:
			log.Printf("ERROR: scan lookup failed for operator %s: %v", operator, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up ticket"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.ScanLookupResponse{
		Message:  "Verify identity",
		Attendee: *attendee,
		Inside:   attendee.IsInside(),
	})
}

// Confirm godoc
// @Summary Confirm the pending verification
// @Description Toggles the attendee between checked_in and checked_out and appends one history entry.
// @Tags Scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ScanConfirmPayload true "Venue (blank defaults to Main Gate)"
// @Success 200 {object} models.ScanConfirmResponse "Toggle applied"
// @Failure 400 {object} models.ErrorResponse "No scan pending"
// @Failure 409 {object} models.ConflictErrorResponse "Lost the race against another scan"
// @Failure 500 {object} models.ErrorResponse "Store error"
// @Router /scan/confirm [post]
func (h *ScanHandler) Confirm(c *fiber.Ctx) error {
	operator, err := operatorName(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated as an operator"})
	}

	var payload models.ScanConfirmPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload: " + err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	result, err := h.engine.Confirm(ctx, operator, payload.Venue)
	if err != nil {
		switch {
		case errors.Is(err, scanner.ErrNoPendingScan):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No scan is pending verification"})
		case errors.Is(err, scanner.ErrScanConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Attendee was scanned by someone else. Please rescan."})
		default:
			log.Printf("ERROR: scan confirm failed for operator %s: %v", operator, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database Error: Could not update status."})
		}
	}

	direction := "CHECK-IN"
	if result.ScanType == models.ScanTypeOut {
		direction = "CHECK-OUT"
	}

	return c.Status(fiber.StatusOK).JSON(models.ScanConfirmResponse{
		Message:   fmt.Sprintf("%s SUCCESS: %s", direction, result.Attendee.Name),
		ScanType:  result.ScanType,
		NewStatus: result.NewStatus,
		Venue:     result.Venue,
	})
}

// Cancel godoc
// @Summary Cancel the pending verification
// @Description Drops the pending snapshot without any remote mutation. The next decode is processed immediately.
// @Tags Scanner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string} "Scan cancelled"
// @Failure 400 {object} models.ErrorResponse "No scan pending"
// @Router /scan/cancel [post]
func (h *ScanHandler) Cancel(c *fiber.Ctx) error {
	operator, err := operatorName(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated as an operator"})
	}

	if err := h.engine.Cancel(operator); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No scan is pending verification"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Scan cancelled"})
}

// GetScanHistory godoc
// @Summary List scan history
// @Description Paginated audit log of confirmed scans, newest first.
// @Tags Scanner
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param attendee_id query string false "Filter by attendee ID"
// @Param scan_type query string false "Filter by direction (IN or OUT)"
// @Success 200 {object} models.ScanHistoryListResponse
// @Failure 400 {object} models.ErrorResponse "Invalid filter"
// @Failure 500 {object} models.ErrorResponse "Failed to list history"
// @Router /scan/history [get]
func (h *ScanHandler) GetScanHistory(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 20))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := bson.M{}
	if idParam := c.Query("attendee_id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendee_id format"})
		}
		filter["attendee_id"] = objID
	}
	if scanType := c.Query("scan_type"); scanType != "" {
		if scanType != models.ScanTypeIn && scanType != models.ScanTypeOut {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "scan_type must be IN or OUT"})
		}
		filter["scan_type"] = scanType
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	entries, total, err := h.history.GetAllEntries(ctx, filter, page, limit)
	if err != nil {
		log.Printf("ERROR: failed to list scan history: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list scan history"})
	}

	return c.Status(fiber.StatusOK).JSON(models.ScanHistoryListResponse{
		Entries: entries,
		Total:   total,
		Page:    page,
		Limit:   limit,
	})
}
