package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-checkin-backend/models"
	util "event-checkin-backend/pkg/utils"
	"event-checkin-backend/repository"
)

// QR raster bounds. The upper bound is generous so exported tickets stay
// legible when printed or zoomed.
const (
	defaultQRSize = 512
	minQRSize     = 128
	maxQRSize     = 2048
)

type TicketHandler struct {
	repo repository.AttendeeRepository
}

func NewTicketHandler(repo repository.AttendeeRepository) *TicketHandler {
	return &TicketHandler{repo: repo}
}

// GetTicket godoc
// @Summary Get a digital ticket
// @Description Returns the attendee profile with the QR code as a base64 PNG data URI. The QR payload is the attendee ID, nothing more.
// @Tags Ticket
// @Produce json
// @Param id path string true "Attendee ID"
// @Success 200 {object} models.TicketResponse
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Attendee not found"
// @Failure 500 {object} models.ErrorResponse "Failed to render ticket"
// @Router /attendees/{id}/ticket [get]
func (h *TicketHandler) GetTicket(c *fiber.Ctx) error {
	attendee, errResp := h.findAttendee(c)
	if attendee == nil {
		return errResp
	}

	png, err := qrcode.Encode(attendee.ID.Hex(), qrcode.Medium, defaultQRSize)
	if err != nil {
		log.Printf("ERROR: failed to encode ticket QR for %s: %v", attendee.ID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render ticket QR code"})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(models.TicketResponse{
		Attendee:           *attendee,
		QRCodeImage:        "data:image/png;base64," + encodedString,
		LastScannedAtLocal: util.DisplayTimestamp(attendee.LastScannedAt),
	})
}

// GetTicketPNG godoc
// @Summary Export the ticket QR as a PNG
// @Description Raw PNG stream for download or print. Use the size query for higher pixel density.
// @Tags Ticket
// @Produce png
// @Param id path string true "Attendee ID"
// @Param size query int false "Edge length in pixels (128-2048, default 512)"
// @Param download query bool false "Send as attachment"
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Attendee not found"
// @Failure 500 {object} models.ErrorResponse "Export failed"
// @Router /attendees/{id}/ticket.png [get]
func (h *TicketHandler) GetTicketPNG(c *fiber.Ctx) error {
	attendee, errResp := h.findAttendee(c)
	if attendee == nil {
		return errResp
	}

	size := c.QueryInt("size", defaultQRSize)
	if size < minQRSize {
		size = minQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(attendee.ID.Hex(), qrcode.Medium, size)
	if err != nil {
		log.Printf("ERROR: failed to export ticket PNG for %s: %v", attendee.ID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export the ticket image. Take a manual screenshot of the ticket screen instead.",
		})
	}

	c.Set("Content-Type", "image/png")
	if c.QueryBool("download", false) {
		c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"ticket_%s.png\"", attendee.ID.Hex()))
	}
	return c.Send(png)
}

// findAttendee resolves the :id param. On failure the error response has
// already been written and the returned attendee is nil.
func (h *TicketHandler) findAttendee(c *fiber.Ctx) (*models.Attendee, error) {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendee, err := h.repo.FindAttendeeByID(ctx, objID)
	if err != nil {
		log.Printf("ERROR: failed to load attendee %s for ticket: %v", idParam, err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendee"})
	}
	if attendee == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendee not found"})
	}

	return attendee, nil
}
