package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-checkin-backend/config"
	"event-checkin-backend/models"
	"event-checkin-backend/pkg/storage"
	util "event-checkin-backend/pkg/utils"
	"event-checkin-backend/repository"
)

type RegistrationHandler struct {
	repo   repository.AttendeeRepository
	photos storage.PhotoStore
	cfg    *config.AppConfig
}

func NewRegistrationHandler(repo repository.AttendeeRepository, photos storage.PhotoStore, cfg *config.AppConfig) *RegistrationHandler {
	return &RegistrationHandler{repo: repo, photos: photos, cfg: cfg}
}

// RegisterAttendee godoc
// @Summary Register an attendee
// @Description Creates one attendee record from the registration form plus the captured selfie and returns the ticket identity.
// @Tags Registration
// @Accept mpfd
// @Produce json
// @Param name formData string true "Full name"
// @Param team_name formData string true "Team name"
// @Param phone formData string true "Contact number"
// @Param email formData string true "Email"
// @Param college formData string true "College / institution"
// @Param event_name formData string false "Event name (defaults from config)"
// @Param photo formData file false "Captured selfie (required unless REQUIRE_PHOTO=false)"
// @Success 201 {object} models.RegisterSuccessResponse "Attendee created"
// @Failure 400 {object} models.ErrorResponse "Validation failed or photo missing"
// @Failure 500 {object} models.ErrorResponse "Upload or insert failed"
// @Router /attendees [post]
func (h *RegistrationHandler) RegisterAttendee(c *fiber.Ctx) error {
	var payload models.AttendeeRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload: " + err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
	defer cancel()

	// The photo goes up first, then the row. A failed insert after a
	// successful upload orphans the blob, which we accept.
	photoURL := ""
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if h.cfg.RequirePhoto {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Photo is required. Capture a photo and submit again."})
		}
	} else {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read uploaded photo"})
		}
		defer file.Close()

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		blobName := util.PhotoBlobName(payload.Name, fileHeader.Filename, time.Now())
		photoURL, err = h.photos.Upload(ctx, blobName, contentType, file)
		if err != nil {
			log.Printf("ERROR: photo upload failed for %s: %v", payload.Name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo. Please submit again."})
		}
	}

	eventName := payload.EventName
	if eventName == "" {
		eventName = h.cfg.EventName
	}

	now := time.Now()
	attendee := &models.Attendee{
		ID:        primitive.NewObjectID(),
		Name:      payload.Name,
		TeamName:  payload.TeamName,
		Phone:     payload.Phone,
		Email:     payload.Email,
		College:   payload.College,
		EventName: eventName,
		PhotoURL:  photoURL,
		// New registrations start outside the venue.
		Status:    models.StatusCheckedOut,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := h.repo.CreateAttendee(ctx, attendee); err != nil {
		log.Printf("ERROR: attendee insert failed for %s: %v", payload.Name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create attendee. Please submit again."})
	}

	return c.Status(fiber.StatusCreated).JSON(models.RegisterSuccessResponse{
		Message:  "Registration complete. Save your ticket.",
		Attendee: *attendee,
	})
}

// GetAttendee godoc
// @Summary Get attendee by ID
// @Tags Registration
// @Produce json
// @Param id path string true "Attendee ID"
// @Success 200 {object} models.Attendee
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Attendee not found"
// @Router /attendees/{id} [get]
func (h *RegistrationHandler) GetAttendee(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendee, err := h.repo.FindAttendeeByID(ctx, objID)
	if err != nil {
		log.Printf("ERROR: failed to get attendee %s: %v", idParam, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get attendee"})
	}
	if attendee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendee not found"})
	}

	return c.Status(fiber.StatusOK).JSON(attendee)
}

// GetAllAttendees godoc
// @Summary List attendees
// @Description Paginated attendee list for operators, with free-text search on name and team.
// @Tags Scanner
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param search query string false "Search by name or team"
// @Success 200 {object} models.AttendeeListResponse
// @Failure 401 {object} models.ErrorResponse "Not authorized"
// @Failure 500 {object} models.ErrorResponse "Failed to list attendees"
// @Router /attendees [get]
func (h *RegistrationHandler) GetAllAttendees(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 20))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := bson.M{}
	if search := c.Query("search"); search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"team_name": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	attendees, total, err := h.repo.GetAllAttendees(ctx, filter, page, limit)
	if err != nil {
		log.Printf("ERROR: failed to list attendees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list attendees"})
	}

	return c.Status(fiber.StatusOK).JSON(models.AttendeeListResponse{
		Attendees: attendees,
		Total:     total,
		Page:      page,
		Limit:     limit,
	})
}
