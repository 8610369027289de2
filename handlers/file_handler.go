package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-checkin-backend/config"
)

// FileHandler serves attendee photos back out of GridFS. Only used with
// the gridfs storage driver, S3 photos are fetched straight from the
// bucket.
type FileHandler struct {
}

func NewFileHandler() *FileHandler {
	return &FileHandler{}
}

// GetFile godoc
// @Summary Serve a stored photo
// @Tags Files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} file "Photo bytes"
// @Failure 400 {object} models.ErrorResponse "Invalid file ID"
// @Failure 404 {object} models.NotFoundErrorResponse "File not found"
// @Router /files/{id} [get]
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	fileIDHex := c.Params("id")
	objectID, err := primitive.ObjectIDFromHex(fileIDHex)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file ID format"})
	}

	bucket, err := config.GetGridFSBucket()
	if err != nil {
		log.Printf("ERROR: failed to open GridFS bucket: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to access photo storage"})
	}

	downloadStream, err := bucket.OpenDownloadStream(objectID)
	if err != nil {
		log.Printf("ERROR: photo not found with ID %s: %v", fileIDHex, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}
	defer downloadStream.Close()

	// Read the whole file into memory, photos are selfie-sized.
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, downloadStream); err != nil {
		log.Printf("ERROR: failed to read photo %s from GridFS: %v", fileIDHex, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read photo data"})
	}

	fileInfo := downloadStream.GetFile()

	contentType := http.DetectContentType(buf.Bytes())
	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", "inline; filename=\""+fileInfo.Name+"\"")

	return c.Send(buf.Bytes())
}
