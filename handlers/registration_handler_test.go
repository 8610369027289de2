package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-checkin-backend/config"
	"event-checkin-backend/models"
)

type stubPhotoStore struct {
	uploads   int
	lastName  string
	uploadErr error
}

func (s *stubPhotoStore) Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.uploads++
	s.lastName = name
	return "https://photos.test/" + name, nil
}

func newRegistrationApp(cfg *config.AppConfig) (*fiber.App, *stubAttendeeRepo, *stubPhotoStore) {
	repo := newStubAttendeeRepo()
	photos := &stubPhotoStore{}
	handler := NewRegistrationHandler(repo, photos, cfg)

	app := fiber.New()
	app.Post("/api/v1/attendees", handler.RegisterAttendee)
	app.Get("/api/v1/attendees/:id", handler.GetAttendee)
	return app, repo, photos
}

// registrationForm builds the multipart body the registration page posts.
// Pass an empty photo name to omit the file part.
func registrationForm(t *testing.T, fields map[string]string, photoName string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if photoName != "" {
		part, err := w.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		_, err = part.Write([]byte("not-a-real-jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func validRegistrationFields() map[string]string {
	return map[string]string{
		"name":      "Asha Rao",
		"team_name": "Team Nova",
		"phone":     "9876543210",
		"email":     "asha@example.com",
		"college":   "IIT Madras",
	}
}

func postForm(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/attendees", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestRegisterAttendeeSuccess(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: true}
	app, repo, photos := newRegistrationApp(cfg)

	body, contentType := registrationForm(t, validRegistrationFields(), "selfie.jpg")
	status, decoded := postForm(t, app, body, contentType)

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Registration complete. Save your ticket.", decoded["message"])

	attendeeBody, ok := decoded["attendee"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Asha Rao", attendeeBody["name"])
	assert.Equal(t, models.StatusCheckedOut, attendeeBody["status"])
	assert.Equal(t, "TechFest 2026", attendeeBody["event_name"])
	assert.Contains(t, attendeeBody["photo_url"], "https://photos.test/")

	assert.Equal(t, 1, photos.uploads)
	assert.Len(t, repo.attendees, 1)
}

func TestRegisterAttendeeMissingFields(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: true}

	for _, missing := range []string{"name", "team_name", "phone", "email", "college"} {
		app, repo, _ := newRegistrationApp(cfg)

		fields := validRegistrationFields()
		delete(fields, missing)

		body, contentType := registrationForm(t, fields, "selfie.jpg")
		status, decoded := postForm(t, app, body, contentType)

		assert.Equal(t, fiber.StatusBadRequest, status, "missing %s", missing)
		assert.Equal(t, "Validation failed", decoded["error"], "missing %s", missing)
		assert.Len(t, repo.attendees, 0, "missing %s must not create a record", missing)
	}
}

func TestRegisterAttendeeRejectsBadEmail(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: true}
	app, repo, _ := newRegistrationApp(cfg)

	fields := validRegistrationFields()
	fields["email"] = "not-an-email"

	body, contentType := registrationForm(t, fields, "selfie.jpg")
	status, _ := postForm(t, app, body, contentType)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Len(t, repo.attendees, 0)
}

func TestRegisterAttendeePhotoRequired(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: true}
	app, repo, photos := newRegistrationApp(cfg)

	body, contentType := registrationForm(t, validRegistrationFields(), "")
	status, decoded := postForm(t, app, body, contentType)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decoded["error"], "Photo is required")
	assert.Equal(t, 0, photos.uploads)
	assert.Len(t, repo.attendees, 0)
}

func TestRegisterAttendeePhotoOptional(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: false}
	app, repo, photos := newRegistrationApp(cfg)

	body, contentType := registrationForm(t, validRegistrationFields(), "")
	status, decoded := postForm(t, app, body, contentType)

	require.Equal(t, fiber.StatusCreated, status)
	attendeeBody := decoded["attendee"].(map[string]any)
	assert.Empty(t, attendeeBody["photo_url"])
	assert.Equal(t, 0, photos.uploads)
	assert.Len(t, repo.attendees, 1)
}

func TestRegisterAttendeeUploadFailure(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: true}
	app, repo, photos := newRegistrationApp(cfg)
	photos.uploadErr = errors.New("bucket unreachable")

	body, contentType := registrationForm(t, validRegistrationFields(), "selfie.jpg")
	status, decoded := postForm(t, app, body, contentType)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, decoded["error"], "Failed to upload photo")
	// A failed upload must not leave a ticket without a photo behind.
	assert.Len(t, repo.attendees, 0)
}

func TestRegisterAttendeeEventNameOverride(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: false}
	app, _, _ := newRegistrationApp(cfg)

	fields := validRegistrationFields()
	fields["event_name"] = "Hack Night"

	body, contentType := registrationForm(t, fields, "")
	status, decoded := postForm(t, app, body, contentType)

	require.Equal(t, fiber.StatusCreated, status)
	attendeeBody := decoded["attendee"].(map[string]any)
	assert.Equal(t, "Hack Night", attendeeBody["event_name"])
}

func TestGetAttendeeByID(t *testing.T) {
	cfg := &config.AppConfig{EventName: "TechFest 2026", RequirePhoto: false}
	app, repo, _ := newRegistrationApp(cfg)

	asha := outsideAttendee("Asha Rao", "Team Nova")
	repo.attendees[asha.ID] = asha

	req := httptest.NewRequest("GET", "/api/v1/attendees/"+asha.ID.Hex(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Attendee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, asha.ID, got.ID)
	assert.Equal(t, "Asha Rao", got.Name)
}
