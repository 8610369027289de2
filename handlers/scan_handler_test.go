package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-checkin-backend/config/middleware"
	"event-checkin-backend/models"
	"event-checkin-backend/pkg/paseto"
	"event-checkin-backend/pkg/scanner"
)

type scanTestEnv struct {
	app     *fiber.App
	token   string
	repo    *stubAttendeeRepo
	history *stubHistoryRepo
}

// newScanApp wires the scan routes exactly as the router does, with
// in-memory repositories behind the engine.
func newScanApp(t *testing.T, attendees ...*models.Attendee) *scanTestEnv {
	t.Helper()
	require.NoError(t, paseto.Init(testSecret))

	repo := newStubAttendeeRepo(attendees...)
	history := &stubHistoryRepo{}
	retrier := scanner.NewHistoryRetrier(history)
	engine := scanner.NewEngine(repo, history, retrier)
	handler := NewScanHandler(engine, history)

	app := fiber.New()
	scanGroup := app.Group("/api/v1/scan", middleware.OperatorMiddleware())
	scanGroup.Post("/", handler.Scan)
	scanGroup.Post("/confirm", handler.Confirm)
	scanGroup.Post("/cancel", handler.Cancel)
	scanGroup.Get("/history", handler.GetScanHistory)

	token, err := paseto.GenerateOperatorToken("Ravi")
	require.NoError(t, err)

	return &scanTestEnv{app: app, token: token, repo: repo, history: history}
}

func (e *scanTestEnv) post(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func outsideAttendee(name, team string) *models.Attendee {
	return &models.Attendee{
		ID:       primitive.NewObjectID(),
		Name:     name,
		TeamName: team,
		Status:   models.StatusCheckedOut,
	}
}

func TestScanRequiresToken(t *testing.T) {
	env := newScanApp(t)

	req := httptest.NewRequest("POST", "/api/v1/scan/", bytes.NewReader([]byte(`{"code":"x"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestScanTicketNotFound(t *testing.T) {
	env := newScanApp(t)

	status, body := env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: primitive.NewObjectID().Hex()})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Ticket not found", body["error"])

	// Nothing was written for a miss.
	assert.Equal(t, 0, env.history.count())
}

func TestScanConfirmCheckInFlow(t *testing.T) {
	asha := outsideAttendee("Asha Rao", "Team Nova")
	env := newScanApp(t, asha)

	status, body := env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Verify identity", body["message"])
	assert.Equal(t, false, body["inside"])

	attendeeBody, ok := body["attendee"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Asha Rao", attendeeBody["name"])

	status, body = env.post(t, "/api/v1/scan/confirm", models.ScanConfirmPayload{Venue: "Hall A"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "CHECK-IN SUCCESS: Asha Rao", body["message"])
	assert.Equal(t, models.ScanTypeIn, body["scan_type"])
	assert.Equal(t, models.StatusCheckedIn, body["new_status"])
	assert.Equal(t, "Hall A", body["venue"])

	require.Equal(t, 1, env.history.count())
	entry := env.history.entries[0]
	assert.Equal(t, models.ScanTypeIn, entry.ScanType)
	assert.Equal(t, "Hall A", entry.Venue)
	assert.Equal(t, "Ravi", entry.ScannedBy)
	assert.Equal(t, "Asha Rao", entry.AttendeeName)
}

func TestScanDuplicateFrameIgnored(t *testing.T) {
	asha := outsideAttendee("Asha Rao", "Team Nova")
	env := newScanApp(t, asha)

	status, _ := env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	require.Equal(t, fiber.StatusOK, status)

	// Same frame again: acknowledged, not an error, no new pending entry.
	status, body := env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body["message"], "already pending")

	status, _ = env.post(t, "/api/v1/scan/confirm", models.ScanConfirmPayload{})
	require.Equal(t, fiber.StatusOK, status)

	// Only one history append despite the repeated decode.
	assert.Equal(t, 1, env.history.count())
}

func TestScanOtherCodeWhilePending(t *testing.T) {
	asha := outsideAttendee("Asha Rao", "Team Nova")
	ravi := outsideAttendee("Ravi Kumar", "Team Falcon")
	env := newScanApp(t, asha, ravi)

	status, _ := env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: ravi.ID.Hex()})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestScanCancelLeavesStatusUnchanged(t *testing.T) {
	asha := outsideAttendee("Asha Rao", "Team Nova")
	env := newScanApp(t, asha)

	status, _ := env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	require.Equal(t, fiber.StatusOK, status)

	status, body := env.post(t, "/api/v1/scan/cancel", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Scan cancelled", body["message"])

	stored := env.repo.attendees[asha.ID]
	assert.Equal(t, models.StatusCheckedOut, stored.Status)
	assert.Equal(t, 0, env.history.count())
}

func TestScanConfirmWithoutPending(t *testing.T) {
	env := newScanApp(t)

	status, body := env.post(t, "/api/v1/scan/confirm", models.ScanConfirmPayload{Venue: "Hall A"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No scan is pending verification", body["error"])
}

func TestScanToggleRoundTrip(t *testing.T) {
	asha := outsideAttendee("Asha Rao", "Team Nova")
	env := newScanApp(t, asha)

	env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	status, _ := env.post(t, "/api/v1/scan/confirm", models.ScanConfirmPayload{})
	require.Equal(t, fiber.StatusOK, status)

	status, body := env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["inside"])

	status, body = env.post(t, "/api/v1/scan/confirm", models.ScanConfirmPayload{})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "CHECK-OUT SUCCESS: Asha Rao", body["message"])
	assert.Equal(t, models.ScanTypeOut, body["scan_type"])

	assert.Equal(t, 2, env.history.count())
}

func TestScanHistoryListing(t *testing.T) {
	asha := outsideAttendee("Asha Rao", "Team Nova")
	env := newScanApp(t, asha)

	env.post(t, "/api/v1/scan/", models.ScanLookupPayload{Code: asha.ID.Hex()})
	env.post(t, "/api/v1/scan/confirm", models.ScanConfirmPayload{Venue: "Hall A"})

	req := httptest.NewRequest("GET", "/api/v1/scan/history", nil)
	req.Header.Set("Authorization", "Bearer "+env.token)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.ScanHistoryListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Entries, 1)
	assert.Equal(t, "Hall A", body.Entries[0].Venue)
	assert.Equal(t, int64(1), body.Total)
}
