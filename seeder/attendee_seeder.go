package seeder

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-checkin-backend/models"
	"event-checkin-backend/repository"
)

// SeedAttendees inserts a few demo attendees so the scanner screens have
// something to scan in development. Gated by SEED_DEMO.
func SeedAttendees(attendeeRepo repository.AttendeeRepository) {
	log.Println("Seeding demo attendees...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	demo := []models.Attendee{
		{
			Name:     "Asha Rao",
			TeamName: "Team Nova",
			Phone:    "9876543210",
			Email:    "asha.rao@example.com",
			College:  "NMIT Bengaluru",
		},
		{
			Name:     "Ravi Kumar",
			TeamName: "Team Falcon",
			Phone:    "9812345678",
			Email:    "ravi.kumar@example.com",
			College:  "RV College of Engineering",
		},
		{
			Name:     "Meera Iyer",
			TeamName: "Team Nova",
			Phone:    "9898989898",
			Email:    "meera.iyer@example.com",
			College:  "PES University",
		},
	}

	for _, attendee := range demo {
		existing, total, err := attendeeRepo.GetAllAttendees(ctx, bson.M{"email": attendee.Email}, 1, 1)
		if err != nil {
			log.Printf("Failed to check existing demo attendee %s: %v", attendee.Email, err)
			continue
		}
		if total > 0 && len(existing) > 0 {
			log.Printf("Demo attendee %s already exists, skipping.", attendee.Email)
			continue
		}

		now := time.Now()
		attendee.ID = primitive.NewObjectID()
		attendee.EventName = "Demo Event"
		attendee.Status = models.StatusCheckedOut
		attendee.CreatedAt = now
		attendee.UpdatedAt = now

		if _, err := attendeeRepo.CreateAttendee(ctx, &attendee); err != nil {
			log.Printf("Failed to seed demo attendee %s: %v", attendee.Email, err)
			continue
		}
		log.Printf("Seeded demo attendee %s (ticket %s)", attendee.Name, attendee.ID.Hex())
	}

	log.Println("Demo attendee seeding finished.")
}
