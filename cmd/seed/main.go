// Command seed fills a development database with a week of demo bookings and
// blocked hours so the admin dashboard has something to show.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"wavehouse/config"
	"wavehouse/database"
	"wavehouse/database/repository"
	"wavehouse/models"
	"wavehouse/services/booking"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// sessionStarts are realistic start times in minutes from midnight.
var sessionStarts = []int{600, 720, 840, 1080, 1200}

var statuses = []string{models.StatusPending, models.StatusConfirmed, models.StatusConfirmed, models.StatusCancelled}

func main() {
	config.LoadConfig()
	if config.AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required to seed")
	}
	if err := database.InitDB(config.AppConfig.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer database.CloseDB(context.Background())

	// Clear existing data.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, name := range []string{"bookings", "blocked_slots", "clients"} {
		if _, err := database.DB().Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	repos := repository.NewMongoRepositories()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC()

	var bookings, blocked int
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i).Format(booking.DateLayout)

		// Mornings are held for maintenance.
		for _, start := range []int{480, 540} {
			err := repos.BlockedSlots.Create(&models.BlockedSlot{
				ID:        uuid.New().String(),
				Date:      date,
				Start:     start,
				Reason:    "Maintenance",
				CreatedAt: time.Now().UTC(),
			})
			if err != nil {
				log.Fatalf("Failed to block %s %s: %v", date, booking.FormatClock(start), err)
			}
			blocked++
		}

		start := sessionStarts[rng.Intn(len(sessionStarts))]
		hours := booking.Services()[0].Presets[rng.Intn(2)].Hours
		n := i + 1
		b := &models.Booking{
			ID:            uuid.New().String(),
			ServiceType:   models.ServiceStudioAccess,
			Date:          date,
			Start:         start,
			Time:          booking.FormatClock(start),
			Duration:      hours,
			Name:          fmt.Sprintf("Demo Artist %d", n),
			Email:         fmt.Sprintf("artist_%d@example.com", n),
			Phone:         fmt.Sprintf("323555%04d", n),
			ProjectType:   "Recording",
			Status:        statuses[rng.Intn(len(statuses))],
			PaymentStatus: models.PaymentUnpaid,
			CreatedAt:     time.Now().UTC(),
		}
		if err := repos.Bookings.Create(b); err != nil {
			log.Fatalf("Failed to insert booking: %v", err)
		}
		bookings++
	}

	log.Printf("Seeded %d bookings and %d blocked slots", bookings, blocked)
}
