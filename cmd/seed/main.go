package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/callmeniyu/Oastel-sub001/internal/clock"
	"github.com/callmeniyu/Oastel-sub001/internal/database"
	"github.com/callmeniyu/Oastel-sub001/internal/domain"
	"github.com/callmeniyu/Oastel-sub001/internal/repository"
)

var tourDepartures = []string{"08:00", "09:00", "14:00"}
var transferDepartures = []string{"07:30", "10:00", "13:30", "17:00"}

func main() {
	db, err := database.Connect("oastel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&domain.TimeSlot{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM time_slots")

	repo := repository.NewTimeSlotRepository(db)
	ctx := context.Background()
	today := time.Now().In(clock.BusinessZone())

	log.Println("Creating tour slots...")
	tours := packageIDs(3)
	created := 0
	for _, id := range tours {
		created += seedPackage(ctx, repo, domain.PackageTour, id, today, tourDepartures)
	}
	log.Printf("Tours: %d packages, %d slots", len(tours), created)

	log.Println("Creating transfer slots...")
	transfers := packageIDs(2)
	created = 0
	for _, id := range transfers {
		created += seedPackage(ctx, repo, domain.PackageTransfer, id, today, transferDepartures)
	}
	log.Printf("Transfers: %d packages, %d slots", len(transfers), created)

	log.Println("Seed complete.")
	for _, id := range tours {
		fmt.Println("tour:", id)
	}
	for _, id := range transfers {
		fmt.Println("transfer:", id)
	}
}

// seedPackage fills the next 14 days with departures, some of them
// already partially or fully booked so the cart flows have something to
// reject.
func seedPackage(ctx context.Context, repo *repository.TimeSlotRepository, pt domain.PackageType, packageID string, from time.Time, departures []string) int {
	created := 0
	for day := 0; day < 14; day++ {
		date := from.AddDate(0, 0, day).Format("2006-01-02")
		for _, dep := range departures {
			capacity := 8 + rand.Intn(8)
			booked := rand.Intn(capacity + 1)
			slot := &domain.TimeSlot{
				PackageType: pt,
				PackageID:   packageID,
				Date:        date,
				Time:        dep,
				Capacity:    capacity,
				BookedCount: booked,
			}
			if err := repo.Create(ctx, slot); err != nil {
				log.Printf("seed: skip %s %s %s %s: %v", pt, packageID, date, dep, err)
				continue
			}
			created++
		}
	}
	return created
}

// packageIDs makes Mongo-shaped 24-hex identifiers from random UUID
// bytes.
func packageIDs(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		u := uuid.New()
		out = append(out, hex.EncodeToString(u[:12]))
	}
	return out
}
