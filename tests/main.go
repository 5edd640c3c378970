package main

import (
	"context"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the treatment catalog. Run once against a fresh database; existing
// services are cleared first so reseeding is repeatable.
func main() {
	config.LoadConfig()

	client, err := database.Connect(context.Background(), config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(config.AppConfig.DatabaseName)
	services := serviceRepo.NewMongoServiceRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := db.Collection("services").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear services collection: %v", err)
	}

	morning := []string{
		"8.00 AM - 8.30 AM", "8.30 AM - 9.00 AM", "9.00 AM - 9.30 AM",
		"9.30 AM - 10.00 AM", "10.00 AM - 10.30 AM", "10.30 AM - 11.00 AM",
		"11.00 AM - 11.30 AM", "11.30 AM - 12.00 PM",
	}
	afternoon := []string{
		"1.00 PM - 1.30 PM", "1.30 PM - 2.00 PM", "2.00 PM - 2.30 PM",
		"2.30 PM - 3.00 PM", "3.00 PM - 3.30 PM", "3.30 PM - 4.00 PM",
	}

	catalog := []struct {
		Name  string
		Price float64
		Slots []string
	}{
		{"Teeth Orthodontics", 120, morning},
		{"Cosmetic Dentistry", 90, append(append([]string{}, morning...), afternoon...)},
		{"Teeth Cleaning", 60, afternoon},
		{"Cavity Protection", 80, morning},
		{"Pediatric Dental", 70, afternoon},
		{"Oral Surgery", 200, morning},
	}

	for _, entry := range catalog {
		svc := &models.Service{
			ID:    uuid.New().String(),
			Name:  entry.Name,
			Price: entry.Price,
			Slots: entry.Slots,
		}
		if err := services.Create(svc); err != nil {
			log.Fatalf("failed to seed service %q: %v", svc.Name, err)
		}
	}
	log.Printf("seeded %d services", len(catalog))
}
