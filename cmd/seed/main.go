package main

import (
	"log"
	"os"

	"tourbook/internal/database"
	"tourbook/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tourbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.TransportProvider{},
		&domain.Accommodation{},
		&domain.Activity{},
		&domain.Location{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM transport_providers")
	db.Exec("DELETE FROM accommodations")
	db.Exec("DELETE FROM activities")
	db.Exec("DELETE FROM locations")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		Email:        "admin@tourbook.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FirstName:    "Platform",
		LastName:     "Admin",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	userHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	traveler := domain.User{
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: string(userHash),
		Role:         domain.RoleUser,
		FirstName:    "Jane",
		LastName:     "Traveler",
		Phone:        "5551234567",
		IsActive:     true,
		Preferences:  &domain.Preferences{Language: "en", Currency: "USD", Newsletter: true},
	}
	if err := db.Create(&traveler).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	// ================== CATALOG ==================
	log.Println("Creating catalog items...")

	providers := []domain.TransportProvider{
		{Name: "City Shuttle", VehicleType: "minibus", City: "Astana", Price: 50, Currency: "USD", Seats: 12, Availability: true},
		{Name: "Mountain Transfer", VehicleType: "suv", City: "Almaty", Price: 80, Currency: "USD", Seats: 4, Availability: true},
		{Name: "Night Bus", VehicleType: "bus", City: "Almaty", Price: 25, Currency: "USD", Seats: 40, Availability: false},
	}
	if err := db.Create(&providers).Error; err != nil {
		log.Fatal("Failed to create transport providers:", err)
	}

	accommodations := []domain.Accommodation{
		{Name: "Grand Hotel", Category: "hotel", City: "Astana", Address: "1 Central Ave", Price: 120, Currency: "USD", Availability: true},
		{Name: "Steppe Hostel", Category: "hostel", City: "Almaty", Address: "17 Abay St", Price: 22, Currency: "USD", Availability: true},
	}
	if err := db.Create(&accommodations).Error; err != nil {
		log.Fatal("Failed to create accommodations:", err)
	}

	activities := []domain.Activity{
		{Name: "Canyon Hike", Category: "outdoor", City: "Almaty", Description: "Full-day guided hike", Price: 35, Currency: "USD", Availability: true},
		{Name: "City Food Tour", Category: "food", City: "Astana", Description: "Evening street-food walk", Price: 45, Currency: "USD", Availability: true},
	}
	if err := db.Create(&activities).Error; err != nil {
		log.Fatal("Failed to create activities:", err)
	}

	locations := []domain.Location{
		{Name: "National Museum", City: "Astana", Description: "History and art collections", Price: 8, Currency: "USD", Availability: true},
		{Name: "Botanical Garden", City: "Almaty", Description: "Open-air garden", Price: 4, Currency: "USD", Availability: true},
	}
	if err := db.Create(&locations).Error; err != nil {
		log.Fatal("Failed to create locations:", err)
	}

	// ================== SAMPLE BOOKINGS ==================
	log.Println("Creating sample bookings...")

	providerID := providers[0].ID
	userID := traveler.ID
	bookings := []domain.Booking{
		{
			BookingID:          "BK-20260810-A1B2C3",
			Type:               domain.BookingTransport,
			ProviderID:         &providerID,
			UserID:             &userID,
			CustomerName:       "Jane Traveler",
			CustomerEmail:      "jane@example.com",
			CustomerPhone:      "5551234567",
			PickupLocation:     "Airport",
			DropoffLocation:    "City Center",
			BookingDate:        "2026-09-15",
			BookingTime:        "14:30",
			NumberOfPassengers: 2,
			TotalPrice:         100,
			Currency:           "USD",
			Status:             domain.BookingConfirmed,
			AdminStatus:        domain.AdminApproved,
			PaymentStatus:      domain.PaymentPaid,
			UserConfirmed:      true,
		},
		{
			BookingID:     "BK-20260812-D4E5F6",
			Type:          domain.BookingActivity,
			ActivityID:    &activities[0].ID,
			CustomerName:  "Walkin Guest",
			CustomerEmail: "guest@example.com",
			CustomerPhone: "5559876543",
			ScheduledDate: "2026-09-20",
			Participants:  3,
			TotalPrice:    105,
			Currency:      "USD",
			Status:        domain.BookingPending,
			AdminStatus:   domain.AdminPending,
			PaymentStatus: domain.PaymentPending,
		},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Fatal("Failed to create booking:", err)
		}
	}

	log.Println("Seed complete.")
	log.Println("  admin@tourbook.io / admin123")
	log.Println("  jane@example.com  / password123")
}
