package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tourbook/internal/database"
	"tourbook/internal/middleware"
	"tourbook/internal/modules/admin"
	"tourbook/internal/modules/auth"
	"tourbook/internal/modules/booking"
	"tourbook/internal/modules/catalog"
	jwtsvc "tourbook/internal/pkg/jwt"
	"tourbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	providerRepo := repository.NewTransportProviderRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	catalogReader := repository.NewCatalog(providerRepo, accommodationRepo, activityRepo, locationRepo)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(providerRepo, accommodationRepo, activityRepo, locationRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogReader)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(bookingRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static("/static", "./uploads")

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)

		// guests may book, but a valid token attributes the booking
		bookingPublic := api.Group("")
		bookingPublic.Use(middleware.OptionalJWTAuth(j))
		bookingHandler.RegisterPublicRoutes(bookingPublic)

		// signed-in
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			adminGroup := protected.Group("")
			adminGroup.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(adminGroup)
				catalogHandler.RegisterAdminRoutes(adminGroup)
				bookingHandler.RegisterAdminRoutes(adminGroup)
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
