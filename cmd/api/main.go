package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/albx0502/crm-api/internal/handlers"
	"github.com/albx0502/crm-api/internal/middleware"
	"github.com/albx0502/crm-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("JWT_SECRET is NOT SET.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(os.Getenv("MONGO_DATABASE"))
	log.Println("Successfully connected to MongoDB!")

	h := handlers.NewHandler(store.NewMongoStore(db))

	// --- Gin Router ---
	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
		log.Printf("CORS_ORIGIN is NOT SET, allowing %s only.", corsOrigin)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
	}

	apiRoutes := r.Group("/api")
	apiRoutes.Use(middleware.AuthMiddleware())
	{
		apiRoutes.GET("/profile", h.GetProfile)
		apiRoutes.PUT("/profile", h.UpdateProfile)

		apiRoutes.GET("/doctors", h.ListDoctors)
		apiRoutes.POST("/doctors", h.CreateDoctor)
		apiRoutes.GET("/specialties", h.ListSpecialties)
		apiRoutes.POST("/specialties", h.CreateSpecialty)

		apiRoutes.GET("/appointments", h.ListAppointments)
		apiRoutes.POST("/appointments", h.BookAppointment)
		apiRoutes.GET("/appointments/:id", h.GetAppointment)

		apiRoutes.GET("/results", h.ListResults)

		apiRoutes.GET("/medications", h.ListMedications)
		apiRoutes.GET("/medications/available", h.ListAvailableMedications)
		apiRoutes.POST("/medications", h.AddMedication)
		apiRoutes.DELETE("/medications/:id", h.RemoveMedication)

		apiRoutes.GET("/favorites", h.ListFavorites)
		apiRoutes.POST("/favorites/:doctorId", h.ToggleFavorite)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080" // Default port
	}
	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
