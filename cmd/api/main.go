package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/atelierbarbier/reservation-api/internal/cache"
	"github.com/atelierbarbier/reservation-api/internal/config"
	dbpkg "github.com/atelierbarbier/reservation-api/internal/db"
	"github.com/atelierbarbier/reservation-api/internal/gcal"
	"github.com/atelierbarbier/reservation-api/internal/mailer"
	"github.com/atelierbarbier/reservation-api/internal/reminder"
	"github.com/atelierbarbier/reservation-api/internal/routes"
	"github.com/atelierbarbier/reservation-api/internal/storage"
)

func main() {

	// Local dev only; in production the env comes from the platform.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	appCache := cache.New(cfg.RedisAddr)

	calendarClient := gcal.New(cfg, db)
	if calendarClient == nil {
		log.Println("google calendar sync disabled: missing OAuth config")
	}

	mail := mailer.New(cfg)
	if mail == nil {
		log.Println("email disabled: missing SMTP config")
	}

	s3Store, err := storage.NewS3Storage(cfg)
	if err != nil {
		log.Printf("gallery storage disabled: %v", err)
		s3Store = nil
	}

	reminder.New(db, mail).StartScheduler()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, appCache, calendarClient, mail, s3Store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
