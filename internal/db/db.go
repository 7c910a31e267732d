package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/config"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.BarberSchedule{},
		&models.BarberTimeOff{},
		&models.Reservation{},
		&models.BarberGoogleToken{},
		&models.GalleryImage{},
		&models.Product{},
		&models.Comment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Two concurrent bookings can both pass the application checks;
	// this constraint makes Postgres reject the loser at commit, and
	// the repository maps that violation to a slot_taken conflict.
	// start_at/end_at are timestamptz columns, so the range must be
	// tstzrange. Booting without the constraint would silently reopen
	// the race, hence the hard failures.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to install btree_gist: %v", err)
	}
	if err := db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'reservations_no_overlap'
            ) THEN
                ALTER TABLE reservations
                ADD CONSTRAINT reservations_no_overlap
                EXCLUDE USING gist (
                    barber_id WITH =,
                    tstzrange(start_at, end_at) WITH &&
                ) WHERE (status <> 'CANCELLED');
            END IF;
        END
        $$
    `).Error; err != nil {
		log.Fatalf("failed to add reservations_no_overlap constraint: %v", err)
	}

	return db
}
