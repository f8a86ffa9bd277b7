package service

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/database"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version and the applied schema version.
// MigrationNeeded is set when embedded migrations have not been applied yet.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, pending, err := database.SchemaVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersionInfo, err)
	}

	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  fmt.Sprintf("%d", dbVersion),
		Features: map[string]bool{
			"booking_analytics":  true,
			"analytics_snapshot": true,
			"fx_matrix":          true,
			"fx_spread_update":   true,
		},
		MigrationNeeded: pending,
	}

	if pending {
		msg := "Database schema is behind the application; restart to apply pending migrations"
		info.MigrationMessage = &msg
	}

	return info, nil
}
